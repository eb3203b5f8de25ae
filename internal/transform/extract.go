package transform

import (
	"fmt"
	"slices"
)

// Formats accepted by Extractor.
var Formats = []string{"json", "yaml", "toml"}

// Extractor pulls a notification title and message out of a structured
// payload, such as a webhook body piped into the CLI.
type Extractor struct {
	// Format is one of Formats. Empty means json.
	Format string
	// Base64 decodes the payload before parsing it.
	Base64 bool
	// TitlePath is a gjson path. Empty leaves the title empty.
	TitlePath string
	// MessagePath is a gjson path and is required.
	MessagePath string
}

// Extract runs the payload through one pipeline per field.
func (e Extractor) Extract(payload string) (title, message string, err error) {
	if e.MessagePath == "" {
		return "", "", fmt.Errorf("a message path is required")
	}
	if e.TitlePath != "" {
		title, err = e.run(payload, e.TitlePath)
		if err != nil {
			return "", "", fmt.Errorf("title: %w", err)
		}
	}
	message, err = e.run(payload, e.MessagePath)
	if err != nil {
		return "", "", fmt.Errorf("message: %w", err)
	}
	return title, message, nil
}

func (e Extractor) run(payload, path string) (string, error) {
	format := e.Format
	if format == "" {
		format = "json"
	}
	if !slices.Contains(Formats, format) {
		return "", fmt.Errorf("unsupported payload format: %s", format)
	}

	var steps []string
	if e.Base64 {
		steps = append(steps, "base64-decode")
	}
	steps = append(steps, format, fmt.Sprintf("select '%s'", path))

	p, err := NewPipeline(steps)
	if err != nil {
		return "", err
	}
	return p.Run(payload)
}
