package transform

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

// Transformer is an interface for transforming data.
type Transformer interface {
	Transform(input any) (any, error)
}

// Pipeline holds a series of transformers.
type Pipeline struct {
	transformers []Transformer
}

type base64DecodeTransformer struct{}
type jsonTransformer struct{}
type tomlTransformer struct{}
type yamlTransformer struct{}
type selectTransformer struct {
	Path string
}
type structuredData map[string]any

// NewPipeline creates a new transformation pipeline from names such as
// "json", "yaml", "toml", "base64-decode" and "select 'a.b'".
func NewPipeline(transformations []string) (*Pipeline, error) {
	var transformers []Transformer
	for _, t := range transformations {
		transformer, err := newTransformer(strings.TrimSpace(t))
		if err != nil {
			return nil, err
		}
		transformers = append(transformers, transformer)
	}
	return &Pipeline{transformers: transformers}, nil
}

// Run executes the pipeline on the given input.
func (p *Pipeline) Run(input string) (string, error) {
	var current any = input
	for _, t := range p.transformers {
		var err error
		current, err = t.Transform(current)
		if err != nil {
			return "", err
		}
	}

	output, ok := current.(string)
	if !ok {
		return "", fmt.Errorf("pipeline did not produce a string output")
	}
	return output, nil
}

func newTransformer(name string) (Transformer, error) {
	switch {
	case name == "base64-decode":
		return &base64DecodeTransformer{}, nil
	case name == "json":
		return &jsonTransformer{}, nil
	case name == "toml":
		return &tomlTransformer{}, nil
	case name == "yaml":
		return &yamlTransformer{}, nil
	case strings.HasPrefix(name, "select "):
		path := strings.TrimPrefix(name, "select ")
		return &selectTransformer{Path: strings.Trim(path, "'\"")}, nil
	default:
		return nil, fmt.Errorf("unknown transformer: %s", name)
	}
}

func asString(name string, input any) (string, error) {
	s, ok := input.(string)
	if !ok {
		return "", fmt.Errorf("%s: input must be a string", name)
	}
	return s, nil
}

func (t *base64DecodeTransformer) Transform(input any) (any, error) {
	s, err := asString("base64-decode", input)
	if err != nil {
		return nil, err
	}
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("base64-decode: %w", err)
	}
	return string(decoded), nil
}

func (t *jsonTransformer) Transform(input any) (any, error) {
	s, err := asString("json", input)
	if err != nil {
		return nil, err
	}
	var data structuredData
	if err := json.Unmarshal([]byte(s), &data); err != nil {
		return nil, fmt.Errorf("json: %w", err)
	}
	return data, nil
}

func (t *tomlTransformer) Transform(input any) (any, error) {
	s, err := asString("toml", input)
	if err != nil {
		return nil, err
	}
	var data structuredData
	if err := toml.Unmarshal([]byte(s), &data); err != nil {
		return nil, fmt.Errorf("toml: %w", err)
	}
	return data, nil
}

func (t *yamlTransformer) Transform(input any) (any, error) {
	s, err := asString("yaml", input)
	if err != nil {
		return nil, err
	}
	var data structuredData
	if err := yaml.Unmarshal([]byte(s), &data); err != nil {
		return nil, fmt.Errorf("yaml: %w", err)
	}
	return data, nil
}

func (t *selectTransformer) Transform(input any) (any, error) {
	data, ok := input.(structuredData)
	if !ok {
		return nil, fmt.Errorf("select: input must be structured data")
	}
	// Round-trip through JSON so gjson paths work for every input format.
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("select: failed to convert back to json: %w", err)
	}
	result := gjson.GetBytes(jsonBytes, t.Path)
	if !result.Exists() {
		return nil, fmt.Errorf("select: path not found: %s", t.Path)
	}

	if result.IsObject() || result.IsArray() {
		return result.Raw, nil
	}
	return result.String(), nil
}
