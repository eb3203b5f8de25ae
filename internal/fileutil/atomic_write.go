package fileutil

import (
	"os"
	"path/filepath"
)

// AtomicWriteFile writes data to filename through a temporary file in the
// same directory, so readers never observe a partial file. Missing parent
// directories are created with 0700. It returns true if the file was created.
func AtomicWriteFile(filename string, data []byte, perm os.FileMode) (bool, error) {
	_, err := os.Stat(filename)
	created := os.IsNotExist(err)

	dir, name := filepath.Split(filename)
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return false, err
	}

	tmpfile, err := os.CreateTemp(dir, name+".*.tmp")
	if err != nil {
		return false, err
	}
	defer os.Remove(tmpfile.Name()) // no-op after a successful rename

	if _, err := tmpfile.Write(data); err != nil {
		tmpfile.Close()
		return false, err
	}
	if err := tmpfile.Sync(); err != nil {
		tmpfile.Close()
		return false, err
	}
	if err := tmpfile.Close(); err != nil {
		return false, err
	}

	if err := os.Chmod(tmpfile.Name(), perm); err != nil {
		return false, err
	}
	if err := os.Rename(tmpfile.Name(), filename); err != nil {
		return false, err
	}
	return created, nil
}
