package gen

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const filePerm = 0o644

// Path returns where the file is written.
func (f *GeneratedFile) Path() string {
	return filepath.Join(f.Dir, f.Filename)
}

// WriteFiles writes every file into its package directory, skipping files whose
// content is already current. It returns the paths it wrote.
func WriteFiles(files []*GeneratedFile) ([]string, error) {
	var written []string
	for _, file := range files {
		current, err := IsCurrent(file)
		if err != nil {
			return written, err
		}

		if current {
			continue
		}

		if err := os.WriteFile(file.Path(), file.Content, filePerm); err != nil {
			return written, fmt.Errorf("writing file %s: %w", file.Path(), err)
		}

		written = append(written, file.Path())
	}

	return written, nil
}

// IsCurrent reports whether the file on disk already has the generated content.
func IsCurrent(file *GeneratedFile) (bool, error) {
	existing, err := os.ReadFile(file.Path())
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}

	if err != nil {
		return false, fmt.Errorf("reading file %s: %w", file.Path(), err)
	}

	return bytes.Equal(existing, file.Content), nil
}

// Stale returns the paths of files that are missing or outdated on disk.
func Stale(files []*GeneratedFile) ([]string, error) {
	var stale []string
	for _, file := range files {
		current, err := IsCurrent(file)
		if err != nil {
			return nil, err
		}

		if !current {
			stale = append(stale, file.Path())
		}
	}

	return stale, nil
}
