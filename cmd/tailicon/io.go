package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/matryer/try"
)

// outputFile writes to a temporary file next to the output and renames it into place on Close, so that pages watching the output never read half-written icons.
type outputFile struct {
	*os.File
	output string
}

func (f *outputFile) Close() error {
	if err := f.File.Close(); err != nil {
		os.Remove(f.Name())
		return err
	}
	if err := os.Rename(f.Name(), f.output); err != nil {
		os.Remove(f.Name())
		return fmt.Errorf("rename output file %q: %w", f.output, err)
	}
	return nil
}

// Discard closes and removes the temporary file, leaving the output untouched.
func (f *outputFile) Discard() {
	f.File.Close()
	os.Remove(f.Name())
}

// openOutputFile opens the output file for writing, creating its directory if needed. An empty output is stdout.
func openOutputFile(output string) (io.WriteCloser, error) {
	if output == "" {
		return os.Stdout, nil
	}

	dir := filepath.Dir(output)
	if err := os.MkdirAll(dir, 0777); err != nil {
		return nil, fmt.Errorf("creating directory %q: %w", dir, err)
	}

	var w *os.File
	err := try.Do(func(attempt int) (bool, error) {
		var ferr error
		w, ferr = os.CreateTemp(dir, "."+filepath.Base(output)+".*")
		return attempt < 5, ferr
	})
	if err != nil {
		return nil, fmt.Errorf("open output file %q: %w", output, err)
	}
	return &outputFile{w, output}, nil
}
