package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrInvalidFilename is returned by DiskSaver for names that would escape Dir.
var ErrInvalidFilename = errors.New("invalid filename")

// DiskSaver writes export files into Dir. The file is written under a
// temporary name and renamed into place, so a failed save leaves nothing
// behind.
type DiskSaver struct {
	Dir string
}

func (s DiskSaver) Save(ctx context.Context, filename, _ string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if filename == "" || filename == "." || filename == ".." || strings.ContainsAny(filename, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidFilename, filename)
	}

	dir := s.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".export-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", filename, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", filename, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("chmod %s: %w", filename, err)
	}
	if err := os.Rename(tmpName, filepath.Join(dir, filename)); err != nil {
		return fmt.Errorf("rename %s: %w", filename, err)
	}
	return nil
}
