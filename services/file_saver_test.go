package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDiskSaver_Save(t *testing.T) {
	dir := t.TempDir()
	saver := DiskSaver{Dir: dir}

	if err := saver.Save(context.Background(), "Acme-Contract-7.xlsx", SpreadsheetContentType, []byte("payload")); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := os.ReadFile(filepath.Join(dir, "Acme-Contract-7.xlsx"))
	if err != nil {
		t.Fatalf("read saved file: %v", err)
	}
	if string(got) != "payload" {
		t.Errorf("saved content = %q", got)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the saved file, found %d entries", len(entries))
	}
}

func TestDiskSaver_Overwrites(t *testing.T) {
	dir := t.TempDir()
	saver := DiskSaver{Dir: dir}
	ctx := context.Background()

	if err := saver.Save(ctx, "a.xlsx", "", []byte("one")); err != nil {
		t.Fatalf("first Save() error = %v", err)
	}
	if err := saver.Save(ctx, "a.xlsx", "", []byte("two")); err != nil {
		t.Fatalf("second Save() error = %v", err)
	}

	got, _ := os.ReadFile(filepath.Join(dir, "a.xlsx"))
	if string(got) != "two" {
		t.Errorf("content = %q, want two", got)
	}
}

func TestDiskSaver_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	if err := (DiskSaver{Dir: dir}).Save(context.Background(), "a.xlsx", "", []byte("x")); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "a.xlsx")); err != nil {
		t.Errorf("file not created: %v", err)
	}
}

func TestDiskSaver_RejectsPaths(t *testing.T) {
	dir := t.TempDir()
	saver := DiskSaver{Dir: dir}

	for _, name := range []string{"", "..", "../escape.xlsx", `a\b.xlsx`, "sub/a.xlsx"} {
		t.Run(name, func(t *testing.T) {
			err := saver.Save(context.Background(), name, "", []byte("x"))
			if !errors.Is(err, ErrInvalidFilename) {
				t.Errorf("Save(%q) error = %v, want ErrInvalidFilename", name, err)
			}
		})
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("expected empty dir, found %d entries", len(entries))
	}
}

func TestDiskSaver_CancelledContext(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := (DiskSaver{Dir: dir}).Save(ctx, "a.xlsx", "", []byte("x"))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
}
