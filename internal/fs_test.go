package internal

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestCheckRoot(t *testing.T) {
	dir := t.TempDir()
	if err := CheckRoot(dir); err != nil {
		t.Fatalf("existing dir must pass: %v", err)
	}

	err := CheckRoot(filepath.Join(dir, "missing"))
	if !errors.Is(err, ErrRootNotFound) {
		t.Fatalf("expected ErrRootNotFound, got %v", err)
	}

	file := filepath.Join(dir, "plain.md")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	err = CheckRoot(file)
	if err == nil || errors.Is(err, ErrRootNotFound) {
		t.Fatalf("file root needs its own error, got %v", err)
	}
}

func TestDepthCount(t *testing.T) {
	if depthCount("") != 0 {
		t.Fatal("empty rel should be 0")
	}
	if depthCount("a") != 1 || depthCount(filepath.Join("a", "b")) != 2 {
		t.Fatal("depthCount wrong")
	}
}

func TestWalkWithDepth(t *testing.T) {
	dir := t.TempDir()
	// a/, a/b/, a/b/c.md
	if err := os.MkdirAll(filepath.Join(dir, "a", "b"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "a", "b", "c.md"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	var seen []string
	err := WalkWithDepth(context.Background(), dir, 1, func(path string, d os.DirEntry, err error) error {
		if err == nil && !d.IsDir() {
			seen = append(seen, path)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk: %v", err)
	}

	// with depth=1 we should not see c.md under a/b
	for _, p := range seen {
		if filepath.Base(p) == "c.md" {
			t.Fatalf("should not visit deep file with depth=1")
		}
	}

	// depth=0 unlimited should see c.md
	seen = nil
	err = WalkWithDepth(context.Background(), dir, 0, func(path string, d os.DirEntry, err error) error {
		if err == nil && !d.IsDir() {
			seen = append(seen, path)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk: %v", err)
	}
	found := false
	for _, p := range seen {
		if filepath.Base(p) == "c.md" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected to see c.md with depth=0")
	}
}

func TestWalkWithDepth_CallbackError(t *testing.T) {
	dir := t.TempDir()
	_ = os.WriteFile(filepath.Join(dir, "a.md"), []byte("x"), 0644)

	boom := errors.New("boom")
	gotErr := WalkWithDepth(context.Background(), dir, 0, func(path string, d os.DirEntry, err error) error {
		if !d.IsDir() {
			return boom
		}
		return nil
	})
	if !errors.Is(gotErr, boom) {
		t.Fatalf("expected callback error to propagate, got %v", gotErr)
	}
}
