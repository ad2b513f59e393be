package staticrouter

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"
)

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestWatchReloadsOnContentChange(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "index.md"), "---\ntitle: First\n---\n\noriginal body\n")

	cfg := DefaultConfig()
	cfg.Content.Dir = dir
	cfg.Watch.Debounce = 20 * time.Millisecond

	sr, err := New(cfg)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := sr.Watch(ctx); err != nil {
		t.Fatalf("Watch returned error: %v", err)
	}
	defer sr.StopWatch()

	writeFile(t, filepath.Join(dir, "index.md"), "---\ntitle: Second\n---\n\nupdated body\n")

	deadline := time.After(5 * time.Second)
	for {
		if page, ok := sr.Page("/"); ok && strings.Contains(page.Content(), "updated body") {
			return
		}
		select {
		case <-deadline:
			t.Fatalf("page content was not reloaded after file change")
		case <-time.After(25 * time.Millisecond):
		}
	}
}

func TestWatchRequiresContentDir(t *testing.T) {
	sr, err := New(DefaultConfig(), WithLoader(&stubLoader{}))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	if err := sr.Watch(context.Background()); !errors.Is(err, ErrWatchUnavailable) {
		t.Fatalf("expected ErrWatchUnavailable, got %v", err)
	}
}

func TestWatchRejectsSecondStart(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "index.md"), "---\ntitle: Only\n---\n\nbody\n")

	cfg := DefaultConfig()
	cfg.Content.Dir = dir

	sr, err := New(cfg)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	ctx := context.Background()
	if err := sr.Watch(ctx); err != nil {
		t.Fatalf("first Watch returned error: %v", err)
	}
	defer sr.StopWatch()

	if err := sr.Watch(ctx); !errors.Is(err, ErrWatchAlreadyRunning) {
		t.Fatalf("expected ErrWatchAlreadyRunning, got %v", err)
	}
}

func TestWatchEnabledStartsAtConstruction(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "index.md"), "---\ntitle: Only\n---\n\nbody\n")

	cfg := DefaultConfig()
	cfg.Content.Dir = dir
	cfg.Watch.Enabled = true

	sr, err := New(cfg)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	defer sr.StopWatch()

	if err := sr.Watch(context.Background()); !errors.Is(err, ErrWatchAlreadyRunning) {
		t.Fatalf("watcher should already be running, got %v", err)
	}
}

func TestStopWatchReleasesContextGoroutine(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "index.md"), "---\ntitle: Only\n---\n\nbody\n")

	cfg := DefaultConfig()
	cfg.Content.Dir = dir

	sr, err := New(cfg)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	before := runtime.NumGoroutine()

	// The context is never cancelled, so each cycle's ctx goroutine must be
	// released by StopWatch closing the watcher.
	for i := 0; i < 8; i++ {
		if err := sr.Watch(context.Background()); err != nil {
			t.Fatalf("Watch cycle %d returned error: %v", i, err)
		}
		sr.StopWatch()
	}

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if runtime.NumGoroutine() <= before+2 {
			return
		}
		time.Sleep(25 * time.Millisecond)
	}
	t.Fatalf("goroutines did not settle after watch cycles: before=%d now=%d", before, runtime.NumGoroutine())
}

func TestStopWatchIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "index.md"), "---\ntitle: Only\n---\n\nbody\n")

	cfg := DefaultConfig()
	cfg.Content.Dir = dir

	sr, err := New(cfg)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	if err := sr.Watch(context.Background()); err != nil {
		t.Fatalf("Watch returned error: %v", err)
	}

	sr.StopWatch()
	sr.StopWatch()
}
