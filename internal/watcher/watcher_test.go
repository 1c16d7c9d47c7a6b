package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
)

// ingestRecorder collects paths passed to onIngest.
type ingestRecorder struct {
	mu    sync.Mutex
	paths []string
}

func (r *ingestRecorder) record(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths = append(r.paths, path)
}

func (r *ingestRecorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.paths))
	copy(out, r.paths)
	return out
}

func (r *ingestRecorder) waitFor(t *testing.T, path string, timeout time.Duration) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		for _, p := range r.snapshot() {
			if p == path {
				return
			}
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for ingestion of %s; got %v", path, r.snapshot())
}

func TestSyncExistingFiles(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "acts")
	if err := os.MkdirAll(sub, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	for _, name := range []string{"constitution.txt", filepath.Join("acts", "it_act.pdf"), "notes.md"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("text"), 0644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	rec := &ingestRecorder{}
	w := New(dir, []string{".txt", ".pdf"}, rec.record, zap.NewNop())
	w.SyncExistingFiles()

	got := rec.snapshot()
	sort.Strings(got)
	want := []string{filepath.Join(dir, "acts", "it_act.pdf"), filepath.Join(dir, "constitution.txt")}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sync %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestWatcher_IngestsNewFile(t *testing.T) {
	dir := t.TempDir()
	rec := &ingestRecorder{}
	w := New(dir, []string{".txt"}, rec.record, zap.NewNop())
	w.debounce = 50 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := w.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}
	defer w.Stop()

	path := filepath.Join(dir, "crpc.txt")
	if err := os.WriteFile(path, []byte("Section 154."), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	rec.waitFor(t, path, 5*time.Second)
}

func TestWatcher_IgnoresOtherExtensions(t *testing.T) {
	dir := t.TempDir()
	rec := &ingestRecorder{}
	w := New(dir, []string{".txt"}, rec.record, zap.NewNop())
	w.debounce = 50 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := w.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}
	defer w.Stop()

	ignored := filepath.Join(dir, "README.md")
	if err := os.WriteFile(ignored, []byte("docs"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	watched := filepath.Join(dir, "ipc.txt")
	if err := os.WriteFile(watched, []byte("Section 420."), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	rec.waitFor(t, watched, 5*time.Second)
	for _, p := range rec.snapshot() {
		if p == ignored {
			t.Errorf("non-matching extension was ingested: %s", p)
		}
	}
}

func TestWatcher_DebouncesRapidWrites(t *testing.T) {
	dir := t.TempDir()
	rec := &ingestRecorder{}
	w := New(dir, []string{".txt"}, rec.record, zap.NewNop())
	w.debounce = 200 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := w.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}
	defer w.Stop()

	path := filepath.Join(dir, "act.txt")
	for i := 0; i < 5; i++ {
		if err := os.WriteFile(path, []byte("revision"), 0644); err != nil {
			t.Fatalf("write %d: %v", i, err)
		}
		time.Sleep(20 * time.Millisecond)
	}

	rec.waitFor(t, path, 5*time.Second)
	// Allow any stragglers to fire before counting.
	time.Sleep(400 * time.Millisecond)
	count := 0
	for _, p := range rec.snapshot() {
		if p == path {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected rapid writes to coalesce into 1 ingestion, got %d", count)
	}
}

func TestMatchExtension(t *testing.T) {
	w := New("root", []string{".pdf", ".txt"}, func(string) {}, zap.NewNop())
	tests := []struct {
		path string
		want bool
	}{
		{"a/b/doc.pdf", true},
		{"a/b/DOC.PDF", true},
		{"notes.txt", true},
		{"image.png", false},
		{"noext", false},
	}
	for _, tt := range tests {
		if got := w.matchExtension(tt.path); got != tt.want {
			t.Errorf("matchExtension(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}

	all := New("root", nil, func(string) {}, zap.NewNop())
	if !all.matchExtension("anything.bin") {
		t.Error("empty extension filter must match everything")
	}
}
