package journal

import (
	"bytes"
	"demon-waves/internal/demon"
	"demon-waves/internal/wave"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func TestDefaultDirXDGEnvOverride(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_DATA_HOME", tmp)

	dir, err := DefaultDir()
	if err != nil {
		t.Fatalf("DefaultDir returned error: %v", err)
	}
	want := filepath.Join(tmp, "demon-waves")
	if dir != want {
		t.Errorf("dir = %q; want %q", dir, want)
	}
}

func TestDefaultDirFallback(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "") // force the fallback path

	dir, err := DefaultDir()
	if err != nil {
		t.Skip("skipping: no user home directory available in test environment")
	}
	suffix := filepath.Join(".local", "share", "demon-waves")
	if !strings.HasSuffix(dir, suffix) {
		t.Errorf("dir %q does not end with %q", dir, suffix)
	}
}

func TestObserveAppendsEntries(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	j := New(dir, quietLogger())
	fixed := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	j.now = func() time.Time { return fixed }

	j.Observe(wave.Summary{Wave: 3, Count: 2, Types: wave.Composition{demon.Demon, demon.Imp}, Reinforced: true})
	j.Observe(wave.Summary{Wave: 4, Count: 1, Types: wave.Composition{demon.Baron}})

	entries, err := Read(j.Path())
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d; want 2", len(entries))
	}
	first := entries[0]
	if first.Wave != 3 || first.Count != 2 || !first.Reinforced || !first.Timestamp.Equal(fixed) {
		t.Errorf("first entry = %+v", first)
	}
	if len(first.Types) != 2 || first.Types[0] != demon.Demon {
		t.Errorf("first types = %v; want [DEMON IMP]", first.Types)
	}
	if first.Session != j.Session() || entries[1].Session != j.Session() {
		t.Errorf("session ids %q/%q; want %q", first.Session, entries[1].Session, j.Session())
	}
}

func TestEntryTypesWrittenByName(t *testing.T) {
	j := New(t.TempDir(), quietLogger())
	j.Observe(wave.Summary{Wave: 1, Count: 1, Types: wave.Composition{demon.Cacodemon}})

	data, err := os.ReadFile(j.Path())
	if err != nil {
		t.Fatalf("journal not created: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, `"types":["CACODEMON"]`) {
		t.Errorf("journal line should carry type names; got: %q", content)
	}
	if !strings.HasSuffix(content, "\n") {
		t.Errorf("journal line should end with newline; got: %q", content)
	}
}

func TestSessionIsUUID(t *testing.T) {
	a := New(t.TempDir(), quietLogger())
	b := New(t.TempDir(), quietLogger())
	if _, err := uuid.Parse(a.Session()); err != nil {
		t.Errorf("session %q is not a UUID: %v", a.Session(), err)
	}
	if a.Session() == b.Session() {
		t.Error("two journals share a session id")
	}
}

func TestObserveUnwritableDirLogs(t *testing.T) {
	// A regular file where the directory should be makes MkdirAll fail.
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	j := New(filepath.Join(blocker, "journal"), slog.New(slog.NewTextHandler(&buf, nil)))
	j.Observe(wave.Summary{Wave: 1})

	if !strings.Contains(buf.String(), "journal: cannot create dir") {
		t.Errorf("expected a warning, got %q", buf.String())
	}
}

func TestReadRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte("{not json}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Read(path); err == nil {
		t.Error("expected error for malformed line")
	}
	if _, err := Read(filepath.Join(t.TempDir(), "missing.jsonl")); err == nil {
		t.Error("expected error for missing file")
	}
}
