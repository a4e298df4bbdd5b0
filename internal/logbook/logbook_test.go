package logbook

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestTailReturnsRecentLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.log")
	book, err := Open(path)
	if err != nil {
		t.Fatalf("open logbook: %v", err)
	}
	defer book.Close()
	for i := 0; i < 5; i++ {
		book.Info("entry-%d", i)
	}
	lines := book.Tail(3)
	if len(lines) != 3 {
		t.Fatalf("len(lines) = %d, want 3", len(lines))
	}
	for idx, want := range []string{"entry-2", "entry-3", "entry-4"} {
		if !strings.Contains(lines[idx], want) {
			t.Fatalf("line %d = %q, missing %s", idx, lines[idx], want)
		}
	}
}

func TestLevelsAreRecorded(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.log")
	book, err := Open(path)
	if err != nil {
		t.Fatalf("open logbook: %v", err)
	}
	defer book.Close()
	book.Warn("save failed")
	book.Error("boom")
	lines := book.Tail(10)
	if len(lines) != 2 {
		t.Fatalf("len(lines) = %d, want 2", len(lines))
	}
	if !strings.Contains(lines[0], "WARN") || !strings.Contains(lines[1], "ERROR") {
		t.Fatalf("levels missing from entries: %v", lines)
	}
}

func TestNilLogbookIsSafe(t *testing.T) {
	var book *Logbook
	book.Info("ignored")
	if lines := book.Tail(5); lines != nil {
		t.Fatalf("nil logbook tail = %v, want nil", lines)
	}
	if err := book.Close(); err != nil {
		t.Fatalf("nil close: %v", err)
	}
}
