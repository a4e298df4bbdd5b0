package storage

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"ticklist/internal/task"
)

func TestDecodeSkipsMalformedLines(t *testing.T) {
	raw := strings.Join([]string{
		"HIGH|Buy milk",
		"bogus line",
		"",
		"low|sleep",
	}, "\n")
	got := Decode(strings.NewReader(raw))
	want := []task.Task{
		{Text: "Buy milk", Importance: task.High},
		{Text: "sleep", Importance: task.Low},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("decode = %+v, want %+v", got, want)
	}
}

func TestDecodeDropsBadImportanceAndEmptyText(t *testing.T) {
	raw := strings.Join([]string{
		"URGENT|do it now",
		"HIGH|   ",
		"|no importance",
		"  MEDIUM  |  spaced out  ",
	}, "\n")
	got := Decode(strings.NewReader(raw))
	if len(got) != 1 {
		t.Fatalf("expected exactly one surviving task, got %+v", got)
	}
	if got[0].Text != "spaced out" || got[0].Importance != task.Medium {
		t.Fatalf("surviving task = %+v", got[0])
	}
}

func TestDecodeSplitsOnFirstSeparatorOnly(t *testing.T) {
	got := Decode(strings.NewReader("HIGH|a|b\n"))
	if len(got) != 1 || got[0].Text != "a|b" {
		t.Fatalf("expected text to keep later separators, got %+v", got)
	}
}

func TestEncodeWritesUppercaseStorageOrder(t *testing.T) {
	tasks := []task.Task{
		{Text: "Write report", Importance: task.Medium},
		{Text: "Call vet", Importance: task.High},
	}
	var buf bytes.Buffer
	if err := Encode(&buf, tasks); err != nil {
		t.Fatalf("encode: %v", err)
	}
	want := "MEDIUM|Write report\nHIGH|Call vet\n"
	if buf.String() != want {
		t.Fatalf("encoded = %q, want %q", buf.String(), want)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	tasks := []task.Task{
		{Text: "one", Importance: task.Low},
		{Text: "two", Importance: task.High},
		{Text: "three", Importance: task.Medium},
		{Text: "two", Importance: task.High},
	}
	var buf bytes.Buffer
	if err := Encode(&buf, tasks); err != nil {
		t.Fatalf("encode: %v", err)
	}
	got := Decode(&buf)
	if !reflect.DeepEqual(got, tasks) {
		t.Fatalf("round trip mismatch: %+v vs %+v", got, tasks)
	}
}
