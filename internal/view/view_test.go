package view

import (
	"reflect"
	"testing"

	"ticklist/internal/task"
)

func sample() []task.Task {
	return []task.Task{
		{Text: "low-1", Importance: task.Low},
		{Text: "high-1", Importance: task.High},
		{Text: "med-1", Importance: task.Medium},
		{Text: "high-2", Importance: task.High},
		{Text: "low-2", Importance: task.Low},
	}
}

func TestSortOrderGroupsByImportanceStably(t *testing.T) {
	got := SortOrder(sample())
	want := []int{1, 3, 2, 0, 4}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("sort order = %v, want %v", got, want)
	}
}

func TestSortOrderIsBijective(t *testing.T) {
	tasks := sample()
	order := SortOrder(tasks)
	seen := map[int]bool{}
	for _, idx := range order {
		if idx < 0 || idx >= len(tasks) {
			t.Fatalf("index %d out of range", idx)
		}
		if seen[idx] {
			t.Fatalf("index %d appears twice", idx)
		}
		seen[idx] = true
	}
	if len(seen) != len(tasks) {
		t.Fatalf("order covers %d of %d indices", len(seen), len(tasks))
	}
}

func TestStorageIndexMapsEveryOrdinal(t *testing.T) {
	tasks := sample()
	wantTexts := []string{"high-1", "high-2", "med-1", "low-1", "low-2"}
	for ordinal := 1; ordinal <= len(tasks); ordinal++ {
		idx, err := StorageIndex(tasks, ordinal)
		if err != nil {
			t.Fatalf("ordinal %d: %v", ordinal, err)
		}
		if tasks[idx].Text != wantTexts[ordinal-1] {
			t.Fatalf("ordinal %d maps to %q, want %q", ordinal, tasks[idx].Text, wantTexts[ordinal-1])
		}
	}
}

func TestStorageIndexRejectsOutOfRange(t *testing.T) {
	tasks := sample()
	for _, ordinal := range []int{0, -1, len(tasks) + 1} {
		if _, err := StorageIndex(tasks, ordinal); err == nil {
			t.Fatalf("ordinal %d should be rejected", ordinal)
		}
	}
	if _, err := StorageIndex(nil, 1); err == nil {
		t.Fatalf("any ordinal on an empty list should be rejected")
	}
}

func TestStorageIndexRecomputesAfterRemoval(t *testing.T) {
	tasks := sample()
	idx, err := StorageIndex(tasks, 1)
	if err != nil {
		t.Fatalf("map: %v", err)
	}
	if tasks[idx].Text != "high-1" {
		t.Fatalf("ordinal 1 = %q, want high-1", tasks[idx].Text)
	}
	remaining := append(append([]task.Task{}, tasks[:idx]...), tasks[idx+1:]...)
	idx2, err := StorageIndex(remaining, 1)
	if err != nil {
		t.Fatalf("map after removal: %v", err)
	}
	if remaining[idx2].Text != "high-2" {
		t.Fatalf("ordinal 1 after removal = %q, want high-2", remaining[idx2].Text)
	}
}

func TestRenderProducesOrdinalsInDisplayOrder(t *testing.T) {
	lines := Render(sample())
	if len(lines) != 5 {
		t.Fatalf("rendered %d lines, want 5", len(lines))
	}
	for i, line := range lines {
		if line.Ordinal != i+1 {
			t.Fatalf("line %d ordinal = %d", i, line.Ordinal)
		}
	}
	if lines[0].Text != "high-1" || lines[0].Importance != task.High {
		t.Fatalf("first line = %+v", lines[0])
	}
	if lines[4].Text != "low-2" || lines[4].Importance != task.Low {
		t.Fatalf("last line = %+v", lines[4])
	}
}

func TestRenderEmptyList(t *testing.T) {
	if lines := Render(nil); len(lines) != 0 {
		t.Fatalf("empty list rendered %d lines", len(lines))
	}
}

func TestRenderDoesNotMutateInput(t *testing.T) {
	tasks := sample()
	before := make([]task.Task, len(tasks))
	copy(before, tasks)
	Render(tasks)
	SortOrder(tasks)
	if !reflect.DeepEqual(tasks, before) {
		t.Fatalf("render mutated its input")
	}
}
