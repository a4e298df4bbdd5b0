// Package view computes the sorted display order for the task list. It is
// pure: nothing here touches storage or terminal styling, so the
// index-mapping logic stays testable on its own.
package view

import (
	"fmt"
	"sort"

	"ticklist/internal/task"
)

// Line is one row of the displayed list: a 1-based ordinal, the importance
// label, and the task text.
type Line struct {
	Ordinal    int
	Importance task.Importance
	Text       string
}

// SortOrder returns a permutation of storage indices grouping tasks
// High, then Medium, then Low. Within a group storage order is preserved,
// so the mapping from displayed ordinal to storage index is deterministic.
// It must be recomputed from the current list on every use; a stale order
// applied after a mutation would delete the wrong task.
func SortOrder(tasks []task.Task) []int {
	order := make([]int, len(tasks))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return tasks[order[a]].Importance.Rank() < tasks[order[b]].Importance.Rank()
	})
	return order
}

// StorageIndex maps a 1-based displayed ordinal back to the storage index
// of the task shown at that position, using a fresh sort order for tasks.
func StorageIndex(tasks []task.Task, ordinal int) (int, error) {
	order := SortOrder(tasks)
	if ordinal < 1 || ordinal > len(order) {
		return 0, fmt.Errorf("view: ordinal %d out of range [1,%d]", ordinal, len(order))
	}
	return order[ordinal-1], nil
}

// Render produces the displayed rows in sorted order. An empty list yields
// an empty slice; callers show their own empty-state message.
func Render(tasks []task.Task) []Line {
	order := SortOrder(tasks)
	lines := make([]Line, 0, len(order))
	for pos, idx := range order {
		lines = append(lines, Line{
			Ordinal:    pos + 1,
			Importance: tasks[idx].Importance,
			Text:       tasks[idx].Text,
		})
	}
	return lines
}
