package storage

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"ticklist/internal/task"
)

// Decode reads the line-oriented task format: one task per line as
// IMPORTANCE|text. Malformed lines are dropped silently so a damaged file
// degrades to a shorter list instead of failing startup. Decode is total;
// it never reports an error.
func Decode(r io.Reader) []task.Task {
	var tasks []task.Task
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		field, text, found := strings.Cut(line, task.Separator)
		if !found {
			continue
		}
		importance, ok := task.ParseImportance(field)
		if !ok {
			continue
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		tasks = append(tasks, task.Task{Text: text, Importance: importance})
	}
	return tasks
}

// Encode writes tasks in storage order, one IMPORTANCE|text line each.
func Encode(w io.Writer, tasks []task.Task) error {
	for _, t := range tasks {
		if _, err := fmt.Fprintf(w, "%s%s%s\n", t.Importance, task.Separator, t.Text); err != nil {
			return fmt.Errorf("storage: encode task list: %w", err)
		}
	}
	return nil
}
