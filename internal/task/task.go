package task

import "strings"

// Separator divides the importance field from the task text in the
// persisted file format. Task text must never contain it.
const Separator = "|"

// Importance is a task's priority band. It determines display order only.
type Importance string

const (
	High   Importance = "HIGH"
	Medium Importance = "MEDIUM"
	Low    Importance = "LOW"
)

// rank orders importances for display: High sorts first, Low last.
var rank = map[Importance]int{
	High:   0,
	Medium: 1,
	Low:    2,
}

// Rank returns the sort rank of the importance. Unknown values sort last.
func (i Importance) Rank() int {
	if r, ok := rank[i]; ok {
		return r
	}
	return len(rank)
}

// String returns the uppercase label used in the persisted format and the UI.
func (i Importance) String() string {
	return string(i)
}

// ParseImportance interprets user or file input as an importance level.
// Single letters and full words are accepted, case-insensitively.
func ParseImportance(raw string) (Importance, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "h", "high":
		return High, true
	case "m", "med", "medium":
		return Medium, true
	case "l", "low":
		return Low, true
	}
	return "", false
}

// Task is a single to-do entry. Tasks have no identity beyond their
// position in the stored list; duplicates are allowed.
type Task struct {
	Text       string
	Importance Importance
}

// New builds a task from trimmed text and an importance level.
func New(text string, importance Importance) Task {
	return Task{Text: strings.TrimSpace(text), Importance: importance}
}

// ValidateText reports whether text is usable as task text: non-empty after
// trimming and free of the field separator. The separator is rejected at
// entry because the stored format cannot escape it.
func ValidateText(text string) bool {
	trimmed := strings.TrimSpace(text)
	return trimmed != "" && !strings.Contains(trimmed, Separator)
}
