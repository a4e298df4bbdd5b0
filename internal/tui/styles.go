package tui

import (
	"github.com/charmbracelet/lipgloss"

	"ticklist/internal/config"
	"ticklist/internal/task"
)

// Styles holds every lipgloss style the app renders with. Keeping them in
// one place means the list and prompt logic never touches color codes.
type Styles struct {
	Banner    lipgloss.Style
	Tagline   lipgloss.Style
	Heading   lipgloss.Style
	Ordinal   lipgloss.Style
	TaskText  lipgloss.Style
	Empty     lipgloss.Style
	Prompt    lipgloss.Style
	StatusOK  lipgloss.Style
	StatusErr lipgloss.Style
	Muted     lipgloss.Style

	importance map[task.Importance]lipgloss.Style
}

// NewStyles builds the style set, taking importance colors from the theme.
func NewStyles(theme config.Theme) *Styles {
	return &Styles{
		Banner:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5BC0EB")),
		Tagline:   lipgloss.NewStyle().Foreground(lipgloss.Color("#5B8DEF")),
		Heading:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F7B801")),
		Ordinal:   lipgloss.NewStyle().Foreground(lipgloss.Color("#CCCCCC")),
		TaskText:  lipgloss.NewStyle().Foreground(lipgloss.Color("#EEEEEE")),
		Empty:     lipgloss.NewStyle().Foreground(lipgloss.Color("#5B8DEF")),
		Prompt:    lipgloss.NewStyle().Foreground(lipgloss.Color("#CCCCCC")),
		StatusOK:  lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50")),
		StatusErr: lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")),
		Muted:     lipgloss.NewStyle().Foreground(lipgloss.Color("#999999")),
		importance: map[task.Importance]lipgloss.Style{
			task.High:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.High)),
			task.Medium: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Medium)),
			task.Low:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Low)),
		},
	}
}

// Importance returns the label style for an importance level.
func (s *Styles) Importance(i task.Importance) lipgloss.Style {
	if style, ok := s.importance[i]; ok {
		return style
	}
	return s.TaskText
}
