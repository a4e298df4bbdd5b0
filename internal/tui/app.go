// internal/tui/app.go
//
// The interactive shell for ticklist, built on bubbletea's
// model/update/view loop. The app is a small state machine: the main menu
// hands off to one of three flows (add, view, delete) and every flow
// returns to the menu, either completed or canceled.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ticklist/internal/config"
	"ticklist/internal/logbook"
	"ticklist/internal/storage"
	"ticklist/internal/task"
	"ticklist/internal/view"
)

// appState represents which "screen" we're on.
type appState int

const (
	stateMenu          appState = iota // Main menu with the task board
	stateAddText                       // Prompting for new task text
	stateAddImportance                 // Prompting for the new task's importance
	stateViewing                       // Full sorted list view
	stateDeleting                      // Prompting for a displayed number to delete
)

// cancelToken aborts the current flow with no side effects. Esc works too.
const cancelToken = "c"

// App is the main application model. It owns the store, the menu, and the
// single text input reused by every prompt.
type App struct {
	config  *config.Config
	store   *storage.Store
	logbook *logbook.Logbook
	styles  *Styles

	state       appState
	mainMenu    list.Model
	input       textinput.Model
	pendingText string
	status      string

	width  int
	height int
}

// AppOption customizes App construction.
type AppOption func(*App)

// WithStartupNotice seeds the status line, used to surface load warnings.
func WithStartupNotice(notice string) AppOption {
	return func(a *App) {
		if strings.TrimSpace(notice) != "" {
			a.status = a.styles.StatusErr.Render(notice)
		}
	}
}

// menuItem implements list.Item for the main menu entries.
type menuItem struct {
	title string
	desc  string
}

func (i menuItem) Title() string       { return i.title }
func (i menuItem) Description() string { return i.desc }
func (i menuItem) FilterValue() string { return i.title }

var menuItems = []list.Item{
	menuItem{title: "Add a task", desc: "Capture a task with an importance"},
	menuItem{title: "View tasks", desc: "High → Medium → Low"},
	menuItem{title: "Delete a task", desc: "Remove a task by its displayed number"},
	menuItem{title: "Quit", desc: "Leave ticklist"},
}

// NewApp creates the application model. The store must already be loaded.
func NewApp(cfg *config.Config, store *storage.Store, lb *logbook.Logbook, opts ...AppOption) *App {
	mainMenu := list.New(menuItems, list.NewDefaultDelegate(), 0, 0)
	mainMenu.Title = "Main Menu (1-4)"
	mainMenu.SetShowStatusBar(false)
	mainMenu.SetFilteringEnabled(false)
	mainMenu.SetShowHelp(false)

	app := &App{
		config:   cfg,
		store:    store,
		logbook:  lb,
		styles:   NewStyles(cfg.File.Theme),
		state:    stateMenu,
		mainMenu: mainMenu,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(app)
		}
	}
	lb.Info("Session opened · %d task(s) loaded from %s", store.Len(), store.Path())
	return app
}

// Init is called once when the program starts.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update is called when a message is received.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.mainMenu.SetSize(max(20, msg.Width-6), max(8, msg.Height-14))
		a.input.Width = max(20, msg.Width-10)
		return a, nil

	case tea.KeyMsg:
		switch a.state {
		case stateMenu:
			return a.updateMenu(msg)
		case stateViewing:
			return a.updateViewing(msg)
		case stateAddText:
			return a.updatePrompt(msg, a.submitAddText)
		case stateAddImportance:
			return a.updatePrompt(msg, a.submitAddImportance)
		case stateDeleting:
			return a.updatePrompt(msg, a.submitDelete)
		}
	}

	return a, nil
}

func (a *App) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "ctrl+c":
		return a, tea.Quit
	case "1", "2", "3", "4":
		choice, _ := strconv.Atoi(key)
		return a.handleMenuChoice(choice)
	case "enter":
		return a.handleMenuChoice(a.mainMenu.Index() + 1)
	case "up", "down", "j", "k":
		var cmd tea.Cmd
		a.mainMenu, cmd = a.mainMenu.Update(msg)
		return a, cmd
	default:
		if msg.Type == tea.KeyRunes {
			a.status = a.styles.StatusErr.Render("✖ Invalid choice. Please select 1, 2, 3, or 4.")
		}
		return a, nil
	}
}

func (a *App) handleMenuChoice(choice int) (tea.Model, tea.Cmd) {
	a.mainMenu.Select(choice - 1)
	switch choice {
	case 1:
		a.logbook.Info("Menu · Add selected")
		return a.startAdd()
	case 2:
		a.logbook.Info("Menu · View selected")
		a.state = stateViewing
		a.status = ""
		return a, nil
	case 3:
		a.logbook.Info("Menu · Delete selected")
		return a.startDelete()
	case 4:
		a.logbook.Info("Menu · Quit selected")
		return a, tea.Quit
	}
	return a, nil
}

func (a *App) updateViewing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return a, tea.Quit
	case "esc", "enter", "q", "m":
		return a.returnToMenu("")
	}
	return a, nil
}

// updatePrompt routes keys for the three text prompts: Esc cancels, Enter
// submits, everything else feeds the input.
func (a *App) updatePrompt(msg tea.KeyMsg, submit func(string) (tea.Model, tea.Cmd)) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return a, tea.Quit
	case "esc":
		return a.cancelFlow()
	case "enter":
		return submit(a.input.Value())
	}
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func isCancel(raw string) bool {
	lowered := strings.ToLower(strings.TrimSpace(raw))
	return lowered == cancelToken || lowered == "cancel"
}

func (a *App) startAdd() (tea.Model, tea.Cmd) {
	a.pendingText = ""
	a.input = newPromptInput("What needs doing?", 200)
	a.state = stateAddText
	a.status = ""
	return a, textinput.Blink
}

func (a *App) submitAddText(raw string) (tea.Model, tea.Cmd) {
	if isCancel(raw) {
		return a.cancelFlow()
	}
	trimmed := strings.TrimSpace(raw)
	switch {
	case trimmed == "":
		a.status = a.styles.StatusErr.Render("✖ Task cannot be empty. Try again or C to cancel.")
	case !task.ValidateText(trimmed):
		a.status = a.styles.StatusErr.Render(fmt.Sprintf("✖ Task text cannot contain %q. Try again or C to cancel.", task.Separator))
	default:
		a.pendingText = trimmed
		a.input = newPromptInput("H, M, L, or C to cancel", 20)
		a.state = stateAddImportance
		a.status = ""
	}
	return a, nil
}

func (a *App) submitAddImportance(raw string) (tea.Model, tea.Cmd) {
	if isCancel(raw) {
		return a.cancelFlow()
	}
	importance, ok := task.ParseImportance(raw)
	if !ok {
		a.status = a.styles.StatusErr.Render("✖ Invalid choice. Please enter H, M, L, or C.")
		a.input.SetValue("")
		return a, nil
	}
	added := task.New(a.pendingText, importance)
	saveErr := a.store.Add(added)
	confirmation := fmt.Sprintf("✔ Added (%s): %s",
		a.styles.Importance(importance).Render(importance.String()), added.Text)
	if saveErr != nil {
		a.logbook.Warn("Add saved in memory only: %v", saveErr)
		confirmation += "\n" + a.styles.StatusErr.Render(fmt.Sprintf("⚠ Save failed, keeping the task in memory: %v", saveErr))
	} else {
		a.logbook.Info("Added (%s): %s", importance, added.Text)
	}
	return a.returnToMenu(a.styles.StatusOK.Render(confirmation))
}

func (a *App) startDelete() (tea.Model, tea.Cmd) {
	if a.store.Len() == 0 {
		a.status = a.styles.StatusErr.Render("✖ No tasks to delete.")
		return a, nil
	}
	a.input = newPromptInput("Displayed number, or C to cancel", 10)
	a.state = stateDeleting
	a.status = ""
	return a, textinput.Blink
}

func (a *App) submitDelete(raw string) (tea.Model, tea.Cmd) {
	if isCancel(raw) {
		return a.cancelFlow()
	}
	ordinal, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		a.status = a.styles.StatusErr.Render("✖ Please enter a valid number, or C to cancel.")
		a.input.SetValue("")
		return a, nil
	}
	// The ordinal is mapped against the current list on every attempt; a
	// stale order here would delete the wrong task.
	index, err := view.StorageIndex(a.store.Tasks(), ordinal)
	if err != nil {
		a.status = a.styles.StatusErr.Render("✖ That task number doesn't exist. Try again or C to cancel.")
		a.input.SetValue("")
		return a, nil
	}
	removed, saveErr := a.store.Remove(index)
	confirmation := fmt.Sprintf("🗑 Deleted (%s): %s",
		a.styles.Importance(removed.Importance).Render(removed.Importance.String()), removed.Text)
	if saveErr != nil {
		a.logbook.Warn("Delete saved in memory only: %v", saveErr)
		confirmation += "\n" + a.styles.StatusErr.Render(fmt.Sprintf("⚠ Save failed, keeping the change in memory: %v", saveErr))
	} else {
		a.logbook.Info("Deleted (%s): %s", removed.Importance, removed.Text)
	}
	return a.returnToMenu(a.styles.StatusOK.Render(confirmation))
}

func (a *App) cancelFlow() (tea.Model, tea.Cmd) {
	a.logbook.Info("Flow canceled, returning to menu")
	return a.returnToMenu(a.styles.Muted.Render("Canceled. Returning to the main menu."))
}

// returnToMenu transitions back to the main menu, showing status (if any)
// above the freshly rendered task board.
func (a *App) returnToMenu(status string) (tea.Model, tea.Cmd) {
	a.state = stateMenu
	a.pendingText = ""
	a.input = textinput.Model{}
	a.status = status
	return a, nil
}

func newPromptInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = 40
	ti.Focus()
	return ti
}

// View renders the current state to a string.
func (a *App) View() string {
	var b strings.Builder
	b.WriteString(a.styles.Banner.Render("Welcome to Ticklist!"))
	b.WriteString("\n")
	b.WriteString(a.styles.Tagline.Render("Manage your tasks right from the terminal."))
	b.WriteString("\n\n")

	switch a.state {
	case stateMenu:
		b.WriteString(a.renderTaskPanel())
		b.WriteString("\n\n")
		b.WriteString(a.mainMenu.View())
	case stateViewing:
		b.WriteString(a.renderTaskPanel())
		b.WriteString("\n\n")
		b.WriteString(a.styles.Muted.Render("esc returns to the menu"))
	case stateAddText:
		b.WriteString(a.styles.Heading.Render("Add a task"))
		b.WriteString("\n")
		b.WriteString(a.styles.Prompt.Render("Enter a new task (or C to cancel):"))
		b.WriteString("\n")
		b.WriteString(a.input.View())
	case stateAddImportance:
		b.WriteString(a.styles.Heading.Render("Add a task"))
		b.WriteString("\n")
		b.WriteString(a.styles.TaskText.Render(a.pendingText))
		b.WriteString("\n")
		b.WriteString(a.renderImportanceLegend())
		b.WriteString("\n")
		b.WriteString(a.input.View())
	case stateDeleting:
		b.WriteString(a.renderTaskPanel())
		b.WriteString("\n\n")
		b.WriteString(a.styles.Prompt.Render("Enter the displayed task number to delete (or C to cancel):"))
		b.WriteString("\n")
		b.WriteString(a.input.View())
	}

	if a.status != "" {
		b.WriteString("\n\n")
		b.WriteString(a.status)
	}
	return b.String()
}

// renderTaskPanel shows the sorted list, or the friendly empty state.
func (a *App) renderTaskPanel() string {
	lines := view.Render(a.store.Tasks())
	if len(lines) == 0 {
		return a.styles.Empty.Render("Your list is empty — add your first task from the menu!")
	}
	rows := make([]string, 0, len(lines)+1)
	rows = append(rows, a.styles.Heading.Render("Your Tasks (High → Medium → Low):"))
	for _, line := range lines {
		rows = append(rows, fmt.Sprintf("  %s %s %s",
			a.styles.Ordinal.Render(fmt.Sprintf("%d.", line.Ordinal)),
			a.styles.Importance(line.Importance).Render("["+line.Importance.String()+"]"),
			a.styles.TaskText.Render(line.Text),
		))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (a *App) renderImportanceLegend() string {
	return fmt.Sprintf("%s %s / %s / %s / %s",
		a.styles.Prompt.Render("Select importance:"),
		a.styles.Importance(task.High).Render("[H]igh"),
		a.styles.Importance(task.Medium).Render("[M]edium"),
		a.styles.Importance(task.Low).Render("[L]ow"),
		a.styles.Prompt.Render("[C]ancel"),
	)
}
