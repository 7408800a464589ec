package tui

import (
	"maps"
	"slices"
	"strings"

	"github.com/Iron-Ham/taskboard/internal/dashboard"
	"github.com/Iron-Ham/taskboard/internal/errors"
	"github.com/Iron-Ham/taskboard/internal/logging"
	"github.com/Iron-Ham/taskboard/internal/project"
	"github.com/Iron-Ham/taskboard/internal/tui/keymap"
	"github.com/Iron-Ham/taskboard/internal/tui/styles"
	"github.com/Iron-Ham/taskboard/internal/tui/view"
	"github.com/Iron-Ham/taskboard/internal/views"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Options configures a Model.
type Options struct {
	// Filter is the filter applied when the dashboard opens.
	Filter views.Filter
	// ConfirmDelete asks for y/n before a project is deleted.
	ConfirmDelete bool
	// Roster lists the people offered as assignees in the project form.
	Roster []string
	// Keymap overrides the default key bindings.
	Keymap *keymap.Keymap
	Logger *logging.Logger
}

// Model is the Bubble Tea model for the dashboard.
type Model struct {
	svc    *dashboard.Service
	sel    *dashboard.Selection
	km     *keymap.Keymap
	logger *logging.Logger

	mode     keymap.Mode
	prevMode keymap.Mode
	filter   views.Filter

	// Cached views, rebuilt by refresh
	projects []project.Project
	stats    views.Stats

	cursor     int
	taskCursor int

	search       textinput.Model
	searchBefore string
	taskInput    textinput.Model

	form   formState
	roster []string

	confirmDelete bool
	pendingDelete int

	showHelp  bool
	statusMsg string
	statusErr bool

	width    int
	height   int
	quitting bool
}

// NewModel creates a dashboard model over svc. sel must follow the same
// store as svc.
func NewModel(svc *dashboard.Service, sel *dashboard.Selection, opts Options) Model {
	km := opts.Keymap
	if km == nil {
		km = keymap.DefaultKeymap()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NopLogger()
	}
	filter := opts.Filter
	if filter == (views.Filter{}) {
		filter = views.NewFilter()
	}

	search := textinput.New()
	search.Prompt = ""
	search.Placeholder = "name or description"
	search.CharLimit = 100
	search.Width = 40
	search.SetValue(filter.Search)

	taskInput := textinput.New()
	taskInput.Prompt = ""
	taskInput.Placeholder = "task name"
	taskInput.CharLimit = 200
	taskInput.Width = 50

	m := Model{
		svc:           svc,
		sel:           sel,
		km:            km,
		logger:        logger.WithComponent("tui"),
		mode:          keymap.ModeNormal,
		filter:        filter,
		search:        search,
		taskInput:     taskInput,
		roster:        slices.Clone(opts.Roster),
		confirmDelete: opts.ConfirmDelete,
	}
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case configReloadedMsg:
		m.svc.SetReminderWindow(msg.reminderWindow)
		m.confirmDelete = msg.confirmDelete
		if !styles.Apply(msg.theme) {
			m.logger.Warn("unknown theme, using default", "theme", msg.theme)
		}
		m.setInfo("Configuration reloaded")
		m.refresh()
		return m, nil

	case errMsg:
		m.setError(msg.err)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeypress(msg)
	}

	// Cursor blink and other input housekeeping
	var cmd tea.Cmd
	switch m.mode {
	case keymap.ModeSearch:
		m.search, cmd = m.search.Update(msg)
	case keymap.ModeAddTask:
		m.taskInput, cmd = m.taskInput.Update(msg)
	case keymap.ModeForm:
		if f := m.form.focus; f.isText() {
			m.form.inputs[f], cmd = m.form.inputs[f].Update(msg)
		}
	}
	return m, cmd
}

// refresh rebuilds the cached list and stats and re-syncs the mode with the
// selection, which drops back to the list when its project is gone.
func (m *Model) refresh() {
	m.projects = m.svc.ListProjects(m.filter)
	m.stats = m.svc.GetStats()
	m.cursor = clamp(m.cursor, len(m.projects))

	m.sel.Refresh()
	p, ok := m.sel.Selected()
	if !ok {
		switch m.mode {
		case keymap.ModeDetails, keymap.ModeAddTask:
			m.mode = keymap.ModeNormal
		case keymap.ModeConfirmDelete:
			if m.prevMode == keymap.ModeDetails {
				m.prevMode = keymap.ModeNormal
			}
		}
		m.taskCursor = 0
		return
	}
	m.taskCursor = clamp(m.taskCursor, len(p.Tasks))
}

// currentProject returns the project under the list cursor.
func (m Model) currentProject() (project.Project, bool) {
	if len(m.projects) == 0 {
		return project.Project{}, false
	}
	return m.projects[m.cursor], true
}

func (m *Model) setInfo(msg string) {
	m.statusMsg = msg
	m.statusErr = false
}

// setError shows user-facing errors verbatim and logs the rest.
func (m *Model) setError(err error) {
	m.statusErr = true
	if fields := errors.FieldErrors(err); len(fields) > 0 {
		parts := make([]string, 0, len(fields))
		for _, f := range slices.Sorted(maps.Keys(fields)) {
			parts = append(parts, fields[f])
		}
		m.statusMsg = strings.Join(parts, "; ")
		return
	}
	if errors.IsUserFacing(err) {
		m.statusMsg = err.Error()
		return
	}
	m.logger.Error("dashboard operation failed", "error", err)
	m.statusMsg = "Something went wrong, see the log for details"
}

func (m *Model) clearStatus() {
	m.statusMsg = ""
	m.statusErr = false
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sections []string
	sections = append(sections, styles.Header.Render("Taskboard"))
	sections = append(sections, view.RenderStats(m.stats, m.width))

	if m.mode == keymap.ModeForm {
		sections = append(sections, m.form.render(m.width))
	} else if p, ok := m.sel.Selected(); ok {
		sections = append(sections, view.RenderDetails(view.DetailsState{
			Project:       p,
			Reminders:     m.reminders(p.ID),
			TaskCursor:    m.taskCursor,
			AddingTask:    m.mode == keymap.ModeAddTask,
			TaskInputView: m.taskInput.View(),
			Width:         m.width,
		}))
	} else {
		state := view.ListState{
			Projects:   m.projects,
			Cursor:     m.cursor,
			Filter:     m.filter,
			Searching:  m.mode == keymap.ModeSearch,
			SearchView: m.search.View(),
			Width:      m.width,
			Height:     m.listHeight(),
		}
		sections = append(sections, view.RenderFilterBar(state), view.RenderList(state))
	}

	if m.mode == keymap.ModeConfirmDelete {
		sections = append(sections, m.renderConfirmDelete())
	}
	if m.statusMsg != "" {
		if m.statusErr {
			sections = append(sections, styles.ErrorMsg.Render(m.statusMsg))
		} else {
			sections = append(sections, styles.SuccessMsg.Render(m.statusMsg))
		}
	}

	if m.showHelp {
		sections = append(sections, view.RenderHelpPanel(m.km, m.helpMode()))
	} else {
		sections = append(sections, view.RenderHelpBar(m.km, m.mode))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) reminders(id int) views.ReminderPartition {
	r, err := m.svc.Reminders(id)
	if err != nil {
		return views.ReminderPartition{}
	}
	return r
}

func (m Model) renderConfirmDelete() string {
	name := "this project"
	if p, err := m.svc.GetProject(m.pendingDelete); err == nil {
		name = "\"" + p.Name + "\""
	}
	return styles.ConfirmBox.Render(
		styles.WarningMsg.Render("Delete "+name+"?") + "  " +
			styles.HelpKey.Render("[y]") + " delete  " +
			styles.HelpKey.Render("[n]") + " keep",
	)
}

// helpMode is the mode whose bindings the help panel lists.
func (m Model) helpMode() keymap.Mode {
	if m.mode == keymap.ModeConfirmDelete {
		return m.prevMode
	}
	return m.mode
}

// listHeight is the number of project rows that fit under the header.
func (m Model) listHeight() int {
	if m.height == 0 {
		return 0
	}
	return max(m.height-16, 3)
}

func clamp(i, n int) int {
	if n == 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
