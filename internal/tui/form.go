package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Iron-Ham/taskboard/internal/errors"
	"github.com/Iron-Ham/taskboard/internal/project"
	"github.com/Iron-Ham/taskboard/internal/tui/keymap"
	"github.com/Iron-Ham/taskboard/internal/tui/view"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// formField is a row of the project form, in display order.
type formField int

const (
	fieldName formField = iota
	fieldDescription
	fieldStart
	fieldEnd
	fieldStatus
	fieldPriority
	fieldAssignees
	fieldManager
	fieldReminderDate
	fieldReminderText
	fieldReminders
	fieldCount
)

var fieldLabels = [fieldCount]string{
	fieldName:         "Name",
	fieldDescription:  "Description",
	fieldStart:        "Start date",
	fieldEnd:          "End date",
	fieldStatus:       "Status",
	fieldPriority:     "Priority",
	fieldAssignees:    "Assignees",
	fieldManager:      "Manager",
	fieldReminderDate: "Reminder date",
	fieldReminderText: "Reminder",
	fieldReminders:    "Reminders",
}

// Field keys for problems found before the draft reaches validation.
const (
	fieldKeyStartDate = "startDate"
	fieldKeyReminder  = "reminder"
)

func (f formField) isText() bool {
	switch f {
	case fieldName, fieldDescription, fieldStart, fieldEnd, fieldReminderDate, fieldReminderText:
		return true
	}
	return false
}

// formState is the open create/edit form. Text fields are edited in
// inputs and copied into draft on save; choice fields write to draft
// directly.
type formState struct {
	draft      *project.Form
	inputs     [fieldCount]textinput.Model
	focus      formField
	assignee   int
	reminder   int
	roster     []string
	returnMode keymap.Mode
}

func newFormState(draft *project.Form, roster []string, returnMode keymap.Mode) formState {
	in := draft.Input()
	fs := formState{draft: draft, roster: roster, returnMode: returnMode}
	placeholders := map[formField]string{
		fieldName:         "project name",
		fieldDescription:  "what the project is about",
		fieldStart:        "YYYY-MM-DD",
		fieldEnd:          "YYYY-MM-DD",
		fieldReminderDate: "YYYY-MM-DD",
		fieldReminderText: "description, enter to add",
	}
	for f, ph := range placeholders {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = ph
		ti.CharLimit = 200
		ti.Width = 40
		fs.inputs[f] = ti
	}
	fs.inputs[fieldName].SetValue(in.Name)
	fs.inputs[fieldDescription].SetValue(in.Description)
	if !in.StartDate.IsZero() {
		fs.inputs[fieldStart].SetValue(in.StartDate.String())
	}
	if !in.EndDate.IsZero() {
		fs.inputs[fieldEnd].SetValue(in.EndDate.String())
	}
	return fs
}

// candidates lists everyone who can be toggled: the roster plus any
// current assignee who is not on it.
func (fs formState) candidates() []string {
	out := slices.Clone(fs.roster)
	for _, a := range fs.draft.Input().Assignees {
		if !slices.Contains(out, a) {
			out = append(out, a)
		}
	}
	return out
}

// focusField moves focus to f and returns the blink command for text fields.
func (fs *formState) focusField(f formField) tea.Cmd {
	if fs.focus.isText() {
		fs.inputs[fs.focus].Blur()
	}
	fs.focus = (f + fieldCount) % fieldCount
	if fs.focus.isText() {
		return fs.inputs[fs.focus].Focus()
	}
	return nil
}

// cycle moves the value of a choice field by delta.
func (fs *formState) cycle(delta int) {
	in := fs.draft.Input()
	switch fs.focus {
	case fieldStatus:
		fs.draft.SetStatus(step(project.Statuses(), in.Status, delta))
	case fieldPriority:
		fs.draft.SetPriority(step(project.Priorities(), in.Priority, delta))
	case fieldManager:
		fs.draft.SetProjectManager(step(append([]string{""}, in.Assignees...), in.ProjectManager, delta))
	case fieldAssignees:
		fs.assignee = wrap(fs.assignee+delta, len(fs.candidates()))
	case fieldReminders:
		fs.reminder = wrap(fs.reminder+delta, len(in.Reminders))
	}
}

// step returns the value delta places after cur in values, wrapping.
func step[T comparable](values []T, cur T, delta int) T {
	if len(values) == 0 {
		return cur
	}
	i := max(slices.Index(values, cur), 0)
	return values[wrap(i+delta, len(values))]
}

func wrap(i, n int) int {
	if n == 0 {
		return 0
	}
	return ((i % n) + n) % n
}

// parseDateField reads a date input; blank means no date.
func (fs formState) parseDateField(f formField, key string) (project.Date, error) {
	raw := strings.TrimSpace(fs.inputs[f].Value())
	if raw == "" {
		return project.Date{}, nil
	}
	d, err := project.ParseDate(raw)
	if err != nil {
		return project.Date{}, errors.NewValidationError("date is invalid").
			WithFieldError(key, fmt.Sprintf("%s: %q is not a YYYY-MM-DD date", fieldLabels[f], raw))
	}
	return d, nil
}

// commitText copies the text fields into the draft.
func (fs formState) commitText() error {
	start, err := fs.parseDateField(fieldStart, fieldKeyStartDate)
	if err != nil {
		return err
	}
	end, err := fs.parseDateField(fieldEnd, project.FieldEndDate)
	if err != nil {
		return err
	}
	fs.draft.SetName(fs.inputs[fieldName].Value())
	fs.draft.SetDescription(fs.inputs[fieldDescription].Value())
	fs.draft.SetDates(start, end)
	return nil
}

// addReminder adds the typed reminder to the draft and clears the inputs.
func (fs *formState) addReminder() (project.Reminder, error) {
	date, err := fs.parseDateField(fieldReminderDate, fieldKeyReminder)
	if err != nil {
		return project.Reminder{}, err
	}
	r, ok := fs.draft.AddReminder(date, strings.TrimSpace(fs.inputs[fieldReminderText].Value()))
	if !ok {
		return project.Reminder{}, errors.NewValidationError("reminder is invalid").
			WithFieldError(fieldKeyReminder, "A reminder needs a date and a description")
	}
	fs.inputs[fieldReminderDate].Reset()
	fs.inputs[fieldReminderText].Reset()
	return r, nil
}

func (fs formState) render(width int) string {
	in := fs.draft.Input()
	title := "New Project"
	if fs.draft.IsEdit() {
		title = "Edit Project"
	}

	rows := make([]view.FormRow, fieldCount)
	for f := range fieldCount {
		rows[f].Label = fieldLabels[f]
		if f.isText() {
			rows[f].Value = fs.inputs[f].View()
		}
	}
	rows[fieldStatus].Items = choiceItems(project.Statuses(), in.Status, func(s project.Status) string { return string(s) })
	rows[fieldPriority].Items = choiceItems(project.Priorities(), in.Priority, func(p project.Priority) string { return string(p) })

	candidates := fs.candidates()
	rows[fieldAssignees].Items = make([]view.FormItem, 0, len(candidates))
	rows[fieldAssignees].Empty = "No team roster"
	for i, name := range candidates {
		rows[fieldAssignees].Items = append(rows[fieldAssignees].Items, view.FormItem{
			Text:     name,
			Selected: slices.Contains(in.Assignees, name),
			Cursor:   i == fs.assignee,
		})
	}

	rows[fieldManager].Items = choiceItems(append([]string{""}, in.Assignees...), in.ProjectManager, func(s string) string {
		if s == "" {
			return "none"
		}
		return s
	})

	rows[fieldReminders].Items = make([]view.FormItem, 0, len(in.Reminders))
	rows[fieldReminders].Empty = "No reminders"
	for i, r := range in.Reminders {
		rows[fieldReminders].Items = append(rows[fieldReminders].Items, view.FormItem{
			Text:   r.Date.String() + " " + r.Description,
			Cursor: i == fs.reminder,
		})
	}

	return view.RenderForm(view.FormState{Title: title, Rows: rows, Focus: int(fs.focus), Width: width})
}

// choiceItems marks cur as both selected and under the cursor.
func choiceItems[T comparable](values []T, cur T, label func(T) string) []view.FormItem {
	items := make([]view.FormItem, len(values))
	for i, v := range values {
		items[i] = view.FormItem{Text: label(v), Selected: v == cur, Cursor: v == cur}
	}
	return items
}

// openForm shows the form for draft. Esc returns to returnMode.
func (m Model) openForm(draft *project.Form, returnMode keymap.Mode) (tea.Model, tea.Cmd) {
	m.form = newFormState(draft, m.roster, returnMode)
	m.mode = keymap.ModeForm
	m.showHelp = false
	cmd := m.form.focusField(fieldName)
	return m, cmd
}

func (m Model) handleFormInput(msg tea.KeyMsg, cmd keymap.Command, bound bool) (tea.Model, tea.Cmd) {
	fs := &m.form
	// Left and right edit text; enter advances from a text field.
	if fs.focus.isText() && (cmd == keymap.CmdNextChoice || cmd == keymap.CmdPrevChoice) {
		bound = false
	}
	if !bound {
		if !fs.focus.isText() {
			return m, nil
		}
		var tcmd tea.Cmd
		fs.inputs[fs.focus], tcmd = fs.inputs[fs.focus].Update(msg)
		return m, tcmd
	}

	switch cmd {
	case keymap.CmdNextField:
		tcmd := fs.focusField(fs.focus + 1)
		return m, tcmd
	case keymap.CmdPrevField:
		tcmd := fs.focusField(fs.focus - 1)
		return m, tcmd
	case keymap.CmdNextChoice:
		fs.cycle(1)
	case keymap.CmdPrevChoice:
		fs.cycle(-1)
	case keymap.CmdActivate:
		return m.activateField()
	case keymap.CmdSave:
		return m.saveForm()
	case keymap.CmdCancel:
		m.closeForm()
		m.clearStatus()
	}
	return m, nil
}

// activateField runs the enter action of the focused field.
func (m Model) activateField() (tea.Model, tea.Cmd) {
	fs := &m.form
	switch fs.focus {
	case fieldAssignees:
		candidates := fs.candidates()
		if len(candidates) == 0 {
			return m, nil
		}
		name := candidates[clamp(fs.assignee, len(candidates))]
		fs.draft.ToggleAssignee(name)
		m.clearStatus()
	case fieldReminderText:
		r, err := fs.addReminder()
		if err != nil {
			m.setError(err)
			return m, nil
		}
		m.setInfo("Reminder added for " + r.Date.String())
		cmd := fs.focusField(fieldReminderDate)
		return m, cmd
	case fieldReminders:
		reminders := fs.draft.Input().Reminders
		if len(reminders) == 0 {
			return m, nil
		}
		r := reminders[clamp(fs.reminder, len(reminders))]
		fs.draft.RemoveReminder(r.ID)
		fs.reminder = clamp(fs.reminder, len(reminders)-1)
		m.setInfo("Reminder removed")
	default:
		if fs.focus.isText() {
			cmd := fs.focusField(fs.focus + 1)
			return m, cmd
		}
	}
	return m, nil
}

// saveForm creates or updates the project. The form stays open with the
// problems shown when the draft is rejected.
func (m Model) saveForm() (tea.Model, tea.Cmd) {
	fs := &m.form
	if err := fs.commitText(); err != nil {
		m.setError(err)
		return m, nil
	}
	p, err := m.svc.SaveForm(fs.draft)
	if err != nil {
		m.setError(err)
		return m, nil
	}

	verb := "Created "
	if fs.draft.IsEdit() {
		verb = "Updated "
	}
	m.logger.WithProject(p.ID).Info("project saved from form", "edit", fs.draft.IsEdit())
	m.closeForm()
	m.setInfo(verb + p.Name)
	m.refresh()
	if m.mode == keymap.ModeNormal {
		if i := slices.IndexFunc(m.projects, func(lp project.Project) bool { return lp.ID == p.ID }); i >= 0 {
			m.cursor = i
		}
	}
	return m, nil
}

func (m *Model) closeForm() {
	m.mode = m.form.returnMode
	m.form = formState{}
}
