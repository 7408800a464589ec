package tui

import (
	"fmt"

	"github.com/Iron-Ham/taskboard/internal/project"
	"github.com/Iron-Ham/taskboard/internal/tui/keymap"
	"github.com/Iron-Ham/taskboard/internal/views"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeypress translates a key into a command for the current mode.
// Unbound keys in text modes go to the focused input.
func (m Model) handleKeypress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cmd, ok := m.km.GetBinding(msg, m.mode)
	if cmd == keymap.CmdQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.mode {
	case keymap.ModeSearch:
		return m.handleSearchInput(msg, cmd, ok)
	case keymap.ModeAddTask:
		return m.handleAddTaskInput(msg, cmd, ok)
	case keymap.ModeConfirmDelete:
		return m.handleConfirmDelete(cmd)
	case keymap.ModeForm:
		return m.handleFormInput(msg, cmd, ok)
	}
	if !ok {
		return m, nil
	}

	if cmd == keymap.CmdToggleHelp {
		m.showHelp = !m.showHelp
		return m, nil
	}
	m.clearStatus()

	if m.mode == keymap.ModeDetails {
		return m.handleDetailsCommand(cmd)
	}
	return m.handleListCommand(cmd)
}

func (m Model) handleListCommand(cmd keymap.Command) (tea.Model, tea.Cmd) {
	switch cmd {
	case keymap.CmdCursorDown:
		m.cursor = clamp(m.cursor+1, len(m.projects))
	case keymap.CmdCursorUp:
		m.cursor = clamp(m.cursor-1, len(m.projects))
	case keymap.CmdCursorTop:
		m.cursor = 0
	case keymap.CmdCursorEnd:
		m.cursor = clamp(len(m.projects)-1, len(m.projects))

	case keymap.CmdOpenProject:
		p, ok := m.currentProject()
		if !ok {
			return m, nil
		}
		if !m.sel.Select(p.ID) {
			m.refresh()
			return m, nil
		}
		m.mode = keymap.ModeDetails
		m.taskCursor = 0

	case keymap.CmdEnterSearchMode:
		m.mode = keymap.ModeSearch
		m.searchBefore = m.filter.Search
		m.search.SetValue(m.filter.Search)
		m.search.CursorEnd()
		return m, m.search.Focus()

	case keymap.CmdCycleStatusFilter:
		m.filter = m.filter.NextStatus()
		m.cursor = 0
		m.refresh()
	case keymap.CmdCyclePriorityFilter:
		m.filter = m.filter.NextPriority()
		m.cursor = 0
		m.refresh()
	case keymap.CmdClearFilter:
		m.filter = views.NewFilter()
		m.search.SetValue("")
		m.cursor = 0
		m.refresh()

	case keymap.CmdNewProject:
		return m.openForm(project.NewForm(), keymap.ModeNormal)

	case keymap.CmdDeleteProject:
		if p, ok := m.currentProject(); ok {
			return m.requestDelete(p.ID)
		}
	}
	return m, nil
}

func (m Model) handleDetailsCommand(cmd keymap.Command) (tea.Model, tea.Cmd) {
	p, ok := m.sel.Selected()
	if !ok {
		m.mode = keymap.ModeNormal
		m.refresh()
		return m, nil
	}

	switch cmd {
	case keymap.CmdCursorDown:
		m.taskCursor = clamp(m.taskCursor+1, len(p.Tasks))
	case keymap.CmdCursorUp:
		m.taskCursor = clamp(m.taskCursor-1, len(p.Tasks))

	case keymap.CmdBack:
		m.sel.Back()
		m.mode = keymap.ModeNormal
		m.refresh()

	case keymap.CmdCycleTaskStatus:
		if len(p.Tasks) == 0 {
			return m, nil
		}
		task := p.Tasks[m.taskCursor]
		next, err := m.svc.CycleTaskStatus(p.ID, task.ID)
		if err != nil {
			m.setError(err)
		} else {
			m.setInfo(fmt.Sprintf("%s → %s", task.Name, next))
		}
		m.refresh()

	case keymap.CmdEnterAddTask:
		m.mode = keymap.ModeAddTask
		m.taskInput.Reset()
		return m, m.taskInput.Focus()

	case keymap.CmdEditProject:
		return m.openForm(project.EditForm(p), keymap.ModeDetails)

	case keymap.CmdDeleteProject:
		return m.requestDelete(p.ID)
	}
	return m, nil
}

// handleSearchInput filters the list live as the search term changes.
// Cancel restores the term that was active before searching.
func (m Model) handleSearchInput(msg tea.KeyMsg, cmd keymap.Command, bound bool) (tea.Model, tea.Cmd) {
	if bound {
		switch cmd {
		case keymap.CmdConfirm:
			m.search.Blur()
			m.mode = keymap.ModeNormal
			return m, nil
		case keymap.CmdCancel:
			m.search.Blur()
			m.search.SetValue(m.searchBefore)
			m.filter.Search = m.searchBefore
			m.mode = keymap.ModeNormal
			m.refresh()
			return m, nil
		}
	}

	var tcmd tea.Cmd
	m.search, tcmd = m.search.Update(msg)
	if v := m.search.Value(); v != m.filter.Search {
		m.filter.Search = v
		m.cursor = 0
		m.refresh()
	}
	return m, tcmd
}

func (m Model) handleAddTaskInput(msg tea.KeyMsg, cmd keymap.Command, bound bool) (tea.Model, tea.Cmd) {
	if bound {
		switch cmd {
		case keymap.CmdConfirm:
			return m.submitTask()
		case keymap.CmdCancel:
			m.taskInput.Blur()
			m.mode = keymap.ModeDetails
			m.clearStatus()
			return m, nil
		}
	}

	var tcmd tea.Cmd
	m.taskInput, tcmd = m.taskInput.Update(msg)
	return m, tcmd
}

// submitTask adds the typed task. The input stays open when the name is
// rejected so it can be corrected.
func (m Model) submitTask() (tea.Model, tea.Cmd) {
	p, ok := m.sel.Selected()
	if !ok {
		m.mode = keymap.ModeNormal
		return m, nil
	}
	task, err := m.svc.AddTask(p.ID, project.TaskInput{Name: m.taskInput.Value()})
	if err != nil {
		m.setError(err)
		return m, textinput.Blink
	}

	m.taskInput.Blur()
	m.taskInput.Reset()
	m.mode = keymap.ModeDetails
	m.setInfo("Added " + task.Name)
	m.refresh()
	if sp, ok := m.sel.Selected(); ok {
		m.taskCursor = clamp(sp.FindTask(task.ID), len(sp.Tasks))
	}
	return m, nil
}

func (m Model) requestDelete(id int) (tea.Model, tea.Cmd) {
	if !m.confirmDelete {
		m.deleteProject(id)
		return m, nil
	}
	m.pendingDelete = id
	m.prevMode = m.mode
	m.mode = keymap.ModeConfirmDelete
	return m, nil
}

func (m Model) handleConfirmDelete(cmd keymap.Command) (tea.Model, tea.Cmd) {
	switch cmd {
	case keymap.CmdConfirm:
		m.mode = m.prevMode
		m.deleteProject(m.pendingDelete)
		m.pendingDelete = 0
	case keymap.CmdCancel:
		m.mode = m.prevMode
		m.pendingDelete = 0
	}
	return m, nil
}

func (m *Model) deleteProject(id int) {
	name := fmt.Sprintf("project %d", id)
	if p, err := m.svc.GetProject(id); err == nil {
		name = p.Name
	}
	if err := m.svc.DeleteProject(id); err != nil {
		m.setError(err)
	} else {
		m.setInfo("Deleted " + name)
	}
	m.refresh()
}
