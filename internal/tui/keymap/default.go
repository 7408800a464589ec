package keymap

import tea "github.com/charmbracelet/bubbletea"

// DefaultKeymap returns the default dashboard key bindings.
func DefaultKeymap() *Keymap {
	return &Keymap{
		Name:        "default",
		Description: "Default taskboard key bindings",
		Modes: map[Mode]*ModeBindings{
			ModeNormal:        defaultNormalBindings(),
			ModeDetails:       defaultDetailsBindings(),
			ModeSearch:        defaultSearchBindings(),
			ModeAddTask:       defaultAddTaskBindings(),
			ModeConfirmDelete: defaultConfirmDeleteBindings(),
			ModeForm:          defaultFormBindings(),
		},
	}
}

func defaultNormalBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeNormal,
		Bindings: []KeyBinding{
			// Project navigation
			{KeyType: tea.KeyRunes, Rune: 'j', Command: CmdCursorDown, Description: "Next project", Category: "Navigation"},
			{KeyType: tea.KeyDown, Command: CmdCursorDown, Description: "Next project", Category: "Navigation"},
			{KeyType: tea.KeyRunes, Rune: 'k', Command: CmdCursorUp, Description: "Previous project", Category: "Navigation"},
			{KeyType: tea.KeyUp, Command: CmdCursorUp, Description: "Previous project", Category: "Navigation"},
			{KeyType: tea.KeyRunes, Rune: 'g', Command: CmdCursorTop, Description: "First project", Category: "Navigation"},
			{KeyType: tea.KeyRunes, Rune: 'G', Command: CmdCursorEnd, Description: "Last project", Category: "Navigation"},
			{KeyType: tea.KeyEnter, Command: CmdOpenProject, Description: "Open project", Category: "Navigation"},

			// Filtering
			{KeyType: tea.KeyRunes, Rune: '/', Command: CmdEnterSearchMode, Description: "Search", Category: "Filter"},
			{KeyType: tea.KeyRunes, Rune: 's', Command: CmdCycleStatusFilter, Description: "Cycle status filter", Category: "Filter"},
			{KeyType: tea.KeyRunes, Rune: 'p', Command: CmdCyclePriorityFilter, Description: "Cycle priority filter", Category: "Filter"},
			{KeyType: tea.KeyEsc, Command: CmdClearFilter, Description: "Clear filters", Category: "Filter"},

			// Project control
			{KeyType: tea.KeyRunes, Rune: 'n', Command: CmdNewProject, Description: "New project", Category: "Projects"},
			{KeyType: tea.KeyRunes, Rune: 'd', Command: CmdDeleteProject, Description: "Delete project", Category: "Projects"},

			// Application
			{KeyType: tea.KeyRunes, Rune: '?', Command: CmdToggleHelp, Description: "Toggle help", Category: "Application"},
			{KeyType: tea.KeyRunes, Rune: 'q', Command: CmdQuit, Description: "Quit", Category: "Application"},
			{KeyType: tea.KeyCtrlC, Command: CmdQuit, Description: "Quit", Category: "Application"},
		},
	}
}

func defaultDetailsBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeDetails,
		Bindings: []KeyBinding{
			{KeyType: tea.KeyRunes, Rune: 'j', Command: CmdCursorDown, Description: "Next task", Category: "Navigation"},
			{KeyType: tea.KeyDown, Command: CmdCursorDown, Description: "Next task", Category: "Navigation"},
			{KeyType: tea.KeyRunes, Rune: 'k', Command: CmdCursorUp, Description: "Previous task", Category: "Navigation"},
			{KeyType: tea.KeyUp, Command: CmdCursorUp, Description: "Previous task", Category: "Navigation"},
			{KeyType: tea.KeyEsc, Command: CmdBack, Description: "Back to list", Category: "Navigation"},
			{KeyType: tea.KeyBackspace, Command: CmdBack, Description: "Back to list", Category: "Navigation"},

			{KeyType: tea.KeyRunes, Rune: ' ', Command: CmdCycleTaskStatus, Description: "Cycle task status", Category: "Tasks"},
			{KeyType: tea.KeySpace, Command: CmdCycleTaskStatus, Description: "Cycle task status", Category: "Tasks"},
			{KeyType: tea.KeyRunes, Rune: 'a', Command: CmdEnterAddTask, Description: "Add task", Category: "Tasks"},

			{KeyType: tea.KeyRunes, Rune: 'e', Command: CmdEditProject, Description: "Edit project", Category: "Projects"},
			{KeyType: tea.KeyRunes, Rune: 'd', Command: CmdDeleteProject, Description: "Delete project", Category: "Projects"},

			{KeyType: tea.KeyRunes, Rune: '?', Command: CmdToggleHelp, Description: "Toggle help", Category: "Application"},
			{KeyType: tea.KeyRunes, Rune: 'q', Command: CmdQuit, Description: "Quit", Category: "Application"},
			{KeyType: tea.KeyCtrlC, Command: CmdQuit, Description: "Quit", Category: "Application"},
		},
	}
}

// Search and add-task modes only bind their exit keys. Everything else is
// passed to the text input.
func defaultSearchBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeSearch,
		Bindings: []KeyBinding{
			{KeyType: tea.KeyEnter, Command: CmdConfirm, Description: "Apply search", Category: "Search"},
			{KeyType: tea.KeyEsc, Command: CmdCancel, Description: "Cancel search", Category: "Search"},
			{KeyType: tea.KeyCtrlC, Command: CmdQuit, Description: "Quit", Category: "Application"},
		},
	}
}

func defaultAddTaskBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeAddTask,
		Bindings: []KeyBinding{
			{KeyType: tea.KeyEnter, Command: CmdConfirm, Description: "Add task", Category: "Tasks"},
			{KeyType: tea.KeyEsc, Command: CmdCancel, Description: "Cancel", Category: "Tasks"},
			{KeyType: tea.KeyCtrlC, Command: CmdQuit, Description: "Quit", Category: "Application"},
		},
	}
}

// Form mode leaves runes to the focused text field. Left and right move
// the cursor inside text fields and change the value of choice fields.
func defaultFormBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeForm,
		Bindings: []KeyBinding{
			{KeyType: tea.KeyTab, Command: CmdNextField, Description: "Next field", Category: "Fields"},
			{KeyType: tea.KeyDown, Command: CmdNextField, Description: "Next field", Category: "Fields"},
			{KeyType: tea.KeyShiftTab, Command: CmdPrevField, Description: "Previous field", Category: "Fields"},
			{KeyType: tea.KeyUp, Command: CmdPrevField, Description: "Previous field", Category: "Fields"},
			{KeyType: tea.KeyRight, Command: CmdNextChoice, Description: "Next choice", Category: "Fields"},
			{KeyType: tea.KeyLeft, Command: CmdPrevChoice, Description: "Previous choice", Category: "Fields"},
			{KeyType: tea.KeyEnter, Command: CmdActivate, Description: "Toggle, add or remove", Category: "Fields"},

			{KeyType: tea.KeyCtrlS, Command: CmdSave, Description: "Save project", Category: "Form"},
			{KeyType: tea.KeyEsc, Command: CmdCancel, Description: "Cancel", Category: "Form"},
			{KeyType: tea.KeyCtrlC, Command: CmdQuit, Description: "Quit", Category: "Application"},
		},
	}
}

func defaultConfirmDeleteBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeConfirmDelete,
		Bindings: []KeyBinding{
			{KeyType: tea.KeyRunes, Rune: 'y', Command: CmdConfirm, Description: "Delete", Category: "Confirm"},
			{KeyType: tea.KeyRunes, Rune: 'Y', Command: CmdConfirm, Description: "Delete", Category: "Confirm"},
			{KeyType: tea.KeyRunes, Rune: 'n', Command: CmdCancel, Description: "Keep", Category: "Confirm"},
			{KeyType: tea.KeyRunes, Rune: 'N', Command: CmdCancel, Description: "Keep", Category: "Confirm"},
			{KeyType: tea.KeyEsc, Command: CmdCancel, Description: "Keep", Category: "Confirm"},
			{KeyType: tea.KeyCtrlC, Command: CmdQuit, Description: "Quit", Category: "Application"},
		},
	}
}
