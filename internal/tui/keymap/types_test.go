package keymap

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKeyBindingMatches(t *testing.T) {
	tests := []struct {
		name     string
		binding  KeyBinding
		msg      tea.KeyMsg
		expected bool
	}{
		{
			name: "simple rune match",
			binding: KeyBinding{
				KeyType: tea.KeyRunes,
				Rune:    'j',
			},
			msg: tea.KeyMsg{
				Type:  tea.KeyRunes,
				Runes: []rune{'j'},
			},
			expected: true,
		},
		{
			name: "simple rune mismatch",
			binding: KeyBinding{
				KeyType: tea.KeyRunes,
				Rune:    'j',
			},
			msg: tea.KeyMsg{
				Type:  tea.KeyRunes,
				Runes: []rune{'k'},
			},
			expected: false,
		},
		{
			name: "special key match",
			binding: KeyBinding{
				KeyType: tea.KeyEnter,
			},
			msg: tea.KeyMsg{
				Type: tea.KeyEnter,
			},
			expected: true,
		},
		{
			name: "special key mismatch",
			binding: KeyBinding{
				KeyType: tea.KeyEnter,
			},
			msg: tea.KeyMsg{
				Type: tea.KeyEsc,
			},
			expected: false,
		},
		{
			name: "alt modifier match",
			binding: KeyBinding{
				KeyType:   tea.KeyRunes,
				Rune:      'x',
				Modifiers: ModAlt,
			},
			msg: tea.KeyMsg{
				Type:  tea.KeyRunes,
				Runes: []rune{'x'},
				Alt:   true,
			},
			expected: true,
		},
		{
			name: "alt modifier mismatch - binding wants alt",
			binding: KeyBinding{
				KeyType:   tea.KeyRunes,
				Rune:      'x',
				Modifiers: ModAlt,
			},
			msg: tea.KeyMsg{
				Type:  tea.KeyRunes,
				Runes: []rune{'x'},
				Alt:   false,
			},
			expected: false,
		},
		{
			name: "alt modifier mismatch - binding doesn't want alt",
			binding: KeyBinding{
				KeyType: tea.KeyRunes,
				Rune:    'x',
			},
			msg: tea.KeyMsg{
				Type:  tea.KeyRunes,
				Runes: []rune{'x'},
				Alt:   true,
			},
			expected: false,
		},
		{
			name: "ctrl key type",
			binding: KeyBinding{
				KeyType: tea.KeyCtrlR,
			},
			msg: tea.KeyMsg{
				Type: tea.KeyCtrlR,
			},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.binding.Matches(tt.msg)
			if result != tt.expected {
				t.Errorf("KeyBinding.Matches() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestKeymapGetBinding(t *testing.T) {
	km := DefaultKeymap()

	msg := tea.KeyMsg{
		Type:  tea.KeyRunes,
		Runes: []rune{'j'},
	}
	cmd, found := km.GetBinding(msg, ModeNormal)
	if !found {
		t.Error("Expected to find binding for 'j' in normal mode")
	}
	if cmd != CmdCursorDown {
		t.Errorf("Expected CmdCursorDown, got %s", cmd)
	}

	// 'j' is text while searching
	if cmd, found = km.GetBinding(msg, ModeSearch); found {
		t.Errorf("Expected no binding for 'j' in search mode, got %s", cmd)
	}

	// Esc means different things per mode
	esc := tea.KeyMsg{Type: tea.KeyEsc}
	tests := []struct {
		mode Mode
		want Command
	}{
		{ModeNormal, CmdClearFilter},
		{ModeDetails, CmdBack},
		{ModeSearch, CmdCancel},
		{ModeAddTask, CmdCancel},
		{ModeConfirmDelete, CmdCancel},
		{ModeForm, CmdCancel},
	}
	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			got, ok := km.GetBinding(esc, tt.mode)
			if !ok || got != tt.want {
				t.Errorf("GetBinding(esc, %s) = %s, %v; want %s", tt.mode, got, ok, tt.want)
			}
		})
	}
}

func TestFormBindings(t *testing.T) {
	km := DefaultKeymap()

	// Letters belong to the focused text field
	for _, r := range []rune{'q', 'n', 'e', 'j'} {
		if cmd, ok := km.GetBinding(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}, ModeForm); ok {
			t.Errorf("GetBinding(%q, form) = %s, want unbound", r, cmd)
		}
	}

	tests := []struct {
		key  tea.KeyType
		want Command
	}{
		{tea.KeyTab, CmdNextField},
		{tea.KeyShiftTab, CmdPrevField},
		{tea.KeyRight, CmdNextChoice},
		{tea.KeyLeft, CmdPrevChoice},
		{tea.KeyEnter, CmdActivate},
		{tea.KeyCtrlS, CmdSave},
	}
	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			got, ok := km.GetBinding(tea.KeyMsg{Type: tt.key}, ModeForm)
			if !ok || got != tt.want {
				t.Errorf("GetBinding(%s, form) = %s, %v; want %s", tt.key, got, ok, tt.want)
			}
		})
	}

	if got, _ := km.GetBinding(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}}, ModeNormal); got != CmdNewProject {
		t.Errorf("n in normal mode = %s, want %s", got, CmdNewProject)
	}
	if got, _ := km.GetBinding(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'e'}}, ModeDetails); got != CmdEditProject {
		t.Errorf("e in details mode = %s, want %s", got, CmdEditProject)
	}
}

func TestKeymapUnknownMode(t *testing.T) {
	km := DefaultKeymap()
	if _, ok := km.GetBinding(tea.KeyMsg{Type: tea.KeyEnter}, Mode("visual")); ok {
		t.Error("Expected no binding for an unknown mode")
	}
	if got := km.GetModeBindings(Mode("visual")); got != nil {
		t.Errorf("GetModeBindings(unknown) = %v, want nil", got)
	}
}

func TestModifiersString(t *testing.T) {
	tests := []struct {
		mods     Modifier
		expected string
	}{
		{ModNone, ""},
		{ModCtrl, "ctrl+"},
		{ModAlt, "alt+"},
		{ModShift, "shift+"},
		{ModCtrl | ModAlt, "ctrl+alt+"},
		{ModCtrl | ModShift, "ctrl+shift+"},
		{ModAlt | ModShift, "alt+shift+"},
		{ModCtrl | ModAlt | ModShift, "ctrl+alt+shift+"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			result := tt.mods.String()
			if result != tt.expected {
				t.Errorf("Modifier.String() = %q, expected %q", result, tt.expected)
			}
		})
	}
}

func TestKeyBindingString(t *testing.T) {
	tests := []struct {
		binding  KeyBinding
		expected string
	}{
		{
			binding:  KeyBinding{KeyType: tea.KeyEnter},
			expected: "enter",
		},
		{
			binding:  KeyBinding{KeyType: tea.KeyRunes, Rune: 'j'},
			expected: "j",
		},
		{
			binding:  KeyBinding{KeyType: tea.KeyRunes, Rune: ' '},
			expected: "space",
		},
		{
			binding:  KeyBinding{KeyType: tea.KeyRunes, Rune: 'x', Modifiers: ModAlt},
			expected: "alt+x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			result := tt.binding.String()
			if result != tt.expected {
				t.Errorf("KeyBinding.String() = %q, expected %q", result, tt.expected)
			}
		})
	}
}

func TestGetBindingsForCommand(t *testing.T) {
	km := DefaultKeymap()

	// CmdCursorDown should have multiple bindings in normal mode (j and down arrow)
	bindings := km.GetBindingsForCommand(CmdCursorDown, ModeNormal)
	if len(bindings) < 2 {
		t.Errorf("Expected at least 2 bindings for CmdCursorDown, got %d", len(bindings))
	}

	hasJ := false
	hasDown := false
	for _, b := range bindings {
		if b.KeyType == tea.KeyRunes && b.Rune == 'j' {
			hasJ = true
		}
		if b.KeyType == tea.KeyDown {
			hasDown = true
		}
	}
	if !hasJ {
		t.Error("Expected 'j' binding for CmdCursorDown")
	}
	if !hasDown {
		t.Error("Expected down arrow binding for CmdCursorDown")
	}
}

func TestGetCategories(t *testing.T) {
	km := DefaultKeymap()

	categories := km.GetCategories(ModeNormal)
	if len(categories) == 0 {
		t.Error("Expected at least one category in normal mode")
	}

	categorySet := make(map[string]bool)
	for _, cat := range categories {
		categorySet[cat] = true
	}

	expectedCategories := []string{"Navigation", "Filter", "Projects", "Application"}
	for _, expected := range expectedCategories {
		if !categorySet[expected] {
			t.Errorf("Expected category %q in normal mode", expected)
		}
	}

	grouped := km.GetBindingsByCategory(ModeDetails)
	if len(grouped["Tasks"]) == 0 {
		t.Error("Expected Tasks bindings in details mode")
	}
}

func TestDefaultKeymapCompleteness(t *testing.T) {
	km := DefaultKeymap()

	expectedModes := []Mode{
		ModeNormal,
		ModeDetails,
		ModeSearch,
		ModeAddTask,
		ModeConfirmDelete,
		ModeForm,
	}

	for _, mode := range expectedModes {
		if _, ok := km.Modes[mode]; !ok {
			t.Errorf("Default keymap missing mode: %s", mode)
		}
		// Every mode must offer a way out
		if len(km.GetBindingsForCommand(CmdQuit, mode)) == 0 {
			t.Errorf("Mode %s has no quit binding", mode)
		}
	}
}
