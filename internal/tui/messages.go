package tui

// configReloadedMsg carries settings re-read from a changed config file
type configReloadedMsg struct {
	reminderWindow int
	theme          string
	confirmDelete  bool
}

// errMsg wraps an error for display in the UI
type errMsg struct {
	err error
}
