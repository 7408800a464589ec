// Package tui implements the interactive dashboard on Bubble Tea.
package tui

import (
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/Iron-Ham/taskboard/internal/dashboard"
	tea "github.com/charmbracelet/bubbletea"
)

// App wraps the Bubbletea program
type App struct {
	mu      sync.Mutex
	program *tea.Program
	model   Model
	sel     *dashboard.Selection
}

// New creates a new TUI application over svc.
func New(svc *dashboard.Service, opts Options) *App {
	sel := dashboard.NewSelection(svc.Store())
	return &App{
		model: NewModel(svc, sel, opts),
		sel:   sel,
	}
}

// Run starts the TUI application and blocks until it exits.
func (a *App) Run(progOpts ...tea.ProgramOption) error {
	defer a.sel.Close()

	if len(progOpts) == 0 {
		progOpts = []tea.ProgramOption{tea.WithAltScreen()}
	}
	program := tea.NewProgram(a.model, progOpts...)
	a.mu.Lock()
	a.program = program
	a.mu.Unlock()

	// Set up signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	go func() {
		if _, ok := <-sigChan; ok {
			program.Send(tea.Quit())
		}
	}()

	_, err := program.Run()

	// Clean up signal handler
	signal.Stop(sigChan)
	close(sigChan)

	return err
}

// Reload applies re-read settings to the running dashboard. It is safe to
// call from any goroutine; calls before Run are ignored.
func (a *App) Reload(reminderWindow int, theme string, confirmDelete bool) {
	a.send(configReloadedMsg{
		reminderWindow: reminderWindow,
		theme:          theme,
		confirmDelete:  confirmDelete,
	})
}

// ReportError shows err in the status line of the running dashboard.
func (a *App) ReportError(err error) {
	if err != nil {
		a.send(errMsg{err: err})
	}
}

func (a *App) send(msg tea.Msg) {
	a.mu.Lock()
	program := a.program
	a.mu.Unlock()
	if program != nil {
		program.Send(msg)
	}
}
