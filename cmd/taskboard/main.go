// Command taskboard tracks projects, tasks and reminders in the terminal.
package main

import (
	"os"

	"github.com/Iron-Ham/taskboard/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
