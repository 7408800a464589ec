// Package seed loads the initial project dataset, either the built-in
// sample or a user-supplied YAML file.
package seed

import (
	_ "embed"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/Iron-Ham/taskboard/internal/errors"
	"github.com/Iron-Ham/taskboard/internal/project"
)

//go:embed projects.yaml
var builtin []byte

// Dataset is the content of a seed file.
type Dataset struct {
	// Assignees is the roster offered when editing a project.
	Assignees []string          `yaml:"assignees"`
	Projects  []project.Project `yaml:"projects"`
}

// Default returns the built-in sample dataset.
func Default() Dataset {
	d, err := Parse(builtin)
	if err != nil {
		panic(fmt.Sprintf("built-in seed data is invalid: %v", err))
	}
	return d
}

// Load reads a dataset from path. An empty path yields the built-in sample.
func Load(path string) (Dataset, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, errors.Wrapf(err, "read seed file %s", path)
	}
	d, err := Parse(data)
	if err != nil {
		return Dataset{}, errors.Wrapf(err, "seed file %s", path)
	}
	return d, nil
}

// Parse decodes and checks a YAML dataset. Project ids must be positive
// and unique; task and reminder ids must be unique within their project.
// Missing collections are normalized to empty ones.
func Parse(data []byte) (Dataset, error) {
	var d Dataset
	if err := yaml.Unmarshal(data, &d); err != nil {
		return Dataset{}, fmt.Errorf("%w: %v", errors.ErrInvalidSeed, err)
	}

	seen := make(map[int]bool)
	for i := range d.Projects {
		p := &d.Projects[i]
		if p.ID <= 0 || seen[p.ID] {
			return Dataset{}, fmt.Errorf("%w: project %q has missing or duplicate id %d", errors.ErrInvalidSeed, p.Name, p.ID)
		}
		seen[p.ID] = true

		if !p.Status.IsValid() {
			return Dataset{}, fmt.Errorf("%w: project %d has unknown status %q", errors.ErrInvalidSeed, p.ID, p.Status)
		}
		if !p.Priority.IsValid() {
			return Dataset{}, fmt.Errorf("%w: project %d has unknown priority %q", errors.ErrInvalidSeed, p.ID, p.Priority)
		}
		if err := checkTasks(*p); err != nil {
			return Dataset{}, err
		}
		if err := checkReminders(*p); err != nil {
			return Dataset{}, err
		}

		if p.Assignees == nil {
			p.Assignees = []string{}
		}
		if p.Tasks == nil {
			p.Tasks = []project.Task{}
		}
		if p.Reminders == nil {
			p.Reminders = []project.Reminder{}
		}
	}

	if d.Assignees == nil {
		d.Assignees = rosterFrom(d.Projects)
	}
	return d, nil
}

func checkTasks(p project.Project) error {
	seen := make(map[int]bool)
	for _, t := range p.Tasks {
		if t.ID <= 0 || seen[t.ID] {
			return fmt.Errorf("%w: project %d has missing or duplicate task id %d", errors.ErrInvalidSeed, p.ID, t.ID)
		}
		seen[t.ID] = true
		if !t.Status.IsValid() {
			return fmt.Errorf("%w: task %d/%d has unknown status %q", errors.ErrInvalidSeed, p.ID, t.ID, t.Status)
		}
	}
	return nil
}

func checkReminders(p project.Project) error {
	seen := make(map[int64]bool)
	for _, r := range p.Reminders {
		if seen[r.ID] {
			return fmt.Errorf("%w: project %d has duplicate reminder id %d", errors.ErrInvalidSeed, p.ID, r.ID)
		}
		seen[r.ID] = true
	}
	return nil
}

// rosterFrom collects every assignee named in projects, in first-seen order.
func rosterFrom(projects []project.Project) []string {
	var out []string
	for _, p := range projects {
		for _, a := range p.Assignees {
			if !slices.Contains(out, a) {
				out = append(out, a)
			}
		}
	}
	if out == nil {
		out = []string{}
	}
	return out
}
