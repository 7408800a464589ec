package cmd

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/Iron-Ham/taskboard/internal/project"
	"github.com/spf13/cobra"
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a project",
	Long: `Create a project and print it.

The dataset lives in memory, so the project exists only for this run.
A name and at least one assignee are required. Status defaults to Planned
and priority to Medium.

Examples:
  taskboard create --name "API Gateway" --assignee savad --assignee uvais \
    --manager savad --start 2026-02-01 --end 2026-04-30 \
    --reminder "2026-02-15:Architecture review"`,
	Args: cobra.NoArgs,
	RunE: runCreate,
}

var editCmd = &cobra.Command{
	Use:   "edit <project-id>",
	Short: "Edit a project",
	Long: `Edit the fields of a project and print the result. Only the flags
given are changed; --assignee replaces the whole assignee list.`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

var deleteCmd = &cobra.Command{
	Use:   "delete <project-id>",
	Short: "Delete a project with its tasks and reminders",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

var addTaskCmd = &cobra.Command{
	Use:   "add-task <project-id> <name>",
	Short: "Add a task to a project",
	Args:  cobra.ExactArgs(2),
	RunE:  runAddTask,
}

var setStatusCmd = &cobra.Command{
	Use:   "set-status <project-id> <task-id> <status>",
	Short: "Set the status of a task",
	Long: `Set the status of a task. Status is one of: todo, in progress, done.
Use "next" to advance the task through its workflow.`,
	Args: cobra.ExactArgs(3),
	RunE: runSetStatus,
}

// projectFlags holds the flags shared by create and edit.
type projectFlags struct {
	name            string
	description     string
	start           string
	end             string
	status          string
	priority        string
	assignees       []string
	manager         string
	reminders       []string
	removeReminders []int64
}

var (
	createOpts projectFlags
	editOpts   projectFlags

	taskDescription string
	taskAssignee    string
	taskStatus      string
)

func init() {
	addProjectFlags(createCmd, &createOpts)
	addProjectFlags(editCmd, &editOpts)
	editCmd.Flags().Int64SliceVar(&editOpts.removeReminders, "remove-reminder", nil, "Id of a reminder to remove (repeatable)")

	addTaskCmd.Flags().StringVarP(&taskDescription, "description", "d", "", "Task description")
	addTaskCmd.Flags().StringVar(&taskAssignee, "assignee", "", "Person the task is assigned to")
	addTaskCmd.Flags().StringVar(&taskStatus, "status", "", "Initial status (default todo)")

	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(addTaskCmd)
	rootCmd.AddCommand(setStatusCmd)
}

func addProjectFlags(cmd *cobra.Command, opts *projectFlags) {
	f := cmd.Flags()
	f.StringVarP(&opts.name, "name", "n", "", "Project name")
	f.StringVarP(&opts.description, "description", "d", "", "Project description")
	f.StringVar(&opts.start, "start", "", "Start date (YYYY-MM-DD)")
	f.StringVar(&opts.end, "end", "", "End date (YYYY-MM-DD), after the start date")
	f.StringVar(&opts.status, "status", "", "Status (planned, in progress, completed, on hold)")
	f.StringVar(&opts.priority, "priority", "", "Priority (high, medium, low)")
	f.StringSliceVarP(&opts.assignees, "assignee", "a", nil, "Assignee (repeatable)")
	f.StringVar(&opts.manager, "manager", "", "Project manager, one of the assignees")
	f.StringArrayVar(&opts.reminders, "reminder", nil, `Reminder as "YYYY-MM-DD:description" (repeatable)`)
}

// applyProjectFlags copies the flags that were given onto form. Unknown
// status and priority values are passed through so validation reports them
// against their field.
func applyProjectFlags(cmd *cobra.Command, form *project.Form, opts *projectFlags, roster []string) error {
	flags := cmd.Flags()

	if flags.Changed("name") {
		form.SetName(opts.name)
	}
	if flags.Changed("description") {
		form.SetDescription(opts.description)
	}
	if flags.Changed("start") || flags.Changed("end") {
		in := form.Input()
		start, end := in.StartDate, in.EndDate
		var err error
		if flags.Changed("start") {
			if start, err = project.ParseDate(opts.start); err != nil {
				return err
			}
		}
		if flags.Changed("end") {
			if end, err = project.ParseDate(opts.end); err != nil {
				return err
			}
		}
		form.SetDates(start, end)
	}
	if flags.Changed("status") {
		s, err := project.ParseStatus(opts.status)
		if err != nil {
			s = project.Status(opts.status)
		}
		form.SetStatus(s)
	}
	if flags.Changed("priority") {
		p, err := project.ParsePriority(opts.priority)
		if err != nil {
			p = project.Priority(opts.priority)
		}
		form.SetPriority(p)
	}
	if flags.Changed("assignee") {
		names := trimNames(opts.assignees)
		setAssignees(form, names)
		warnOffRoster(cmd.ErrOrStderr(), names, roster)
	}
	if flags.Changed("manager") {
		if opts.manager != "" && !slices.Contains(form.Input().Assignees, opts.manager) {
			return fmt.Errorf("manager %q must be one of the assignees", opts.manager)
		}
		form.SetProjectManager(opts.manager)
	}
	for _, id := range opts.removeReminders {
		if !form.RemoveReminder(id) {
			return fmt.Errorf("reminder %d not found", id)
		}
	}
	for _, raw := range opts.reminders {
		date, desc, err := parseReminder(raw)
		if err != nil {
			return err
		}
		if _, ok := form.AddReminder(date, desc); !ok {
			return fmt.Errorf("invalid reminder %q: date and description are required", raw)
		}
	}
	return nil
}

// setAssignees makes the form's assignee list equal to names, keeping the
// order names were given in.
// trimNames trims each name and drops blanks.
func trimNames(names []string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		if name = strings.TrimSpace(name); name != "" {
			out = append(out, name)
		}
	}
	return out
}

// setAssignees makes the form's assignees equal names, which must already
// be trimmed. Assignees kept across the change keep their manager role.
func setAssignees(form *project.Form, names []string) {
	for _, current := range form.Input().Assignees {
		if !slices.Contains(names, current) {
			form.ToggleAssignee(current)
		}
	}
	for _, name := range names {
		if !slices.Contains(form.Input().Assignees, name) {
			form.ToggleAssignee(name)
		}
	}
}

func warnOffRoster(w io.Writer, names, roster []string) {
	if len(roster) == 0 {
		return
	}
	for _, name := range names {
		if !slices.Contains(roster, name) {
			fmt.Fprintf(w, "warning: %q is not in the team roster\n", name)
		}
	}
}

// parseReminder splits "YYYY-MM-DD:description".
func parseReminder(raw string) (project.Date, string, error) {
	dateStr, desc, ok := strings.Cut(raw, ":")
	if !ok {
		return project.Date{}, "", fmt.Errorf("invalid reminder %q: expected YYYY-MM-DD:description", raw)
	}
	date, err := project.ParseDate(strings.TrimSpace(dateStr))
	if err != nil {
		return project.Date{}, "", err
	}
	return date, strings.TrimSpace(desc), nil
}

func runCreate(cmd *cobra.Command, args []string) error {
	rt, err := bootstrap()
	if err != nil {
		return err
	}
	defer rt.cleanup()

	form := project.NewForm()
	if err := applyProjectFlags(cmd, form, &createOpts, rt.roster); err != nil {
		return err
	}

	p, err := rt.svc.SaveForm(form)
	if err != nil {
		return reportValidation(cmd.ErrOrStderr(), err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created project %d\n\n", p.ID)
	printProjectDetail(out, p)
	return nil
}

func runEdit(cmd *cobra.Command, args []string) error {
	id, err := parseID("project", args[0])
	if err != nil {
		return err
	}

	rt, err := bootstrap()
	if err != nil {
		return err
	}
	defer rt.cleanup()

	current, err := rt.svc.GetProject(id)
	if err != nil {
		return err
	}

	form := project.EditForm(current)
	if err := applyProjectFlags(cmd, form, &editOpts, rt.roster); err != nil {
		return err
	}

	p, err := rt.svc.SaveForm(form)
	if err != nil {
		return reportValidation(cmd.ErrOrStderr(), err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Updated project %d\n\n", p.ID)
	printProjectDetail(out, p)
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID("project", args[0])
	if err != nil {
		return err
	}

	rt, err := bootstrap()
	if err != nil {
		return err
	}
	defer rt.cleanup()

	p, err := rt.svc.GetProject(id)
	if err != nil {
		return err
	}
	if err := rt.svc.DeleteProject(id); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Deleted project %d (%s)\n\n", p.ID, p.Name)
	printProjectTable(out, rt.svc.ListProjects(rt.defaultFilter()), outputWidth(out))
	return nil
}

func runAddTask(cmd *cobra.Command, args []string) error {
	projectID, err := parseID("project", args[0])
	if err != nil {
		return err
	}

	in := project.TaskInput{
		Name:        args[1],
		Description: taskDescription,
		AssignedTo:  taskAssignee,
	}
	if taskStatus != "" {
		s, err := project.ParseTaskStatus(taskStatus)
		if err != nil {
			s = project.TaskStatus(taskStatus)
		}
		in.Status = s
	}

	rt, err := bootstrap()
	if err != nil {
		return err
	}
	defer rt.cleanup()

	task, err := rt.svc.AddTask(projectID, in)
	if err != nil {
		return reportValidation(cmd.ErrOrStderr(), err)
	}

	p, err := rt.svc.GetProject(projectID)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Added task %d to project %d\n\n", task.ID, projectID)
	printProjectDetail(out, p)
	return nil
}

func runSetStatus(cmd *cobra.Command, args []string) error {
	projectID, err := parseID("project", args[0])
	if err != nil {
		return err
	}
	taskID, err := parseID("task", args[1])
	if err != nil {
		return err
	}

	rt, err := bootstrap()
	if err != nil {
		return err
	}
	defer rt.cleanup()

	var status project.TaskStatus
	if strings.EqualFold(args[2], "next") {
		if status, err = rt.svc.CycleTaskStatus(projectID, taskID); err != nil {
			return err
		}
	} else {
		status, err = project.ParseTaskStatus(args[2])
		if err != nil {
			status = project.TaskStatus(args[2])
		}
		if err := rt.svc.UpdateTaskStatus(projectID, taskID, status); err != nil {
			return reportValidation(cmd.ErrOrStderr(), err)
		}
	}

	p, err := rt.svc.GetProject(projectID)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Task %d is now %s\n\n", taskID, status)
	printProjectDetail(out, p)
	return nil
}
