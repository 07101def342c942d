package preview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// Preview holds the fields shown in a dry run.
type Preview struct {
	Endpoint  string
	User      string
	Image     []byte
	Status    string
	HasStatus bool
}

// Dracula palette.
var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#bd93f9")).
			Padding(0, 1)
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff79c6"))
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6272a4")).
			Width(10)
	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f8f8f2"))
	missingStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("#ffb86c"))
)

// Render returns the boxed summary.
func Render(p Preview) string {
	image := missingStyle.Render("none")
	if len(p.Image) > 0 {
		image = valueStyle.Render(humanize.Bytes(uint64(len(p.Image))))
	}
	status := missingStyle.Render("none")
	if p.HasStatus {
		status = valueStyle.Render(p.Status)
	}

	rows := []string{
		titleStyle.Render("Dry run: PATCH not sent"),
		row("endpoint", valueStyle.Render(p.Endpoint)),
		row("user", valueStyle.Render(p.User)),
		row("image", image),
		row("status", status),
	}
	return boxStyle.Render(strings.Join(rows, "\n"))
}

func row(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), value)
}
