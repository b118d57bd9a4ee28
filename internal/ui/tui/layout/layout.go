package layout

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/isaacphi/adminshell/internal/ui/tui/components/help"
	"github.com/isaacphi/adminshell/internal/ui/tui/theme"
)

// FooterHeight is the number of lines reserved for the help footer
const FooterHeight = 2

// LayoutResult holds the results of layout calculations
type LayoutResult struct {
	ContentHeight int
	HelpView      string
}

// LayoutScreen creates a consistent layout with help at bottom
func LayoutScreen(width, height int, helpModel help.Model, thm *theme.Theme, focusHint string) LayoutResult {
	contentHeight := max(height-FooterHeight, 0)

	helpStyle := thm.FooterStyle.Width(width)

	var helpView string
	if !helpModel.ShowAll && focusHint != "" {
		helpView = helpStyle.Render(focusHint + " • " + helpModel.ShortHelp())
	} else {
		helpView = helpModel.View()
	}

	return LayoutResult{
		ContentHeight: contentHeight,
		HelpView:      helpView,
	}
}

// Compose stacks content above the help footer, padding the content area
// so the footer stays on the last lines of the screen.
func Compose(content string, result LayoutResult) string {
	var b strings.Builder
	b.WriteString(content)

	if missing := result.ContentHeight - lipgloss.Height(content); missing > 0 {
		b.WriteString(strings.Repeat("\n", missing))
	}

	b.WriteString("\n")
	b.WriteString(result.HelpView)
	return b.String()
}

// PageHeader renders the back hint, title and subtitle shared by the
// detail screens.
func PageHeader(thm *theme.Theme, backHint, title, subtitle string) string {
	parts := []string{
		thm.KeyHintStyle.Render("← " + backHint),
		"",
		thm.TitleStyle.Render(title),
	}
	if subtitle != "" {
		parts = append(parts, thm.SubtitleStyle.Render(subtitle))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Grid lays cells out left to right, starting a new row whenever the next
// cell would not fit in width.
func Grid(width, gap int, cells ...string) string {
	var (
		rows    []string
		row     []string
		rowUsed int
	)
	spacer := strings.Repeat(" ", gap)

	flush := func() {
		if len(row) > 0 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
		}
		row, rowUsed = nil, 0
	}

	for _, cell := range cells {
		w := lipgloss.Width(cell)
		if len(row) > 0 && rowUsed+gap+w > width {
			flush()
		}
		if len(row) > 0 {
			row = append(row, spacer)
			rowUsed += gap
		}
		row = append(row, cell)
		rowUsed += w
	}
	flush()

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
