// Package chart draws vertical bar charts with block characters.
package chart

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var eighths = []rune(" ▁▂▃▄▅▆▇█")

// Bars is a vertical bar chart. Each value is scaled against Max and drawn
// Height rows tall with 1/8 row resolution.
type Bars struct {
	Values   []float64
	Max      float64
	Height   int
	BarWidth int
	Gap      int

	// Style returns the style for bar i. Nil draws unstyled bars.
	Style func(i int) lipgloss.Style
}

// View renders the chart, top row first
func (b Bars) View() string {
	if len(b.Values) == 0 || b.Height <= 0 {
		return ""
	}

	maxValue := b.Max
	if maxValue <= 0 {
		for _, v := range b.Values {
			maxValue = math.Max(maxValue, v)
		}
	}
	if maxValue <= 0 {
		maxValue = 1
	}
	barWidth := max(b.BarWidth, 1)
	gap := strings.Repeat(" ", max(b.Gap, 0))

	// Height of each bar in eighths of a row
	levels := make([]int, len(b.Values))
	for i, v := range b.Values {
		v = math.Min(math.Max(v, 0), maxValue)
		levels[i] = int(math.Round(v / maxValue * float64(b.Height*8)))
	}

	rows := make([]string, b.Height)
	for r := 0; r < b.Height; r++ {
		// Eighths below this row
		floor := (b.Height - 1 - r) * 8

		var line strings.Builder
		for i, level := range levels {
			if i > 0 {
				line.WriteString(gap)
			}
			fill := min(max(level-floor, 0), 8)
			cell := strings.Repeat(string(eighths[fill]), barWidth)
			if b.Style != nil {
				cell = b.Style(i).Render(cell)
			}
			line.WriteString(cell)
		}
		rows[r] = line.String()
	}
	return strings.Join(rows, "\n")
}

// Labels renders one label per bar, centred under it. Labels wider than a
// bar are cut to the bar width so later labels stay aligned.
func (b Bars) Labels(labels []string) string {
	barWidth := max(b.BarWidth, 1)
	gap := strings.Repeat(" ", max(b.Gap, 0))

	cells := make([]string, len(labels))
	for i, label := range labels {
		label = ansi.Truncate(label, barWidth, "")
		cells[i] = lipgloss.PlaceHorizontal(barWidth, lipgloss.Center, label)
	}
	return strings.Join(cells, gap)
}
