package analytics

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/isaacphi/adminshell/internal/config"
	"github.com/isaacphi/adminshell/internal/nav"
	"github.com/isaacphi/adminshell/internal/ui/tui/components/chart"
	"github.com/isaacphi/adminshell/internal/ui/tui/keymap"
	"github.com/isaacphi/adminshell/internal/ui/tui/layout"
	"github.com/isaacphi/adminshell/internal/ui/tui/theme"
)

// Metric is a headline figure with a fill ratio for its bar
type Metric struct {
	Label string
	Value string
	Fill  float64
}

var Metrics = []Metric{
	{Label: "Total Views", Value: "1.2M", Fill: 0.75},
	{Label: "Click Rate", Value: "3.45%", Fill: 0.5},
	{Label: "Conversion", Value: "2.1%", Fill: 0.25},
}

// Traffic holds the daily traffic percentages for the last seven days
var Traffic = []int{45, 70, 30, 85, 55, 60, 90}

// Visits converts a traffic percentage into the visit count shown for it
func Visits(traffic int) int {
	return traffic * 100
}

const (
	cardWidth    = 28
	minCardWidth = 18
	cardGap      = 2
	barWidth     = 5
)

// metricCardWidth fits the metric cards on one row within width, borders
// included, without going below minCardWidth.
func metricCardWidth(width int) int {
	n := len(Metrics)
	w := (width-cardGap*(n-1))/n - 2
	return min(max(w, minCardWidth), cardWidth)
}

type keys struct {
	Back  key.Binding
	Left  key.Binding
	Right key.Binding
}

// Model represents the analytics screen
type Model struct {
	theme    *theme.Theme
	source   *config.KeyMap
	keys     keys
	bars     []progress.Model
	selected int
	width    int
	height   int
}

// New creates a new analytics screen
func New(thm *theme.Theme, source *config.KeyMap) *Model {
	colors := []lipgloss.AdaptiveColor{thm.Primary, thm.Secondary, thm.Tertiary}

	bars := make([]progress.Model, len(Metrics))
	for i := range Metrics {
		c := colors[i%len(colors)]
		bars[i] = progress.New(
			progress.WithSolidFill(c.Dark),
			progress.WithoutPercentage(),
			progress.WithWidth(cardWidth-4),
		)
		bars[i].EmptyColor = thm.Subtle.Dark
	}

	return &Model{
		theme:  thm,
		source: source,
		keys: keys{
			Back:  keymap.Binding(source, config.KeyActionBack, "back to menu"),
			Left:  keymap.Binding(source, config.KeyActionLeft, "previous day"),
			Right: keymap.Binding(source, config.KeyActionRight, "next day"),
		},
		bars:     bars,
		selected: len(Traffic) - 1,
	}
}

// SetSize sets the area available to the screen
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Selected returns the index of the highlighted day
func (m *Model) Selected() int {
	return m.selected
}

// Update moves the day selection and handles back navigation
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Back):
		return nav.Back()
	case key.Matches(keyMsg, m.keys.Left):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(keyMsg, m.keys.Right):
		if m.selected < len(Traffic)-1 {
			m.selected++
		}
	}
	return nil
}

func (m *Model) metricCard(i, width int) string {
	metric := Metrics[i]
	m.bars[i].Width = width - 4
	return m.theme.CardStyle.Width(width).Render(lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.MutedStyle.Render(metric.Label),
		m.theme.TitleStyle.Render(metric.Value),
		"",
		m.bars[i].ViewAs(metric.Fill),
	))
}

func (m *Model) trafficPanel() string {
	values := make([]float64, len(Traffic))
	labels := make([]string, len(Traffic))
	for i, t := range Traffic {
		values[i] = float64(t)
		labels[i] = fmt.Sprintf("Day %d", i+1)
	}

	bars := chart.Bars{
		Values:   values,
		Max:      100,
		Height:   10,
		BarWidth: barWidth,
		Gap:      2,
		Style: func(i int) lipgloss.Style {
			if i == m.selected {
				return lipgloss.NewStyle().Foreground(m.theme.Primary)
			}
			return lipgloss.NewStyle().Foreground(m.theme.Muted)
		},
	}

	tooltip := fmt.Sprintf("Day %d: %d Visits", m.selected+1, Visits(Traffic[m.selected]))

	return m.theme.CardStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.TitleStyle.Render("Traffic Sources (Last 7 Days)"),
		"",
		m.theme.BrandStyle.Render(tooltip),
		"",
		bars.View(),
		m.theme.MutedStyle.Render(bars.Labels(labels)),
	))
}

// View renders the analytics screen
func (m *Model) View() string {
	width := m.width
	if width == 0 {
		width = len(Metrics)*(cardWidth+2) + cardGap*(len(Metrics)-1)
	}

	cw := metricCardWidth(width)
	spacer := strings.Repeat(" ", cardGap)
	var cards []string
	for i := range Metrics {
		if i > 0 {
			cards = append(cards, spacer)
		}
		cards = append(cards, m.metricCard(i, cw))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		layout.PageHeader(m.theme, "Back to Menu", "Analytics", "Deep dive into your data"),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, cards...),
		"",
		m.trafficPanel(),
	)
}

// GetKeyMap returns analytics screen specific keybindings
func (m *Model) GetKeyMap() keymap.KeyMap {
	km := keymap.NewKeyMap(m.source)
	km.Add(keymap.NavigationGroup, m.keys.Back)
	km.Add(keymap.ActionGroup, m.keys.Left)
	km.Add(keymap.ActionGroup, m.keys.Right)
	return km
}

// CapturesInput is always false; the analytics screen has no text input
func (m *Model) CapturesInput() bool {
	return false
}
