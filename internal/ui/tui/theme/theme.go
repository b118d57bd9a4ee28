package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the semantic colors and styles for the application
type Theme struct {
	// Colors
	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor
	Tertiary  lipgloss.AdaptiveColor
	Text      lipgloss.AdaptiveColor
	Muted     lipgloss.AdaptiveColor
	Subtle    lipgloss.AdaptiveColor
	Success   lipgloss.AdaptiveColor
	Warning   lipgloss.AdaptiveColor
	Error     lipgloss.AdaptiveColor

	// Styles
	DocStyle      lipgloss.Style
	InputStyle    lipgloss.Style
	FocusedStyle  lipgloss.Style
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	BrandStyle    lipgloss.Style
	FooterStyle   lipgloss.Style
	KeyHintStyle  lipgloss.Style
	CardStyle     lipgloss.Style
	SelectedStyle lipgloss.Style
	BadgeStyle    lipgloss.Style
	MutedStyle    lipgloss.Style
}

// DefaultTheme creates the default slate and sky palette
func DefaultTheme() *Theme {
	return New(nil)
}

// New creates a theme with the default palette, replacing the colors named
// in overrides. Keys are role names (primary, secondary, tertiary, text,
// muted, subtle, success, warning, error); values are hex colors used for
// both light and dark terminals.
func New(overrides map[string]string) *Theme {
	palette := map[string]lipgloss.AdaptiveColor{
		"primary":   {Light: "#0284C7", Dark: "#38BDF8"},
		"secondary": {Light: "#7C3AED", Dark: "#A855F7"},
		"tertiary":  {Light: "#059669", Dark: "#10B981"},
		"text":      {Light: "#0F172A", Dark: "#F1F5F9"},
		"muted":     {Light: "#64748B", Dark: "#94A3B8"},
		"subtle":    {Light: "#CBD5E1", Dark: "#1E293B"},
		"success":   {Light: "#059669", Dark: "#34D399"},
		"warning":   {Light: "#D97706", Dark: "#FBBF24"},
		"error":     {Light: "#DC2626", Dark: "#F87171"},
	}
	for role, hex := range overrides {
		if _, ok := palette[role]; ok {
			palette[role] = lipgloss.AdaptiveColor{Light: hex, Dark: hex}
		}
	}

	primary := palette["primary"]
	text := palette["text"]
	muted := palette["muted"]
	subtle := palette["subtle"]
	success := palette["success"]

	return &Theme{
		Primary:   primary,
		Secondary: palette["secondary"],
		Tertiary:  palette["tertiary"],
		Text:      text,
		Muted:     muted,
		Subtle:    subtle,
		Success:   success,
		Warning:   palette["warning"],
		Error:     palette["error"],

		DocStyle: lipgloss.NewStyle().Padding(1, 2),

		InputStyle: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(subtle).
			Padding(0, 1),

		FocusedStyle: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(0, 1),

		TitleStyle: lipgloss.NewStyle().
			Foreground(text).
			Bold(true),

		SubtitleStyle: lipgloss.NewStyle().
			Foreground(muted),

		BrandStyle: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true),

		FooterStyle: lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 2),

		KeyHintStyle: lipgloss.NewStyle().
			Foreground(muted),

		CardStyle: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(subtle).
			Padding(0, 2),

		SelectedStyle: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(0, 2),

		BadgeStyle: lipgloss.NewStyle().
			Foreground(success).
			Bold(true),

		MutedStyle: lipgloss.NewStyle().
			Foreground(muted),
	}
}
