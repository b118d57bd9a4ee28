package tui

import (
	"context"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/isaacphi/adminshell/internal/config"
)

// Run starts the interactive shell and blocks until the user quits or ctx
// is cancelled.
func Run(ctx context.Context, cfg *config.ConfigSchema, logger *slog.Logger) error {
	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	p := tea.NewProgram(New(cfg, logger), opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}
