package appState

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/isaacphi/adminshell/internal/config"
)

// App holds the global application state
type App struct {
	Config    *config.ConfigSchema
	Logger    *slog.Logger
	SessionID string
	closer    io.Closer // For cleanup of resources like log files
}

var (
	globalApp *App
	initOnce  sync.Once
	initErr   error
	mu        sync.RWMutex
)

// Initialize creates the global app instance with the given overrides.
// interactive means the TUI owns the terminal, so logs without a log file
// are discarded instead of written to stderr.
func Initialize(overrides *config.RuntimeOverrides, interactive bool) error {
	initOnce.Do(func() {
		cfg, err := config.New(overrides)
		if err != nil {
			initErr = fmt.Errorf("failed to load config: %w", err)
			return
		}

		logger, closer, err := setupLogger(cfg.Log, interactive)
		if err != nil {
			initErr = fmt.Errorf("failed to setup logger: %w", err)
			return
		}

		sessionID := uuid.NewString()
		logger = logger.With("session", sessionID)

		if unknown := cfg.UnknownKeys(); len(unknown) > 0 {
			logger.Warn("ignoring unknown configuration keys", "keys", strings.Join(unknown, ", "))
		}

		mu.Lock()
		globalApp = &App{
			Config:    cfg,
			Logger:    logger,
			SessionID: sessionID,
			closer:    closer,
		}
		mu.Unlock()

		slog.SetDefault(logger)
		logger.Debug("app initialized", "interactive", interactive)
	})
	return initErr
}

// Get returns the global app instance and panics if not initialized
func Get() *App {
	mu.RLock()
	defer mu.RUnlock()

	if globalApp == nil {
		panic("app not initialized")
	}
	return globalApp
}

// TryGet returns the global app instance and a boolean indicating if it's initialized
func TryGet() (*App, bool) {
	mu.RLock()
	defer mu.RUnlock()
	return globalApp, globalApp != nil
}

// Cleanup performs cleanup of app resources
func Cleanup() error {
	mu.Lock()
	defer mu.Unlock()

	if globalApp != nil && globalApp.closer != nil {
		return globalApp.closer.Close()
	}
	return nil
}

func parseLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func setupLogger(cfg config.Log, interactive bool) (*slog.Logger, io.Closer, error) {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: true,
	}

	if cfg.File == "" {
		// The TUI would be corrupted by log lines on the terminal
		var w io.Writer = os.Stderr
		if interactive {
			w = io.Discard
		}
		return slog.New(slog.NewTextHandler(w, opts)), nil, nil
	}

	file, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	handler := slog.NewTextHandler(file, opts)
	return slog.New(handler), file, nil
}
