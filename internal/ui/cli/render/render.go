package render

import (
	"fmt"
	"io"

	"github.com/isaacphi/adminshell/internal/appState"
	"github.com/isaacphi/adminshell/internal/config"
	"github.com/isaacphi/adminshell/internal/nav"
	"github.com/isaacphi/adminshell/internal/ui/tui/screens"
	"github.com/isaacphi/adminshell/internal/ui/tui/theme"
	"github.com/spf13/cobra"
)

var (
	width  int
	height int

	RenderCmd = &cobra.Command{
		Use:   "render [screen]",
		Short: "Print a screen without starting the TUI",
		Long:  "Render one screen to stdout. Screens: landing, menu, users, admin, analytics, settings. Unknown names render the landing screen.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := appState.Get()

			name := nav.Landing.String()
			if len(args) > 0 {
				name = args[0]
			}

			id, ok := nav.Parse(name)
			if !ok {
				app.Logger.Warn("unknown screen, rendering landing", "screen", name)
			}
			return Screen(cmd.OutOrStdout(), app.Config, id, width, height)
		},
	}
)

// Screen writes the presentation of id to w
func Screen(w io.Writer, cfg *config.ConfigSchema, id nav.ScreenID, width, height int) error {
	r := screens.NewRenderer(theme.New(cfg.Theme), cfg)
	r.SetSize(width, height)

	_, err := fmt.Fprintln(w, r.Render(id))
	return err
}

func init() {
	RenderCmd.Flags().IntVarP(&width, "width", "w", 100, "Width to lay the screen out in")
	RenderCmd.Flags().IntVar(&height, "height", 0, "Height to centre the landing and menu screens in; 0 renders them unpadded")
}
