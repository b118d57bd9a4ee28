package nav

import "log/slog"

// Controller owns the active screen. Navigation is flat: every detail
// screen sits one level below Menu and Back always returns to Menu.
//
// A Controller is not safe for concurrent use; it is driven from the
// Bubble Tea update loop only.
type Controller struct {
	current ScreenID
	logger  *slog.Logger
}

// NewController returns a controller positioned on the landing screen.
func NewController(logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		current: Landing,
		logger:  logger,
	}
}

// Current returns the active screen.
func (c *Controller) Current() ScreenID {
	return c.current
}

// Enter leaves the landing screen for the menu.
func (c *Controller) Enter() {
	c.set(Menu)
}

// Navigate opens one of the detail screens. Targets other than the
// detail screens are ignored.
func (c *Controller) Navigate(target ScreenID) {
	if !target.IsDetail() {
		c.logger.Warn("ignoring navigation to non-detail screen", "target", int(target), "current", c.current.String())
		return
	}
	c.set(target)
}

// Back returns to the menu from wherever the shell is.
func (c *Controller) Back() {
	c.set(Menu)
}

func (c *Controller) set(to ScreenID) {
	from := c.current
	c.current = to
	c.logger.Debug("screen transition", "from", from.String(), "to", to.String())
}
