package system

type logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// HideCursor writes the ANSI escape that hides the cursor to the active VT.
func HideCursor() error { return writeVT("\x1b[?25l") }
func ShowCursor() error { return writeVT("\x1b[?25h") }

// Console takes over the active virtual terminal for framebuffer output and
// gives it back on Restore. Each step is best-effort and only logged.
type Console struct {
	Logger logger
}

func (c Console) Acquire() {
	c.logged(SetGraphicsMode(), "KD_GRAPHICS set", "KD_GRAPHICS failed")
	c.logged(HideCursor(), "cursor hidden", "hide cursor failed")
}

func (c Console) Restore() {
	c.logged(ShowCursor(), "cursor shown", "show cursor failed")
	c.logged(RestoreTextMode(), "KD_TEXT set", "KD_TEXT failed")
}

func (c Console) logged(err error, ok, failed string) {
	if c.Logger == nil {
		return
	}
	if err != nil {
		c.Logger.Errorf("tty", "%s: %v", failed, err)
		return
	}
	c.Logger.Infof("tty", "%s", ok)
}
