package app

// Extension hooks into every tick around the screen's Draw. Init runs once
// before the host is opened; an error aborts Run.
type Extension interface {
	Init() error
	PreDraw(f *Frame)
	PostDraw(f *Frame)
}

// NopExtension can be embedded to implement only some hooks.
type NopExtension struct{}

func (NopExtension) Init() error       { return nil }
func (NopExtension) PreDraw(f *Frame)  {}
func (NopExtension) PostDraw(f *Frame) {}
