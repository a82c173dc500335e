// Package screens holds the demo screens selectable from the command line.
package screens

import (
	"fmt"
	"sort"

	"github.com/rook-computer/pixelpad/internal/app"
)

var registry = map[string]func() app.Screen{
	"shapes":    func() app.Screen { return &Shapes{} },
	"inputs":    func() app.Screen { return NewInputs() },
	"bouncing":  func() app.Screen { return NewBouncingRect() },
	"brush":     func() app.Screen { return &Brush{} },
	"hoverdrag": func() app.Screen { return NewHoverDrag() },
	"light":     func() app.Screen { return &Light{} },
	"gallery":   func() app.Screen { return &Gallery{QRPayload: "https://github.com/rook-computer/pixelpad"} },
}

// Names lists the registered screens in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ByName returns a fresh instance of the named screen.
func ByName(name string) (app.Screen, error) {
	newScreen, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown screen %q (available: %v)", name, Names())
	}
	return newScreen(), nil
}
