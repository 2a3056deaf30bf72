package renderer

import (
	"arrocha/pkg/game/level"
)

// Renderer shows a generated level.
// Implementations include the terminal preview and the Ebiten viewer.
type Renderer interface {
	// Init prepares the renderer (colours, window, etc.)
	Init()

	// Render shows l. GUI renderers block until the window closes.
	Render(l *level.Level) error

	// Name identifies the backend in log output.
	Name() string
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Render initialises and runs the current renderer. Without one it is a no-op.
func Render(l *level.Level) error {
	if Current == nil {
		return nil
	}
	Current.Init()
	return Current.Render(l)
}
