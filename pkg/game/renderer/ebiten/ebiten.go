package ebiten

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"arrocha/pkg/game/level"
	"arrocha/pkg/game/renderer"
)

// New creates a viewer whose window is at most maxWidth×maxHeight pixels.
func New(maxWidth, maxHeight int) *Viewer {
	return &Viewer{
		windowWidth:  maxWidth,
		windowHeight: maxHeight,
		showTiles:    true,
		showLoops:    true,
		showMovers:   true,
	}
}

// Name identifies the backend in log output.
func (v *Viewer) Name() string {
	return "ebiten"
}

// Init sets the window title.
func (v *Viewer) Init() {
	ebiten.SetWindowTitle(tr("VIEWER_TITLE"))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
}

// Render opens the window and blocks until it is closed.
func (v *Viewer) Render(l *level.Level) error {
	v.level = l
	v.tileLayer = nil
	v.tileSize = renderer.FitTileSize(l.Cols, l.Rows, v.windowWidth, v.windowHeight)
	ebiten.SetWindowSize(l.Cols*v.tileSize, l.Rows*v.tileSize)

	if err := ebiten.RunGame(v); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
