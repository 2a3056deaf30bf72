// Package devtools provides developer tools for inspecting generated levels.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/leonelquinteros/gotext"

	"arrocha/pkg/game/generator"
	"arrocha/pkg/game/level"
)

// tr is used for runtime translation key lookups.
var tr = gotext.Get

// DumpLevel writes a full debug dump: metadata, legend, map, movers and
// loops. The format is human-readable (sections, key: value).
func DumpLevel(w io.Writer, l *level.Level) error {
	d := &dumper{w: w}

	// --- Metadata ---
	d.println("=== LEVEL DUMP (tiles, movers, collision loops) ===")
	d.println("")
	d.println("--- Metadata ---")
	d.printf("seed: %d\n", l.Seed)
	d.printf("grid_cols: %d\n", l.Cols)
	d.printf("grid_rows: %d\n", l.Rows)
	d.printf("rooms: %dx%d\n", l.Rooms.X, l.Rooms.Y)
	d.printf("coordinate_system: x,y (0-based, x=column, y=row downward)\n")
	for _, kind := range generator.AllTiles() {
		d.printf("count_%s: %d\n", kind, l.Tiles.Count(kind))
	}
	d.printf("movers: %d\n", l.MoverCount())
	d.printf("loops: %d\n", len(l.Loops))
	d.println("")

	// --- Legend ---
	d.println("--- Legend ---")
	for _, kind := range generator.AllTiles() {
		d.printf("%c = %s\n", kind.Rune(), tr(kind.String()))
	}
	d.println("")

	// --- Map ---
	d.println("--- Map ---")
	d.printf("%s", l.Tiles.String())
	d.println("")

	// --- Movers ---
	d.println("--- Movers ---")
	for i, m := range l.Movers {
		d.printf("  index: %d kind: %s x: %d y: %d width: %d height: %d\n",
			i, m.Kind, m.Track.Min.X, m.Track.Min.Y, m.Track.Dx(), m.Track.Dy())
	}
	d.println("")

	// --- Loops ---
	d.println("--- Loops ---")
	for i, loop := range l.Loops {
		d.printf("  index: %d corners: %d area: %g hole: %v\n", i, len(loop.Chain()), loop.Area(), loop.IsHole())
		for _, p := range loop.Chain() {
			d.printf("    %g,%g\n", p.X, p.Y)
		}
	}

	return d.err
}

// DumpLevelToFile writes DumpLevel output to path and returns its absolute path.
func DumpLevelToFile(l *level.Level, path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := DumpLevel(f, l); err != nil {
		return "", fmt.Errorf("writing %s: %w", absPath, err)
	}
	return absPath, nil
}

// dumper keeps the first write error so the dump reads as a flat script.
type dumper struct {
	w   io.Writer
	err error
}

func (d *dumper) printf(format string, args ...any) {
	if d.err == nil {
		_, d.err = fmt.Fprintf(d.w, format, args...)
	}
}

func (d *dumper) println(s string) {
	if d.err == nil {
		_, d.err = fmt.Fprintln(d.w, s)
	}
}
