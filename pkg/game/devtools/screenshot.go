package devtools

import (
	"fmt"
	"image"
	"os"
	"strings"
	"time"

	"arrocha/pkg/game/generator"
	"arrocha/pkg/game/level"
	"arrocha/pkg/game/renderer"
)

// htmlTileSize is the SVG pixel size of one tile.
const htmlTileSize = 12

// RenderHTML returns a standalone HTML page drawing the level as SVG, with
// collision loops and mover tracks overlaid.
func RenderHTML(l *level.Level) string {
	w, h := l.Cols*htmlTileSize, l.Rows*htmlTileSize
	var html strings.Builder

	html.WriteString(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Level Snapshot</title>
    <style>
        body {
            background-color: #1a1a2e;
            color: #eee;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .header {
            color: #bb86fc;
            font-size: 18px;
            margin-bottom: 10px;
        }
        .map-container {
            background-color: #0f0f1a;
            padding: 20px;
            border-radius: 8px;
            display: inline-block;
            margin: 20px 0;
        }
        .loop { fill: none; stroke-width: 2; }
        .mover { fill: none; stroke: #ff9600; stroke-width: 2; stroke-dasharray: 4 2; }
    </style>
</head>
<body>
`)

	html.WriteString(fmt.Sprintf(`    <div class="header">Seed %d, %dx%d tiles, %d loops, %d movers</div>`+"\n",
		l.Seed, l.Cols, l.Rows, len(l.Loops), l.MoverCount()))
	html.WriteString(`    <div class="map-container">` + "\n")
	html.WriteString(fmt.Sprintf(`    <svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n", w, h, w, h))

	// Tiles, one rect per horizontal run of the same kind.
	for y := 0; y < l.Rows; y++ {
		for x := 0; x < l.Cols; {
			kind := l.Tiles.At(image.Pt(x, y))
			run := 1
			for x+run < l.Cols && l.Tiles.At(image.Pt(x+run, y)) == kind {
				run++
			}
			html.WriteString(fmt.Sprintf(`        <rect x="%d" y="%d" width="%d" height="%d" fill="%s"/>`+"\n",
				x*htmlTileSize, y*htmlTileSize, run*htmlTileSize, htmlTileSize, hexColor(kind)))
			x += run
		}
	}

	for _, m := range l.Movers {
		html.WriteString(fmt.Sprintf(`        <rect class="mover" x="%d" y="%d" width="%d" height="%d"/>`+"\n",
			m.Track.Min.X*htmlTileSize, m.Track.Min.Y*htmlTileSize, m.Track.Dx()*htmlTileSize, m.Track.Dy()*htmlTileSize))
	}

	lc := renderer.LoopColor
	for _, loop := range l.Loops {
		points := make([]string, 0, len(loop))
		for _, p := range loop {
			points = append(points, fmt.Sprintf("%g,%g", (p.X+0.5)*htmlTileSize, (p.Y+0.5)*htmlTileSize))
		}
		html.WriteString(fmt.Sprintf(`        <polyline class="loop" stroke="#%02x%02x%02x" points="%s"/>`+"\n",
			lc.R, lc.G, lc.B, strings.Join(points, " ")))
	}

	html.WriteString("    </svg>\n")
	html.WriteString(`    </div>` + "\n")
	html.WriteString(`</body>
</html>
`)
	return html.String()
}

// SaveScreenshotHTML writes RenderHTML output to a timestamped file and
// returns its name.
func SaveScreenshotHTML(l *level.Level) (string, error) {
	timestamp := time.Now().Format("20060102-150405")
	filename := fmt.Sprintf("screenshot-%s.html", timestamp)

	if err := os.WriteFile(filename, []byte(RenderHTML(l)), 0644); err != nil {
		return "", err
	}
	return filename, nil
}

func hexColor(t generator.Tile) string {
	c := renderer.TileColor(t)
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
