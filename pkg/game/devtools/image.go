package devtools

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"arrocha/pkg/game/generator"
	"arrocha/pkg/game/renderer"
)

// DumpScale is the pixel size of one tile in image dumps.
const DumpScale = 16

// Format selects an image dump encoding.
type Format string

const (
	FormatPPM  Format = "ppm"
	FormatPNG  Format = "png"
	FormatText Format = "txt"
)

// ParseFormat accepts a format name or a file extension.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.TrimPrefix(strings.ToLower(s), ".")); f {
	case FormatPPM, FormatPNG, FormatText:
		return f, nil
	default:
		return "", fmt.Errorf("unknown dump format %q", s)
	}
}

// WritePPM writes tiles as a plain-text (P3) PPM image, scale pixels per tile.
func WritePPM(w io.Writer, tiles generator.TileMap, scale int) error {
	scale = max(scale, 1)
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "P3\n%d %d\n255\n", tiles.Cols()*scale, tiles.Rows()*scale)
	for y := 0; y < tiles.Rows(); y++ {
		for i := 0; i < scale; i++ {
			for x := 0; x < tiles.Cols(); x++ {
				c := renderer.TileColor(tiles.At(image.Pt(x, y)))
				for j := 0; j < scale; j++ {
					fmt.Fprintf(bw, "%d %d %d ", c.R, c.G, c.B)
				}
			}
			bw.WriteByte('\n')
		}
	}
	return bw.Flush()
}

// WritePNG writes tiles as a PNG image, scale pixels per tile.
func WritePNG(w io.Writer, tiles generator.TileMap, scale int) error {
	return png.Encode(w, renderer.Rasterize(tiles, scale))
}

// DumpImageToFile writes tiles to path in format and returns the absolute path.
func DumpImageToFile(tiles generator.TileMap, path string, format Format) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	switch format {
	case FormatPNG:
		err = WritePNG(f, tiles, DumpScale)
	case FormatPPM:
		err = WritePPM(f, tiles, DumpScale)
	default:
		_, err = io.WriteString(f, tiles.String())
	}
	if err != nil {
		return "", fmt.Errorf("writing %s: %w", absPath, err)
	}
	return absPath, nil
}
