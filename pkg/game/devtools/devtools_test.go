package devtools

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"arrocha/pkg/game/generator"
	"arrocha/pkg/game/level"
	"arrocha/pkg/game/renderer"
)

func TestWritePPM_Layout(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePPM(&buf, generator.ParseTileMap("#."), 2); err != nil {
		t.Fatalf("WritePPM: %v", err)
	}
	want := "P3\n4 2\n255\n" +
		"0 0 0 0 0 0 255 255 255 255 255 255 \n" +
		"0 0 0 0 0 0 255 255 255 255 255 255 \n"
	if buf.String() != want {
		t.Errorf("WritePPM =\n%q\nwant\n%q", buf.String(), want)
	}
}

func TestWritePNG_Decodes(t *testing.T) {
	var buf bytes.Buffer
	tiles := generator.ParseTileMap("H#", "..")
	if err := WritePNG(&buf, tiles, 4); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 8 {
		t.Fatalf("bounds = %v, want 8x8", b)
	}
	r, g, b, _ := img.At(1, 1).RGBA()
	want := renderer.TileColor(generator.Ladder)
	if uint8(r>>8) != want.R || uint8(g>>8) != want.G || uint8(b>>8) != want.B {
		t.Errorf("ladder pixel = %d,%d,%d, want %v", r>>8, g>>8, b>>8, want)
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"ppm": FormatPPM, ".PNG": FormatPNG, "txt": FormatText} {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseFormat("gif"); err == nil {
		t.Error("ParseFormat(gif) should fail")
	}
}

func TestDumpLevel_Sections(t *testing.T) {
	l := level.FromTiles(generator.ParseTileMap("###", "#.#", "###"))
	var buf bytes.Buffer
	if err := DumpLevel(&buf, l); err != nil {
		t.Fatalf("DumpLevel: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"--- Metadata ---",
		"grid_cols: 3",
		"count_Wall: 8",
		"loops: 2",
		"--- Legend ---",
		"--- Map ---\n###\n#.#\n###\n",
		"hole: true",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dump missing %q:\n%s", want, out)
		}
	}
}

func TestDumpImageToFile(t *testing.T) {
	dir := t.TempDir()
	tiles := generator.ParseTileMap("#=")

	path, err := DumpImageToFile(tiles, filepath.Join(dir, "map.ppm"), FormatPPM)
	if err != nil {
		t.Fatalf("DumpImageToFile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "P3\n32 16\n255\n") {
		t.Errorf("unexpected header: %q", string(data[:20]))
	}

	path, err = DumpImageToFile(tiles, filepath.Join(dir, "map.txt"), FormatText)
	if err != nil {
		t.Fatalf("DumpImageToFile: %v", err)
	}
	data, _ = os.ReadFile(path)
	if string(data) != "#=\n" {
		t.Errorf("text dump = %q", string(data))
	}
}

func TestRenderHTML_DrawsLoops(t *testing.T) {
	l := DevMap()
	html := RenderHTML(l)
	if !strings.Contains(html, "<svg") {
		t.Fatal("no svg element")
	}
	if got := strings.Count(html, `class="loop"`); got != len(l.Loops) {
		t.Errorf("%d loop polylines, want %d", got, len(l.Loops))
	}
}

func TestDevMap_Valid(t *testing.T) {
	l := DevMap()
	if err := l.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	for _, kind := range generator.AllTiles() {
		if l.Tiles.Count(kind) == 0 {
			t.Errorf("dev map has no %v tile", kind)
		}
	}
	holes := 0
	for _, loop := range l.Loops {
		if loop.IsHole() {
			holes++
		}
	}
	if holes == 0 {
		t.Error("dev map has no holes")
	}
}
