package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gookit/color"

	"arrocha/pkg/game/generator"
	"arrocha/pkg/game/level"
)

func TestRender_PlainOutput(t *testing.T) {
	color.Enable = false
	defer func() { color.Enable = true }()

	var buf bytes.Buffer
	r := NewWithWriter(&buf, 80)
	r.Init()

	l := level.FromTiles(generator.ParseTileMap("###", "#H#", "#=#"))
	if err := r.Render(l); err != nil {
		t.Fatalf("Render: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want header + 3 rows:\n%s", len(lines), buf.String())
	}
	want := []string{"▒▒▒", "▒H▒", "▒=▒"}
	for i, w := range want {
		if lines[i+1] != w {
			t.Errorf("row %d = %q, want %q", i, lines[i+1], w)
		}
	}
}

func TestRender_ClipsToWidth(t *testing.T) {
	color.Enable = false
	defer func() { color.Enable = true }()

	var buf bytes.Buffer
	r := NewWithWriter(&buf, 2)
	r.Init()

	l := level.FromTiles(generator.ParseTileMap("#.#.#"))
	if err := r.Render(l); err != nil {
		t.Fatalf("Render: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header, row and clip note:\n%s", len(lines), buf.String())
	}
	if lines[1] != "▒ " {
		t.Errorf("row = %q, want %q", lines[1], "▒ ")
	}
}

func TestName(t *testing.T) {
	if NewWithWriter(nil, 0).Name() != "tui" {
		t.Error("unexpected name")
	}
}
