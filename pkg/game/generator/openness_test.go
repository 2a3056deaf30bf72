package generator

import (
	"image"
	"testing"

	"arrocha/pkg/engine/rng"
)

func TestIsTileOpen(t *testing.T) {
	b := newBlueprint(8, 8, rng.New(1), DefaultConfig())
	b.tiles.Set(image.Pt(1, 1), Wall)
	b.tiles.Set(image.Pt(2, 1), Ladder)
	b.tiles.Set(image.Pt(3, 1), LiftTrack)
	b.tiles.Set(image.Pt(4, 1), MoverTrack)

	tests := []struct {
		name string
		p    image.Point
		rule OpenRule
		want bool
	}{
		{"empty default", image.Pt(0, 0), OpenDefault, true},
		{"empty mover", image.Pt(0, 0), OpenMover, true},
		{"wall default", image.Pt(1, 1), OpenDefault, false},
		{"wall with nothing closed", image.Pt(1, 1), OpenRule{}, false},
		{"ladder default", image.Pt(2, 1), OpenDefault, true},
		{"ladder solid", image.Pt(2, 1), OpenSolid, false},
		{"lift track solid", image.Pt(3, 1), OpenSolid, false},
		{"mover track default", image.Pt(4, 1), OpenDefault, true},
		{"mover track mover", image.Pt(4, 1), OpenMover, false},
		{"outside default", image.Pt(-1, 0), OpenDefault, false},
		{"outside padding", image.Pt(8, 3), OpenDefault, false},
		{"outside nothing closed", image.Pt(-1, 0), OpenRule{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.IsTileOpen(tt.p, tt.rule); got != tt.want {
				t.Errorf("IsTileOpen(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestIsRegionOpen(t *testing.T) {
	b := newBlueprint(8, 8, rng.New(1), DefaultConfig())
	b.tiles.Set(image.Pt(5, 5), Ladder)

	if !b.isRegionOpen(image.Rect(0, 0, 5, 5), OpenSolid) {
		t.Error("empty region reported closed")
	}
	if b.isRegionOpen(image.Rect(4, 4, 6, 6), OpenSolid) {
		t.Error("region with ladder open under OpenSolid")
	}
	if !b.isRegionOpen(image.Rect(4, 4, 6, 6), OpenDefault) {
		t.Error("region with ladder closed under OpenDefault")
	}
	if b.isRegionOpen(image.Rect(6, 6, 9, 9), OpenDefault) {
		t.Error("region crossing the edge reported open")
	}
	if !b.isRegionOpen(image.Rectangle{}, OpenMover) {
		t.Error("empty rectangle should be open")
	}
}
