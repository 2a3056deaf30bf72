package generator

import (
	"image"
	"testing"

	"arrocha/pkg/engine/rng"
)

func TestAddHorizontalMover_MinimumLength(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		b := newBlueprint(200, 40, rng.New(seed), DefaultConfig())
		ok := false
		for i := 0; i < 100 && !ok; i++ {
			ok = b.addHorizontalMover()
		}
		if !ok {
			t.Fatalf("seed %d: no horizontal mover placed on an empty grid", seed)
		}

		m := b.Movers()[0]
		if m.Kind != HorizontalMover {
			t.Errorf("seed %d: kind = %v", seed, m.Kind)
		}
		if m.Track.Dy() != 1 {
			t.Errorf("seed %d: track %v spans %d rows", seed, m.Track, m.Track.Dy())
		}
		if min := b.cfg.MinTrack * b.cfg.MaxObject.X; m.Track.Dx() < min {
			t.Errorf("seed %d: track %v shorter than %d", seed, m.Track, min)
		}
		for x := m.Track.Min.X; x < m.Track.Max.X; x++ {
			if got := b.tiles.At(image.Pt(x, m.Track.Min.Y)); got != MoverTrack {
				t.Errorf("seed %d: track tile (%d,%d) = %v", seed, x, m.Track.Min.Y, got)
			}
		}
		if n := b.Tiles().Count(MoverTrack); n != m.Track.Dx() {
			t.Errorf("seed %d: %d track tiles, record covers %d", seed, n, m.Track.Dx())
		}
	}
}

func TestAddHorizontalMover_NoRoom(t *testing.T) {
	b := newBlueprint(8, 8, rng.New(1), DefaultConfig())
	for i := 0; i < 50; i++ {
		if b.addHorizontalMover() {
			t.Fatal("mover placed on a grid too small for its track")
		}
	}
	if b.MoverCount() != 0 || b.Tiles().Count(MoverTrack) != 0 {
		t.Error("failed placement left traces behind")
	}
}

func TestAddVerticalMover_ConvertsShaft(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		b := carved(RoomWidth, 2*RoomHeight, seed)
		ladders := b.Tiles().Count(Ladder)

		if !b.addVerticalMover() {
			t.Fatalf("seed %d: no lift placed over an open shaft", seed)
		}
		m := b.Movers()[0]
		if m.Kind != VerticalMover {
			t.Errorf("seed %d: kind = %v", seed, m.Kind)
		}
		if m.Track.Dx() != b.cfg.MaxObject.X || m.Track.Dy() < 1 {
			t.Errorf("seed %d: track %v has the wrong shape", seed, m.Track)
		}
		for y := m.Track.Min.Y; y < m.Track.Max.Y; y++ {
			for x := m.Track.Min.X; x < m.Track.Max.X; x++ {
				if got := b.tiles.At(image.Pt(x, y)); got != Empty && got != Wall {
					t.Errorf("seed %d: lift tile (%d,%d) = %v", seed, x, y, got)
				}
			}
		}
		if after := b.Tiles().Count(Ladder); after >= ladders {
			t.Errorf("seed %d: ladder tiles %d -> %d, want fewer", seed, ladders, after)
		}
	}
}

func TestAddVerticalMover_SticksIntoFloor(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		b := carved(RoomWidth, 2*RoomHeight, seed)
		if !b.addVerticalMover() {
			t.Fatalf("seed %d: no lift placed over an open shaft", seed)
		}

		m := b.Movers()[0]
		floor := m.Track.Max.Y - 1
		if floor != b.dim.Y-1 {
			t.Fatalf("seed %d: track %v ends above the floor row %d", seed, m.Track, b.dim.Y-1)
		}
		for x := m.Track.Min.X; x < m.Track.Max.X; x++ {
			if got := b.tiles.At(image.Pt(x, floor)); got != Wall {
				t.Errorf("seed %d: floor tile (%d,%d) = %v, want Wall", seed, x, floor, got)
			}
			if got := b.tiles.At(image.Pt(x, floor-1)); got != Empty {
				t.Errorf("seed %d: tile above floor (%d,%d) = %v, want Empty", seed, x, floor-1, got)
			}
		}
		if n := b.Tiles().Count(LiftTrack); n != 0 {
			t.Errorf("seed %d: %d LiftTrack tiles left after placement", seed, n)
		}
	}
}

func TestAddVerticalMover_DoorwayPastVisibleEdge(t *testing.T) {
	// The second room row starts at 16 but only rows 16..19 are visible,
	// so most of its doorways lie in the padding.
	visible := image.Rect(0, 0, RoomWidth, 20)
	for seed := int64(1); seed <= 50; seed++ {
		b := carved(visible.Dx(), visible.Dy(), seed)
		for i := 0; i < 10; i++ {
			b.addVerticalMover()
		}
		for _, m := range b.Movers() {
			if !m.Track.In(visible) {
				t.Errorf("seed %d: track %v leaves the visible grid", seed, m.Track)
			}
		}
	}
}

func TestAddVerticalMover_NoShaft(t *testing.T) {
	b := carved(RoomWidth, RoomHeight, 1)
	before := b.Tiles()
	for i := 0; i < 10; i++ {
		if b.addVerticalMover() {
			t.Fatal("lift placed in a closed room")
		}
	}
	if !b.Tiles().Equal(before) {
		t.Error("failed placement changed the tiles")
	}
}

func TestAddMovers_NoneWhenDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MoversPercent = 0
	b := newBlueprint(130, 64, rng.New(1), cfg)
	b.graph.computeMiddles(b.dice, cfg.MaxObject)
	b.implementRooms()

	target, placed := b.addMovers()
	if target != 0 || placed != 0 || b.MoverCount() != 0 {
		t.Errorf("target %d placed %d count %d, want all 0", target, placed, b.MoverCount())
	}
}

func TestAddMovers_PlacedNeverExceedsTarget(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		b := newBlueprint(130, 64, rng.New(seed), DefaultConfig())
		b.graph.fillRandom(b.dice, b.cfg.StrandPercent, b.cfg.StrandLength)
		b.graph.computeMiddles(b.dice, b.cfg.MaxObject)
		b.implementRooms()

		target, placed := b.addMovers()
		if placed > target || placed != b.MoverCount() {
			t.Errorf("seed %d: target %d placed %d count %d", seed, target, placed, b.MoverCount())
		}
	}
}

func TestMoverKindString(t *testing.T) {
	if HorizontalMover.String() != "horizontal" || VerticalMover.String() != "vertical" {
		t.Error("unexpected mover kind names")
	}
	if MoverKind(9).String() != "unknown" {
		t.Error("out of range kind should be unknown")
	}
}
