package generator

import (
	"image"
	"testing"

	"arrocha/pkg/engine/rng"
)

func TestExtraWalls_StampsOnlyOpenFloor(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		b := newBlueprint(100, 60, rng.New(seed), DefaultConfig())
		stamped := b.extraWalls()
		if got := b.Tiles().Count(Wall); got != stamped {
			t.Errorf("seed %d: %d wall tiles, reported %d", seed, got, stamped)
		}
	}
}

func TestExtraWalls_NoneWhenDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WallsPercent = 0
	b := newBlueprint(100, 60, rng.New(1), cfg)
	if n := b.extraWalls(); n != 0 {
		t.Errorf("stamped %d tiles, want 0", n)
	}
}

func TestHorizontalWall_NotOkStampsNothing(t *testing.T) {
	b := newBlueprint(40, 40, rng.New(1), DefaultConfig())
	if n := b.horizontalWall(image.Pt(20, 20), 1, false); n != 0 {
		t.Errorf("stamped %d tiles", n)
	}
	if n := b.verticalWall(image.Pt(20, 20), -1, false); n != 0 {
		t.Errorf("stamped %d tiles", n)
	}
	if b.Tiles().Count(Empty) != 40*40 {
		t.Error("grid changed")
	}
}

func TestVerticalWall_StaysInColumn(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		b := newBlueprint(40, 40, rng.New(seed), DefaultConfig())
		n := b.verticalWall(image.Pt(20, 20), 1, true)
		if got := b.Tiles().Count(Wall); got != n {
			t.Errorf("seed %d: %d walls, reported %d", seed, got, n)
		}
		b.Tiles().ForEachTile(func(p image.Point, tile Tile) {
			if tile == Wall && (p.X != 20 || p.Y < 20) {
				t.Errorf("seed %d: wall at %v outside the downward column", seed, p)
			}
		})
	}
}

func TestHorizontalWall_StopsBeforeObstacle(t *testing.T) {
	b := newBlueprint(40, 40, rng.New(1), DefaultConfig())
	b.tiles.Set(image.Pt(24, 20), Wall)

	// The window ahead is MaxObject wide, so nothing within two tiles of
	// the obstacle column is stamped.
	cfg := b.cfg
	cfg.MeanWallLength = 1 << 20
	cfg.UpDownChance = 1 << 20
	cfg.LadderChance = 1 << 20
	b.cfg = cfg

	n := b.horizontalWall(image.Pt(18, 20), 1, true)
	if n != 4 {
		t.Errorf("stamped %d tiles, want 4", n)
	}
	for x := 18; x < 22; x++ {
		if got := b.tiles.At(image.Pt(x, 20)); got != Wall {
			t.Errorf("(%d,20) = %v, want Wall", x, got)
		}
	}
	if got := b.tiles.At(image.Pt(22, 20)); got != Empty {
		t.Errorf("(22,20) = %v, want Empty", got)
	}
}

func TestLadder_RunsToEdges(t *testing.T) {
	b := newBlueprint(20, 20, rng.New(1), DefaultConfig())
	b.ladder(image.Pt(10, 10))
	for y := 0; y < 20; y++ {
		if got := b.tiles.At(image.Pt(10, y)); got != Ladder {
			t.Errorf("(10,%d) = %v, want Ladder", y, got)
		}
	}
	if n := b.Tiles().Count(Ladder); n != 20 {
		t.Errorf("%d ladder tiles, want 20", n)
	}
}

func TestLadder_CapsAboveSideWall(t *testing.T) {
	b := newBlueprint(20, 20, rng.New(1), DefaultConfig())
	b.tiles.Set(image.Pt(9, 5), Wall)
	b.ladder(image.Pt(10, 10))

	for y := 0; y < 20; y++ {
		want := Ladder
		if y < 5-b.cfg.MaxObject.Y {
			want = Empty
		}
		if got := b.tiles.At(image.Pt(10, y)); got != want {
			t.Errorf("(10,%d) = %v, want %v", y, got, want)
		}
	}
}
