package rng

import "testing"

// sequence replays fixed values, reduced modulo n.
type sequence struct {
	vals []int
	i    int
}

func (s *sequence) Intn(n int) int {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v % n
}

func TestNew_SameSeedSameSequence(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 100; i++ {
		if x, y := a.Intn(1000), b.Intn(1000); x != y {
			t.Fatalf("draw %d: %d != %d", i, x, y)
		}
	}
}

func TestDiceRange_StaysInBounds(t *testing.T) {
	d := NewDice(New(7))
	for i := 0; i < 1000; i++ {
		v := d.Range(3, 12)
		if v < 3 || v > 12 {
			t.Fatalf("Range(3, 12) = %d", v)
		}
	}
}

func TestDiceRange_EmptyRangeDoesNotDraw(t *testing.T) {
	s := &sequence{vals: []int{5}}
	d := NewDice(s)
	if got := d.Range(0, -1); got != 0 {
		t.Errorf("Range(0, -1) = %d, want 0", got)
	}
	if got := d.Range(4, 4); got != 4 {
		t.Errorf("Range(4, 4) = %d, want 4", got)
	}
	if s.i != 1 {
		t.Errorf("draws = %d, want 1 (only the non-empty range draws)", s.i)
	}
}

func TestDiceOneIn(t *testing.T) {
	s := &sequence{vals: []int{0, 3}}
	d := NewDice(s)
	if !d.OneIn(4) {
		t.Error("OneIn(4) with draw 0 = false, want true")
	}
	if d.OneIn(4) {
		t.Error("OneIn(4) with draw 3 = true, want false")
	}
}

func TestDiceSign(t *testing.T) {
	d := NewDice(&sequence{vals: []int{1, 0}})
	if got := d.Sign(); got != 1 {
		t.Errorf("Sign() = %d, want 1", got)
	}
	if got := d.Sign(); got != -1 {
		t.Errorf("Sign() = %d, want -1", got)
	}
}
