// Package rng holds the random source shared by one generation run.
package rng

import (
	"math/rand"
	"time"
)

// Source is a uniform integer generator. *rand.Rand satisfies it.
type Source interface {
	// Intn returns a uniform integer in [0, n). n must be positive.
	Intn(n int) int
}

// New returns a reproducible source for seed.
func New(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// NewFromEntropy seeds a source from the wall clock and returns the seed
// alongside it so the run can be reproduced.
func NewFromEntropy() (*rand.Rand, int64) {
	seed := time.Now().UnixNano()
	return New(seed), seed
}

// Dice draws the handful of distributions the generators need from a Source.
// Draws happen strictly in call order.
type Dice struct {
	src Source
}

// NewDice wraps src.
func NewDice(src Source) *Dice {
	return &Dice{src: src}
}

// Range returns a uniform integer in [lo, hi], both inclusive.
// If hi < lo it returns lo without drawing.
func (d *Dice) Range(lo, hi int) int {
	if hi < lo {
		return lo
	}
	return lo + d.src.Intn(hi-lo+1)
}

// Coin returns true with probability 1/2.
func (d *Dice) Coin() bool {
	return d.src.Intn(2) == 1
}

// Sign returns +1 or -1 with equal probability.
func (d *Dice) Sign() int {
	if d.Coin() {
		return 1
	}
	return -1
}

// OneIn returns true with probability 1/n.
func (d *Dice) OneIn(n int) bool {
	return d.Range(0, n-1) == 0
}
