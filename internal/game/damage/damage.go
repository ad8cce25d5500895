// Package damage computes exact damage distributions for multi-pellet
// weapons driven by the table sequence in package dice.
//
// Every result is an enumeration over all dice.TableSize starting cursor
// positions; nothing is sampled.
package damage

import (
	"errors"
	"fmt"

	"github.com/cory-johannsen/rndtable/internal/game/dice"
)

// ErrInvalidParameter is returned for any out-of-range input.
var ErrInvalidParameter = errors.New("invalid parameter")

// PelletScale multiplies each pellet's die roll.
const PelletScale = 5

// PelletDie is the die rolled for each pellet: a pellet deals
// PelletScale * (draw%3 + 1) damage.
var PelletDie = dice.MustParse("1d3")

// ShotDamage returns the total damage of one shot of pellets pellets read
// from seq. After every pellet, including the last, the cursor is advanced
// by extraCalls to model draws consumed elsewhere.
//
// Precondition: pellets >= 1; extraCalls >= 0; seq non-nil.
// Postcondition: result is a multiple of PelletScale in
// [PelletScale*pellets, 3*PelletScale*pellets]; seq has moved
// pellets*(1+extraCalls) positions.
func ShotDamage(seq *dice.Sequence, pellets, extraCalls int) int {
	total := 0
	for i := 0; i < pellets; i++ {
		total += PelletScale * dice.Roll(PelletDie, seq).Total()
		seq.Advance(extraCalls)
	}
	return total
}

func checkPellets(pellets int) error {
	if pellets < 1 {
		return fmt.Errorf("%w: pellet count must be >= 1, got %d", ErrInvalidParameter, pellets)
	}
	return nil
}

func checkExtraCalls(name string, n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %s must be >= 0, got %d", ErrInvalidParameter, name, n)
	}
	return nil
}
