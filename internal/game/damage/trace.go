package damage

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/rndtable/internal/game/dice"
)

// PelletRoll records how one pellet's damage was drawn.
type PelletRoll struct {
	// Index is the table position that was read, in [0, dice.TableSize).
	Index  int  `json:"index" yaml:"index"`
	Draw   byte `json:"draw" yaml:"draw"`
	Damage int  `json:"damage" yaml:"damage"`
}

// Trace is the step-by-step record of a single shot.
type Trace struct {
	Start      int          `json:"start" yaml:"start"`
	ExtraCalls int          `json:"extra_calls" yaml:"extra_calls"`
	Pellets    []PelletRoll `json:"pellets" yaml:"pellets"`
	Total      int          `json:"total" yaml:"total"`
}

// TraceShot replays the shot ShotDamage computes for a sequence reset to
// start, rolling each pellet through a dice.Roller that logs to logger.
//
// Precondition: logger non-nil.
// Postcondition: Total == ShotDamage(dice.NewSequence(start), pellets, extraCalls).
func TraceShot(logger *zap.Logger, start, pellets, extraCalls int) (Trace, error) {
	if err := checkPellets(pellets); err != nil {
		return Trace{}, err
	}
	if err := checkExtraCalls("extra calls", extraCalls); err != nil {
		return Trace{}, err
	}
	if start < 0 {
		return Trace{}, fmt.Errorf("%w: start cursor must be >= 0, got %d", ErrInvalidParameter, start)
	}

	seq := dice.NewSequence(start)
	roller := dice.NewLoggedRoller(seq, logger)
	tr := Trace{
		Start:      start,
		ExtraCalls: extraCalls,
		Pellets:    make([]PelletRoll, 0, pellets),
	}
	for i := 0; i < pellets; i++ {
		idx := (seq.Cursor() + 1) % dice.TableSize
		draw := seq.Peek()
		dmg := PelletScale * roller.Roll(PelletDie).Total()
		seq.Advance(extraCalls)

		tr.Pellets = append(tr.Pellets, PelletRoll{Index: idx, Draw: draw, Damage: dmg})
		tr.Total += dmg
	}
	return tr, nil
}
