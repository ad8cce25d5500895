package damage

import "github.com/cory-johannsen/rndtable/internal/game/dice"

// Enumerate runs ShotDamage once for every starting cursor in
// [0, dice.TableSize) and returns the damages in starting-cursor order.
//
// Postcondition: len(result) == dice.TableSize on success; result[c] is the
// damage of the shot whose sequence was reset to c.
func Enumerate(pellets, extraCalls int) ([]int, error) {
	if err := checkPellets(pellets); err != nil {
		return nil, err
	}
	if err := checkExtraCalls("extra calls", extraCalls); err != nil {
		return nil, err
	}

	out := make([]int, dice.TableSize)
	var seq dice.Sequence
	for start := range out {
		seq.Reset(start)
		out[start] = ShotDamage(&seq, pellets, extraCalls)
	}
	return out, nil
}
