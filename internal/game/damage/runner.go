package damage

import "fmt"

// Result summarizes one extra-calls value of a range run.
type Result struct {
	ExtraCalls         int          `json:"extra_calls" yaml:"extra_calls"`
	MaxDamage          int          `json:"max_damage" yaml:"max_damage"`
	DamageDistribution Distribution `json:"damage_distribution" yaml:"damage_distribution"`
}

// RangeResult is the output of CalculateForRange.
type RangeResult struct {
	Pellets              int      `json:"pellets" yaml:"pellets"`
	Results              []Result `json:"results" yaml:"results"`
	PossibleDamageValues []int    `json:"possible_damage_values" yaml:"possible_damage_values"`
	// TotalShots counts every enumerated trial: TableSize per extra-calls value.
	TotalShots int `json:"total_shots" yaml:"total_shots"`
}

// CalculateForRange enumerates every starting cursor for each extra-calls
// value in [from, to] and aggregates one Result per value, ordered by
// extra calls.
//
// Precondition: pellets >= 1; 0 <= from <= to.
// Postcondition: Returns ErrInvalidParameter (wrapped) and no result on bad
// input; otherwise len(Results) == to-from+1 and
// TotalShots == dice.TableSize*(to-from+1).
func CalculateForRange(pellets, from, to int) (RangeResult, error) {
	if err := checkRange(pellets, from, to); err != nil {
		return RangeResult{}, err
	}

	possible, err := PossibleValues(pellets)
	if err != nil {
		return RangeResult{}, err
	}

	out := RangeResult{
		Pellets:              pellets,
		Results:              make([]Result, 0, to-from+1),
		PossibleDamageValues: possible,
	}
	for extra := from; extra <= to; extra++ {
		damages, err := Enumerate(pellets, extra)
		if err != nil {
			return RangeResult{}, err
		}
		dist, maxDamage := Aggregate(possible, damages)
		out.TotalShots += len(damages)
		out.Results = append(out.Results, Result{
			ExtraCalls:         extra,
			MaxDamage:          maxDamage,
			DamageDistribution: dist,
		})
	}
	return out, nil
}

func checkRange(pellets, from, to int) error {
	if err := checkPellets(pellets); err != nil {
		return err
	}
	if err := checkExtraCalls("extra calls lower bound", from); err != nil {
		return err
	}
	if err := checkExtraCalls("extra calls upper bound", to); err != nil {
		return err
	}
	if from > to {
		return fmt.Errorf("%w: extra calls range [%d, %d] is empty", ErrInvalidParameter, from, to)
	}
	return nil
}
