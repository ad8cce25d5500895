package damage

import (
	"math"
	"slices"
)

// Distribution maps every reachable damage value to the number of starting
// cursors that produced it. Keys are pre-populated, so lookups of reachable
// values never miss.
type Distribution map[int]int

// PossibleValues returns every damage value a shot of pellets pellets can
// deal, ascending: PelletScale*pellets, PelletScale*pellets+PelletScale, ...,
// 3*PelletScale*pellets.
func PossibleValues(pellets int) ([]int, error) {
	if err := checkPellets(pellets); err != nil {
		return nil, err
	}
	lo := PelletScale * PelletDie.Min() * pellets
	hi := PelletScale * PelletDie.Max() * pellets
	values := make([]int, 0, (hi-lo)/PelletScale+1)
	for v := lo; v <= hi; v += PelletScale {
		values = append(values, v)
	}
	return values, nil
}

// Aggregate builds the Distribution of damages over possible and returns it
// together with the largest observed damage.
//
// Precondition: every element of damages is an element of possible.
// Postcondition: dist.Total() == len(damages); maxDamage == 0 when damages is empty.
func Aggregate(possible, damages []int) (dist Distribution, maxDamage int) {
	dist = make(Distribution, len(possible))
	for _, v := range possible {
		dist[v] = 0
	}
	for i, d := range damages {
		dist[d]++
		if i == 0 || d > maxDamage {
			maxDamage = d
		}
	}
	return dist, maxDamage
}

// Total returns the sum of all counts.
func (d Distribution) Total() int {
	total := 0
	for _, c := range d {
		total += c
	}
	return total
}

// Keys returns the damage values in ascending order.
func (d Distribution) Keys() []int {
	keys := make([]int, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Probability returns the share of trials that dealt damage v, in [0, 1].
func (d Distribution) Probability(v int) float64 {
	total := d.Total()
	if total == 0 {
		return 0
	}
	return float64(d[v]) / float64(total)
}

// MaxNonZero returns the largest damage value with a non-zero count, and
// false when every count is zero.
func (d Distribution) MaxNonZero() (int, bool) {
	keys := d.Keys()
	for i := len(keys) - 1; i >= 0; i-- {
		if d[keys[i]] > 0 {
			return keys[i], true
		}
	}
	return 0, false
}

// Mean returns the expected damage.
func (d Distribution) Mean() float64 {
	total := d.Total()
	if total == 0 {
		return 0
	}
	var sum float64
	for v, c := range d {
		sum += float64(v) * float64(c)
	}
	return sum / float64(total)
}

// StdDev returns the population standard deviation of damage.
func (d Distribution) StdDev() float64 {
	total := d.Total()
	if total == 0 {
		return 0
	}
	mean := d.Mean()
	var acc float64
	for v, c := range d {
		diff := float64(v) - mean
		acc += diff * diff * float64(c)
	}
	return math.Sqrt(acc / float64(total))
}
