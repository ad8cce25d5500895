package damage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/rndtable/internal/game/damage"
	"github.com/cory-johannsen/rndtable/internal/game/dice"
)

// referenceShot recomputes a shot directly from the table, without dice.Roll.
func referenceShot(start, pellets, extraCalls int) int {
	cursor := start
	total := 0
	for i := 0; i < pellets; i++ {
		cursor++
		total += 5 * (int(dice.At(cursor))%3 + 1)
		cursor += extraCalls
	}
	return total
}

func TestShotDamage_SinglePelletFromZero(t *testing.T) {
	// At(1) == 8 -> 8%3 == 2 -> 15
	assert.Equal(t, 15, damage.ShotDamage(dice.NewSequence(0), 1, 0))
}

func TestShotDamage_AdvancesAfterEveryPellet(t *testing.T) {
	seq := dice.NewSequence(0)
	damage.ShotDamage(seq, 3, 4)
	assert.Equal(t, 3*(1+4), seq.Cursor())
}

func TestShotDamage_ExtraCallsSkipEntries(t *testing.T) {
	// reads At(1) == 8 and At(3) == 220: 15 + 10
	assert.Equal(t, 25, damage.ShotDamage(dice.NewSequence(0), 2, 1))
}

func TestShotDamage_Properties(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		start := rapid.IntRange(0, dice.TableSize-1).Draw(rt, "start")
		pellets := rapid.IntRange(1, 40).Draw(rt, "pellets")
		extra := rapid.IntRange(0, 600).Draw(rt, "extra")

		got := damage.ShotDamage(dice.NewSequence(start), pellets, extra)
		assert.Equal(rt, referenceShot(start, pellets, extra), got)
		assert.Zero(rt, got%damage.PelletScale)
		assert.GreaterOrEqual(rt, got, 5*pellets)
		assert.LessOrEqual(rt, got, 15*pellets)
	})
}
