package dice_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/rndtable/internal/game/dice"
)

// fixedSource returns the queued values in order, modulo n.
type fixedSource struct {
	vals []int
	i    int
}

func (f *fixedSource) Intn(n int) int {
	v := f.vals[f.i%len(f.vals)] % n
	f.i++
	return v
}

func TestRollResult_Total(t *testing.T) {
	r := dice.RollResult{Expression: "2d6+3", Dice: []int{4, 5}, Modifier: 3}
	assert.Equal(t, 12, r.Total())
}

func TestRollResult_String(t *testing.T) {
	r := dice.RollResult{Expression: "2d6+3", Dice: []int{4, 5}, Modifier: 3}
	assert.Equal(t, "2d6+3 → [4 5] +3 = 12", r.String())
}

func TestRollResult_String_PanicsOnEmptyExpression(t *testing.T) {
	r := dice.RollResult{Dice: []int{4}}
	assert.Panics(t, func() { _ = r.String() })
}

func TestRollResult_Total_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		rolled := rapid.SliceOf(rapid.IntRange(1, 20)).Draw(rt, "dice")
		modifier := rapid.IntRange(-100, 100).Draw(rt, "modifier")

		expected := modifier
		for _, d := range rolled {
			expected += d
		}
		r := dice.RollResult{Expression: "Nd20+M", Dice: rolled, Modifier: modifier}
		assert.Equal(rt, expected, r.Total())
		assert.True(rt, strings.Contains(r.String(), fmt.Sprintf("= %d", expected)))
	})
}

func TestRoll_UsesOneDrawPerDie(t *testing.T) {
	src := &fixedSource{vals: []int{0, 1, 2}}
	r := dice.Roll(dice.MustParse("3d3+1"), src)
	assert.Equal(t, []int{1, 2, 3}, r.Dice)
	assert.Equal(t, 7, r.Total())
	assert.Equal(t, 3, src.i)
}

func TestRoll_AgainstSequence_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		start := rapid.IntRange(0, 1023).Draw(rt, "start")
		sides := rapid.IntRange(2, 20).Draw(rt, "sides")
		expr := dice.MustParse(fmt.Sprintf("1d%d", sides))

		r := dice.Roll(expr, dice.NewSequence(start))
		require.Len(rt, r.Dice, 1)
		assert.Equal(rt, int(dice.At(start+1))%sides+1, r.Dice[0])
		assert.GreaterOrEqual(rt, r.Total(), expr.Min())
		assert.LessOrEqual(rt, r.Total(), expr.Max())
	})
}
