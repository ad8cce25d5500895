package dice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/rndtable/internal/game/dice"
)

func TestParse_Valid(t *testing.T) {
	cases := []struct {
		in                     string
		count, sides, modifier int
	}{
		{"d3", 1, 3, 0},
		{"1d3", 1, 3, 0},
		{"2d6+3", 2, 6, 3},
		{"4D8-2", 4, 8, -2},
		{" 3d10 ", 3, 10, 0},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			e, err := dice.Parse(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.in, e.Raw)
			assert.Equal(t, tc.count, e.Count)
			assert.Equal(t, tc.sides, e.Sides)
			assert.Equal(t, tc.modifier, e.Modifier)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{"", "6", "0d6", "-1d6", "xd6", "2d1", "2d", "2dx", "2d6+", "2d6+x", "1d-3"} {
		t.Run(in, func(t *testing.T) {
			_, err := dice.Parse(in)
			assert.Error(t, err)
		})
	}
}

func TestExpression_MinMax(t *testing.T) {
	e := dice.MustParse("1d3")
	assert.Equal(t, 1, e.Min())
	assert.Equal(t, 3, e.Max())

	e = dice.MustParse("2d6-1")
	assert.Equal(t, 1, e.Min())
	assert.Equal(t, 11, e.Max())
}

func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { dice.MustParse("nope") })
}
