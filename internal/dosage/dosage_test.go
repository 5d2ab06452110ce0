package dosage

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasic_MatchesFormulaForPositiveInputs(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 200; trial++ {
		d := rng.Float64()*1000 + 0.01
		h := rng.Float64()*1000 + 0.01
		q := rng.Float64()*20 + 0.01

		got, ok := Basic(d, h, q)
		require.True(t, ok)
		assert.InDelta(t, d*q/h, got, 1e-9, "d=%v h=%v q=%v", d, h, q)
	}
}

func TestBasic_NonPositiveInputWithholdsResult(t *testing.T) {
	cases := [][3]float64{
		{0, 250, 1},
		{750, 0, 1},
		{750, 250, 0},
		{-5, 250, 1},
		{750, -1, 1},
		{math.NaN(), 250, 1},
		{math.Inf(1), 250, 1},
	}
	for _, c := range cases {
		_, ok := Basic(c[0], c[1], c[2])
		assert.False(t, ok, "inputs %v", c)
	}
}

func TestBasic_TabletExample(t *testing.T) {
	got, ok := Basic(750, 250, 1)
	require.True(t, ok)
	assert.Equal(t, 3.0, got)
	assert.Equal(t, "3.000 tablet(s)", FormatAmount(got, "tablet(s)"))
}

func TestWeightBased_Kilograms(t *testing.T) {
	got, ok := WeightBased(65, Kilograms, 4, 500, 4)
	require.True(t, ok)
	assert.InDelta(t, 2.08, got, 1e-9)
	assert.Equal(t, "2.080 mL", FormatAmount(got, "mL"))
}

func TestWeightBased_PoundsConvertedAt2Point2(t *testing.T) {
	got, ok := WeightBased(143, Pounds, 4, 500, 4)
	require.True(t, ok)
	assert.InDelta(t, (143/2.2)*4/500*4, got, 1e-9)
	assert.InDelta(t, 2.08, got, 1e-9)
}

func TestWeightBased_RejectsBadInput(t *testing.T) {
	_, ok := WeightBased(0, Kilograms, 4, 500, 4)
	assert.False(t, ok)
	_, ok = WeightBased(65, Kilograms, 4, 500, -4)
	assert.False(t, ok)
	_, ok = WeightBased(65, WeightUnit("stone"), 4, 500, 4)
	assert.False(t, ok)
}

func TestDripRate_Example(t *testing.T) {
	got, ok := DripRate(1000, 480, 15)
	require.True(t, ok)
	assert.Equal(t, 31.25, got)
	assert.Equal(t, 31, RoundDrops(got))
	assert.Equal(t, "31 gtts/min", FormatDripRate(got))
}

func TestDripRate_HalfRoundsUp(t *testing.T) {
	// 61 mL at 15 gtts/mL over 30 min = 30.5 gtts/min
	got, ok := DripRate(61, 30, 15)
	require.True(t, ok)
	assert.Equal(t, 30.5, got)
	assert.Equal(t, 31, RoundDrops(got))
	assert.Equal(t, 32, RoundDrops(31.5))
	assert.Equal(t, 31, RoundDrops(31.49))
}

func TestDripRate_OnlyKnownDropFactors(t *testing.T) {
	for _, df := range []int{10, 15, 20, 60} {
		_, ok := DripRate(1000, 480, df)
		assert.True(t, ok, "drop factor %d", df)
	}
	for _, df := range []int{0, 12, 30, -15} {
		_, ok := DripRate(1000, 480, df)
		assert.False(t, ok, "drop factor %d", df)
	}
}

func TestWeightBasedIV_Example(t *testing.T) {
	got, ok := WeightBasedIV(5, 63, 250, 400)
	require.True(t, ok)
	assert.InDelta(t, 11.8125, got, 1e-9)
	assert.Equal(t, 11.8, RoundTo(got, 1))
	assert.Equal(t, "11.8 mL/hr", FormatPumpRate(got))
}

func TestWeightBasedIV_RejectsNonPositive(t *testing.T) {
	_, ok := WeightBasedIV(5, 63, 0, 400)
	assert.False(t, ok)
	_, ok = WeightBasedIV(0, 63, 250, 400)
	assert.False(t, ok)
}

func TestParsePositive(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"750", 750, true},
		{" 2.5 ", 2.5, true},
		{"", 0, false},
		{"abc", 0, false},
		{"0", 0, false},
		{"-3", -3, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
	}
	for _, tc := range cases {
		got, ok := ParsePositive(tc.in)
		assert.Equal(t, tc.ok, ok, "input %q", tc.in)
		if tc.ok {
			assert.Equal(t, tc.want, got)
		}
	}
}

func TestParseWeightUnit(t *testing.T) {
	u, ok := ParseWeightUnit("LBS")
	require.True(t, ok)
	assert.Equal(t, Pounds, u)

	u, ok = ParseWeightUnit("kg")
	require.True(t, ok)
	assert.Equal(t, Kilograms, u)

	_, ok = ParseWeightUnit("g")
	assert.False(t, ok)
}

func TestParseQuantityUnit(t *testing.T) {
	for in, want := range map[string]string{
		"tablet(s)": "tablet(s)",
		"Tablets":   "tablet(s)",
		"ml":        "mL",
		" capsule ": "capsule(s)",
	} {
		u, ok := ParseQuantityUnit(in)
		require.True(t, ok, in)
		assert.Equal(t, want, u)
	}

	for _, bad := range []string{"", "gallons", "drops", "s"} {
		_, ok := ParseQuantityUnit(bad)
		assert.False(t, ok, bad)
	}
}

func TestCalculators_WithholdOverflowingResults(t *testing.T) {
	huge, ok := ParsePositive("1e308")
	require.True(t, ok)

	cases := []struct {
		name string
		calc func() (float64, bool)
	}{
		{"basic overflow", func() (float64, bool) { return Basic(1e308, 1e-300, 1) }},
		{"basic underflow", func() (float64, bool) { return Basic(1e-300, 1e300, 1e-300) }},
		{"weight-based overflow", func() (float64, bool) { return WeightBased(1e300, Kilograms, 1e300, 1, 1) }},
		{"drip overflow", func() (float64, bool) { return DripRate(huge, 1, 60) }},
		{"drip too large to count", func() (float64, bool) { return DripRate(1e15, 1, 10) }},
		{"iv overflow", func() (float64, bool) { return WeightBasedIV(1e300, 1e300, 1, 1) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, ok := tc.calc()
			assert.False(t, ok)
			assert.Zero(t, v)
		})
	}
}
