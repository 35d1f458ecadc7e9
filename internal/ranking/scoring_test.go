package ranking

import (
	"fmt"
	"testing"

	"github.com/jonathan/season-radar/internal/types"
	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 {
	return &v
}

func TestTemperatureScore_NoBoundsIsNeutral(t *testing.T) {
	// Absence of preference must not penalize or reward any city.
	for _, temp := range []float64{-20, 0, 15, 27.5, 40} {
		assert.Equal(t, 0.65, TemperatureScore(temp, nil, nil), "temp %v", temp)
	}
}

func TestTemperatureScore_MidpointIsMaximal(t *testing.T) {
	score := TemperatureScore(22, floatPtr(18), floatPtr(26))
	assert.Equal(t, 1.0, score)
}

func TestTemperatureScore_InRangeFloor(t *testing.T) {
	// At the range boundary closeness bottoms out at the 0.85 floor.
	assert.Equal(t, 0.85, TemperatureScore(26, floatPtr(18), floatPtr(26)))
	assert.Equal(t, 0.85, TemperatureScore(18, floatPtr(18), floatPtr(26)))

	// Partway toward the edge: closeness = 1 - 0.15*2/4
	assert.InDelta(t, 0.925, TemperatureScore(24, floatPtr(18), floatPtr(26)), 0.0001)
}

func TestTemperatureScore_NarrowRangeHalfRangeFloor(t *testing.T) {
	// halfRange is floored at 1, so a degenerate range cannot blow up the
	// closeness term: |20.5 - 20.25| / 1 = 0.25.
	score := TemperatureScore(20.5, floatPtr(20), floatPtr(20.5))
	assert.InDelta(t, 1.0-0.15*0.25, score, 0.0001)
}

func TestTemperatureScore_GaussianDecayOutside(t *testing.T) {
	// Range [18,26]: sigma = max(4, 3) = 4. One sigma beyond the upper
	// bound scores exp(-0.5) ≈ 0.6065.
	assert.InDelta(t, 0.6065, TemperatureScore(30, floatPtr(18), floatPtr(26)), 0.0001)

	// Equal gaps on either side score equally.
	assert.Equal(t,
		TemperatureScore(14, floatPtr(18), floatPtr(26)),
		TemperatureScore(30, floatPtr(18), floatPtr(26)))
}

func TestTemperatureScore_MonotonicNonIncreasing(t *testing.T) {
	lo, hi := floatPtr(18), floatPtr(26)
	mid := TemperatureScore(22, lo, hi)
	boundary := TemperatureScore(26, lo, hi)
	oneSigmaOut := TemperatureScore(30, lo, hi)
	farOut := TemperatureScore(38, lo, hi)

	assert.GreaterOrEqual(t, mid, boundary)
	assert.GreaterOrEqual(t, boundary, oneSigmaOut)
	assert.Greater(t, oneSigmaOut, farOut)
}

func TestTemperatureScore_SigmaFloor(t *testing.T) {
	// Range [20,22] has halfRange 1 but sigma is floored at 3, so a 3°C
	// overshoot still lands at exp(-0.5), not a cliff.
	assert.InDelta(t, 0.6065, TemperatureScore(25, floatPtr(20), floatPtr(22)), 0.0001)
}

func TestTemperatureScore_SingleBoundSynthesis(t *testing.T) {
	// Only a lower bound: the upper bound fills in at cityTemp+10, so a
	// warm-enough city is judged in-range against [20, cityTemp+10].
	score := TemperatureScore(28, floatPtr(20), nil)
	// mid = 29, halfRange = 9, closeness = 1 - 0.15*1/9
	assert.InDelta(t, 0.9833, score, 0.0001)

	// A too-cold city falls outside the synthesized range and decays:
	// range [20, 25], gap 5, sigma max(2.5, 3) = 3.
	score = TemperatureScore(15, floatPtr(20), nil)
	assert.InDelta(t, 0.2494, score, 0.0001)

	// Only an upper bound: lower bound fills in at cityTemp-10.
	score = TemperatureScore(5, nil, floatPtr(10))
	// range [-5, 10], mid 2.5, halfRange 7.5, closeness = 1 - 0.15*2.5/7.5
	assert.InDelta(t, 0.95, score, 0.0001)
}

func TestTemperatureScore_SwappedBoundsAreNormalized(t *testing.T) {
	assert.Equal(t,
		TemperatureScore(22, floatPtr(18), floatPtr(26)),
		TemperatureScore(22, floatPtr(26), floatPtr(18)))
}

func TestPrecipitationScore_DryMonthIsMaximal(t *testing.T) {
	for _, tolerance := range []string{types.RainLow, types.RainMedium, types.RainHigh} {
		assert.Equal(t, 1.0, PrecipitationScore(0, tolerance), "tolerance %s", tolerance)
	}
}

func TestPrecipitationScore_SaturationAt300mm(t *testing.T) {
	assert.Equal(t, 0.0, PrecipitationScore(300, types.RainMedium))
	assert.Equal(t, 0.0, PrecipitationScore(450, types.RainMedium))
	assert.Equal(t, 0.0, PrecipitationScore(300, types.RainLow))

	// High tolerance is compressed into [0.5, 1.0] and never bottoms out.
	assert.Equal(t, 0.5, PrecipitationScore(300, types.RainHigh))
	assert.Equal(t, 0.5, PrecipitationScore(450, types.RainHigh))
}

func TestPrecipitationScore_ToleranceCurves(t *testing.T) {
	// 150mm gives base 0.5.
	assert.Equal(t, 0.5, PrecipitationScore(150, types.RainMedium))
	// low: 0.5^0.6
	assert.InDelta(t, 0.6598, PrecipitationScore(150, types.RainLow), 0.0001)
	// high: 0.5 + 0.5*0.5
	assert.Equal(t, 0.75, PrecipitationScore(150, types.RainHigh))
}

func TestPrecipitationScore_UnknownToleranceActsAsMedium(t *testing.T) {
	assert.Equal(t, PrecipitationScore(60, types.RainMedium), PrecipitationScore(60, "torrential"))
	assert.Equal(t, PrecipitationScore(60, types.RainMedium), PrecipitationScore(60, ""))
}

func TestPrecipitationScore_MonotonicNonIncreasing(t *testing.T) {
	for _, tolerance := range []string{types.RainLow, types.RainMedium, types.RainHigh} {
		prev := PrecipitationScore(0, tolerance)
		for mm := 25.0; mm <= 400; mm += 25 {
			score := PrecipitationScore(mm, tolerance)
			assert.LessOrEqual(t, score, prev, "tolerance %s at %vmm", tolerance, mm)
			prev = score
		}
	}
}

func TestCrowdScore_ExhaustiveTable(t *testing.T) {
	// Month 7 is peak, month 5 shoulder, month 1 off.
	city := &types.City{PeakMonths: []int{7}, ShoulderMonths: []int{5}}

	tests := []struct {
		preference string
		month      int
		want       float64
	}{
		{types.CrowdOffPeak, 1, 1.0},
		{types.CrowdOffPeak, 5, 0.55},
		{types.CrowdOffPeak, 7, 0.05},
		{types.CrowdShoulder, 1, 0.7},
		{types.CrowdShoulder, 5, 1.0},
		{types.CrowdShoulder, 7, 0.25},
		{types.CrowdAny, 1, 0.85},
		{types.CrowdAny, 5, 1.0},
		{types.CrowdAny, 7, 0.75},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s_month%d", tt.preference, tt.month), func(t *testing.T) {
			assert.Equal(t, tt.want, CrowdScore(tt.month, city, tt.preference))
		})
	}
}

func TestCrowdScore_UnknownPreferenceFallsBackToAny(t *testing.T) {
	city := &types.City{PeakMonths: []int{7}, ShoulderMonths: []int{5}}

	assert.Equal(t, 0.85, CrowdScore(1, city, "quiet"))
	assert.Equal(t, 1.0, CrowdScore(5, city, ""))
	assert.Equal(t, 0.75, CrowdScore(7, city, "crowded"))
}

func TestTagAffinityScore_NeutralAnchors(t *testing.T) {
	// No stated preference is neutral, even against a tagged city.
	assert.Equal(t, 0.65, TagAffinityScore(nil, []string{"beach", "island"}))
	assert.Equal(t, 0.65, TagAffinityScore([]string{}, nil))

	// A stated preference against an untagged city scores the low catch-all.
	assert.Equal(t, 0.2, TagAffinityScore([]string{"beach"}, nil))
	assert.Equal(t, 0.2, TagAffinityScore([]string{"beach"}, []string{}))
}

func TestTagAffinityScore_Overlap(t *testing.T) {
	tests := []struct {
		name      string
		preferred []string
		cityTags  []string
		want      float64
	}{
		{"full exact overlap", []string{"beach", "island"}, []string{"beach", "island", "tropical"}, 1.0},
		{"half overlap", []string{"beach", "ski"}, []string{"beach", "tropical"}, 0.5},
		{"no overlap", []string{"ski"}, []string{"beach", "tropical"}, 0.0},
		{"substring preferred-in-city", []string{"coast"}, []string{"coastal"}, 1.0},
		{"substring city-in-preferred", []string{"coastal"}, []string{"coast"}, 1.0},
		{"case insensitive", []string{"Beach"}, []string{"BEACH"}, 1.0},
		{"one of three", []string{"beach", "ski", "desert"}, []string{"beach"}, 0.3333},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, TagAffinityScore(tt.preferred, tt.cityTags), 0.0001)
		})
	}
}

func TestTagAffinityScore_EachPreferredTagCountsOnce(t *testing.T) {
	// "beach" matches both city tags but may only count once, so the score
	// stays capped at 1.0.
	assert.Equal(t, 1.0, TagAffinityScore([]string{"beach"}, []string{"beach", "beachfront"}))
}

func TestWeightsSumToOne(t *testing.T) {
	assert.InDelta(t, 1.0, tempWeight+rainWeight+crowdWeight+tagWeight, 1e-9)
}
