// Package ranking implements the deterministic scoring and ranking engine
// over the city catalog. All scoring is pure: identical inputs always
// produce identical output.
package ranking

import (
	"math"
	"strings"

	"github.com/jonathan/season-radar/internal/types"
)

// Weights for combining the four component scores. They must sum to 1.0 so
// the final score stays inside [0, 1].
const (
	tempWeight  = 0.40
	rainWeight  = 0.30
	crowdWeight = 0.20
	tagWeight   = 0.10
)

// Neutral anchors returned when a preference dimension is unstated.
const (
	neutralTempScore = 0.65
	neutralTagScore  = 0.65
	taglessCityScore = 0.2
)

// synthBandWidth (°C) fills in the missing bound when only one of
// temp_min / temp_max is given, relative to the city being scored.
const synthBandWidth = 10.0

func init() {
	sum := tempWeight + rainWeight + crowdWeight + tagWeight
	if math.Abs(sum-1.0) > 1e-9 {
		panic("ranking: component weights must sum to 1.0")
	}
}

// TemperatureScore scores how well a city's month temperature fits the
// requested band. With no bounds at all it returns the neutral anchor so
// indifference never penalizes a city. Inside the band the score tapers from
// 1.0 at the midpoint down to a 0.85 floor at the edges; outside it decays
// along a Gaussian on the distance to the nearest bound.
func TemperatureScore(cityTemp float64, tempMin, tempMax *float64) float64 {
	if tempMin == nil && tempMax == nil {
		return neutralTempScore
	}

	// Fill the missing bound relative to this city, so a one-sided
	// preference still yields an in/out-of-range judgment.
	lo, hi := cityTemp-synthBandWidth, cityTemp+synthBandWidth
	if tempMin != nil {
		lo = *tempMin
	}
	if tempMax != nil {
		hi = *tempMax
	}
	if lo > hi {
		lo, hi = hi, lo
	}

	halfRange := math.Max((hi-lo)/2, 1.0)

	if cityTemp >= lo && cityTemp <= hi {
		// Small bonus for being near the midpoint
		mid := (lo + hi) / 2
		closeness := 1.0 - 0.15*math.Abs(cityTemp-mid)/halfRange
		return round4(math.Max(0.85, closeness))
	}

	// Outside the range: penalize proportionally to how far outside
	gap := math.Max(lo-cityTemp, cityTemp-hi)
	sigma := math.Max((hi-lo)/2, 3.0)
	score := math.Exp(-0.5 * math.Pow(gap/sigma, 2))
	return round4(math.Max(0.0, score))
}

// PrecipitationScore scores a month's rainfall against the caller's rain
// tolerance. The linear base maps 0mm to 1.0 and 300mm+ to 0.0; low
// tolerance amplifies the dryness signal, high tolerance dampens it so
// rain-tolerant travellers barely care. Unrecognized tolerance values
// behave as medium.
func PrecipitationScore(precip float64, rainTolerance string) float64 {
	base := math.Max(0.0, 1.0-precip/300.0)

	switch rainTolerance {
	case types.RainLow:
		return round4(math.Pow(base, 0.6))
	case types.RainHigh:
		return round4(0.5 + base*0.5)
	default:
		return round4(base)
	}
}

// crowdTable maps crowd preference to the score for each season type.
var crowdTable = map[string]map[Season]float64{
	types.CrowdOffPeak:  {SeasonOff: 1.0, SeasonShoulder: 0.55, SeasonPeak: 0.05},
	types.CrowdShoulder: {SeasonOff: 0.7, SeasonShoulder: 1.0, SeasonPeak: 0.25},
	types.CrowdAny:      {SeasonOff: 0.85, SeasonShoulder: 1.0, SeasonPeak: 0.75},
}

// CrowdScore scores the month's season type against the caller's crowd
// preference using a fixed lookup table. Unknown preferences fall back to
// the "any" row.
func CrowdScore(month int, city *types.City, crowdPreference string) float64 {
	row, ok := crowdTable[crowdPreference]
	if !ok {
		row = crowdTable[types.CrowdAny]
	}
	return row[ClassifySeason(month, city)]
}

// TagAffinityScore scores the overlap between the caller's preferred
// environment tags and a city's tags. No stated preference returns the
// neutral anchor; a tagged preference against an untagged city returns a
// low catch-all. A preferred tag matches on case-insensitive equality or
// substring containment in either direction, and each preferred tag counts
// at most once.
func TagAffinityScore(preferredTags, cityTags []string) float64 {
	if len(preferredTags) == 0 {
		return neutralTagScore
	}
	if len(cityTags) == 0 {
		return taglessCityScore
	}

	cityLower := make([]string, 0, len(cityTags))
	for _, tag := range cityTags {
		cityLower = append(cityLower, strings.ToLower(tag))
	}

	matches := 0
	for _, preferred := range preferredTags {
		pt := strings.ToLower(preferred)
		for _, ct := range cityLower {
			if strings.Contains(ct, pt) || strings.Contains(pt, ct) {
				matches++
				break
			}
		}
	}

	return round4(math.Min(1.0, float64(matches)/float64(len(preferredTags))))
}

// round4 rounds to 4 decimal places, the precision all stored scores carry.
func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
