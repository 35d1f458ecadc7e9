package ranking

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/season-radar/internal/types"
)

// ErrInvalidMonth reports a travel month outside the 1-12 calendar range.
var ErrInvalidMonth = errors.New("travel month out of range")

// RankCities scores every city in the catalog against the given preferences
// and returns the top candidates, best first.
//
// Cities matching an exclusion term are filtered out before scoring. The
// four component scores are combined with the fixed weight profile, the
// results are sorted descending with a stable sort (ties keep catalog
// order), and the list is truncated to the preferences' result limit.
// The input slice is never mutated.
func RankCities(cities []types.City, prefs types.Preferences) ([]types.ScoredCandidate, error) {
	month := prefs.TravelMonth
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: %d (want 1-12)", ErrInvalidMonth, month)
	}

	// Exclusion terms match case-insensitively against region and country.
	exclude := make([]string, 0, len(prefs.ExcludeRegions))
	for _, term := range prefs.ExcludeRegions {
		exclude = append(exclude, strings.ToLower(term))
	}

	results := make([]types.ScoredCandidate, 0, len(cities))
	for i := range cities {
		city := &cities[i]
		if isExcluded(city, exclude) {
			continue
		}

		cityTemp := city.TempFor(month)
		cityPrecip := city.PrecipFor(month)

		tempScore := TemperatureScore(cityTemp, prefs.TempMin, prefs.TempMax)
		rainScore := PrecipitationScore(cityPrecip, prefs.RainTolerance)
		crowdScore := CrowdScore(month, city, prefs.CrowdPreference)
		tagScore := TagAffinityScore(prefs.EnvironmentTags, city.Tags)

		final := round4(tempWeight*tempScore +
			rainWeight*rainScore +
			crowdWeight*crowdScore +
			tagWeight*tagScore)

		results = append(results, types.ScoredCandidate{
			City: *city,
			Scores: types.ComponentScores{
				Temp:  tempScore,
				Rain:  rainScore,
				Crowd: crowdScore,
				Tags:  tagScore,
				Final: final,
			},
			Month: types.MonthConditions{
				Temp:   cityTemp,
				Precip: cityPrecip,
				Season: ClassifySeason(month, city).Label(),
			},
		})
	}

	// Stable sort keeps catalog order for equal scores, so ties are
	// reproducible across runs.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Scores.Final > results[j].Scores.Final
	})

	limit := prefs.Limit()
	if limit > len(results) {
		limit = len(results)
	}
	return results[:limit], nil
}

// isExcluded reports whether any exclusion term (already lowercased) occurs
// as a substring of the city's region or country.
func isExcluded(city *types.City, excludeLower []string) bool {
	region := strings.ToLower(city.Region)
	country := strings.ToLower(city.Country)
	for _, term := range excludeLower {
		if strings.Contains(region, term) || strings.Contains(country, term) {
			return true
		}
	}
	return false
}
