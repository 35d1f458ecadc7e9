package ranking

import "github.com/jonathan/season-radar/internal/types"

// Season classifies how busy a destination is during a given month.
type Season int

const (
	SeasonOff Season = iota
	SeasonShoulder
	SeasonPeak
)

// Label returns the human-readable form used in formatted reports.
func (s Season) Label() string {
	switch s {
	case SeasonPeak:
		return "peak season"
	case SeasonShoulder:
		return "shoulder season"
	default:
		return "off season"
	}
}

// ClassifySeason resolves the season for a calendar month (1-12). Peak
// membership is checked before shoulder, so a month listed in both counts
// as peak.
func ClassifySeason(month int, city *types.City) Season {
	for _, m := range city.PeakMonths {
		if m == month {
			return SeasonPeak
		}
	}
	for _, m := range city.ShoulderMonths {
		if m == month {
			return SeasonShoulder
		}
	}
	return SeasonOff
}
