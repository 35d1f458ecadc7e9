// Package types provides type definitions for structured data used throughout the season-radar system.
package types

// City represents one destination in the catalog with its climate normals and
// seasonality metadata. Month arrays are positional: index 0 is January.
type City struct {
	Name           string    `json:"name"`
	Country        string    `json:"country"`
	Region         string    `json:"region"`
	MonthlyTemp    []float64 `json:"monthly_temp"`
	MonthlyPrecip  []float64 `json:"monthly_precip"`
	PeakMonths     []int     `json:"peak_months,omitempty"`
	ShoulderMonths []int     `json:"shoulder_months,omitempty"`
	Tags           []string  `json:"tags,omitempty"`
}

// TempFor returns the average temperature (°C) for a calendar month (1-12).
// The catalog loader guarantees 12 entries; month must already be validated.
func (c *City) TempFor(month int) float64 {
	return c.MonthlyTemp[month-1]
}

// PrecipFor returns the average precipitation (mm) for a calendar month (1-12).
func (c *City) PrecipFor(month int) float64 {
	return c.MonthlyPrecip[month-1]
}
