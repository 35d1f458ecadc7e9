package types

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Rain tolerance levels accepted by the precipitation scorer.
const (
	RainLow    = "low"
	RainMedium = "medium"
	RainHigh   = "high"
)

// Crowd preference levels accepted by the crowd scorer.
const (
	CrowdOffPeak  = "off_peak"
	CrowdShoulder = "shoulder"
	CrowdAny      = "any"
)

// Result limit bounds applied by Preferences.Limit.
const (
	DefaultNumResults = 8
	MinNumResults     = 1
	MaxNumResults     = 10
)

// Preferences captures one search request against the city catalog.
//
// TravelMonth is the only hard requirement. TempMin and TempMax are optional
// independently of each other; nil means unconstrained on that side. Unknown
// rain tolerance or crowd preference strings are never rejected here - the
// scorers degrade them to their neutral fallbacks (medium / any).
type Preferences struct {
	TravelMonth     int      `json:"travel_month" validate:"required,min=1,max=12"`
	TempMin         *float64 `json:"temp_min,omitempty"`
	TempMax         *float64 `json:"temp_max,omitempty"`
	RainTolerance   string   `json:"rain_tolerance,omitempty"`
	CrowdPreference string   `json:"crowd_preference,omitempty"`
	EnvironmentTags []string `json:"environment_tags,omitempty"`
	ExcludeRegions  []string `json:"exclude_regions,omitempty"`
	NumResults      int      `json:"num_results,omitempty" validate:"omitempty,min=1,max=10"`
}

// Validate validates the Preferences using the validator.
func (p *Preferences) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

// Normalize returns a copy with defaults filled in: medium rain tolerance,
// any crowd preference, and the result limit resolved via Limit.
func (p Preferences) Normalize() Preferences {
	if p.RainTolerance == "" {
		p.RainTolerance = RainMedium
	}
	if p.CrowdPreference == "" {
		p.CrowdPreference = CrowdAny
	}
	p.NumResults = p.Limit()
	return p
}

// Limit resolves the requested result count: zero means DefaultNumResults,
// anything else is clamped to [MinNumResults, MaxNumResults].
func (p Preferences) Limit() int {
	n := p.NumResults
	if n == 0 {
		n = DefaultNumResults
	}
	if n < MinNumResults {
		n = MinNumResults
	}
	if n > MaxNumResults {
		n = MaxNumResults
	}
	return n
}

// PreferencesFromArgs decodes loosely-typed tool-call arguments (as delivered
// by LLM function calling or MCP, with JSON numbers as float64) into a
// Preferences value. Unknown keys are ignored; type mismatches are errors.
func PreferencesFromArgs(args map[string]any) (Preferences, error) {
	var prefs Preferences

	raw, err := json.Marshal(args)
	if err != nil {
		return prefs, fmt.Errorf("failed to encode search arguments: %w", err)
	}
	if err := json.Unmarshal(raw, &prefs); err != nil {
		return prefs, fmt.Errorf("invalid search arguments: %w", err)
	}

	return prefs, nil
}
