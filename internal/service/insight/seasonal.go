package insight

import (
	"time"

	"trendpulse/internal/domain/insight"
)

// seasonEntry is one row of the static seasonal pattern table.
type seasonEntry struct {
	keyword     string
	baseVolume  int
	multiplier  float64
	trendScore  int
	action      string
	suggestions []string
}

// staticSeasons maps a season name to its pattern. The multiplier scales
// the base volume; growth is derived from it so the volume relationship
// holds like every other insight.
var staticSeasons = map[string]seasonEntry{
	"spring": {
		keyword:     "spring cleaning",
		baseVolume:  28000,
		multiplier:  1.35,
		trendScore:  66,
		action:      "Tie refresh and renewal themes into your spring content",
		suggestions: []string{"Film a workspace or routine reset", "Launch a spring challenge with your audience"},
	},
	"summer": {
		keyword:     "summer activities",
		baseVolume:  41000,
		multiplier:  1.5,
		trendScore:  72,
		action:      "Lean into outdoor and travel content while interest peaks",
		suggestions: []string{"Shoot on-location content in natural light", "Create a summer essentials roundup"},
	},
	"fall": {
		keyword:     "back to school",
		baseVolume:  35000,
		multiplier:  1.4,
		trendScore:  69,
		action:      "Publish routine and productivity content for the fall reset",
		suggestions: []string{"Share your September routine overhaul", "Partner with study or productivity brands"},
	},
	"winter": {
		keyword:     "holiday content",
		baseVolume:  52000,
		multiplier:  1.65,
		trendScore:  80,
		action:      "Plan gift guides and holiday collaborations early",
		suggestions: []string{"Post a niche-specific gift guide", "Run a countdown series through December"},
	},
}

// StaticSeasonalSource serves the seasonal pattern for the current
// calendar month. Like the topic source it is a placeholder for a real
// data feed and produces exactly one insight per call.
type StaticSeasonalSource struct{}

// NewStaticSeasonalSource creates the static seasonal source.
func NewStaticSeasonalSource() *StaticSeasonalSource {
	return &StaticSeasonalSource{}
}

// Insights returns the single seasonal insight for now's month.
func (s *StaticSeasonalSource) Insights(now time.Time, content []insight.ContentRecord) []insight.TrendInsight {
	entry := staticSeasons[seasonForMonth(now.Month())]

	growthRate := round2((entry.multiplier - 1) * 100)

	return []insight.TrendInsight{newInsight(
		insight.TypeSeasonal,
		entry.keyword,
		entry.baseVolume,
		growthRate,
		entry.trendScore,
		0.7,
		insight.TimeframeMonthly,
		now.AddDate(0, 0, 45),
		entry.action,
		entry.suggestions,
	)}
}

// SeasonalPatterns exposes the season-to-multiplier table for dashboard
// aggregation.
func SeasonalPatterns() map[string]float64 {
	patterns := make(map[string]float64, len(staticSeasons))
	for season, entry := range staticSeasons {
		patterns[season] = entry.multiplier
	}
	return patterns
}

// seasonForMonth maps a calendar month to its season.
func seasonForMonth(month time.Month) string {
	switch month {
	case time.March, time.April, time.May:
		return "spring"
	case time.June, time.July, time.August:
		return "summer"
	case time.September, time.October, time.November:
		return "fall"
	default:
		return "winter"
	}
}
