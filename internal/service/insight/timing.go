package insight

import (
	"fmt"
	"math"
	"time"

	"trendpulse/internal/domain/insight"
)

// timeSlot is one of the four fixed posting windows.
type timeSlot struct {
	name      string
	startHour int
	endHour   int
}

var timeSlots = []timeSlot{
	{name: "Morning (6:00-12:00)", startHour: 6, endHour: 12},
	{name: "Afternoon (12:00-18:00)", startHour: 12, endHour: 18},
	{name: "Evening (18:00-22:00)", startHour: 18, endHour: 22},
	{name: "Late Night (22:00-6:00)", startHour: 22, endHour: 6},
}

// slotStats accumulates per-slot performance.
type slotStats struct {
	count      int
	engagement int
	avgViews   float64
}

// analyzePostingTimes buckets content into the four posting windows and
// emits at most one insight for the window with the highest mean
// engagement, provided it holds at least three posts.
func (e *Engine) analyzePostingTimes(now time.Time, content []insight.ContentRecord) []insight.TrendInsight {
	stats := make([]slotStats, len(timeSlots))

	for _, record := range content {
		idx := slotIndex(record.PublishedAt.Hour())
		s := &stats[idx]
		s.count++
		s.engagement += record.Engagement()
		s.avgViews += (float64(record.Views) - s.avgViews) / float64(s.count)
	}

	best := -1
	bestMean := 0.0
	for i, s := range stats {
		if s.count == 0 {
			continue
		}
		mean := float64(s.engagement) / float64(s.count)
		if best == -1 || mean > bestMean {
			best = i
			bestMean = mean
		}
	}

	if best == -1 || stats[best].count < 3 {
		return nil
	}

	s := stats[best]
	slot := timeSlots[best]

	// Fixed 15% uplift assumption for posting inside the winning window.
	const growthRate = 15.0

	score := int(math.Min(100, math.Round(bestMean/100)))
	confidence := math.Min(0.85, float64(s.count)/10+0.4)

	return []insight.TrendInsight{newInsight(
		insight.TypePostingTime,
		slot.name,
		int(math.Round(s.avgViews)),
		growthRate,
		score,
		confidence,
		insight.TimeframeDaily,
		now.AddDate(0, 0, 1),
		fmt.Sprintf("Schedule posts during %s - your audience is most active then", slot.name),
		[]string{
			fmt.Sprintf("Queue tomorrow's post for the %s window", slot.name),
			"Compare engagement after two weeks of consistent timing",
		},
	)}
}

// slotIndex maps an hour of day to its posting window. Hours outside the
// three daytime windows fall into the late-night bucket.
func slotIndex(hour int) int {
	for i, slot := range timeSlots[:3] {
		if hour >= slot.startHour && hour < slot.endHour {
			return i
		}
	}
	return 3
}
