package insight

import (
	"sort"
	"strings"

	"trendpulse/internal/domain/insight"
)

// competitorInsights are heuristic observations shown on the dashboard.
// They are not derived from competitor data; a real competitive feed
// would replace them.
var competitorInsights = []string{
	"Creators in your niche post 4-5 times per week on average",
	"Short-form video drives the majority of new-follower growth right now",
	"Carousel posts with a strong first slide outperform single images",
}

// GenerateTrendAnalysis derives the dashboard aggregate from a user's
// content and account snapshots. Each section is computed independently
// by a small aggregator over the same content collection.
func (e *Engine) GenerateTrendAnalysis(
	content []insight.ContentRecord,
	accounts []insight.SocialAccountSnapshot,
	platform string,
) insight.TrendAnalysisResult {
	return insight.TrendAnalysisResult{
		TopHashtags:            topHashtags(content, 5),
		EmergingTopics:         emergingTopics(3),
		OptimalPostTimes:       optimalPostTimes(content),
		ContentTypePerformance: contentTypePerformance(content),
		AudienceGrowthTrend:    audienceGrowthTrend(accounts),
		EngagementTrend:        engagementTrend(content),
		CompetitorInsights:     competitorInsights,
		SeasonalPatterns:       SeasonalPatterns(),
		ViralCandidates:        viralCandidates(content),
	}
}

// topHashtags returns the highest-engagement normalized hashtags.
func topHashtags(content []insight.ContentRecord, limit int) []string {
	engagement := make(map[string]int)
	var order []string

	for _, record := range content {
		for _, category := range record.Categories {
			tag := normalizeHashtag(category)
			if tag == "#" {
				continue
			}
			if _, ok := engagement[tag]; !ok {
				order = append(order, tag)
			}
			engagement[tag] += record.Engagement()
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return engagement[order[i]] > engagement[order[j]]
	})

	if len(order) > limit {
		order = order[:limit]
	}
	return order
}

// emergingTopics returns the fastest-growing entries of the static topic
// table.
func emergingTopics(limit int) []string {
	entries := make([]topicEntry, len(staticTopics))
	copy(entries, staticTopics)

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].growthRate > entries[j].growthRate
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}

	topics := make([]string, len(entries))
	for i, entry := range entries {
		topics[i] = entry.keyword
	}
	return topics
}

// optimalPostTimes returns the posting windows that hold content, best
// mean engagement first.
func optimalPostTimes(content []insight.ContentRecord) []string {
	stats := make([]slotStats, len(timeSlots))
	for _, record := range content {
		idx := slotIndex(record.PublishedAt.Hour())
		stats[idx].count++
		stats[idx].engagement += record.Engagement()
	}

	var indexes []int
	for i, s := range stats {
		if s.count > 0 {
			indexes = append(indexes, i)
		}
	}

	sort.SliceStable(indexes, func(a, b int) bool {
		i, j := stats[indexes[a]], stats[indexes[b]]
		return float64(i.engagement)/float64(i.count) > float64(j.engagement)/float64(j.count)
	})

	times := make([]string, len(indexes))
	for i, idx := range indexes {
		times[i] = timeSlots[idx].name
	}
	return times
}

// contentTypePerformance labels each matched content type rising,
// stable or declining relative to the user's overall mean engagement.
func contentTypePerformance(content []insight.ContentRecord) map[string]string {
	performance := make(map[string]string)
	if len(content) == 0 {
		return performance
	}

	var total int
	for _, record := range content {
		total += record.Engagement()
	}
	overallMean := float64(total) / float64(len(content))

	for _, contentType := range contentTypeCandidates {
		var count, engagement int
		for _, record := range content {
			if matchesContentType(record, contentType) {
				count++
				engagement += record.Engagement()
			}
		}
		if count == 0 {
			continue
		}

		mean := float64(engagement) / float64(count)
		switch {
		case overallMean == 0 || mean > overallMean*1.1:
			performance[contentType] = "rising"
		case mean < overallMean*0.9:
			performance[contentType] = "declining"
		default:
			performance[contentType] = "stable"
		}
	}

	return performance
}

// audienceGrowthTrend turns account snapshots into a follower series.
func audienceGrowthTrend(accounts []insight.SocialAccountSnapshot) []insight.GrowthPoint {
	points := make([]insight.GrowthPoint, 0, len(accounts))
	for _, account := range accounts {
		points = append(points, insight.GrowthPoint{
			Period: account.Platform,
			Value:  float64(account.Followers),
		})
	}
	return points
}

// engagementTrend buckets content by publication month and averages the
// engagement per bucket, oldest first.
func engagementTrend(content []insight.ContentRecord) []insight.GrowthPoint {
	type bucket struct {
		count      int
		engagement int
	}

	buckets := make(map[string]*bucket)
	var months []string

	for _, record := range content {
		month := record.PublishedAt.Format("2006-01")
		b, ok := buckets[month]
		if !ok {
			b = &bucket{}
			buckets[month] = b
			months = append(months, month)
		}
		b.count++
		b.engagement += record.Engagement()
	}

	sort.Strings(months)

	points := make([]insight.GrowthPoint, len(months))
	for i, month := range months {
		b := buckets[month]
		points[i] = insight.GrowthPoint{
			Period: month,
			Value:  float64(b.engagement) / float64(b.count),
		}
	}
	return points
}

// viralCandidates returns titles likely to break out: flagged top
// performers plus anything with at least double the average view count.
func viralCandidates(content []insight.ContentRecord) []string {
	if len(content) == 0 {
		return nil
	}

	var totalViews int
	for _, record := range content {
		totalViews += record.Views
	}
	avgViews := float64(totalViews) / float64(len(content))

	var candidates []string
	for _, record := range content {
		title := strings.TrimSpace(record.Title)
		if title == "" {
			continue
		}
		if record.TopPerformer || (avgViews > 0 && float64(record.Views) >= avgViews*2) {
			candidates = append(candidates, title)
		}
	}
	return candidates
}
