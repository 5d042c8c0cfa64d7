package prediction

// marketContext is a static per-platform table of assumed current best
// practices. It is not derived from live data; it seeds both the LLM
// prompt and the local fallback generator.
type marketContext struct {
	TrendingFormats   []string
	PopularCategories []string
	PeakTimes         []string
	Hashtags          []string
	AlgorithmNotes    string
}

var marketContexts = map[string]marketContext{
	"instagram": {
		TrendingFormats:   []string{"reels", "carousels", "stories"},
		PopularCategories: []string{"lifestyle", "beauty", "fitness", "food"},
		PeakTimes:         []string{"11:00", "14:00", "19:00"},
		Hashtags:          []string{"#reels", "#explore", "#instagood"},
		AlgorithmNotes:    "Watch time on reels and early saves weigh heaviest",
	},
	"tiktok": {
		TrendingFormats:   []string{"short video", "duets", "stitches"},
		PopularCategories: []string{"comedy", "dance", "diy", "education"},
		PeakTimes:         []string{"12:00", "17:00", "21:00"},
		Hashtags:          []string{"#fyp", "#foryou", "#viral"},
		AlgorithmNotes:    "Completion rate and rewatches drive for-you distribution",
	},
	"youtube": {
		TrendingFormats:   []string{"shorts", "long-form tutorials", "vlogs"},
		PopularCategories: []string{"tech", "gaming", "education", "music"},
		PeakTimes:         []string{"15:00", "18:00", "20:00"},
		Hashtags:          []string{"#shorts", "#tutorial", "#howto"},
		AlgorithmNotes:    "Click-through rate and session watch time decide reach",
	},
}

// marketContextFor returns the platform's market context, defaulting to
// instagram's table for unknown platforms.
func marketContextFor(platform string) marketContext {
	if mc, ok := marketContexts[platform]; ok {
		return mc
	}
	return marketContexts["instagram"]
}
