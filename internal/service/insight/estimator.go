package insight

import (
	"encoding/binary"
	"hash/fnv"
	"time"
)

// WeeklyHashEstimator derives a hashtag's base growth rate from a hash of
// the keyword and the current ISO week. The value is stable for a given
// tag within a week, varies across tags and weeks, and stays in [-5, 15),
// the same range the scoring formula was tuned against. It replaces the
// non-reproducible randomness the scoring previously leaned on; a real
// historical-growth calculation can be swapped in through the
// GrowthEstimator interface without touching the analyzer.
type WeeklyHashEstimator struct {
	// Now overrides the clock, used by tests. Zero value means time.Now.
	Now func() time.Time
}

// BaseGrowth returns the base growth percentage for a keyword.
func (e WeeklyHashEstimator) BaseGrowth(keyword string) float64 {
	now := time.Now()
	if e.Now != nil {
		now = e.Now()
	}

	year, week := now.ISOWeek()

	h := fnv.New64a()
	h.Write([]byte(keyword))

	var buf [8]byte
	binary.LittleEndian.PutUint32(buf[0:4], uint32(year))
	binary.LittleEndian.PutUint32(buf[4:8], uint32(week))
	h.Write(buf[:])

	fraction := float64(h.Sum64()%10000) / 10000

	return -5 + fraction*20
}
