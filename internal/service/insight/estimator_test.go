package insight

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWeeklyHashEstimatorRange(t *testing.T) {
	estimator := WeeklyHashEstimator{
		Now: func() time.Time { return time.Date(2025, time.July, 10, 0, 0, 0, 0, time.UTC) },
	}

	for i := 0; i < 200; i++ {
		growth := estimator.BaseGrowth(fmt.Sprintf("keyword-%d", i))
		require.GreaterOrEqual(t, growth, -5.0)
		require.Less(t, growth, 15.0)
	}
}

func TestWeeklyHashEstimatorStableWithinWeek(t *testing.T) {
	monday := WeeklyHashEstimator{
		Now: func() time.Time { return time.Date(2025, time.July, 7, 9, 0, 0, 0, time.UTC) },
	}
	friday := WeeklyHashEstimator{
		Now: func() time.Time { return time.Date(2025, time.July, 11, 22, 0, 0, 0, time.UTC) },
	}

	require.Equal(t, monday.BaseGrowth("beauty"), friday.BaseGrowth("beauty"))
}

func TestWeeklyHashEstimatorVariesAcrossWeeks(t *testing.T) {
	var values []float64
	for week := 0; week < 8; week++ {
		estimator := WeeklyHashEstimator{
			Now: func() time.Time {
				return time.Date(2025, time.July, 7+week*7, 0, 0, 0, 0, time.UTC)
			},
		}
		values = append(values, estimator.BaseGrowth("beauty"))
	}

	distinct := make(map[float64]struct{})
	for _, v := range values {
		distinct[v] = struct{}{}
	}
	require.Greater(t, len(distinct), 1, "growth should change across weeks")
}
