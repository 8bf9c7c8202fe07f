package analytics

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradejournal/internal/models"
)

// 2024-12-18 is a Wednesday; its week starts Monday 2024-12-16.
var heatmapNow = time.Date(2024, time.December, 18, 12, 0, 0, 0, time.UTC)

func TestWeeklyHeatmapLayout(t *testing.T) {
	hm := Aggregator{}.WeeklyHeatmap(nil, heatmapNow)
	assert.Equal(t, []string{"Nov 25", "Dec 02", "Dec 09", "Dec 16"}, hm.Weeks)
	assert.Equal(t, []string{"Mon", "Tue", "Wed", "Thu", "Fri"}, hm.Days)
	require.Len(t, hm.Values, 4)
}

func TestWeeklyHeatmapNormalized(t *testing.T) {
	trades := []models.Trade{
		trade("30", time.Date(2024, time.December, 16, 9, 0, 0, 0, time.UTC)),
		trade("20", time.Date(2024, time.December, 16, 14, 0, 0, 0, time.UTC)),
		trade("50", time.Date(2024, time.December, 10, 9, 0, 0, 0, time.UTC)),
		// Weekend and out-of-window trades count toward the total only.
		trade("100", time.Date(2024, time.December, 14, 9, 0, 0, 0, time.UTC)),
		trade("-200", time.Date(2024, time.October, 1, 9, 0, 0, 0, time.UTC)),
		trade("200", time.Date(2024, time.October, 2, 9, 0, 0, 0, time.UTC)),
	}
	hm := Aggregator{}.WeeklyHeatmap(trades, heatmapNow)

	assert.Equal(t, []float64{0.25, 0, 0, 0, 0}, hm.Values[3])
	assert.Equal(t, []float64{0, 0.25, 0, 0, 0}, hm.Values[2])
	assert.Equal(t, []float64{0, 0, 0, 0, 0}, hm.Values[1])
	for _, row := range hm.Values {
		for _, v := range row {
			assert.LessOrEqual(t, math.Abs(v), 1.0)
		}
	}
}

func TestWeeklyHeatmapUnclampedWhenTotalsOffset(t *testing.T) {
	trades := []models.Trade{
		trade("50", time.Date(2024, time.December, 16, 9, 0, 0, 0, time.UTC)),
		trade("-25", time.Date(2024, time.December, 10, 9, 0, 0, 0, time.UTC)),
	}
	hm := Aggregator{}.WeeklyHeatmap(trades, heatmapNow)
	assert.Equal(t, 2.0, hm.Values[3][0])
	assert.Equal(t, -1.0, hm.Values[2][1])
}

func TestWeeklyHeatmapZeroTotal(t *testing.T) {
	trades := []models.Trade{
		trade("40", time.Date(2024, time.December, 16, 9, 0, 0, 0, time.UTC)),
		trade("-40", time.Date(2024, time.December, 17, 9, 0, 0, 0, time.UTC)),
	}
	hm := Aggregator{}.WeeklyHeatmap(trades, heatmapNow)
	for _, row := range hm.Values {
		assert.Equal(t, []float64{0, 0, 0, 0, 0}, row)
	}
}

func TestWeeklyHeatmapSundayBelongsToPreviousWeek(t *testing.T) {
	sunday := time.Date(2024, time.December, 22, 20, 0, 0, 0, time.UTC)
	hm := Aggregator{}.WeeklyHeatmap(nil, sunday)
	assert.Equal(t, "Dec 16", hm.Weeks[3])
}
