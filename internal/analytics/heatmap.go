package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"tradejournal/internal/models"
)

// WeeklyHeatmap lays out the last four Monday-start weeks (the current one
// included) against Mon-Fri. Each cell is that day's P&L divided by the
// absolute P&L of all trades. Cells are not clamped: when gains and losses
// offset elsewhere a single day can exceed 1 in magnitude.
func (a Aggregator) WeeklyHeatmap(trades []models.Trade, now time.Time) Heatmap {
	daily := map[string]decimal.Decimal{}
	for _, t := range trades {
		k := a.day(t.EntryTime)
		daily[k] = daily[k].Add(t.PnL)
	}
	total := sumPnL(trades).Abs()

	today := startOfDay(now.In(a.loc()))
	monday := today.AddDate(0, 0, -((int(today.Weekday()) + 6) % 7))

	weeks := make([]string, heatmapWeeks)
	values := make([][]float64, heatmapWeeks)
	for i := 0; i < heatmapWeeks; i++ {
		weekStart := monday.AddDate(0, 0, -7*i)
		row := make([]float64, len(weekdayLabels))
		for j := range weekdayLabels {
			sum, ok := daily[weekStart.AddDate(0, 0, j).Format(dayLayout)]
			if ok && !total.IsZero() {
				row[j] = sum.Div(total).InexactFloat64()
			}
		}
		// Newest week computed first, emitted last.
		slot := heatmapWeeks - 1 - i
		weeks[slot] = weekStart.Format("Jan 02")
		values[slot] = row
	}

	days := make([]string, len(weekdayLabels))
	copy(days, weekdayLabels)
	return Heatmap{Weeks: weeks, Days: days, Values: values}
}
