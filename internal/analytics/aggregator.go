// Package analytics derives journal statistics from a user's trade list.
//
// Every function here is a pure computation over the slice it is given: the
// input is never mutated, nothing is read from a clock, a database or the
// request context, and empty input yields zero values and empty lists.
package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"tradejournal/internal/models"
)

// StartingEquity is the simulated account balance the drawdown curve starts from.
var StartingEquity = decimal.NewFromInt(10000)

const (
	heatmapWeeks = 4
	dayLayout    = "2006-01-02"
)

var weekdayLabels = []string{"Mon", "Tue", "Wed", "Thu", "Fri"}

// Aggregator computes analytics in a fixed time zone. The zero value uses UTC.
type Aggregator struct {
	Location *time.Location
}

func New(loc *time.Location) Aggregator {
	return Aggregator{Location: loc}
}

func (a Aggregator) loc() *time.Location {
	if a.Location == nil {
		return time.UTC
	}
	return a.Location
}

// Compute assembles the full snapshot. now anchors "today" and the heat-map weeks.
func (a Aggregator) Compute(trades []models.Trade, now time.Time) Snapshot {
	return Snapshot{
		Metrics:             a.HeadlineMetrics(trades, now),
		ProfitLoss:          a.ProfitLossSeries(trades),
		MonthlyPerformance:  a.MonthlyPerformance(trades),
		StrategyPerformance: StrategyBreakdown(trades),
		RiskReward:          RiskReward(trades),
		Drawdown:            a.DrawdownSeries(trades),
		SessionPerformance:  SessionBreakdown(trades),
		WeeklyHeatmap:       a.WeeklyHeatmap(trades, now),
		SymbolPerformance:   SymbolBreakdown(trades),
	}
}

func (a Aggregator) Performance(trades []models.Trade) PerformanceView {
	return PerformanceView{
		Strategies: StrategyBreakdown(trades),
		Sessions:   SessionBreakdown(trades),
		Symbols:    SymbolBreakdown(trades),
		Monthly:    a.MonthlyPerformance(trades),
	}
}

func (a Aggregator) Risk(trades []models.Trade) RiskView {
	return RiskView{
		RiskReward:   RiskReward(trades),
		Drawdown:     a.DrawdownSeries(trades),
		MaxDrawdown:  round(MaxDrawdown(trades), 1),
		RiskPerTrade: round(averageRisk(trades), 1),
	}
}

func Summarize(trades []models.Trade) Summary {
	return Summary{
		TotalTrades: len(trades),
		WinRate:     round(winRate(trades), 0),
		TotalPnL:    sumPnL(trades).InexactFloat64(),
		AvgRisk:     round(averageRisk(trades), 1),
	}
}

func (a Aggregator) day(t time.Time) string {
	return t.In(a.loc()).Format(dayLayout)
}

func ascending(trades []models.Trade) []models.Trade {
	out := make([]models.Trade, len(trades))
	copy(out, trades)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].EntryTime.Before(out[j].EntryTime)
	})
	return out
}

func descending(trades []models.Trade) []models.Trade {
	out := make([]models.Trade, len(trades))
	copy(out, trades)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].EntryTime.After(out[j].EntryTime)
	})
	return out
}

func sumPnL(trades []models.Trade) decimal.Decimal {
	total := decimal.Zero
	for _, t := range trades {
		total = total.Add(t.PnL)
	}
	return total
}

func countWins(trades []models.Trade) int {
	n := 0
	for _, t := range trades {
		if t.IsWin() {
			n++
		}
	}
	return n
}

// winRate is the unrounded share of winners in percent, 0 for no trades.
func winRate(trades []models.Trade) float64 {
	if len(trades) == 0 {
		return 0
	}
	return float64(countWins(trades)) / float64(len(trades)) * 100
}

func averageRisk(trades []models.Trade) float64 {
	if len(trades) == 0 {
		return 0
	}
	total := decimal.Zero
	for _, t := range trades {
		total = total.Add(t.RiskPercentage)
	}
	return total.Div(decimal.NewFromInt(int64(len(trades)))).InexactFloat64()
}

// round rounds half away from zero and maps non-finite input to 0.
func round(v float64, places int32) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	out := decimal.NewFromFloat(v).Round(places).InexactFloat64()
	if out == 0 {
		return 0
	}
	return out
}
