package analytics

import (
	"math"
	"time"

	"tradejournal/internal/models"
)

// headline holds the six headline values for one set of trades, unrounded
// except where the metric itself is defined as rounded.
type headline struct {
	totalPnL    float64
	winRate     float64
	totalTrades float64
	avgRisk     float64
	winStreak   float64
	maxDrawdown float64
}

func measure(trades []models.Trade) headline {
	return headline{
		totalPnL:    sumPnL(trades).InexactFloat64(),
		winRate:     round(winRate(trades), 0),
		totalTrades: float64(len(trades)),
		avgRisk:     round(averageRisk(trades), 1),
		winStreak:   float64(WinStreak(trades)),
		maxDrawdown: round(MaxDrawdown(trades), 1),
	}
}

// HeadlineMetrics returns Total P&L, Win Rate, Total Trades, Risk per Trade,
// Win Streak and Max Drawdown, in that order. Each change compares the metric
// over today's trades with the metric over yesterday's.
func (a Aggregator) HeadlineMetrics(trades []models.Trade, now time.Time) []Metric {
	todayStart := startOfDay(now.In(a.loc()))
	yesterdayStart := todayStart.AddDate(0, 0, -1)

	var today, yesterday []models.Trade
	for _, t := range trades {
		switch {
		case !t.EntryTime.Before(todayStart):
			today = append(today, t)
		case !t.EntryTime.Before(yesterdayStart):
			yesterday = append(yesterday, t)
		}
	}

	all := measure(trades)
	td := measure(today)
	yd := measure(yesterday)

	pnlTrend := TrendUp
	if all.totalPnL < 0 {
		pnlTrend = TrendDown
	}

	return []Metric{
		{Title: TitleTotalPnL, Value: all.totalPnL, Change: DailyChange(td.totalPnL, yd.totalPnL), Trend: pnlTrend},
		{Title: TitleWinRate, Value: all.winRate, Change: DailyChange(td.winRate, yd.winRate), Trend: TrendNeutral},
		{Title: TitleTotalTrades, Value: all.totalTrades, Change: DailyChange(td.totalTrades, yd.totalTrades), Trend: TrendNeutral},
		{Title: TitleRiskPerTrade, Value: all.avgRisk, Change: DailyChange(td.avgRisk, yd.avgRisk), Trend: TrendNeutral},
		{Title: TitleWinStreak, Value: all.winStreak, Change: DailyChange(td.winStreak, yd.winStreak), Trend: TrendUp},
		{Title: TitleMaxDrawdown, Value: all.maxDrawdown, Change: DailyChange(td.maxDrawdown, yd.maxDrawdown), Trend: TrendDown},
	}
}

// DailyChange is the percent change from yesterday to today. A zero baseline
// yields +100, -100 or 0 depending on the sign of today.
func DailyChange(today, yesterday float64) float64 {
	if yesterday == 0 {
		switch {
		case today > 0:
			return 100
		case today < 0:
			return -100
		default:
			return 0
		}
	}
	return round((today-yesterday)/math.Abs(yesterday)*100, 1)
}

// WinStreak counts consecutive winners starting from the most recent entry.
func WinStreak(trades []models.Trade) int {
	streak := 0
	for _, t := range descending(trades) {
		if !t.IsWin() {
			break
		}
		streak++
	}
	return streak
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
