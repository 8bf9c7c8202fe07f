package analytics

import (
	"github.com/shopspring/decimal"

	"tradejournal/internal/models"
)

var hundred = decimal.NewFromInt(100)

// ProfitLossSeries emits one point per trade in entry order. Values are the
// trade's own P&L, not a running total.
func (a Aggregator) ProfitLossSeries(trades []models.Trade) []Point {
	out := make([]Point, 0, len(trades))
	for _, t := range ascending(trades) {
		out = append(out, Point{Date: a.day(t.EntryTime), Value: t.PnL.InexactFloat64()})
	}
	return out
}

// DrawdownSeries replays the trades against StartingEquity and emits the
// negated percentage drop from the running peak after each trade.
func (a Aggregator) DrawdownSeries(trades []models.Trade) []Point {
	sorted := ascending(trades)
	out := make([]Point, 0, len(sorted))
	walkEquity(sorted, func(t models.Trade, drawdownPct float64) {
		out = append(out, Point{Date: a.day(t.EntryTime), Value: round(-drawdownPct, 2)})
	})
	return out
}

// MaxDrawdown is the deepest drawdown percentage of the replayed equity curve.
func MaxDrawdown(trades []models.Trade) float64 {
	maxDD := 0.0
	walkEquity(ascending(trades), func(_ models.Trade, drawdownPct float64) {
		if drawdownPct > maxDD {
			maxDD = drawdownPct
		}
	})
	return maxDD
}

// walkEquity expects trades in ascending entry order. The peak is updated
// before the drawdown is measured, so the reported drawdown is never negative.
func walkEquity(trades []models.Trade, visit func(t models.Trade, drawdownPct float64)) {
	equity := StartingEquity
	peak := StartingEquity
	for _, t := range trades {
		equity = equity.Add(t.PnL)
		if equity.GreaterThan(peak) {
			peak = equity
		}
		dd := 0.0
		if peak.IsPositive() {
			dd = peak.Sub(equity).Div(peak).Mul(hundred).InexactFloat64()
		}
		visit(t, dd)
	}
}

// RiskReward pairs each trade's risk percentage with its return on position
// size. Losing and flat trades report a reward of 0.
func RiskReward(trades []models.Trade) []RiskRewardPoint {
	out := make([]RiskRewardPoint, 0, len(trades))
	for _, t := range ascending(trades) {
		reward := 0.0
		if t.PnL.IsPositive() && !t.PositionSize.IsZero() {
			reward = t.PnL.Div(t.PositionSize).Mul(hundred).Abs().InexactFloat64()
		}
		out = append(out, RiskRewardPoint{Risk: t.RiskPercentage.InexactFloat64(), Reward: reward})
	}
	return out
}
