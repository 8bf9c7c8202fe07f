package analytics

import (
	"math"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"tradejournal/internal/models"
)

// sharpeAnnualization scales per-trade ratios by the trading days in a year.
var sharpeAnnualization = math.Sqrt(252)

type group struct {
	key    string
	trades []models.Trade
}

// groupBy buckets trades by key and returns the buckets sorted by key.
func groupBy(trades []models.Trade, key func(models.Trade) string) []group {
	index := map[string]int{}
	var groups []group
	for _, t := range trades {
		k := key(t)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, group{key: k})
		}
		groups[i].trades = append(groups[i].trades, t)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].key < groups[j].key })
	return groups
}

// MonthlyPerformance sums P&L per calendar month of entry, oldest month first.
func (a Aggregator) MonthlyPerformance(trades []models.Trade) []MonthlyPerformance {
	groups := groupBy(trades, func(t models.Trade) string {
		return t.EntryTime.In(a.loc()).Format("2006-01")
	})
	out := make([]MonthlyPerformance, 0, len(groups))
	for _, g := range groups {
		label := g.trades[0].EntryTime.In(a.loc()).Format("Jan 2006")
		out = append(out, MonthlyPerformance{Month: label, Value: sumPnL(g.trades).InexactFloat64()})
	}
	return out
}

func StrategyBreakdown(trades []models.Trade) []StrategyPerformance {
	groups := groupBy(trades, func(t models.Trade) string {
		if name := strings.TrimSpace(t.Strategy); name != "" {
			return name
		}
		return UnassignedStrategy
	})
	out := make([]StrategyPerformance, 0, len(groups))
	for _, g := range groups {
		total := sumPnL(g.trades)
		avg := 0.0
		if n := len(g.trades); n > 0 {
			avg = total.Div(decimal.NewFromInt(int64(n))).InexactFloat64()
		}
		out = append(out, StrategyPerformance{
			Strategy: g.key,
			Trades:   len(g.trades),
			WinRate:  round(winRate(g.trades), 1),
			PnL:      total.InexactFloat64(),
			AvgPL:    avg,
			Sharpe:   SharpeRatio(normalizedReturns(g.trades, total)),
		})
	}
	return out
}

// normalizedReturns scales each P&L by the group's absolute total. A zero
// total maps every return to 0.
func normalizedReturns(trades []models.Trade, total decimal.Decimal) []float64 {
	out := make([]float64, len(trades))
	if total.IsZero() {
		return out
	}
	denom := total.Abs()
	for i, t := range trades {
		out[i] = t.PnL.Div(denom).InexactFloat64()
	}
	return out
}

// SharpeRatio is mean over population standard deviation, annualized by
// sqrt(252) and rounded to 2 decimals. Zero deviation yields 0.
func SharpeRatio(returns []float64) float64 {
	if len(returns) == 0 {
		return 0
	}
	mean := 0.0
	for _, r := range returns {
		mean += r
	}
	mean /= float64(len(returns))
	variance := 0.0
	for _, r := range returns {
		variance += (r - mean) * (r - mean)
	}
	variance /= float64(len(returns))
	std := math.Sqrt(variance)
	if std == 0 {
		return 0
	}
	return round(mean/std*sharpeAnnualization, 2)
}

func SessionBreakdown(trades []models.Trade) []SessionPerformance {
	groups := groupBy(trades, func(t models.Trade) string { return t.Session })
	out := make([]SessionPerformance, 0, len(groups))
	for _, g := range groups {
		out = append(out, SessionPerformance{Session: g.key, PnL: sumPnL(g.trades).InexactFloat64()})
	}
	return out
}

func SymbolBreakdown(trades []models.Trade) []SymbolPerformance {
	groups := groupBy(trades, func(t models.Trade) string { return t.Symbol })
	out := make([]SymbolPerformance, 0, len(groups))
	for _, g := range groups {
		worst := decimal.Zero
		for _, t := range g.trades {
			if t.PnL.LessThan(worst) {
				worst = t.PnL
			}
		}
		out = append(out, SymbolPerformance{
			Symbol:  g.key,
			Trades:  len(g.trades),
			WinRate: round(winRate(g.trades), 1),
			PnL:     sumPnL(g.trades).InexactFloat64(),
			MaxLoss: worst.Abs().InexactFloat64(),
		})
	}
	return out
}
