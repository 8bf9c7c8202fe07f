package analytics

import (
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradejournal/internal/models"
)

func withStrategy(tr models.Trade, name string) models.Trade {
	tr.Strategy = name
	return tr
}

func withSymbol(tr models.Trade, symbol, session string) models.Trade {
	tr.Symbol = symbol
	tr.Session = session
	return tr
}

func TestStrategyBreakdownZeroTotal(t *testing.T) {
	trades := []models.Trade{
		withStrategy(trade("10", day(2024, time.April, 1)), "fade"),
		withStrategy(trade("-10", day(2024, time.April, 2)), "fade"),
	}
	rows := StrategyBreakdown(trades)
	require.Len(t, rows, 1)
	assert.Equal(t, StrategyPerformance{Strategy: "fade", Trades: 2, WinRate: 50, PnL: 0, AvgPL: 0, Sharpe: 0}, rows[0])
	assert.False(t, math.IsNaN(rows[0].Sharpe))
}

func TestStrategyBreakdownSharpe(t *testing.T) {
	trades := []models.Trade{
		withStrategy(trade("30", day(2024, time.April, 1)), "trend"),
		withStrategy(trade("10", day(2024, time.April, 2)), "trend"),
		withStrategy(trade("5", day(2024, time.April, 3)), ""),
		withStrategy(trade("-15", day(2024, time.April, 4)), "breakout"),
	}
	rows := StrategyBreakdown(trades)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{UnassignedStrategy, "breakout", "trend"}, []string{rows[0].Strategy, rows[1].Strategy, rows[2].Strategy})

	trend := rows[2]
	assert.Equal(t, 2, trend.Trades)
	assert.Equal(t, 100.0, trend.WinRate)
	assert.Equal(t, 40.0, trend.PnL)
	assert.Equal(t, 20.0, trend.AvgPL)
	// returns 0.75 and 0.25: mean 0.5, std 0.25.
	assert.Equal(t, 31.75, trend.Sharpe)

	// A single trade has no variability.
	assert.Equal(t, 0.0, rows[0].Sharpe)
	assert.Equal(t, 0.0, rows[1].WinRate)
}

func TestSharpeRatio(t *testing.T) {
	assert.Equal(t, 0.0, SharpeRatio(nil))
	assert.Equal(t, 0.0, SharpeRatio([]float64{0.5, 0.5}))
	assert.Equal(t, 0.0, SharpeRatio([]float64{1, -1}))
	assert.Equal(t, round(math.Sqrt(252), 2), SharpeRatio([]float64{2, 0}))
}

func TestMonthlyPerformanceSumsToTotal(t *testing.T) {
	trades := []models.Trade{
		trade("120.50", day(2024, time.February, 20)),
		trade("-20.25", day(2024, time.January, 3)),
		trade("44", day(2024, time.February, 1)),
		trade("-8", day(2023, time.December, 31)),
	}
	rows := Aggregator{}.MonthlyPerformance(trades)
	assert.Equal(t, []MonthlyPerformance{
		{Month: "Dec 2023", Value: -8},
		{Month: "Jan 2024", Value: -20.25},
		{Month: "Feb 2024", Value: 164.5},
	}, rows)

	sum := decimal.Zero
	for _, r := range rows {
		sum = sum.Add(decimal.NewFromFloat(r.Value))
	}
	assert.True(t, sum.Equal(sumPnL(trades)), "monthly sum %s != total %s", sum, sumPnL(trades))
}

func TestSessionBreakdown(t *testing.T) {
	trades := []models.Trade{
		withSymbol(trade("10", day(2024, time.May, 1)), "EURUSD", "NY"),
		withSymbol(trade("-4", day(2024, time.May, 2)), "EURUSD", "London"),
		withSymbol(trade("6", day(2024, time.May, 3)), "GBPUSD", "NY"),
		withSymbol(trade("1.5", day(2024, time.May, 4)), "GBPUSD", "Asian"),
	}
	assert.Equal(t, []SessionPerformance{
		{Session: "Asian", PnL: 1.5},
		{Session: "London", PnL: -4},
		{Session: "NY", PnL: 16},
	}, SessionBreakdown(trades))
}

func TestSymbolBreakdownMaxLoss(t *testing.T) {
	trades := []models.Trade{
		withSymbol(trade("-30", day(2024, time.May, 1)), "XAUUSD", "NY"),
		withSymbol(trade("-50", day(2024, time.May, 2)), "XAUUSD", "NY"),
		withSymbol(trade("100", day(2024, time.May, 3)), "XAUUSD", "NY"),
		withSymbol(trade("12", day(2024, time.May, 4)), "EURUSD", "NY"),
		withSymbol(trade("8", day(2024, time.May, 5)), "EURUSD", "NY"),
	}
	assert.Equal(t, []SymbolPerformance{
		{Symbol: "EURUSD", Trades: 2, WinRate: 100, PnL: 20, MaxLoss: 0},
		{Symbol: "XAUUSD", Trades: 3, WinRate: 33.3, PnL: 20, MaxLoss: 50},
	}, SymbolBreakdown(trades))
}
