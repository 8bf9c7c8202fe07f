package analytics

const (
	TitleTotalPnL     = "Total P&L"
	TitleWinRate      = "Win Rate"
	TitleTotalTrades  = "Total Trades"
	TitleRiskPerTrade = "Risk per Trade"
	TitleWinStreak    = "Win Streak"
	TitleMaxDrawdown  = "Max Drawdown"

	TrendUp      = "up"
	TrendDown    = "down"
	TrendNeutral = "neutral"

	// UnassignedStrategy groups trades logged without a strategy name.
	UnassignedStrategy = "Unassigned"
)

// Metric is one headline figure with its day-over-day change in percent.
type Metric struct {
	Title  string  `json:"title"`
	Value  float64 `json:"value"`
	Change float64 `json:"change"`
	Trend  string  `json:"trend"`
}

type Point struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

type MonthlyPerformance struct {
	Month string  `json:"month"`
	Value float64 `json:"value"`
}

type StrategyPerformance struct {
	Strategy string  `json:"strategy"`
	Trades   int     `json:"trades"`
	WinRate  float64 `json:"win_rate"`
	PnL      float64 `json:"pnl"`
	AvgPL    float64 `json:"avg_pl"`
	Sharpe   float64 `json:"sharpe"`
}

type SessionPerformance struct {
	Session string  `json:"session"`
	PnL     float64 `json:"pnl"`
}

type SymbolPerformance struct {
	Symbol  string  `json:"symbol"`
	Trades  int     `json:"trades"`
	WinRate float64 `json:"win_rate"`
	PnL     float64 `json:"pnl"`
	MaxLoss float64 `json:"max_loss"`
}

type RiskRewardPoint struct {
	Risk   float64 `json:"risk"`
	Reward float64 `json:"reward"`
}

// Heatmap rows follow Weeks (oldest first), columns follow Days.
type Heatmap struct {
	Weeks  []string    `json:"weeks"`
	Days   []string    `json:"days"`
	Values [][]float64 `json:"values"`
}

// Snapshot is the full analytics payload for one user at one instant.
type Snapshot struct {
	Metrics             []Metric              `json:"metrics"`
	ProfitLoss          []Point               `json:"profit_loss"`
	MonthlyPerformance  []MonthlyPerformance  `json:"monthly_performance"`
	StrategyPerformance []StrategyPerformance `json:"strategy_performance"`
	RiskReward          []RiskRewardPoint     `json:"risk_reward"`
	Drawdown            []Point               `json:"drawdown"`
	SessionPerformance  []SessionPerformance  `json:"session_performance"`
	WeeklyHeatmap       Heatmap               `json:"weekly_heatmap"`
	SymbolPerformance   []SymbolPerformance   `json:"symbol_performance"`
}

type PerformanceView struct {
	Strategies []StrategyPerformance `json:"strategies"`
	Sessions   []SessionPerformance  `json:"sessions"`
	Symbols    []SymbolPerformance   `json:"symbols"`
	Monthly    []MonthlyPerformance  `json:"monthly"`
}

type RiskView struct {
	RiskReward   []RiskRewardPoint `json:"risk_reward"`
	Drawdown     []Point           `json:"drawdown"`
	MaxDrawdown  float64           `json:"max_drawdown"`
	RiskPerTrade float64           `json:"risk_per_trade"`
}

// Summary is the compact block returned next to trade listings.
type Summary struct {
	TotalTrades int     `json:"total_trades"`
	WinRate     float64 `json:"win_rate"`
	TotalPnL    float64 `json:"total_pnl"`
	AvgRisk     float64 `json:"avg_risk"`
}
