package models

import "time"

// RiskDistribution buckets trades by the percentage of account risked.
// Each field is a percentage of the full subset, so trades without a
// recorded risk leave the three bands summing to less than 100.
type RiskDistribution struct {
	Low    float64 // risk <= 1%
	Medium float64 // 1% < risk <= 2%
	High   float64 // risk > 2%
}

// TimeframeStats holds per-timeframe performance figures.
type TimeframeStats struct {
	WinRate      float64
	ProfitFactor float64
}

// RiskMetrics is a derived snapshot of a trade subset. It carries no
// identity and is recomputed wholesale whenever its input changes.
type RiskMetrics struct {
	WinRate             float64 // percent
	ProfitFactor        float64
	Expectancy          float64 // pips per trade
	AverageRiskReward   float64
	AverageRiskPerTrade float64 // percent
	MaxDrawdown         float64 // pips, over chronological replay
	SharpeRatio         float64
	ConsecutiveWins     int
	ConsecutiveLosses   int
	BestTrade           float64
	WorstTrade          float64
	AverageWin          float64
	AverageLoss         float64 // magnitude, positive
	RiskDistribution    RiskDistribution
	TimeframePerformance map[Timeframe]TimeframeStats
}

// PairStatistics summarizes every trade taken on a single pair.
type PairStatistics struct {
	Pair                    string
	TotalTrades             int
	WinningTrades           int
	LosingTrades            int
	WinRate                 float64
	TotalProfit             float64
	AveragePips             float64
	BuyTrades               int
	SellTrades              int
	BuyWinRate              float64
	SellWinRate             float64
	BestTrade               float64
	WorstTrade              float64
	AverageHoldingTime      float64 // hours
	MostProfitableTimeframe Timeframe
	MostCommonStrategy      string
}

// ColorScheme is the persistent badge styling a pair keeps across
// re-rankings of the dashboard shortlist.
type ColorScheme struct {
	Name string // palette name, e.g. "indigo"
	Code string // ANSI escape used by the terminal renderer
}

// Dashboard badge palette.
var (
	ColorIndigo  = ColorScheme{Name: "indigo", Code: "\033[34m"}
	ColorEmerald = ColorScheme{Name: "emerald", Code: "\033[32m"}
	ColorAmber   = ColorScheme{Name: "amber", Code: "\033[33m"}
	ColorPurple  = ColorScheme{Name: "purple", Code: "\033[35m"}
)

// DefaultColorScheme is assigned to pairs entering the ranking for the
// first time.
var DefaultColorScheme = ColorIndigo

// PairPerformance is the display projection of a top-ranked pair.
type PairPerformance struct {
	Pair    string
	Code    string // first letter of each side, "EUR/USD" -> "EU"
	Trades  int
	Profit  float64
	WinRate float64
	Color   ColorScheme
}

// ChartData is a daily profit series over a day window, oldest first.
type ChartData struct {
	Dates      []string  // formatted labels, e.g. "May 15"
	Daily      []float64 // pips per day
	Cumulative []float64 // running sum of Daily
}

// DashboardStats is the headline account summary. Change fields compare
// the current window against the previous window of equal length.
type DashboardStats struct {
	Balance       float64
	Profit        float64 // gross profit, pips
	Loss          float64 // gross loss magnitude, pips
	WinRate       float64
	BalanceChange float64
	ProfitChange  float64 // percent vs previous window
	LossChange    float64
	WinRateChange float64
}

// Notification is one entry in the journal's activity feed.
type Notification struct {
	ID      int
	Read    bool
	Message string
	Time    time.Time
}
