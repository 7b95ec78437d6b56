// Package models provides domain models for the trading journal.
package models

import "time"

// Direction represents the direction of a trade.
type Direction string

const (
	Buy  Direction = "Buy"
	Sell Direction = "Sell"
)

// ValidDirection reports whether d is a known trade direction.
func ValidDirection(d Direction) bool {
	return d == Buy || d == Sell
}

// Status classifies a closed trade by the sign of its profit.
type Status string

const (
	Win  Status = "Win"
	Loss Status = "Loss"
)

// StatusForProfit derives the trade status from profit.
// A flat trade (exactly zero pips) counts as a Loss.
func StatusForProfit(profit float64) Status {
	if profit > 0 {
		return Win
	}
	return Loss
}

// Timeframe is the chart granularity a trade was taken on.
type Timeframe string

const (
	M1  Timeframe = "M1"
	M5  Timeframe = "M5"
	M15 Timeframe = "M15"
	M30 Timeframe = "M30"
	H1  Timeframe = "H1"
	H4  Timeframe = "H4"
	D1  Timeframe = "D1"
	W1  Timeframe = "W1"
)

// ValidTimeframe reports whether tf is a known timeframe bucket.
// The empty timeframe is valid: it marks a trade without one.
func ValidTimeframe(tf Timeframe) bool {
	switch tf {
	case "", M1, M5, M15, M30, H1, H4, D1, W1:
		return true
	}
	return false
}

// Screenshot is an annotated chart image attached to a trade.
type Screenshot struct {
	Image   string
	Caption string
}

// Date and time layouts used by the journal. A trade stores its calendar
// date and local clock time separately; the two concatenate into a
// sortable timestamp.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Trade represents one closed position. Profit is measured in pips.
type Trade struct {
	ID         int
	Pair       string // e.g. "EUR/USD"
	Direction  Direction
	EntryPrice float64
	ExitPrice  float64
	LotSize    float64
	Profit     float64
	Date       string // DateLayout
	Time       string // TimeLayout
	Status     Status

	// Optional annotations. Zero values mean "not recorded"; a risk of
	// exactly 0% therefore falls outside every risk band.
	Risk        float64 // percent of account
	Reward      float64 // percent of account
	Strategy    string
	Notes       string
	StopLoss    float64
	TakeProfit  float64
	Timeframe   Timeframe
	Tags        []string
	Mood        string
	Screenshots []Screenshot
}

// Timestamp combines the date and time fields into a sortable instant.
// Trades with malformed fields sort to the zero time.
func (t Trade) Timestamp() time.Time {
	ts, err := time.ParseInLocation(DateLayout+"T"+TimeLayout, t.Date+"T"+t.Time, time.Local)
	if err != nil {
		return time.Time{}
	}
	return ts
}
