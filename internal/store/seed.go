package store

import (
	_ "embed"
	"strings"
	"time"

	"github.com/gocarina/gocsv"

	"fxjournal/internal/errors"
	"fxjournal/internal/models"
)

//go:embed seed.csv
var seedCSV []byte

// seedRow mirrors one line of the bundled sample dataset. Profit is
// carried explicitly because the sample includes JPY pairs, whose pip
// convention differs from the fixed multiplier used for new trades.
type seedRow struct {
	ID         int     `csv:"id"`
	Pair       string  `csv:"pair"`
	Direction  string  `csv:"direction"`
	EntryPrice float64 `csv:"entry_price"`
	ExitPrice  float64 `csv:"exit_price"`
	LotSize    float64 `csv:"lot_size"`
	Profit     float64 `csv:"profit"`
	DaysAgo    int     `csv:"days_ago"`
	Time       string  `csv:"time"`
	Risk       float64 `csv:"risk"`
	Reward     float64 `csv:"reward"`
	Strategy   string  `csv:"strategy"`
	Notes      string  `csv:"notes"`
	Timeframe  string  `csv:"timeframe"`
	StopLoss   float64 `csv:"stop_loss"`
	TakeProfit float64 `csv:"take_profit"`
	Tags       string  `csv:"tags"` // pipe-separated
	Mood       string  `csv:"mood"`
}

// NewSeeded returns a store primed with the sample dataset. Sample
// dates are anchored to now, newest first, so the default lookback
// windows have something to show.
func NewSeeded(now time.Time) (*TradeStore, error) {
	var rows []seedRow
	if err := gocsv.UnmarshalBytes(seedCSV, &rows); err != nil {
		return nil, errors.Wrap(err, "decoding sample dataset")
	}

	trades := make([]models.Trade, 0, len(rows))
	for i, r := range rows {
		dir := models.Direction(r.Direction)
		if !models.ValidDirection(dir) {
			return nil, errors.NewSeedError(i+1, errors.NewValidationError("direction", r.Direction, "unknown direction"))
		}
		tf := models.Timeframe(r.Timeframe)
		if !models.ValidTimeframe(tf) {
			return nil, errors.NewSeedError(i+1, errors.NewValidationError("timeframe", r.Timeframe, "unknown timeframe"))
		}
		var tags []string
		if r.Tags != "" {
			tags = strings.Split(r.Tags, "|")
		}

		trades = append(trades, models.Trade{
			ID:         r.ID,
			Pair:       r.Pair,
			Direction:  dir,
			EntryPrice: r.EntryPrice,
			ExitPrice:  r.ExitPrice,
			LotSize:    r.LotSize,
			Profit:     r.Profit,
			Date:       now.AddDate(0, 0, -r.DaysAgo).Format(models.DateLayout),
			Time:       r.Time,
			Status:     models.StatusForProfit(r.Profit),
			Risk:       r.Risk,
			Reward:     r.Reward,
			Strategy:   r.Strategy,
			Notes:      r.Notes,
			StopLoss:   r.StopLoss,
			TakeProfit: r.TakeProfit,
			Timeframe:  tf,
			Tags:       tags,
			Mood:       r.Mood,
		})
	}
	return NewWithTrades(trades), nil
}
