package journal

import (
	"time"

	"fxjournal/internal/models"
)

// computeStats builds the headline summary for the filtered subset.
// Change figures compare against the previous window of equal length;
// the all-time window has no previous period, so its changes are zero.
// Callers hold the mutex.
func (s *Service) computeStats(filtered []models.Trade, now time.Time) models.DashboardStats {
	grossProfit, grossLoss, winRate := summarize(filtered)

	stats := models.DashboardStats{
		Balance: s.cfg.StartingBalance + grossProfit - grossLoss,
		Profit:  grossProfit,
		Loss:    grossLoss,
		WinRate: winRate,
	}
	if s.window.All {
		return stats
	}

	curCutoff := now.AddDate(0, 0, -s.window.Days)
	prevCutoff := curCutoff.AddDate(0, 0, -s.window.Days)

	var previous []models.Trade
	for _, t := range s.store.List() {
		ts := t.Timestamp()
		if !ts.Before(prevCutoff) && ts.Before(curCutoff) {
			previous = append(previous, t)
		}
	}
	prevProfit, prevLoss, prevWinRate := summarize(previous)

	if prevWinRate != 0 {
		stats.WinRateChange = (winRate - prevWinRate) / prevWinRate * 100
	}
	if prevProfit != 0 {
		stats.ProfitChange = (grossProfit - prevProfit) / prevProfit * 100
	}
	if prevLoss != 0 {
		stats.LossChange = (grossLoss - prevLoss) / prevLoss * 100
	}
	stats.BalanceChange = (grossProfit - grossLoss) - (prevProfit - prevLoss)
	return stats
}

func summarize(trades []models.Trade) (grossProfit, grossLoss, winRate float64) {
	var wins int
	for _, t := range trades {
		switch {
		case t.Profit > 0:
			wins++
			grossProfit += t.Profit
		case t.Profit < 0:
			grossLoss += -t.Profit
		}
	}
	if len(trades) > 0 {
		winRate = float64(wins) / float64(len(trades)) * 100
	}
	return grossProfit, grossLoss, winRate
}
