package analytics

import (
	"math"

	"fxjournal/internal/models"
)

// ComputePairStatistics reduces a trade subset into one statistics
// record per distinct pair, in first-encountered order. Callers sort as
// they see fit.
func ComputePairStatistics(trades []models.Trade) []models.PairStatistics {
	var order []string
	grouped := make(map[string][]models.Trade)
	for _, t := range trades {
		if _, seen := grouped[t.Pair]; !seen {
			order = append(order, t.Pair)
		}
		grouped[t.Pair] = append(grouped[t.Pair], t)
	}

	stats := make([]models.PairStatistics, 0, len(order))
	for _, pair := range order {
		stats = append(stats, pairStatistics(pair, grouped[pair]))
	}
	return stats
}

func pairStatistics(pair string, trades []models.Trade) models.PairStatistics {
	s := models.PairStatistics{
		Pair:        pair,
		TotalTrades: len(trades),
		BestTrade:   trades[0].Profit,
		WorstTrade:  trades[0].Profit,
	}

	var buyWins, sellWins int
	tfProfit := make(map[models.Timeframe]float64)
	var tfOrder []models.Timeframe
	stratCount := make(map[string]int)
	var stratOrder []string

	for _, t := range trades {
		if t.Status == models.Win {
			s.WinningTrades++
		} else {
			s.LosingTrades++
		}
		s.TotalProfit += t.Profit
		if t.Profit > s.BestTrade {
			s.BestTrade = t.Profit
		}
		if t.Profit < s.WorstTrade {
			s.WorstTrade = t.Profit
		}

		if t.Direction == models.Buy {
			s.BuyTrades++
			if t.Status == models.Win {
				buyWins++
			}
		} else {
			s.SellTrades++
			if t.Status == models.Win {
				sellWins++
			}
		}

		if t.Timeframe != "" {
			if _, seen := tfProfit[t.Timeframe]; !seen {
				tfOrder = append(tfOrder, t.Timeframe)
			}
			tfProfit[t.Timeframe] += t.Profit
		}
		if t.Strategy != "" {
			if _, seen := stratCount[t.Strategy]; !seen {
				stratOrder = append(stratOrder, t.Strategy)
			}
			stratCount[t.Strategy]++
		}
	}

	s.WinRate = float64(s.WinningTrades) / float64(s.TotalTrades) * 100
	s.AveragePips = s.TotalProfit / float64(s.TotalTrades)
	if s.BuyTrades > 0 {
		s.BuyWinRate = float64(buyWins) / float64(s.BuyTrades) * 100
	}
	if s.SellTrades > 0 {
		s.SellWinRate = float64(sellWins) / float64(s.SellTrades) * 100
	}

	// Holding time needs a separate entry timestamp, which the trade
	// record does not carry: entry and exit collapse onto one instant,
	// so the average stays at zero hours.
	s.AverageHoldingTime = 0

	// Ties resolve to the first-encountered timeframe or strategy.
	bestProfit := math.Inf(-1)
	for _, tf := range tfOrder {
		if tfProfit[tf] > bestProfit {
			bestProfit = tfProfit[tf]
			s.MostProfitableTimeframe = tf
		}
	}
	bestCount := 0
	for _, strat := range stratOrder {
		if stratCount[strat] > bestCount {
			bestCount = stratCount[strat]
			s.MostCommonStrategy = strat
		}
	}

	return s
}
