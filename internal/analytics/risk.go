package analytics

import (
	"math"
	"sort"

	"fxjournal/internal/models"
)

// ComputeRiskMetrics reduces a trade subset into a single metrics
// snapshot. The input is left untouched: the chronological replay used
// for drawdown and streak detection sorts a private copy.
//
// Zero-denominator policies: an empty subset yields all-zero fields and
// an empty timeframe map; a subset with no losing trades reports the
// gross profit itself as the profit factor rather than infinity; a zero
// profit standard deviation yields a zero Sharpe ratio.
func ComputeRiskMetrics(trades []models.Trade) models.RiskMetrics {
	m := models.RiskMetrics{
		TimeframePerformance: make(map[models.Timeframe]models.TimeframeStats),
	}
	if len(trades) == 0 {
		return m
	}

	total := float64(len(trades))

	var wins, losses int
	var grossProfit, grossLoss, net float64
	best, worst := trades[0].Profit, trades[0].Profit
	var rrSum float64
	var rrCount int
	var riskSum float64
	var riskCount int
	var lowRisk, mediumRisk, highRisk int

	for _, t := range trades {
		net += t.Profit
		switch {
		case t.Profit > 0:
			wins++
			grossProfit += t.Profit
		case t.Profit < 0:
			losses++
			grossLoss += -t.Profit
		}
		if t.Profit > best {
			best = t.Profit
		}
		if t.Profit < worst {
			worst = t.Profit
		}
		if t.Risk > 0 && t.Reward > 0 {
			rrSum += t.Reward / t.Risk
			rrCount++
		}
		if t.Risk > 0 {
			riskSum += t.Risk
			riskCount++
			switch {
			case t.Risk <= 1:
				lowRisk++
			case t.Risk <= 2:
				mediumRisk++
			default:
				highRisk++
			}
		}
	}

	m.WinRate = float64(wins) / total * 100
	m.BestTrade = best
	m.WorstTrade = worst

	m.ProfitFactor = grossProfit
	if grossLoss != 0 {
		m.ProfitFactor = grossProfit / grossLoss
	}
	if wins > 0 {
		m.AverageWin = grossProfit / float64(wins)
	}
	if losses > 0 {
		m.AverageLoss = grossLoss / float64(losses)
	}
	m.Expectancy = m.WinRate/100*m.AverageWin - (1-m.WinRate/100)*m.AverageLoss

	if rrCount > 0 {
		m.AverageRiskReward = rrSum / float64(rrCount)
	}
	if riskCount > 0 {
		m.AverageRiskPerTrade = riskSum / float64(riskCount)
	}

	// Band percentages are taken over the full subset; trades without a
	// recorded risk fall into no band, so the three need not sum to 100.
	m.RiskDistribution = models.RiskDistribution{
		Low:    float64(lowRisk) / total * 100,
		Medium: float64(mediumRisk) / total * 100,
		High:   float64(highRisk) / total * 100,
	}

	m.MaxDrawdown, m.ConsecutiveWins, m.ConsecutiveLosses = replayChronological(trades)

	mean := net / total
	var variance float64
	for _, t := range trades {
		d := t.Profit - mean
		variance += d * d
	}
	if std := math.Sqrt(variance / total); std != 0 {
		m.SharpeRatio = mean / std
	}

	computeTimeframePerformance(trades, m.TimeframePerformance)

	return m
}

// replayChronological walks a copy of the trades in date+time order,
// tracking the running balance against its peak for drawdown and the
// longest win and loss streaks. Balance starts at zero: drawdown is
// relative to cumulative pips, not an account balance.
func replayChronological(trades []models.Trade) (maxDrawdown float64, maxWins, maxLosses int) {
	chrono := make([]models.Trade, len(trades))
	copy(chrono, trades)
	sort.SliceStable(chrono, func(i, j int) bool {
		return chrono[i].Timestamp().Before(chrono[j].Timestamp())
	})

	var balance, peak float64
	var curWins, curLosses int
	for _, t := range chrono {
		balance += t.Profit
		if balance > peak {
			peak = balance
		}
		if dd := peak - balance; dd > maxDrawdown {
			maxDrawdown = dd
		}

		if t.Profit > 0 {
			curWins++
			curLosses = 0
			if curWins > maxWins {
				maxWins = curWins
			}
		} else {
			curLosses++
			curWins = 0
			if curLosses > maxLosses {
				maxLosses = curLosses
			}
		}
	}
	return maxDrawdown, maxWins, maxLosses
}

// computeTimeframePerformance groups trades by timeframe bucket and
// fills out per-bucket win rate and profit factor using the same
// zero-denominator rules as the overall metrics. Trades without a
// timeframe are excluded.
func computeTimeframePerformance(trades []models.Trade, out map[models.Timeframe]models.TimeframeStats) {
	type agg struct {
		trades, wins           int
		grossProfit, grossLoss float64
	}
	byTF := make(map[models.Timeframe]*agg)
	for _, t := range trades {
		if t.Timeframe == "" {
			continue
		}
		a := byTF[t.Timeframe]
		if a == nil {
			a = &agg{}
			byTF[t.Timeframe] = a
		}
		a.trades++
		switch {
		case t.Profit > 0:
			a.wins++
			a.grossProfit += t.Profit
		case t.Profit < 0:
			a.grossLoss += -t.Profit
		}
	}
	for tf, a := range byTF {
		pf := a.grossProfit
		if a.grossLoss != 0 {
			pf = a.grossProfit / a.grossLoss
		}
		out[tf] = models.TimeframeStats{
			WinRate:      float64(a.wins) / float64(a.trades) * 100,
			ProfitFactor: pf,
		}
	}
}
