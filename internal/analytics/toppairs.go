package analytics

import (
	"sort"
	"strings"

	"fxjournal/internal/models"
)

// RankTopPairs derives the dashboard shortlist: the limit most
// profitable pairs, highest total profit first. A pair that was already
// on the previous shortlist keeps its color scheme so its badge does
// not flicker when the ranking shifts; new entrants get the default
// scheme. Neither input is modified.
func RankTopPairs(stats []models.PairStatistics, prior []models.PairPerformance, limit int) []models.PairPerformance {
	ranked := make([]models.PairStatistics, len(stats))
	copy(ranked, stats)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalProfit > ranked[j].TotalProfit
	})
	if limit < 0 {
		limit = 0
	}
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	out := make([]models.PairPerformance, 0, len(ranked))
	for _, s := range ranked {
		color := models.DefaultColorScheme
		for _, p := range prior {
			if p.Pair == s.Pair {
				color = p.Color
				break
			}
		}
		out = append(out, models.PairPerformance{
			Pair:    s.Pair,
			Code:    PairCode(s.Pair),
			Trades:  s.TotalTrades,
			Profit:  s.TotalProfit,
			WinRate: s.WinRate,
			Color:   color,
		})
	}
	return out
}

// PairCode abbreviates a pair to the first letter of each side:
// "EUR/USD" -> "EU".
func PairCode(pair string) string {
	var b strings.Builder
	for _, side := range strings.Split(pair, "/") {
		if side != "" {
			b.WriteByte(side[0])
		}
	}
	return b.String()
}
