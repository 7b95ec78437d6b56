package cli

import (
	"sort"

	"github.com/spf13/cobra"

	"fxjournal/internal/models"
	"fxjournal/pkg/utils"
)

// addRiskCommand adds the risk metrics report command.
func addRiskCommand(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "risk",
		Short: "Risk metrics for the active time range",
		Long: `Show aggregate risk metrics: win rate, profit factor, expectancy,
drawdown, streaks, Sharpe ratio, risk distribution and per-timeframe
performance, all scoped to the active time range.`,
		Example: `  fxjournal risk
  fxjournal risk --range 90
  fxjournal risk --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if !requireJournal(app, output) {
				return nil
			}
			if err := windowFromFlags(cmd, app); err != nil {
				return err
			}

			metrics := app.Journal.RiskMetrics()
			if output.IsJSON() {
				return output.JSON(metrics)
			}

			output.Bold("Risk Metrics (%s)", describeWindow(app))
			output.Println()
			output.Printf("  Win Rate:           %s\n", output.FormatPercent(metrics.WinRate))
			output.Printf("  Profit Factor:      %s\n", utils.FormatRatio(metrics.ProfitFactor))
			output.Printf("  Expectancy:         %s\n", output.FormatPips(metrics.Expectancy))
			output.Printf("  Avg Risk/Reward:    %s\n", utils.FormatRatio(metrics.AverageRiskReward))
			output.Printf("  Avg Risk Per Trade: %s%%\n", utils.FormatRatio(metrics.AverageRiskPerTrade))
			output.Printf("  Max Drawdown:       %s\n", output.Red(utils.FormatPips(metrics.MaxDrawdown)))
			output.Printf("  Sharpe Ratio:       %s\n", utils.FormatRatio(metrics.SharpeRatio))
			output.Println()
			output.Printf("  Consecutive Wins:   %d\n", metrics.ConsecutiveWins)
			output.Printf("  Consecutive Losses: %d\n", metrics.ConsecutiveLosses)
			output.Printf("  Best Trade:         %s\n", output.FormatPips(metrics.BestTrade))
			output.Printf("  Worst Trade:        %s\n", output.FormatPips(metrics.WorstTrade))
			output.Printf("  Average Win:        %s\n", output.Green(utils.FormatPips(metrics.AverageWin)))
			output.Printf("  Average Loss:       %s\n", output.Red(utils.FormatPips(-metrics.AverageLoss)))

			output.Println()
			output.Bold("Risk Distribution")
			output.Printf("  Low    (≤1%%):  %s\n", utils.FormatRatio(metrics.RiskDistribution.Low)+"%")
			output.Printf("  Medium (1-2%%): %s\n", utils.FormatRatio(metrics.RiskDistribution.Medium)+"%")
			output.Printf("  High   (>2%%):  %s\n", utils.FormatRatio(metrics.RiskDistribution.High)+"%")

			if len(metrics.TimeframePerformance) > 0 {
				output.Println()
				output.Bold("Timeframe Performance")
				table := NewTable(output, "Timeframe", "Win Rate", "Profit Factor")
				for _, tf := range sortedTimeframes(metrics.TimeframePerformance) {
					stats := metrics.TimeframePerformance[tf]
					table.AddRow(
						string(tf),
						utils.FormatRatio(stats.WinRate)+"%",
						utils.FormatRatio(stats.ProfitFactor),
					)
				}
				table.Render()
			}
			return nil
		},
	}

	rootCmd.AddCommand(cmd)
}

// sortedTimeframes orders map keys from the shortest timeframe up so
// report rows are stable across runs.
func sortedTimeframes(perf map[models.Timeframe]models.TimeframeStats) []models.Timeframe {
	order := map[models.Timeframe]int{
		models.M1: 0, models.M5: 1, models.M15: 2, models.M30: 3,
		models.H1: 4, models.H4: 5, models.D1: 6, models.W1: 7,
	}
	keys := make([]models.Timeframe, 0, len(perf))
	for tf := range perf {
		keys = append(keys, tf)
	}
	sort.Slice(keys, func(i, j int) bool {
		oi, iok := order[keys[i]]
		oj, jok := order[keys[j]]
		if iok && jok {
			return oi < oj
		}
		return keys[i] < keys[j]
	})
	return keys
}
