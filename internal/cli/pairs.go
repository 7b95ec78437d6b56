package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"fxjournal/pkg/utils"
)

// addPairsCommands adds the pair statistics commands.
func addPairsCommands(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "pairs",
		Short: "Per-pair statistics for the active time range",
		Example: `  fxjournal pairs
  fxjournal pairs --range 90
  fxjournal pairs top`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if !requireJournal(app, output) {
				return nil
			}
			if err := windowFromFlags(cmd, app); err != nil {
				return err
			}

			stats := app.Journal.PairStatistics()
			if output.IsJSON() {
				return output.JSON(stats)
			}

			if len(stats) == 0 {
				output.Info("No trades in this time range.")
				return nil
			}

			output.Bold("Pair Statistics (%s)", describeWindow(app))
			table := NewTable(output, "Pair", "Trades", "W/L", "Win Rate", "Profit", "Avg Pips", "Buy WR", "Sell WR", "Best", "Worst", "TF", "Strategy")
			for _, p := range stats {
				table.AddRow(
					p.Pair,
					strconv.Itoa(p.TotalTrades),
					strconv.Itoa(p.WinningTrades)+"/"+strconv.Itoa(p.LosingTrades),
					utils.FormatRatio(p.WinRate)+"%",
					output.FormatPips(p.TotalProfit),
					utils.FormatRatio(p.AveragePips),
					utils.FormatRatio(p.BuyWinRate)+"%",
					utils.FormatRatio(p.SellWinRate)+"%",
					output.FormatPips(p.BestTrade),
					output.FormatPips(p.WorstTrade),
					string(p.MostProfitableTimeframe),
					utils.TruncateString(p.MostCommonStrategy, 16),
				)
			}
			table.Render()
			return nil
		},
	}

	cmd.AddCommand(newPairsTopCmd(app))
	rootCmd.AddCommand(cmd)
}

func newPairsTopCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "top",
		Short: "Top pairs ranked by total profit",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if !requireJournal(app, output) {
				return nil
			}
			if err := windowFromFlags(cmd, app); err != nil {
				return err
			}

			topPairs := app.Journal.TopPairs()
			if output.IsJSON() {
				return output.JSON(topPairs)
			}

			if len(topPairs) == 0 {
				output.Info("No trades in this time range.")
				return nil
			}

			output.Bold("Top Pairs (%s)", describeWindow(app))
			table := NewTable(output, "", "Pair", "Trades", "Profit", "Win Rate")
			for _, p := range topPairs {
				table.AddRow(
					output.PairBadge(p.Code, p.Color),
					p.Pair,
					strconv.Itoa(p.Trades),
					output.FormatPips(p.Profit),
					utils.FormatRatio(p.WinRate)+"%",
				)
			}
			table.Render()
			return nil
		},
	}
}
