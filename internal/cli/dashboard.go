package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"fxjournal/pkg/utils"
)

// addDashboardCommand adds the dashboard overview command.
func addDashboardCommand(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Account overview for the active time range",
		Long: `Show the account summary, top performing pairs and the most
recent trades for the active time range. Change figures compare the
current window against the window immediately before it.`,
		Example: `  fxjournal dashboard
  fxjournal dashboard --range 7
  fxjournal dashboard --range all --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if !requireJournal(app, output) {
				return nil
			}
			if err := windowFromFlags(cmd, app); err != nil {
				return err
			}

			stats := app.Journal.Stats()
			topPairs := app.Journal.TopPairs()
			trades := app.Journal.FilteredTrades()

			if output.IsJSON() {
				return output.JSON(map[string]interface{}{
					"stats":     stats,
					"top_pairs": topPairs,
					"trades":    trades,
				})
			}

			output.Bold("Dashboard (%s)", describeWindow(app))
			output.Println()

			output.Printf("  Balance:   %s", utils.FormatCurrency(stats.Balance))
			output.Printf("  (%s)\n", formatChange(output, stats.BalanceChange, "pips"))
			output.Printf("  Profit:    %s", output.Green(utils.FormatPips(stats.Profit)))
			output.Printf("  (%s)\n", formatChange(output, stats.ProfitChange, "%"))
			output.Printf("  Loss:      %s", output.Red(utils.FormatPips(-stats.Loss)))
			output.Printf("  (%s)\n", formatChange(output, stats.LossChange, "%"))
			output.Printf("  Win Rate:  %s", utils.FormatRatio(stats.WinRate)+"%")
			output.Printf("  (%s)\n", formatChange(output, stats.WinRateChange, "%"))

			if len(topPairs) > 0 {
				output.Println()
				output.Bold("Top Pairs")
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
			}

			if len(trades) > 0 {
				output.Println()
				output.Bold("Recent Trades")
				limit := 5
				if len(trades) < limit {
					limit = len(trades)
				}
				table := NewTable(output, "ID", "Date", "Pair", "Dir", "Profit", "Status")
				for _, t := range trades[:limit] {
					table.AddRow(
						strconv.Itoa(t.ID),
						t.Date,
						t.Pair,
						string(t.Direction),
						output.FormatPips(t.Profit),
						output.StatusText(t.Status),
					)
				}
				table.Render()
			}
			return nil
		},
	}

	rootCmd.AddCommand(cmd)
}

// formatChange renders a change figure with sign coloring. The unit is
// appended as-is; pips changes are absolute, percent changes relative.
func formatChange(output *Output, change float64, unit string) string {
	text := utils.FormatRatio(change)
	if change > 0 {
		text = "+" + text
	}
	text += unit
	switch {
	case change > 0:
		return output.Green(text)
	case change < 0:
		return output.Red(text)
	}
	return text
}
