package cli

import (
	"math"
	"strings"

	"github.com/spf13/cobra"

	"fxjournal/pkg/utils"
)

const chartBarWidth = 40

// addChartCommand adds the daily P&L chart command.
func addChartCommand(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Daily and cumulative P&L series",
		Long: `Render the daily profit series and the cumulative running total
for the active time range as a horizontal bar chart. Days without
trades show as zero.`,
		Example: `  fxjournal chart
  fxjournal chart --range 7
  fxjournal chart --cumulative`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if !requireJournal(app, output) {
				return nil
			}
			if err := windowFromFlags(cmd, app); err != nil {
				return err
			}

			chart := app.Journal.Chart()
			if output.IsJSON() {
				return output.JSON(chart)
			}

			cumulative, _ := cmd.Flags().GetBool("cumulative")
			values := chart.Daily
			title := "Daily P&L"
			if cumulative {
				values = chart.Cumulative
				title = "Cumulative P&L"
			}

			output.Bold("%s (%s)", title, describeWindow(app))
			output.Println()
			renderBars(output, chart.Dates, values)

			if n := len(chart.Cumulative); n > 0 {
				output.Println()
				output.Printf("  Net: %s\n", output.FormatPips(chart.Cumulative[n-1]))
			}
			return nil
		},
	}

	cmd.Flags().Bool("cumulative", false, "plot the cumulative series instead of daily")
	rootCmd.AddCommand(cmd)
}

// renderBars draws one row per day, bars scaled to the largest
// absolute value. Zero days get a dot so the axis stays readable.
func renderBars(output *Output, labels []string, values []float64) {
	max := 0.0
	for _, v := range values {
		if a := math.Abs(v); a > max {
			max = a
		}
	}

	for i, label := range labels {
		v := values[i]
		if v == 0 {
			output.Printf("  %-7s %s\n", label, output.DimText("·"))
			continue
		}
		width := 1
		if max > 0 {
			width = int(math.Abs(v) / max * chartBarWidth)
			if width < 1 {
				width = 1
			}
		}
		bar := strings.Repeat("█", width)
		if v > 0 {
			bar = output.Green(bar)
		} else {
			bar = output.Red(bar)
		}
		output.Printf("  %-7s %s %s\n", label, bar, utils.FormatPips(v))
	}
}
