package cli

import (
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"fxjournal/internal/errors"
	"fxjournal/internal/models"
	"fxjournal/internal/store"
	"fxjournal/pkg/utils"
)

// addTradeCommands adds trade management commands.
func addTradeCommands(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "trade",
		Short: "Trade record management",
		Long:  "Record, list, inspect and delete journal trades.",
	}

	cmd.AddCommand(newTradeListCmd(app))
	cmd.AddCommand(newTradeAddCmd(app))
	cmd.AddCommand(newTradeDeleteCmd(app))
	cmd.AddCommand(newTradeShowCmd(app))
	cmd.AddCommand(newTradeSortCmd(app))

	rootCmd.AddCommand(cmd)
}

// requireJournal reports whether the journal service is available,
// warning the user when it is not.
func requireJournal(app *App, output *Output) bool {
	if app.Journal == nil {
		output.Warning("Journal not initialized. Check the configuration and logs.")
		return false
	}
	return true
}

func newTradeListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List trades in the active time range",
		Example: `  fxjournal trade list
  fxjournal trade list --range 7
  fxjournal trade list --range all --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if !requireJournal(app, output) {
				return nil
			}
			if err := windowFromFlags(cmd, app); err != nil {
				return err
			}

			trades := app.Journal.FilteredTrades()
			if output.IsJSON() {
				return output.JSON(trades)
			}

			if len(trades) == 0 {
				output.Info("No trades in this time range.")
				return nil
			}

			output.Bold("Trades (%s)", describeWindow(app))
			table := NewTable(output, "ID", "Date", "Time", "Pair", "Dir", "Entry", "Exit", "Lot", "Profit", "Status", "Strategy")
			for _, t := range trades {
				table.AddRow(
					strconv.Itoa(t.ID),
					t.Date,
					t.Time,
					t.Pair,
					string(t.Direction),
					FormatPrice(t.EntryPrice),
					FormatPrice(t.ExitPrice),
					strconv.FormatFloat(t.LotSize, 'f', -1, 64),
					output.FormatPips(t.Profit),
					output.StatusText(t.Status),
					utils.TruncateString(t.Strategy, 18),
				)
			}
			table.Render()
			return nil
		},
	}
}

func newTradeAddCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a closed trade",
		Long: `Record a closed position in the journal.

Profit in pips is derived from the entry and exit prices and the
direction; status follows the sign of the profit.`,
		Example: `  fxjournal trade add --pair EUR/USD --direction Buy --entry 1.0820 --exit 1.0875 --lot 0.5
  fxjournal trade add --pair GBP/USD --direction Sell --entry 1.2540 --exit 1.2485 --lot 0.7 \
    --strategy Breakout --timeframe H1 --risk 1.5 --reward 3.0 --tags breakout,momentum`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if !requireJournal(app, output) {
				return nil
			}

			input, err := newTradeFromFlags(cmd)
			if err != nil {
				return err
			}

			trade, err := app.Journal.AddTrade(input)
			if err != nil {
				output.Error("Trade rejected: %v", err)
				return err
			}

			if output.IsJSON() {
				return output.JSON(trade)
			}
			output.Success("✓ Trade #%d recorded: %s %s %s", trade.ID, trade.Pair, trade.Direction, output.FormatPips(trade.Profit))
			return nil
		},
	}

	cmd.Flags().String("pair", "", "currency pair, e.g. EUR/USD (required)")
	cmd.Flags().String("direction", "", "Buy or Sell (required)")
	cmd.Flags().Float64("entry", 0, "entry price (required)")
	cmd.Flags().Float64("exit", 0, "exit price (required)")
	cmd.Flags().Float64("lot", 0, "lot size (required)")
	cmd.Flags().String("date", "", "trade date, 2006-01-02 (default today)")
	cmd.Flags().String("time", "", "trade time, 15:04 (default now)")
	cmd.Flags().Float64("risk", 0, "risk percent of account")
	cmd.Flags().Float64("reward", 0, "reward percent of account")
	cmd.Flags().String("strategy", "", "strategy label")
	cmd.Flags().String("notes", "", "free-form notes")
	cmd.Flags().Float64("stop-loss", 0, "stop loss price")
	cmd.Flags().Float64("take-profit", 0, "take profit price")
	cmd.Flags().String("timeframe", "", "timeframe bucket: M1 M5 M15 M30 H1 H4 D1 W1")
	cmd.Flags().String("tags", "", "comma-separated tags")
	cmd.Flags().String("mood", "", "mood label")

	cmd.MarkFlagRequired("pair")
	cmd.MarkFlagRequired("direction")
	cmd.MarkFlagRequired("entry")
	cmd.MarkFlagRequired("exit")
	cmd.MarkFlagRequired("lot")

	return cmd
}

func newTradeFromFlags(cmd *cobra.Command) (store.NewTrade, error) {
	pair, _ := cmd.Flags().GetString("pair")
	direction, _ := cmd.Flags().GetString("direction")
	entry, _ := cmd.Flags().GetFloat64("entry")
	exit, _ := cmd.Flags().GetFloat64("exit")
	lot, _ := cmd.Flags().GetFloat64("lot")
	date, _ := cmd.Flags().GetString("date")
	tm, _ := cmd.Flags().GetString("time")
	risk, _ := cmd.Flags().GetFloat64("risk")
	reward, _ := cmd.Flags().GetFloat64("reward")
	strategy, _ := cmd.Flags().GetString("strategy")
	notes, _ := cmd.Flags().GetString("notes")
	stopLoss, _ := cmd.Flags().GetFloat64("stop-loss")
	takeProfit, _ := cmd.Flags().GetFloat64("take-profit")
	timeframe, _ := cmd.Flags().GetString("timeframe")
	tagsRaw, _ := cmd.Flags().GetString("tags")
	mood, _ := cmd.Flags().GetString("mood")

	now := time.Now()
	if date == "" {
		date = now.Format(models.DateLayout)
	}
	if tm == "" {
		tm = now.Format(models.TimeLayout)
	}

	var tags []string
	for _, tag := range strings.Split(tagsRaw, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}

	return store.NewTrade{
		Pair:       strings.ToUpper(strings.TrimSpace(pair)),
		Direction:  normalizeDirection(direction),
		EntryPrice: entry,
		ExitPrice:  exit,
		LotSize:    lot,
		Date:       date,
		Time:       tm,
		Risk:       risk,
		Reward:     reward,
		Strategy:   strategy,
		Notes:      notes,
		StopLoss:   stopLoss,
		TakeProfit: takeProfit,
		Timeframe:  models.Timeframe(strings.ToUpper(timeframe)),
		Tags:       tags,
		Mood:       mood,
	}, nil
}

func newTradeDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a trade by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if !requireJournal(app, output) {
				return nil
			}

			id, err := strconv.Atoi(args[0])
			if err != nil {
				output.Error("Invalid trade id: %s", args[0])
				return err
			}

			if app.Journal.DeleteTrade(id) {
				output.Success("✓ Trade #%d deleted", id)
			} else {
				output.Info("No trade with id %d.", id)
			}
			return nil
		},
	}
}

func newTradeShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a trade in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if !requireJournal(app, output) {
				return nil
			}

			id, err := strconv.Atoi(args[0])
			if err != nil {
				output.Error("Invalid trade id: %s", args[0])
				return err
			}

			trade, ok := app.Journal.Get(id)
			if !ok {
				output.Error("No trade with id %d.", id)
				return errors.Wrapf(errors.ErrTradeNotFound, "id %d", id)
			}
			if output.IsJSON() {
				return output.JSON(trade)
			}

			output.Bold("Trade #%d - %s", trade.ID, trade.Pair)
			output.Println()
			output.Printf("  Direction:   %s\n", trade.Direction)
			output.Printf("  Entry:       %s\n", FormatPrice(trade.EntryPrice))
			output.Printf("  Exit:        %s\n", FormatPrice(trade.ExitPrice))
			output.Printf("  Lot Size:    %.2f\n", trade.LotSize)
			output.Printf("  Profit:      %s\n", output.FormatPips(trade.Profit))
			output.Printf("  Status:      %s\n", output.StatusText(trade.Status))
			output.Printf("  Date/Time:   %s %s\n", trade.Date, trade.Time)
			if trade.Timeframe != "" {
				output.Printf("  Timeframe:   %s\n", trade.Timeframe)
			}
			if trade.Strategy != "" {
				output.Printf("  Strategy:    %s\n", trade.Strategy)
			}
			if trade.Risk > 0 || trade.Reward > 0 {
				output.Printf("  Risk/Reward: %.1f%% / %.1f%%\n", trade.Risk, trade.Reward)
			}
			if trade.StopLoss > 0 {
				output.Printf("  Stop Loss:   %s\n", FormatPrice(trade.StopLoss))
			}
			if trade.TakeProfit > 0 {
				output.Printf("  Take Profit: %s\n", FormatPrice(trade.TakeProfit))
			}
			if len(trade.Tags) > 0 {
				output.Printf("  Tags:        %s\n", strings.Join(trade.Tags, ", "))
			}
			if trade.Mood != "" {
				output.Printf("  Mood:        %s\n", trade.Mood)
			}
			if trade.Notes != "" {
				output.Println()
				output.Bold("Notes")
				output.Printf("  %s\n", trade.Notes)
			}
			for _, shot := range trade.Screenshots {
				output.Printf("  Screenshot:  %s (%s)\n", shot.Image, shot.Caption)
			}
			return nil
		},
	}
}

func newTradeSortCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "sort <field>",
		Short: "Sort the trade list by a field",
		Long: `Stably sort the trade list by one of the closed set of fields:
id, pair, direction, entry, exit, lot, profit, date, status.

Sorting the same field again flips the direction.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if !requireJournal(app, output) {
				return nil
			}

			field, err := store.ParseSortField(args[0])
			if err != nil {
				output.Error("Unknown sort field %q", args[0])
				return err
			}

			app.Journal.SortTrades(field)
			output.Success("✓ Trades sorted by %s", field)
			return nil
		},
	}
}

// normalizeDirection accepts buy/BUY/Buy and sell variants; anything
// else passes through unchanged so validation can reject it.
func normalizeDirection(s string) models.Direction {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "buy":
		return models.Buy
	case "sell":
		return models.Sell
	}
	return models.Direction(s)
}

func describeWindow(app *App) string {
	w := app.Journal.Window()
	if w.All {
		return "all time"
	}
	return "last " + strconv.Itoa(w.Days) + " days"
}
