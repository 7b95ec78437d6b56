package journal

import (
	"testing"
	"time"

	"github.com/rs/zerolog"

	"fxjournal/internal/analytics"
	"fxjournal/internal/config"
	"fxjournal/internal/errors"
	"fxjournal/internal/models"
	"fxjournal/internal/store"
)

var testNow = time.Date(2026, 8, 31, 12, 0, 0, 0, time.Local)

func testConfig() config.JournalConfig {
	return config.JournalConfig{
		DefaultRange:    "30",
		TopPairsLimit:   4,
		StartingBalance: 20000,
		ChartDays:       30,
	}
}

func newTestService(t *testing.T, trades []models.Trade) *Service {
	t.Helper()
	s, err := New(testConfig(), zerolog.Nop(), store.NewWithTrades(trades))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s.now = func() time.Time { return testNow }
	s.SetWindow(analytics.LastDays(30)) // recompute with the pinned clock
	return s
}

func testTrade(id int, pair string, profit float64, daysAgo int) models.Trade {
	return models.Trade{
		ID:        id,
		Pair:      pair,
		Direction: models.Buy,
		Profit:    profit,
		Date:      testNow.AddDate(0, 0, -daysAgo).Format(models.DateLayout),
		Time:      "09:00",
		Status:    models.StatusForProfit(profit),
	}
}

func validInput() store.NewTrade {
	return store.NewTrade{
		Pair:       "EUR/USD",
		Direction:  models.Buy,
		EntryPrice: 1.0820,
		ExitPrice:  1.0867,
		LotSize:    0.5,
		Date:       testNow.Format(models.DateLayout),
		Time:       "10:00",
	}
}

func TestNewRejectsBadDefaultRange(t *testing.T) {
	cfg := testConfig()
	cfg.DefaultRange = "fortnight"
	if _, err := New(cfg, zerolog.Nop(), store.New()); err == nil {
		t.Fatal("expected error for unparseable default range")
	}
}

func TestAddTradeRefreshesViews(t *testing.T) {
	s := newTestService(t, []models.Trade{
		testTrade(1, "GBP/USD", -20, 1),
	})
	before := s.RiskMetrics()

	trade, err := s.AddTrade(validInput())
	if err != nil {
		t.Fatalf("AddTrade: %v", err)
	}
	if trade.ID != 2 {
		t.Errorf("id = %d, want 2", trade.ID)
	}

	// Derived views must reflect the mutation immediately.
	after := s.RiskMetrics()
	if after.WinRate == before.WinRate {
		t.Error("win rate unchanged after adding a winning trade")
	}
	if after.WinRate != 50 {
		t.Errorf("win rate = %v, want 50", after.WinRate)
	}

	found := false
	for _, p := range s.PairStatistics() {
		if p.Pair == "EUR/USD" {
			found = true
		}
	}
	if !found {
		t.Error("pair statistics missing the new pair")
	}
}

func TestAddTradeValidation(t *testing.T) {
	s := newTestService(t, nil)

	tests := []struct {
		name   string
		mutate func(*store.NewTrade)
	}{
		{"empty pair", func(in *store.NewTrade) { in.Pair = "" }},
		{"no slash", func(in *store.NewTrade) { in.Pair = "EURUSD" }},
		{"trailing slash", func(in *store.NewTrade) { in.Pair = "EUR/" }},
		{"bad direction", func(in *store.NewTrade) { in.Direction = "Long" }},
		{"zero entry", func(in *store.NewTrade) { in.EntryPrice = 0 }},
		{"negative exit", func(in *store.NewTrade) { in.ExitPrice = -1 }},
		{"zero lot", func(in *store.NewTrade) { in.LotSize = 0 }},
		{"bad date", func(in *store.NewTrade) { in.Date = "31-08-2026" }},
		{"bad time", func(in *store.NewTrade) { in.Time = "25:99" }},
		{"negative risk", func(in *store.NewTrade) { in.Risk = -1 }},
		{"unknown timeframe", func(in *store.NewTrade) { in.Timeframe = "H2" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			_, err := s.AddTrade(in)
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if !errors.Is(err, errors.ErrInputValidation) {
				t.Errorf("error %v should unwrap to ErrInputValidation", err)
			}
		})
	}

	if s.store.Len() != 0 {
		t.Errorf("store grew to %d despite rejected inputs", s.store.Len())
	}
}

func TestDeleteTradeRefreshesViewsOnlyOnHit(t *testing.T) {
	s := newTestService(t, []models.Trade{
		testTrade(1, "EUR/USD", 47, 1),
		testTrade(2, "GBP/USD", -55, 2),
	})
	feedBefore := len(s.Notifications())

	if !s.DeleteTrade(2) {
		t.Fatal("expected deletion of trade 2")
	}
	if got := s.RiskMetrics().WinRate; got != 100 {
		t.Errorf("win rate after delete = %v, want 100", got)
	}
	if len(s.Notifications()) != feedBefore+1 {
		t.Error("deletion should add a notification")
	}

	// Missing id: no mutation, no notification.
	if s.DeleteTrade(99) {
		t.Error("deleting a missing id should report false")
	}
	if len(s.Notifications()) != feedBefore+1 {
		t.Error("no-op delete must not notify")
	}
}

func TestSetWindowRescopesViews(t *testing.T) {
	s := newTestService(t, []models.Trade{
		testTrade(1, "EUR/USD", 47, 1),
		testTrade(2, "GBP/USD", -55, 60), // outside 30 days
	})

	if got := len(s.FilteredTrades()); got != 1 {
		t.Fatalf("30-day subset = %d trades, want 1", got)
	}
	if got := s.RiskMetrics().WinRate; got != 100 {
		t.Errorf("30-day win rate = %v, want 100", got)
	}

	s.SetWindow(analytics.AllTime)
	if got := len(s.FilteredTrades()); got != 2 {
		t.Fatalf("all-time subset = %d trades, want 2", got)
	}
	if got := s.RiskMetrics().WinRate; got != 50 {
		t.Errorf("all-time win rate = %v, want 50", got)
	}
}

func TestStatsPreviousPeriod(t *testing.T) {
	s := newTestService(t, []models.Trade{
		testTrade(1, "EUR/USD", 60, 5),    // current window
		testTrade(2, "GBP/USD", -10, 10),  // current window
		testTrade(3, "EUR/USD", 20, 40),   // previous window
		testTrade(4, "USD/JPY", -40, 45),  // previous window
		testTrade(5, "AUD/USD", 99, 200),  // older than both
	})

	stats := s.Stats()
	if stats.Profit != 60 || stats.Loss != 10 {
		t.Errorf("profit/loss = %v/%v, want 60/10", stats.Profit, stats.Loss)
	}
	if stats.Balance != 20050 {
		t.Errorf("balance = %v, want 20050", stats.Balance)
	}
	// Current net 50, previous net -20.
	if stats.BalanceChange != 70 {
		t.Errorf("balance change = %v, want 70", stats.BalanceChange)
	}
	// Previous profit 20 -> current 60: +200%.
	if stats.ProfitChange != 200 {
		t.Errorf("profit change = %v, want 200", stats.ProfitChange)
	}
	// Previous loss 40 -> current 10: -75%.
	if stats.LossChange != -75 {
		t.Errorf("loss change = %v, want -75", stats.LossChange)
	}
}

func TestStatsAllTimeHasNoChanges(t *testing.T) {
	s := newTestService(t, []models.Trade{
		testTrade(1, "EUR/USD", 60, 5),
		testTrade(2, "GBP/USD", -10, 40),
	})
	s.SetWindow(analytics.AllTime)

	stats := s.Stats()
	if stats.BalanceChange != 0 || stats.ProfitChange != 0 || stats.LossChange != 0 || stats.WinRateChange != 0 {
		t.Errorf("all-time change figures should be zero, got %+v", stats)
	}
}

func TestTopPairsStickyAcrossMutations(t *testing.T) {
	s := newTestService(t, []models.Trade{
		testTrade(1, "EUR/USD", 47, 1),
		testTrade(2, "GBP/USD", 30, 2),
	})

	before := make(map[string]models.ColorScheme)
	for _, p := range s.TopPairs() {
		before[p.Pair] = p.Color
	}

	// A new pair out-earns both incumbents.
	in := validInput()
	in.Pair = "USD/CHF"
	in.EntryPrice = 1.0000
	in.ExitPrice = 1.0100
	if _, err := s.AddTrade(in); err != nil {
		t.Fatalf("AddTrade: %v", err)
	}

	for _, p := range s.TopPairs() {
		if want, ok := before[p.Pair]; ok && p.Color != want {
			t.Errorf("%s changed color after ranking shift: %+v -> %+v", p.Pair, want, p.Color)
		}
	}
}

func TestNotificationsFeed(t *testing.T) {
	s := newTestService(t, nil)

	if _, err := s.AddTrade(validInput()); err != nil {
		t.Fatalf("AddTrade: %v", err)
	}
	in := validInput()
	in.ExitPrice = 1.0700 // a loser
	if _, err := s.AddTrade(in); err != nil {
		t.Fatalf("AddTrade: %v", err)
	}

	notes := s.Notifications()
	if len(notes) != 2 {
		t.Fatalf("feed length = %d, want 2", len(notes))
	}
	// Newest first.
	if notes[0].Message != "New losing trade added for EUR/USD" {
		t.Errorf("newest message = %q", notes[0].Message)
	}
	if notes[1].Message != "New winning trade added for EUR/USD" {
		t.Errorf("older message = %q", notes[1].Message)
	}
	if s.UnreadCount() != 2 {
		t.Errorf("unread = %d, want 2", s.UnreadCount())
	}

	s.MarkAllNotificationsRead()
	if s.UnreadCount() != 0 {
		t.Errorf("unread after mark-all = %d, want 0", s.UnreadCount())
	}
}

func TestSortTradesToggle(t *testing.T) {
	s := newTestService(t, []models.Trade{
		testTrade(1, "EUR/USD", 47, 1),
		testTrade(2, "GBP/USD", -55, 2),
		testTrade(3, "AUD/USD", 10, 3),
	})

	s.SortTrades(store.SortByProfit)
	trades := s.Trades()
	if trades[0].Profit != -55 {
		t.Errorf("ascending sort: first profit = %v, want -55", trades[0].Profit)
	}

	s.SortTrades(store.SortByProfit)
	trades = s.Trades()
	if trades[0].Profit != 47 {
		t.Errorf("toggled sort: first profit = %v, want 47", trades[0].Profit)
	}
}

func TestChartFollowsWindow(t *testing.T) {
	s := newTestService(t, []models.Trade{
		testTrade(1, "EUR/USD", 47, 0),
	})
	s.SetWindow(analytics.LastDays(7))

	chart := s.Chart()
	if len(chart.Dates) != 8 {
		t.Fatalf("7-day chart has %d points, want 8", len(chart.Dates))
	}
	last := len(chart.Cumulative) - 1
	if chart.Cumulative[last] != 47 {
		t.Errorf("cumulative end = %v, want 47", chart.Cumulative[last])
	}
}
