// Package journal wires the trade store to the analytics pipeline. The
// Service owns the lookback window, the notification feed and every
// derived view; each mutation re-derives the views synchronously before
// returning, so a reader never observes stale derived data.
package journal

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"fxjournal/internal/analytics"
	"fxjournal/internal/config"
	"fxjournal/internal/errors"
	"fxjournal/internal/logging"
	"fxjournal/internal/models"
	"fxjournal/internal/store"
)

// badgePalette colors the initial dashboard shortlist. After startup
// the sticky-color rule in RankTopPairs takes over.
var badgePalette = []models.ColorScheme{
	models.ColorIndigo,
	models.ColorEmerald,
	models.ColorAmber,
	models.ColorPurple,
}

// Service is the single entry point the presentation layer talks to.
type Service struct {
	mu     sync.Mutex
	cfg    config.JournalConfig
	logger zerolog.Logger
	store  *store.TradeStore
	now    func() time.Time

	window        analytics.Window
	notifications []models.Notification

	// Derived state, rebuilt wholesale on every mutation.
	metrics   models.RiskMetrics
	pairStats []models.PairStatistics
	topPairs  []models.PairPerformance
	stats     models.DashboardStats
	chart     models.ChartData
}

// New builds a Service over the given store and derives the initial
// views. The first shortlist gets distinct palette colors; afterwards
// pairs keep their color for as long as they stay ranked.
func New(cfg config.JournalConfig, logger zerolog.Logger, st *store.TradeStore) (*Service, error) {
	window, err := analytics.ParseWindow(cfg.DefaultRange)
	if err != nil {
		return nil, errors.Wrap(err, "default_range")
	}

	s := &Service{
		cfg:    cfg,
		logger: logger,
		store:  st,
		now:    time.Now,
		window: window,
	}
	s.recompute()
	for i := range s.topPairs {
		s.topPairs[i].Color = badgePalette[i%len(badgePalette)]
	}
	if n := st.Len(); n > 0 {
		s.notify(fmt.Sprintf("Loaded %d sample trades", n))
	}
	return s, nil
}

// Window returns the active lookback window.
func (s *Service) Window() analytics.Window {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.window
}

// SetWindow switches the lookback window and re-derives every view.
func (s *Service) SetWindow(w analytics.Window) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.window = w
	s.recompute()
}

// Trades returns the full store in its current order.
func (s *Service) Trades() []models.Trade {
	return s.store.List()
}

// FilteredTrades returns the trades inside the active window, order
// preserved.
func (s *Service) FilteredTrades() []models.Trade {
	s.mu.Lock()
	defer s.mu.Unlock()
	return analytics.FilterByWindow(s.store.List(), s.window, s.now())
}

// Get returns the trade with the given id.
func (s *Service) Get(id int) (models.Trade, bool) {
	return s.store.Get(id)
}

// AddTrade validates the input, records the trade and refreshes the
// derived views before returning.
func (s *Service) AddTrade(input store.NewTrade) (models.Trade, error) {
	if err := validateNewTrade(input); err != nil {
		return models.Trade{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	trade := s.store.Add(input)
	kind := "losing"
	if trade.Status == models.Win {
		kind = "winning"
	}
	s.notify(fmt.Sprintf("New %s trade added for %s", kind, trade.Pair))
	s.recompute()

	logging.LogTrade(s.logger, "trade_added", trade.ID, trade.Pair, string(trade.Direction), trade.Profit)
	return trade, nil
}

// DeleteTrade removes a trade by id. A missing id is a no-op and
// reports false.
func (s *Service) DeleteTrade(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := s.store.Delete(id)
	if removed {
		s.notify(fmt.Sprintf("Trade #%d has been deleted", id))
		s.recompute()
		s.logger.Info().Int("trade_id", id).Msg("Trade deleted")
	} else {
		s.logger.Debug().Int("trade_id", id).Msg("Delete skipped, trade not found")
	}
	return removed
}

// SortTrades reorders the store by the given field, toggling direction
// on repeated calls with the same field.
func (s *Service) SortTrades(field store.SortField) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.Sort(field)
	s.recompute()
}

// RiskMetrics returns the current metrics snapshot.
func (s *Service) RiskMetrics() models.RiskMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.metrics
}

// PairStatistics returns per-pair statistics for the active window.
func (s *Service) PairStatistics() []models.PairStatistics {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.PairStatistics, len(s.pairStats))
	copy(out, s.pairStats)
	return out
}

// TopPairs returns the current dashboard shortlist.
func (s *Service) TopPairs() []models.PairPerformance {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.PairPerformance, len(s.topPairs))
	copy(out, s.topPairs)
	return out
}

// Stats returns the headline account summary.
func (s *Service) Stats() models.DashboardStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

// Chart returns the daily and cumulative profit series for the active
// window.
func (s *Service) Chart() models.ChartData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.chart
}

// recompute rebuilds every derived view from the store. Callers hold
// the mutex.
func (s *Service) recompute() {
	start := time.Now()
	now := s.now()

	filtered := analytics.FilterByWindow(s.store.List(), s.window, now)
	s.metrics = analytics.ComputeRiskMetrics(filtered)
	s.pairStats = analytics.ComputePairStatistics(filtered)
	s.topPairs = analytics.RankTopPairs(s.pairStats, s.topPairs, s.cfg.TopPairsLimit)
	s.chart = analytics.BuildChartData(filtered, s.chartDays(), now)
	s.stats = s.computeStats(filtered, now)

	logging.LogRecompute(s.logger, s.window.String(), len(filtered), time.Since(start))
}

func (s *Service) chartDays() int {
	if s.window.All {
		return s.cfg.ChartDays
	}
	return s.window.Days
}

func validateNewTrade(input store.NewTrade) error {
	if input.Pair == "" {
		return errors.NewValidationError("pair", input.Pair, "must not be empty")
	}
	if !validPairFormat(input.Pair) {
		return errors.NewValidationError("pair", input.Pair, "want BASE/QUOTE, e.g. EUR/USD")
	}
	if !models.ValidDirection(input.Direction) {
		return errors.NewValidationError("direction", input.Direction, "must be Buy or Sell")
	}
	if input.EntryPrice <= 0 {
		return errors.NewValidationError("entry", input.EntryPrice, "must be positive")
	}
	if input.ExitPrice <= 0 {
		return errors.NewValidationError("exit", input.ExitPrice, "must be positive")
	}
	if input.LotSize <= 0 {
		return errors.NewValidationError("lot", input.LotSize, "must be positive")
	}
	if _, err := time.Parse(models.DateLayout, input.Date); err != nil {
		return errors.NewValidationError("date", input.Date, "want "+models.DateLayout)
	}
	if _, err := time.Parse(models.TimeLayout, input.Time); err != nil {
		return errors.NewValidationError("time", input.Time, "want "+models.TimeLayout)
	}
	if input.Risk < 0 {
		return errors.NewValidationError("risk", input.Risk, "must be non-negative")
	}
	if input.Reward < 0 {
		return errors.NewValidationError("reward", input.Reward, "must be non-negative")
	}
	if !models.ValidTimeframe(input.Timeframe) {
		return errors.NewValidationError("timeframe", input.Timeframe, "unknown timeframe")
	}
	return nil
}

func validPairFormat(pair string) bool {
	var slash int
	for i := 0; i < len(pair); i++ {
		if pair[i] == '/' {
			slash++
			if i == 0 || i == len(pair)-1 {
				return false
			}
		}
	}
	return slash == 1
}
