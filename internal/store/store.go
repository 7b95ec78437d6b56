// Package store holds the authoritative in-memory trade collection.
// Nothing is persisted: the store lives for one process and is seeded
// from the bundled sample dataset. A persistence collaborator could be
// slotted in behind the same interface later.
package store

import (
	"math"
	"sort"
	"sync"

	"fxjournal/internal/errors"
	"fxjournal/internal/models"
)

// PipMultiplier converts a raw price move into pips. Fixed for the
// four-decimal quote convention the journal uses.
const PipMultiplier = 10000

// SortField is one of the closed set of sortable trade fields.
type SortField string

const (
	SortByID        SortField = "id"
	SortByPair      SortField = "pair"
	SortByDirection SortField = "direction"
	SortByEntry     SortField = "entry"
	SortByExit      SortField = "exit"
	SortByLotSize   SortField = "lot"
	SortByProfit    SortField = "profit"
	SortByDate      SortField = "date"
	SortByStatus    SortField = "status"
)

// ParseSortField maps a user-supplied key onto the closed sort enum.
func ParseSortField(s string) (SortField, error) {
	switch SortField(s) {
	case SortByID, SortByPair, SortByDirection, SortByEntry, SortByExit,
		SortByLotSize, SortByProfit, SortByDate, SortByStatus:
		return SortField(s), nil
	}
	return "", errors.Wrapf(errors.ErrInvalidSortKey, "sort field %q", s)
}

// NewTrade carries the caller-supplied fields of a trade about to be
// recorded. Profit, status and id are derived by Add.
type NewTrade struct {
	Pair        string
	Direction   models.Direction
	EntryPrice  float64
	ExitPrice   float64
	LotSize     float64
	Date        string
	Time        string
	Risk        float64
	Reward      float64
	Strategy    string
	Notes       string
	StopLoss    float64
	TakeProfit  float64
	Timeframe   models.Timeframe
	Tags        []string
	Mood        string
	Screenshots []models.Screenshot
}

// TradeStore is the ordered trade collection. Newest trades sit first
// unless the caller re-sorts. All methods are safe for concurrent use,
// though the journal drives it from a single goroutine.
type TradeStore struct {
	mu        sync.RWMutex
	trades    []models.Trade
	sortField SortField
	sortAsc   bool
}

// New returns an empty store.
func New() *TradeStore {
	return &TradeStore{}
}

// NewWithTrades returns a store primed with the given trades, first
// element frontmost.
func NewWithTrades(trades []models.Trade) *TradeStore {
	s := &TradeStore{trades: make([]models.Trade, len(trades))}
	copy(s.trades, trades)
	return s
}

// List returns a copy of the trades in their current order.
func (s *TradeStore) List() []models.Trade {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Trade, len(s.trades))
	copy(out, s.trades)
	return out
}

// Len returns the number of trades on record.
func (s *TradeStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.trades)
}

// Get returns the trade with the given id.
func (s *TradeStore) Get(id int) (models.Trade, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.trades {
		if t.ID == id {
			return t, true
		}
	}
	return models.Trade{}, false
}

// Add records a new trade at the front of the store. Profit is derived
// from the entry/exit prices and direction, rounded to the nearest pip;
// status follows the sign of profit; the id is one beyond the highest
// id currently on record, so deleting the newest trade frees its id.
func (s *TradeStore) Add(input NewTrade) models.Trade {
	s.mu.Lock()
	defer s.mu.Unlock()

	profit := ComputeProfit(input.Direction, input.EntryPrice, input.ExitPrice)

	maxID := 0
	for _, t := range s.trades {
		if t.ID > maxID {
			maxID = t.ID
		}
	}

	trade := models.Trade{
		ID:          maxID + 1,
		Pair:        input.Pair,
		Direction:   input.Direction,
		EntryPrice:  input.EntryPrice,
		ExitPrice:   input.ExitPrice,
		LotSize:     input.LotSize,
		Profit:      profit,
		Date:        input.Date,
		Time:        input.Time,
		Status:      models.StatusForProfit(profit),
		Risk:        input.Risk,
		Reward:      input.Reward,
		Strategy:    input.Strategy,
		Notes:       input.Notes,
		StopLoss:    input.StopLoss,
		TakeProfit:  input.TakeProfit,
		Timeframe:   input.Timeframe,
		Tags:        input.Tags,
		Mood:        input.Mood,
		Screenshots: input.Screenshots,
	}

	s.trades = append([]models.Trade{trade}, s.trades...)
	return trade
}

// Delete removes the trade with the given id. Missing ids are a no-op;
// the returned bool reports whether anything was removed.
func (s *TradeStore) Delete(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.trades {
		if t.ID == id {
			s.trades = append(s.trades[:i], s.trades[i+1:]...)
			return true
		}
	}
	return false
}

// Sort stably reorders the store by the given field. Repeating the same
// field toggles between ascending and descending; switching fields
// starts ascending again.
func (s *TradeStore) Sort(field SortField) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sortField == field {
		s.sortAsc = !s.sortAsc
	} else {
		s.sortField = field
		s.sortAsc = true
	}

	less := comparator(field)
	asc := s.sortAsc
	sort.SliceStable(s.trades, func(i, j int) bool {
		if asc {
			return less(s.trades[i], s.trades[j])
		}
		return less(s.trades[j], s.trades[i])
	})
}

// ComputeProfit converts an entry/exit price pair into signed pips.
// Buys profit when price rises, sells when it falls.
func ComputeProfit(dir models.Direction, entry, exit float64) float64 {
	move := exit - entry
	if dir == models.Sell {
		move = entry - exit
	}
	return math.Round(move * PipMultiplier)
}

func comparator(field SortField) func(a, b models.Trade) bool {
	switch field {
	case SortByPair:
		return func(a, b models.Trade) bool { return a.Pair < b.Pair }
	case SortByDirection:
		return func(a, b models.Trade) bool { return a.Direction < b.Direction }
	case SortByEntry:
		return func(a, b models.Trade) bool { return a.EntryPrice < b.EntryPrice }
	case SortByExit:
		return func(a, b models.Trade) bool { return a.ExitPrice < b.ExitPrice }
	case SortByLotSize:
		return func(a, b models.Trade) bool { return a.LotSize < b.LotSize }
	case SortByProfit:
		return func(a, b models.Trade) bool { return a.Profit < b.Profit }
	case SortByDate:
		return func(a, b models.Trade) bool { return a.Timestamp().Before(b.Timestamp()) }
	case SortByStatus:
		return func(a, b models.Trade) bool { return a.Status < b.Status }
	default:
		return func(a, b models.Trade) bool { return a.ID < b.ID }
	}
}
