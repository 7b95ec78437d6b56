package store

import (
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"fxjournal/internal/models"
)

func newTrade(pair string, dir models.Direction, entry, exit float64) NewTrade {
	return NewTrade{
		Pair:       pair,
		Direction:  dir,
		EntryPrice: entry,
		ExitPrice:  exit,
		LotSize:    1,
		Date:       "2026-08-30",
		Time:       "09:00",
	}
}

func TestAddDerivesProfitAndStatus(t *testing.T) {
	s := New()

	win := s.Add(newTrade("EUR/USD", models.Buy, 1.0820, 1.0867))
	if win.Profit != 47 {
		t.Errorf("buy profit = %v, want 47", win.Profit)
	}
	if win.Status != models.Win {
		t.Errorf("status = %s, want Win", win.Status)
	}

	loss := s.Add(newTrade("GBP/USD", models.Sell, 1.2485, 1.2540))
	if loss.Profit != -55 {
		t.Errorf("sell profit = %v, want -55", loss.Profit)
	}
	if loss.Status != models.Loss {
		t.Errorf("status = %s, want Loss", loss.Status)
	}
}

func TestAddZeroProfitIsLoss(t *testing.T) {
	s := New()
	flat := s.Add(newTrade("EUR/USD", models.Buy, 1.1000, 1.1000))
	if flat.Profit != 0 {
		t.Fatalf("profit = %v, want 0", flat.Profit)
	}
	if flat.Status != models.Loss {
		t.Errorf("zero-profit trade status = %s, want Loss", flat.Status)
	}
}

func TestAddPrepends(t *testing.T) {
	s := New()
	s.Add(newTrade("EUR/USD", models.Buy, 1.10, 1.11))
	s.Add(newTrade("GBP/USD", models.Buy, 1.25, 1.26))

	trades := s.List()
	if trades[0].Pair != "GBP/USD" || trades[1].Pair != "EUR/USD" {
		t.Errorf("newest trade should sit first, got %s then %s", trades[0].Pair, trades[1].Pair)
	}
}

func TestAddIDIsMaxPlusOne(t *testing.T) {
	s := New()
	for i := 0; i < 3; i++ {
		s.Add(newTrade("EUR/USD", models.Buy, 1.10, 1.11))
	}
	// Ids now 1,2,3.
	if got := s.Add(newTrade("EUR/USD", models.Buy, 1.10, 1.11)); got.ID != 4 {
		t.Fatalf("next id = %d, want 4", got.ID)
	}

	// Deleting the highest id frees it for reuse: max-based derivation.
	if !s.Delete(4) {
		t.Fatal("expected to delete trade 4")
	}
	if got := s.Add(newTrade("EUR/USD", models.Buy, 1.10, 1.11)); got.ID != 4 {
		t.Errorf("id after deleting 4 = %d, want 4 again", got.ID)
	}

	// Deleting a low id must NOT shift the next id: max-based, not
	// count-based. Store holds [4,1,2,3] minus id 1 = three trades.
	if !s.Delete(1) {
		t.Fatal("expected to delete trade 1")
	}
	if got := s.Add(newTrade("EUR/USD", models.Buy, 1.10, 1.11)); got.ID != 5 {
		t.Errorf("id after deleting low id = %d, want 5 (max+1, not count+1)", got.ID)
	}
}

func TestDeleteMissingIsNoOp(t *testing.T) {
	s := New()
	s.Add(newTrade("EUR/USD", models.Buy, 1.10, 1.11))

	if s.Delete(99) {
		t.Error("deleting a missing id should report false")
	}
	if s.Len() != 1 {
		t.Errorf("store length = %d, want 1 after no-op delete", s.Len())
	}
}

func TestGet(t *testing.T) {
	s := New()
	added := s.Add(newTrade("EUR/USD", models.Buy, 1.10, 1.11))

	got, ok := s.Get(added.ID)
	if !ok || got.Pair != "EUR/USD" {
		t.Errorf("Get(%d) = %+v, %v", added.ID, got, ok)
	}
	if _, ok := s.Get(42); ok {
		t.Error("Get on a missing id should report false")
	}
}

func TestSortToggles(t *testing.T) {
	s := NewWithTrades([]models.Trade{
		{ID: 1, Pair: "EUR/USD", Profit: 47},
		{ID: 2, Pair: "GBP/USD", Profit: -55},
		{ID: 3, Pair: "AUD/USD", Profit: 10},
	})

	s.Sort(SortByProfit)
	trades := s.List()
	if trades[0].Profit != -55 || trades[2].Profit != 47 {
		t.Errorf("first sort should be ascending: %v", profits(trades))
	}

	s.Sort(SortByProfit)
	trades = s.List()
	if trades[0].Profit != 47 || trades[2].Profit != -55 {
		t.Errorf("repeat sort should flip to descending: %v", profits(trades))
	}

	// Switching fields resets to ascending.
	s.Sort(SortByPair)
	trades = s.List()
	if trades[0].Pair != "AUD/USD" {
		t.Errorf("field switch should restart ascending, got %s first", trades[0].Pair)
	}
}

func TestSortByDateUsesTimestamps(t *testing.T) {
	s := NewWithTrades([]models.Trade{
		{ID: 1, Pair: "EUR/USD", Date: "2026-08-30", Time: "15:00"},
		{ID: 2, Pair: "GBP/USD", Date: "2026-08-29", Time: "09:00"},
		{ID: 3, Pair: "AUD/USD", Date: "2026-08-30", Time: "08:00"},
	})

	s.Sort(SortByDate)
	trades := s.List()
	wantOrder := []int{2, 3, 1}
	for i, want := range wantOrder {
		if trades[i].ID != want {
			t.Errorf("position %d: id %d, want %d", i, trades[i].ID, want)
		}
	}
}

func TestParseSortField(t *testing.T) {
	for _, valid := range []string{"id", "pair", "direction", "entry", "exit", "lot", "profit", "date", "status"} {
		if _, err := ParseSortField(valid); err != nil {
			t.Errorf("ParseSortField(%q) unexpected error: %v", valid, err)
		}
	}
	if _, err := ParseSortField("volume"); err == nil {
		t.Error("ParseSortField should reject unknown fields")
	}
}

func profits(trades []models.Trade) []float64 {
	out := make([]float64, len(trades))
	for i, tr := range trades {
		out[i] = tr.Profit
	}
	return out
}

// Property: ComputeProfit is antisymmetric in direction and always a
// whole pip count.
func TestPropertyComputeProfit(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("buy and sell profits mirror each other", prop.ForAll(
		func(entry, exit float64) bool {
			buy := ComputeProfit(models.Buy, entry, exit)
			sell := ComputeProfit(models.Sell, entry, exit)
			if buy != -sell {
				t.Logf("buy %v != -sell %v for entry %v exit %v", buy, sell, entry, exit)
				return false
			}
			if buy != float64(int64(buy)) {
				t.Logf("profit %v is not a whole pip count", buy)
				return false
			}
			return true
		},
		gen.Float64Range(0.5, 2.0),
		gen.Float64Range(0.5, 2.0),
	))

	properties.TestingRun(t)
}

// Property: ids stay unique through arbitrary add/delete interleavings.
func TestPropertyUniqueIDs(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("no duplicate ids after adds and deletes", prop.ForAll(
		func(ops []int8) bool {
			s := New()
			for _, op := range ops {
				if op >= 0 {
					s.Add(newTrade("EUR/USD", models.Buy, 1.10, 1.11))
				} else {
					s.Delete(int(-op))
				}
			}
			seen := make(map[int]bool)
			for _, tr := range s.List() {
				if seen[tr.ID] {
					t.Logf("duplicate id %d", tr.ID)
					return false
				}
				seen[tr.ID] = true
			}
			return true
		},
		gen.SliceOf(gen.Int8Range(-10, 10)),
	))

	properties.TestingRun(t)
}

func TestNewSeeded(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.Local)
	s, err := NewSeeded(now)
	if err != nil {
		t.Fatalf("NewSeeded: %v", err)
	}
	trades := s.List()
	if len(trades) == 0 {
		t.Fatal("seeded store is empty")
	}

	for _, tr := range trades {
		if !models.ValidDirection(tr.Direction) {
			t.Errorf("trade %d: invalid direction %q", tr.ID, tr.Direction)
		}
		if tr.Status != models.StatusForProfit(tr.Profit) {
			t.Errorf("trade %d: status %s does not match profit %v", tr.ID, tr.Status, tr.Profit)
		}
		if _, err := time.ParseInLocation(models.DateLayout, tr.Date, time.Local); err != nil {
			t.Errorf("trade %d: bad date %q", tr.ID, tr.Date)
		}
	}

	// Dates are anchored to now, so the newest trade lands on now's date.
	if trades[0].Date != now.Format(models.DateLayout) {
		t.Errorf("newest seed date = %s, want %s", trades[0].Date, now.Format(models.DateLayout))
	}
}
