// Package analytics derives summary statistics from trade collections.
// Every function here is pure: inputs are never mutated and no state is
// kept between calls, so callers may recompute wholesale after each
// store mutation.
package analytics

import (
	"strconv"
	"strings"
	"time"

	"fxjournal/internal/errors"
	"fxjournal/internal/models"
)

// Window selects the lookback period for derived views: either every
// trade on record, or the trailing number of days.
type Window struct {
	All  bool
	Days int
}

// AllTime matches every trade regardless of age.
var AllTime = Window{All: true}

// LastDays returns a window covering the trailing number of days.
func LastDays(days int) Window {
	return Window{Days: days}
}

// ParseWindow interprets a time-range selector: "all" or a
// non-negative day count such as "7" or "30".
func ParseWindow(s string) (Window, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "all" {
		return AllTime, nil
	}
	days, err := strconv.Atoi(s)
	if err != nil || days < 0 {
		return Window{}, errors.Wrapf(errors.ErrInvalidRange, "%q (want \"all\" or a day count)", s)
	}
	return LastDays(days), nil
}

// String returns the selector form accepted by ParseWindow.
func (w Window) String() string {
	if w.All {
		return "all"
	}
	return strconv.Itoa(w.Days)
}

// FilterByWindow returns the trades whose combined date+time timestamp
// falls on or after now minus the window. Order is preserved and the
// input is never modified; the all-time window returns the input
// unchanged.
func FilterByWindow(trades []models.Trade, w Window, now time.Time) []models.Trade {
	if w.All {
		return trades
	}
	cutoff := now.AddDate(0, 0, -w.Days)
	out := make([]models.Trade, 0, len(trades))
	for _, t := range trades {
		if !t.Timestamp().Before(cutoff) {
			out = append(out, t)
		}
	}
	return out
}
