package cli

import (
	"fmt"
	"time"
)

// FormatDate formats a date for display.
func FormatDate(t time.Time) string {
	return t.Format("02-Jan-2006")
}

// FormatTime formats a time for display.
func FormatTime(t time.Time) string {
	return t.Format("15:04")
}

// FormatDateTime formats a date and time for display.
func FormatDateTime(t time.Time) string {
	return t.Format("02-Jan-2006 15:04")
}

// FormatPrice formats a quote price. Forex quotes carry four decimals;
// JPY-style quotes with larger magnitudes drop to two.
func FormatPrice(price float64) string {
	if price >= 50 {
		return fmt.Sprintf("%.2f", price)
	}
	return fmt.Sprintf("%.4f", price)
}

// FormatRelativeTime renders a timestamp the way an activity feed
// expects: "Just now", "10 min ago", "3 hours ago", "Yesterday", or
// the date for anything older.
func FormatRelativeTime(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "Just now"
	case d < time.Hour:
		return fmt.Sprintf("%d min ago", int(d.Minutes()))
	case d < 24*time.Hour:
		hours := int(d.Hours())
		if hours == 1 {
			return "1 hour ago"
		}
		return fmt.Sprintf("%d hours ago", hours)
	case d < 48*time.Hour:
		return "Yesterday"
	default:
		return FormatDate(t)
	}
}

// FormatHoldingTime renders an average holding time in hours.
func FormatHoldingTime(hours float64) string {
	if hours == 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.1fh", hours)
}
