// Package utils provides shared utility functions.
package utils

import (
	"fmt"
	"math"
	"strings"
)

// FormatCurrency formats a dollar amount with thousands separators.
func FormatCurrency(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	str := fmt.Sprintf("%.2f", amount)
	parts := strings.Split(str, ".")
	intPart := parts[0]
	decPart := parts[1]

	result := "$" + groupThousands(intPart) + "." + decPart
	if negative {
		result = "-" + result
	}
	return result
}

// groupThousands inserts a comma every three digits from the right.
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	result := s[n-3:]
	s = s[:n-3]
	for len(s) > 0 {
		if len(s) >= 3 {
			result = s[len(s)-3:] + "," + result
			s = s[:len(s)-3]
		} else {
			result = s + "," + result
			s = ""
		}
	}
	return result
}

// FormatPercent formats a percentage with an explicit sign.
func FormatPercent(value float64) string {
	sign := ""
	if value > 0 {
		sign = "+"
	}
	return fmt.Sprintf("%s%.2f%%", sign, value)
}

// FormatPips formats a pip amount with an explicit sign for gains.
func FormatPips(pips float64) string {
	sign := ""
	if pips > 0 {
		sign = "+"
	}
	if pips == math.Trunc(pips) {
		return fmt.Sprintf("%s%.0f pips", sign, pips)
	}
	return fmt.Sprintf("%s%.1f pips", sign, pips)
}

// FormatRatio formats a unitless ratio such as profit factor.
func FormatRatio(value float64) string {
	return fmt.Sprintf("%.2f", value)
}

// TruncateString shortens s to max runes, ellipsis included.
func TruncateString(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
