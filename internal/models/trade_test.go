package models

import (
	"testing"
	"time"
)

func TestStatusForProfit(t *testing.T) {
	tests := []struct {
		profit float64
		want   Status
	}{
		{47, Win},
		{0.5, Win},
		{0, Loss}, // flat trades close as losses
		{-55, Loss},
	}
	for _, tt := range tests {
		if got := StatusForProfit(tt.profit); got != tt.want {
			t.Errorf("StatusForProfit(%v) = %s, want %s", tt.profit, got, tt.want)
		}
	}
}

func TestValidDirection(t *testing.T) {
	if !ValidDirection(Buy) || !ValidDirection(Sell) {
		t.Error("Buy and Sell must be valid")
	}
	if ValidDirection("Long") || ValidDirection("") {
		t.Error("unknown directions must be invalid")
	}
}

func TestValidTimeframe(t *testing.T) {
	for _, tf := range []Timeframe{"", M1, M5, M15, M30, H1, H4, D1, W1} {
		if !ValidTimeframe(tf) {
			t.Errorf("timeframe %q should be valid", tf)
		}
	}
	if ValidTimeframe("H2") || ValidTimeframe("daily") {
		t.Error("unknown timeframes must be invalid")
	}
}

func TestTimestamp(t *testing.T) {
	tr := Trade{Date: "2026-08-30", Time: "14:32"}
	want := time.Date(2026, 8, 30, 14, 32, 0, 0, time.Local)
	if got := tr.Timestamp(); !got.Equal(want) {
		t.Errorf("Timestamp() = %v, want %v", got, want)
	}
}

func TestTimestampMalformed(t *testing.T) {
	for _, tr := range []Trade{
		{Date: "30/08/2026", Time: "14:32"},
		{Date: "2026-08-30", Time: "2pm"},
		{},
	} {
		if !tr.Timestamp().IsZero() {
			t.Errorf("malformed trade %+v should sort to the zero time", tr)
		}
	}
}
