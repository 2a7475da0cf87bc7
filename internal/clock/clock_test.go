package clock

import (
	"testing"
	"time"
)

func TestFakeClock(t *testing.T) {
	start := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
	clk := NewFakeClock(start)

	if !clk.Now().Equal(start) {
		t.Errorf("Now() = %v, want %v", clk.Now(), start)
	}

	clk.Advance(90 * time.Second)
	want := start.Add(90 * time.Second)
	if !clk.Now().Equal(want) {
		t.Errorf("after Advance, Now() = %v, want %v", clk.Now(), want)
	}
}

func TestRealClock(t *testing.T) {
	clk := &RealClock{}
	before := time.Now().Add(-time.Minute)
	after := time.Now().Add(time.Minute)

	now := clk.Now()
	if now.Before(before) || now.After(after) {
		t.Errorf("RealClock.Now() = %v, outside plausible window", now)
	}
}
