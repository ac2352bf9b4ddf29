package retail

import (
	"testing"
	"time"
)

func TestNewWindow(t *testing.T) {
	start := time.Date(2025, 6, 1, 15, 30, 0, 0, time.UTC)
	w := NewWindow(start, 14)

	wantStart := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)

	if !w.Start.Equal(wantStart) {
		t.Errorf("Start = %v, want %v (time of day should truncate)", w.Start, wantStart)
	}
	if !w.End.Equal(wantEnd) {
		t.Errorf("End = %v, want %v", w.End, wantEnd)
	}
}

func TestWindowDaysAndSpan(t *testing.T) {
	tests := []struct {
		name     string
		days     int
		wantDays int
		wantSpan int
	}{
		{"single day", 1, 1, 0},
		{"two weeks", 14, 14, 13},
		{"thirty days", 30, 30, 29},
	}

	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWindow(start, tt.days)
			if got := w.Days(); got != tt.wantDays {
				t.Errorf("Days() = %d, want %d", got, tt.wantDays)
			}
			if got := w.Span(); got != tt.wantSpan {
				t.Errorf("Span() = %d, want %d", got, tt.wantSpan)
			}
		})
	}
}

func TestWindowValidate(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	good := Window{Start: start, End: start.AddDate(0, 0, 13)}
	if err := good.Validate(); err != nil {
		t.Errorf("Valid window rejected: %v", err)
	}

	sameDay := Window{Start: start, End: start}
	if err := sameDay.Validate(); err != nil {
		t.Errorf("Single-day window rejected: %v", err)
	}

	inverted := Window{Start: start, End: start.AddDate(0, 0, -1)}
	if err := inverted.Validate(); err == nil {
		t.Error("Inverted window accepted")
	}
}

func TestWindowOpenCloseTimes(t *testing.T) {
	w := NewWindow(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), 14)

	if got := w.OpenTime(); !got.Equal(w.Start) {
		t.Errorf("OpenTime = %v, want %v", got, w.Start)
	}

	wantClose := time.Date(2025, 6, 14, 23, 59, 0, 0, time.UTC)
	if got := w.CloseTime(); !got.Equal(wantClose) {
		t.Errorf("CloseTime = %v, want %v", got, wantClose)
	}
}
