//-------------------------------------------------------------------------
//
// retailgen - synthetic retail dataset generator
//
// Copyright (c) 2025 - 2026
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package retail

import (
	"fmt"
	"time"
)

// Window is an inclusive date range. Start and End are dates (midnight
// UTC); the order walk covers 00:00 on Start through 23:59 on End.
type Window struct {
	Start time.Time
	End   time.Time
}

// NewWindow builds a window of n days ending such that it starts on
// start. Both endpoints are truncated to midnight UTC.
func NewWindow(start time.Time, days int) Window {
	d := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	return Window{Start: d, End: d.AddDate(0, 0, days-1)}
}

// Validate rejects degenerate windows.
func (w Window) Validate() error {
	if w.End.Before(w.Start) {
		return fmt.Errorf("window end %s before start %s",
			w.End.Format("2006-01-02"), w.Start.Format("2006-01-02"))
	}
	return nil
}

// Days returns the inclusive day count.
func (w Window) Days() int {
	return int(w.End.Sub(w.Start).Hours()/24) + 1
}

// Span returns End minus Start in whole days (exclusive count).
func (w Window) Span() int {
	return int(w.End.Sub(w.Start).Hours() / 24)
}

// OpenTime is the first order minute of the window (00:00 on Start).
func (w Window) OpenTime() time.Time {
	return w.Start
}

// CloseTime is the last order minute of the window (23:59 on End).
func (w Window) CloseTime() time.Time {
	return w.End.Add(23*time.Hour + 59*time.Minute)
}
