// Package dates resolves "now", relative date tokens and named time frames
// in a fixed civil timezone. All date math downstream of the interpreter
// goes through a single Resolver so tests can freeze the clock.
package dates

import (
	"strings"
	"time"

	"github.com/schar1067/Payments-assistant-bot/internal/core"
)

// DefaultTimezone is the civil zone of the target users (UTC-5, no DST).
const DefaultTimezone = "America/Bogota"

// Rolling window sizes for the named time frames. These are deliberately
// "now minus N days", not calendar-aligned periods.
const (
	weekWindowDays  = 7
	monthWindowDays = 30
	yearWindowDays  = 365
)

type Resolver struct {
	loc   *time.Location
	nowFn func() time.Time
}

// New builds a Resolver for the named timezone. An unloadable name falls
// back to a fixed UTC-5 offset so the bot keeps a coherent civil calendar.
func New(timezone string) *Resolver {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		loc = time.FixedZone("-05", -5*60*60)
	}
	return &Resolver{loc: loc, nowFn: time.Now}
}

// NewWithClock builds a Resolver with an injected clock. Tests use this to
// pin "now" to a known instant.
func NewWithClock(timezone string, now func() time.Time) *Resolver {
	r := New(timezone)
	r.nowFn = now
	return r
}

// Location exposes the configured zone for civil-date derivation.
func (r *Resolver) Location() *time.Location {
	return r.loc
}

// Now returns the current instant expressed in the configured zone.
func (r *Resolver) Now() time.Time {
	return r.nowFn().In(r.loc)
}

// ResolveRelative maps the relative tokens the translator emits to an
// absolute instant. Unrecognized tokens resolve to nothing; the caller
// falls back to Now.
func (r *Resolver) ResolveRelative(token string) (time.Time, bool) {
	now := r.Now()
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "hoy":
		return now, true
	case "ayer":
		return now.AddDate(0, 0, -1), true
	case "anteayer":
		return now.AddDate(0, 0, -2), true
	case "mañana":
		return now.AddDate(0, 0, 1), true
	default:
		return time.Time{}, false
	}
}

// RangeFor maps a time frame to an inclusive DateRange. today and yesterday
// cover the exact civil day; week, month and year are rolling windows ending
// at now. An unrecognized frame silently gets the 30-day window — observed
// behavior, kept on purpose pending a product decision.
func (r *Resolver) RangeFor(frame core.TimeFrame) core.DateRange {
	now := r.Now()
	switch frame {
	case core.FrameToday:
		return r.civilDay(now)
	case core.FrameYesterday:
		return r.civilDay(now.AddDate(0, 0, -1))
	case core.FrameWeek:
		return core.DateRange{Start: now.AddDate(0, 0, -weekWindowDays), End: now}
	case core.FrameYear:
		return core.DateRange{Start: now.AddDate(0, 0, -yearWindowDays), End: now}
	default:
		return core.DateRange{Start: now.AddDate(0, 0, -monthWindowDays), End: now}
	}
}

// civilDay bounds one wall-clock date: 00:00:00 to 23:59:59.999999.
func (r *Resolver) civilDay(t time.Time) core.DateRange {
	y, m, d := t.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, r.loc)
	end := time.Date(y, m, d, 23, 59, 59, 999999000, r.loc)
	return core.DateRange{Start: start, End: end}
}
