package dates

import (
	"testing"
	"time"

	"github.com/schar1067/Payments-assistant-bot/internal/core"
)

func fixedResolver(t *testing.T) (*Resolver, time.Time) {
	t.Helper()
	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	now := time.Date(2025, 3, 15, 10, 30, 0, 0, loc)
	return NewWithClock(DefaultTimezone, func() time.Time { return now }), now
}

func TestResolveRelative(t *testing.T) {
	r, now := fixedResolver(t)

	cases := []struct {
		token string
		days  int
	}{
		{"hoy", 0},
		{"ayer", -1},
		{"anteayer", -2},
		{"mañana", 1},
		{"HOY", 0},
		{"  Ayer ", -1},
	}
	for _, tc := range cases {
		got, ok := r.ResolveRelative(tc.token)
		if !ok {
			t.Fatalf("token %q: expected resolution", tc.token)
		}
		want := now.AddDate(0, 0, tc.days)
		if !got.Equal(want) {
			t.Fatalf("token %q: got %v, want %v", tc.token, got, want)
		}
	}
}

func TestResolveRelativeUnknownToken(t *testing.T) {
	r, _ := fixedResolver(t)
	for _, token := range []string{"", "pasado mañana", "tomorrow", "12.12.2025"} {
		if _, ok := r.ResolveRelative(token); ok {
			t.Fatalf("token %q: expected no resolution", token)
		}
	}
}

func TestRangeForCivilDays(t *testing.T) {
	r, now := fixedResolver(t)
	loc := r.Location()

	today := r.RangeFor(core.FrameToday)
	wantStart := time.Date(2025, 3, 15, 0, 0, 0, 0, loc)
	wantEnd := time.Date(2025, 3, 15, 23, 59, 59, 999999000, loc)
	if !today.Start.Equal(wantStart) || !today.End.Equal(wantEnd) {
		t.Fatalf("today: got [%v, %v], want [%v, %v]", today.Start, today.End, wantStart, wantEnd)
	}
	if !today.Contains(now) {
		t.Fatalf("today range should contain now")
	}

	yesterday := r.RangeFor(core.FrameYesterday)
	wantStart = time.Date(2025, 3, 14, 0, 0, 0, 0, loc)
	wantEnd = time.Date(2025, 3, 14, 23, 59, 59, 999999000, loc)
	if !yesterday.Start.Equal(wantStart) || !yesterday.End.Equal(wantEnd) {
		t.Fatalf("yesterday: got [%v, %v], want [%v, %v]", yesterday.Start, yesterday.End, wantStart, wantEnd)
	}
}

func TestRangeForRollingWindows(t *testing.T) {
	r, now := fixedResolver(t)

	cases := []struct {
		frame core.TimeFrame
		days  int
	}{
		{core.FrameWeek, 7},
		{core.FrameMonth, 30},
		{core.FrameYear, 365},
		// Unknown frames silently get the month window.
		{core.TimeFrame("quarter"), 30},
		{core.TimeFrame(""), 30},
	}
	for _, tc := range cases {
		got := r.RangeFor(tc.frame)
		wantStart := now.AddDate(0, 0, -tc.days)
		if !got.Start.Equal(wantStart) || !got.End.Equal(now) {
			t.Fatalf("frame %q: got [%v, %v], want [%v, %v]",
				tc.frame, got.Start, got.End, wantStart, now)
		}
	}
}

func TestNewFallsBackToFixedOffset(t *testing.T) {
	r := NewWithClock("No/Such-Zone", func() time.Time {
		return time.Date(2025, 3, 15, 20, 0, 0, 0, time.UTC)
	})
	now := r.Now()
	_, offset := now.Zone()
	if offset != -5*60*60 {
		t.Fatalf("expected UTC-5 fallback, got offset %d", offset)
	}
	if now.Hour() != 15 {
		t.Fatalf("expected 20:00 UTC to be 15:00 local, got %d", now.Hour())
	}
}
