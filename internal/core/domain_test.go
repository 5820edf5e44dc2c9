package core

import (
	"errors"
	"testing"
	"time"
)

func validRecord() Record {
	recordedAt := time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)
	return Record{
		Kind:         KindPayment,
		Counterparty: "Juan",
		Amount:       50000,
		Metadata:     "almuerzo",
		CivilDate:    "2025-03-15",
		RecordedAt:   recordedAt,
	}
}

func TestRecordValidate(t *testing.T) {
	if err := validRecord().Validate(); err != nil {
		t.Fatalf("expected valid record, got %v", err)
	}

	cases := []struct {
		name    string
		mutate  func(*Record)
		wantErr error
	}{
		{"unknown kind", func(r *Record) { r.Kind = "loan" }, ErrUnknownRecordKind},
		{"empty counterparty", func(r *Record) { r.Counterparty = "  " }, ErrEmptyCounterparty},
		{"zero amount", func(r *Record) { r.Amount = 0 }, ErrInvalidAmount},
		{"negative amount", func(r *Record) { r.Amount = -1 }, ErrInvalidAmount},
		{"zero recorded_at", func(r *Record) { r.RecordedAt = time.Time{} }, ErrZeroRecordedAt},
		{"malformed civil date", func(r *Record) { r.CivilDate = "15/03/2025" }, ErrInvalidCivilDate},
		{"civil date mismatch", func(r *Record) { r.CivilDate = "2025-03-14" }, ErrInconsistentDates},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := validRecord()
			tc.mutate(&r)
			if err := r.Validate(); !errors.Is(err, tc.wantErr) {
				t.Fatalf("got %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestCommandKindRecordKind(t *testing.T) {
	cases := []struct {
		kind    CommandKind
		want    RecordKind
		wantErr bool
	}{
		{AddPayment, KindPayment, false},
		{QueryPayments, KindPayment, false},
		{AddDebt, KindDebt, false},
		{QueryDebts, KindDebt, false},
		{CommandKind("delete_payment"), "", true},
		{CommandKind(""), "", true},
	}
	for _, tc := range cases {
		got, err := tc.kind.RecordKind()
		if tc.wantErr {
			if !errors.Is(err, ErrUnsupportedCommand) {
				t.Fatalf("kind %q: got err %v, want ErrUnsupportedCommand", tc.kind, err)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Fatalf("kind %q: got (%q, %v), want %q", tc.kind, got, err, tc.want)
		}
	}
}

func TestCommandParamsCounterparty(t *testing.T) {
	if got := (CommandParams{Recipient: "Juan"}).Counterparty(); got != "Juan" {
		t.Fatalf("got %q", got)
	}
	if got := (CommandParams{Debtor: "María"}).Counterparty(); got != "María" {
		t.Fatalf("got %q", got)
	}
	if got := (CommandParams{}).Counterparty(); got != "" {
		t.Fatalf("got %q", got)
	}
}

func TestDateRangeContains(t *testing.T) {
	start := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 14, 23, 59, 59, 999999000, time.UTC)
	dr := DateRange{Start: start, End: end}

	if !dr.Contains(start) || !dr.Contains(end) {
		t.Fatalf("range bounds are inclusive")
	}
	if dr.Contains(start.Add(-time.Nanosecond)) || dr.Contains(end.Add(time.Nanosecond)) {
		t.Fatalf("range should exclude instants outside the bounds")
	}
}
