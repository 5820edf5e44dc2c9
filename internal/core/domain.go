package core

import (
	"errors"
	"strings"
	"time"
)

const (
	KindPayment RecordKind = "payment"
	KindDebt    RecordKind = "debt"
)

const (
	AddPayment    CommandKind = "add_payment"
	AddDebt       CommandKind = "add_debt"
	QueryPayments CommandKind = "query_payments"
	QueryDebts    CommandKind = "query_debts"
)

const (
	FrameToday     TimeFrame = "today"
	FrameYesterday TimeFrame = "yesterday"
	FrameWeek      TimeFrame = "week"
	FrameMonth     TimeFrame = "month"
	FrameYear      TimeFrame = "year"
)

// CivilDateLayout is the wall-clock date format persisted alongside the
// full-precision timestamp. Display and round-trip reconstruction both
// depend on the string form.
const CivilDateLayout = "2006-01-02"

type (
	RecordKind  string
	CommandKind string
	TimeFrame   string

	// Record is a single financial entry inside one user's partition.
	// Immutable after insert; the store assigns its identifier.
	Record struct {
		Kind         RecordKind
		Counterparty string // recipient of a payment, or debtor of a debt
		Amount       int64  // whole currency units, always positive
		Metadata     string // reason for the transaction
		CivilDate    string // derived from RecordedAt in the configured zone
		RecordedAt   time.Time
	}

	// Command is the structured form of one user message, produced by the
	// translator and consumed exactly once.
	Command struct {
		Kind   CommandKind
		Params CommandParams
	}

	CommandParams struct {
		Recipient string
		Debtor    string
		Amount    int64
		Metadata  string
		Date      string // relative token such as "ayer", may be empty
		TimeFrame TimeFrame
	}

	// QueryFilter carries the optional criteria of a history query.
	QueryFilter struct {
		Counterparty string
		TimeFrame    TimeFrame
	}

	// DateRange is an inclusive interval, recomputed on every request
	// because "today" changes across midnight.
	DateRange struct {
		Start time.Time
		End   time.Time
	}
)

var (
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrEmptyCounterparty  = errors.New("empty counterparty")
	ErrInvalidCivilDate   = errors.New("invalid civil date")
	ErrZeroRecordedAt     = errors.New("zero recorded_at")
	ErrInconsistentDates  = errors.New("civil date does not match recorded_at")
	ErrUnknownRecordKind  = errors.New("unknown record kind")
	ErrUnsupportedCommand = errors.New("unsupported command kind")
)

// Counterparty returns whichever party field the command kind uses.
func (p CommandParams) Counterparty() string {
	if p.Recipient != "" {
		return p.Recipient
	}
	return p.Debtor
}

// RecordKind maps a command kind to the record partition it targets.
func (k CommandKind) RecordKind() (RecordKind, error) {
	switch k {
	case AddPayment, QueryPayments:
		return KindPayment, nil
	case AddDebt, QueryDebts:
		return KindDebt, nil
	default:
		return "", ErrUnsupportedCommand
	}
}

// IsQuery reports whether the command reads history instead of adding to it.
func (k CommandKind) IsQuery() bool {
	return k == QueryPayments || k == QueryDebts
}

func (k RecordKind) Validate() error {
	switch k {
	case KindPayment, KindDebt:
		return nil
	default:
		return ErrUnknownRecordKind
	}
}

// Validate checks the record invariants before it reaches a store.
func (r Record) Validate() error {
	if err := r.Kind.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(r.Counterparty) == "" {
		return ErrEmptyCounterparty
	}
	if r.Amount <= 0 {
		return ErrInvalidAmount
	}
	if r.RecordedAt.IsZero() {
		return ErrZeroRecordedAt
	}
	day, err := time.ParseInLocation(CivilDateLayout, r.CivilDate, r.RecordedAt.Location())
	if err != nil {
		return ErrInvalidCivilDate
	}
	y1, m1, d1 := day.Date()
	y2, m2, d2 := r.RecordedAt.Date()
	if y1 != y2 || m1 != m2 || d1 != d2 {
		return ErrInconsistentDates
	}
	return nil
}

// IsEmpty reports whether the filter carries no criteria at all.
func (f QueryFilter) IsEmpty() bool {
	return f.Counterparty == "" && f.TimeFrame == ""
}

// Contains reports whether t falls inside the inclusive range.
func (dr DateRange) Contains(t time.Time) bool {
	return !t.Before(dr.Start) && !t.After(dr.End)
}
