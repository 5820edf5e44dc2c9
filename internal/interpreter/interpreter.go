// Package interpreter executes structured commands: it builds and inserts
// records, resolves history queries through the planner, and renders every
// outcome as a user-facing string. Nothing escapes this boundary as an
// error; each failure path maps to a fixed message and the cause is logged
// before the conversion.
package interpreter

import (
	"context"
	"errors"
	"log/slog"

	"github.com/schar1067/Payments-assistant-bot/internal/amqp"
	"github.com/schar1067/Payments-assistant-bot/internal/core"
	"github.com/schar1067/Payments-assistant-bot/internal/dates"
	"github.com/schar1067/Payments-assistant-bot/internal/planner"
	"github.com/schar1067/Payments-assistant-bot/internal/store"
	"github.com/schar1067/Payments-assistant-bot/internal/translator"
)

// AuditPublisher receives an event after every successful insert. A nil
// publisher disables auditing; a failed publish is logged and swallowed.
type AuditPublisher interface {
	PublishRecordLogged(ctx context.Context, msg *amqp.RecordLoggedMessage) error
}

type Interpreter struct {
	store      store.RecordStore
	planner    *planner.Planner
	dates      *dates.Resolver
	translator translator.Translator
	audit      AuditPublisher
}

func New(st store.RecordStore, pl *planner.Planner, resolver *dates.Resolver, tr translator.Translator, audit AuditPublisher) *Interpreter {
	return &Interpreter{
		store:      st,
		planner:    pl,
		dates:      resolver,
		translator: tr,
		audit:      audit,
	}
}

// Handle is the caller-facing operation: raw text in, response string out.
// It is request-scoped and keeps no state between calls.
func (i *Interpreter) Handle(ctx context.Context, userID, text string) string {
	cmd, err := i.translator.Translate(ctx, text)
	if err != nil {
		slog.ErrorContext(ctx, "translator call failed", "error", err)
		return MsgNotUnderstood
	}
	if cmd == nil {
		return MsgNotUnderstood
	}

	kind, err := cmd.Kind.RecordKind()
	if err != nil {
		slog.WarnContext(ctx, "unsupported command kind", "kind", cmd.Kind)
		return MsgUnsupported
	}

	if cmd.Kind.IsQuery() {
		return i.QueryRecords(ctx, userID, kind, core.QueryFilter{
			Counterparty: cmd.Params.Counterparty(),
			TimeFrame:    cmd.Params.TimeFrame,
		})
	}
	return i.AddRecord(ctx, userID, kind, cmd.Params)
}

// PrepareRecord builds the record an add command describes. A recognized
// relative date token shifts the instant; anything else falls back to now.
// Deterministic for a fixed clock, aside from the store-assigned ID.
func (i *Interpreter) PrepareRecord(kind core.RecordKind, p core.CommandParams) core.Record {
	when := i.dates.Now()
	if p.Date != "" {
		if resolved, ok := i.dates.ResolveRelative(p.Date); ok {
			when = resolved
		}
	}
	return core.Record{
		Kind:         kind,
		Counterparty: p.Counterparty(),
		Amount:       p.Amount,
		Metadata:     p.Metadata,
		CivilDate:    when.Format(core.CivilDateLayout),
		RecordedAt:   when,
	}
}

// AddRecord inserts a new record and returns the confirmation text, or the
// kind's generic failure message on any storage fault.
func (i *Interpreter) AddRecord(ctx context.Context, userID string, kind core.RecordKind, p core.CommandParams) string {
	rec := i.PrepareRecord(kind, p)

	id, err := i.store.Insert(ctx, userID, rec)
	if err != nil {
		slog.ErrorContext(ctx, "record insert failed",
			"kind", kind,
			"counterparty", rec.Counterparty,
			"error", err)
		return messagesFor(kind).addFailed
	}

	if i.audit != nil {
		msg := amqp.NewRecordLoggedMessage(userID, id, string(kind), rec.Amount)
		if err := i.audit.PublishRecordLogged(ctx, msg); err != nil {
			// The record is saved; the audit trail catches up elsewhere.
			slog.ErrorContext(ctx, "audit publish failed", "record_id", id, "error", err)
		}
	}

	return formatConfirmation(kind, rec)
}

// QueryRecords resolves the filter through the planner and renders the
// result. A missing-index fault gets its own message: retrying will not
// help until an operator provisions the index.
func (i *Interpreter) QueryRecords(ctx context.Context, userID string, kind core.RecordKind, f core.QueryFilter) string {
	records, err := i.planner.Search(ctx, userID, kind, f)
	if err != nil {
		if errors.Is(err, store.ErrIndexRequired) {
			slog.ErrorContext(ctx, "query needs an unprovisioned index",
				"kind", kind,
				"counterparty", f.Counterparty,
				"time_frame", f.TimeFrame,
				"error", err)
			return MsgIndexRequired
		}
		slog.ErrorContext(ctx, "record query failed", "kind", kind, "error", err)
		return messagesFor(kind).queryFailed
	}
	return formatHistory(kind, records)
}
