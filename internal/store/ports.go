// Package store defines the outbound port for the per-user record store and
// the fault taxonomy its adapters share.
package store

import (
	"context"
	"errors"

	"github.com/schar1067/Payments-assistant-bot/internal/core"
)

// ErrIndexRequired signals that a query combines predicates the adapter can
// only serve with an index that has not been provisioned. It is recoverable
// but needs operator action, so callers must keep it distinguishable from
// generic storage faults and must not retry.
var ErrIndexRequired = errors.New("query requires an index that does not exist")

// Query describes one read against a user partition. Results always come
// back ordered by recorded_at descending.
//
// Counterparty and Range are each optional. Setting both forms a compound
// predicate, which an adapter may reject with ErrIndexRequired when it lacks
// the composite ordering index.
type Query struct {
	Kind         core.RecordKind
	Counterparty string          // equality predicate when non-empty
	Range        *core.DateRange // inclusive range on recorded_at when non-nil
	Limit        int             // 0 means unbounded
}

// Compound reports whether the query combines equality and range predicates.
func (q Query) Compound() bool {
	return q.Counterparty != "" && q.Range != nil
}

// RecordStore is the per-user, append-only record collection. Records are
// never updated or deleted through this port.
type RecordStore interface {
	// Insert persists the record under the user's partition and returns the
	// store-assigned identifier.
	Insert(ctx context.Context, userID string, r core.Record) (string, error)

	// Find returns the matching records, newest first.
	Find(ctx context.Context, userID string, q Query) ([]core.Record, error)
}
