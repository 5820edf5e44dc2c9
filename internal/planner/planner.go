// Package planner chooses the query shape for a history request. The point
// of the shapes is to never combine an equality and a range predicate in one
// native query: that combination tends to require a composite index that may
// not be provisioned, so the combined case runs the range query and filters
// by counterparty in memory instead. Trading a larger scan for independence
// from index provisioning is deliberate.
package planner

import (
	"context"
	"log/slog"

	"github.com/schar1067/Payments-assistant-bot/internal/core"
	"github.com/schar1067/Payments-assistant-bot/internal/dates"
	"github.com/schar1067/Payments-assistant-bot/internal/store"
)

// recentLimit caps an unfiltered history query to the most recent records.
const recentLimit = 50

type Planner struct {
	store store.RecordStore
	dates *dates.Resolver
}

func New(st store.RecordStore, resolver *dates.Resolver) *Planner {
	return &Planner{store: st, dates: resolver}
}

// Search resolves the filter into one store query plus, for the combined
// case, an in-memory counterparty match. Results keep the store's
// descending-by-time order; the combined case removes entries in place
// without reordering.
//
// A store.ErrIndexRequired fault passes through unchanged and is never
// retried here: retrying cannot help until an operator provisions the index.
func (p *Planner) Search(ctx context.Context, userID string, kind core.RecordKind, f core.QueryFilter) ([]core.Record, error) {
	switch {
	case f.Counterparty != "" && f.TimeFrame == "":
		return p.store.Find(ctx, userID, store.Query{
			Kind:         kind,
			Counterparty: f.Counterparty,
		})

	case f.Counterparty == "" && f.TimeFrame != "":
		r := p.dates.RangeFor(f.TimeFrame)
		return p.store.Find(ctx, userID, store.Query{
			Kind:  kind,
			Range: &r,
		})

	case f.Counterparty != "" && f.TimeFrame != "":
		r := p.dates.RangeFor(f.TimeFrame)
		records, err := p.store.Find(ctx, userID, store.Query{
			Kind:  kind,
			Range: &r,
		})
		if err != nil {
			return nil, err
		}
		slog.DebugContext(ctx, "filtering range results in memory",
			"counterparty", f.Counterparty,
			"scanned", len(records))
		return filterByCounterparty(records, f.Counterparty), nil

	default:
		return p.store.Find(ctx, userID, store.Query{
			Kind:  kind,
			Limit: recentLimit,
		})
	}
}

// filterByCounterparty keeps exact matches only, preserving relative order.
func filterByCounterparty(records []core.Record, counterparty string) []core.Record {
	out := records[:0]
	for _, r := range records {
		if r.Counterparty == counterparty {
			out = append(out, r)
		}
	}
	return out
}
