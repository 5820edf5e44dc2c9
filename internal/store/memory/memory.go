// Package memory is an in-process RecordStore adapter. It mirrors the
// behavior of a document store: per-user partitions, single-field predicates
// served natively, and compound predicates rejected unless the matching
// composite index was provisioned.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/schar1067/Payments-assistant-bot/internal/core"
	"github.com/schar1067/Payments-assistant-bot/internal/store"
)

type stored struct {
	id     string
	record core.Record
}

type Store struct {
	mu              sync.Mutex
	partitions      map[string][]stored // userID -> records, insertion order
	compoundIndexes bool
}

type Option func(*Store)

// WithCompoundIndexes provisions the composite counterparty+recorded_at
// index, letting the adapter serve compound predicates natively.
func WithCompoundIndexes() Option {
	return func(s *Store) { s.compoundIndexes = true }
}

func New(opts ...Option) *Store {
	s := &Store{partitions: make(map[string][]stored)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Insert appends the record to the user's partition and returns a generated
// identifier.
func (s *Store) Insert(_ context.Context, userID string, r core.Record) (string, error) {
	if err := r.Validate(); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.New().String()
	s.partitions[userID] = append(s.partitions[userID], stored{id: id, record: r})
	return id, nil
}

// Find returns matching records newest first. A compound predicate without
// the composite index fails with store.ErrIndexRequired.
func (s *Store) Find(_ context.Context, userID string, q store.Query) ([]core.Record, error) {
	if q.Compound() && !s.compoundIndexes {
		return nil, fmt.Errorf("counterparty equality with recorded_at range needs a composite index: %w",
			store.ErrIndexRequired)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var out []core.Record
	for _, item := range s.partitions[userID] {
		if !matches(item.record, q) {
			continue
		}
		out = append(out, item.record)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RecordedAt.After(out[j].RecordedAt)
	})
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func matches(r core.Record, q store.Query) bool {
	if q.Kind != "" && r.Kind != q.Kind {
		return false
	}
	if q.Counterparty != "" && r.Counterparty != q.Counterparty {
		return false
	}
	if q.Range != nil && !q.Range.Contains(r.RecordedAt) {
		return false
	}
	return true
}
