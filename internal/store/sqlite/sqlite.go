// Package sqlite is the durable RecordStore adapter, backed by an embedded
// SQLite database. The migration provisions the composite index up front, so
// this adapter serves compound predicates natively.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	_ "modernc.org/sqlite"

	"github.com/schar1067/Payments-assistant-bot/internal/core"
	"github.com/schar1067/Payments-assistant-bot/internal/store"
)

// recordedAtLayout keeps full precision and the zone offset so the civil
// date string stays consistent with the timestamp on the way back out.
// Ordering and range comparisons use the recorded_at_unix column instead:
// formatted timestamps with mixed offsets do not sort lexicographically.
const recordedAtLayout = time.RFC3339Nano

type Repository struct {
	db *sql.DB
}

func NewRepository(dbPath string) (*Repository, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Repository{db: db}, nil
}

func (r *Repository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Insert implements store.RecordStore.
func (r *Repository) Insert(ctx context.Context, userID string, rec core.Record) (string, error) {
	if err := rec.Validate(); err != nil {
		return "", err
	}

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO records (user_id, kind, counterparty, amount, metadata, civil_date, recorded_at, recorded_at_unix)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		userID, string(rec.Kind), rec.Counterparty, rec.Amount, rec.Metadata,
		rec.CivilDate, rec.RecordedAt.Format(recordedAtLayout), rec.RecordedAt.UnixNano(),
	)
	if err != nil {
		return "", fmt.Errorf("insert record: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return "", fmt.Errorf("read record id: %w", err)
	}

	slog.InfoContext(ctx, "record saved",
		"id", id,
		"kind", rec.Kind,
		"counterparty", rec.Counterparty,
		"amount", rec.Amount,
		"civil_date", rec.CivilDate)

	return strconv.FormatInt(id, 10), nil
}

// Find implements store.RecordStore. Results come back newest first.
func (r *Repository) Find(ctx context.Context, userID string, q store.Query) ([]core.Record, error) {
	sqlText := `
		SELECT kind, counterparty, amount, metadata, civil_date, recorded_at
		FROM records
		WHERE user_id = ? AND kind = ?`
	args := []any{userID, string(q.Kind)}

	if q.Counterparty != "" {
		sqlText += ` AND counterparty = ?`
		args = append(args, q.Counterparty)
	}
	if q.Range != nil {
		sqlText += ` AND recorded_at_unix >= ? AND recorded_at_unix <= ?`
		args = append(args, q.Range.Start.UnixNano(), q.Range.End.UnixNano())
	}
	sqlText += ` ORDER BY recorded_at_unix DESC`
	if q.Limit > 0 {
		sqlText += ` LIMIT ?`
		args = append(args, q.Limit)
	}

	rows, err := r.db.QueryContext(ctx, sqlText, args...)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	var out []core.Record
	for rows.Next() {
		var (
			rec        core.Record
			kind       string
			recordedAt string
		)
		if err := rows.Scan(&kind, &rec.Counterparty, &rec.Amount, &rec.Metadata, &rec.CivilDate, &recordedAt); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		rec.Kind = core.RecordKind(kind)
		rec.RecordedAt, err = time.Parse(recordedAtLayout, recordedAt)
		if err != nil {
			return nil, fmt.Errorf("parse recorded_at %q: %w", recordedAt, err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}
	return out, nil
}
