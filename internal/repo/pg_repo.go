package repo

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	dom "Hostess/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PGSnapshotRepo stores the snapshot in a single Postgres table, one row per
// item with its position inside the date bucket. Save rewrites the whole
// table in one transaction, matching the full-overwrite contract of the port.
type PGSnapshotRepo struct {
	db *pgxpool.Pool
}

// NewPGSnapshotRepo returns a new PGSnapshotRepo.
func NewPGSnapshotRepo(db *pgxpool.Pool) *PGSnapshotRepo {
	return &PGSnapshotRepo{db: db}
}

func (r *PGSnapshotRepo) Load(ctx context.Context) (dom.Snapshot, error) {
	rows, err := r.db.Query(ctx, `
		SELECT date_key, payload
		FROM board_items
		ORDER BY date_key, position`)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	defer rows.Close()

	snap := dom.Snapshot{}
	for rows.Next() {
		var dateKey string
		var payload []byte
		if err := rows.Scan(&dateKey, &payload); err != nil {
			return nil, fmt.Errorf("scan snapshot row: %w", err)
		}
		var it dom.Item
		if err := json.Unmarshal(payload, &it); err != nil {
			return nil, fmt.Errorf("parse item payload: %w", err)
		}
		b, ok := snap[dateKey]
		if !ok {
			b = dom.NewDayBucket()
			snap[dateKey] = b
		}
		b.Put(it)
	}
	return snap, rows.Err()
}

func (r *PGSnapshotRepo) Save(ctx context.Context, snap dom.Snapshot) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin snapshot tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM board_items`); err != nil {
		return fmt.Errorf("clear snapshot: %w", err)
	}

	// Deterministic row order: dates sorted, items in bucket insertion order.
	dates := make([]string, 0, len(snap))
	for d := range snap {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	batch := &pgx.Batch{}
	for _, date := range dates {
		for pos, it := range snap[date].Items() {
			payload, err := json.Marshal(it)
			if err != nil {
				return fmt.Errorf("marshal item %q: %w", it.ID, err)
			}
			batch.Queue(`
				INSERT INTO board_items (date_key, item_id, position, payload)
				VALUES ($1, $2, $3, $4)`,
				date, it.ID, pos, payload)
		}
	}
	if batch.Len() > 0 {
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("write snapshot rows: %w", err)
		}
	}
	return tx.Commit(ctx)
}
