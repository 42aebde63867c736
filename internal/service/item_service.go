package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"Hostess/internal/cache"
	dom "Hostess/internal/domain"
	"Hostess/internal/repo"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

var (
	ErrNotFound   = errors.New("order or reservation not found")
	ErrEmptyQuery = errors.New("search query is required")
)

// ItemService owns the board dataset: an in-memory snapshot of date buckets,
// hydrated once at startup and flushed to the snapshot repo on every write
// and at shutdown. All mutations are serialized under one mutex — delete
// scans every date, so anything narrower would not be enough.
type ItemService struct {
	mu    sync.Mutex
	snap  dom.Snapshot
	repo  repo.SnapshotRepo
	cache *cache.BoardCache
	log   *zap.Logger
	now   func() time.Time
}

// NewItemService creates an ItemService. If c is nil, caching is disabled.
func NewItemService(r repo.SnapshotRepo, c *cache.BoardCache, log *zap.Logger) *ItemService {
	if log == nil {
		log = zap.NewNop()
	}
	return &ItemService{snap: dom.Snapshot{}, repo: r, cache: c, log: log, now: time.Now}
}

// Load hydrates the snapshot from durable storage. Called exactly once at
// process start. On a first run with no data for today, the bucket is seeded
// with the demonstration dataset and persisted right away.
func (s *ItemService) Load(ctx context.Context) error {
	snap, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}
	if snap == nil {
		snap = dom.Snapshot{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = snap

	today := s.now().Format(dateLayout)
	if b, ok := s.snap[today]; !ok || b.Len() == 0 {
		s.log.Info("no existing data for today, seeding demo dataset", zap.String("date", today))
		bucket := dom.NewDayBucket()
		for _, it := range SeedItems() {
			bucket.Put(it)
		}
		s.snap[today] = bucket
		s.persist(ctx)
	}
	return nil
}

// Create inserts one item into the date bucket, assigning a fresh id when
// the caller did not supply one, and persists the snapshot before returning.
func (s *ItemService) Create(ctx context.Context, dateKey string, it dom.Item) dom.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	created := s.createLocked(dateKey, it)
	s.persist(ctx)
	s.invalidate(ctx)
	return created
}

// CreateForTables inserts one copy of the base item per table id, all into
// the same date bucket, with a single persistence write at the end.
func (s *ItemService) CreateForTables(ctx context.Context, dateKey string, base dom.Item, tableIDs []string) []dom.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	created := make([]dom.Item, 0, len(tableIDs))
	for _, tableID := range tableIDs {
		it := base
		it.ID = ""
		it.TableID = tableID
		created = append(created, s.createLocked(dateKey, it))
	}
	s.persist(ctx)
	s.invalidate(ctx)
	return created
}

func (s *ItemService) createLocked(dateKey string, it dom.Item) dom.Item {
	if it.ID == "" {
		it.ID = newItemID()
	}
	b, ok := s.snap[dateKey]
	if !ok {
		b = dom.NewDayBucket()
		s.snap[dateKey] = b
	}
	// Duplicate starts are accepted, but the unique-slot property is worth
	// noticing when it breaks.
	for _, other := range b.Items() {
		if other.TableID == it.TableID && other.Start == it.Start {
			s.log.Warn("duplicate start slot on table",
				zap.String("date", dateKey),
				zap.String("table_id", it.TableID),
				zap.String("start", it.Start),
				zap.String("existing_id", other.ID),
				zap.String("new_id", it.ID),
			)
			break
		}
	}
	b.Put(it)
	s.log.Info("item created",
		zap.String("id", it.ID),
		zap.String("date", dateKey),
		zap.String("table_id", it.TableID),
		zap.String("status", string(it.Status)),
	)
	return it
}

// Delete removes the item by id, scanning every date bucket — ids are not
// globally indexed. Returns ErrNotFound when no bucket contains the id.
func (s *ItemService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for date, b := range s.snap {
		if b.Delete(id) {
			s.log.Info("item deleted", zap.String("id", id), zap.String("date", date))
			s.persist(ctx)
			s.invalidate(ctx)
			return nil
		}
	}
	return ErrNotFound
}

// ListByDate returns the date bucket's items in insertion order, or an
// empty slice for dates with no writes.
func (s *ItemService) ListByDate(dateKey string) []dom.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.snap[dateKey]
	if !ok {
		return []dom.Item{}
	}
	return b.Items()
}

// Flush writes the snapshot to durable storage and surfaces the error.
// Called at shutdown — the one moment where the save must not be swallowed.
func (s *ItemService) Flush(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.Save(ctx, s.snap)
}

// persist saves the full snapshot. Failures are logged and swallowed: the
// in-memory state stays authoritative, the file is a best-effort copy.
func (s *ItemService) persist(ctx context.Context) {
	if err := s.repo.Save(ctx, s.snap); err != nil {
		s.log.Error("snapshot save failed", zap.Error(err))
	}
}

func (s *ItemService) invalidate(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.InvalidateAll(ctx)
	}
}

// newItemID builds an unguessable per-creation id. Not cryptographically
// unique, but collisions are negligible at single-restaurant volume.
func newItemID() string {
	return fmt.Sprintf("new-%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}
