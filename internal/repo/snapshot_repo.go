package repo

import (
	"context"

	dom "Hostess/internal/domain"
)

// SnapshotRepo is the durable-storage port for the board dataset. Save is a
// full overwrite of the whole snapshot; Load is called once at startup.
// The in-memory state stays authoritative for the running process — the
// backing store is only a restart-recovery copy.
type SnapshotRepo interface {
	Load(ctx context.Context) (dom.Snapshot, error)
	Save(ctx context.Context, snap dom.Snapshot) error
}
