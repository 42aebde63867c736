package repo

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	dom "Hostess/internal/domain"
)

const snapshotFileName = "orders.json"

// FileSnapshotRepo stores the snapshot as a single pretty-printed JSON file
// under the data directory. Absence of the file is not an error — it means
// an empty dataset (first run).
type FileSnapshotRepo struct {
	path string
}

// NewFileSnapshotRepo creates the data directory if needed and returns the repo.
func NewFileSnapshotRepo(dataDir string) (*FileSnapshotRepo, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileSnapshotRepo{path: filepath.Join(dataDir, snapshotFileName)}, nil
}

func (r *FileSnapshotRepo) Load(_ context.Context) (dom.Snapshot, error) {
	b, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return dom.Snapshot{}, nil
		}
		return nil, fmt.Errorf("read snapshot file: %w", err)
	}
	var snap dom.Snapshot
	if err := json.Unmarshal(b, &snap); err != nil {
		return nil, fmt.Errorf("parse snapshot file: %w", err)
	}
	if snap == nil {
		snap = dom.Snapshot{}
	}
	return snap, nil
}

func (r *FileSnapshotRepo) Save(_ context.Context, snap dom.Snapshot) error {
	b, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := os.WriteFile(r.path, b, 0o644); err != nil {
		return fmt.Errorf("write snapshot file: %w", err)
	}
	return nil
}
