package storage

import (
	"vtp/internal/collector"
	"vtp/internal/config"
	"vtp/internal/domain"
)

// Storage persists and loads generated parameter sets (e.g. for the browse viewer).
type Storage interface {
	Save(tuples []collector.Tuple, meta domain.SnapshotMeta) error
	Load() (*domain.Snapshot, error)
	// SaveSnapshot writes a complete snapshot as is.
	SaveSnapshot(snapshot *domain.Snapshot) error
}

// JSONStorage stores snapshots in a JSON file under the configured output path.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's output JSON path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}
