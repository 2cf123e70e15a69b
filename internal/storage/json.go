package storage

import (
	"fmt"
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"

	"vtp/internal/collector"
	"vtp/internal/domain"
	"vtp/internal/generators"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Save writes the tuples and run metadata to the configured JSON output file.
func (s *JSONStorage) Save(tuples []collector.Tuple, meta domain.SnapshotMeta) error {
	records := make([]domain.TupleRecord, 0, len(tuples))
	enabled := 0
	for _, tuple := range tuples {
		if tuple.Runnable() {
			enabled++
		}
		records = append(records, ToRecord(tuple))
	}

	meta.TotalTuples = len(tuples)
	meta.EnabledTuples = enabled

	return s.SaveSnapshot(&domain.Snapshot{Meta: meta, Tuples: records})
}

// Load reads the last snapshot from the configured JSON output file.
func (s *JSONStorage) Load() (*domain.Snapshot, error) {
	path := s.cfg.GetOutputPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot file: %w", err)
	}
	var snapshot domain.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}
	return &snapshot, nil
}

// SaveSnapshot writes the full snapshot to the configured JSON file.
func (s *JSONStorage) SaveSnapshot(snapshot *domain.Snapshot) error {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	path := s.cfg.GetOutputPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// ToRecord converts a tuple into its stored form, reading the fields in
// layout order. Extended tuples carry fork, code and container kind.
func ToRecord(tuple collector.Tuple) domain.TupleRecord {
	record := domain.TupleRecord{
		Name:    tuple.TestName(),
		Path:    tuple.FullPath(),
		Enabled: tuple.Runnable(),
	}

	fields := tuple.Fields()
	switch len(fields) {
	case 3:
		record.Value = fields[1]
	case 6:
		record.Fork, _ = fields[1].(string)
		if code, ok := fields[2].([]byte); ok && code != nil {
			record.Code = generators.EncodeHex(code)
		}
		record.ContainerKind, _ = fields[3].(string)
		record.Value = fields[4]
	}

	return record
}
