package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"vtp/internal/collector"
	"vtp/internal/config"
	"vtp/internal/domain"
	"vtp/internal/generators"
)

func TestToRecord(t *testing.T) {
	c := collector.New[any](collector.Policy{})
	c.Add("testA", "/suite/a.json", map[string]any{"x": 1}, true)
	c.AddExtended("eof/vec_0", "/eof/a.json", "Prague", []byte{0xef, 0x00}, "RUNTIME", generators.EOFResult{Result: true}, false)

	tuples := c.Parameters()

	expected := []domain.TupleRecord{
		{Name: "testA", Path: "/suite/a.json", Enabled: true, Value: map[string]any{"x": 1}},
		{Name: "eof/vec_0", Path: "/eof/a.json", Fork: "Prague", Code: "0xef00", ContainerKind: "RUNTIME", Value: generators.EOFResult{Result: true}},
	}
	for i, tuple := range tuples {
		if diff := cmp.Diff(expected[i], ToRecord(tuple)); diff != "" {
			t.Errorf("record %d mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestJSONStorage_SaveLoad(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "vtp-storage-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	cfg := &config.Config{
		ProjectPath:    tmpDir,
		OutputJSONDir:  config.DefaultOutputJSONDir,
		OutputJSONFile: config.DefaultOutputJSONFile,
	}
	st := NewJSONStorage(cfg)

	c := collector.New[any](collector.Policy{})
	c.Add("testA", "/suite/a.json", map[string]any{"x": "1"}, true)
	c.Add("testB", "/suite/b.json", map[string]any{"x": "2"}, false)

	if err := st.Save(c.Parameters(), domain.SnapshotMeta{Roots: []string{"suite"}, Layout: config.LayoutStandard}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := os.Stat(filepath.Join(tmpDir, "storage", "test-parameters.json")); err != nil {
		t.Fatalf("expected snapshot file: %v", err)
	}

	snapshot, err := st.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if snapshot.Meta.TotalTuples != 2 || snapshot.Meta.EnabledTuples != 1 {
		t.Errorf("unexpected counts %+v", snapshot.Meta)
	}
	if len(snapshot.Tuples) != 2 || snapshot.Tuples[1].Name != "testB" || snapshot.Tuples[1].Enabled {
		t.Errorf("unexpected tuples %+v", snapshot.Tuples)
	}
	if diff := cmp.Diff(map[string]any{"x": "1"}, snapshot.Tuples[0].Value); diff != "" {
		t.Errorf("unexpected value (-want +got):\n%s", diff)
	}
}

func TestJSONStorage_LoadMissing(t *testing.T) {
	cfg := &config.Config{Flags: config.Flags{Output: filepath.Join(os.TempDir(), "vtp-does-not-exist", "x.json")}}
	if _, err := NewJSONStorage(cfg).Load(); err == nil {
		t.Error("expected error for missing snapshot")
	}
}
