package domain

// TupleRecord is the exported form of one generated parameter tuple
type TupleRecord struct {
	Name          string `json:"name"`
	Path          string `json:"path"`
	Fork          string `json:"fork,omitempty"`
	Code          string `json:"code,omitempty"` // 0x-prefixed hex
	ContainerKind string `json:"container_kind,omitempty"`
	Enabled       bool   `json:"enabled"`
	Value         any    `json:"value"`
}

// SnapshotMeta contains metadata about a generation run
type SnapshotMeta struct {
	Roots         []string `json:"roots"`
	Layout        string   `json:"layout"`
	VectorFiles   int      `json:"vector_files"`
	TotalTuples   int      `json:"total_tuples"`
	EnabledTuples int      `json:"enabled_tuples"`
	Includes      []string `json:"includes,omitempty"`
	Ignores       []string `json:"ignores,omitempty"`
	Duration      string   `json:"duration"`
	Timestamp     string   `json:"timestamp"`
}

// Snapshot is the complete stored output of a generation run
type Snapshot struct {
	Meta   SnapshotMeta  `json:"meta"`
	Tuples []TupleRecord `json:"tuples"`
}
