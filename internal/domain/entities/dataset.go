package entities

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
)

// Row is a single record of a tabular dataset, mapping column name to a scalar value.
type Row map[string]interface{}

// Dataset is the caller-owned tabular input of a generation run.
// The pipeline references it read-only and never copies or mutates it.
type Dataset struct {
	Name string `json:"name"`
	Rows []Row  `json:"rows"`
}

// Columns returns the column names of the dataset in sorted order.
// Sorting keeps every derived artifact deterministic across runs.
func (d *Dataset) Columns() []string {
	if len(d.Rows) == 0 {
		return nil
	}
	cols := make([]string, 0, len(d.Rows[0]))
	for col := range d.Rows[0] {
		cols = append(cols, col)
	}
	sort.Strings(cols)
	return cols
}

// Fingerprint returns a stable hash of the dataset content, used as a cache key
// component. json.Marshal sorts map keys, so equal datasets hash identically.
func (d *Dataset) Fingerprint() string {
	h := sha256.New()
	h.Write([]byte(d.Name))
	if b, err := json.Marshal(d.Rows); err == nil {
		h.Write(b)
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Complexity classifies dataset size and width.
type Complexity string

const (
	ComplexityLow    Complexity = "low"
	ComplexityMedium Complexity = "medium"
	ComplexityHigh   Complexity = "high"
)

// StoryType is the dominant narrative shape detected in the data.
type StoryType string

const (
	StoryGrowth     StoryType = "growth"
	StoryDecline    StoryType = "decline"
	StoryComparison StoryType = "comparison"
	StoryDiscovery  StoryType = "discovery"
)

// DataProfile is the compact statistical/structural profile of a dataset.
// Derived once per run and never mutated afterwards.
type DataProfile struct {
	HasTimeSeries   bool       `json:"has_time_series"`
	HasComparisons  bool       `json:"has_comparisons"`
	HasCorrelations bool       `json:"has_correlations"`
	Complexity      Complexity `json:"complexity"`
	StoryType       StoryType  `json:"story_type"`

	// Structural details carried for the downstream stages.
	DateColumn     string   `json:"date_column,omitempty"`
	NumericColumns []string `json:"numeric_columns,omitempty"`
	RowCount       int      `json:"row_count"`
	ColumnCount    int      `json:"column_count"`
}
