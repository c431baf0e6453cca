package deckgen

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/deckpilot-team/deckpilot/internal/domain/entities"
)

// Sampling windows used by the structural checks.
const (
	dateSampleSize        = 5
	categoricalSampleSize = 20
	numericSampleSize     = 10
)

// DataProfiler derives a compact statistical/structural profile from a row-set.
// Profiling never fails: an empty dataset yields the zero-signal profile.
type DataProfiler struct{}

// NewDataProfiler creates a new DataProfiler
func NewDataProfiler() *DataProfiler {
	return &DataProfiler{}
}

// Profile inspects the dataset once and returns its derived profile.
func (p *DataProfiler) Profile(ds *entities.Dataset) entities.DataProfile {
	profile := entities.DataProfile{
		Complexity: entities.ComplexityLow,
		StoryType:  entities.StoryDiscovery,
	}
	if ds == nil || len(ds.Rows) == 0 {
		return profile
	}

	cols := ds.Columns()
	profile.RowCount = len(ds.Rows)
	profile.ColumnCount = len(cols)

	profile.DateColumn = detectDateColumn(ds, cols)
	profile.HasTimeSeries = profile.DateColumn != ""
	profile.HasComparisons = detectCategorical(ds, cols)
	profile.NumericColumns = numericColumns(ds, cols)
	profile.HasCorrelations = len(profile.NumericColumns) >= 2
	profile.Complexity = classifyComplexity(len(cols), len(ds.Rows))
	profile.StoryType = detectStoryType(ds, profile)

	return profile
}

// detectDateColumn returns the first column whose first sampled values all
// parse as calendar dates, or "" when none does.
func detectDateColumn(ds *entities.Dataset, cols []string) string {
	for _, col := range cols {
		n := 0
		ok := true
		for _, row := range ds.Rows {
			if n == dateSampleSize {
				break
			}
			v, present := row[col]
			if !present {
				continue
			}
			if _, parsed := parseDate(v); !parsed {
				ok = false
				break
			}
			n++
		}
		if ok && n > 0 {
			return col
		}
	}
	return ""
}

// detectCategorical reports whether some column's sampled values repeat enough
// to signal grouping potential: unique ratio strictly between 1/20 and 0.8.
func detectCategorical(ds *entities.Dataset, cols []string) bool {
	for _, col := range cols {
		seen := make(map[string]struct{})
		n := 0
		for _, row := range ds.Rows {
			if n == categoricalSampleSize {
				break
			}
			v, present := row[col]
			if !present {
				continue
			}
			seen[stringify(v)] = struct{}{}
			n++
		}
		if n == 0 {
			continue
		}
		ratio := float64(len(seen)) / float64(n)
		if ratio > 1.0/float64(categoricalSampleSize) && ratio < 0.8 && len(seen) > 1 {
			return true
		}
	}
	return false
}

// numericColumns returns the columns that parse fully numeric over the first
// sampled rows, in sorted column order.
func numericColumns(ds *entities.Dataset, cols []string) []string {
	var out []string
	for _, col := range cols {
		n := 0
		ok := true
		for _, row := range ds.Rows {
			if n == numericSampleSize {
				break
			}
			v, present := row[col]
			if !present {
				continue
			}
			if _, parsed := toFloat(v); !parsed {
				ok = false
				break
			}
			n++
		}
		if ok && n > 0 {
			out = append(out, col)
		}
	}
	return out
}

func classifyComplexity(columns, rows int) entities.Complexity {
	switch {
	case columns <= 3 && rows <= 100:
		return entities.ComplexityLow
	case columns <= 10 && rows <= 1000:
		return entities.ComplexityMedium
	default:
		return entities.ComplexityHigh
	}
}

// detectStoryType compares the first and last value of the first numeric
// non-date column after sorting by date; falls back to comparison/discovery.
func detectStoryType(ds *entities.Dataset, profile entities.DataProfile) entities.StoryType {
	if profile.HasTimeSeries {
		col := firstMetricColumn(profile)
		if col != "" {
			rows := sortedByDate(ds, profile.DateColumn)
			first, firstOK := firstNumeric(rows, col, false)
			last, lastOK := firstNumeric(rows, col, true)
			if firstOK && lastOK {
				if last > first {
					return entities.StoryGrowth
				}
				if last < first {
					return entities.StoryDecline
				}
			}
		}
	}
	if profile.HasComparisons {
		return entities.StoryComparison
	}
	return entities.StoryDiscovery
}

// firstMetricColumn picks the first numeric column that is not the date column.
func firstMetricColumn(profile entities.DataProfile) string {
	for _, col := range profile.NumericColumns {
		if col != profile.DateColumn {
			return col
		}
	}
	return ""
}

// sortedByDate returns a copy of the rows ordered by the date column.
// The dataset itself is never reordered.
func sortedByDate(ds *entities.Dataset, dateCol string) []entities.Row {
	rows := make([]entities.Row, len(ds.Rows))
	copy(rows, ds.Rows)
	sort.SliceStable(rows, func(i, j int) bool {
		ti, iOK := parseDate(rows[i][dateCol])
		tj, jOK := parseDate(rows[j][dateCol])
		if !iOK || !jOK {
			return false
		}
		return ti.Before(tj)
	})
	return rows
}

// firstNumeric scans the rows (optionally from the end) for the first value of
// col that parses numeric.
func firstNumeric(rows []entities.Row, col string, fromEnd bool) (float64, bool) {
	for i := range rows {
		idx := i
		if fromEnd {
			idx = len(rows) - 1 - i
		}
		if v, ok := toFloat(rows[idx][col]); ok {
			return v, true
		}
	}
	return 0, false
}

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05Z07:00",
	"2006-01",
	"2006/01/02",
	"01/02/2006",
	"Jan 2006",
	"January 2006",
	"Jan 2, 2006",
}

// parseDate attempts to interpret a scalar cell value as a calendar date.
func parseDate(v interface{}) (time.Time, bool) {
	s, ok := v.(string)
	if !ok {
		return time.Time{}, false
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// toFloat converts a scalar cell value to float64 if possible. String values
// are tolerated with common formatting noise ($, %, thousand separators).
func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		s := strings.TrimSpace(n)
		s = strings.TrimPrefix(s, "$")
		s = strings.TrimSuffix(s, "%")
		s = strings.ReplaceAll(s, ",", "")
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// stringify renders a scalar cell value for set-membership checks.
func stringify(v interface{}) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'g', -1, 64)
	case int:
		return strconv.Itoa(s)
	case bool:
		return strconv.FormatBool(s)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}
