// Package choropleth binds tabular rows to country features and derives
// the color scale, legend, and selection state for one render cycle.
package choropleth

import (
	"errors"
	"strconv"
)

// Role tags a payload column with how the pipeline should treat it.
type Role string

const (
	RoleCategory Role = "category"
	RoleColor    Role = "color"
	RoleMeasure  Role = "measure"
)

// Column is one host-supplied column, values aligned by row position.
type Column struct {
	Role        Role
	DisplayName string
	Values      []string
}

// Payload is the host's raw tabular payload for one update cycle.
type Payload struct {
	Columns []Column
}

// ColorValue is one cell of the color column: the raw string plus its
// numeric reading when it parses as a number.
type ColorValue struct {
	Raw   string
	Num   float64
	IsNum bool
}

func parseColorValue(raw string) ColorValue {
	n, err := strconv.ParseFloat(raw, 64)
	return ColorValue{Raw: raw, Num: n, IsNum: err == nil}
}

// Measure is one tooltip column: a display name and per-row values.
type Measure struct {
	DisplayName string
	Values      []string
}

// RowSet is the normalized row-oriented form of a payload. Categories,
// ColorValues, and each measure's Values are aligned by order index.
// ColorValues is empty when no color column is bound.
type RowSet struct {
	Categories  []string
	ColorValues []ColorValue
	Measures    []Measure
}

// ErrNoCategories signals that the payload carried no category column.
// The cycle is abandoned and the rendered set cleared; this is a defined
// terminal state for the cycle, not a process failure.
var ErrNoCategories = errors.New("choropleth: payload has no category column")

// NormalizeRows reshapes a payload into a RowSet. Missing color and
// measure columns degrade to empty collections. Color values are
// truncated or zero-padded to the category row count.
func NormalizeRows(p Payload) (RowSet, error) {
	var rs RowSet
	for _, col := range p.Columns {
		switch col.Role {
		case RoleCategory:
			if rs.Categories == nil {
				rs.Categories = col.Values
			}
		case RoleColor:
			if rs.ColorValues == nil {
				rs.ColorValues = make([]ColorValue, 0, len(col.Values))
				for _, v := range col.Values {
					rs.ColorValues = append(rs.ColorValues, parseColorValue(v))
				}
			}
		case RoleMeasure:
			rs.Measures = append(rs.Measures, Measure{DisplayName: col.DisplayName, Values: col.Values})
		}
	}
	if rs.Categories == nil {
		return RowSet{}, ErrNoCategories
	}
	// align color values with the category rows
	if rs.ColorValues != nil {
		n := len(rs.Categories)
		if len(rs.ColorValues) > n {
			rs.ColorValues = rs.ColorValues[:n]
		}
		for len(rs.ColorValues) < n {
			rs.ColorValues = append(rs.ColorValues, ColorValue{})
		}
	}
	return rs, nil
}

// Len returns the row count of the set.
func (rs RowSet) Len() int { return len(rs.Categories) }

// MeasureValue returns measures[i] at the given row, or "" when either
// index is out of range.
func (rs RowSet) MeasureValue(i, row int) string {
	if i < 0 || i >= len(rs.Measures) {
		return ""
	}
	vals := rs.Measures[i].Values
	if row < 0 || row >= len(vals) {
		return ""
	}
	return vals[row]
}
