// Package host is the demo host side of the pipeline: it feeds tabular
// payloads, issues selection tokens, and receives selection requests.
package host

import (
	"encoding/csv"
	"errors"
	"os"
	"strings"

	"choroglobe/internal/choropleth"
)

// LoadPayload reads a CSV into a payload. Header cells carry the
// column role as "role:display name" with roles category, color, and
// measure; a cell without a recognized role becomes a measure named by
// the whole cell. Only the first category and first color column are
// used downstream.
func LoadPayload(path string) (choropleth.Payload, error) {
	f, err := os.Open(path)
	if err != nil {
		return choropleth.Payload{}, err
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	recs, err := r.ReadAll()
	if err != nil {
		return choropleth.Payload{}, err
	}
	if len(recs) == 0 {
		return choropleth.Payload{}, errors.New("payload: empty csv")
	}
	header := recs[0]
	cols := make([]choropleth.Column, len(header))
	for i, h := range header {
		role, name := splitRole(h)
		cols[i] = choropleth.Column{Role: role, DisplayName: name}
	}
	for _, row := range recs[1:] {
		for i := range cols {
			v := ""
			if i < len(row) {
				v = strings.TrimSpace(row[i])
			}
			cols[i].Values = append(cols[i].Values, v)
		}
	}
	return choropleth.Payload{Columns: cols}, nil
}

func splitRole(cell string) (choropleth.Role, string) {
	cell = strings.TrimSpace(cell)
	if i := strings.Index(cell, ":"); i > 0 {
		role := strings.ToLower(strings.TrimSpace(cell[:i]))
		name := strings.TrimSpace(cell[i+1:])
		switch choropleth.Role(role) {
		case choropleth.RoleCategory, choropleth.RoleColor, choropleth.RoleMeasure:
			return choropleth.Role(role), name
		}
	}
	return choropleth.RoleMeasure, cell
}
