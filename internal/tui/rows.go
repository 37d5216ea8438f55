package tui

import (
	"fmt"

	table "github.com/charmbracelet/bubbles/table"
)

// refreshRowsTable rebuilds the table from the current cycle's rows.
// Rebuilt wholesale each cycle, like every other piece of derived state.
func (m *Model) refreshRowsTable() {
	rows := m.ctx.Rows
	if rows.Len() == 0 {
		m.showRows = false
		m.tbl.SetRows(nil)
		return
	}
	tcols := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Country", Width: 20},
	}
	if len(rows.ColorValues) > 0 {
		tcols = append(tcols, table.Column{Title: "Color", Width: 10})
	}
	maxColW := 24
	for _, ms := range rows.Measures {
		w := len(ms.DisplayName) + 2
		if w > maxColW {
			w = maxColW
		}
		tcols = append(tcols, table.Column{Title: ms.DisplayName, Width: w})
	}
	trows := make([]table.Row, 0, rows.Len())
	for i, cat := range rows.Categories {
		row := []string{fmt.Sprintf("%d", i), cat}
		if len(rows.ColorValues) > 0 {
			row = append(row, rows.ColorValues[i].Raw)
		}
		for mi := range rows.Measures {
			row = append(row, rows.MeasureValue(mi, i))
		}
		trows = append(trows, table.Row(row))
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(tcols)
	m.tbl.SetRows(trows)
}
