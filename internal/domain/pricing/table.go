package pricing

import (
	"fmt"

	"github.com/kailas-cloud/homepage/internal/domain"
)

// Table pairs a column spec with its rows and the display flags handed to
// the table renderer.
type Table struct {
	columns   []ColumnSpec
	rows      []RowData
	bordered  bool
	paginated bool
}

// TableOption tweaks table display flags.
type TableOption func(*Table)

// WithBorders toggles cell borders.
func WithBorders(on bool) TableOption {
	return func(t *Table) { t.bordered = on }
}

// WithPagination toggles the pagination control.
func WithPagination(on bool) TableOption {
	return func(t *Table) { t.paginated = on }
}

// NewTable validates and creates a Table.
// Row keys must be unique; every leaf data index must resolve on every row.
func NewTable(columns []ColumnSpec, rows []RowData, opts ...TableOption) (Table, error) {
	if len(columns) == 0 {
		return Table{}, fmt.Errorf("%w: no columns", domain.ErrInvalidTable)
	}
	seen := make(map[string]struct{}, len(rows))
	for _, r := range rows {
		if _, dup := seen[r.Key()]; dup {
			return Table{}, fmt.Errorf("%w: duplicate row key %q", domain.ErrInvalidTable, r.Key())
		}
		seen[r.Key()] = struct{}{}
		for _, leaf := range Leaves(columns) {
			if _, ok := r.Value(leaf.DataIndex()); !ok {
				return Table{}, fmt.Errorf("%w: row %q has no field %q",
					domain.ErrInvalidTable, r.Key(), leaf.DataIndex())
			}
		}
	}

	t := Table{
		columns: append([]ColumnSpec(nil), columns...),
		rows:    append([]RowData(nil), rows...),
	}
	for _, o := range opts {
		o(&t)
	}
	return t, nil
}

// Columns returns a copy of the top-level columns.
func (t Table) Columns() []ColumnSpec { return append([]ColumnSpec(nil), t.columns...) }

// Rows returns a copy of the rows.
func (t Table) Rows() []RowData { return append([]RowData(nil), t.rows...) }

// Bordered reports whether cells are drawn with borders.
func (t Table) Bordered() bool { return t.bordered }

// Paginated reports whether a pagination control is shown.
func (t Table) Paginated() bool { return t.paginated }

// Row looks up a row by key.
func (t Table) Row(key string) (RowData, bool) {
	for _, r := range t.rows {
		if r.key == key {
			return r, true
		}
	}
	return RowData{}, false
}

// Cell returns the value at (row key, data index).
func (t Table) Cell(key, dataIndex string) (string, bool) {
	r, ok := t.Row(key)
	if !ok {
		return "", false
	}
	return r.Value(dataIndex)
}
