package pricing

import (
	"fmt"

	"github.com/kailas-cloud/homepage/internal/domain"
)

// ColumnSpec is one table column, or a display-only group header over
// nested sub-columns (immutable value object).
type ColumnSpec struct {
	title     string
	dataIndex string
	children  []ColumnSpec
}

// NewLeaf creates a data column bound to a row field.
func NewLeaf(title, dataIndex string) (ColumnSpec, error) {
	if title == "" {
		return ColumnSpec{}, fmt.Errorf("%w: column title is required", domain.ErrInvalidColumn)
	}
	if !isKnownDataIndex(dataIndex) {
		return ColumnSpec{}, fmt.Errorf("%w: unknown data index %q for %q",
			domain.ErrInvalidColumn, dataIndex, title)
	}
	return ColumnSpec{title: title, dataIndex: dataIndex}, nil
}

// NewGroup creates a group header. Groups carry no data index and need at
// least one child.
func NewGroup(title string, children ...ColumnSpec) (ColumnSpec, error) {
	if title == "" {
		return ColumnSpec{}, fmt.Errorf("%w: group title is required", domain.ErrInvalidColumn)
	}
	if len(children) == 0 {
		return ColumnSpec{}, fmt.Errorf("%w: group %q has no children", domain.ErrInvalidColumn, title)
	}
	c := make([]ColumnSpec, len(children))
	copy(c, children)
	return ColumnSpec{title: title, children: c}, nil
}

// Title returns the header text.
func (c ColumnSpec) Title() string { return c.title }

// DataIndex returns the row field the column reads. Empty for groups.
func (c ColumnSpec) DataIndex() string { return c.dataIndex }

// IsGroup reports whether the column is a group header.
func (c ColumnSpec) IsGroup() bool { return len(c.children) > 0 }

// Children returns a copy of the sub-columns.
func (c ColumnSpec) Children() []ColumnSpec {
	if len(c.children) == 0 {
		return nil
	}
	out := make([]ColumnSpec, len(c.children))
	copy(out, c.children)
	return out
}

// depth is 1 for a leaf, 1 + max child depth for a group.
func (c ColumnSpec) depth() int {
	d := 0
	for _, ch := range c.children {
		if cd := ch.depth(); cd > d {
			d = cd
		}
	}
	return d + 1
}

func (c ColumnSpec) leafCount() int {
	if !c.IsGroup() {
		return 1
	}
	n := 0
	for _, ch := range c.children {
		n += ch.leafCount()
	}
	return n
}

// Leaves flattens columns into data columns in display order.
func Leaves(columns []ColumnSpec) []ColumnSpec {
	var out []ColumnSpec
	for _, c := range columns {
		if c.IsGroup() {
			out = append(out, Leaves(c.children)...)
			continue
		}
		out = append(out, c)
	}
	return out
}

// HeaderCell is one <th> of a grouped table header.
type HeaderCell struct {
	Title   string
	ColSpan int
	RowSpan int
}

// HeaderRows lays grouped columns out as header rows. Groups span their
// leaves horizontally; leaves span down to the bottom header row.
func HeaderRows(columns []ColumnSpec) [][]HeaderCell {
	depth := 0
	for _, c := range columns {
		if d := c.depth(); d > depth {
			depth = d
		}
	}
	if depth == 0 {
		return nil
	}
	rows := make([][]HeaderCell, depth)
	var walk func(cols []ColumnSpec, level int)
	walk = func(cols []ColumnSpec, level int) {
		for _, c := range cols {
			cell := HeaderCell{Title: c.title, ColSpan: c.leafCount(), RowSpan: 1}
			if !c.IsGroup() {
				cell.RowSpan = depth - level
			}
			rows[level] = append(rows[level], cell)
			if c.IsGroup() {
				walk(c.children, level+1)
			}
		}
	}
	walk(columns, 0)
	return rows
}
