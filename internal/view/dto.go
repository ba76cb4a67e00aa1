// Package view turns a page.Document into wire and markup representations.
package view

import (
	"github.com/kailas-cloud/homepage/internal/domain/page"
	"github.com/kailas-cloud/homepage/internal/domain/pricing"
)

// Document is the JSON shape of a rendered page.
type Document struct {
	Title  string  `json:"title"`
	Lang   string  `json:"lang"`
	Blocks []Block `json:"blocks"`
}

// Block is a tagged union over page block kinds; Kind selects which fields are set.
type Block struct {
	Kind         string   `json:"kind"`
	Level        int      `json:"level,omitempty"`
	Text         string   `json:"text,omitempty"`
	Link         *Link    `json:"link,omitempty"`
	Items        []string `json:"items,omitempty"`
	Src          string   `json:"src,omitempty"`
	Alt          string   `json:"alt,omitempty"`
	WidthPercent int      `json:"width_percent,omitempty"`
	Table        *Table   `json:"table,omitempty"`
}

// Link is a hyperlink.
type Link struct {
	Href  string `json:"href"`
	Label string `json:"label"`
}

// Column mirrors pricing.ColumnSpec.
type Column struct {
	Title     string   `json:"title"`
	DataIndex string   `json:"dataIndex,omitempty"`
	Children  []Column `json:"children,omitempty"`
}

// Row mirrors pricing.RowData.
type Row struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	PromptPrice string `json:"prompt_price"`
	OutputPrice string `json:"output_price"`
	Description string `json:"description"`
}

// Table carries columns, rows and display flags. Header and Body are the
// precomputed HTML layout and are not serialized.
type Table struct {
	Columns    []Column `json:"columns"`
	DataSource []Row    `json:"dataSource"`
	Bordered   bool     `json:"bordered"`
	Pagination bool     `json:"pagination"`

	Header [][]pricing.HeaderCell `json:"-"`
	Body   []BodyRow              `json:"-"`
}

// BodyRow is one <tr> of leaf cells.
type BodyRow struct {
	Key   string
	Cells []string
}

// FromPage converts a document to its view shape.
func FromPage(doc page.Document) Document {
	out := Document{
		Title:  doc.Title,
		Lang:   doc.Lang,
		Blocks: make([]Block, 0, len(doc.Blocks)),
	}
	for _, b := range doc.Blocks {
		out.Blocks = append(out.Blocks, blockFromPage(b))
	}
	return out
}

func blockFromPage(b page.Block) Block {
	v := Block{Kind: string(b.Kind())}
	switch b := b.(type) {
	case page.Heading:
		v.Level = b.Level
		v.Text = b.Text
	case page.Paragraph:
		v.Text = b.Text
		if b.Link != nil {
			v.Link = &Link{Href: b.Link.Href, Label: b.Link.Label}
		}
	case page.OrderedList:
		v.Items = append([]string(nil), b.Items...)
	case page.Image:
		v.Src = b.Src
		v.Alt = b.Alt
		v.WidthPercent = b.WidthPercent
	case page.TableBlock:
		t := tableFromPricing(b.Table)
		v.Table = &t
	}
	return v
}

func tableFromPricing(t pricing.Table) Table {
	leaves := pricing.Leaves(t.Columns())
	rows := t.Rows()

	out := Table{
		Columns:    columnsFromPricing(t.Columns()),
		DataSource: make([]Row, len(rows)),
		Bordered:   t.Bordered(),
		Pagination: t.Paginated(),
		Header:     pricing.HeaderRows(t.Columns()),
		Body:       make([]BodyRow, len(rows)),
	}
	for i, r := range rows {
		out.DataSource[i] = Row{
			Key:         r.Key(),
			Name:        r.Name(),
			PromptPrice: r.PromptPrice(),
			OutputPrice: r.OutputPrice(),
			Description: r.Description(),
		}
		cells := make([]string, len(leaves))
		for j, l := range leaves {
			cells[j], _ = r.Value(l.DataIndex())
		}
		out.Body[i] = BodyRow{Key: r.Key(), Cells: cells}
	}
	return out
}

func columnsFromPricing(cols []pricing.ColumnSpec) []Column {
	if len(cols) == 0 {
		return nil
	}
	out := make([]Column, len(cols))
	for i, c := range cols {
		out[i] = Column{
			Title:     c.Title(),
			DataIndex: c.DataIndex(),
			Children:  columnsFromPricing(c.Children()),
		}
	}
	return out
}
