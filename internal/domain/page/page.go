// Package page models a rendered page as an ordered tree of blocks.
package page

import "github.com/kailas-cloud/homepage/internal/domain/pricing"

// Kind names a block type.
type Kind string

// Block kinds.
const (
	KindHeading     Kind = "heading"
	KindParagraph   Kind = "paragraph"
	KindOrderedList Kind = "ordered_list"
	KindImage       Kind = "image"
	KindTable       Kind = "table"
)

// Block is one top-level element of a Document.
type Block interface {
	Kind() Kind
}

// Heading is a section title.
type Heading struct {
	Level int
	Text  string
}

// Kind implements Block.
func (Heading) Kind() Kind { return KindHeading }

// Link is a hyperlink with a fixed target.
type Link struct {
	Href  string
	Label string
}

// Paragraph is a line of text followed by an optional link.
type Paragraph struct {
	Text string
	Link *Link
}

// Kind implements Block.
func (Paragraph) Kind() Kind { return KindParagraph }

// OrderedList is a numbered list of plain-text items.
type OrderedList struct {
	Items []string
}

// Kind implements Block.
func (OrderedList) Kind() Kind { return KindOrderedList }

// Image is an embedded picture sized relative to its container.
type Image struct {
	Src          string
	Alt          string
	WidthPercent int
}

// Kind implements Block.
func (Image) Kind() Kind { return KindImage }

// TableBlock wraps a pricing table.
type TableBlock struct {
	Table pricing.Table
}

// Kind implements Block.
func (TableBlock) Kind() Kind { return KindTable }

// Document is the full render output.
type Document struct {
	Title  string
	Lang   string
	Blocks []Block
}

// Headings returns the heading texts in order.
func (d Document) Headings() []string {
	var out []string
	for _, b := range d.Blocks {
		if h, ok := b.(Heading); ok {
			out = append(out, h.Text)
		}
	}
	return out
}

// FirstTable returns the first table block.
func (d Document) FirstTable() (pricing.Table, bool) {
	for _, b := range d.Blocks {
		if t, ok := b.(TableBlock); ok {
			return t.Table, true
		}
	}
	return pricing.Table{}, false
}

// FirstList returns the first ordered list block.
func (d Document) FirstList() (OrderedList, bool) {
	for _, b := range d.Blocks {
		if l, ok := b.(OrderedList); ok {
			return l, true
		}
	}
	return OrderedList{}, false
}
