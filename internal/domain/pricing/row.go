package pricing

import (
	"fmt"
	"strings"

	"github.com/kailas-cloud/homepage/internal/domain"
)

// Row field names addressable by ColumnSpec.DataIndex.
const (
	DataIndexName        = "name"
	DataIndexPromptPrice = "prompt_price"
	DataIndexOutputPrice = "output_price"
	DataIndexDescription = "description"
)

func isKnownDataIndex(idx string) bool {
	switch idx {
	case DataIndexName, DataIndexPromptPrice, DataIndexOutputPrice, DataIndexDescription:
		return true
	}
	return false
}

// currencySymbols are the accepted price prefixes.
var currencySymbols = []string{"$", "¥"}

// RowData is one model's pricing entry. Prices are display strings, never numbers.
type RowData struct {
	key         string
	name        string
	promptPrice string
	outputPrice string
	description string
}

// NewRow validates and creates a RowData.
func NewRow(key, name, promptPrice, outputPrice, description string) (RowData, error) {
	if key == "" {
		return RowData{}, fmt.Errorf("%w: key is required", domain.ErrInvalidRow)
	}
	if name == "" {
		return RowData{}, fmt.Errorf("%w: row %s: name is required", domain.ErrInvalidRow, key)
	}
	if !isPrice(promptPrice) {
		return RowData{}, fmt.Errorf("%w: row %s: bad prompt price %q", domain.ErrInvalidRow, key, promptPrice)
	}
	if !isPrice(outputPrice) {
		return RowData{}, fmt.Errorf("%w: row %s: bad output price %q", domain.ErrInvalidRow, key, outputPrice)
	}
	return RowData{
		key:         key,
		name:        name,
		promptPrice: promptPrice,
		outputPrice: outputPrice,
		description: description,
	}, nil
}

func isPrice(s string) bool {
	for _, sym := range currencySymbols {
		if strings.HasPrefix(s, sym) && len(s) > len(sym) {
			return true
		}
	}
	return false
}

// Key returns the row identity.
func (r RowData) Key() string { return r.key }

// Name returns the model name.
func (r RowData) Name() string { return r.name }

// PromptPrice returns the input price per million tokens.
func (r RowData) PromptPrice() string { return r.promptPrice }

// OutputPrice returns the output price per million tokens.
func (r RowData) OutputPrice() string { return r.outputPrice }

// Description returns the free-text description.
func (r RowData) Description() string { return r.description }

// Value returns the field addressed by a data index.
func (r RowData) Value(dataIndex string) (string, bool) {
	switch dataIndex {
	case DataIndexName:
		return r.name, true
	case DataIndexPromptPrice:
		return r.promptPrice, true
	case DataIndexOutputPrice:
		return r.outputPrice, true
	case DataIndexDescription:
		return r.description, true
	default:
		return "", false
	}
}
