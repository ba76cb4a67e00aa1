package home

import (
	"github.com/sashabaranov/go-openai"

	"github.com/kailas-cloud/homepage/internal/domain/pricing"
)

// offering is one priced model. Prices are per million tokens.
type offering struct {
	key         string
	name        string
	promptPrice string
	outputPrice string
}

var offerings = []offering{
	{key: "1", name: openai.GPT4o, promptPrice: "$2.5", outputPrice: "$10"},
	{key: "2", name: openai.GPT4oMini, promptPrice: "$0.15", outputPrice: "$0.6"},
	{key: "3", name: openai.O1Preview, promptPrice: "$15", outputPrice: "$60"},
	{key: "4", name: openai.O1Mini, promptPrice: "$3", outputPrice: "$12"},
	{key: "5", name: "claude-3.5-sonnet", promptPrice: "$3", outputPrice: "$15"},
	{key: "6", name: "deepseek-chat", promptPrice: "¥1", outputPrice: "¥2"},
	{key: "7", name: "deepseek-r1", promptPrice: "¥4", outputPrice: "¥16"},
}

func (b bundle) rows() ([]pricing.RowData, error) {
	rows := make([]pricing.RowData, 0, len(offerings))
	for _, o := range offerings {
		r, err := pricing.NewRow(o.key, o.name, o.promptPrice, o.outputPrice, b.descriptions[o.key])
		if err != nil {
			return nil, err
		}
		rows = append(rows, r)
	}
	return rows, nil
}
