package home

import "github.com/kailas-cloud/homepage/internal/domain/pricing"

const (
	chatURL  = "https://chat.eloxt.cn"
	guideImg = "https://s2.loli.net/2025/01/20/7rvSVUxEhA9Yl2u.png"

	guideImgWidthPercent = 75
	headingLevel         = 2
)

// bundle holds every human-readable string of the page for one locale.
type bundle struct {
	title string

	usageHeading string
	siteText     string

	apiKeyHeading string
	steps         []string
	guideAlt      string

	pricingHeading string
	colModel       string
	colPrice       string
	colInput       string
	colOutput      string
	colDescription string

	// descriptions by row key
	descriptions map[string]string
}

var bundles = map[Locale]bundle{
	LocaleEN: {
		title:         "Home",
		usageHeading:  "Usage",
		siteText:      "Website: ",
		apiKeyHeading: "Set API Key",
		steps: []string{
			"Select any model",
			"Open the model settings on the right",
			"Valves - Functions - OpenAI Manifold",
			"Enter your own key",
			"Start chatting",
		},
		guideAlt:       "Where to set the API key",
		pricingHeading: "Models and Pricing",
		colModel:       "Model",
		colPrice:       "Price (per 1M tokens)",
		colInput:       "Input",
		colOutput:      "Output",
		colDescription: "Description",
		descriptions: map[string]string{
			"1": "OpenAI's latest model",
			"2": "OpenAI's small model, replaces 3.5-turbo",
			"3": "OpenAI reasoning model, thinks longer before answering, suited to complex tasks",
			"4": "Mini version of OpenAI's reasoning model",
			"5": "Anthropic's latest model, strong at code",
			"6": "DeepSeek, the strongest domestic model, great value, slightly behind gpt-4o",
			"7": "DeepSeek's strongest domestic reasoning model, scores on par with o1",
		},
	},
	LocaleZH: {
		title:         "首页",
		usageHeading:  "使用方式",
		siteText:      "网址：",
		apiKeyHeading: "设置 API Key",
		steps: []string{
			"选择任意模型",
			"右侧打开模型设置",
			"值 - 函数 - OpenAI Manifold",
			"输入自己的 key",
			"开始聊天",
		},
		guideAlt:       "设置 API Key 的位置",
		pricingHeading: "模型和定价",
		colModel:       "模型名称",
		colPrice:       "价格（每百万 Token）",
		colInput:       "输入",
		colOutput:      "输出",
		colDescription: "描述",
		descriptions: map[string]string{
			"1": "OpenAI 最新的模型",
			"2": "OpenAI 的小模型，替代 3.5-turbo",
			"3": "OpenAI 的思考型模型，在回应之前花更多时间思考，适合复杂任务",
			"4": "OpenAI 的思考型模型 mini 版",
			"5": "Anthropic 最新的模型，代码能力强",
			"6": "深度求索，国内最强模型，性价比高，略逊于 gpt-4o",
			"7": "深度求索，国内最强思考型模型，评测分数持平 o1",
		},
	},
}

func (b bundle) columns() ([]pricing.ColumnSpec, error) {
	name, err := pricing.NewLeaf(b.colModel, pricing.DataIndexName)
	if err != nil {
		return nil, err
	}
	in, err := pricing.NewLeaf(b.colInput, pricing.DataIndexPromptPrice)
	if err != nil {
		return nil, err
	}
	out, err := pricing.NewLeaf(b.colOutput, pricing.DataIndexOutputPrice)
	if err != nil {
		return nil, err
	}
	price, err := pricing.NewGroup(b.colPrice, in, out)
	if err != nil {
		return nil, err
	}
	desc, err := pricing.NewLeaf(b.colDescription, pricing.DataIndexDescription)
	if err != nil {
		return nil, err
	}
	return []pricing.ColumnSpec{name, price, desc}, nil
}
