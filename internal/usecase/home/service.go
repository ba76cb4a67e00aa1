package home

import (
	"fmt"

	"github.com/kailas-cloud/homepage/internal/domain/page"
	"github.com/kailas-cloud/homepage/internal/domain/pricing"
)

// Service renders the console home page: usage instructions plus the model
// pricing table. Every render builds the document from scratch; nothing is
// cached or shared between calls.
type Service struct {
	defaultLocale Locale
}

// New creates a Service. All locale bundles are built once up front so that
// a broken literal fails at startup instead of on a request.
func New(defaultLocale Locale) (*Service, error) {
	if _, ok := bundles[defaultLocale]; !ok {
		return nil, fmt.Errorf("default locale: %w", unsupported(defaultLocale))
	}
	s := &Service{defaultLocale: defaultLocale}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// DefaultLocale returns the locale used by Home.
func (s *Service) DefaultLocale() Locale { return s.defaultLocale }

// Home renders the page in the default locale.
func (s *Service) Home() page.Document {
	doc, err := build(s.defaultLocale)
	if err != nil {
		// New already built this bundle successfully.
		panic(fmt.Sprintf("home: render %s: %v", s.defaultLocale, err))
	}
	return doc
}

// Render renders the page in the given locale.
func (s *Service) Render(l Locale) (page.Document, error) {
	return build(l)
}

// Validate builds every locale bundle and reports the first broken one.
func (s *Service) Validate() error {
	for _, l := range Locales() {
		if _, err := build(l); err != nil {
			return fmt.Errorf("locale %s: %w", l, err)
		}
	}
	return nil
}

func build(l Locale) (page.Document, error) {
	b, ok := bundles[l]
	if !ok {
		return page.Document{}, unsupported(l)
	}

	cols, err := b.columns()
	if err != nil {
		return page.Document{}, fmt.Errorf("columns: %w", err)
	}
	rows, err := b.rows()
	if err != nil {
		return page.Document{}, fmt.Errorf("rows: %w", err)
	}
	table, err := pricing.NewTable(cols, rows,
		pricing.WithBorders(true),
		pricing.WithPagination(false),
	)
	if err != nil {
		return page.Document{}, fmt.Errorf("table: %w", err)
	}

	steps := make([]string, len(b.steps))
	copy(steps, b.steps)

	return page.Document{
		Title: b.title,
		Lang:  string(l),
		Blocks: []page.Block{
			page.Heading{Level: headingLevel, Text: b.usageHeading},
			page.Paragraph{Text: b.siteText, Link: &page.Link{Href: chatURL, Label: chatURL}},
			page.Heading{Level: headingLevel, Text: b.apiKeyHeading},
			page.OrderedList{Items: steps},
			page.Image{Src: guideImg, Alt: b.guideAlt, WidthPercent: guideImgWidthPercent},
			page.Heading{Level: headingLevel, Text: b.pricingHeading},
			page.TableBlock{Table: table},
		},
	}, nil
}
