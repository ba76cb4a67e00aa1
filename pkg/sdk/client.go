package homepage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/kailas-cloud/homepage/internal/domain/page"
	chiTransport "github.com/kailas-cloud/homepage/internal/transport/chi"
	healthuc "github.com/kailas-cloud/homepage/internal/usecase/health"
	homeuc "github.com/kailas-cloud/homepage/internal/usecase/home"
	"github.com/kailas-cloud/homepage/internal/view"
)

// Document is the rendered page tree as served by the JSON route.
type Document = view.Document

// Internal interface for substitution in tests.
type homeUseCase interface {
	Home() page.Document
	Render(l homeuc.Locale) (page.Document, error)
}

// Client is the homepage SDK entry point.
type Client struct {
	homeSvc   homeUseCase
	healthSvc healthUseCase
	handler   http.Handler
	obs       *observer
}

// New creates a Client. Page content is validated up front.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{locale: string(homeuc.LocaleEN)}
	for _, o := range opts {
		o.apply(cfg)
	}

	locale, err := homeuc.ParseLocale(cfg.locale)
	if err != nil {
		return nil, fmt.Errorf("homepage: %w", err)
	}
	homeSvc, err := homeuc.New(locale)
	if err != nil {
		return nil, fmt.Errorf("homepage: %w", err)
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	healthSvc := healthuc.New(homeSvc, nil)
	server := chiTransport.NewServer(homeSvc, healthSvc, zap.NewNop())
	r := chi.NewRouter()
	server.PageRoutes(r, cfg.apiKeys)

	return &Client{
		homeSvc:   homeSvc,
		healthSvc: healthSvc,
		handler:   r,
		obs:       obs,
	}, nil
}

// Handler serves the page at "/" and its JSON document at "/api/home".
// Mount it under the host's home route.
func (c *Client) Handler() http.Handler {
	return c.handler
}

// Document renders the page tree. An empty lang selects the default locale.
func (c *Client) Document(ctx context.Context, lang string) (doc Document, err error) {
	start := time.Now()
	defer func() { c.obs.observe("document", start, err) }()

	p, err := c.render(ctx, lang)
	if err != nil {
		return Document{}, err
	}
	return view.FromPage(p), nil
}

// WriteHTML renders the page as a standalone HTML document to w.
// Nothing is written when rendering fails.
func (c *Client) WriteHTML(ctx context.Context, w io.Writer, lang string) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("write_html", start, err) }()

	p, err := c.render(ctx, lang)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err = view.HTML(&buf, p); err != nil {
		return fmt.Errorf("homepage: %w", err)
	}
	if _, err = buf.WriteTo(w); err != nil {
		return fmt.Errorf("homepage: write html: %w", err)
	}
	return nil
}

func (c *Client) render(ctx context.Context, lang string) (page.Document, error) {
	if err := ctx.Err(); err != nil {
		return page.Document{}, fmt.Errorf("homepage: %w", err)
	}
	if lang == "" {
		return c.homeSvc.Home(), nil
	}
	locale, err := homeuc.ParseLocale(lang)
	if err != nil {
		return page.Document{}, fmt.Errorf("homepage: %w", err)
	}
	p, err := c.homeSvc.Render(locale)
	if err != nil {
		return page.Document{}, fmt.Errorf("homepage: %w", err)
	}
	return p, nil
}
