package homepage

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	locale  string
	apiKeys []string

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

// WithLocale sets the locale used when a request names none. Default: "en".
func WithLocale(tag string) Option {
	return optionFunc(func(c *clientConfig) {
		c.locale = tag
	})
}

// WithAPIKeys guards the JSON document route of Handler with Bearer keys.
// The HTML page stays public.
func WithAPIKeys(keys ...string) Option {
	return optionFunc(func(c *clientConfig) {
		c.apiKeys = append(c.apiKeys, keys...)
	})
}

// WithLogger enables structured logging for SDK operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers SDK metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
