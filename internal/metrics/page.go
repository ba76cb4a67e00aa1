package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// PageRendersTotal counts rendered home pages by locale and output format.
var PageRendersTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "homepage",
		Name:      "page_renders_total",
		Help:      "Total number of rendered home pages",
	},
	[]string{"locale", "format"},
)

var registerPageOnce sync.Once

// RegisterPageMetrics registers page metrics with the default registry. Safe to call more than once.
func RegisterPageMetrics() {
	registerPageOnce.Do(func() {
		prometheus.MustRegister(PageRendersTotal)
	})
}

// RecordRender bumps the render counter.
func RecordRender(locale, format string) {
	PageRendersTotal.WithLabelValues(locale, format).Inc()
}
