package home

import (
	"fmt"
	"strings"

	"github.com/kailas-cloud/homepage/internal/domain"
)

// Locale selects the content bundle a page is rendered with.
type Locale string

const (
	// LocaleEN renders English labels.
	LocaleEN Locale = "en"
	// LocaleZH renders the Chinese console labels.
	LocaleZH Locale = "zh"
)

// Locales lists the supported locales in display order.
func Locales() []Locale {
	return []Locale{LocaleEN, LocaleZH}
}

// ParseLocale normalizes a language tag ("zh-CN", "EN") to a supported Locale.
func ParseLocale(s string) (Locale, error) {
	tag := strings.ToLower(strings.TrimSpace(s))
	base, _, _ := strings.Cut(strings.ReplaceAll(tag, "_", "-"), "-")
	l := Locale(base)
	if _, ok := bundles[l]; !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedLocale, s)
	}
	return l, nil
}

func unsupported(l Locale) error {
	return fmt.Errorf("%w: %q", domain.ErrUnsupportedLocale, string(l))
}
