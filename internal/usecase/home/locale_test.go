package home

import (
	"errors"
	"testing"

	"github.com/kailas-cloud/homepage/internal/domain"
)

func TestParseLocale(t *testing.T) {
	tests := []struct {
		in      string
		want    Locale
		wantErr bool
	}{
		{"en", LocaleEN, false},
		{"EN", LocaleEN, false},
		{"en-US", LocaleEN, false},
		{"zh", LocaleZH, false},
		{"zh-CN", LocaleZH, false},
		{"zh_TW", LocaleZH, false},
		{" zh ", LocaleZH, false},
		{"", "", true},
		{"fr", "", true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseLocale(tc.in)
			if tc.wantErr {
				if !errors.Is(err, domain.ErrUnsupportedLocale) {
					t.Fatalf("expected ErrUnsupportedLocale, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("ParseLocale(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestBundlesComplete(t *testing.T) {
	for _, l := range Locales() {
		b := bundles[l]
		if len(b.steps) != 5 {
			t.Errorf("%s: steps = %d, want 5", l, len(b.steps))
		}
		for _, o := range offerings {
			if b.descriptions[o.key] == "" {
				t.Errorf("%s: missing description for row %s", l, o.key)
			}
		}
	}
}
