package config

import "testing"

func TestValidate_InvalidPort(t *testing.T) {
	cfg := Config{
		HTTP: HTTPConfig{Port: 70000},
		Site: SiteConfig{DefaultLocale: "en"},
	}

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for invalid port")
	}
}

func TestValidate_InvalidLocale(t *testing.T) {
	cfg := Config{
		HTTP: HTTPConfig{Port: 8080},
		Site: SiteConfig{DefaultLocale: "fr"},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for unsupported locale")
	}

	expected := `site.default_locale must be "en" or "zh", got "fr"`
	if err.Error() != expected {
		t.Errorf("unexpected error message:\ngot:  %q\nwant: %q", err.Error(), expected)
	}
}

func TestValidate_LogLevels(t *testing.T) {
	for _, level := range []string{"", "debug", "info", "warn", "error"} {
		t.Run("level="+level, func(t *testing.T) {
			cfg := Config{
				HTTP:    HTTPConfig{Port: 8080},
				Site:    SiteConfig{DefaultLocale: "zh"},
				Logging: LoggingConfig{Level: level},
			}
			if err := cfg.Validate(); err != nil {
				t.Fatalf("unexpected error for level %q: %v", level, err)
			}
		})
	}

	cfg := Config{
		HTTP:    HTTPConfig{Port: 8080},
		Site:    SiteConfig{DefaultLocale: "en"},
		Logging: LoggingConfig{Level: "trace"},
	}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for level trace")
	}
}

func TestApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()

	if cfg.HTTP.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.HTTP.Port)
	}
	if cfg.HTTP.ReadTimeoutSec != 10 || cfg.HTTP.WriteTimeoutSec != 10 || cfg.HTTP.ShutdownSec != 10 {
		t.Errorf("timeouts = %+v", cfg.HTTP)
	}
	if cfg.Site.DefaultLocale != "en" {
		t.Errorf("default locale = %q, want en", cfg.Site.DefaultLocale)
	}
}

func TestParse_ExpandsEnvVars(t *testing.T) {
	t.Setenv("HOMEPAGE_PORT", "9090")
	t.Setenv("HOMEPAGE_API_KEY", "secret")

	cfg, err := Parse([]byte(`
http:
  port: ${HOMEPAGE_PORT}
auth:
  api_keys: ["${HOMEPAGE_API_KEY}"]
site:
  default_locale: ${HOMEPAGE_LOCALE:-zh}
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.HTTP.Port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.HTTP.Port)
	}
	if len(cfg.Auth.APIKeys) != 1 || cfg.Auth.APIKeys[0] != "secret" {
		t.Errorf("api keys = %v", cfg.Auth.APIKeys)
	}
	if cfg.Site.DefaultLocale != "zh" {
		t.Errorf("default locale = %q, want zh", cfg.Site.DefaultLocale)
	}
}

func TestParse_Invalid(t *testing.T) {
	if _, err := Parse([]byte("http: [")); err == nil {
		t.Fatal("expected YAML error")
	}
	if _, err := Parse([]byte("site:\n  default_locale: de\n")); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestLoad_LocalConfig(t *testing.T) {
	cfg, err := Load("local")
	if err != nil {
		t.Fatalf("Load(local): %v", err)
	}
	if cfg.HTTP.Port <= 0 {
		t.Errorf("port = %d", cfg.HTTP.Port)
	}
}
