package health

import (
	"context"
	"errors"
	"testing"
)

// --- Mocks ---

type mockCatalog struct {
	err error
}

func (m *mockCatalog) Validate() error { return m.err }

type mockRenderer struct {
	err error
}

func (m *mockRenderer) HealthCheck(_ context.Context) error { return m.err }

// --- Tests ---

func TestCheck_AllHealthy(t *testing.T) {
	svc := New(&mockCatalog{}, &mockRenderer{})
	r := svc.Check(context.Background())

	if r.Status != Healthy {
		t.Errorf("expected %q, got %q", Healthy, r.Status)
	}
	if r.Checks["catalog"] != CheckOK {
		t.Errorf("expected catalog %q, got %q", CheckOK, r.Checks["catalog"])
	}
	if r.Checks["render"] != CheckOK {
		t.Errorf("expected render %q, got %q", CheckOK, r.Checks["render"])
	}
}

func TestCheck_RenderError(t *testing.T) {
	svc := New(&mockCatalog{}, &mockRenderer{err: errors.New("template")})
	r := svc.Check(context.Background())

	if r.Status != Degraded {
		t.Errorf("expected %q, got %q", Degraded, r.Status)
	}
	if r.Checks["render"] != CheckError {
		t.Errorf("expected render %q, got %q", CheckError, r.Checks["render"])
	}
}

func TestCheck_BothFail(t *testing.T) {
	svc := New(
		&mockCatalog{err: errors.New("duplicate key")},
		&mockRenderer{err: errors.New("template")},
	)
	r := svc.Check(context.Background())

	if r.Status != Unhealthy {
		t.Errorf("expected %q, got %q", Unhealthy, r.Status)
	}
}

func TestCheck_NoRenderer(t *testing.T) {
	svc := New(&mockCatalog{}, nil)
	r := svc.Check(context.Background())

	if r.Status != Healthy {
		t.Errorf("expected %q, got %q", Healthy, r.Status)
	}
	if _, ok := r.Checks["render"]; ok {
		t.Error("render check should be absent when renderer is nil")
	}
}

func TestCheck_NoRenderer_CatalogError(t *testing.T) {
	svc := New(&mockCatalog{err: errors.New("fail")}, nil)
	r := svc.Check(context.Background())

	if r.Status != Unhealthy {
		t.Errorf("expected %q, got %q", Unhealthy, r.Status)
	}
	if r.Checks["catalog"] != CheckError {
		t.Error("expected catalog error")
	}
}
