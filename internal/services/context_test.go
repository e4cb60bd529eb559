package services_test

import (
	"context"
	"testing"

	"readmark/internal/services"
)

func TestContextHelpers(t *testing.T) {
	ctx := context.Background()
	ctx = services.WithRequestID(ctx, "req-123")
	ctx = services.WithCatalog(ctx, "mangadex")

	if rid, ok := services.RequestIDFromContext(ctx); !ok || rid != "req-123" {
		t.Fatalf("unexpected request id: %v %v", rid, ok)
	}
	if name, ok := services.CatalogFromContext(ctx); !ok || name != "mangadex" {
		t.Fatalf("unexpected catalog: %v %v", name, ok)
	}
}

func TestBlankValuesPreserveContext(t *testing.T) {
	ctx := context.Background()
	ctx = services.WithCatalog(services.WithRequestID(ctx, ""), "")
	if _, ok := services.RequestIDFromContext(ctx); ok {
		t.Fatal("expected no request id")
	}
	if _, ok := services.CatalogFromContext(ctx); ok {
		t.Fatal("expected no catalog")
	}
}

func TestEnsureRequestID(t *testing.T) {
	ctx, id := services.EnsureRequestID(context.Background())
	if id == "" {
		t.Fatal("expected generated id")
	}
	again, same := services.EnsureRequestID(ctx)
	if same != id || again != ctx {
		t.Fatalf("expected existing id to be reused, got %q want %q", same, id)
	}
}
