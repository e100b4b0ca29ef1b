package redis

import (
	"context"
	"testing"
	"time"

	"jeoparty-service/internal/domain"
)

type countingLoader struct {
	calls   int
	catalog domain.Catalog
}

func (l *countingLoader) LoadCatalog(_ context.Context) (domain.Catalog, error) {
	l.calls++
	return l.catalog, nil
}

func sampleCatalog() domain.Catalog {
	return domain.Catalog{Categories: []domain.Category{
		{
			ID:    "c1",
			Title: "General",
			Questions: []domain.Question{
				{ID: "q1", Value: 100, Prompt: "What is 2 + 2?", Answer: "4", Options: []string{"3", "4", "5", "6"}},
			},
		},
	}}
}

func TestCatalogRepositoryCachesInRedis(t *testing.T) {
	client := newTestClient(t)
	loader := &countingLoader{catalog: sampleCatalog()}
	repo := NewCatalogRepository(client, loader, time.Minute)

	catalog, err := repo.GetCatalog(context.Background())
	if err != nil {
		t.Fatalf("get catalog: %v", err)
	}
	if len(catalog.Categories) != 1 || catalog.Categories[0].ID != "c1" {
		t.Fatalf("unexpected catalog: %+v", catalog)
	}
	if loader.calls != 1 {
		t.Fatalf("expected loader once, got %d", loader.calls)
	}

	// Second read is served from redis.
	if _, err := repo.GetCatalog(context.Background()); err != nil {
		t.Fatalf("get catalog 2: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected cache hit, loader calls %d", loader.calls)
	}

	// A fresh repository over the same redis also skips the loader.
	other := &countingLoader{catalog: sampleCatalog()}
	repo2 := NewCatalogRepository(client, other, time.Minute)
	if _, err := repo2.GetCatalog(context.Background()); err != nil {
		t.Fatalf("get catalog 3: %v", err)
	}
	if other.calls != 0 {
		t.Fatalf("expected shared cache hit, loader calls %d", other.calls)
	}
}

func TestCatalogRepositoryIgnoresCorruptCache(t *testing.T) {
	client := newTestClient(t)
	if err := client.Set(context.Background(), "jeoparty:catalog", "{not-json", 0).Err(); err != nil {
		t.Fatalf("seed redis: %v", err)
	}

	loader := &countingLoader{catalog: sampleCatalog()}
	repo := NewCatalogRepository(client, loader, time.Minute)

	catalog, err := repo.GetCatalog(context.Background())
	if err != nil {
		t.Fatalf("get catalog: %v", err)
	}
	if len(catalog.Categories) != 1 {
		t.Fatalf("unexpected catalog: %+v", catalog)
	}
	if loader.calls != 1 {
		t.Fatalf("expected fallback to loader, calls %d", loader.calls)
	}
}
