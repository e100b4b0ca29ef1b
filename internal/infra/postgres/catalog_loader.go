package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"jeoparty-service/internal/domain"
	"github.com/jackc/pgx/v4/pgxpool"
)

// CatalogLoader loads category JSONB rows from Postgres.
type CatalogLoader struct {
	pool *pgxpool.Pool
}

func NewCatalogLoader(pool *pgxpool.Pool) *CatalogLoader {
	return &CatalogLoader{pool: pool}
}

func (l *CatalogLoader) LoadCatalog(ctx context.Context) (domain.Catalog, error) {
	rows, err := l.pool.Query(ctx, `SELECT id, data FROM categories ORDER BY position, id`)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("load catalog: %w", err)
	}
	defer rows.Close()

	var catalog domain.Catalog
	for rows.Next() {
		var id string
		var raw []byte
		if err := rows.Scan(&id, &raw); err != nil {
			return domain.Catalog{}, fmt.Errorf("scan category: %w", err)
		}
		var cat domain.Category
		if err := json.Unmarshal(raw, &cat); err != nil {
			return domain.Catalog{}, fmt.Errorf("unmarshal category %s: %w", id, err)
		}
		cat.ID = id
		catalog.Categories = append(catalog.Categories, cat)
	}
	if err := rows.Err(); err != nil {
		return domain.Catalog{}, fmt.Errorf("load catalog: %w", err)
	}
	if len(catalog.Categories) == 0 {
		return domain.Catalog{}, domain.ErrCatalogEmpty
	}
	return catalog, nil
}
