package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"ad_tracker/internal/domain"
)

type BrandStore struct {
	db *sqlx.DB
}

func NewBrandStore(db *sqlx.DB) *BrandStore {
	return &BrandStore{db: db}
}

func (s *BrandStore) FindBySourceID(ctx context.Context, sourceID string) (*domain.Brand, error) {
	var brand domain.Brand
	query := `
		SELECT id, source_id, name, total_ads, created_at, updated_at
		FROM brands
		WHERE source_id = $1`

	err := s.db.GetContext(ctx, &brand, query, sourceID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &brand, nil
}

func (s *BrandStore) Create(ctx context.Context, brand *domain.Brand) (int64, error) {
	query := `
		INSERT INTO brands (source_id, name, total_ads)
		VALUES ($1, $2, $3)
		RETURNING id`

	var id int64
	err := s.db.QueryRowContext(ctx, query,
		brand.SourceID,
		brand.Name,
		brand.TotalAds,
	).Scan(&id)
	if err != nil {
		return 0, err
	}

	brand.ID = id
	return id, nil
}

func (s *BrandStore) UpdateTotalAds(ctx context.Context, id int64, total int) error {
	query := `UPDATE brands SET total_ads = $2, updated_at = now() WHERE id = $1`
	_, err := s.db.ExecContext(ctx, query, id, total)
	return err
}

// ListSourceIDs returns every distinct tracked source identifier.
func (s *BrandStore) ListSourceIDs(ctx context.Context) ([]string, error) {
	query := `
		SELECT DISTINCT source_id
		FROM brands
		WHERE source_id IS NOT NULL AND source_id <> ''
		ORDER BY source_id`

	var ids []string
	if err := s.db.SelectContext(ctx, &ids, query); err != nil {
		return nil, err
	}
	return ids, nil
}
