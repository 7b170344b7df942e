package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"ad_tracker/internal/domain"
)

const uniqueViolation = "23505"

const adColumns = `
	id, library_id, brand_id, raw_content, media_status, media_retry_count,
	local_image_url, local_video_url, media_error, media_downloaded_at,
	created_at, updated_at`

type AdStore struct {
	db *sqlx.DB
}

func NewAdStore(db *sqlx.DB) *AdStore {
	return &AdStore{db: db}
}

func (s *AdStore) FindByLibraryID(ctx context.Context, libraryID string) (*domain.Ad, error) {
	var ad domain.Ad
	query := `SELECT ` + adColumns + ` FROM ads WHERE library_id = $1`

	err := s.db.GetContext(ctx, &ad, query, libraryID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ad, nil
}

func (s *AdStore) Create(ctx context.Context, ad *domain.Ad) (int64, error) {
	query := `
		INSERT INTO ads (library_id, brand_id, raw_content, media_status, media_retry_count)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err := s.db.QueryRowContext(ctx, query,
		ad.LibraryID,
		ad.BrandID,
		ad.RawContent,
		ad.MediaStatus,
		ad.MediaRetryCount,
	).Scan(&ad.ID, &ad.CreatedAt)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return 0, domain.ErrDuplicateLibraryID
	}
	if err != nil {
		return 0, err
	}

	return ad.ID, nil
}

// ListByBrand returns every ad for a brand, newest first by ingestion time.
func (s *AdStore) ListByBrand(ctx context.Context, brandID int64) ([]domain.Ad, error) {
	query := `SELECT ` + adColumns + ` FROM ads WHERE brand_id = $1 ORDER BY created_at DESC, id DESC`

	var ads []domain.Ad
	if err := s.db.SelectContext(ctx, &ads, query, brandID); err != nil {
		return nil, err
	}
	return ads, nil
}

// ListPendingMedia selects the next media ingestion batch: pending ads plus
// failed ads still under the retry ceiling, starving retries first.
func (s *AdStore) ListPendingMedia(ctx context.Context, limit, retryCeiling int) ([]domain.Ad, error) {
	query := `
		SELECT ` + adColumns + `
		FROM ads
		WHERE media_status = $1
		   OR (media_status = $2 AND media_retry_count < $3)
		ORDER BY media_retry_count ASC, created_at ASC
		LIMIT $4`

	var ads []domain.Ad
	err := s.db.SelectContext(ctx, &ads, query,
		domain.MediaPending, domain.MediaFailed, retryCeiling, limit)
	if err != nil {
		return nil, err
	}
	return ads, nil
}

func (s *AdStore) CountByBrand(ctx context.Context, brandID int64) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, `SELECT count(*) FROM ads WHERE brand_id = $1`, brandID)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// UpdateContent replaces the raw remote payload, used by reconciliation to
// flip the embedded active flag.
func (s *AdStore) UpdateContent(ctx context.Context, id int64, raw domain.RawContent) error {
	query := `UPDATE ads SET raw_content = $2, updated_at = now() WHERE id = $1`
	res, err := s.db.ExecContext(ctx, query, id, raw)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

func (s *AdStore) SetMediaStatus(ctx context.Context, id int64, status domain.MediaStatus) error {
	query := `UPDATE ads SET media_status = $2, updated_at = now() WHERE id = $1`
	res, err := s.db.ExecContext(ctx, query, id, status)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

// ApplyMediaResult writes the full media-field state after one worker pass.
func (s *AdStore) ApplyMediaResult(ctx context.Context, id int64, result domain.MediaResult) error {
	query := `
		UPDATE ads SET
			media_status = $2,
			media_retry_count = $3,
			local_image_url = $4,
			local_video_url = $5,
			media_error = $6,
			media_downloaded_at = $7,
			updated_at = now()
		WHERE id = $1`

	res, err := s.db.ExecContext(ctx, query,
		id,
		result.Status,
		result.RetryCount,
		result.LocalImageURL,
		result.LocalVideoURL,
		result.Error,
		result.DownloadedAt,
	)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

func checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
