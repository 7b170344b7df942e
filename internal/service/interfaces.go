package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"ad_tracker/internal/domain"
)

type BrandStore interface {
	FindBySourceID(ctx context.Context, sourceID string) (*domain.Brand, error)
	Create(ctx context.Context, brand *domain.Brand) (int64, error)
	UpdateTotalAds(ctx context.Context, id int64, total int) error
	ListSourceIDs(ctx context.Context) ([]string, error)
}

type AdStore interface {
	FindByLibraryID(ctx context.Context, libraryID string) (*domain.Ad, error)
	Create(ctx context.Context, ad *domain.Ad) (int64, error)
	ListByBrand(ctx context.Context, brandID int64) ([]domain.Ad, error)
	ListPendingMedia(ctx context.Context, limit, retryCeiling int) ([]domain.Ad, error)
	CountByBrand(ctx context.Context, brandID int64) (int, error)
	UpdateContent(ctx context.Context, id int64, raw domain.RawContent) error
	SetMediaStatus(ctx context.Context, id int64, status domain.MediaStatus) error
	ApplyMediaResult(ctx context.Context, id int64, result domain.MediaResult) error
}

// SourceClient is one paginated read against the remote ad library.
type SourceClient interface {
	ListAds(ctx context.Context, sourceID string, pageSize, offset int) ([]domain.RemoteAd, error)
}

// MediaUploader probes a media origin URL and moves accessible media into
// durable storage.
type MediaUploader interface {
	Probe(ctx context.Context, mediaURL string) bool
	Upload(ctx context.Context, mediaURL string, kind domain.MediaKind) (string, error)
}

type Publisher interface {
	PublishAdEvent(ctx context.Context, event string, ad *domain.Ad) error
	Close() error
}

// SleepFunc is the pause inserted between remote calls. Tests inject a
// no-op so walks and batches run without wall-clock delay.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Sleep is the production SleepFunc; it returns early when ctx is done.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
