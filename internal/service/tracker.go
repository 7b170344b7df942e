package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"ad_tracker/internal/config"
	"ad_tracker/internal/domain"
)

// TrackService runs the per-source sync cycle: boundary resolution,
// pagination walk, persistence of new ads, status reconciliation and the
// brand's aggregate refresh.
type TrackService struct {
	client    SourceClient
	brands    BrandStore
	ads       AdStore
	publisher Publisher
	logger    *slog.Logger
	config    config.TrackingConfig
	sleep     SleepFunc
}

func NewTrackService(
	client SourceClient,
	brands BrandStore,
	ads AdStore,
	publisher Publisher,
	logger *slog.Logger,
	cfg config.TrackingConfig,
	sleep SleepFunc,
) *TrackService {
	if sleep == nil {
		sleep = Sleep
	}
	return &TrackService{
		client:    client,
		brands:    brands,
		ads:       ads,
		publisher: publisher,
		logger:    logger.With("component", "tracking"),
		config:    cfg,
		sleep:     sleep,
	}
}

// Name identifies the service to the scheduler.
func (s *TrackService) Name() string { return "tracking" }

// Run executes one full tracking cycle: every tracked source in turn,
// strictly sequentially. A failing source is logged and skipped; the cycle
// carries on with the rest.
func (s *TrackService) Run(ctx context.Context) error {
	sourceIDs, err := s.brands.ListSourceIDs(ctx)
	if err != nil {
		return fmt.Errorf("list sources: %w", err)
	}

	s.logger.Info("starting tracking cycle", "sources", len(sourceIDs))

	for i, sourceID := range sourceIDs {
		if i > 0 {
			if err := s.sleep(ctx, s.config.InterSourceDelay); err != nil {
				return err
			}
		}
		if _, err := s.SyncSource(ctx, sourceID); err != nil {
			s.logger.Error("source cycle failed", "source_id", sourceID, "error", err)
		}
	}

	return nil
}

// SyncSource runs one cycle for a single source. It is also the entry
// point for out-of-band manual triggers.
func (s *TrackService) SyncSource(ctx context.Context, sourceID string) (*domain.CycleStats, error) {
	startTime := time.Now()
	stats := &domain.CycleStats{SourceID: sourceID}

	brand, err := s.brands.FindBySourceID(ctx, sourceID)
	if errors.Is(err, domain.ErrNotFound) {
		brand = &domain.Brand{SourceID: sourceID, Name: sourceID}
		if _, err := s.brands.Create(ctx, brand); err != nil {
			return nil, fmt.Errorf("create brand: %w", err)
		}
		s.logger.Info("tracking new source", "source_id", sourceID)
	} else if err != nil {
		return nil, fmt.Errorf("find brand: %w", err)
	}

	boundary, err := s.ResolveBoundary(ctx, brand.ID)
	if err != nil {
		return nil, fmt.Errorf("resolve boundary: %w", err)
	}

	if boundary == nil {
		// Nothing to bound an incremental walk against; reconciliation
		// below still runs so already-known ads keep converging.
		s.logger.Info("no sync boundary, skipping pagination walk", "source_id", sourceID)
	} else {
		s.logger.Debug("resolved boundary",
			"source_id", sourceID,
			"boundary_ad", boundary.AdID,
			"boundary_date", boundary.Date,
			"known_ads", boundary.KnownCount,
		)

		collected, err := s.CollectNewAds(ctx, sourceID, boundary)
		if err != nil {
			return nil, fmt.Errorf("collect new ads: %w", err)
		}
		stats.NewAds, stats.Errors = s.persistNewAds(ctx, brand.ID, collected)
	}

	reconcile, err := s.ReconcileStatuses(ctx, sourceID, brand.ID, boundary)
	if err != nil {
		return stats, fmt.Errorf("reconcile statuses: %w", err)
	}
	stats.UnchangedActive = reconcile.UnchangedActive
	stats.BecameInactive = reconcile.BecameInactive
	stats.Reactivated = reconcile.Reactivated
	if reconcile.BoundaryInvalidated {
		s.logger.Info("boundary ad went inactive, next cycle re-derives it",
			"source_id", sourceID,
			"boundary_ad", boundary.AdID,
		)
	}

	total, err := s.ads.CountByBrand(ctx, brand.ID)
	if err != nil {
		return stats, fmt.Errorf("count ads: %w", err)
	}
	if err := s.brands.UpdateTotalAds(ctx, brand.ID, total); err != nil {
		return stats, fmt.Errorf("update total ads: %w", err)
	}
	stats.TotalAds = total
	stats.Duration = time.Since(startTime)

	s.logger.Info("source cycle completed",
		"source_id", sourceID,
		"new_ads", stats.NewAds,
		"unchanged_active", stats.UnchangedActive,
		"became_inactive", stats.BecameInactive,
		"reactivated", stats.Reactivated,
		"total_ads", stats.TotalAds,
		"errors", stats.Errors,
		"duration", stats.Duration,
	)

	return stats, nil
}

// persistNewAds writes collected records with media ingestion pending.
// Duplicate-key failures are benign races with another writer and are
// skipped without counting as errors.
func (s *TrackService) persistNewAds(ctx context.Context, brandID int64, records []domain.RemoteAd) (created, errs int) {
	for _, rec := range records {
		ad := &domain.Ad{
			LibraryID:   rec.ID,
			BrandID:     brandID,
			RawContent:  domain.RawContent(rec.Content),
			MediaStatus: domain.MediaPending,
		}

		if _, err := s.ads.Create(ctx, ad); err != nil {
			if errors.Is(err, domain.ErrDuplicateLibraryID) {
				continue
			}
			s.logger.Error("create ad", "library_id", rec.ID, "error", err)
			errs++
			continue
		}

		created++
		s.publishEvent(ctx, "discovered", ad)
	}
	return created, errs
}

func (s *TrackService) publishEvent(ctx context.Context, event string, ad *domain.Ad) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishAdEvent(ctx, event, ad); err != nil {
		s.logger.Warn("publish event", "event", event, "library_id", ad.LibraryID, "error", err)
	}
}
