package service

import (
	"context"
	"fmt"

	"ad_tracker/internal/domain"
)

// ReconcileStatuses diffs every locally known ad against a fresh remote
// snapshot and flips active flags in both directions. The snapshot is one
// bounded best-effort fetch, not an exhaustive walk, so absence only
// infers inactivity; for sources with more remote ads than the snapshot
// size some active ads can be marked inactive spuriously and flip back on
// a later cycle.
func (s *TrackService) ReconcileStatuses(ctx context.Context, sourceID string, brandID int64, boundary *domain.Boundary) (*domain.ReconcileStats, error) {
	snapshot, err := s.client.ListAds(ctx, sourceID, s.config.ReconcileSnapshotSize, 0)
	if err != nil {
		return nil, fmt.Errorf("fetch snapshot: %w", err)
	}

	remote := make(map[string]struct{}, len(snapshot))
	for _, rec := range snapshot {
		remote[rec.ID] = struct{}{}
	}

	local, err := s.ads.ListByBrand(ctx, brandID)
	if err != nil {
		return nil, fmt.Errorf("list ads: %w", err)
	}

	stats := &domain.ReconcileStats{}
	for i := range local {
		ad := &local[i]
		_, present := remote[ad.LibraryID]
		active := ad.RawContent.ActiveOrDefault()

		switch {
		case present && active:
			stats.UnchangedActive++

		case present && !active:
			if err := s.setActive(ctx, ad, true); err != nil {
				s.logger.Error("reactivate ad", "library_id", ad.LibraryID, "error", err)
				continue
			}
			stats.Reactivated++
			s.publishEvent(ctx, "status_changed", ad)

		case !present && active:
			if err := s.setActive(ctx, ad, false); err != nil {
				s.logger.Error("deactivate ad", "library_id", ad.LibraryID, "error", err)
				continue
			}
			stats.BecameInactive++
			s.publishEvent(ctx, "status_changed", ad)
			if boundary != nil && ad.LibraryID == boundary.AdID {
				stats.BoundaryInvalidated = true
			}

		default:
			// absent and already inactive: steady state
		}
	}

	s.logger.Info("statuses reconciled",
		"source_id", sourceID,
		"snapshot", len(snapshot),
		"local", len(local),
		"unchanged_active", stats.UnchangedActive,
		"became_inactive", stats.BecameInactive,
		"reactivated", stats.Reactivated,
	)

	return stats, nil
}

func (s *TrackService) setActive(ctx context.Context, ad *domain.Ad, active bool) error {
	raw, err := ad.RawContent.WithActive(active)
	if err != nil {
		return fmt.Errorf("rewrite content: %w", err)
	}
	if err := s.ads.UpdateContent(ctx, ad.ID, raw); err != nil {
		return fmt.Errorf("update content: %w", err)
	}
	ad.RawContent = raw
	return nil
}
