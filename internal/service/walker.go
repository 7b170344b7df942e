package service

import (
	"context"
	"errors"
	"fmt"

	"ad_tracker/internal/domain"
)

// CollectNewAds walks remote pages from offset 0 and gathers records newer
// than the boundary that the store does not know yet. The walk ends on an
// exact boundary id match, a record dated at or before the boundary, an
// empty or short page, or the page ceiling. Offset pagination offers no
// cursor, so the boundary is the only correctness anchor and the ceiling
// guarantees termination when the boundary never reappears.
func (s *TrackService) CollectNewAds(ctx context.Context, sourceID string, boundary *domain.Boundary) ([]domain.RemoteAd, error) {
	var collected []domain.RemoteAd
	offset := 0

	for page := 0; page < s.config.MaxPages; page++ {
		if page > 0 {
			if err := s.sleep(ctx, s.config.InterPageDelay); err != nil {
				return collected, err
			}
		}

		records, err := s.client.ListAds(ctx, sourceID, s.config.PageSize, offset)
		if err != nil {
			// Transient remote failure: keep what we have and treat the
			// remote as exhausted for this cycle.
			s.logger.Warn("page fetch failed, ending walk",
				"source_id", sourceID,
				"page", page,
				"offset", offset,
				"error", err,
			)
			return collected, nil
		}

		if len(records) == 0 {
			break
		}

		reachedBoundary := false
		for _, rec := range records {
			if rec.ID == boundary.AdID {
				// exact match beats any date comparison
				reachedBoundary = true
				break
			}
			if d, ok := rec.EffectiveDate(); ok && !d.After(boundary.Date) {
				// chronology still bounds us even if the boundary ad
				// itself went invisible remotely
				reachedBoundary = true
				break
			}

			existing, err := s.ads.FindByLibraryID(ctx, rec.ID)
			if err != nil && !errors.Is(err, domain.ErrNotFound) {
				return collected, fmt.Errorf("check existing ad %s: %w", rec.ID, err)
			}
			if existing != nil {
				continue
			}

			collected = append(collected, rec)
		}

		s.logger.Debug("walked page",
			"source_id", sourceID,
			"page", page,
			"records", len(records),
			"collected", len(collected),
			"reached_boundary", reachedBoundary,
		)

		if reachedBoundary || len(records) < s.config.PageSize {
			break
		}
		offset += s.config.PageSize
	}

	return collected, nil
}
