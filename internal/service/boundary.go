package service

import (
	"context"
	"fmt"

	"ad_tracker/internal/domain"
)

// ResolveBoundary finds the oldest still-active locally known ad for a
// brand. Ads whose payload cannot be parsed count as active (fail-open) so
// an ad never silently drops out of the sync window. A nil boundary means
// the store has nothing to bound incremental pagination against.
func (s *TrackService) ResolveBoundary(ctx context.Context, brandID int64) (*domain.Boundary, error) {
	ads, err := s.ads.ListByBrand(ctx, brandID)
	if err != nil {
		return nil, fmt.Errorf("list ads: %w", err)
	}

	var oldestActive *domain.Ad
	for i := range ads {
		// newest-first order, so the last active ad wins
		if ads[i].RawContent.ActiveOrDefault() {
			oldestActive = &ads[i]
		}
	}
	if oldestActive == nil {
		return nil, nil
	}

	return &domain.Boundary{
		AdID:       oldestActive.LibraryID,
		Date:       oldestActive.EffectiveDate(),
		KnownCount: len(ads),
	}, nil
}
