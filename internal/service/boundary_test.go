package service

import (
	"context"
	"time"

	"ad_tracker/internal/domain"
)

func (s *TrackServiceTestSuite) TestResolveBoundary_EmptyStore() {
	ctx := context.Background()

	s.ads.EXPECT().ListByBrand(ctx, int64(1)).Return(nil, nil)

	boundary, err := s.service.ResolveBoundary(ctx, 1)

	s.NoError(err)
	s.Nil(boundary)
}

func (s *TrackServiceTestSuite) TestResolveBoundary_NoActiveAds() {
	ctx := context.Background()
	now := time.Now().UTC()

	ads := []domain.Ad{
		storedAd(1, "A", content(false, now.Add(-1*time.Hour)), now.Add(-1*time.Hour)),
		storedAd(2, "B", content(false, now.Add(-2*time.Hour)), now.Add(-2*time.Hour)),
	}
	s.ads.EXPECT().ListByBrand(ctx, int64(1)).Return(ads, nil)

	boundary, err := s.service.ResolveBoundary(ctx, 1)

	s.NoError(err)
	s.Nil(boundary)
}

// The boundary is the oldest active ad in the newest-first listing;
// inactive ads in between are skipped.
func (s *TrackServiceTestSuite) TestResolveBoundary_OldestActiveWins() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	ads := []domain.Ad{
		storedAd(3, "C", content(true, now.Add(-1*time.Hour)), now.Add(-1*time.Hour)),
		storedAd(2, "B", content(true, now.Add(-2*time.Hour)), now.Add(-2*time.Hour)),
		storedAd(1, "A", content(false, now.Add(-3*time.Hour)), now.Add(-3*time.Hour)),
	}
	s.ads.EXPECT().ListByBrand(ctx, int64(1)).Return(ads, nil)

	boundary, err := s.service.ResolveBoundary(ctx, 1)

	s.NoError(err)
	s.Require().NotNil(boundary)
	s.Equal("B", boundary.AdID)
	s.Equal(now.Add(-2*time.Hour), boundary.Date)
	s.Equal(3, boundary.KnownCount)
}

// Unparseable content counts as active (fail-open) and dates from the
// local ingestion time (fail-closed).
func (s *TrackServiceTestSuite) TestResolveBoundary_UnparseableContentFailsOpen() {
	ctx := context.Background()
	createdAt := time.Now().UTC().Add(-5 * time.Hour).Truncate(time.Second)

	ads := []domain.Ad{
		storedAd(1, "A", domain.RawContent(`not json at all`), createdAt),
	}
	s.ads.EXPECT().ListByBrand(ctx, int64(1)).Return(ads, nil)

	boundary, err := s.service.ResolveBoundary(ctx, 1)

	s.NoError(err)
	s.Require().NotNil(boundary)
	s.Equal("A", boundary.AdID)
	s.Equal(createdAt, boundary.Date)
}
