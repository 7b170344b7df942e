package service

import (
	"context"
	"time"

	"go.uber.org/mock/gomock"

	"ad_tracker/internal/domain"
)

// Absent-from-snapshot ads go inactive; present-but-inactive ads come
// back; the two steady states write nothing.
func (s *TrackServiceTestSuite) TestReconcileStatuses_FourWayClassification() {
	ctx := context.Background()
	now := time.Now().UTC()

	snapshot := []domain.RemoteAd{
		remoteAd("steady", true, now),
		remoteAd("comeback", true, now),
	}
	s.client.EXPECT().ListAds(ctx, "src-1", 2000, 0).Return(snapshot, nil)

	local := []domain.Ad{
		storedAd(1, "steady", content(true, now), now),
		storedAd(2, "comeback", content(false, now), now),
		storedAd(3, "vanished", content(true, now), now),
		storedAd(4, "long-gone", content(false, now), now),
	}
	s.ads.EXPECT().ListByBrand(ctx, int64(1)).Return(local, nil)

	s.ads.EXPECT().UpdateContent(ctx, int64(2), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, raw domain.RawContent) error {
			s.True(raw.ActiveOrDefault())
			return nil
		},
	)
	s.ads.EXPECT().UpdateContent(ctx, int64(3), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, raw domain.RawContent) error {
			active, ok := raw.Active()
			s.True(ok)
			s.False(active)
			return nil
		},
	)
	s.publisher.EXPECT().PublishAdEvent(ctx, "status_changed", gomock.Any()).Return(nil).Times(2)

	stats, err := s.service.ReconcileStatuses(ctx, "src-1", 1, nil)

	s.NoError(err)
	s.Equal(1, stats.UnchangedActive)
	s.Equal(1, stats.BecameInactive)
	s.Equal(1, stats.Reactivated)
	s.False(stats.BoundaryInvalidated)
}

// The boundary ad dropping out of the snapshot flags a boundary
// recomputation for the next cycle.
func (s *TrackServiceTestSuite) TestReconcileStatuses_FlagsBoundaryInvalidation() {
	ctx := context.Background()
	now := time.Now().UTC()
	boundary := &domain.Boundary{AdID: "B", Date: now.Add(-48 * time.Hour)}

	s.client.EXPECT().ListAds(ctx, "src-1", 2000, 0).Return(nil, nil)

	local := []domain.Ad{
		storedAd(1, "B", content(true, now.Add(-48*time.Hour)), now),
	}
	s.ads.EXPECT().ListByBrand(ctx, int64(1)).Return(local, nil)
	s.ads.EXPECT().UpdateContent(ctx, int64(1), gomock.Any()).Return(nil)
	s.publisher.EXPECT().PublishAdEvent(ctx, "status_changed", gomock.Any()).Return(nil)

	stats, err := s.service.ReconcileStatuses(ctx, "src-1", 1, boundary)

	s.NoError(err)
	s.Equal(1, stats.BecameInactive)
	s.True(stats.BoundaryInvalidated)
}

// A failed content rewrite is logged and skipped; the pass keeps going.
func (s *TrackServiceTestSuite) TestReconcileStatuses_ContinuesOnWriteFailure() {
	ctx := context.Background()
	now := time.Now().UTC()

	s.client.EXPECT().ListAds(ctx, "src-1", 2000, 0).Return(nil, nil)

	local := []domain.Ad{
		storedAd(1, "A", content(true, now), now),
		storedAd(2, "B", content(true, now), now),
	}
	s.ads.EXPECT().ListByBrand(ctx, int64(1)).Return(local, nil)

	s.ads.EXPECT().UpdateContent(ctx, int64(1), gomock.Any()).Return(domain.ErrNotFound)
	s.ads.EXPECT().UpdateContent(ctx, int64(2), gomock.Any()).Return(nil)
	s.publisher.EXPECT().PublishAdEvent(ctx, "status_changed", gomock.Any()).Return(nil)

	stats, err := s.service.ReconcileStatuses(ctx, "src-1", 1, nil)

	s.NoError(err)
	s.Equal(1, stats.BecameInactive)
}
