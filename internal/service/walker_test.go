package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/mock/gomock"

	"ad_tracker/internal/domain"
)

// Page 1 contains the boundary ad itself: the walk collects the records
// before it and never asks for a second page.
func (s *TrackServiceTestSuite) TestCollectNewAds_StopsOnBoundaryID() {
	ctx := context.Background()
	now := time.Now().UTC()
	boundary := &domain.Boundary{AdID: "X", Date: now.Add(-48 * time.Hour)}

	page := []domain.RemoteAd{
		remoteAd("Y", true, now.Add(-24*time.Hour)),
		remoteAd("Z", true, now.Add(-36*time.Hour)),
		remoteAd("X", true, now.Add(-48*time.Hour)),
	}
	s.client.EXPECT().ListAds(ctx, "src-1", 3, 0).Return(page, nil)
	s.ads.EXPECT().FindByLibraryID(ctx, "Y").Return(nil, domain.ErrNotFound)
	s.ads.EXPECT().FindByLibraryID(ctx, "Z").Return(nil, domain.ErrNotFound)

	collected, err := s.service.CollectNewAds(ctx, "src-1", boundary)

	s.NoError(err)
	s.Require().Len(collected, 2)
	s.Equal("Y", collected[0].ID)
	s.Equal("Z", collected[1].ID)
	s.Empty(s.sleeps)
}

// The boundary ad disappeared remotely; a record dated at the boundary
// still ends the walk.
func (s *TrackServiceTestSuite) TestCollectNewAds_StopsOnBoundaryDate() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)
	boundary := &domain.Boundary{AdID: "gone", Date: now.Add(-48 * time.Hour)}

	page := []domain.RemoteAd{
		remoteAd("Y", true, now.Add(-24*time.Hour)),
		remoteAd("old", true, now.Add(-48*time.Hour)),
		remoteAd("older", true, now.Add(-72*time.Hour)),
	}
	s.client.EXPECT().ListAds(ctx, "src-1", 3, 0).Return(page, nil)
	s.ads.EXPECT().FindByLibraryID(ctx, "Y").Return(nil, domain.ErrNotFound)

	collected, err := s.service.CollectNewAds(ctx, "src-1", boundary)

	s.NoError(err)
	s.Require().Len(collected, 1)
	s.Equal("Y", collected[0].ID)
}

// A full page without the boundary forces a second fetch; the short second
// page ends the walk after exactly two remote calls.
func (s *TrackServiceTestSuite) TestCollectNewAds_FollowsFullPages() {
	ctx := context.Background()
	now := time.Now().UTC()
	boundary := &domain.Boundary{AdID: "X", Date: now.Add(-100 * time.Hour)}

	page1 := []domain.RemoteAd{
		remoteAd("A", true, now.Add(-1*time.Hour)),
		remoteAd("B", true, now.Add(-2*time.Hour)),
		remoteAd("C", true, now.Add(-3*time.Hour)),
	}
	page2 := []domain.RemoteAd{
		remoteAd("D", true, now.Add(-4*time.Hour)),
		remoteAd("E", true, now.Add(-5*time.Hour)),
	}
	s.client.EXPECT().ListAds(ctx, "src-1", 3, 0).Return(page1, nil)
	s.client.EXPECT().ListAds(ctx, "src-1", 3, 3).Return(page2, nil)
	for _, id := range []string{"A", "B", "C", "D", "E"} {
		s.ads.EXPECT().FindByLibraryID(ctx, id).Return(nil, domain.ErrNotFound)
	}

	collected, err := s.service.CollectNewAds(ctx, "src-1", boundary)

	s.NoError(err)
	s.Len(collected, 5)
	s.Equal([]time.Duration{s.cfg.InterPageDelay}, s.sleeps)
}

// Records the store already knows are skipped without ending the walk, so
// re-running a walk with no remote changes collects nothing.
func (s *TrackServiceTestSuite) TestCollectNewAds_IdempotentWhenAllKnown() {
	ctx := context.Background()
	now := time.Now().UTC()
	boundary := &domain.Boundary{AdID: "X", Date: now.Add(-48 * time.Hour)}

	page := []domain.RemoteAd{
		remoteAd("Y", true, now.Add(-24*time.Hour)),
		remoteAd("X", true, now.Add(-48*time.Hour)),
	}
	known := storedAd(5, "Y", content(true, now.Add(-24*time.Hour)), now)

	for range 2 {
		s.client.EXPECT().ListAds(ctx, "src-1", 3, 0).Return(page, nil)
		s.ads.EXPECT().FindByLibraryID(ctx, "Y").Return(&known, nil)
	}

	for range 2 {
		collected, err := s.service.CollectNewAds(ctx, "src-1", boundary)
		s.NoError(err)
		s.Empty(collected)
	}
}

func (s *TrackServiceTestSuite) TestCollectNewAds_EmptyPageStops() {
	ctx := context.Background()
	boundary := &domain.Boundary{AdID: "X", Date: time.Now().UTC()}

	s.client.EXPECT().ListAds(ctx, "src-1", 3, 0).Return(nil, nil)

	collected, err := s.service.CollectNewAds(ctx, "src-1", boundary)

	s.NoError(err)
	s.Empty(collected)
}

// The page ceiling guarantees termination even when the remote keeps
// returning full pages of fresh records.
func (s *TrackServiceTestSuite) TestCollectNewAds_RespectsPageCeiling() {
	ctx := context.Background()
	now := time.Now().UTC()
	boundary := &domain.Boundary{AdID: "never", Date: now.Add(-1000 * time.Hour)}

	s.cfg.MaxPages = 2
	s.service.config.MaxPages = 2

	page := func(offset int) []domain.RemoteAd {
		var out []domain.RemoteAd
		for i := range 3 {
			id := string(rune('a'+offset)) + string(rune('0'+i))
			out = append(out, remoteAd(id, true, now.Add(-time.Duration(offset+i)*time.Minute)))
		}
		return out
	}

	s.client.EXPECT().ListAds(ctx, "src-1", 3, 0).Return(page(0), nil)
	s.client.EXPECT().ListAds(ctx, "src-1", 3, 3).Return(page(3), nil)
	s.ads.EXPECT().FindByLibraryID(ctx, gomock.Any()).Return(nil, domain.ErrNotFound).Times(6)

	collected, err := s.service.CollectNewAds(ctx, "src-1", boundary)

	s.NoError(err)
	s.Len(collected, 6)
}

// A failed page fetch ends the walk but keeps what was already collected.
func (s *TrackServiceTestSuite) TestCollectNewAds_FetchErrorEndsWalkEarly() {
	ctx := context.Background()
	now := time.Now().UTC()
	boundary := &domain.Boundary{AdID: "X", Date: now.Add(-48 * time.Hour)}

	page1 := []domain.RemoteAd{
		remoteAd("A", true, now.Add(-1*time.Hour)),
		remoteAd("B", true, now.Add(-2*time.Hour)),
		remoteAd("C", true, now.Add(-3*time.Hour)),
	}
	s.client.EXPECT().ListAds(ctx, "src-1", 3, 0).Return(page1, nil)
	s.client.EXPECT().ListAds(ctx, "src-1", 3, 3).Return(nil, errors.New("remote unavailable"))
	for _, id := range []string{"A", "B", "C"} {
		s.ads.EXPECT().FindByLibraryID(ctx, id).Return(nil, domain.ErrNotFound)
	}

	collected, err := s.service.CollectNewAds(ctx, "src-1", boundary)

	s.NoError(err)
	s.Len(collected, 3)
}
