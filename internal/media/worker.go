package media

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"ad_tracker/internal/config"
	"ad_tracker/internal/domain"
	"ad_tracker/internal/service"
)

// Stats is a snapshot of the worker's process-lifetime counters. Purely
// observational; no control decision reads them.
type Stats struct {
	Processed int64
	Succeeded int64
	Failed    int64
	Images    int64
	Videos    int64
}

// Worker drains the media ingestion queue: ads whose media has not been
// fetched yet, plus failed ones still under the retry ceiling. Each batch
// is processed strictly sequentially with a delay between ads so the
// uploader never sees a burst.
type Worker struct {
	ads       service.AdStore
	uploader  service.MediaUploader
	publisher service.Publisher
	logger    *slog.Logger
	config    config.MediaConfig
	sleep     service.SleepFunc

	processed atomic.Int64
	succeeded atomic.Int64
	failed    atomic.Int64
	images    atomic.Int64
	videos    atomic.Int64
}

func NewWorker(
	ads service.AdStore,
	uploader service.MediaUploader,
	publisher service.Publisher,
	logger *slog.Logger,
	cfg config.MediaConfig,
	sleep service.SleepFunc,
) *Worker {
	if sleep == nil {
		sleep = service.Sleep
	}
	return &Worker{
		ads:       ads,
		uploader:  uploader,
		publisher: publisher,
		logger:    logger.With("component", "media"),
		config:    cfg,
		sleep:     sleep,
	}
}

// Name identifies the worker to the scheduler.
func (w *Worker) Name() string { return "media" }

// Stats returns the counters accumulated since process start.
func (w *Worker) Stats() Stats {
	return Stats{
		Processed: w.processed.Load(),
		Succeeded: w.succeeded.Load(),
		Failed:    w.failed.Load(),
		Images:    w.images.Load(),
		Videos:    w.videos.Load(),
	}
}

// Run processes one batch of ads awaiting media ingestion.
func (w *Worker) Run(ctx context.Context) error {
	batch, err := w.ads.ListPendingMedia(ctx, w.config.BatchSize, w.config.MaxRetries)
	if err != nil {
		return fmt.Errorf("list pending media: %w", err)
	}
	if len(batch) == 0 {
		return nil
	}

	w.logger.Info("processing media batch", "size", len(batch))

	for i := range batch {
		if i > 0 {
			if err := w.sleep(ctx, w.config.InterAdDelay); err != nil {
				return err
			}
		}
		w.processAd(ctx, &batch[i])
	}

	return nil
}

// processAd drives one ad through pending -> processing -> terminal state.
// Every failure is absorbed here; nothing propagates past the ad.
func (w *Worker) processAd(ctx context.Context, ad *domain.Ad) {
	w.processed.Add(1)

	if err := w.ads.SetMediaStatus(ctx, ad.ID, domain.MediaProcessing); err != nil {
		// could not even claim the ad; leave it for the next batch
		w.logger.Error("mark processing", "ad_id", ad.ID, "error", err)
		return
	}

	imageURL, videoURL, err := w.ingest(ctx, ad)
	if err != nil {
		// an upload completed earlier in this pass survives the failure,
		// so the next attempt does not re-fetch it
		if imageURL != nil {
			ad.LocalImageURL = imageURL
		}
		if videoURL != nil {
			ad.LocalVideoURL = videoURL
		}
		w.recordError(ctx, ad, err)
		return
	}

	if imageURL == nil && videoURL == nil {
		w.recordNoMedia(ctx, ad)
		return
	}

	now := time.Now().UTC()
	result := domain.MediaResult{
		Status:        domain.MediaSuccess,
		RetryCount:    0,
		LocalImageURL: imageURL,
		LocalVideoURL: videoURL,
		DownloadedAt:  &now,
	}
	if err := w.ads.ApplyMediaResult(ctx, ad.ID, result); err != nil {
		w.recordError(ctx, ad, fmt.Errorf("apply media result: %w", err))
		return
	}

	w.succeeded.Add(1)
	if imageURL != nil {
		w.images.Add(1)
	}
	if videoURL != nil {
		w.videos.Add(1)
	}

	ad.MediaStatus = domain.MediaSuccess
	ad.LocalImageURL = imageURL
	ad.LocalVideoURL = videoURL
	w.publishEvent(ctx, "media_ready", ad)

	w.logger.Info("media ingested",
		"ad_id", ad.ID,
		"library_id", ad.LibraryID,
		"image", imageURL != nil,
		"video", videoURL != nil,
	)
}

// ingest extracts candidate URLs and uploads the first accessible image
// and, independently, the first accessible video.
func (w *Worker) ingest(ctx context.Context, ad *domain.Ad) (imageURL, videoURL *string, err error) {
	candidates := ExtractCandidates(ad.RawContent)

	imageURL, err = w.uploadFirstAccessible(ctx, candidates.Images, domain.MediaKindImage)
	if err != nil {
		return nil, nil, err
	}

	videoURL, err = w.uploadFirstAccessible(ctx, candidates.Videos, domain.MediaKindVideo)
	if err != nil {
		return imageURL, nil, err
	}

	return imageURL, videoURL, nil
}

// uploadFirstAccessible probes candidates in order and uploads the first
// one that answers. An inaccessible candidate is skipped, not an error;
// a failed upload of an accessible candidate is.
func (w *Worker) uploadFirstAccessible(ctx context.Context, urls []string, kind domain.MediaKind) (*string, error) {
	for _, mediaURL := range urls {
		if !w.uploader.Probe(ctx, mediaURL) {
			continue
		}
		secureURL, err := w.uploader.Upload(ctx, mediaURL, kind)
		if err != nil {
			return nil, fmt.Errorf("upload %s: %w", kind, err)
		}
		return &secureURL, nil
	}
	return nil, nil
}

// recordNoMedia handles the clean "nothing accessible" outcome: the ad
// stays retry-eligible until the permanent-failure ceiling.
func (w *Worker) recordNoMedia(ctx context.Context, ad *domain.Ad) {
	retryCount := ad.MediaRetryCount + 1
	status := domain.MediaPending
	if retryCount >= w.config.MaxRetries {
		status = domain.MediaFailed
		w.failed.Add(1)
	}

	errMsg := "no accessible media found"
	result := domain.MediaResult{
		Status:        status,
		RetryCount:    retryCount,
		LocalImageURL: ad.LocalImageURL,
		LocalVideoURL: ad.LocalVideoURL,
		Error:         &errMsg,
	}
	if err := w.ads.ApplyMediaResult(ctx, ad.ID, result); err != nil {
		w.logger.Error("record no media", "ad_id", ad.ID, "error", err)
		return
	}

	w.logger.Warn("no accessible media",
		"ad_id", ad.ID,
		"library_id", ad.LibraryID,
		"retry_count", retryCount,
		"status", status,
	)
}

// recordError handles the exception path, which fails permanently at a
// lower ceiling than plain inaccessibility.
func (w *Worker) recordError(ctx context.Context, ad *domain.Ad, cause error) {
	retryCount := ad.MediaRetryCount + 1
	status := domain.MediaPending
	if retryCount >= w.config.MaxErrorRetries {
		status = domain.MediaFailed
		w.failed.Add(1)
	}

	errMsg := cause.Error()
	result := domain.MediaResult{
		Status:        status,
		RetryCount:    retryCount,
		LocalImageURL: ad.LocalImageURL,
		LocalVideoURL: ad.LocalVideoURL,
		Error:         &errMsg,
	}
	if err := w.ads.ApplyMediaResult(ctx, ad.ID, result); err != nil {
		w.logger.Error("record media error", "ad_id", ad.ID, "error", err)
	}

	w.logger.Warn("media ingestion failed",
		"ad_id", ad.ID,
		"library_id", ad.LibraryID,
		"retry_count", retryCount,
		"status", status,
		"error", cause,
	)
}

func (w *Worker) publishEvent(ctx context.Context, event string, ad *domain.Ad) {
	if w.publisher == nil {
		return
	}
	if err := w.publisher.PublishAdEvent(ctx, event, ad); err != nil {
		w.logger.Warn("publish event", "event", event, "library_id", ad.LibraryID, "error", err)
	}
}
