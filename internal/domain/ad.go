package domain

import "time"

// MediaKind distinguishes image and video uploads.
type MediaKind string

const (
	MediaKindImage MediaKind = "image"
	MediaKindVideo MediaKind = "video"
)

// MediaStatus tracks where an ad sits in the media ingestion pipeline.
type MediaStatus string

const (
	MediaPending    MediaStatus = "pending"
	MediaProcessing MediaStatus = "processing"
	MediaSuccess    MediaStatus = "success"
	MediaFailed     MediaStatus = "failed"
)

// Ad is one remote creative tracked locally. RawContent holds the remote
// payload verbatim; the active flag and start timestamp inside it are the
// only fields the core interprets.
type Ad struct {
	ID                int64       `db:"id"`
	LibraryID         string      `db:"library_id"` // remote identifier, globally unique
	BrandID           int64       `db:"brand_id"`
	RawContent        RawContent  `db:"raw_content"`
	MediaStatus       MediaStatus `db:"media_status"`
	MediaRetryCount   int         `db:"media_retry_count"`
	LocalImageURL     *string     `db:"local_image_url"`
	LocalVideoURL     *string     `db:"local_video_url"`
	MediaError        *string     `db:"media_error"`
	MediaDownloadedAt *time.Time  `db:"media_downloaded_at"`
	CreatedAt         time.Time   `db:"created_at"`
	UpdatedAt         time.Time   `db:"updated_at"`
}

// EffectiveDate is the ad's remote start timestamp when parseable, else the
// local ingestion time (FallbackToCreatedAtOnDateParseError).
func (a *Ad) EffectiveDate() time.Time {
	if d, ok := a.RawContent.EffectiveDate(); ok {
		return d
	}
	return a.CreatedAt
}

// MediaResult is the full media-field state written back after one worker
// pass over an ad.
type MediaResult struct {
	Status        MediaStatus
	RetryCount    int
	LocalImageURL *string
	LocalVideoURL *string
	Error         *string
	DownloadedAt  *time.Time
}
