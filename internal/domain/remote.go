package domain

import (
	"encoding/json"
	"time"
)

// RemoteAd is one raw record from the ad-library API. Content is kept
// verbatim; it becomes the local ad's RawContent on insert.
type RemoteAd struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Content     json.RawMessage `json:"content"`
	ImageURL    *string         `json:"imageUrl"`
	VideoURL    *string         `json:"videoUrl"`
	Text        *string         `json:"text"`
	Headline    *string         `json:"headline"`
	Description *string         `json:"description"`
	CreatedTime *string         `json:"createdTime"`
}

// EffectiveDate returns the record's start timestamp from its content, or
// its createdTime when the content is undated. ok is false when neither
// parses; the walker then treats the record as newer than any boundary.
func (r RemoteAd) EffectiveDate() (time.Time, bool) {
	if d, ok := RawContent(r.Content).EffectiveDate(); ok {
		return d, true
	}
	if r.CreatedTime != nil {
		if t, err := time.Parse(time.RFC3339, *r.CreatedTime); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
