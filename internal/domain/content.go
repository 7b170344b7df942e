package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Parse-fallback policies for RawContent. The remote payload is not under
// our control; when it cannot be interpreted, an ad is assumed active
// (fail-open, so reconciliation never silently drops it from tracking) and
// dating falls back to the local ingestion time (fail-closed).
const (
	DefaultActiveOnParseError           = true
	FallbackToCreatedAtOnDateParseError = true
)

// RawContent is the opaque remote ad payload. The core reads exactly two
// fields out of it (active flag, start timestamp) and rewrites exactly one
// (the active flag); everything else passes through untouched.
type RawContent []byte

// Value sends the payload as text so it lands in a jsonb column, not bytea.
func (c RawContent) Value() (driver.Value, error) {
	if len(c) == 0 {
		return "{}", nil
	}
	return string(c), nil
}

func (c *RawContent) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*c = nil
	case []byte:
		*c = append(RawContent(nil), v...)
	case string:
		*c = RawContent(v)
	default:
		return fmt.Errorf("unsupported raw content source type %T", src)
	}
	return nil
}

type contentEnvelope struct {
	IsActive  *bool           `json:"is_active"`
	StartDate json.RawMessage `json:"start_date"`
	EndDate   json.RawMessage `json:"end_date"`
}

// Active reports the payload's active flag. ok is false when the payload
// or the flag cannot be parsed.
func (c RawContent) Active() (active, ok bool) {
	var env contentEnvelope
	if err := json.Unmarshal(c, &env); err != nil || env.IsActive == nil {
		return false, false
	}
	return *env.IsActive, true
}

// ActiveOrDefault applies the fail-open policy on top of Active.
func (c RawContent) ActiveOrDefault() bool {
	active, ok := c.Active()
	if !ok {
		return DefaultActiveOnParseError
	}
	return active
}

// EffectiveDate parses the payload's start timestamp. The remote encodes it
// either as epoch seconds or as a date string depending on endpoint version.
func (c RawContent) EffectiveDate() (time.Time, bool) {
	var env contentEnvelope
	if err := json.Unmarshal(c, &env); err != nil || len(env.StartDate) == 0 {
		return time.Time{}, false
	}

	var epoch float64
	if err := json.Unmarshal(env.StartDate, &epoch); err == nil {
		if epoch <= 0 {
			return time.Time{}, false
		}
		return time.Unix(int64(epoch), 0).UTC(), true
	}

	var s string
	if err := json.Unmarshal(env.StartDate, &s); err != nil || s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// WithActive returns a copy of the payload with the active flag rewritten.
// All other fields survive the round trip.
func (c RawContent) WithActive(active bool) (RawContent, error) {
	var doc map[string]any
	if err := json.Unmarshal(c, &doc); err != nil {
		return nil, err
	}
	doc["is_active"] = active
	out, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	return RawContent(out), nil
}
