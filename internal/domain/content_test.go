package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawContent_Active(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantActive bool
		wantOK     bool
	}{
		{"explicit true", `{"is_active":true}`, true, true},
		{"explicit false", `{"is_active":false}`, false, true},
		{"flag missing", `{"start_date":1700000000}`, false, false},
		{"not json", `<html>`, false, false},
		{"empty", ``, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			active, ok := RawContent(tt.raw).Active()
			assert.Equal(t, tt.wantActive, active)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

// Unparseable payloads default to active so reconciliation never silently
// drops an ad from tracking.
func TestRawContent_ActiveOrDefault_FailsOpen(t *testing.T) {
	assert.True(t, DefaultActiveOnParseError)
	assert.True(t, RawContent(`garbage`).ActiveOrDefault())
	assert.False(t, RawContent(`{"is_active":false}`).ActiveOrDefault())
}

func TestRawContent_EffectiveDate_EpochSeconds(t *testing.T) {
	raw := RawContent(`{"is_active":true,"start_date":1700000000}`)

	d, ok := raw.EffectiveDate()
	require.True(t, ok)
	assert.Equal(t, time.Unix(1700000000, 0).UTC(), d)
}

func TestRawContent_EffectiveDate_DateStrings(t *testing.T) {
	tests := []struct {
		raw  string
		want time.Time
	}{
		{`{"start_date":"2024-03-01T12:30:00Z"}`, time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)},
		{`{"start_date":"2024-03-01"}`, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		d, ok := RawContent(tt.raw).EffectiveDate()
		require.True(t, ok, tt.raw)
		assert.Equal(t, tt.want, d)
	}
}

func TestRawContent_EffectiveDate_Unparseable(t *testing.T) {
	assert.True(t, FallbackToCreatedAtOnDateParseError)

	for _, raw := range []string{
		`{"is_active":true}`,
		`{"start_date":"soon"}`,
		`{"start_date":0}`,
		`garbage`,
	} {
		_, ok := RawContent(raw).EffectiveDate()
		assert.False(t, ok, raw)
	}
}

func TestAd_EffectiveDate_FallsBackToCreatedAt(t *testing.T) {
	createdAt := time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)
	ad := Ad{RawContent: RawContent(`{"is_active":true}`), CreatedAt: createdAt}

	assert.Equal(t, createdAt, ad.EffectiveDate())
}

func TestRawContent_WithActive_PreservesOtherFields(t *testing.T) {
	raw := RawContent(`{"is_active":true,"start_date":1700000000,"snapshot":{"body":"text"}}`)

	flipped, err := raw.WithActive(false)
	require.NoError(t, err)

	active, ok := flipped.Active()
	require.True(t, ok)
	assert.False(t, active)

	d, ok := flipped.EffectiveDate()
	require.True(t, ok)
	assert.Equal(t, time.Unix(1700000000, 0).UTC(), d)
	assert.Contains(t, string(flipped), `"body":"text"`)
}

func TestRawContent_WithActive_Unparseable(t *testing.T) {
	_, err := RawContent(`not json`).WithActive(true)
	assert.Error(t, err)
}
