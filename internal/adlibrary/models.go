package adlibrary

import "ad_tracker/internal/domain"

// APIResponse is the ad-library list endpoint envelope.
type APIResponse struct {
	Ads []domain.RemoteAd `json:"ads"`
}
