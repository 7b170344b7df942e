package domain

import "time"

// Brand is one tracked ad-library source (page/advertiser).
type Brand struct {
	ID        int64     `db:"id"`
	SourceID  string    `db:"source_id"`
	Name      string    `db:"name"`
	TotalAds  int       `db:"total_ads"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
