package gorm

import "time"

// AircraftMetadataCache stores responses from the rate-limited external
// aircraft-metadata API. Rows with empty Data are negative cache hits:
// the API was asked and had nothing, so don't ask again until the row
// goes stale.
type AircraftMetadataCache struct {
	Registration     string    `gorm:"column:registration;primaryKey;size:20"`
	Data             string    `gorm:"column:data;type:text"`
	ImageURL         string    `gorm:"column:image_url"`
	ImageAttribution string    `gorm:"column:image_attribution"`
	FetchedAt        time.Time `gorm:"column:fetched_at;not null"`
}

// TableName overrides the default table name
func (AircraftMetadataCache) TableName() string {
	return "aircraft_metadata_cache"
}
