package repositories

import (
	"context"
	"time"

	"airease/backend/internal/models/gorm"

	gormlib "gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MetadataCacheRepository handles aircraft_metadata_cache table operations
type MetadataCacheRepository struct {
	db *gormlib.DB
}

// NewMetadataCacheRepository creates a new metadata cache repository
func NewMetadataCacheRepository(db *gormlib.DB) *MetadataCacheRepository {
	return &MetadataCacheRepository{db: db}
}

// FindFresh returns the cached row for a registration if it is newer
// than maxAge. A row with empty Data is a valid negative entry.
func (r *MetadataCacheRepository) FindFresh(ctx context.Context, registration string, maxAge time.Duration) (*gorm.AircraftMetadataCache, error) {
	var row gorm.AircraftMetadataCache

	cutoff := time.Now().Add(-maxAge)
	err := r.db.WithContext(ctx).
		Where("UPPER(registration) = UPPER(?) AND fetched_at > ?", registration, cutoff).
		First(&row).Error

	if err != nil {
		if err == gormlib.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	return &row, nil
}

// Upsert stores or refreshes a cache row keyed by registration.
func (r *MetadataCacheRepository) Upsert(ctx context.Context, row *gorm.AircraftMetadataCache) error {
	row.FetchedAt = time.Now()
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "registration"}},
			UpdateAll: true,
		}).
		Create(row).Error
}

// PurgeStale removes rows older than maxAge.
func (r *MetadataCacheRepository) PurgeStale(ctx context.Context, maxAge time.Duration) (int64, error) {
	cutoff := time.Now().Add(-maxAge)
	res := r.db.WithContext(ctx).
		Where("fetched_at <= ?", cutoff).
		Delete(&gorm.AircraftMetadataCache{})
	return res.RowsAffected, res.Error
}
