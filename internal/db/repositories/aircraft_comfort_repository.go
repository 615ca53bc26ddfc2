package repositories

import (
	"context"

	"airease/backend/internal/models/gorm"

	gormlib "gorm.io/gorm"
)

// AircraftComfortRepository handles aircraft_comfort table operations
type AircraftComfortRepository struct {
	db *gormlib.DB
}

// NewAircraftComfortRepository creates a new aircraft comfort repository
func NewAircraftComfortRepository(db *gormlib.DB) *AircraftComfortRepository {
	return &AircraftComfortRepository{db: db}
}

// ListAll returns every comfort row. Called once at startup to build
// the in-memory resolver.
func (r *AircraftComfortRepository) ListAll(ctx context.Context) ([]gorm.AircraftComfort, error) {
	var rows []gorm.AircraftComfort
	err := r.db.WithContext(ctx).
		Order("aircraft_model").
		Find(&rows).Error
	return rows, err
}

// FindByModel finds a comfort row by exact model name (case-insensitive)
func (r *AircraftComfortRepository) FindByModel(ctx context.Context, model string) (*gorm.AircraftComfort, error) {
	var row gorm.AircraftComfort

	err := r.db.WithContext(ctx).
		Where("LOWER(aircraft_model) = LOWER(?)", model).
		First(&row).Error

	if err != nil {
		if err == gormlib.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	return &row, nil
}

// BatchInsert inserts multiple comfort rows
func (r *AircraftComfortRepository) BatchInsert(ctx context.Context, rows []gorm.AircraftComfort) error {
	return r.db.WithContext(ctx).
		CreateInBatches(rows, 100).Error
}

// Count returns total number of comfort rows
func (r *AircraftComfortRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&gorm.AircraftComfort{}).Count(&count).Error
	return count, err
}
