package repositories

import (
	"context"

	"airease/backend/internal/models/gorm"

	gormlib "gorm.io/gorm"
)

// AirlineReliabilityRepository handles airline_reliability table operations
type AirlineReliabilityRepository struct {
	db *gormlib.DB
}

// NewAirlineReliabilityRepository creates a new reliability repository
func NewAirlineReliabilityRepository(db *gormlib.DB) *AirlineReliabilityRepository {
	return &AirlineReliabilityRepository{db: db}
}

// ListAll returns every reliability row for the startup cache load.
func (r *AirlineReliabilityRepository) ListAll(ctx context.Context) ([]gorm.AirlineReliability, error) {
	var rows []gorm.AirlineReliability
	err := r.db.WithContext(ctx).
		Order("code").
		Find(&rows).Error
	return rows, err
}

// FindByCode finds a reliability row by IATA code (case-insensitive)
func (r *AirlineReliabilityRepository) FindByCode(ctx context.Context, code string) (*gorm.AirlineReliability, error) {
	var row gorm.AirlineReliability

	err := r.db.WithContext(ctx).
		Where("UPPER(code) = UPPER(?)", code).
		First(&row).Error

	if err != nil {
		if err == gormlib.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	return &row, nil
}

// BatchInsert inserts multiple reliability rows
func (r *AirlineReliabilityRepository) BatchInsert(ctx context.Context, rows []gorm.AirlineReliability) error {
	return r.db.WithContext(ctx).
		CreateInBatches(rows, 100).Error
}
