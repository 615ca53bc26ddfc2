package repositories

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
)

// ReviewAggregates holds per airline + cabin averages over the review
// corpus. Sub-ratings of 0 mean "not rated" and are excluded from the
// averages via NULLIF.
type ReviewAggregates struct {
	AirlineName      string          `db:"airline_name"`
	CabinType        string          `db:"cabin_type"`
	ReviewCount      int             `db:"review_count"`
	AvgFood          sql.NullFloat64 `db:"avg_food"`
	AvgGroundService sql.NullFloat64 `db:"avg_ground_service"`
	AvgSeatComfort   sql.NullFloat64 `db:"avg_seat_comfort"`
	AvgService       sql.NullFloat64 `db:"avg_service"`
	RecommendPct     sql.NullFloat64 `db:"recommend_pct"`
}

// ReviewRow is one review as read for the reviews endpoint.
type ReviewRow struct {
	Title       string `db:"title"`
	Review      string `db:"review"`
	CabinType   string `db:"cabin_type"`
	TravelType  string `db:"travel_type"`
	Route       string `db:"route"`
	Recommended string `db:"recommended"`
}

type AirlineReviewsRepository struct {
	db *sqlx.DB
}

func NewAirlineReviewsRepository(db *sqlx.DB) *AirlineReviewsRepository {
	return &AirlineReviewsRepository{db}
}

// AggregatesAll computes review averages grouped by airline and cabin.
// Run once at startup to build the service-score cache.
func (r *AirlineReviewsRepository) AggregatesAll(ctx context.Context) ([]ReviewAggregates, error) {
	query := `
		SELECT
			airline_name,
			COALESCE(cabin_type, 'Economy Class') AS cabin_type,
			COUNT(*) AS review_count,
			AVG(NULLIF(food_rating, 0)) AS avg_food,
			AVG(NULLIF(ground_service_rating, 0)) AS avg_ground_service,
			AVG(NULLIF(seat_comfort_rating, 0)) AS avg_seat_comfort,
			AVG(NULLIF(service_rating, 0)) AS avg_service,
			SUM(CASE WHEN recommended = 'yes' THEN 1 ELSE 0 END)::float / COUNT(*) * 100 AS recommend_pct
		FROM airline_reviews
		WHERE airline_name IS NOT NULL
		GROUP BY airline_name, cabin_type
		HAVING COUNT(*) >= 1;
	`

	var rows []ReviewAggregates
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}
	return rows, nil
}

// BestByAirline returns up to limit reviews for one airline and cabin,
// recommended reviews first, then by combined rating.
func (r *AirlineReviewsRepository) BestByAirline(ctx context.Context, airlineName, cabinFilter string, limit int) ([]ReviewRow, error) {
	query := `
		SELECT title, review, cabin_type, travel_type, route, recommended
		FROM airline_reviews
		WHERE airline_name ILIKE $1
		  AND cabin_type ILIKE $2
		ORDER BY
			CASE WHEN recommended = 'yes' THEN 0 ELSE 1 END,
			(food_rating + ground_service_rating + seat_comfort_rating + service_rating) DESC
		LIMIT $3;
	`

	var rows []ReviewRow
	err := r.db.SelectContext(ctx, &rows, query,
		"%"+airlineName+"%",
		"%"+cabinFilter+"%",
		limit,
	)
	if err != nil {
		return nil, err
	}
	return rows, nil
}
