package gorm

// AirlineReview is one traveler review row. Sub-ratings are on a 1-5
// scale; 0 means the traveler did not rate that aspect.
type AirlineReview struct {
	ID                  uint   `gorm:"primaryKey"`
	AirlineName         string `gorm:"column:airline_name;index"`
	CabinType           string `gorm:"column:cabin_type"`
	Title               string `gorm:"column:title"`
	Review              string `gorm:"column:review"`
	FoodRating          int    `gorm:"column:food_rating"`
	GroundServiceRating int    `gorm:"column:ground_service_rating"`
	SeatComfortRating   int    `gorm:"column:seat_comfort_rating"`
	ServiceRating       int    `gorm:"column:service_rating"`
	Recommended         string `gorm:"column:recommended"` // "yes" / "no"
	TravelType          string `gorm:"column:travel_type"`
	Route               string `gorm:"column:route"`
	Aircraft            string `gorm:"column:aircraft"`
}

// TableName overrides the default table name
func (AirlineReview) TableName() string {
	return "airline_reviews"
}
