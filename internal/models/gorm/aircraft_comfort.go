package gorm

// AircraftComfort holds per aircraft-model seat specifications for
// economy and business cabins, loaded once at startup into the
// comfort resolver cache.
type AircraftComfort struct {
	ID                uint    `gorm:"primaryKey"`
	AircraftModel     string  `gorm:"column:aircraft_model;uniqueIndex;not null"`
	SeatWidthEconomy  float64 `gorm:"column:seat_width_economy"`
	SeatPitchEconomy  int     `gorm:"column:seat_pitch_economy"`
	ReclineEconomy    int     `gorm:"column:recline_economy"`
	IFEScreenEconomy  int     `gorm:"column:ife_screen_economy"`
	SeatWidthBusiness float64 `gorm:"column:seat_width_business"`
	SeatPitchBusiness int     `gorm:"column:seat_pitch_business"`
	IFEScreenBusiness int     `gorm:"column:ife_screen_business"`
}

// TableName overrides the default table name
func (AircraftComfort) TableName() string {
	return "aircraft_comfort"
}
