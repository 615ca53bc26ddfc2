package gorm

// AirlineReliability maps a 2-letter IATA airline code to its on-time
// performance percentage (0-100).
type AirlineReliability struct {
	ID     uint    `gorm:"primaryKey"`
	Code   string  `gorm:"column:code;uniqueIndex;size:3;not null"`
	Name   string  `gorm:"column:name"`
	OTP    float64 `gorm:"column:otp"`
	Region string  `gorm:"column:region"`
}

// TableName overrides the default table name
func (AirlineReliability) TableName() string {
	return "airline_reliability"
}
