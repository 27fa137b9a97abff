package models

import "gorm.io/gorm"

// Planner is a service provider who can be rated and assigned to bookings.
// AverageRating and TotalRatings are a materialized view over the ratings
// table, recomputed whenever a rating is added.
type Planner struct {
	gorm.Model
	FullName       string  `json:"fullName" gorm:"not null"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	City           string  `json:"city"`
	Specialization string  `json:"specialization"`
	ProfilePhoto   string  `json:"profilePhoto" gorm:"size:500"`
	AverageRating  float64 `json:"averageRating" gorm:"default:0"`
	TotalRatings   int     `json:"totalRatings" gorm:"default:0"`
}

func (Planner) TableName() string {
	return "planners"
}
