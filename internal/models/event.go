package models

import "gorm.io/gorm"

// Event is a planner's offered event package; its price seeds the total
// amount of bookings made against that planner.
type Event struct {
	gorm.Model
	Name      string  `json:"name"`
	Date      string  `json:"date"`
	Theme     string  `json:"theme"`
	Price     float64 `json:"price"`
	Image     string  `json:"image" gorm:"size:500"`
	PlannerID uint    `json:"plannerId" gorm:"index"`
}

func (Event) TableName() string {
	return "events"
}
