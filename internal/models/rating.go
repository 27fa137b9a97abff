package models

import "gorm.io/gorm"

// Rating is one user's score for a planner, bounded [1,5]. At most one
// rating exists per (planner, user email) pair; the service layer enforces
// this with a pre-check before insert.
type Rating struct {
	gorm.Model
	PlannerID uint   `json:"plannerId" gorm:"not null;index"`
	UserEmail string `json:"userEmail" gorm:"not null;index"`
	UserName  string `json:"userName" gorm:"not null"`
	Score     int    `json:"rating" gorm:"column:score;not null"`
	Comment   string `json:"comment" gorm:"size:1000"`
}

func (Rating) TableName() string {
	return "ratings"
}
