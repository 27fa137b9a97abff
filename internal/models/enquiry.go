package models

import "gorm.io/gorm"

const (
	EnquiryStatusPending = "Pending"
	EnquiryStatusReplied = "Replied"
)

// Enquiry is a customer question; Reply stays null until an admin answers,
// at which point the status flips to Replied.
type Enquiry struct {
	gorm.Model
	Name           string  `json:"name" gorm:"not null"`
	Email          string  `json:"email" gorm:"not null"`
	EnquiryDetails string  `json:"enquiryDetails" gorm:"not null"`
	Reply          *string `json:"reply"`
	Status         string  `json:"status" gorm:"not null;default:'Pending'"`
}

func (Enquiry) TableName() string {
	return "enquiries"
}
