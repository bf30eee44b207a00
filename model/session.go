package model

import "time"

type EventSession struct {
	DTO
	Name      string    `gorm:"not null" validate:"required" json:"name"`
	Location  string    `json:"location"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	// Exactly one session is active at a time; activation flips every
	// other session off inside the same transaction.
	IsActive bool `gorm:"not null;default:false" json:"isActive"`
}

type CreateEventSessionInput struct {
	Name      string `json:"name" validate:"required"`
	Location  string `json:"location"`
	StartDate string `json:"startDate" validate:"required"`
	EndDate   string `json:"endDate" validate:"required"`
}

type EditEventSessionInput struct {
	Name      *string `json:"name"`
	Location  *string `json:"location"`
	StartDate *string `json:"startDate"`
	EndDate   *string `json:"endDate"`
}
