package model

import "time"

const (
	ShedAvailable = "AVAILABLE"
	ShedAllocated = "ALLOCATED"
)

type Shed struct {
	DTO
	Number         string  `gorm:"not null;index" validate:"required" json:"number"`
	Rate           float64 `json:"rate"`
	Status         string  `gorm:"not null;default:'AVAILABLE'" json:"status"`
	EventSessionID uint    `gorm:"not null;index" json:"eventSessionId"`
}

type CreateShedInput struct {
	Number string  `json:"number" validate:"required"`
	Rate   float64 `json:"rate" validate:"gte=0"`
}

// ShedAllocation assigns a shed to a booking and charges its rent; the
// amount is folded into the booking due balance on create and reversed on
// delete.
type ShedAllocation struct {
	DTO
	BookingID      uint    `gorm:"not null;index" json:"bookingId"`
	ShedID         uint    `gorm:"not null;index" json:"shedId"`
	Rent           float64 `gorm:"not null" json:"rent"`
	EventSessionID uint    `gorm:"not null;index" json:"eventSessionId"`

	Booking Booking `gorm:"foreignKey:BookingID" json:"-"`
	Shed    Shed    `gorm:"foreignKey:ShedID" json:"-"`
}

type CreateShedAllocationInput struct {
	BookingID uint     `json:"bookingId" validate:"required"`
	ShedID    uint     `json:"shedId" validate:"required"`
	Rent      *float64 `json:"rent" validate:"omitempty,gte=0"` // defaults to the shed rate
}

// ShedBill is an extra shed-related charge (repairs, extensions) on top of
// the allocation rent.
type ShedBill struct {
	DTO
	BookingID      uint      `gorm:"not null;index" json:"bookingId"`
	Description    string    `json:"description"`
	Amount         float64   `gorm:"not null" json:"amount"`
	BillDate       time.Time `json:"billDate"`
	EventSessionID uint      `gorm:"not null;index" json:"eventSessionId"`

	Booking Booking `gorm:"foreignKey:BookingID" json:"-"`
}

type CreateShedBillInput struct {
	BookingID   uint    `json:"bookingId" validate:"required"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	BillDate    string  `json:"billDate"`
}

type EditShedBillInput struct {
	Description *string  `json:"description"`
	Amount      *float64 `json:"amount" validate:"omitempty,gt=0"`
}
