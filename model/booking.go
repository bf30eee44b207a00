package model

const (
	BookingActive    = "ACTIVE"
	BookingCancelled = "CANCELLED"
)

type Booking struct {
	DTO
	ClientID      uint    `gorm:"not null;index" json:"clientId"`
	SpaceID       uint    `gorm:"not null;index" json:"spaceId"`
	RentAmount    float64 `gorm:"not null" json:"rentAmount"`
	Discount      float64 `gorm:"not null;default:0" json:"discount"`
	AdvanceAmount float64 `gorm:"not null;default:0" json:"advanceAmount"`
	// Denormalized running balance. Every charge/payment mutation site
	// adjusts it; the due-list reports recompute the same figure from
	// aggregates and the nightly reconciliation job records divergence.
	DueAmount      float64 `gorm:"not null;default:0" json:"dueAmount"`
	BookingStatus  string  `gorm:"not null;default:'ACTIVE'" json:"bookingStatus"`
	EventSessionID uint    `gorm:"not null;index" json:"eventSessionId"`

	Client Client `gorm:"foreignKey:ClientID" json:"client"`
	Space  Space  `gorm:"foreignKey:SpaceID" json:"space"`
}

type Bookings []Booking

type CreateBookingInput struct {
	ClientID      uint    `json:"clientId" validate:"required"`
	SpaceID       uint    `json:"spaceId" validate:"required"`
	RentAmount    float64 `json:"rentAmount" validate:"required,gt=0"`
	Discount      float64 `json:"discount" validate:"gte=0"`
	AdvanceAmount float64 `json:"advanceAmount" validate:"gte=0"`
}

type EditBookingInput struct {
	RentAmount *float64 `json:"rentAmount" validate:"omitempty,gt=0"`
	Discount   *float64 `json:"discount" validate:"omitempty,gte=0"`
}

type FilterBooking struct {
	Pagination
	SearchKey string  `json:"searchKey"`
	Status    *string `json:"status"`
}

// ElectricBill charges metered electricity use to a booking.
type ElectricBill struct {
	DTO
	BookingID      uint    `gorm:"not null;index" json:"bookingId"`
	Units          float64 `gorm:"not null" json:"units"`
	Rate           float64 `gorm:"not null" json:"rate"`
	TotalAmount    float64 `gorm:"not null" json:"totalAmount"`
	EventSessionID uint    `gorm:"not null;index" json:"eventSessionId"`

	Booking Booking `gorm:"foreignKey:BookingID" json:"-"`
}

type CreateElectricBillInput struct {
	BookingID uint    `json:"bookingId" validate:"required"`
	Units     float64 `json:"units" validate:"required,gt=0"`
	Rate      float64 `json:"rate" validate:"required,gt=0"`
}

type EditElectricBillInput struct {
	Units *float64 `json:"units" validate:"omitempty,gt=0"`
	Rate  *float64 `json:"rate" validate:"omitempty,gt=0"`
}
