package model

import "time"

const (
	PayCash = "CASH"
	PayUPI  = "UPI"
)

// Payment apportions a received amount across the four charge buckets of a
// booking. Creating one decrements the booking due by the grand total.
type Payment struct {
	DTO
	BookingID      uint      `gorm:"not null;index" json:"bookingId"`
	RentAmount     float64   `gorm:"not null;default:0" json:"rentAmount"`
	ElectricAmount float64   `gorm:"not null;default:0" json:"electricAmount"`
	MaterialAmount float64   `gorm:"not null;default:0" json:"materialAmount"`
	ShedAmount     float64   `gorm:"not null;default:0" json:"shedAmount"`
	Method         string    `gorm:"not null;default:'CASH'" json:"method"`
	ReceiptNo      string    `gorm:"uniqueIndex;size:20" json:"receiptNo"`
	PaymentDate    time.Time `json:"paymentDate"`
	ReceivedBy     uint      `json:"receivedBy"`
	EventSessionID uint      `gorm:"not null;index" json:"eventSessionId"`

	Booking Booking `gorm:"foreignKey:BookingID" json:"-"`
}

func (p Payment) Total() float64 {
	return p.RentAmount + p.ElectricAmount + p.MaterialAmount + p.ShedAmount
}

type CreatePaymentInput struct {
	BookingID      uint    `json:"bookingId" validate:"required"`
	RentAmount     float64 `json:"rentAmount" validate:"gte=0"`
	ElectricAmount float64 `json:"electricAmount" validate:"gte=0"`
	MaterialAmount float64 `json:"materialAmount" validate:"gte=0"`
	ShedAmount     float64 `json:"shedAmount" validate:"gte=0"`
	Method         string  `json:"method" validate:"required,oneof=CASH UPI"`
}

type FilterPayment struct {
	Pagination
	BookingID *uint      `json:"bookingId"`
	Method    *string    `json:"method"`
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
}
