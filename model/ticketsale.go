package model

import "time"

// TicketSale is one seller's gate-ticket sheet for a day. Staff submit the
// count; an accountant settles the sheet, which mirrors an income row into
// the ledger.
type TicketSale struct {
	DTO
	SellerName     string     `gorm:"not null" validate:"required" json:"sellerName"`
	SaleDate       time.Time  `gorm:"not null;index" json:"saleDate"`
	TicketsSold    int        `gorm:"not null" json:"ticketsSold"`
	UnitPrice      float64    `gorm:"not null" json:"unitPrice"`
	TotalAmount    float64    `gorm:"not null" json:"totalAmount"`
	Settled        bool       `gorm:"not null;default:false" json:"settled"`
	SettledAt      *time.Time `json:"settledAt"`
	SettledBy      *uint      `json:"settledBy"`
	EventSessionID uint       `gorm:"not null;index" json:"eventSessionId"`
}

type CreateTicketSaleInput struct {
	SellerName  string  `json:"sellerName" validate:"required"`
	SaleDate    string  `json:"saleDate" validate:"required"`
	TicketsSold int     `json:"ticketsSold" validate:"required,gt=0"`
	UnitPrice   float64 `json:"unitPrice" validate:"required,gt=0"`
}

type FilterTicketSale struct {
	Pagination
	Settled   *bool      `json:"settled"`
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
}
