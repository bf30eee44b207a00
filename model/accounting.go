package model

import "time"

const (
	TxIncome      = "INCOME"
	TxExpenditure = "EXPENDITURE"
)

// AccountingTransaction is a general ledger row, independent of
// booking-linked payments but partially mirrored from them (see the
// one-time migration in database.SeedData).
type AccountingTransaction struct {
	DTO
	Date           time.Time `gorm:"not null;index" json:"date"`
	Type           string    `gorm:"not null" json:"type"` // INCOME | EXPENDITURE
	Category       string    `gorm:"not null;index" json:"category"`
	Description    string    `json:"description"`
	Amount         float64   `gorm:"not null" json:"amount"`
	AddedBy        string    `json:"addedBy"`
	ReferenceCode  string    `gorm:"size:20;index" json:"referenceCode"`
	EventSessionID uint      `gorm:"not null;index" json:"eventSessionId"`
}

type CreateTransactionInput struct {
	Date        string  `json:"date" validate:"required"`
	Type        string  `json:"type" validate:"required,oneof=INCOME EXPENDITURE"`
	Category    string  `json:"category" validate:"required"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
}

type EditTransactionInput struct {
	Date        *string  `json:"date"`
	Type        *string  `json:"type" validate:"omitempty,oneof=INCOME EXPENDITURE"`
	Category    *string  `json:"category"`
	Description *string  `json:"description"`
	Amount      *float64 `json:"amount" validate:"omitempty,gt=0"`
}

type FilterTransaction struct {
	Pagination
	Type      *string    `json:"type" validate:"omitempty,oneof=INCOME EXPENDITURE"`
	Category  *string    `json:"category"`
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
}

// DueMismatch records a divergence between the stored booking due balance
// and the figure recomputed from raw aggregates. Written by the nightly
// reconciliation job; never auto-corrected.
type DueMismatch struct {
	DTO
	BookingID      uint    `gorm:"not null;index" json:"bookingId"`
	StoredDue      float64 `json:"storedDue"`
	ComputedDue    float64 `json:"computedDue"`
	Difference     float64 `json:"difference"`
	EventSessionID uint    `gorm:"not null;index" json:"eventSessionId"`
}
