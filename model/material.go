package model

import "time"

const (
	ItemAvailable = "AVAILABLE"
	ItemIssued    = "ISSUED"
	ItemDamaged   = "DAMAGED"
)

type MaterialStockItem struct {
	DTO
	Name     string `gorm:"not null;index" validate:"required" json:"name"`
	UniqueID string `gorm:"uniqueIndex;size:20;not null" json:"uniqueId"`
	// Derived from the material name and location: first letter of the
	// name + 3-letter location code + zero-padded sequence (TMAI0007).
	LocationCode     string `gorm:"size:3" json:"locationCode"`
	Status           string `gorm:"not null;default:'AVAILABLE'" json:"status"`
	IssuedToClientID *uint  `gorm:"index" json:"issuedToClientId"`
	EventSessionID   uint   `gorm:"not null;index" json:"eventSessionId"`

	IssuedToClient *Client           `gorm:"foreignKey:IssuedToClientID" json:"issuedToClient,omitempty"`
	History        []MaterialHistory `gorm:"foreignKey:StockItemID;constraint:OnDelete:CASCADE" json:"-"`
}

// MaterialHistory is the append-only transition log of a stock item,
// cascade-deleted with it.
type MaterialHistory struct {
	DTO
	StockItemID uint   `gorm:"not null;index" json:"stockItemId"`
	FromStatus  string `json:"fromStatus"`
	ToStatus    string `json:"toStatus"`
	ClientID    *uint  `json:"clientId"`
	Note        string `json:"note"`
}

// MaterialIssueRecord is the consolidated per-client-per-day billing row.
// Repeated scans for the same client on the same date accumulate into one
// record: counters go up, asset-number suffixes append to the comma-joined
// numbers columns, and billable overage lands on TotalPayable/BalanceDue.
type MaterialIssueRecord struct {
	DTO
	ClientID       uint      `gorm:"not null;index" json:"clientId"`
	IssueDate      time.Time `gorm:"not null;index" json:"issueDate"`
	FreeTables     int       `gorm:"not null;default:0" json:"freeTables"`
	PaidTables     int       `gorm:"not null;default:0" json:"paidTables"`
	FreeChairs     int       `gorm:"not null;default:0" json:"freeChairs"`
	PaidChairs     int       `gorm:"not null;default:0" json:"paidChairs"`
	PlywoodCount   int       `gorm:"not null;default:0" json:"plywoodCount"`
	TableNumbers   string    `json:"tableNumbers"`
	ChairNumbers   string    `json:"chairNumbers"`
	PlywoodNumbers string    `json:"plywoodNumbers"`
	TotalPayable   float64   `gorm:"not null;default:0" json:"totalPayable"`
	BalanceDue     float64   `gorm:"not null;default:0" json:"balanceDue"`
	EventSessionID uint      `gorm:"not null;index" json:"eventSessionId"`

	Client Client `gorm:"foreignKey:ClientID" json:"client"`
}

type CreateStockInput struct {
	Name         string `json:"name" validate:"required"`
	LocationCode string `json:"locationCode" validate:"required,len=3"`
	Quantity     int    `json:"quantity" validate:"required,gt=0"`
}

type IssueItemInput struct {
	UniqueID string `json:"uniqueId" validate:"required"`
	ClientID uint   `json:"clientId" validate:"required"`
}

type ReturnItemInput struct {
	UniqueID string `json:"uniqueId" validate:"required"`
	Status   string `json:"status"` // "DAMAGED" or anything else → AVAILABLE
}

type FilterStock struct {
	Pagination
	SearchKey string  `json:"searchKey"`
	Status    *string `json:"status"`
	ClientID  *uint   `json:"clientId"`
}

// ScanEvent is what the live feed publishes on every issue/return.
type ScanEvent struct {
	UniqueID  string `json:"uniqueId"`
	ItemName  string `json:"itemName"`
	Status    string `json:"status"`
	ClientID  *uint  `json:"clientId,omitempty"`
	Billed    bool   `json:"billed"`
	SessionID uint   `json:"sessionId"`
}
