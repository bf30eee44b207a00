package model

const (
	SpaceAvailable = "AVAILABLE"
	SpaceBooked    = "BOOKED"
	SpaceBlocked   = "BLOCKED"
)

type Space struct {
	DTO
	Number         string  `gorm:"not null;index" validate:"required" json:"number"`
	Type           string  `gorm:"not null;default:'shop'" json:"type"` // shop, pavilion, stall...
	Size           string  `json:"size"`
	Rate           float64 `json:"rate"`
	Status         string  `gorm:"not null;default:'AVAILABLE'" json:"status"`
	EventSessionID uint    `gorm:"not null;index" json:"eventSessionId"`

	EventSession EventSession `gorm:"foreignKey:EventSessionID" json:"-"`
}

type Spaces []Space

type CreateSpaceInput struct {
	Number string  `json:"number" validate:"required"`
	Type   string  `json:"type" validate:"required"`
	Size   string  `json:"size"`
	Rate   float64 `json:"rate" validate:"gte=0"`
}

type EditSpaceInput struct {
	Number *string  `json:"number"`
	Type   *string  `json:"type"`
	Size   *string  `json:"size"`
	Rate   *float64 `json:"rate" validate:"omitempty,gte=0"`
	Status *string  `json:"status" validate:"omitempty,oneof=AVAILABLE BOOKED BLOCKED"`
}

type FilterSpace struct {
	Pagination
	Type   *string `json:"type"`
	Status *string `json:"status"`
}
