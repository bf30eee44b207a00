package model

type Client struct {
	DTO
	Name    string `gorm:"not null" validate:"required" json:"name"`
	Firm    string `json:"firm"`
	Phone   string `gorm:"index" json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

type Clients []Client

type CreateClientInput struct {
	Name    string `json:"name" validate:"required"`
	Firm    string `json:"firm"`
	Phone   string `json:"phone"`
	Email   string `json:"email" validate:"omitempty,email"`
	Address string `json:"address"`
}

type EditClientInput struct {
	Name    *string `json:"name"`
	Firm    *string `json:"firm"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Address *string `json:"address"`
}

type FilterClient struct {
	Pagination
	SearchKey string `json:"searchKey"`
}
