package model

type Account struct {
	DTO
	Username string `gorm:"uniqueIndex;not null" validate:"required,min=3,max=50" json:"username"`
	Password string `gorm:"not null" validate:"required,min=6,max=50" json:"-"`
	FullName string `json:"fullName"`
	Active   bool   `gorm:"not null;default:true" json:"active"`
	Role     string `gorm:"not null;default:'user'" json:"role"`
}

type Accounts []Account

type CreateAccountInput struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6,max=50"`
	FullName string `json:"fullName"`
	Role     string `json:"role" validate:"required,oneof=admin accountant booking_manager ticketing_manager material_handler user"`
}

type UpdateAccountInput struct {
	Username *string `json:"username,omitempty"`
	FullName *string `json:"fullName,omitempty"`
	Active   *bool   `json:"active,omitempty"`
	Role     *string `json:"role,omitempty" validate:"omitempty,oneof=admin accountant booking_manager ticketing_manager material_handler user"`
}

type FilterAccount struct {
	Pagination
	SearchKey string  `json:"searchKey"`
	Active    *bool   `json:"active"`
	Role      *string `json:"role"`
}
