package model

import "time"

type TokenData struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type TokenClaim struct {
	AccountId uint   `json:"accountId"`
	Username  string `json:"username"`
	Role      string `json:"role"`
}

type DTO struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ResponseCustom struct {
	Rows       any   `json:"rows"`
	Limit      *int  `json:"limit"`
	Page       *int  `json:"page"`
	TotalCount int64 `json:"totalCount"`
}

type ArrayId struct {
	IDs []uint `json:"ids"`
}

type Pagination struct {
	Limit *int `json:"limit"`
	Page  *int `json:"page"`
}

// SessionScope is resolved per request by middleware.SessionScope and carried
// in c.Locals("scope"): Active is the write target, Viewing the read target.
type SessionScope struct {
	Active  *EventSession
	Viewing *EventSession
}

func (s SessionScope) ViewingID() uint {
	if s.Viewing != nil {
		return s.Viewing.ID
	}
	return s.ActiveID()
}

func (s SessionScope) ActiveID() uint {
	if s.Active != nil {
		return s.Active.ID
	}
	return 0
}

type AdminChangePassword struct {
	AccountId      uint   `json:"accountId"`
	NewPassword    string `json:"newPassword"`
	RepeatPassword string `json:"repeatPassword"`
}
