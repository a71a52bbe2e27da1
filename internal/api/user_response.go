package api

import (
	"time"

	"user-hub/internal/model"
)

// BirthDateLayout 出生日期在請求與回應中的格式
const BirthDateLayout = "2006-01-02"

// UserResponse 對外的使用者資料，不含密碼哈希
// swagger:model api.UserResponse
type UserResponse struct {
	ID        string     `json:"id" example:"6f1c7f0e-6b8c-4b9a-9f6e-0a1b2c3d4e5f"`
	FullName  string     `json:"fullName" example:"Alice Example"`
	BirthDate string     `json:"birthDate" example:"1990-01-01"`
	Email     string     `json:"email" example:"alice@example.com"`
	Role      model.Role `json:"role" example:"user"`
	IsBlocked bool       `json:"isBlocked" example:"false"`
	CreatedAt time.Time  `json:"createdAt" example:"2025-05-01T15:04:05Z"`
}

// NewUserResponse 由使用者模型組裝回應
func NewUserResponse(u model.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		FullName:  u.FullName,
		BirthDate: u.BirthDate.Format(BirthDateLayout),
		Email:     u.Email,
		Role:      u.Role,
		IsBlocked: u.IsBlocked,
		CreatedAt: u.CreatedAt,
	}
}
