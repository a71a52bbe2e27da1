package api

// swagger:model api.RegisterRequest
type RegisterRequest struct {
	FullName  string `json:"fullName" validate:"required" example:"Alice Example"`
	BirthDate string `json:"birthDate" validate:"required" example:"1990-01-01"`
	Email     string `json:"email" validate:"required" example:"alice@example.com"`
	Password  string `json:"password" validate:"required" example:"Secret123!"`
	// 未帶 admin 令牌時一律以 user 角色建立
	Role string `json:"role,omitempty" example:"user"`
}
