package api

// swagger:model api.LoginResponse
type LoginResponse struct {
	AccessToken string `json:"accessToken" example:"eyJhbGciOi..."`
}
