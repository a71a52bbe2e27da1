package api

// swagger:model api.ListUsersResponse
type ListUsersResponse struct {
	TotalItems  int            `json:"totalItems" example:"42"`
	TotalPages  int            `json:"totalPages" example:"5"`
	CurrentPage int            `json:"currentPage" example:"1"`
	Users       []UserResponse `json:"users"`
}
