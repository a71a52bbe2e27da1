// File: internal/handler/users/list_users.go
package users

import (
	"net/http"
	"strconv"

	"user-hub/internal/api"
	"user-hub/internal/database"

	"github.com/labstack/echo/v4"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// queryInt 解析查詢參數，缺少、非數字或小於 1 時回傳預設值
func queryInt(c echo.Context, name string, fallback int) int {
	v, err := strconv.Atoi(c.QueryParam(name))
	if err != nil || v < 1 {
		return fallback
	}
	return v
}

// ListUsersHandler 分頁列出所有使用者（僅 admin）
// @Summary     List users
// @Description 依建立時間由新到舊分頁列出所有使用者，僅 admin 可呼叫
// @Tags        users
// @Produce     json
// @Param       page  query int false "頁碼 (預設 1)"
// @Param       limit query int false "每頁筆數 (預設 10)"
// @Success     200 {object} api.ListUsersResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users [get]
func ListUsersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := requesterClaims(c)
		if err != nil {
			return err
		}
		if !canListAll(claims.Role) {
			return c.JSON(http.StatusForbidden, api.ErrorResponse{Message: "Forbidden: Admin role required."})
		}

		page := queryInt(c, "page", defaultPage)
		limit := queryInt(c, "limit", defaultLimit)
		offset := (page - 1) * limit

		items, err := listUsers(c.Request().Context(), db, limit, offset)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Server error while fetching users."})
		}
		total, err := countUsers(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Server error while fetching users."})
		}

		totalPages := (total + limit - 1) / limit
		resp := api.ListUsersResponse{
			TotalItems:  total,
			TotalPages:  totalPages,
			CurrentPage: page,
			Users:       make([]api.UserResponse, 0, len(items)),
		}
		for _, u := range items {
			resp.Users = append(resp.Users, api.NewUserResponse(u))
		}
		return c.JSON(http.StatusOK, resp)
	}
}
