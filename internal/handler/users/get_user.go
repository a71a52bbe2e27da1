// File: internal/handler/users/get_user.go
package users

import (
	"errors"
	"net/http"

	"user-hub/internal/api"
	"user-hub/internal/database"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

// GetUserHandler 取得單一使用者（本人或 admin）
// @Summary     Get a user by ID
// @Description 本人可查詢自己的資料，admin 可查詢任何人
// @Tags        users
// @Produce     json
// @Param       id path string true "使用者 ID"
// @Success     200 {object} api.UserResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/{id} [get]
func GetUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := requesterClaims(c)
		if err != nil {
			return err
		}
		targetID := c.Param("id")
		if !canAccessUser(claims.Role, claims.UserID, targetID) {
			return c.JSON(http.StatusForbidden, api.ErrorResponse{Message: "Forbidden: You can only view your own profile."})
		}

		user, err := getUserByID(c.Request().Context(), db, targetID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "User not found."})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Server error while fetching user."})
		}

		return c.JSON(http.StatusOK, api.NewUserResponse(*user))
	}
}
