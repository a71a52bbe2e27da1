// File: internal/handler/users/block_user.go
package users

import (
	"errors"
	"net/http"

	"user-hub/internal/api"
	"user-hub/internal/database"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

// BlockUserHandler 封鎖使用者（本人或 admin，單向操作，無解除封鎖）
// @Summary     Block a user
// @Description 將使用者標記為封鎖，封鎖後無法再登入；重複封鎖視為成功
// @Tags        users
// @Produce     json
// @Param       id path string true "使用者 ID"
// @Success     200 {object} api.UserResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/{id}/block [patch]
func BlockUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := requesterClaims(c)
		if err != nil {
			return err
		}
		targetID := c.Param("id")
		if !canBlockUser(claims.Role, claims.UserID, targetID) {
			return c.JSON(http.StatusForbidden, api.ErrorResponse{Message: "Forbidden: You can only block your own profile."})
		}

		user, err := blockUser(c.Request().Context(), db, targetID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "User not found."})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Server error while blocking user."})
		}

		return c.JSON(http.StatusOK, api.NewUserResponse(*user))
	}
}
