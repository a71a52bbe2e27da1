// File: internal/handler/auth/login.go
package auth

import (
	"errors"
	"log"
	"net/http"

	"user-hub/internal/api"
	"user-hub/internal/database"
	"user-hub/internal/service"
	"user-hub/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

// 測試可覆寫的協作者
var (
	getUserByEmail   = store.GetUserByEmail
	authenticateUser = service.AuthenticateUser
)

// LoginHandler 使用 Email/Password 驗證並回傳 JWT
// @Summary     登入使用者
// @Description 使用 Email 與 Password 進行驗證，回傳一小時有效的存取令牌
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body api.LoginRequest true "登入資料"
// @Success     200 {object} api.LoginResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/login [post]
func LoginHandler(db database.DB, ts *service.TokenService) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Email and password are required."})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Email and password are required."})
		}

		// 三種登入失敗共用 401，僅訊息不同（維持既有對外行為）
		user, err := getUserByEmail(c.Request().Context(), db, req.Email)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Authentication failed: User not found."})
			}
			log.Printf("login: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Server error during login."})
		}

		if err := authenticateUser(c.Request().Context(), *user, req.Password); err != nil {
			if errors.Is(err, service.ErrUserBlocked) {
				return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Authentication failed: User is blocked."})
			}
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Authentication failed: Invalid password."})
		}

		token, err := ts.Issue(*user)
		if err != nil {
			log.Printf("login: issue token: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Server error during login."})
		}

		return c.JSON(http.StatusOK, api.LoginResponse{AccessToken: token})
	}
}
