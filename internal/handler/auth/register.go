// File: internal/handler/auth/register.go
package auth

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"user-hub/internal/api"
	"user-hub/internal/database"
	"user-hub/internal/model"
	"user-hub/internal/service"
	"user-hub/internal/store"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
)

// 測試可覆寫的協作者
var (
	hashPassword = service.HashPassword
	createUser   = store.CreateUser
)

// uniqueViolation Postgres 唯一約束錯誤碼
const uniqueViolation = "23505"

// RegisterHandler 註冊新使用者
// @Summary     Register a new user
// @Description 建立新帳號；要求 admin 角色時須附上有效的 admin 令牌，其餘一律以 user 角色建立
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body api.RegisterRequest true "註冊資料"
// @Success     201 {object} api.UserResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/register [post]
func RegisterHandler(db database.DB, ts *service.TokenService) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "All fields are required."})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "All fields are required."})
		}

		birthDate, err := time.Parse(api.BirthDateLayout, req.BirthDate)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Invalid birth date, expected YYYY-MM-DD."})
		}

		// 僅此處允許提權：要求 admin 角色時，呼叫者須出示有效的 admin 令牌
		role := model.RoleUser
		if model.Role(req.Role) == model.RoleAdmin {
			authHeader := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Unauthorized: Admin token is required."})
			}
			claims, err := ts.Verify(strings.TrimPrefix(authHeader, "Bearer "))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Unauthorized: Invalid or expired token."})
			}
			if claims.Role != model.RoleAdmin {
				return c.JSON(http.StatusForbidden, api.ErrorResponse{Message: "Forbidden: Admin privileges required."})
			}
			role = model.RoleAdmin
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Server error during registration."})
		}

		user, err := createUser(c.Request().Context(), db, &model.User{
			FullName:     req.FullName,
			BirthDate:    birthDate,
			Email:        req.Email,
			PasswordHash: hash,
			Role:         role,
		})
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
				return c.JSON(http.StatusConflict, api.ErrorResponse{Message: "User with this email already exists."})
			}
			log.Printf("register: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Server error during registration."})
		}

		return c.JSON(http.StatusCreated, api.NewUserResponse(*user))
	}
}
