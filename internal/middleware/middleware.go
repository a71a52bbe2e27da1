package middleware

import (
	"errors"
	"net/http"
	"strings"

	"user-hub/internal/service"

	"github.com/labstack/echo/v4"
)

const ContextUserKey = "user"

// ExtractClaims 自 Authorization 標頭取出並驗證 Bearer 令牌
// 缺少標頭或格式錯誤回傳 401；簽章不符或過期回傳 403（訊息區分兩種情況）
func ExtractClaims(c echo.Context, ts *service.TokenService) (*service.CustomClaims, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized: Access token is missing.")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized: Access token is missing.")
	}
	claims, err := ts.Verify(parts[1])
	if err != nil {
		if errors.Is(err, service.ErrTokenExpired) {
			return nil, echo.NewHTTPError(http.StatusForbidden, "Forbidden: Token has expired.")
		}
		return nil, echo.NewHTTPError(http.StatusForbidden, "Forbidden: Invalid token.")
	}
	return claims, nil
}

// RequireAuth 驗證令牌並將 claims 寫入 context
func RequireAuth(ts *service.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := ExtractClaims(c, ts)
			if err != nil {
				return err
			}
			c.Set(ContextUserKey, claims)
			return next(c)
		}
	}
}
