// File: internal/handler/users/users.go
package users

import (
	"net/http"

	"user-hub/internal/middleware"
	"user-hub/internal/service"
	"user-hub/internal/store"

	"github.com/labstack/echo/v4"
)

// 測試可覆寫的協作者
var (
	listUsers   = store.ListUsers
	countUsers  = store.CountUsers
	getUserByID = store.GetUserByID
	blockUser   = store.BlockUser

	canListAll    = service.CanListAll
	canAccessUser = service.CanAccessUser
	canBlockUser  = service.CanBlockUser
)

// requesterClaims 取出 RequireAuth 寫入 context 的 claims
func requesterClaims(c echo.Context) (*service.CustomClaims, error) {
	claims, ok := c.Get(middleware.ContextUserKey).(*service.CustomClaims)
	if !ok || claims == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized: Access token is missing.")
	}
	return claims, nil
}
