// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"user-hub/internal/cache"
	"user-hub/internal/database"
	"user-hub/internal/handler"
	"user-hub/internal/handler/auth"
	"user-hub/internal/handler/users"
	"user-hub/internal/middleware"
	"user-hub/internal/service"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, ts *service.TokenService) {
	api := e.Group("/api")

	// 健康檢查
	api.GET("/ping", handler.PingHandler(db, rdb))

	// 註冊與登入
	api.POST("/auth/register", auth.RegisterHandler(db, ts))
	api.POST("/auth/login", auth.LoginHandler(db, ts))

	// 受保護的使用者操作，授權規則在各 handler 內檢查
	apiUsers := api.Group("/users", middleware.RequireAuth(ts))
	apiUsers.GET("", users.ListUsersHandler(db))
	apiUsers.GET("/:id", users.GetUserHandler(db))
	apiUsers.PATCH("/:id/block", users.BlockUserHandler(db))
}
