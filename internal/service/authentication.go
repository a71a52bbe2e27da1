// File: internal/service/authentication.go
package service

import (
	"context"
	"errors"

	"user-hub/internal/model"
)

var (
	// ErrUserBlocked 帳號已被封鎖，無論密碼正確與否都拒絕登入
	ErrUserBlocked = errors.New("user is blocked")
	// ErrInvalidPassword 密碼比對失敗
	ErrInvalidPassword = errors.New("invalid password")
)

// AuthenticateUser 驗證使用者狀態與明文密碼
// 先檢查封鎖狀態，再比對密碼；封鎖的帳號即使密碼正確也拒絕
func AuthenticateUser(ctx context.Context, user model.User, password string) error {
	if user.IsBlocked {
		return ErrUserBlocked
	}
	if err := ComparePassword(user.PasswordHash, password); err != nil {
		return ErrInvalidPassword
	}
	return nil
}
