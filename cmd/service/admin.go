// File: cmd/service/admin.go
package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log"
	"time"

	"user-hub/internal/database"
	"user-hub/internal/model"
	"user-hub/internal/service"
	"user-hub/internal/store"
)

const defaultAdminEmail = "admin@example.com"

// 測試可覆寫
var (
	randRead     = rand.Read
	hasAdmin     = store.HasAdmin
	createUser   = store.CreateUser
	hashPassword = service.HashPassword
	logPrintf    = log.Printf
)

// seedDefaultAdmin 在沒有任何 admin 帳號時建立預設管理員
// 臨時密碼以亂數產生並輸出到日誌，僅供首次登入後更換
func seedDefaultAdmin(ctx context.Context, db database.DB) error {
	exists, err := hasAdmin(ctx, db)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	buf := make([]byte, 8)
	if _, err := randRead(buf); err != nil {
		return err
	}
	tempPassword := hex.EncodeToString(buf)

	hash, err := hashPassword(tempPassword)
	if err != nil {
		return err
	}

	admin, err := createUser(ctx, db, &model.User{
		FullName:     "Default Admin",
		BirthDate:    time.Now().UTC(),
		Email:        defaultAdminEmail,
		PasswordHash: hash,
		Role:         model.RoleAdmin,
	})
	if err != nil {
		return err
	}

	logPrintf("================================================================")
	logPrintf("!!!            ADMIN USER CREATED SUCCESSFULLY             !!!")
	logPrintf("!!! PLEASE CHANGE THESE CREDENTIALS AS SOON AS POSSIBLE !!!")
	logPrintf("================================================================")
	logPrintf("Email: %s", admin.Email)
	logPrintf("Password: %s", tempPassword)
	logPrintf("================================================================")
	return nil
}
