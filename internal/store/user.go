package store

import (
	"context"
	"fmt"

	"user-hub/internal/database"
	"user-hub/internal/model"

	"github.com/google/uuid"
)

// newUserID 產生使用者識別碼，測試可覆寫
var newUserID = uuid.NewString

const userColumns = `id, full_name, birth_date, email, password_hash, role, is_blocked, created_at`

func scanUser(row interface{ Scan(dest ...any) error }, u *model.User) error {
	return row.Scan(
		&u.ID,
		&u.FullName,
		&u.BirthDate,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.IsBlocked,
		&u.CreatedAt,
	)
}

// CreateUser 建立使用者並回傳含產生欄位的完整紀錄
// Email 唯一性由資料庫約束保證，違反時錯誤原樣包裝回傳
func CreateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	u.ID = newUserID()
	row := db.QueryRow(ctx,
		`INSERT INTO users (id, full_name, birth_date, email, password_hash, role)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING is_blocked, created_at`,
		u.ID,
		u.FullName,
		u.BirthDate,
		u.Email,
		u.PasswordHash,
		u.Role,
	)
	if err := row.Scan(&u.IsBlocked, &u.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	return u, nil
}

func GetUserByID(ctx context.Context, db database.DB, userID string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT `+userColumns+`
		 FROM users WHERE id = $1`,
		userID,
	)
	u := &model.User{}
	if err := scanUser(row, u); err != nil {
		return nil, fmt.Errorf("GetUserByID: %w", err)
	}
	return u, nil
}

// GetUserByEmail 以 email 查詢，大小寫依儲存值精確比對
func GetUserByEmail(ctx context.Context, db database.DB, email string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT `+userColumns+`
		 FROM users WHERE email = $1`,
		email,
	)
	u := &model.User{}
	if err := scanUser(row, u); err != nil {
		return nil, fmt.Errorf("GetUserByEmail: %w", err)
	}
	return u, nil
}

// ListUsers 依建立時間由新到舊分頁列出使用者
func ListUsers(ctx context.Context, db database.DB, limit, offset int) ([]model.User, error) {
	rows, err := db.Query(ctx,
		`SELECT `+userColumns+`
		 FROM users
		 ORDER BY created_at DESC
		 LIMIT $1 OFFSET $2`,
		limit,
		offset,
	)
	if err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		if err := scanUser(rows, &u); err != nil {
			return nil, fmt.Errorf("ListUsers: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	return users, nil
}

// CountUsers 回傳使用者總數
func CountUsers(ctx context.Context, db database.DB) (int, error) {
	row := db.QueryRow(ctx, `SELECT COUNT(*) FROM users`)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("CountUsers: %w", err)
	}
	return count, nil
}

// BlockUser 設定 is_blocked 並回傳更新後的紀錄
// 重複封鎖同一使用者仍視為成功
func BlockUser(ctx context.Context, db database.DB, userID string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`UPDATE users SET is_blocked = TRUE
		 WHERE id = $1
		 RETURNING `+userColumns,
		userID,
	)
	u := &model.User{}
	if err := scanUser(row, u); err != nil {
		return nil, fmt.Errorf("BlockUser: %w", err)
	}
	return u, nil
}

// HasAdmin 回報是否已存在 admin 角色的使用者
func HasAdmin(ctx context.Context, db database.DB) (bool, error) {
	row := db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE role = $1)`,
		model.RoleAdmin,
	)
	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, fmt.Errorf("HasAdmin: %w", err)
	}
	return exists, nil
}
