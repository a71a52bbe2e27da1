// File: internal/service/token.go
package service

import (
	"errors"
	"fmt"
	"time"

	"user-hub/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

// AccessTokenTTL 存取令牌有效時間
const AccessTokenTTL = time.Hour

var (
	// ErrTokenExpired 令牌已過期
	ErrTokenExpired = errors.New("token has expired")
	// ErrTokenInvalid 令牌簽章不符或結構不合法
	ErrTokenInvalid = errors.New("invalid token")
)

// 測試可覆寫
var (
	timeNow         = time.Now
	parseWithClaims = jwt.ParseWithClaims
)

// CustomClaims 定義 JWT 負載內容
type CustomClaims struct {
	UserID string     `json:"id"`
	Role   model.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenService 簽發並驗證 HS256 存取令牌
// 簽章密鑰於建構時注入，程序啟動後不再更換
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService 建立 TokenService，ttl <= 0 時使用 AccessTokenTTL
func NewTokenService(secret []byte, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = AccessTokenTTL
	}
	return &TokenService{secret: secret, ttl: ttl}
}

// Issue 依據使用者的 ID 與角色產生 JWT
func (s *TokenService) Issue(user model.User) (string, error) {
	now := timeNow()
	claims := CustomClaims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify 驗證並解析 JWT 令牌
// 過期回傳 ErrTokenExpired，其餘驗證失敗回傳 ErrTokenInvalid
func (s *TokenService) Verify(tokenString string) (*CustomClaims, error) {
	token, err := parseWithClaims(tokenString, &CustomClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
