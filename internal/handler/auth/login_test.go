package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"user-hub/internal/database"
	"user-hub/internal/model"
	"user-hub/internal/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

const loginBody = `{"email":"a@x.com","password":"p1"}`

func TestLoginHandler(t *testing.T) {
	t.Cleanup(restoreGlobals)
	ts := service.NewTokenService([]byte("s"), time.Minute)

	// bind error
	e := echo.New()
	e.Binder = errBinder{}
	ctx, rec := newJSONCtx(e, http.MethodPost, "", "")
	require.NoError(t, LoginHandler(&database.FakeDB{}, ts)(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// validate error
	e = echo.New()
	e.Validator = errValidator{}
	ctx, rec = newJSONCtx(e, http.MethodPost, `{"email":"a@x.com"}`, "")
	require.NoError(t, LoginHandler(&database.FakeDB{}, ts)(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "Email and password are required.")

	e = echo.New()
	e.Validator = okValidator{}

	// user not found
	getUserByEmail = func(_ context.Context, _ database.DB, _ string) (*model.User, error) {
		return nil, pgx.ErrNoRows
	}
	ctx, rec = newJSONCtx(e, http.MethodPost, loginBody, "")
	require.NoError(t, LoginHandler(&database.FakeDB{}, ts)(ctx))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), "Authentication failed: User not found.")

	// unexpected store error → 500
	getUserByEmail = func(_ context.Context, _ database.DB, _ string) (*model.User, error) {
		return nil, errors.New("boom")
	}
	ctx, rec = newJSONCtx(e, http.MethodPost, loginBody, "")
	require.NoError(t, LoginHandler(&database.FakeDB{}, ts)(ctx))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	// blocked user，密碼正確也拒絕
	hash, err := service.HashPassword("p1")
	require.NoError(t, err)
	getUserByEmail = func(_ context.Context, _ database.DB, _ string) (*model.User, error) {
		return &model.User{ID: "uid-1", PasswordHash: hash, IsBlocked: true, Role: model.RoleUser}, nil
	}
	ctx, rec = newJSONCtx(e, http.MethodPost, loginBody, "")
	require.NoError(t, LoginHandler(&database.FakeDB{}, ts)(ctx))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), "Authentication failed: User is blocked.")

	// wrong password
	getUserByEmail = func(_ context.Context, _ database.DB, _ string) (*model.User, error) {
		return &model.User{ID: "uid-1", PasswordHash: hash, Role: model.RoleUser}, nil
	}
	ctx, rec = newJSONCtx(e, http.MethodPost, `{"email":"a@x.com","password":"wrong"}`, "")
	require.NoError(t, LoginHandler(&database.FakeDB{}, ts)(ctx))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), "Authentication failed: Invalid password.")

	// success，令牌內容為使用者 ID 與角色
	ctx, rec = newJSONCtx(e, http.MethodPost, loginBody, "")
	require.NoError(t, LoginHandler(&database.FakeDB{}, ts)(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "accessToken")

	var resp struct {
		AccessToken string `json:"accessToken"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	claims := &service.CustomClaims{}
	_, err = jwt.ParseWithClaims(resp.AccessToken, claims, func(*jwt.Token) (any, error) { return []byte("s"), nil })
	require.NoError(t, err)
	require.Equal(t, "uid-1", claims.UserID)
	require.Equal(t, model.RoleUser, claims.Role)
}
