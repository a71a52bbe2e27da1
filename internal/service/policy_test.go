package service

import (
	"testing"

	"user-hub/internal/model"

	"github.com/stretchr/testify/require"
)

func TestCanListAll(t *testing.T) {
	require.True(t, CanListAll(model.RoleAdmin))
	require.False(t, CanListAll(model.RoleUser))
	require.False(t, CanListAll(model.Role("")))
}

func TestCanAccessUser(t *testing.T) {
	// admin 可存取任何人
	require.True(t, CanAccessUser(model.RoleAdmin, "a", "b"))
	require.True(t, CanAccessUser(model.RoleAdmin, "a", "a"))

	// user 僅能存取自己
	require.True(t, CanAccessUser(model.RoleUser, "a", "a"))
	require.False(t, CanAccessUser(model.RoleUser, "a", "b"))
}

func TestCanBlockUser(t *testing.T) {
	require.True(t, CanBlockUser(model.RoleAdmin, "a", "b"))
	require.True(t, CanBlockUser(model.RoleUser, "a", "a"))
	require.False(t, CanBlockUser(model.RoleUser, "a", "b"))
}
