package auth

import (
	"testing"

	"github.com/airenas/revy/internal/pkg/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	k := NewKeeper(persistence.User{Name: "def", Role: "r", EmployeeID: "1", Department: "d"})
	token, u, err := k.Login(" olia ")
	require.Nil(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, &persistence.User{Name: "olia", Role: "r", EmployeeID: "1", Department: "d"}, u)
	assert.Equal(t, u, k.User(token))
}

func TestLogin_Empty(t *testing.T) {
	k := NewKeeper(persistence.User{})
	_, _, err := k.Login("  ")
	assert.ErrorIs(t, err, ErrEmptyName)
}

func TestLogout(t *testing.T) {
	k := NewKeeper(persistence.User{})
	token, _, err := k.Login("olia")
	require.Nil(t, err)
	assert.True(t, k.Logout(token))
	assert.Nil(t, k.User(token))
	assert.False(t, k.Logout(token))
}

func TestUser_Unknown(t *testing.T) {
	k := NewKeeper(persistence.User{})
	assert.Nil(t, k.User(""))
	assert.Nil(t, k.User("olia"))
}
