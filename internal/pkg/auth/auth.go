package auth

import (
	"strings"
	"sync"

	"github.com/airenas/go-app/pkg/goapp"
	"github.com/airenas/revy/internal/pkg/persistence"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrEmptyName is returned on login without username
var ErrEmptyName = errors.New("username can't be empty")

// Keeper keeps logged in users by session token
type Keeper struct {
	mu       sync.RWMutex
	sessions map[string]*persistence.User
	profile  persistence.User
}

// NewKeeper creates session keeper, profile is used as a template for every logged in user
func NewKeeper(profile persistence.User) *Keeper {
	return &Keeper{sessions: map[string]*persistence.User{}, profile: profile}
}

// Login starts a new session for the user
func (k *Keeper) Login(name string) (string, *persistence.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", nil, ErrEmptyName
	}
	u := k.profile
	u.Name = name
	token := uuid.NewString()
	k.mu.Lock()
	k.sessions[token] = &u
	k.mu.Unlock()
	goapp.Log.Info().Str("user", goapp.Sanitize(name)).Msg("login")
	res := u
	return token, &res, nil
}

// Logout drops the session, returns false if there was no such session
func (k *Keeper) Logout(token string) bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	if _, ok := k.sessions[token]; !ok {
		return false
	}
	delete(k.sessions, token)
	return true
}

// User returns a copy of the session user or nil
func (k *Keeper) User(token string) *persistence.User {
	if token == "" {
		return nil
	}
	k.mu.RLock()
	defer k.mu.RUnlock()
	if u, ok := k.sessions[token]; ok {
		res := *u
		return &res
	}
	return nil
}
