package services

import (
	"github.com/yeremiapane/cafe-pos/models"
	"github.com/yeremiapane/cafe-pos/store"
)

// AuthService checks credentials against the users document. Exact,
// case-sensitive match on both fields; this is not a security boundary.
type AuthService struct {
	Store store.Store
}

func NewAuthService(st store.Store) *AuthService {
	return &AuthService{Store: st}
}

// Authenticate returns the matching user, or false when no user matches.
func (as *AuthService) Authenticate(username, password string) (models.User, bool) {
	guard := as.Store.Guard(store.KeyUsers)
	guard.Lock()
	defer guard.Unlock()

	var users []models.User
	as.Store.Load(store.KeyUsers, &users)

	for _, u := range users {
		if u.Username == username && u.Password == password {
			return u, true
		}
	}
	return models.User{}, false
}
