package controllers

import (
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/cafe-pos/services"
	"github.com/yeremiapane/cafe-pos/utils"
)

// respondServiceError maps core error kinds onto HTTP statuses. Everything
// is recovered into the JSON envelope; nothing is fatal.
func respondServiceError(c *gin.Context, err error) {
	var (
		validation *services.ValidationError
		notFound   *services.NotFoundError
		duplicate  *services.DuplicateError
		inventory  *services.InsufficientInventoryError
	)
	switch {
	case errors.As(err, &validation):
		utils.RespondError(c, http.StatusBadRequest, err)
	case errors.As(err, &notFound):
		utils.RespondError(c, http.StatusNotFound, err)
	case errors.As(err, &duplicate):
		utils.RespondError(c, http.StatusConflict, err)
	case errors.As(err, &inventory):
		utils.RespondError(c, http.StatusUnprocessableEntity, err)
	default:
		utils.RespondError(c, http.StatusInternalServerError, err)
	}
}

// SessionManager hands out one Session per login, keyed by the token's
// session id. Carts are session state, never process-wide globals.
type SessionManager struct {
	mu       sync.Mutex
	sessions map[string]*services.Session
}

func NewSessionManager() *SessionManager {
	return &SessionManager{sessions: make(map[string]*services.Session)}
}

// Get returns the session for an id, creating it on first use.
func (sm *SessionManager) Get(id string) *services.Session {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sess, ok := sm.sessions[id]
	if !ok {
		sess = &services.Session{}
		sm.sessions[id] = sess
	}
	return sess
}

// Drop discards a session (logout).
func (sm *SessionManager) Drop(id string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	delete(sm.sessions, id)
}

// sessionFor pulls the session for the authenticated request. Tokens
// minted before session ids existed fall back to the username key.
func sessionFor(c *gin.Context, sm *SessionManager) *services.Session {
	id := c.GetString("session_id")
	if id == "" {
		id = c.GetString("username")
	}
	return sm.Get(id)
}
