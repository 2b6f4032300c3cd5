package handler

import (
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/darkskyoregon/sqm-backend-go/internal/session"
	"github.com/darkskyoregon/sqm-backend-go/pkg/response"
)

// SessionHandler issues and resolves dashboard sessions.
type SessionHandler struct {
	store     *session.Store
	jwtSecret string
	tokenTTL  time.Duration
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(store *session.Store, jwtSecret string, tokenTTL time.Duration) *SessionHandler {
	return &SessionHandler{
		store:     store,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
	}
}

// Create handles POST /api/v1/session
func (h *SessionHandler) Create(c *gin.Context) {
	id, state := h.store.Create()

	token, err := session.IssueToken(h.jwtSecret, id, h.tokenTTL)
	if err != nil {
		response.InternalError(c, "Failed to issue session token")
		return
	}

	response.Success(c, gin.H{
		"token": token,
		"state": state,
	})
}

// Resolve extracts the session ID from the request's bearer token and loads
// its state. Missing token means an anonymous request; ok is false and the
// caller falls back to default state.
func (h *SessionHandler) Resolve(c *gin.Context) (string, session.State, bool, error) {
	token := bearerToken(c)
	if token == "" {
		return "", session.DefaultState(), false, nil
	}

	id, err := session.ParseToken(h.jwtSecret, token)
	if err != nil {
		return "", session.State{}, false, err
	}

	state, err := h.store.Get(id)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			// expired session: hand back defaults under the same contract
			return "", session.DefaultState(), false, nil
		}
		return "", session.State{}, false, err
	}
	return id, state, true, nil
}

// Store exposes the underlying session store.
func (h *SessionHandler) Store() *session.Store {
	return h.store
}

func bearerToken(c *gin.Context) string {
	auth := c.GetHeader("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return c.GetHeader("X-Session-Token")
}
