package handlers

import (
	"errors"
	"net/http"

	"github.com/clockhouse/timesheet/internal/auth"
	"github.com/clockhouse/timesheet/internal/domain/user"
	"github.com/gin-gonic/gin"
)

type Authenticator interface {
	Authenticate(email, password string) (user.User, string, error)
}

type AuthHandler struct {
	auth Authenticator
}

func NewAuthHandler(a Authenticator) *AuthHandler {
	return &AuthHandler{auth: a}
}

// No binding tags here: presence and shape checks belong to the credential
// validator so its error messages reach the client unchanged.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(ctx *gin.Context) {
	var req LoginRequest

	if !BindJSON(ctx, &req) {
		return
	}

	u, token, err := h.auth.Authenticate(req.Email, req.Password)

	if err != nil {
		switch {
		case errors.Is(err, auth.ErrMissingCredentials):
			RespondBadRequest(ctx, "Email and password are required", nil)
		case errors.Is(err, auth.ErrInvalidEmail):
			RespondBadRequest(ctx, "Invalid email format", nil)
		case errors.Is(err, auth.ErrInvalidCredentials):
			RespondUnauthorized(ctx, "Invalid email or password")
		default:
			RespondInternal(ctx, "Could not log in")
		}

		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    u,
		"token":   token,
	})
}
