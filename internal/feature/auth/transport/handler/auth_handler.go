// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"portal_backend/internal/feature/auth/transport/http/dto"
	"portal_backend/internal/feature/auth/transport/middleware"
	"portal_backend/internal/feature/auth/usecase"
)

// AuthUsecase defines the use cases for authentication operations.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type AuthUsecase interface {
	// Register creates a new user and returns an authenticated session.
	Register(ctx context.Context, in usecase.RegisterInput) (*usecase.Session, error)
	// Login authenticates a user by handle and password.
	Login(ctx context.Context, handle, password string) (*usecase.Session, error)
}

// AuthHandler handles HTTP requests for authentication operations.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register handles the user registration endpoint.
// - binds the request JSON to RegisterReq, 400 on validation failure
// - 409 when the email is already taken
// - 500 with a distinct body when token signing fails (operator error)
// - 201 with the session cookie set on success
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request"})
		return
	}

	session, err := h.auth.Register(c.Request.Context(), usecase.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmailTaken):
			slog.Warn("register conflict", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusConflict, dto.ErrorResponse{Error: "user already exists"})
		case errors.Is(err, usecase.ErrTokenIssuance):
			slog.Error("register token issuance failed", "error", err)
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "server misconfigured"})
		default:
			slog.Error("register failed", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "cannot create user"})
		}
		return
	}

	setSessionCookie(c, session.Token, session.ExpiresAt)
	slog.Info("user registered", "user_id", session.User.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.LoginResponse{Login: true})
}

// Login handles the user login endpoint.
// Unknown handle and wrong password produce the same 401 body; the actual
// cause is never exposed to the client.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request"})
		return
	}

	session, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUnauthenticated):
			slog.Warn("login failed", "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "invalid email or password"})
		case errors.Is(err, usecase.ErrTokenIssuance):
			slog.Error("login token issuance failed", "error", err)
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "server misconfigured"})
		default:
			slog.Error("login failed", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "server error"})
		}
		return
	}

	setSessionCookie(c, session.Token, session.ExpiresAt)
	slog.Info("user login successful", "user_id", session.User.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.LoginResponse{Login: true})
}

// setSessionCookie writes the access token into the session cookie.
// Attributes are fixed: HttpOnly, Secure, SameSite=Lax, Path=/, and an
// expiry matching the token's.
func setSessionCookie(c *gin.Context, token string, expiresAt time.Time) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})
}
