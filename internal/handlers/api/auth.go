package api

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"rebrain/internal/auth"
	"rebrain/internal/models"
	"rebrain/internal/service"
	"rebrain/internal/validation"
)

// credentialsRequest is the body of signup and signin.
type credentialsRequest struct {
	Username string `json:"username" validate:"required,min=1,max=64"`
	Password string `json:"password" validate:"required,min=6,max=72,maxbytes=72"`
}

// AuthHandler handles account signup and signin via JSON API.
type AuthHandler struct {
	accounts *service.Accounts
	tokens   *auth.TokenIssuer
	validate *validation.Validator
}

// NewAuthHandler creates a new API auth handler.
func NewAuthHandler(accounts *service.Accounts, tokens *auth.TokenIssuer, validate *validation.Validator) *AuthHandler {
	return &AuthHandler{accounts: accounts, tokens: tokens, validate: validate}
}

// Signup registers a new user.
func (h *AuthHandler) Signup(c fiber.Ctx) error {
	var body credentialsRequest
	if ok, err := decodeAndValidate(c, h.validate, &body, "Incorrect format"); !ok {
		return err
	}

	if _, err := h.accounts.Register(c.Context(), body.Username, body.Password); err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			return jsonError(c, fiber.StatusConflict, "User already exists")
		}
		slog.Error("signup failed", "username", body.Username, "error", err)
		return jsonError(c, fiber.StatusInternalServerError, "Error while signing up")
	}

	slog.Info("user signed up", "username", body.Username)
	return jsonMessage(c, "User signed up")
}

// Signin verifies credentials and returns a bearer token.
func (h *AuthHandler) Signin(c fiber.Ctx) error {
	var body credentialsRequest
	if ok, err := decodeAndValidate(c, h.validate, &body, "Incorrect format"); !ok {
		return err
	}

	user, err := h.accounts.Verify(c.Context(), body.Username, body.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return jsonError(c, fiber.StatusUnauthorized, "Invalid username or password")
		}
		slog.Error("signin failed", "username", body.Username, "error", err)
		return jsonError(c, fiber.StatusInternalServerError, "Error while signing in")
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		slog.Error("failed to issue token", "user_id", user.ID, "error", err)
		return jsonError(c, fiber.StatusInternalServerError, "Error while signing in")
	}

	return c.JSON(models.TokenResponse{Token: token})
}
