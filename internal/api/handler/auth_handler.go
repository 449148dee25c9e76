package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/valo-rant/community-api/internal/api/metrics"
	"github.com/valo-rant/community-api/internal/core/domain"
	"github.com/valo-rant/community-api/internal/core/ports"
)

type AuthHandler struct {
	identity ports.IdentityService
}

func NewAuthHandler(identity ports.IdentityService) *AuthHandler {
	return &AuthHandler{identity: identity}
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Confirm  string `json:"confirm"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// registeredUser is the trimmed user view returned on registration; the
// privilege flag only appears on login responses.
type registeredUser struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type registerResponse struct {
	Message string         `json:"message"`
	User    registeredUser `json:"user"`
}

type loginResponse struct {
	Message string          `json:"message"`
	User    *domain.Session `json:"user"`
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration form"
// @Success      201   {object}  registerResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	session, err := h.identity.Register(c.Request().Context(), ports.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Confirm:  req.Confirm,
	})
	if err != nil {
		result := "invalid"
		if errors.Is(err, domain.ErrConflict) {
			result = "conflict"
		}
		metrics.RegistrationsTotal.WithLabelValues(result).Inc()
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("ok").Inc()

	return c.JSON(http.StatusCreated, registerResponse{
		Message: "Registration successful!",
		User:    registeredUser{Username: session.Username, Email: session.Email},
	})
}

// Login authenticates a user and returns the session descriptor the client
// caches and re-asserts on admin-gated writes.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  map[string]string
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	session, err := h.identity.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("rejected").Inc()
		return err
	}

	message := "Login successful!"
	result := "ok"
	if session.IsAdmin {
		message = "Admin login successful!"
		result = "admin"
	}
	metrics.LoginsTotal.WithLabelValues(result).Inc()

	return c.JSON(http.StatusOK, loginResponse{Message: message, User: session})
}
