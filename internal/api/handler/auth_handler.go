package handler

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tedcar/rental-console/internal/core/domain"
	"github.com/tedcar/rental-console/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginView describes the login form together with the current session.
//
// @Summary      Login view
// @Tags         auth
// @Produce      json
// @Success      200  {object}  viewResponse
// @Router       /login [get]
func (h *AuthHandler) LoginView(c echo.Context) error {
	info, err := h.authService.Describe(requestContext(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, viewResponse{
		View:    "login",
		Fields:  []string{"username", "password"},
		Session: &info,
	})
}

// Login exchanges credentials for a session.
//
// @Summary      Login
// @Tags         auth
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      422   {object}  ErrorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.authService.Login(requestContext(c), req.Username, req.Password); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, loginResponse{Authenticated: true, Next: domain.RouteDashboard})
}

// RegisterView describes the registration form.
//
// @Summary      Register view
// @Tags         auth
// @Produce      json
// @Success      200  {object}  viewResponse
// @Router       /register [get]
func (h *AuthHandler) RegisterView(c echo.Context) error {
	return c.JSON(http.StatusOK, viewResponse{
		View:   "register",
		Fields: []string{"username", "password", "email"},
	})
}

// Register creates a backend account. The backend's confirmation body is
// relayed as-is.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  map[string]any
// @Failure      400   {object}  ErrorResponse
// @Failure      422   {object}  ErrorResponse
// @Router       /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	body, err := h.authService.Register(requestContext(c), domain.Registration{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
	})
	if err != nil {
		return err
	}
	if len(body) == 0 || !json.Valid(body) {
		return c.NoContent(http.StatusCreated)
	}
	return c.JSONBlob(http.StatusCreated, body)
}

// Logout ends the session and sends the caller to the login view.
//
// @Summary      Logout
// @Tags         auth
// @Success      303
// @Router       /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	next, err := h.authService.Logout(requestContext(c))
	if err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, string(next))
}

// Session reports whether a credential is held.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  domain.SessionInfo
// @Router       /session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	info, err := h.authService.Describe(requestContext(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, info)
}
