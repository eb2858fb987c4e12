package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/salesmgmt/sales-system/internal/api/metrics"
	"github.com/salesmgmt/sales-system/internal/core/domain"
	"github.com/salesmgmt/sales-system/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	// Username carries either a staff username or a customer email.
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message    string `json:"message"`
	Username   string `json:"username"`
	Role       string `json:"role"`
	Token      string `json:"token"`
	CustomerID *int   `json:"customerId,omitempty"`
}

// Login authenticates a staff user, a customer, or the operator override,
// and returns a signed session token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials (username or customer email)"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	principal, token, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("invalid_credentials", "none").Inc()
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: "invalid credentials"})
		}
		metrics.LoginsTotal.WithLabelValues("backend_error", "none").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success", string(principal.Kind)).Inc()

	resp := loginResponse{
		Message:  "Login successful",
		Username: principal.Username,
		Role:     principal.Role,
		Token:    token,
	}
	switch principal.Kind {
	case domain.KindOperator:
		resp.Message = "Admin login successful"
	case domain.KindCustomer:
		// Downstream clients correlate cart and profile data by customer id.
		id := principal.ID
		resp.CustomerID = &id
	}

	return c.JSON(http.StatusOK, resp)
}
