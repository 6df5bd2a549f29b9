package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ecomarket/catalog-api/internal/core/domain"
	"github.com/ecomarket/catalog-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerResponse struct {
	User *domain.User `json:"user"`
}

// Register creates a new account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  registerResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Username:   req.Username,
		Email:      req.Email,
		Password:   req.Password,
		IsAdmin:    req.IsAdmin,
		IsSupplier: req.IsSupplier,
		IsCustomer: req.IsCustomer,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, registerResponse{User: user})
}

// Token exchanges credentials for a bearer token.
//
// @Summary      Login and obtain a session token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  tokenResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/token [post]
func (h *AuthHandler) Token(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}

// Me returns the claims of the calling token.
//
// @Summary      Inspect the current session
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]any
// @Failure      401  {object}  errorResponse
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"username":    claims.Subject,
		"id":          claims.UserID,
		"is_admin":    claims.IsAdmin,
		"is_supplier": claims.IsSupplier,
		"is_customer": claims.IsCustomer,
	})
}
