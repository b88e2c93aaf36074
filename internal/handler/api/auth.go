package api

import (
	"errors"
	"net/http"
	"time"

	reqdto "timebar/internal/handler/dto/request"
	resdto "timebar/internal/handler/dto/response"
	"timebar/internal/handler/httperr"
	"timebar/internal/handler/middleware"
	"timebar/internal/pkg/config"
	"timebar/internal/pkg/cookie"
	"timebar/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	cfg         config.Config
}

func NewAuthHandler(authUseCase usecase.AuthUseCase, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		cfg:         cfg,
	}
}

// @Summary Shop login
// @Description Login with shop domain and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	credentials, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		return
	}

	token, shopView, err := h.authUseCase.Login(c.Request.Context(), credentials)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidCredentials):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid domain or password", nil)
		case errors.Is(err, usecase.ErrShopInactive):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Shop account is inactive", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	expiry, err := time.ParseDuration(h.cfg.JWT.Duration)
	if err != nil {
		expiry = 24 * time.Hour
	}
	cookie.SetTokenCookie(c, h.cfg.Cookie, token, expiry)

	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: token,
		Shop:        shopView,
	})
}

// @Summary Shop logout
// @Description Clear the session cookie
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearTokenCookie(c, h.cfg.Cookie)
	c.Status(http.StatusNoContent)
}

// @Summary Get current shop
// @Description Get the authenticated shop's account information
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} queries.ShopView
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	shopID, ok := middleware.GetShopID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing shop context"), "Shop not authenticated", nil)
		return
	}

	shopView, err := h.authUseCase.CurrentShop(c.Request.Context(), shopID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrShopNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Shop not found", nil)
		case errors.Is(err, usecase.ErrShopInactive):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Shop account is inactive", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, shopView)
}
