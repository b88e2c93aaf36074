package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"timebar/internal/pkg/cookie"
	"timebar/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxShopIDKey     = "shop_id"
	ctxShopDomainKey = "shop_domain"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerOrCookieToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		shopID, shopDomain, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		setShopContext(c, shopID, shopDomain)
		c.Next()
	}
}

// OptionalAuth authenticates the request if a token is present, but does not abort on failure.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerOrCookieToken(c)
		if token == "" {
			c.Next()
			return
		}

		shopID, shopDomain, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			c.Next()
			return
		}

		setShopContext(c, shopID, shopDomain)
		c.Next()
	}
}

func bearerOrCookieToken(c *gin.Context) string {
	token := cookie.GetAccessToken(c)
	if token == "" {
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}
	}
	return token
}

func setShopContext(c *gin.Context, shopID uuid.UUID, shopDomain string) {
	c.Set(ctxShopIDKey, shopID)
	c.Set(ctxShopDomainKey, shopDomain)
	c.Set("jwt_claims", map[string]any{
		"shop_id":     shopID.String(),
		"shop_domain": shopDomain,
	})
}

func GetShopID(c *gin.Context) (uuid.UUID, bool) {
	shopID, exists := c.Get(ctxShopIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := shopID.(uuid.UUID)
	return id, ok
}

func GetShopDomain(c *gin.Context) (string, bool) {
	shopDomain, exists := c.Get(ctxShopDomainKey)
	if !exists {
		return "", false
	}

	d, ok := shopDomain.(string)
	return d, ok
}
