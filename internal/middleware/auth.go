package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"painter-booking-backend/internal/auth"
	"painter-booking-backend/internal/config"
	"painter-booking-backend/internal/models"
)

// Context keys for the resolved principal. Each guard sets exactly one of
// these; the credential field is stripped before attaching.
const (
	CustomerKey = "customer"
	PainterKey  = "painter"
	AdminKey    = "admin"
)

type CustomerResolver interface {
	GetCustomerByID(id uuid.UUID) (*models.Customer, error)
}

type PainterResolver interface {
	GetPainterByID(id uuid.UUID) (*models.Painter, error)
}

type AdminResolver interface {
	GetAdminByID(id uuid.UUID) (*models.Admin, error)
}

// CustomerAuth validates a customer bearer token and attaches the resolved
// customer to the request context. A painter or admin token is rejected.
func CustomerAuth(cfg *config.Config, customers CustomerResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := bearerClaims(c, cfg, models.RoleCustomer)
		if !ok {
			return
		}

		id, err := claims.PrincipalID()
		if err != nil {
			abortUnauthorized(c, "invalid token subject")
			return
		}

		customer, err := customers.GetCustomerByID(id)
		if err != nil {
			abortUnauthorized(c, "customer not found")
			return
		}

		customer.Password = ""
		c.Set(CustomerKey, customer)
		c.Next()
	}
}

// PainterAuth is the painter-variant guard.
func PainterAuth(cfg *config.Config, painters PainterResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := bearerClaims(c, cfg, models.RolePainter)
		if !ok {
			return
		}

		id, err := claims.PrincipalID()
		if err != nil {
			abortUnauthorized(c, "invalid token subject")
			return
		}

		painter, err := painters.GetPainterByID(id)
		if err != nil {
			abortUnauthorized(c, "painter not found")
			return
		}

		painter.Password = ""
		c.Set(PainterKey, painter)
		c.Next()
	}
}

// AdminAuth gates the management surface.
func AdminAuth(cfg *config.Config, admins AdminResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := bearerClaims(c, cfg, models.RoleAdmin)
		if !ok {
			return
		}

		id, err := claims.PrincipalID()
		if err != nil {
			abortUnauthorized(c, "invalid token subject")
			return
		}

		admin, err := admins.GetAdminByID(id)
		if err != nil {
			abortUnauthorized(c, "admin not found")
			return
		}

		admin.Password = ""
		c.Set(AdminKey, admin)
		c.Next()
	}
}

// bearerClaims extracts and verifies the Authorization header and checks the
// role discriminant. On failure it aborts the request with 401.
func bearerClaims(c *gin.Context, cfg *config.Config, role models.Role) (*auth.Claims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		abortUnauthorized(c, "missing authorization header")
		return nil, false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		abortUnauthorized(c, "invalid authorization header format")
		return nil, false
	}

	tokenString := strings.TrimSpace(parts[1])
	if tokenString == "" {
		abortUnauthorized(c, "empty token")
		return nil, false
	}

	claims, err := auth.ParseToken(cfg.JWTSecret, tokenString)
	if err != nil {
		msg := "invalid token"
		if strings.Contains(err.Error(), "expired") {
			msg = "token has expired"
		}
		abortUnauthorized(c, msg)
		return nil, false
	}

	if claims.Role != role {
		abortUnauthorized(c, "token role not permitted for this route")
		return nil, false
	}

	return claims, true
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: msg})
	c.Abort()
}

// CustomerFromContext returns the customer attached by CustomerAuth.
func CustomerFromContext(c *gin.Context) (*models.Customer, bool) {
	v, exists := c.Get(CustomerKey)
	if !exists {
		return nil, false
	}
	customer, ok := v.(*models.Customer)
	return customer, ok
}

// PainterFromContext returns the painter attached by PainterAuth.
func PainterFromContext(c *gin.Context) (*models.Painter, bool) {
	v, exists := c.Get(PainterKey)
	if !exists {
		return nil, false
	}
	painter, ok := v.(*models.Painter)
	return painter, ok
}

// AdminFromContext returns the admin attached by AdminAuth.
func AdminFromContext(c *gin.Context) (*models.Admin, bool) {
	v, exists := c.Get(AdminKey)
	if !exists {
		return nil, false
	}
	admin, ok := v.(*models.Admin)
	return admin, ok
}
