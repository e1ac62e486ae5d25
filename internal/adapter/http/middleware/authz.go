package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hqv2816/storefront-api/internal/domain"
	"github.com/hqv2816/storefront-api/internal/security"
	"github.com/hqv2816/storefront-api/internal/session"
)

type Authz struct {
	tokens *security.TokenService
}

func NewAuthz(tokens *security.TokenService) *Authz {
	return &Authz{tokens: tokens}
}

// Require validates the bearer token and, when roles are given, ensures the
// caller holds one of them. The verified identity is placed into the
// request context as the session.
func (a *Authz) Require(roles ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			unauth(c, "invalid_request", "missing bearer token")
			return
		}

		raw := strings.TrimPrefix(auth, "Bearer ")
		id, err := a.tokens.Parse(raw)
		if err != nil {
			unauth(c, "invalid_token", "invalid jwt")
			return
		}

		if len(roles) > 0 && !hasRole(id.Role, roles) {
			forbidden(c, "insufficient_role", "missing required role")
			return
		}

		sess := session.Session{
			Token: raw,
			User:  domain.NewUser(id.UserID, id.Email, "", id.Role),
		}
		c.Request = c.Request.WithContext(session.WithSession(c.Request.Context(), sess))
		c.Next()
	}
}

func hasRole(have domain.Role, want []domain.Role) bool {
	for _, r := range want {
		if r == have {
			return true
		}
	}
	return false
}

func unauth(c *gin.Context, code, desc string) {
	c.Header("WWW-Authenticate", `Bearer error="`+code+`", error_description="`+desc+`"`)
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": code, "error_description": desc})
}

func forbidden(c *gin.Context, code, desc string) {
	c.Header("WWW-Authenticate", `Bearer error="`+code+`", error_description="`+desc+`"`)
	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": code, "error_description": desc})
}
