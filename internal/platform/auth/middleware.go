package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/library/model"
	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/platform/store"
)

const (
	CtxUserIDKey = "user_id"
	CtxRoleIDKey = "role_id"
)

// Middleware validates bearer tokens and enforces role permissions.
type Middleware struct {
	secret []byte
	roles  *store.Store[model.Role]
}

func NewMiddleware(secret []byte, db *gorm.DB) *Middleware {
	return &Middleware{secret: secret, roles: store.New[model.Role](db)}
}

func (m *Middleware) parse(c *gin.Context) (userID, roleID string, ok bool) {
	h := c.GetHeader("Authorization")
	if h == "" {
		return "", "", false
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", "", false
	}
	tokenStr := strings.TrimSpace(parts[1])
	if tokenStr == "" {
		return "", "", false
	}

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || token == nil || !token.Valid {
		return "", "", false
	}
	claims, okClaims := token.Claims.(jwt.MapClaims)
	if !okClaims {
		return "", "", false
	}
	sub, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)
	if sub == "" {
		return "", "", false
	}
	return sub, role, true
}

// RequireAuth verifies the bearer token and stores the caller's identity in
// the request context.
func (m *Middleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, roleID, ok := m.parse(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or missing token"})
			return
		}
		c.Set(CtxUserIDKey, userID)
		c.Set(CtxRoleIDKey, roleID)
		c.Next()
	}
}

// RequirePermission verifies the token and checks that the caller's role
// carries the named permission.
func (m *Middleware) RequirePermission(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, roleID, ok := m.parse(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or missing token"})
			return
		}
		role, err := m.roles.FindByID(c.Request.Context(), roleID)
		if err != nil || role == nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "unknown role"})
			return
		}
		allowed := false
		for _, p := range role.Permissions {
			if p == name {
				allowed = true
				break
			}
		}
		if !allowed {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "permission denied"})
			return
		}
		c.Set(CtxUserIDKey, userID)
		c.Set(CtxRoleIDKey, roleID)
		c.Next()
	}
}
