package http

import (
	"net/http"
	"strings"

	"gamehub/internal/apperr"
	"gamehub/internal/entity"
	"gamehub/pkg/cache"
	"gamehub/pkg/jwt"
	"gamehub/pkg/logger"

	"github.com/gin-gonic/gin"
)

const (
	authCookie = "auth_token"

	ctxClaims = "auth_claims"
	ctxActor  = "auth_actor"
)

// TokenVersionSource resolves the authoritative token version of a live
// account. Backed by the user repository; the redis cache sits in front.
type TokenVersionSource interface {
	TokenVersion(id string) (int, error)
}

type AuthMiddleware struct {
	tokens   *jwt.Service
	versions *cache.TokenVersions
	source   TokenVersionSource
	log      *logger.Logger
}

func NewAuthMiddleware(
	tokens *jwt.Service,
	versions *cache.TokenVersions,
	source TokenVersionSource,
	log *logger.Logger,
) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, versions: versions, source: source, log: log}
}

// Authenticate validates the credential from the auth cookie (or a Bearer
// header) and enforces the token-version fence: a token minted before the
// account's last forced logout is dead no matter how far its expiry is.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := tokenFromRequest(c)
		if raw == "" {
			respondError(c, apperr.ErrUnauthorized)
			c.Abort()
			return
		}

		claims, err := m.tokens.ValidateToken(raw)
		if err != nil {
			respondError(c, apperr.ErrUnauthorized)
			c.Abort()
			return
		}

		current, ok := m.versions.Get(c.Request.Context(), claims.UserID)
		if !ok {
			current, err = m.source.TokenVersion(claims.UserID)
			if err != nil {
				// Missing or trashed account: the session no longer exists.
				clearAuthCookie(c)
				respondError(c, apperr.ErrUnauthorized)
				c.Abort()
				return
			}
			m.versions.Set(c.Request.Context(), claims.UserID, current)
		}

		if claims.TokenVersion != current {
			clearAuthCookie(c)
			respondError(c, apperr.ErrTokenInvalidated)
			c.Abort()
			return
		}

		c.Set(ctxClaims, claims)
		c.Set(ctxActor, entity.Actor{
			ID:    claims.UserID,
			Roles: entity.RolesFromNames(claims.Roles),
		})
		c.Next()
	}
}

// RequireAdmin admits actors holding ADMIN or SUPER_ADMIN.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := actorFromContext(c)
		if !entity.HasAdminOrSuperAdmin(actor.Roles) {
			respondError(c, apperr.ErrForbidden)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireSuperAdmin admits SUPER_ADMIN actors only.
func (m *AuthMiddleware) RequireSuperAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := actorFromContext(c)
		if !entity.HasSuperAdmin(actor.Roles) {
			respondError(c, apperr.ErrForbidden)
			c.Abort()
			return
		}
		c.Next()
	}
}

func tokenFromRequest(c *gin.Context) string {
	if cookie, err := c.Cookie(authCookie); err == nil && cookie != "" {
		return cookie
	}
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

func actorFromContext(c *gin.Context) entity.Actor {
	if v, ok := c.Get(ctxActor); ok {
		if actor, ok := v.(entity.Actor); ok {
			return actor
		}
	}
	return entity.Actor{}
}

func setAuthCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(authCookie, token, maxAge, "/", "", false, true)
}

func clearAuthCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(authCookie, "", -1, "/", "", false, true)
}
