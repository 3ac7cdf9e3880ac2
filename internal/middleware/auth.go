package middleware

import (
	"net/http"
	"strings"

	"github.com/eunji-woo/my-website-go/internal/models"
	"github.com/eunji-woo/my-website-go/internal/pkg/jwt"
	sessionpkg "github.com/eunji-woo/my-website-go/internal/pkg/session"
	"github.com/eunji-woo/my-website-go/internal/policy"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	// SessionCookie carries the signed session token.
	SessionCookie = "session"

	ContextKeyUserID = "user_id"
	ContextKeySID    = "session_id"
	ContextKeyUser   = "user"

	// LoginPath is where unauthenticated requests to protected pages go.
	LoginPath = "/accounts/login/"
)

// Auth requires a logged-in user, redirecting anonymous visitors to the
// login page. It relies on OptionalAuth having run earlier in the chain.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsAuthenticated(c) {
			c.Redirect(http.StatusFound, LoginPath+"?next="+c.Request.URL.Path)
			c.Abort()
			return
		}
		c.Next()
	}
}

// OptionalAuth attaches the user when a valid session cookie is present,
// but never blocks the request.
func OptionalAuth(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		attachPrincipal(db, c)
		c.Next()
	}
}

func attachPrincipal(db *gorm.DB, c *gin.Context) {
	token := extractToken(c)
	if token == "" {
		return
	}

	claims, err := jwt.Parse(token)
	if err != nil || claims.UserID == 0 {
		return
	}
	active, err := sessionpkg.IsActive(db, claims.UserID, claims.SessionID)
	if err != nil || !active {
		return
	}

	var user models.UserModel
	if err := db.First(&user, claims.UserID).Error; err != nil {
		return
	}

	c.Set(ContextKeyUserID, claims.UserID)
	c.Set(ContextKeySID, claims.SessionID)
	c.Set(ContextKeyUser, &user)
}

// CurrentUserID extracts the authenticated user ID from context, zero when
// anonymous.
func CurrentUserID(c *gin.Context) uint {
	v, _ := c.Get(ContextKeyUserID)
	id, _ := v.(uint)
	return id
}

// CurrentSessionID extracts the session ID from context.
func CurrentSessionID(c *gin.Context) string {
	v, _ := c.Get(ContextKeySID)
	id, _ := v.(string)
	return id
}

// CurrentUser returns the authenticated user, nil when anonymous.
func CurrentUser(c *gin.Context) *models.UserModel {
	v, _ := c.Get(ContextKeyUser)
	u, _ := v.(*models.UserModel)
	return u
}

// Principal returns the access-control principal of the request.
func Principal(c *gin.Context) policy.Principal {
	return policy.Principal{UserID: CurrentUserID(c)}
}

// IsAuthenticated returns true if the request carries a valid session.
func IsAuthenticated(c *gin.Context) bool {
	return CurrentUserID(c) != 0
}

func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie != "" {
		return strings.TrimSpace(cookie)
	}
	auth := strings.TrimSpace(c.GetHeader("Authorization"))
	if strings.HasPrefix(strings.ToLower(auth), "bearer ") {
		return strings.TrimSpace(auth[7:])
	}
	return auth
}
