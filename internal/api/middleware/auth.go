package middleware

import (
	"net/http"
	"strings"

	"storefront/internal/api/util"
	"storefront/internal/core/model"
	"storefront/internal/core/repository"

	"github.com/gin-gonic/gin"
)

const identityKey = "currentUser"

// TokenCookie is the cookie carrying the signed identity token.
const TokenCookie = "token"

type AuthMiddleware struct {
	tokens   *util.TokenManager
	userRepo repository.UserRepository
}

func NewAuthMiddleware(tokens *util.TokenManager, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{
		tokens:   tokens,
		userRepo: userRepo,
	}
}

// resolveIdentity turns the request's token into a user record. The cookie
// is preferred; a bearer Authorization header is accepted as fallback. The
// loaded record excludes the password hash. Both guards and the best-effort
// viewer resolution share this one path.
func (m *AuthMiddleware) resolveIdentity(c *gin.Context) (*model.User, error) {
	token := ""
	if cookie, err := c.Cookie(TokenCookie); err == nil && cookie != "" {
		token = cookie
	} else if auth := c.GetHeader("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		token = strings.TrimPrefix(auth, "Bearer ")
	}
	if token == "" {
		return nil, util.ErrInvalidToken
	}

	userID, err := m.tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	user, err := m.userRepo.FindByIDPublic(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		// Token outlived the account.
		return nil, util.ErrInvalidToken
	}
	return user, nil
}

// RequireAuth denies unauthenticated requests by redirecting to the login
// page. On success the identity is attached to the request context.
func (m *AuthMiddleware) RequireAuth(c *gin.Context) {
	user, err := m.resolveIdentity(c)
	if err != nil {
		c.Redirect(http.StatusFound, "/auth/login")
		c.Abort()
		return
	}

	c.Set(identityKey, user)
	c.Next()
}

// RequireAdmin passes only admin identities. Composes after RequireAuth, so
// the caller is authenticated; non-admins are sent home, not to login.
func (m *AuthMiddleware) RequireAdmin(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil || !user.Admin {
		c.Redirect(http.StatusFound, "/")
		c.Abort()
		return
	}
	c.Next()
}

// ResolveViewer attaches the identity when the token resolves and stays
// silent otherwise, so public pages can greet a logged-in viewer without
// ever blocking anonymous ones.
func (m *AuthMiddleware) ResolveViewer(c *gin.Context) {
	if user, err := m.resolveIdentity(c); err == nil {
		c.Set(identityKey, user)
	}
	c.Next()
}

// CurrentUser reads the identity attached by RequireAuth or ResolveViewer;
// nil for anonymous requests.
func CurrentUser(c *gin.Context) *model.User {
	if v, ok := c.Get(identityKey); ok {
		if user, ok := v.(*model.User); ok {
			return user
		}
	}
	return nil
}
