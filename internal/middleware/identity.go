package middleware

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/311384/Eventos-fam/internal/auth"
	"github.com/311384/Eventos-fam/internal/logger"
	"github.com/311384/Eventos-fam/internal/session"
	"github.com/311384/Eventos-fam/internal/users"
)

// unexported, collision-proof context key
type resolveFaultKeyType struct{}

var resolveFaultKey = resolveFaultKeyType{}

// resolveFault returns the store fault hit while resolving the
// request's identity, if any. Only the gates look at it.
func resolveFault(ctx context.Context) error {
	err, _ := ctx.Value(resolveFaultKey).(error)
	return err
}

// ResolveIdentity builds the request's identity before any handler
// runs. Every failure path degrades to the anonymous identity; the
// request itself never fails here.
func ResolveIdentity(sessions session.Store, store users.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, fault := resolve(c, sessions, store)

		ctx := auth.WithIdentity(c.Request.Context(), ident)
		if fault != nil {
			logger.Error("identity resolution failed", map[string]any{
				"error": fault.Error(),
			})
			ctx = context.WithValue(ctx, resolveFaultKey, fault)
		}

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func resolve(c *gin.Context, sessions session.Store, store users.Store) (auth.Identity, error) {
	cookie, err := c.Request.Cookie(session.CookieName)
	if err != nil || cookie.Value == "" {
		return auth.Anonymous(), nil
	}

	ctx := c.Request.Context()

	sess, err := sessions.Get(ctx, cookie.Value)
	if err != nil {
		return auth.Anonymous(), err
	}
	if sess == nil || !sess.Authenticated || sess.UserID == "" {
		return auth.Anonymous(), nil
	}

	// The Redis TTL normally expires sessions; the explicit check
	// covers clock drift between store and server.
	if time.Now().After(sess.ExpiresAt) {
		_ = sessions.Delete(ctx, sess.SessionID)
		session.ClearCookie(c.Writer, session.CookieOptions{Secure: true})
		return auth.Anonymous(), nil
	}

	u, err := store.FindByID(ctx, sess.UserID)
	if errors.Is(err, users.ErrNotFound) {
		// The referenced user is gone; the session dies with it.
		if derr := sessions.Delete(ctx, sess.SessionID); derr != nil {
			logger.Warn("failed to destroy stale session", map[string]any{
				"error": derr.Error(),
			})
		}
		session.ClearCookie(c.Writer, session.CookieOptions{Secure: true})
		return auth.Anonymous(), nil
	}
	if err != nil {
		return auth.Anonymous(), err
	}

	return auth.Identity{
		User:     u,
		LoggedIn: true,
		IsAdmin:  u.Admin,
	}, nil
}
