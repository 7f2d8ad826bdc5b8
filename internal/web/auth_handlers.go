package web

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/311384/Eventos-fam/internal/auth"
	"github.com/311384/Eventos-fam/internal/logger"
	"github.com/311384/Eventos-fam/internal/session"
)

// Unknown email and wrong password render this same text, so the form
// never reveals which of the two was wrong.
const invalidCredentialsMessage = "Email ou senha inválidos."

func (h *Handler) LoginForm(c *gin.Context) {
	h.render(c, http.StatusOK, "login.html", gin.H{
		"pageTitle": "Login de Usuário",
	})
}

func (h *Handler) Login(c *gin.Context) {
	email := strings.TrimSpace(c.PostForm("email"))
	senha := c.PostForm("senha")

	if email == "" || senha == "" {
		h.render(c, http.StatusBadRequest, "login.html", gin.H{
			"pageTitle":    "Login de Usuário",
			"errorMessage": "Email e senha são obrigatórios.",
			"oldInput":     gin.H{"email": email},
		})
		return
	}

	u, err := h.auth.Authenticate(c.Request.Context(), email, senha)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		h.render(c, http.StatusUnauthorized, "login.html", gin.H{
			"pageTitle":    "Login de Usuário",
			"errorMessage": invalidCredentialsMessage,
			"oldInput":     gin.H{"email": email},
		})
		return
	}
	if err != nil {
		logger.Error("login failed", map[string]any{"error": err.Error()})
		h.renderError(c, http.StatusInternalServerError, "Erro de Login",
			"Ocorreu um erro interno do servidor ao tentar fazer login.")
		return
	}

	sessionID, err := session.GenerateID()
	if err != nil {
		logger.Error("session id generation failed", map[string]any{"error": err.Error()})
		h.renderError(c, http.StatusInternalServerError, "Erro de Login",
			"Ocorreu um erro interno do servidor ao tentar fazer login.")
		return
	}

	// The expiry clock starts now; logging in again mints a fresh
	// session with a fresh 24h window.
	expiresAt := time.Now().Add(session.TTL)

	err = h.sessions.Create(c.Request.Context(), session.Session{
		SessionID:     sessionID,
		UserID:        u.ID,
		Authenticated: true,
		ExpiresAt:     expiresAt,
	})
	if err != nil {
		logger.Error("session create failed", map[string]any{"error": err.Error()})
		h.renderError(c, http.StatusInternalServerError, "Erro de Login",
			"Ocorreu um erro interno do servidor ao tentar fazer login.")
		return
	}

	session.SetCookie(c.Writer, sessionID, expiresAt, session.CookieOptions{
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})

	c.Redirect(http.StatusFound, "/dashboard")
}

// Logout destroys the session entry outright. It succeeds from the
// user's point of view even when the entry was already gone or the
// store refused the delete.
func (h *Handler) Logout(c *gin.Context) {
	if cookie, err := c.Request.Cookie(session.CookieName); err == nil && cookie.Value != "" {
		if derr := h.sessions.Delete(c.Request.Context(), cookie.Value); derr != nil {
			logger.Error("session destroy failed", map[string]any{"error": derr.Error()})
		}
	}

	session.ClearCookie(c.Writer, session.CookieOptions{
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})

	c.Redirect(http.StatusFound, "/")
}

// Dashboard renders the identity's own record; the resolver already
// loaded it, comment log included.
func (h *Handler) Dashboard(c *gin.Context) {
	h.render(c, http.StatusOK, "dashboard.html", gin.H{
		"pageTitle": "Dashboard",
	})
}
