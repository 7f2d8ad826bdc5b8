package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/311384/Eventos-fam/internal/auth"
)

// RequireLogin rejects requests without an authenticated identity.
// The wrapped handler never runs on rejection.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		ident := auth.IdentityFromContext(c.Request.Context())

		if fault := resolveFault(c.Request.Context()); fault != nil {
			denyFault(c, ident)
			return
		}

		if !ident.LoggedIn {
			deny(c, ident, "Você precisa estar logado para acessar esta área.")
			return
		}

		c.Next()
	}
}

// RequireAdmin rejects requests unless the identity carries the admin
// flag. A store fault during resolution is a 500, never a pass.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		ident := auth.IdentityFromContext(c.Request.Context())

		if fault := resolveFault(c.Request.Context()); fault != nil {
			denyFault(c, ident)
			return
		}

		if !ident.LoggedIn {
			deny(c, ident, "Você precisa estar logado para acessar esta área.")
			return
		}

		if !ident.IsAdmin {
			deny(c, ident, "Apenas administradores podem acessar esta página.")
			return
		}

		c.Next()
	}
}

func deny(c *gin.Context, ident auth.Identity, msg string) {
	c.HTML(http.StatusForbidden, "error.html", gin.H{
		"pageTitle":    "Acesso Negado",
		"errorMessage": msg,
		"usuario":      ident.User,
		"logado":       ident.LoggedIn,
		"isAdmin":      ident.IsAdmin,
	})
	c.Abort()
}

func denyFault(c *gin.Context, ident auth.Identity) {
	c.HTML(http.StatusInternalServerError, "error.html", gin.H{
		"pageTitle":    "Erro no Acesso",
		"errorMessage": "Erro ao verificar permissões. Tente novamente mais tarde.",
		"usuario":      ident.User,
		"logado":       ident.LoggedIn,
		"isAdmin":      ident.IsAdmin,
	})
	c.Abort()
}
