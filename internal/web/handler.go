package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/311384/Eventos-fam/internal/auth"
	"github.com/311384/Eventos-fam/internal/middleware"
	"github.com/311384/Eventos-fam/internal/session"
	"github.com/311384/Eventos-fam/internal/users"
)

type Handler struct {
	users    users.Store
	sessions session.Store
	auth     *auth.Service
}

func NewHandler(
	store users.Store,
	sessions session.Store,
	authService *auth.Service,
) *Handler {
	return &Handler{
		users:    store,
		sessions: sessions,
		auth:     authService,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.Home)
	r.GET("/login", h.LoginForm)
	r.POST("/login", h.Login)
	r.GET("/logout", h.Logout)
	r.GET("/success", h.Success)
	r.GET("/error", h.ErrorPage)

	logged := r.Group("/", middleware.RequireLogin())
	logged.GET("/dashboard", h.Dashboard)
	logged.POST("/usuarios/:id/comentarios", h.AddComment)

	admin := r.Group("/", middleware.RequireAdmin())
	admin.GET("/register", h.RegisterForm)
	admin.POST("/usuarios", h.CreateUser)
	admin.GET("/usuarios", h.ListUsers)
	admin.GET("/usuarios/:id/editar", h.EditForm)
	admin.PUT("/usuarios/:id", h.UpdateUser)
	admin.DELETE("/usuarios/:id", h.DeleteUser)
	admin.POST("/usuarios/:id/tornar-admin", h.MakeAdmin)
}

// render injects the identity keys every view consumes. Explicit data
// wins over identity data so pages may name their own "usuario".
func (h *Handler) render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	ident := auth.IdentityFromContext(c.Request.Context())
	if _, ok := data["usuario"]; !ok {
		data["usuario"] = ident.User
	}
	if _, ok := data["logado"]; !ok {
		data["logado"] = ident.LoggedIn
	}
	if _, ok := data["isAdmin"]; !ok {
		data["isAdmin"] = ident.IsAdmin
	}

	c.HTML(status, name, data)
}

func (h *Handler) renderError(c *gin.Context, status int, title, msg string) {
	h.render(c, status, "error.html", gin.H{
		"pageTitle":    title,
		"errorMessage": msg,
	})
}

func (h *Handler) Home(c *gin.Context) {
	h.render(c, http.StatusOK, "home.html", gin.H{
		"pageTitle": "Bem-vindo à API de Usuários",
		"message":   "Eventos Contratados",
	})
}

func (h *Handler) Success(c *gin.Context) {
	h.render(c, http.StatusOK, "success.html", gin.H{
		"pageTitle": "Registro Concluído!",
		"message":   "Seu usuário foi registrado com sucesso!",
	})
}

func (h *Handler) ErrorPage(c *gin.Context) {
	h.render(c, http.StatusOK, "error.html", gin.H{
		"pageTitle":    "Erro Ocorrido",
		"errorMessage": "Desculpe, ocorreu um problema inesperado.",
	})
}
