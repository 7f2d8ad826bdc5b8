package web

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/311384/Eventos-fam/internal/auth"
	"github.com/311384/Eventos-fam/internal/auth/credentials"
	"github.com/311384/Eventos-fam/internal/logger"
	"github.com/311384/Eventos-fam/internal/users"
)

func (h *Handler) RegisterForm(c *gin.Context) {
	h.render(c, http.StatusOK, "register.html", gin.H{
		"pageTitle": "Registrar Novo Usuário",
	})
}

func (h *Handler) CreateUser(c *gin.Context) {
	nome := strings.TrimSpace(c.PostForm("nome"))
	email := strings.TrimSpace(c.PostForm("email"))
	senha := c.PostForm("senha")

	if nome == "" || email == "" || senha == "" {
		h.render(c, http.StatusBadRequest, "register.html", gin.H{
			"pageTitle":    "Erro no Registro",
			"errorMessage": "Todos os campos são obrigatórios.",
			"oldInput":     gin.H{"nome": nome, "email": email},
		})
		return
	}

	age, ok := h.parseAge(c, "register.html", gin.H{"nome": nome, "email": email})
	if !ok {
		return
	}

	hash, err := credentials.Hash(senha)
	if err != nil {
		logger.Error("password hash failed", map[string]any{"error": err.Error()})
		h.renderError(c, http.StatusInternalServerError, "Erro Inesperado",
			"Ocorreu um erro ao tentar registrar o usuário.")
		return
	}

	u := &users.User{
		Name:         nome,
		Email:        email,
		PasswordHash: hash,
		Age:          age,
	}

	err = h.users.Insert(c.Request.Context(), u)
	if errors.Is(err, users.ErrDuplicateEmail) {
		h.render(c, http.StatusConflict, "register.html", gin.H{
			"pageTitle":    "Erro no Registro",
			"errorMessage": "Este email já está cadastrado.",
			"oldInput":     gin.H{"nome": nome, "email": email},
		})
		return
	}
	if err != nil {
		logger.Error("user insert failed", map[string]any{"error": err.Error()})
		h.renderError(c, http.StatusInternalServerError, "Erro Inesperado",
			"Ocorreu um erro ao tentar registrar o usuário.")
		return
	}

	c.Redirect(http.StatusFound, "/success")
}

func (h *Handler) ListUsers(c *gin.Context) {
	list, err := h.users.List(c.Request.Context())
	if err != nil {
		logger.Error("user list failed", map[string]any{"error": err.Error()})
		h.renderError(c, http.StatusInternalServerError, "Erro ao Carregar Usuários",
			"Não foi possível carregar a lista de usuários. Tente novamente mais tarde.")
		return
	}

	h.render(c, http.StatusOK, "users.html", gin.H{
		"pageTitle": "Lista de Usuários Cadastrados",
		"usuarios":  list,
	})
}

func (h *Handler) EditForm(c *gin.Context) {
	id := c.Param("id")

	u, err := h.users.FindByID(c.Request.Context(), id)
	if errors.Is(err, users.ErrNotFound) {
		h.renderError(c, http.StatusNotFound, "Usuário Não Encontrado",
			"O usuário que você tentou editar não existe.")
		return
	}
	if err != nil {
		logger.Error("edit form load failed", map[string]any{"error": err.Error()})
		h.renderError(c, http.StatusInternalServerError, "Erro ao Carregar Formulário",
			"Não foi possível carregar o formulário de edição.")
		return
	}

	h.render(c, http.StatusOK, "edituser.html", gin.H{
		"pageTitle": "Editar Usuário",
		"usuario":   u,
	})
}

func (h *Handler) UpdateUser(c *gin.Context) {
	id := c.Param("id")
	nome := strings.TrimSpace(c.PostForm("nome"))
	email := strings.TrimSpace(c.PostForm("email"))
	senha := c.PostForm("senha")

	editing := gin.H{
		"pageTitle": "Editar Usuário",
		"usuario":   &users.User{ID: id, Name: nome, Email: email},
	}

	if nome == "" || email == "" {
		editing["errorMessage"] = "Campos Nome e Email são obrigatórios."
		h.render(c, http.StatusBadRequest, "edituser.html", editing)
		return
	}

	age, ok := h.parseAgeEditing(c, editing)
	if !ok {
		return
	}

	upd := users.Update{
		Name:  nome,
		Email: email,
		Age:   age,
	}

	// An empty password keeps the stored hash.
	if senha != "" {
		hash, err := credentials.Hash(senha)
		if err != nil {
			logger.Error("password hash failed", map[string]any{"error": err.Error()})
			h.renderError(c, http.StatusInternalServerError, "Erro Inesperado",
				"Erro interno do servidor ao atualizar.")
			return
		}
		upd.PasswordHash = hash
	}

	err := h.users.Update(c.Request.Context(), id, upd)
	switch {
	case errors.Is(err, users.ErrDuplicateEmail):
		editing["errorMessage"] = "Este email já está cadastrado para outro usuário."
		h.render(c, http.StatusConflict, "edituser.html", editing)
	case errors.Is(err, users.ErrNotFound):
		h.renderError(c, http.StatusNotFound, "Usuário Não Encontrado",
			"Usuário não encontrado para atualização.")
	case err != nil:
		logger.Error("user update failed", map[string]any{"error": err.Error()})
		h.renderError(c, http.StatusInternalServerError, "Erro Inesperado",
			"Erro interno do servidor ao atualizar.")
	default:
		c.Redirect(http.StatusFound, "/usuarios")
	}
}

func (h *Handler) DeleteUser(c *gin.Context) {
	id := c.Param("id")

	err := h.users.Delete(c.Request.Context(), id)
	switch {
	case errors.Is(err, users.ErrNotFound):
		h.renderError(c, http.StatusNotFound, "Usuário Não Encontrado",
			"Usuário não encontrado para exclusão.")
	case err != nil:
		logger.Error("user delete failed", map[string]any{"error": err.Error()})
		h.renderError(c, http.StatusInternalServerError, "Erro Inesperado",
			"Erro interno do servidor ao excluir.")
	default:
		c.Redirect(http.StatusFound, "/usuarios")
	}
}

func (h *Handler) MakeAdmin(c *gin.Context) {
	id := c.Param("id")

	err := h.users.SetAdmin(c.Request.Context(), id, true)
	switch {
	case errors.Is(err, users.ErrNotFound):
		h.renderError(c, http.StatusNotFound, "Usuário Não Encontrado",
			"Usuário não encontrado para promoção.")
	case err != nil:
		logger.Error("make admin failed", map[string]any{"error": err.Error()})
		h.renderError(c, http.StatusInternalServerError, "Erro",
			"Não foi possível tornar o usuário administrador.")
	default:
		c.Redirect(http.StatusFound, "/usuarios")
	}
}

// AddComment appends to a user's comment log. Non-admins may only
// write to their own log.
func (h *Handler) AddComment(c *gin.Context) {
	id := c.Param("id")
	ident := auth.IdentityFromContext(c.Request.Context())

	if !ident.IsAdmin && (ident.User == nil || ident.User.ID != id) {
		h.renderError(c, http.StatusForbidden, "Acesso Negado",
			"Você só pode comentar no seu próprio registro.")
		return
	}

	body := strings.TrimSpace(c.PostForm("comentario"))
	if body == "" {
		h.renderError(c, http.StatusBadRequest, "Comentário Inválido",
			"O comentário não pode estar vazio.")
		return
	}

	err := h.users.AddComment(c.Request.Context(), id, body)
	switch {
	case errors.Is(err, users.ErrNotFound):
		h.renderError(c, http.StatusNotFound, "Usuário Não Encontrado",
			"O usuário deste comentário não existe.")
	case err != nil:
		logger.Error("add comment failed", map[string]any{"error": err.Error()})
		h.renderError(c, http.StatusInternalServerError, "Erro Inesperado",
			"Não foi possível registrar o comentário.")
	default:
		if ident.IsAdmin && (ident.User == nil || ident.User.ID != id) {
			c.Redirect(http.StatusFound, "/usuarios/"+id+"/editar")
			return
		}
		c.Redirect(http.StatusFound, "/dashboard")
	}
}

func (h *Handler) parseAge(c *gin.Context, tmpl string, oldInput gin.H) (*int, bool) {
	raw := strings.TrimSpace(c.PostForm("idade"))
	if raw == "" {
		return nil, true
	}

	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		h.render(c, http.StatusBadRequest, tmpl, gin.H{
			"pageTitle":    "Erro no Registro",
			"errorMessage": "Idade inválida.",
			"oldInput":     oldInput,
		})
		return nil, false
	}
	return &v, true
}

func (h *Handler) parseAgeEditing(c *gin.Context, editing gin.H) (*int, bool) {
	raw := strings.TrimSpace(c.PostForm("idade"))
	if raw == "" {
		return nil, true
	}

	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		editing["errorMessage"] = "Idade inválida."
		h.render(c, http.StatusBadRequest, "edituser.html", editing)
		return nil, false
	}
	return &v, true
}
