package app

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/311384/Eventos-fam/internal/auth"
	"github.com/311384/Eventos-fam/internal/config"
	"github.com/311384/Eventos-fam/internal/logger"
	"github.com/311384/Eventos-fam/internal/middleware"
	"github.com/311384/Eventos-fam/internal/session"
	"github.com/311384/Eventos-fam/internal/users"
	"github.com/311384/Eventos-fam/internal/web"
)

// NewRouter wires stores, middleware and page handlers into a ready
// HTTP handler. The method-override wrapper sits outside the router
// so rewritten methods take part in route matching.
func NewRouter(userStore users.Store, sessionStore session.Store) http.Handler {
	authService := auth.NewService(userStore)
	pages := web.NewHandler(userStore, sessionStore, authService)

	router := gin.New()
	router.Use(gin.Recovery())
	router.SetHTMLTemplate(web.Templates())

	router.Use(middleware.ResolveIdentity(sessionStore, userStore))

	pages.RegisterRoutes(router)

	return middleware.MethodOverride(router)
}

func setupHTTP(ctx context.Context, cfg config.Config) (http.Handler, func() error, error) {

	infra, err := setupInfra(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	userStore := users.NewPostgresStore(infra.DB)
	sessionStore := session.NewRedisStore(infra.Redis.Client)

	if cfg.AdminEmail != "" && cfg.AdminPassword != "" {
		created, err := users.EnsureAdmin(ctx, userStore, cfg.AdminName, cfg.AdminEmail, cfg.AdminPassword)
		if err != nil {
			return nil, nil, err
		}
		if created {
			logger.Info("admin user seeded", map[string]any{"email": cfg.AdminEmail})
		}
	}

	handler := NewRouter(userStore, sessionStore)

	return handler, func() error {
		return infra.DB.Close()
	}, nil
}
