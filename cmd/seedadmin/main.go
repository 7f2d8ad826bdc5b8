package main

import (
	"context"
	"database/sql"
	"time"

	"github.com/311384/Eventos-fam/internal/config"
	"github.com/311384/Eventos-fam/internal/db"
	"github.com/311384/Eventos-fam/internal/logger"
	"github.com/311384/Eventos-fam/internal/users"

	_ "github.com/lib/pq"
)

func main() {
	logger.Init()
	cfg := config.Load()

	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		logger.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD must be set", nil)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	sqlDB, err := sql.Open("postgres", cfg.DatabaseDSN)
	if err != nil {
		logger.Fatal("failed to open database", map[string]any{"error": err.Error()})
	}
	defer sqlDB.Close()

	if err := sqlDB.PingContext(ctx); err != nil {
		logger.Fatal("failed to reach database", map[string]any{"error": err.Error()})
	}

	if err := db.RunMigration(ctx, sqlDB); err != nil {
		logger.Fatal("migration failed", map[string]any{"error": err.Error()})
	}

	store := users.NewPostgresStore(&db.DB{DB: sqlDB})

	created, err := users.EnsureAdmin(ctx, store, cfg.AdminName, cfg.AdminEmail, cfg.AdminPassword)
	if err != nil {
		logger.Fatal("failed to seed admin", map[string]any{"error": err.Error()})
	}

	if created {
		logger.Info("admin user created", map[string]any{"email": cfg.AdminEmail})
	} else {
		logger.Info("admin user already exists", map[string]any{"email": cfg.AdminEmail})
	}
}
