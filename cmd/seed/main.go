// Command seed creates or updates the admin account from configuration.
// Run it once after first deployment, and again whenever the configured
// admin credentials change.
package main

import (
	"context"
	"errors"

	"github.com/portfolio/backend/internal/domain/identity"
	"github.com/portfolio/backend/internal/domain/shared"
	"github.com/portfolio/backend/internal/infrastructure/config"
	"github.com/portfolio/backend/internal/infrastructure/logger"
	"github.com/portfolio/backend/internal/infrastructure/persistence"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.NewForEnvironment(cfg.App.Env)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	if cfg.Admin.Password == "" {
		log.Fatal("admin.password must be set to seed the admin account")
	}

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := db.AutoMigrate(); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}

	ctx := context.Background()
	adminRepo := persistence.NewGormAdminRepository(db.DB)

	existing, err := adminRepo.FindByEmail(ctx, cfg.Admin.Email)
	switch {
	case err == nil:
		if err := existing.SetPassword(cfg.Admin.Password); err != nil {
			log.Fatal("Failed to set admin password", zap.Error(err))
		}
		if err := adminRepo.Save(ctx, existing); err != nil {
			log.Fatal("Failed to update admin account", zap.Error(err))
		}
		log.Info("Admin password updated", zap.String("email", existing.Email))

	case errors.Is(err, shared.ErrNotFound):
		admin, err := identity.NewAdmin(cfg.Admin.Email, cfg.Admin.Password)
		if err != nil {
			log.Fatal("Failed to create admin account", zap.Error(err))
		}
		if err := adminRepo.Save(ctx, admin); err != nil {
			log.Fatal("Failed to save admin account", zap.Error(err))
		}
		log.Info("Admin account created", zap.String("email", admin.Email))

	default:
		log.Fatal("Failed to look up admin account", zap.Error(err))
	}
}
