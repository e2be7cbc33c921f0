package setup

import (
	"context"
	"fmt"

	"github.com/itchan-dev/itchan-auth/backend/internal/handler"
	"github.com/itchan-dev/itchan-auth/backend/internal/service"
	"github.com/itchan-dev/itchan-auth/backend/internal/storage/pg"
	"github.com/itchan-dev/itchan-auth/backend/internal/utils"
	"github.com/itchan-dev/itchan-auth/shared/config"
	"github.com/itchan-dev/itchan-auth/shared/jwt"
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Storage *pg.Storage
	Handler *handler.Handler
	Jwt     *jwt.Jwt
	Config  *config.Config
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	issuer, err := jwt.New(cfg.JwtKey())
	if err != nil {
		return nil, err
	}

	storage, err := pg.New(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := storage.RunMigrations(); err != nil {
		_ = storage.Cleanup()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	auth := service.NewAuth(storage, utils.NewBcrypt(cfg.Public.BcryptCost), issuer)
	h := handler.New(auth, storage)

	return &Dependencies{
		Storage: storage,
		Handler: h,
		Jwt:     issuer,
		Config:  cfg,
	}, nil
}
