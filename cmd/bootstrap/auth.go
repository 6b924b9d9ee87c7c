package bootstrap

import (
	"coffee-verifier/internal/handler/middleware"
	"coffee-verifier/internal/pkg/config"
	"coffee-verifier/internal/pkg/jwt"

	"go.uber.org/fx"
)

var AuthModule = fx.Module("auth",
	fx.Provide(
		NewJWTService,
		fx.Annotate(
			func(s *jwt.Service) *jwt.Service { return s },
			fx.As(new(middleware.TokenValidator)),
		),
	),
)

func NewJWTService(cfg config.Config) *jwt.Service {
	return jwt.NewService(cfg.Auth.SyncTokenSecret, cfg.Auth.SyncTokenIssuer, cfg.Auth.SyncTokenDuration)
}
