package components

import (
	"coffee-verifier/internal/handler"
	"coffee-verifier/internal/handler/api"
	"coffee-verifier/internal/handler/middleware"
	"coffee-verifier/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewVerificationHandler,
		api.NewBatchHandler,
		func(v middleware.TokenValidator, cfg config.Config) *middleware.AuthMiddleware {
			return middleware.NewAuthMiddleware(v, cfg.Auth.SyncAuthEnabled)
		},
	),
	fx.Invoke(handler.NewRouter),
)
