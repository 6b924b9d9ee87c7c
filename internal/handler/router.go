package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"coffee-verifier/internal/handler/api"
	"coffee-verifier/internal/handler/middleware"
	"coffee-verifier/internal/pkg/config"
	"coffee-verifier/internal/pkg/jwt"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, verificationHandler *api.VerificationHandler, batchHandler *api.BatchHandler, authMiddleware *middleware.AuthMiddleware) error {
	if err := RegisterValidators(); err != nil {
		return err
	}
	setupMiddleware(engine, cfg)
	setupRoutes(engine, verificationHandler, batchHandler, authMiddleware)
	return nil
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, verificationHandler *api.VerificationHandler, batchHandler *api.BatchHandler, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		oracle := apiGroup.Group("/oracle")
		{
			addRoutes(oracle, []route{
				{Method: http.MethodPost, Path: "/verify", Handler: verificationHandler.Verify},
				{Method: http.MethodGet, Path: "/status/:requestId", Handler: verificationHandler.Status},
				// answers 400 instead of falling through to 404
				{Method: http.MethodGet, Path: "/status", Handler: verificationHandler.Status},
			})
		}

		addRoutes(apiGroup, []route{
			{
				Method:  http.MethodPost,
				Path:    "/sync-verification",
				Handler: verificationHandler.Sync,
				Mw:      []gin.HandlerFunc{authMiddleware.RequireScope(jwt.ScopeSyncVerification)},
			},
		})

		batches := apiGroup.Group("/batches")
		{
			addRoutes(batches, []route{
				{Method: http.MethodGet, Path: "/:batchId", Handler: batchHandler.GetBatch},
				{Method: http.MethodGet, Path: "/:batchId/verifications", Handler: batchHandler.ListVerifications},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
