package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"raffle-draw/internal/domain/user"
	"raffle-draw/internal/handler/api"
	"raffle-draw/internal/handler/middleware"
	"raffle-draw/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Draw         *api.DrawHandler
	Verification *api.VerificationHandler
	Admin        *api.AdminHandler
	Status       *api.StatusHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, gatherer prometheus.Gatherer) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware, gatherer)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, gatherer prometheus.Gatherer) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/verifications/:id", Handler: h.Verification.Get},
			{Method: http.MethodGet, Path: "/rolls/history", Handler: h.Verification.RollHistory},
		})

		draws := apiGroup.Group("/draws")
		draws.Use(authMiddleware.RequireAuth())
		{
			addRoutes(draws, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Draw.Submit},
				{Method: http.MethodGet, Path: "/tickets/:id", Handler: h.Draw.GetTicket},
			})
		}

		authRequired := apiGroup.Group("")
		authRequired.Use(authMiddleware.RequireAuth())
		{
			adminOnly := []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(user.RoleAdmin)}
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/keys/status", Handler: h.Status.KeyStatus},
				{Method: http.MethodDelete, Path: "/verifications", Handler: h.Admin.PurgeVerifications, Mw: adminOnly},
				{Method: http.MethodGet, Path: "/ledger/:raffleKey", Handler: h.Admin.GetLedgerEntry, Mw: adminOnly},
				{Method: http.MethodDelete, Path: "/ledger/:raffleKey/in-progress", Handler: h.Admin.AbortDraw, Mw: adminOnly},
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
