package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"table-booking/internal/handler/api"
	"table-booking/internal/handler/middleware"
	"table-booking/internal/pkg/config"
	"table-booking/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	m *metrics.Metrics,
	gatherer prometheus.Gatherer,
	reservationHandler *api.ReservationHandler,
) {
	setupMiddleware(engine, cfg, logger, m)
	setupRoutes(engine, cfg.Metrics, gatherer, reservationHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, m *metrics.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	if cfg.Metrics.Enabled {
		engine.Use(middleware.MetricsMiddleware(m))
	}
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, metricsCfg config.MetricsConfig, gatherer prometheus.Gatherer, reservationHandler *api.ReservationHandler) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	if metricsCfg.Enabled {
		engine.GET(metricsCfg.Path, gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/availability", Handler: reservationHandler.GetAvailability},
		})

		booking := apiGroup.Group("/booking")
		{
			addRoutes(booking, []route{
				{Method: http.MethodGet, Path: "/options", Handler: reservationHandler.GetOptions},
				{Method: http.MethodPost, Path: "/sessions", Handler: reservationHandler.StartSession},
			})

			session := booking.Group("/sessions/:id")
			addRoutes(session, []route{
				{Method: http.MethodGet, Path: "", Handler: reservationHandler.GetSession},
				{Method: http.MethodDelete, Path: "", Handler: reservationHandler.CloseSession},
				{Method: http.MethodPut, Path: "/fields/:field", Handler: reservationHandler.UpdateField},
				{Method: http.MethodPost, Path: "/fields/:field/blur", Handler: reservationHandler.BlurField},
				{Method: http.MethodPost, Path: "/submit", Handler: reservationHandler.Submit, Mw: []gin.HandlerFunc{noStore}},
				{Method: http.MethodPost, Path: "/reset", Handler: reservationHandler.ResetSession},
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

// submission results are never cacheable
func noStore(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
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
