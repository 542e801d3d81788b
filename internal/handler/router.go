package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"dealership-api/internal/handler/api"
	"dealership-api/internal/handler/middleware"
	"dealership-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, carHandler *api.CarHandler, testDriveHandler *api.TestDriveHandler) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, carHandler, testDriveHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, carHandler *api.CarHandler, testDriveHandler *api.TestDriveHandler) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		cars := apiGroup.Group("/cars")
		{
			addRoutes(cars, []route{
				{Method: http.MethodGet, Path: "/info", Handler: carHandler.Info},
				{Method: http.MethodGet, Path: "", Handler: carHandler.List},
				{Method: http.MethodPost, Path: "", Handler: carHandler.Create},
				{Method: http.MethodGet, Path: "/search", Handler: carHandler.SearchByBrand},
				{Method: http.MethodGet, Path: "/by-price", Handler: carHandler.SearchByPrice},
				{Method: http.MethodGet, Path: "/by-color", Handler: carHandler.SearchByColor},
				{Method: http.MethodGet, Path: "/by-fuel", Handler: carHandler.SearchByFuelType},
				{Method: http.MethodGet, Path: "/by-status", Handler: carHandler.SearchByStatus},
				{Method: http.MethodGet, Path: "/by-power", Handler: carHandler.SearchByHorsepower},
				{Method: http.MethodGet, Path: "/:id", Handler: carHandler.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: carHandler.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: carHandler.Delete},
			})
		}

		testDrive := apiGroup.Group("/email/test-drive")
		{
			addRoutes(testDrive, []route{
				{Method: http.MethodPost, Path: "/confirmation", Handler: testDriveHandler.SendConfirmation},
				{Method: http.MethodPost, Path: "/reminder", Handler: testDriveHandler.SendReminder},
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
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodPut:
			g.PUT(r.Path, r.Handler)
		case http.MethodPatch:
			g.PATCH(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
