package rest

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/swaggo/swag"

	_ "github.com/daniilsolovey/editions/docs"
)

const (
	// API paths
	apiPrefix = "/api"

	editionsPath    = "/editions"
	editionByIDPath = "/editions/:id"
	categoriesPath  = "/categories"

	healthPath  = "/health"
	swaggerPath = "/swagger/doc.json"

	contentTypeJSON = "application/json"
)

// RegisterRoutes registers all routes for the handler
func (h *EditionHandler) RegisterRoutes() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(h.loggingMiddleware())

	h.registerAPIRoutes(e.Group(apiPrefix))

	e.GET(healthPath, h.handleHealth)
	e.GET(swaggerPath, h.handleSwagger)

	if h.frontendDir != "" {
		e.Static("/", h.frontendDir)
	}

	return e
}

func (h *EditionHandler) registerAPIRoutes(api *echo.Group) {
	api.GET(editionsPath, h.Editions)
	api.POST(editionsPath, h.CreateEdition)
	api.GET(editionByIDPath, h.EditionByID)
	api.PUT(editionByIDPath, h.UpdateEdition)
	api.DELETE(editionByIDPath, h.DeleteEdition)
	api.GET(categoriesPath, h.Categories)
}

func (h *EditionHandler) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *EditionHandler) handleSwagger(c echo.Context) error {
	doc, err := swag.ReadDoc()
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "swagger document is not available")
	}
	return c.Blob(http.StatusOK, contentTypeJSON, []byte(doc))
}

func (h *EditionHandler) loggingMiddleware() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURIPath:   true,
		LogStatus:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			h.log.Info("HTTP request",
				"method", v.Method,
				"path", v.URIPath,
				"status", v.Status,
				"duration_ms", v.Latency.Milliseconds(),
				"remote_addr", v.RemoteIP,
				"request_id", v.RequestID,
			)
			return nil
		},
	})
}
