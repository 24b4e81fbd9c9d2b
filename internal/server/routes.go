package server

import (
	"net/http"

	"github.com/Puss-M/Domino-Agent/internal/server/middleware"
	"github.com/Puss-M/Domino-Agent/internal/server/routes"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func RegisterRoutes(e *echo.Echo) {
	// Liveness route
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "Domino-Agent Backend is Running!"})
	})
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	apiRoutes := e.Group("/api", middleware.AuthMiddleware)

	// Analysis routes
	apiRoutes.POST("/analyze", routes.AnalyzeEventHandler)
}
