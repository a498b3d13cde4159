package server

import (
	"github.com/patternkit/lattice/internal/server/routes"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo) {
	// Health check route
	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	apiRoutes := e.Group("/api")

	// Component resolution and search
	apiRoutes.GET("/components", routes.SearchComponentsHandler)
	apiRoutes.GET("/components/:token", routes.GetComponentHandler)

	// Structural queries
	apiRoutes.POST("/graph", routes.PostGraphHandler)
	apiRoutes.GET("/components/:token/dependencies", routes.GetDependenciesHandler)

	// Relevance queries
	apiRoutes.GET("/components/:token/similar", routes.GetSimilarHandler)
	apiRoutes.POST("/conflicts", routes.PostConflictsHandler)
}
