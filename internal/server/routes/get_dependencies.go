package routes

import (
	"net/http"

	"github.com/patternkit/lattice/internal/server/middleware"
	"github.com/patternkit/lattice/pkg/graph"
	"github.com/patternkit/lattice/pkg/resolve"

	"github.com/labstack/echo/v4"
)

// GetDependenciesHandler walks the requires/contains subgraph rooted at a
// component, bounded by the depth query parameter (default 2).
func GetDependenciesHandler(c echo.Context) error {
	app := c.(*middleware.AppContext).App
	ctx := c.Request().Context()

	snap, err := app.Snapshot(ctx)
	if err != nil {
		return writeError(c, err)
	}

	component, err := resolve.Resolve(snap, c.Param("token"))
	if err != nil {
		return writeError(c, err)
	}

	depth := intQueryParam(c, "depth", graph.DefaultMaxDepth)
	traversal := graph.TraverseDependencies(snap, component, depth)

	return c.JSON(http.StatusOK, traversal)
}
