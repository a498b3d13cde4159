package routes

import (
	"net/http"

	"github.com/patternkit/lattice/internal/server/middleware"
	"github.com/patternkit/lattice/pkg/analysis"
	"github.com/patternkit/lattice/pkg/resolve"

	"github.com/labstack/echo/v4"
)

// GetSimilarHandler lists components sharing tags with the given one.
func GetSimilarHandler(c echo.Context) error {
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

	minShared := intQueryParam(c, "min_shared", analysis.DefaultMinShared)
	limit := intQueryParam(c, "limit", 10)

	result := analysis.Similar(snap, component, minShared, limit)
	if result.Matches == nil {
		result.Matches = []analysis.SimilarComponent{}
	}

	return c.JSON(http.StatusOK, result)
}
