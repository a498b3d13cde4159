package routes

import (
	"net/http"

	"github.com/patternkit/lattice/internal/server/middleware"
	"github.com/patternkit/lattice/pkg/common"
	"github.com/patternkit/lattice/pkg/resolve"

	"github.com/labstack/echo/v4"
)

// GetComponentHandler resolves a free-text or numeric component reference.
// A failed resolution returns 404 with near-miss suggestions in the error
// context.
func GetComponentHandler(c echo.Context) error {
	type response struct {
		Component  common.Component       `json:"component"`
		Tags       []common.TagAssignment `json:"tags"`
		Considered int                    `json:"considered"`
	}

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

	return c.JSON(http.StatusOK, response{
		Component:  component,
		Tags:       snap.Tags(component.ID),
		Considered: snap.Len(),
	})
}

// SearchComponentsHandler ranks catalog components against a free-text
// query.
func SearchComponentsHandler(c echo.Context) error {
	type response struct {
		Matches    []resolve.Match `json:"matches"`
		Considered int             `json:"considered"`
	}

	app := c.(*middleware.AppContext).App
	ctx := c.Request().Context()

	snap, err := app.Snapshot(ctx)
	if err != nil {
		return writeError(c, err)
	}

	limit := intQueryParam(c, "limit", 10)
	matches, err := resolve.Search(snap, c.QueryParam("q"), limit)
	if err != nil {
		return writeError(c, err)
	}
	if matches == nil {
		matches = []resolve.Match{}
	}

	return c.JSON(http.StatusOK, response{
		Matches:    matches,
		Considered: snap.Len(),
	})
}
