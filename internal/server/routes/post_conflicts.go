package routes

import (
	"net/http"

	"github.com/patternkit/lattice/internal/server/middleware"
	"github.com/patternkit/lattice/pkg/analysis"
	"github.com/patternkit/lattice/pkg/common"
	"github.com/patternkit/lattice/pkg/resolve"

	"github.com/labstack/echo/v4"
)

// PostConflictsHandler evaluates the conflict ruleset over a set of
// components. Tokens that fail to resolve are reported back rather than
// failing the whole check.
func PostConflictsHandler(c echo.Context) error {
	type request struct {
		Components []string `json:"components" validate:"required,min=1"`
	}

	type response struct {
		Report     *analysis.ConflictReport `json:"report"`
		Unresolved []string                 `json:"unresolved,omitempty"`
	}

	app := c.(*middleware.AppContext).App
	ctx := c.Request().Context()

	var req request
	if err := c.Bind(&req); err != nil {
		return writeError(c, common.InvalidArgumentf("malformed conflict request"))
	}
	if err := c.Validate(&req); err != nil {
		return writeError(c, common.InvalidArgumentf("components list is required"))
	}

	snap, err := app.Snapshot(ctx)
	if err != nil {
		return writeError(c, err)
	}

	var components []common.Component
	var unresolved []string
	seen := make(map[int64]struct{})
	for _, token := range req.Components {
		component, err := resolve.Resolve(snap, token)
		if err != nil {
			unresolved = append(unresolved, token)
			continue
		}
		if _, dup := seen[component.ID]; dup {
			continue
		}
		seen[component.ID] = struct{}{}
		components = append(components, component)
	}

	report := analysis.CheckConflicts(snap, components)

	return c.JSON(http.StatusOK, response{
		Report:     report,
		Unresolved: unresolved,
	})
}
