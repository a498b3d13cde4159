package routes

import (
	"net/http"

	"github.com/patternkit/lattice/internal/server/middleware"
	"github.com/patternkit/lattice/pkg/common"
	"github.com/patternkit/lattice/pkg/graph"

	"github.com/labstack/echo/v4"
)

// PostGraphHandler assembles a relationship graph over the requested
// component set and serializes it into the requested format.
func PostGraphHandler(c echo.Context) error {
	type request struct {
		Components []string `json:"components"`
		All        bool     `json:"all"`
		Types      []string `json:"types"`
		Format     string   `json:"format" validate:"omitempty,oneof=interactive force diagram"`
	}

	type response struct {
		Graph     any  `json:"graph"`
		NodeCount int  `json:"node_count"`
		EdgeCount int  `json:"edge_count"`
		Truncated bool `json:"truncated"`
	}

	app := c.(*middleware.AppContext).App
	ctx := c.Request().Context()

	var req request
	if err := c.Bind(&req); err != nil {
		return writeError(c, common.InvalidArgumentf("malformed graph request"))
	}
	if err := c.Validate(&req); err != nil {
		return writeError(c, common.InvalidArgumentf("unknown graph format %q", req.Format))
	}

	types := make([]common.EdgeType, len(req.Types))
	for i, t := range req.Types {
		types[i] = common.EdgeType(t)
	}

	snap, err := app.Snapshot(ctx)
	if err != nil {
		return writeError(c, err)
	}

	assembled, err := graph.Assemble(ctx, snap, graph.AssembleParams{
		Tokens: req.Components,
		All:    req.All,
		Types:  types,
	})
	if err != nil {
		return writeError(c, err)
	}

	rendered, err := graph.Render(assembled, graph.Format(req.Format))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, response{
		Graph:     rendered,
		NodeCount: len(assembled.Nodes),
		EdgeCount: len(assembled.Edges),
		Truncated: assembled.Truncated,
	})
}
