package routes

import (
	"errors"
	"net/http"

	"github.com/patternkit/lattice/pkg/common"

	"github.com/labstack/echo/v4"
)

type errorResponse struct {
	Error   string         `json:"error"`
	Kind    string         `json:"kind,omitempty"`
	Context map[string]any `json:"context,omitempty"`
}

// writeError maps a structured core error to an HTTP status. Errors
// without a kind fall through as internal server errors.
func writeError(c echo.Context, err error) error {
	var kinded *common.Error
	if !errors.As(err, &kinded) {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}

	status := http.StatusInternalServerError
	switch kinded.Kind {
	case common.KindNotFound:
		status = http.StatusNotFound
	case common.KindInvalidArgument:
		status = http.StatusBadRequest
	case common.KindUpstream:
		status = http.StatusBadGateway
	}

	return c.JSON(status, errorResponse{
		Error:   kinded.Message,
		Kind:    string(kinded.Kind),
		Context: kinded.Context,
	})
}
