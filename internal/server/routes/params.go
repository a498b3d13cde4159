package routes

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// intQueryParam parses an integer query parameter, falling back to def
// when the parameter is absent or malformed.
func intQueryParam(c echo.Context, name string, def int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return def
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return value
}
