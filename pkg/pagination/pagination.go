package pagination

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

const (
	// DefaultLimit applies when the request carries no usable limit.
	DefaultLimit = 100
	// MaxLimit is the hard cap on rows returned by any list endpoint.
	MaxLimit = 1000
)

// Limit extracts the "limit" query parameter from the echo context,
// falling back to DefaultLimit and clamping to MaxLimit. Malformed or
// non-positive values fall back rather than erroring.
func Limit(c echo.Context) int {
	return LimitWithDefault(c, DefaultLimit)
}

// LimitWithDefault behaves like Limit with a caller-supplied default.
func LimitWithDefault(c echo.Context, def int) int {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit <= 0 {
		limit = def
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return limit
}
