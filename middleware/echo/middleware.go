// Package echomw adapts cardkit parsing to echo handlers.
package echomw

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/reoring/cardkit"
	"github.com/reoring/cardkit/middleware"
)

// ParseJSON parses the request body with parse and opt (or DefaultParseOpt
// when zero value), stores the ParseResult[T] in the request context on
// success, or returns 400 with Issues when parsing fails.
func ParseJSON[T any](parse cardkit.ParseFunc[T], opt cardkit.ParseOpt) echo.MiddlewareFunc {
	opt = middleware.Resolve(opt)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			res, err := cardkit.ParseFrom(req.Context(), cardkit.JSONReader(req.Body), parse, opt)
			if err != nil {
				return c.JSON(http.StatusBadRequest, middleware.FailurePayload(err))
			}
			c.SetRequest(req.WithContext(middleware.ContextWithParsed(req.Context(), res)))
			return next(c)
		}
	}
}

// GetParsed fetches ParseResult[T] from echo.Context.
func GetParsed[T any](c echo.Context) (cardkit.ParseResult[T], bool) {
	return middleware.ParsedFromContext[T](c.Request().Context())
}
