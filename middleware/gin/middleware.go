// Package ginmw adapts cardkit parsing to gin handlers.
package ginmw

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reoring/cardkit"
	"github.com/reoring/cardkit/middleware"
)

// ParseJSON parses the incoming JSON with parse and opt (or DefaultParseOpt
// when zero value), stores the ParseResult[T] in the request context, and on
// failure returns 400 with an Issues payload.
func ParseJSON[T any](parse cardkit.ParseFunc[T], opt cardkit.ParseOpt) gin.HandlerFunc {
	opt = middleware.Resolve(opt)
	return func(c *gin.Context) {
		res, err := cardkit.ParseFrom(c.Request.Context(), cardkit.JSONReader(c.Request.Body), parse, opt)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, middleware.FailurePayload(err))
			return
		}
		// store the result in the request context
		c.Request = c.Request.WithContext(middleware.ContextWithParsed(c.Request.Context(), res))
		c.Next()
	}
}

// GetParsed fetches ParseResult[T] from gin.Context.
func GetParsed[T any](c *gin.Context) (cardkit.ParseResult[T], bool) {
	return middleware.ParsedFromContext[T](c.Request.Context())
}
