package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/Harshan-mv/wechat/internal/core/domain"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that renders flat
// text responses for this browser-facing surface. Every failure that is not
// an explicit echo.HTTPError collapses to a generic 500: the real cause is
// logged server-side and never shown to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.String(code, msg)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (404 from the router, bind failures, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// A missing verification target is an expected edge case; keep it apart
	// from infrastructure failures in the logs even though the browser sees
	// the same generic response.
	if errors.Is(err, domain.ErrUserNotFound) {
		log.Warn().
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg("target user not found")
		return http.StatusInternalServerError, "Internal Server Error"
	}

	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Internal Server Error"
}
