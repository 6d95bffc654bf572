package middleware

import (
	"errors"
	"net/http"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/ridwanfathin/invoice-dashboard/internal/domain"
	"github.com/ridwanfathin/invoice-dashboard/internal/ui"
)

// ErrorBoundary renders the error page for HTML handlers that attached an
// error to the context without writing a response. Missing invoices render a
// 404 page, anything else a 500 page that is reported to Sentry.
func ErrorBoundary(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		requestID := c.GetString(RequestIDKey)

		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrInvoiceNotFound) {
			status = http.StatusNotFound
		}

		if status == http.StatusNotFound {
			logger.Warn().Err(err).Str("request_id", requestID).Str("path", c.Request.URL.Path).Msg("invoice not found")
		} else {
			logger.Error().Err(err).Str("request_id", requestID).Str("path", c.Request.URL.Path).Msg("request failed")
			if hub := sentrygin.GetHubFromContext(c); hub != nil {
				hub.WithScope(func(scope *sentry.Scope) {
					scope.SetTag("request_id", requestID)
					hub.CaptureException(err)
				})
			}
		}

		page := ui.NewErrorPage(c.Request.URL.Path, status)
		page.RequestID = requestID
		c.HTML(status, ui.TemplateError, page)
	}
}
