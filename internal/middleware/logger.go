package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// maxLoggedBody is the number of bytes of a non-JSON body kept in the log
const maxLoggedBody = 1000

// sensitiveFields contains patterns for fields that should be redacted
var sensitiveFields = []string{
	"password",
	"token",
	"api_key",
	"apikey",
	"api-key",
	"secret",
	"authorization",
	"auth",
	"bearer",
	"credential",
	"access_token",
	"refresh_token",
	"session",
	"cookie",
}

// sensitiveHeaderPatterns contains regex patterns for sensitive headers
var sensitiveHeaderPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)authorization`),
	regexp.MustCompile(`(?i)api[-_]?key`),
	regexp.MustCompile(`(?i)token`),
	regexp.MustCompile(`(?i)secret`),
	regexp.MustCompile(`(?i)password`),
	regexp.MustCompile(`(?i)bearer`),
	regexp.MustCompile(`(?i)cookie`),
	regexp.MustCompile(`(?i)session`),
}

// responseWriter is a custom response writer to capture JSON response bodies
type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *responseWriter) Write(b []byte) (int, error) {
	if isJSON(w.Header().Get("Content-Type")) {
		w.body.Write(b)
	}
	return w.ResponseWriter.Write(b)
}

// RequestResponseLogger creates a middleware that logs every request and its
// response through logger. Form posts and HTML pages are logged without bodies.
func RequestResponseLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		var requestBody []byte
		if c.Request.Body != nil && isJSON(c.ContentType()) {
			requestBody, _ = io.ReadAll(c.Request.Body)
			// Restore the body for the next handler
			c.Request.Body = io.NopCloser(bytes.NewBuffer(requestBody))
		}

		responseBodyWriter := &responseWriter{
			ResponseWriter: c.Writer,
			body:           bytes.NewBufferString(""),
		}
		c.Writer = responseBodyWriter

		c.Next()

		entry := buildLogEntry(c, requestBody, responseBodyWriter.body.Bytes(), time.Since(startTime))

		event := logger.Info()
		switch {
		case entry.StatusCode >= 500:
			event = logger.Error()
		case entry.StatusCode >= 400:
			event = logger.Warn()
		}

		event = event.
			Str("method", entry.Method).
			Str("path", entry.Path).
			Int("status_code", entry.StatusCode).
			Dur("latency", entry.Latency).
			Str("client_ip", entry.ClientIP).
			Str("user_agent", entry.UserAgent).
			Interface("headers", entry.Headers)

		if entry.RequestID != "" {
			event = event.Str("request_id", entry.RequestID)
		}
		if len(entry.QueryParams) > 0 {
			event = event.Interface("query_params", entry.QueryParams)
		}
		if entry.RequestBody != nil {
			event = event.Interface("request_body", entry.RequestBody)
		}
		if entry.ResponseBody != nil {
			event = event.Interface("response_body", entry.ResponseBody)
		}
		if entry.Error != "" {
			event = event.Str("error", entry.Error)
		}

		event.Msg("request completed")
	}
}

// LogEntry represents a structured log entry
type LogEntry struct {
	Method       string
	Path         string
	StatusCode   int
	Latency      time.Duration
	ClientIP     string
	UserAgent    string
	RequestID    string
	Headers      map[string]string
	QueryParams  map[string][]string
	RequestBody  interface{}
	ResponseBody interface{}
	Error        string
}

// buildLogEntry constructs a log entry from request and response data
func buildLogEntry(c *gin.Context, requestBody, responseBody []byte, latency time.Duration) LogEntry {
	entry := LogEntry{
		Method:      c.Request.Method,
		Path:        c.Request.URL.Path,
		StatusCode:  c.Writer.Status(),
		Latency:     latency,
		ClientIP:    c.ClientIP(),
		UserAgent:   c.Request.UserAgent(),
		Headers:     redactHeaders(c.Request.Header),
		QueryParams: c.Request.URL.Query(),
		RequestID:   c.GetString(RequestIDKey),
	}

	if len(requestBody) > 0 {
		entry.RequestBody = parseAndRedactBody(requestBody)
	}

	if len(responseBody) > 0 {
		entry.ResponseBody = parseAndRedactBody(responseBody)
	}

	if len(c.Errors) > 0 {
		entry.Error = c.Errors.String()
	}

	return entry
}

// isJSON reports whether contentType is a JSON media type
func isJSON(contentType string) bool {
	return strings.Contains(strings.ToLower(contentType), "json")
}

// redactHeaders redacts sensitive headers
func redactHeaders(headers map[string][]string) map[string]string {
	redacted := make(map[string]string)
	for key, values := range headers {
		if isSensitiveHeader(key) {
			redacted[key] = "[REDACTED]"
		} else {
			redacted[key] = strings.Join(values, ", ")
		}
	}
	return redacted
}

// isSensitiveHeader checks if a header name is sensitive
func isSensitiveHeader(headerName string) bool {
	for _, pattern := range sensitiveHeaderPatterns {
		if pattern.MatchString(headerName) {
			return true
		}
	}
	return false
}

// parseAndRedactBody parses JSON body and redacts sensitive fields
func parseAndRedactBody(body []byte) interface{} {
	// Try to parse as JSON
	var jsonBody interface{}
	if err := json.Unmarshal(body, &jsonBody); err != nil {
		// If not JSON, return truncated string
		bodyStr := string(body)
		if len(bodyStr) > maxLoggedBody {
			bodyStr = bodyStr[:maxLoggedBody] + "... (truncated)"
		}
		return bodyStr
	}

	// Redact sensitive fields
	redactSensitiveFields(jsonBody)
	return jsonBody
}

// redactSensitiveFields recursively redacts sensitive fields in JSON data
func redactSensitiveFields(data interface{}) {
	switch v := data.(type) {
	case map[string]interface{}:
		for key, value := range v {
			if isSensitiveField(key) {
				v[key] = "[REDACTED]"
			} else {
				redactSensitiveFields(value)
			}
		}
	case []interface{}:
		for _, item := range v {
			redactSensitiveFields(item)
		}
	}
}

// isSensitiveField checks if a field name is sensitive
func isSensitiveField(fieldName string) bool {
	lowerField := strings.ToLower(fieldName)
	for _, sensitive := range sensitiveFields {
		if strings.Contains(lowerField, sensitive) {
			return true
		}
	}
	return false
}
