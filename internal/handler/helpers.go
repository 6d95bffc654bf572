package handler

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/ridwanfathin/invoice-dashboard/internal/middleware"
	"github.com/ridwanfathin/invoice-dashboard/internal/model"
)

// getPathParam retrieves a path parameter and validates it's not empty
func getPathParam(c *gin.Context, paramName string) (string, error) {
	value := c.Param(paramName)
	if value == "" {
		return "", fmt.Errorf("%s is required", paramName)
	}
	return value, nil
}

// getQueryInt retrieves an integer query parameter with a default value
func getQueryInt(c *gin.Context, paramName string, defaultValue int) (int, error) {
	valueStr := c.Query(paramName)
	if valueStr == "" {
		return defaultValue, nil
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: must be an integer", paramName)
	}

	return value, nil
}

// getQueryString retrieves a trimmed string query parameter
func getQueryString(c *gin.Context, paramName string) string {
	return strings.TrimSpace(c.Query(paramName))
}

// parsePage reads the page query parameter, falling back to 1 for missing,
// non-numeric or non-positive values
func parsePage(c *gin.Context) int {
	page, err := getQueryInt(c, "page", 1)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// bindJSON binds JSON request body to a struct
func bindJSON(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		return fmt.Errorf("invalid JSON format: %v", err)
	}
	return nil
}

// validatePage validates the requested page number
func validatePage(page int) error {
	if page < 1 {
		return fmt.Errorf("page must be greater than 0")
	}
	return nil
}

// buildValidationErrors converts field errors to an ErrorDetail slice ordered by field
func buildValidationErrors(errors map[string]string) []model.ErrorDetail {
	fields := make([]string, 0, len(errors))
	for field := range errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	details := make([]model.ErrorDetail, 0, len(errors))
	for _, field := range fields {
		details = append(details, newErrorDetail(field, errors[field]))
	}
	return details
}

// logError logs a failed handler operation with the request id attached
func logError(logger zerolog.Logger, c *gin.Context, op string, err error) {
	logger.Error().
		Err(err).
		Str("op", op).
		Str("request_id", c.GetString(middleware.RequestIDKey)).
		Str("path", c.Request.URL.Path).
		Msg("request failed")
}
