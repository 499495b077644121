// Package response defines the unified JSON envelope every endpoint returns.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Body is the unified API response structure. Status is "success" or "error",
// never both data and error are set.
type Body struct {
	Status string     `json:"status"`
	Data   any        `json:"data"`
	Meta   *Meta      `json:"meta"`
	Error  *ErrorInfo `json:"error"`
}

// Meta carries pagination information for list endpoints.
type Meta struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}

// ErrorInfo is the error block of the envelope. Details holds optional
// structured information such as per-field validation messages.
type ErrorInfo struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
	Details any    `json:"details,omitempty"`
}

// Success writes a success envelope. A 204 status sends no body.
func Success(c echo.Context, statusCode int, data any) error {
	return SuccessWithMeta(c, statusCode, data, nil)
}

// SuccessWithMeta writes a success envelope with pagination meta.
func SuccessWithMeta(c echo.Context, statusCode int, data any, meta *Meta) error {
	if statusCode == http.StatusNoContent {
		return c.NoContent(statusCode)
	}

	return c.JSON(statusCode, Body{
		Status: "success",
		Data:   data,
		Meta:   meta,
	})
}

// Error writes an error envelope.
func Error(c echo.Context, statusCode int, message string, details any) error {
	return c.JSON(statusCode, Body{
		Status: "error",
		Error: &ErrorInfo{
			Message: message,
			Code:    statusCode,
			Details: details,
		},
	})
}
