// Package errors provides shared HTTP error responses that avoid leaking
// internal details to clients.
package errors

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jordanlanch/bizradar/pkg/models"
)

// ValidationError returns a generic validation error.
func ValidationError(c echo.Context, err error) error {
	log.Printf("[VALIDATION ERROR] Path: %s, Error: %v", c.Request().URL.Path, err)
	return c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:   "validation_error",
		Message: "Invalid request data. Please check your input and try again.",
	})
}

// InternalError returns a generic internal server error.
func InternalError(c echo.Context, err error) error {
	log.Printf("[INTERNAL ERROR] Path: %s, Error: %v", c.Request().URL.Path, err)
	return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error:   "internal_error",
		Message: "An internal error occurred. Please try again later.",
	})
}

// NotFoundError returns a generic not found error.
func NotFoundError(c echo.Context, resource string) error {
	return c.JSON(http.StatusNotFound, models.ErrorResponse{
		Error:   "not_found",
		Message: "The requested " + resource + " was not found.",
	})
}

// BadRequestError returns a bad request error with a safe message.
func BadRequestError(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:   "bad_request",
		Message: message,
	})
}
