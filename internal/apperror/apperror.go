package apperror

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// CustomError is an operational error that carries the HTTP status it should be answered with.
type CustomError struct {
	Message    string
	StatusCode int
}

func New(message string, statusCode int) *CustomError {
	return &CustomError{Message: message, StatusCode: statusCode}
}

func Newf(statusCode int, format string, args ...any) *CustomError {
	return &CustomError{Message: fmt.Sprintf(format, args...), StatusCode: statusCode}
}

func (e *CustomError) Error() string {
	return e.Message
}

// Status is "fail" for client errors and "error" for everything else.
func (e *CustomError) Status() string {
	return StatusFor(e.StatusCode)
}

func StatusFor(code int) string {
	if code >= 400 && code < 500 {
		return "fail"
	}
	return "error"
}

// From maps any error onto a status code and message for the error envelope.
func From(err error) (int, string) {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce.StatusCode, ce.Message
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code, fe.Message
	}
	return fiber.StatusInternalServerError, err.Error()
}
