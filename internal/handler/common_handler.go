package handler

import (
	"MovieList/internal/apperror"
	"MovieList/internal/model"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

var validate = validator.New()

// ErrorHandler writes every error returned by a handler as the error envelope.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code, message := apperror.From(err)
	if code >= fiber.StatusInternalServerError {
		log.Errorf("%s %s: %v", c.Method(), c.Path(), err)
	}
	return c.Status(code).JSON(model.ErrorResponse{
		Status:  apperror.StatusFor(code),
		Message: message,
	})
}

func NotFound(c *fiber.Ctx) error {
	return apperror.Newf(fiber.StatusNotFound, "Cannot find %s on the server", c.Path())
}

func success(c *fiber.Ctx, status, count int, data any) error {
	return c.Status(status).JSON(model.Response{
		Status: "success",
		Count:  count,
		Data:   data,
	})
}
