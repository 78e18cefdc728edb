package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"learnhub/services"
)

// ServiceErrorResponse maps service-layer errors onto HTTP responses.
func ServiceErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return JsonResponse(c, fiber.StatusNotFound, false, err.Error(), nil)
	case errors.Is(err, services.ErrConflict):
		return JsonResponse(c, fiber.StatusConflict, false, err.Error(), nil)
	case errors.Is(err, services.ErrBadInput):
		return JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
	default:
		return JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong!", nil)
	}
}
