package courseValidator

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"learnhub/middleware"
)

func EnrollCourse() fiber.Handler {
	return CourseID()
}

// CompleteStage validates the :id and :stageOrder route params.
func CompleteStage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseIDStr := strings.TrimSpace(c.Params("id"))
		courseID, err := strconv.Atoi(courseIDStr)
		if err != nil || courseID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		stageOrderStr := strings.TrimSpace(c.Params("stageOrder"))
		stageOrder, err := strconv.Atoi(stageOrderStr)
		if err != nil || stageOrder < 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid stage order!", nil)
		}

		c.Locals("courseID", uint(courseID))
		c.Locals("stageOrder", stageOrder)
		return c.Next()
	}
}
