package courseController

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"learnhub/database"
	"learnhub/middleware"
	courseModels "learnhub/models/course"
	"learnhub/services"
	"learnhub/utils"
)

func EnrollCourse(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	courseID, ok := c.Locals("courseID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
	}

	enrollment, err := services.Enrollment.Enroll(email, courseID)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	// Confirmation email is best-effort, via the mailer wired at startup
	var crs courseModels.Course
	if dbErr := database.Database.Db.Where("id = ?", courseID).First(&crs).Error; dbErr == nil && services.Mail != nil {
		if mailErr := utils.SendEnrollmentEmail(services.Mail, utils.NormalizeEmail(email), crs.Title); mailErr != nil {
			log.Printf("Failed to send enrollment email to %s: %v", email, mailErr)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Enrolled successfully!", enrollment)
}

func GetMyEnrollments(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	enrollments, err := services.Enrollment.ListByUser(email)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", enrollments)
}

func GetEnrollment(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	courseID, ok := c.Locals("courseID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
	}

	enrollment, err := services.Enrollment.GetEnrollment(email, courseID)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment fetched successfully!", enrollment)
}

// CompleteStage marks a stage done; completing the last stage flags the
// enrollment completed and triggers certificate issuance.
func CompleteStage(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	courseID, ok := c.Locals("courseID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
	}
	stageOrder, ok := c.Locals("stageOrder").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid stage order!", nil)
	}

	enrollment, err := services.Enrollment.CompleteStage(email, courseID, stageOrder)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Stage completed successfully!", fiber.Map{
		"enrollment": enrollment,
		"progress":   services.Enrollment.ProgressPercentage(email, courseID),
	})
}

func GetProgress(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	courseID, ok := c.Locals("courseID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
	}

	progress := services.Enrollment.ProgressPercentage(email, courseID)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"course_id": courseID,
		"progress":  progress,
	})
}
