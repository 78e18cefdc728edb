package courseRoutes

import (
	courseControllers "learnhub/controllers/course"
	"learnhub/middleware"
	courseValidators "learnhub/validators/course"

	"github.com/gofiber/fiber/v2"
)

func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/api/courses")

	courseGroup.Post("/", courseValidators.CreateCourse(), middleware.JWTMiddleware, courseControllers.CreateCourse)
	courseGroup.Get("/", courseControllers.GetAllCourses)
	courseGroup.Get("/:id", courseValidators.CourseID(), courseControllers.GetCourse)
	courseGroup.Put("/:id", courseValidators.CourseID(), courseValidators.UpdateCourse(), middleware.JWTMiddleware, courseControllers.UpdateCourse)
	courseGroup.Delete("/:id", courseValidators.CourseID(), middleware.JWTMiddleware, courseControllers.DeleteCourse)
	courseGroup.Post("/:id/stages", courseValidators.CourseID(), courseValidators.AddStage(), middleware.JWTMiddleware, courseControllers.AddStage)
	courseGroup.Post("/:id/pdf", courseValidators.CourseID(), middleware.JWTMiddleware, courseControllers.UploadCoursePdf)

	// Enrollment and progress
	courseGroup.Post("/:id/enroll", courseValidators.EnrollCourse(), middleware.JWTMiddleware, courseControllers.EnrollCourse)
	courseGroup.Get("/:id/enrollment", courseValidators.CourseID(), middleware.JWTMiddleware, courseControllers.GetEnrollment)
	courseGroup.Patch("/:id/stages/:stageOrder/complete", courseValidators.CompleteStage(), middleware.JWTMiddleware, courseControllers.CompleteStage)
	courseGroup.Get("/:id/progress", courseValidators.CourseID(), middleware.JWTMiddleware, courseControllers.GetProgress)

	enrollmentGroup := app.Group("/api/enrollments")
	enrollmentGroup.Get("/", middleware.JWTMiddleware, courseControllers.GetMyEnrollments)

	certificateGroup := app.Group("/api/certificates")
	certificateGroup.Get("/", middleware.JWTMiddleware, courseControllers.GetMyCertificates)
	certificateGroup.Get("/course/:id", courseValidators.CourseID(), middleware.JWTMiddleware, courseControllers.GetCourseCertificate)
	certificateGroup.Get("/download/:number", courseControllers.DownloadCertificate)
}
