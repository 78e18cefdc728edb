package userRoutes

import (
	userControllers "learnhub/controllers/userControllers"
	"learnhub/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/api/users")

	userGroup.Get("/", middleware.JWTMiddleware, userControllers.GetAllUsers)
	userGroup.Get("/me", middleware.JWTMiddleware, userControllers.GetProfile)
	userGroup.Get("/:id", middleware.JWTMiddleware, userControllers.GetUser)
	userGroup.Put("/me", middleware.JWTMiddleware, userControllers.UpdateProfile)
	userGroup.Delete("/me", middleware.JWTMiddleware, userControllers.DeleteProfile)
	userGroup.Post("/follow", middleware.JWTMiddleware, userControllers.FollowUser)
}
