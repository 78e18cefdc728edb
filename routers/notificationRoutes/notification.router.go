package notificationRoutes

import (
	notificationControllers "learnhub/controllers/notification"
	"learnhub/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupNotificationRoutes(app *fiber.App) {
	notificationGroup := app.Group("/api/notifications")

	notificationGroup.Get("/", middleware.JWTMiddleware, notificationControllers.GetMyNotifications)
	notificationGroup.Get("/unread/count", middleware.JWTMiddleware, notificationControllers.GetUnreadCount)
	notificationGroup.Patch("/:id/read", middleware.JWTMiddleware, notificationControllers.MarkAsRead)
	notificationGroup.Patch("/read/all", middleware.JWTMiddleware, notificationControllers.MarkAllAsRead)
}
