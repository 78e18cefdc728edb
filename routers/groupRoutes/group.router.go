package groupRoutes

import (
	groupControllers "learnhub/controllers/group"
	"learnhub/middleware"
	groupValidators "learnhub/validators/group"

	"github.com/gofiber/fiber/v2"
)

func SetupGroupRoutes(app *fiber.App) {
	groupGroup := app.Group("/api/groups")

	groupGroup.Post("/", groupValidators.CreateGroup(), middleware.JWTMiddleware, groupControllers.CreateGroup)
	groupGroup.Get("/", middleware.JWTMiddleware, groupControllers.GetAllGroups)
	groupGroup.Get("/:id", groupValidators.GroupID(), middleware.JWTMiddleware, groupControllers.GetGroup)
	groupGroup.Delete("/:id", groupValidators.GroupID(), middleware.JWTMiddleware, groupControllers.DeleteGroup)

	groupGroup.Post("/:id/members", groupValidators.GroupID(), groupValidators.MemberEmail(), middleware.JWTMiddleware, groupControllers.AddMember)
	groupGroup.Delete("/:id/members", groupValidators.GroupID(), groupValidators.MemberEmail(), middleware.JWTMiddleware, groupControllers.RemoveMember)
	groupGroup.Post("/:id/join", groupValidators.GroupID(), middleware.JWTMiddleware, groupControllers.JoinGroup)
	groupGroup.Patch("/:id/requests/approve", groupValidators.GroupID(), groupValidators.MemberEmail(), middleware.JWTMiddleware, groupControllers.ApproveRequest)
	groupGroup.Patch("/:id/requests/reject", groupValidators.GroupID(), groupValidators.MemberEmail(), middleware.JWTMiddleware, groupControllers.RejectRequest)

	groupGroup.Post("/:id/messages", groupValidators.GroupID(), groupValidators.SendMessage(), middleware.JWTMiddleware, groupControllers.SendMessage)
	groupGroup.Get("/:id/messages", groupValidators.GroupID(), middleware.JWTMiddleware, groupControllers.GetMessages)
}
