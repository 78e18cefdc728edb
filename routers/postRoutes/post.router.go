package postRoutes

import (
	postControllers "learnhub/controllers/post"
	"learnhub/middleware"
	postValidators "learnhub/validators/post"

	"github.com/gofiber/fiber/v2"
)

func SetupPostRoutes(app *fiber.App) {
	postGroup := app.Group("/api/posts")

	postGroup.Post("/", postValidators.CreatePost(), middleware.JWTMiddleware, postControllers.CreatePost)
	postGroup.Get("/", postControllers.GetAllPosts)
	postGroup.Get("/:id", postValidators.PostID(), postControllers.GetPost)
	postGroup.Put("/:id", postValidators.PostID(), postValidators.UpdatePost(), middleware.JWTMiddleware, postControllers.UpdatePost)
	postGroup.Delete("/:id", postValidators.PostID(), middleware.JWTMiddleware, postControllers.DeletePost)
	postGroup.Patch("/:id/like", postValidators.PostID(), middleware.JWTMiddleware, postControllers.ToggleLike)
	postGroup.Post("/:id/comments", postValidators.PostID(), postValidators.AddComment(), middleware.JWTMiddleware, postControllers.AddComment)
	postGroup.Get("/:id/comments", postValidators.PostID(), postControllers.GetComments)
	postGroup.Put("/:id/comments/:commentId", postValidators.PostID(), postValidators.CommentID(), postValidators.AddComment(), middleware.JWTMiddleware, postControllers.UpdateComment)
	postGroup.Delete("/:id/comments/:commentId", postValidators.PostID(), postValidators.CommentID(), middleware.JWTMiddleware, postControllers.DeleteComment)
}
