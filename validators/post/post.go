package postValidator

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"learnhub/middleware"
)

// PostInput is the validated create/update payload.
type PostInput struct {
	Description string   `json:"description"`
	MediaUrls   []string `json:"media_urls"`
	Hashtags    []string `json:"hashtags"`
}

func CreatePost() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(PostInput)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.Description) == "" && len(reqData.MediaUrls) == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"description": "Post must have a description or media!",
			})
		}

		c.Locals("validatedPost", reqData)
		return c.Next()
	}
}

func UpdatePost() fiber.Handler {
	return CreatePost()
}

// PostID validates the :id route param and stores it as uint.
func PostID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		postIDStr := strings.TrimSpace(c.Params("id"))
		postID, err := strconv.Atoi(postIDStr)
		if err != nil || postID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Post ID!", nil)
		}

		c.Locals("postID", uint(postID))
		return c.Next()
	}
}

// CommentID validates the :commentId route param and stores it as uint.
func CommentID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		commentIDStr := strings.TrimSpace(c.Params("commentId"))
		commentID, err := strconv.Atoi(commentIDStr)
		if err != nil || commentID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Comment ID!", nil)
		}

		c.Locals("commentID", uint(commentID))
		return c.Next()
	}
}

func AddComment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CommentText string `json:"comment_text"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.CommentText) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"comment_text": "Comment text is required!",
			})
		}

		c.Locals("validatedComment", reqData)
		return c.Next()
	}
}
