package groupValidator

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"learnhub/middleware"
)

func CreateGroup() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name        string `json:"name"`
			Description string `json:"description"`
			IsPrivate   bool   `json:"is_private"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.Name) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"name": "Group name is required!",
			})
		}

		c.Locals("validatedGroup", reqData)
		return c.Next()
	}
}

// GroupID validates the :id route param and stores it as uint.
func GroupID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		groupIDStr := strings.TrimSpace(c.Params("id"))
		groupID, err := strconv.Atoi(groupIDStr)
		if err != nil || groupID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Group ID!", nil)
		}

		c.Locals("groupID", uint(groupID))
		return c.Next()
	}
}

// MemberEmail validates the member email supplied for add/remove/approve ops.
func MemberEmail() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Email string `json:"email"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.Email) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"email": "Member email is required!",
			})
		}

		c.Locals("memberEmail", reqData.Email)
		return c.Next()
	}
}

func SendMessage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Content  string `json:"content"`
			ImageURL string `json:"image_url"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.Content) == "" && reqData.ImageURL == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"content": "Message content is required!",
			})
		}

		c.Locals("validatedMessage", reqData)
		return c.Next()
	}
}
