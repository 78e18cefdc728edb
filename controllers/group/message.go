package groupController

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"learnhub/database"
	"learnhub/middleware"
	"learnhub/models"
)

func SendMessage(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	groupID, ok := c.Locals("groupID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Group ID!", nil)
	}
	reqData, ok := c.Locals("validatedMessage").(*struct {
		Content  string `json:"content"`
		ImageURL string `json:"image_url"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var group models.Group
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", groupID, false).First(&group).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Group not found!", nil)
	}

	// Only members can post to the group
	if !containsEmail(group.MemberEmails, email) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not a member of this group!", nil)
	}

	senderName := email
	var sender models.User
	if err := database.Database.Db.Where("email = ? AND is_deleted = ?", email, false).First(&sender).Error; err == nil {
		senderName = sender.Username
	}

	newMessage := models.Message{
		GroupID:     groupID,
		GroupName:   group.Name,
		SenderEmail: email,
		SenderName:  senderName,
		Content:     reqData.Content,
		ImageURL:    reqData.ImageURL,
	}
	if err := database.Database.Db.Create(&newMessage).Error; err != nil {
		log.Printf("Error sending message to group %d: %v", groupID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to send message!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Message sent successfully!", newMessage)
}

func GetMessages(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	groupID, ok := c.Locals("groupID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Group ID!", nil)
	}

	var group models.Group
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", groupID, false).First(&group).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Group not found!", nil)
	}

	if !containsEmail(group.MemberEmails, email) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not a member of this group!", nil)
	}

	var messages []models.Message
	if err := database.Database.Db.Where("group_id = ? AND is_deleted = ?", groupID, false).Order("created_at asc").Find(&messages).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch messages!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Messages fetched successfully!", messages)
}
