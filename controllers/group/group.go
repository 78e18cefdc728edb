package groupController

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"

	"learnhub/database"
	"learnhub/middleware"
	"learnhub/models"
	"learnhub/utils"
)

func CreateGroup(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	reqData, ok := c.Locals("validatedGroup").(*struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		IsPrivate   bool   `json:"is_private"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	newGroup := models.Group{
		Name:            reqData.Name,
		Description:     reqData.Description,
		CreatedBy:       email,
		IsPrivate:       reqData.IsPrivate,
		MemberEmails:    datatypes.JSONSlice[string]{email},
		PendingRequests: datatypes.JSONSlice[string]{},
	}

	if err := database.Database.Db.Create(&newGroup).Error; err != nil {
		log.Printf("Error creating group: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create group!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Group created successfully!", newGroup)
}

func GetAllGroups(c *fiber.Ctx) error {
	var groups []models.Group
	if err := database.Database.Db.Where("is_deleted = ?", false).Order("created_at desc").Find(&groups).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch groups!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Groups fetched successfully!", groups)
}

func GetGroup(c *fiber.Ctx) error {
	groupID, ok := c.Locals("groupID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Group ID!", nil)
	}

	var group models.Group
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", groupID, false).First(&group).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Group not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Group fetched successfully!", group)
}

func DeleteGroup(c *fiber.Ctx) error {
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

	// Only the creator can delete a group
	if group.CreatedBy != email {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not allowed to delete this group!", nil)
	}

	group.IsDeleted = true
	if err := database.Database.Db.Save(&group).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete group!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Group deleted successfully!", nil)
}

func AddMember(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	groupID, ok := c.Locals("groupID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Group ID!", nil)
	}
	memberEmail, ok := c.Locals("memberEmail").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	memberEmail = utils.NormalizeEmail(memberEmail)

	var group models.Group
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", groupID, false).First(&group).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Group not found!", nil)
	}

	if group.CreatedBy != email {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Only the group creator can add members!", nil)
	}

	if containsEmail(group.MemberEmails, memberEmail) {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "User is already a member!", nil)
	}

	group.MemberEmails = append(group.MemberEmails, memberEmail)
	group.PendingRequests = removeEmail(group.PendingRequests, memberEmail)

	if err := database.Database.Db.Save(&group).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add member!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Member added successfully!", group)
}

func RemoveMember(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	groupID, ok := c.Locals("groupID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Group ID!", nil)
	}
	memberEmail, ok := c.Locals("memberEmail").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	memberEmail = utils.NormalizeEmail(memberEmail)

	var group models.Group
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", groupID, false).First(&group).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Group not found!", nil)
	}

	// Members can leave themselves; only the creator can remove others
	if group.CreatedBy != email && memberEmail != email {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Only the group creator can remove members!", nil)
	}
	if memberEmail == group.CreatedBy {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "The group creator cannot be removed!", nil)
	}
	if !containsEmail(group.MemberEmails, memberEmail) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User is not a member of this group!", nil)
	}

	group.MemberEmails = removeEmail(group.MemberEmails, memberEmail)

	if err := database.Database.Db.Save(&group).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to remove member!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Member removed successfully!", group)
}

// JoinGroup adds the caller to a public group directly, or queues a
// pending request on a private one.
func JoinGroup(c *fiber.Ctx) error {
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

	if containsEmail(group.MemberEmails, email) {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "You are already a member!", nil)
	}

	if group.IsPrivate {
		if containsEmail(group.PendingRequests, email) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Join request already pending!", nil)
		}
		group.PendingRequests = append(group.PendingRequests, email)
		if err := database.Database.Db.Save(&group).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to send join request!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Join request sent!", group)
	}

	group.MemberEmails = append(group.MemberEmails, email)
	if err := database.Database.Db.Save(&group).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to join group!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Joined group successfully!", group)
}

func ApproveRequest(c *fiber.Ctx) error {
	return resolveRequest(c, true)
}

func RejectRequest(c *fiber.Ctx) error {
	return resolveRequest(c, false)
}

func resolveRequest(c *fiber.Ctx, approve bool) error {
	email, ok := c.Locals("email").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	groupID, ok := c.Locals("groupID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Group ID!", nil)
	}
	memberEmail, ok := c.Locals("memberEmail").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	memberEmail = utils.NormalizeEmail(memberEmail)

	var group models.Group
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", groupID, false).First(&group).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Group not found!", nil)
	}

	if group.CreatedBy != email {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Only the group creator can manage join requests!", nil)
	}
	if !containsEmail(group.PendingRequests, memberEmail) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No pending request for this user!", nil)
	}

	group.PendingRequests = removeEmail(group.PendingRequests, memberEmail)
	if approve {
		group.MemberEmails = append(group.MemberEmails, memberEmail)
	}

	if err := database.Database.Db.Save(&group).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update group!", nil)
	}

	message := "Join request rejected!"
	if approve {
		message = "Join request approved!"
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, message, group)
}

func containsEmail(list []string, email string) bool {
	for _, e := range list {
		if e == email {
			return true
		}
	}
	return false
}

func removeEmail(list datatypes.JSONSlice[string], email string) datatypes.JSONSlice[string] {
	out := make(datatypes.JSONSlice[string], 0, len(list))
	for _, e := range list {
		if e != email {
			out = append(out, e)
		}
	}
	return out
}
