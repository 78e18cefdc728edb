package postController

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"

	"learnhub/database"
	"learnhub/middleware"
	"learnhub/models"
	postValidator "learnhub/validators/post"
)

func CreatePost(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	reqData, ok := c.Locals("validatedPost").(*postValidator.PostInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	newPost := models.Post{
		UserEmail:   email,
		Description: reqData.Description,
		MediaUrls:   datatypes.JSONSlice[string](reqData.MediaUrls),
		Hashtags:    datatypes.JSONSlice[string](reqData.Hashtags),
		Likes:       datatypes.JSONSlice[string]{},
	}

	if err := database.Database.Db.Create(&newPost).Error; err != nil {
		log.Printf("Error creating post: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create post!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Post created successfully!", newPost)
}

func GetAllPosts(c *fiber.Ctx) error {
	var posts []models.Post
	if err := database.Database.Db.Where("is_deleted = ?", false).Order("created_at desc").Find(&posts).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch posts!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Posts fetched successfully!", posts)
}

func GetPost(c *fiber.Ctx) error {
	postID, ok := c.Locals("postID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Post ID!", nil)
	}

	var post models.Post
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", postID, false).First(&post).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Post not found!", nil)
	}

	var comments []models.Comment
	if err := database.Database.Db.Where("post_id = ? AND is_deleted = ?", postID, false).Order("created_at asc").Find(&comments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch comments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Post fetched successfully!", fiber.Map{
		"post":     post,
		"comments": comments,
	})
}

func UpdatePost(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	postID, ok := c.Locals("postID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Post ID!", nil)
	}
	reqData, ok := c.Locals("validatedPost").(*postValidator.PostInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var post models.Post
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", postID, false).First(&post).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Post not found!", nil)
	}

	// Only the author can update a post
	if post.UserEmail != email {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not allowed to update this post!", nil)
	}

	post.Description = reqData.Description
	post.MediaUrls = datatypes.JSONSlice[string](reqData.MediaUrls)
	post.Hashtags = datatypes.JSONSlice[string](reqData.Hashtags)

	if err := database.Database.Db.Save(&post).Error; err != nil {
		log.Printf("Error updating post %d: %v", postID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update post!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Post updated successfully!", post)
}

func DeletePost(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	postID, ok := c.Locals("postID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Post ID!", nil)
	}

	var post models.Post
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", postID, false).First(&post).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Post not found!", nil)
	}

	if post.UserEmail != email {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not allowed to delete this post!", nil)
	}

	post.IsDeleted = true
	if err := database.Database.Db.Save(&post).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete post!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Post deleted successfully!", nil)
}

// ToggleLike adds or removes the caller's like on a post.
func ToggleLike(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	postID, ok := c.Locals("postID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Post ID!", nil)
	}

	var post models.Post
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", postID, false).First(&post).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Post not found!", nil)
	}

	liked := false
	remaining := post.Likes[:0]
	for _, liker := range post.Likes {
		if liker == email {
			liked = true
			continue
		}
		remaining = append(remaining, liker)
	}
	if liked {
		post.Likes = remaining
	} else {
		post.Likes = append(post.Likes, email)
	}

	if err := database.Database.Db.Save(&post).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update likes!", nil)
	}

	message := "Post liked!"
	if liked {
		message = "Post unliked!"
	} else if post.UserEmail != email {
		notifyPostOwner(post, email, "LIKE", email+" liked your post")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, message, fiber.Map{
		"likes": len(post.Likes),
	})
}

func AddComment(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	postID, ok := c.Locals("postID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Post ID!", nil)
	}
	reqData, ok := c.Locals("validatedComment").(*struct {
		CommentText string `json:"comment_text"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var post models.Post
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", postID, false).First(&post).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Post not found!", nil)
	}

	newComment := models.Comment{
		PostID:      postID,
		UserEmail:   email,
		CommentText: reqData.CommentText,
	}
	if err := database.Database.Db.Create(&newComment).Error; err != nil {
		log.Printf("Error adding comment to post %d: %v", postID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add comment!", nil)
	}

	if post.UserEmail != email {
		notifyPostOwner(post, email, "COMMENT", email+" commented on your post")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Comment added successfully!", newComment)
}

func GetComments(c *fiber.Ctx) error {
	postID, ok := c.Locals("postID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Post ID!", nil)
	}

	var comments []models.Comment
	if err := database.Database.Db.Where("post_id = ? AND is_deleted = ?", postID, false).Order("created_at asc").Find(&comments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch comments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Comments fetched successfully!", comments)
}

func UpdateComment(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	commentID, ok := c.Locals("commentID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Comment ID!", nil)
	}
	reqData, ok := c.Locals("validatedComment").(*struct {
		CommentText string `json:"comment_text"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var comment models.Comment
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", commentID, false).First(&comment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Comment not found!", nil)
	}

	if comment.UserEmail != email {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not allowed to update this comment!", nil)
	}

	comment.CommentText = reqData.CommentText
	if err := database.Database.Db.Save(&comment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update comment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Comment updated successfully!", comment)
}

func DeleteComment(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	commentID, ok := c.Locals("commentID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Comment ID!", nil)
	}

	var comment models.Comment
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", commentID, false).First(&comment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Comment not found!", nil)
	}

	if comment.UserEmail != email {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not allowed to delete this comment!", nil)
	}

	comment.IsDeleted = true
	if err := database.Database.Db.Save(&comment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete comment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Comment deleted successfully!", nil)
}

// notifyPostOwner records a like/comment notification. Failures are
// logged only.
func notifyPostOwner(post models.Post, senderEmail, notifType, message string) {
	notification := models.Notification{
		RecipientEmail: post.UserEmail,
		SenderEmail:    senderEmail,
		PostID:         post.ID,
		Type:           notifType,
		Message:        message,
	}
	if err := database.Database.Db.Create(&notification).Error; err != nil {
		log.Printf("Error creating %s notification for post %d: %v", notifType, post.ID, err)
	}
}
