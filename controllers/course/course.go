package courseController

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"learnhub/config"
	"learnhub/database"
	"learnhub/middleware"
	courseModels "learnhub/models/course"
	"learnhub/utils"
	courseValidator "learnhub/validators/course"
)

func CreateCourse(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CourseInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	newCourse := courseModels.Course{
		Title:        reqData.Title,
		Description:  reqData.Description,
		Category:     reqData.Category,
		CreatorEmail: utils.NormalizeEmail(email),
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&newCourse).Error; err != nil {
			return err
		}
		for i, stage := range reqData.Stages {
			newStage := courseModels.Stage{
				CourseID:   newCourse.ID,
				Title:      stage.Title,
				Content:    stage.Content,
				StageOrder: i,
			}
			if err := tx.Create(&newStage).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Printf("Error creating course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", newCourse)
}

func GetAllCourses(c *fiber.Ctx) error {
	db := database.Database.Db

	query := db.Where("is_deleted = ?", false)

	// Optional filters: ?search=term&category=name
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}
	if category := strings.TrimSpace(c.Query("category")); category != "" {
		query = query.Where("category = ?", category)
	}

	var courses []courseModels.Course
	if err := query.Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", courses)
}

func GetCourse(c *fiber.Ctx) error {
	courseID, ok := c.Locals("courseID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
	}

	db := database.Database.Db

	var crs courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&crs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var stages []courseModels.Stage
	if err := db.Where("course_id = ? AND is_deleted = ?", courseID, false).Order("stage_order asc").Find(&stages).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course stages!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", fiber.Map{
		"course": crs,
		"stages": stages,
	})
}

func UpdateCourse(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	courseID, ok := c.Locals("courseID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
	}
	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CourseInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var crs courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&crs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	// Only the creator can update a course
	if crs.CreatorEmail != utils.NormalizeEmail(email) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not allowed to update this course!", nil)
	}

	crs.Title = reqData.Title
	crs.Description = reqData.Description
	crs.Category = reqData.Category

	if err := db.Save(&crs).Error; err != nil {
		log.Printf("Error updating course %d: %v", courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", crs)
}

// AddStage appends a stage at the next dense order.
func AddStage(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	courseID, ok := c.Locals("courseID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
	}
	reqData, ok := c.Locals("validatedStage").(*courseValidator.StageInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var crs courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&crs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if crs.CreatorEmail != utils.NormalizeEmail(email) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not allowed to modify this course!", nil)
	}

	var total int64
	if err := db.Model(&courseModels.Stage{}).Where("course_id = ? AND is_deleted = ?", courseID, false).Count(&total).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add stage!", nil)
	}

	newStage := courseModels.Stage{
		CourseID:   courseID,
		Title:      reqData.Title,
		Content:    reqData.Content,
		StageOrder: int(total),
	}
	if err := db.Create(&newStage).Error; err != nil {
		log.Printf("Error adding stage to course %d: %v", courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add stage!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Stage added successfully!", newStage)
}

func DeleteCourse(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	courseID, ok := c.Locals("courseID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
	}

	db := database.Database.Db

	var crs courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&crs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if crs.CreatorEmail != utils.NormalizeEmail(email) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not allowed to delete this course!", nil)
	}

	crs.IsDeleted = true
	if err := db.Save(&crs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}

// UploadCoursePdf stores the course material PDF and records its URL.
func UploadCoursePdf(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	courseID, ok := c.Locals("courseID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
	}

	db := database.Database.Db

	var crs courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&crs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if crs.CreatorEmail != utils.NormalizeEmail(email) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not allowed to modify this course!", nil)
	}

	file, err := c.FormFile("pdf")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "PDF file is required!", nil)
	}
	if !strings.HasSuffix(strings.ToLower(file.Filename), ".pdf") {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Only PDF files are allowed!", nil)
	}

	savedName, err := utils.SaveUploadedFile(file, config.AppConfig.UploadDir)
	if err != nil {
		log.Printf("Error saving PDF for course %d: %v", courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to upload PDF!", nil)
	}

	crs.PdfFileName = file.Filename
	crs.PdfFileURL = utils.GetFileURL(savedName)

	if err := db.Save(&crs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "PDF uploaded successfully!", crs)
}
