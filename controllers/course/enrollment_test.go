package courseController_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"learnhub/config"
	"learnhub/database"
	"learnhub/middleware"
	courseModels "learnhub/models/course"
	courseRoutes "learnhub/routers/courseRoutes"
	"learnhub/services"
	"learnhub/utils"
)

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{
		Port:      "3000",
		JWTKey:    "test-secret",
		SaltRound: 4,
		UploadDir: t.TempDir(),
	}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	services.Setup(db, utils.NewMailer())

	app := fiber.New()
	courseRoutes.SetupCourseRoutes(app)
	return app
}

func seedCourseWithStages(t *testing.T, stageCount int) *courseModels.Course {
	t.Helper()
	db := database.Database.Db

	crs := courseModels.Course{
		Title:        "HTTP Course",
		Description:  "Served over the API",
		Category:     "programming",
		CreatorEmail: "instructor@learnhub.local",
	}
	require.NoError(t, db.Create(&crs).Error)
	for i := 0; i < stageCount; i++ {
		stage := courseModels.Stage{
			CourseID:   crs.ID,
			Title:      fmt.Sprintf("Stage %d", i),
			Content:    "content",
			StageOrder: i,
		}
		require.NoError(t, db.Create(&stage).Error)
	}
	return &crs
}

func authedRequest(t *testing.T, method, target string) *http.Request {
	t.Helper()
	token, err := middleware.GenerateJWT(1, "student@learnhub.local", "student")
	require.NoError(t, err)

	req := httptest.NewRequest(method, target, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestEnrollEndpoint(t *testing.T) {
	app := setupTestApp(t)
	crs := seedCourseWithStages(t, 2)

	resp, err := app.Test(authedRequest(t, "POST", fmt.Sprintf("/api/courses/%d/enroll", crs.ID)))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// Enrolling twice is a conflict
	resp, err = app.Test(authedRequest(t, "POST", fmt.Sprintf("/api/courses/%d/enroll", crs.ID)))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	// Unknown course is a 404
	resp, err = app.Test(authedRequest(t, "POST", "/api/courses/999/enroll"))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

// recordingMailer captures sends for assertions.
type recordingMailer struct {
	sent []string // recipients
}

func (m *recordingMailer) Send(to, subject, htmlBody string) error {
	m.sent = append(m.sent, to)
	return nil
}

func TestEnrollUsesWiredMailer(t *testing.T) {
	setupTestApp(t)
	mailer := &recordingMailer{}
	services.Setup(database.Database.Db, mailer)

	app := fiber.New()
	courseRoutes.SetupCourseRoutes(app)
	crs := seedCourseWithStages(t, 1)

	resp, err := app.Test(authedRequest(t, "POST", fmt.Sprintf("/api/courses/%d/enroll", crs.ID)))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// The confirmation goes through the mailer injected at startup
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "student@learnhub.local", mailer.sent[0])
}

func TestEnrollRequiresAuth(t *testing.T) {
	app := setupTestApp(t)
	crs := seedCourseWithStages(t, 1)

	req := httptest.NewRequest("POST", fmt.Sprintf("/api/courses/%d/enroll", crs.ID), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestCompleteStageAndProgressEndpoints(t *testing.T) {
	app := setupTestApp(t)
	crs := seedCourseWithStages(t, 2)

	resp, err := app.Test(authedRequest(t, "POST", fmt.Sprintf("/api/courses/%d/enroll", crs.ID)))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, err = app.Test(authedRequest(t, "PATCH", fmt.Sprintf("/api/courses/%d/stages/0/complete", crs.ID)))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(authedRequest(t, "GET", fmt.Sprintf("/api/courses/%d/progress", crs.ID)))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	data := body["data"].(map[string]interface{})
	assert.InDelta(t, 50.0, data["progress"].(float64), 0.001)

	// Out-of-range stage order is rejected
	resp, err = app.Test(authedRequest(t, "PATCH", fmt.Sprintf("/api/courses/%d/stages/5/complete", crs.ID)))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// Completing the last stage issues the certificate
	resp, err = app.Test(authedRequest(t, "PATCH", fmt.Sprintf("/api/courses/%d/stages/1/complete", crs.ID)))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(authedRequest(t, "GET", fmt.Sprintf("/api/certificates/course/%d", crs.ID)))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestCertificateDownloadEndpoint(t *testing.T) {
	app := setupTestApp(t)
	crs := seedCourseWithStages(t, 1)

	resp, err := app.Test(authedRequest(t, "POST", fmt.Sprintf("/api/courses/%d/enroll", crs.ID)))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, err = app.Test(authedRequest(t, "PATCH", fmt.Sprintf("/api/courses/%d/stages/0/complete", crs.ID)))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	cert, err := services.Certificate.GetByUserAndCourse("student@learnhub.local", crs.ID)
	require.NoError(t, err)

	// Public download endpoint needs no auth
	req := httptest.NewRequest("GET", "/api/certificates/download/"+cert.CertificateNumber, nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	req = httptest.NewRequest("GET", "/api/certificates/download/unknown", nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
