package main

import (
	"log"

	"learnhub/config"
	"learnhub/database"
	authRoutes "learnhub/routers/authRoutes"
	courseRoutes "learnhub/routers/courseRoutes"
	groupRoutes "learnhub/routers/groupRoutes"
	notificationRoutes "learnhub/routers/notificationRoutes"
	postRoutes "learnhub/routers/postRoutes"
	userRoutes "learnhub/routers/userRoutes"
	"learnhub/services"
	"learnhub/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()
	services.Setup(database.Database.Db, utils.NewMailer())

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve static files from the public folder
	app.Static("/", "./public")
	app.Static("/uploads", config.AppConfig.UploadDir)

	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	postRoutes.SetupPostRoutes(app)
	groupRoutes.SetupGroupRoutes(app)
	notificationRoutes.SetupNotificationRoutes(app)

	utils.InitializeOTPScheduler(services.PasswordOTP.PurgeExpired)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
