package main

import (
	"courierhub/config"
	"courierhub/database"
	"courierhub/infra/queue"
	cloudBlob "courierhub/pkg/cloudinary"
	authRoutes "courierhub/routers/authRoutes"
	candidateRoutes "courierhub/routers/candidateRoutes"
	consultantRoutes "courierhub/routers/consultantRoutes"
	"courierhub/utils"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	// Blob storage: Cloudinary when configured, local disk otherwise
	if config.AppConfig.CloudinaryUrl != "" {
		cld, err := cloudBlob.New()
		if err != nil {
			log.Fatalf("Failed to init Cloudinary: %v", err)
		}
		utils.Blob = cloudBlob.NewUploader(cld)
	} else {
		utils.Blob = utils.DiskUploader{BaseDir: config.AppConfig.UploadDir}
	}

	// Workflow event stream (skipped when no broker is configured)
	queue.Events = queue.NewProducer(config.AppConfig.KafkaBroker, config.AppConfig.KafkaTopic)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",  // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve uploaded documents stored on local disk
	app.Static("/uploads", config.AppConfig.UploadDir)

	authRoutes.SetupAuthRoutes(app)
	candidateRoutes.SetupCandidateRoutes(app)
	consultantRoutes.SetupConsultantRoutes(app)

	// Hourly reminders for pending offers and stale reviews
	utils.StartReminderScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
