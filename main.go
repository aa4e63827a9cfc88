package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"tcb/config"
	"tcb/database"
	"tcb/middleware"
	adminRoutes "tcb/routers/adminRoutes"
	chatRoutes "tcb/routers/chatRoutes"
	jobRoutes "tcb/routers/jobRoutes"
	practiceRoutes "tcb/routers/practiceRoutes"
	promptRoutes "tcb/routers/promptRoutes"
	templateRoutes "tcb/routers/templateRoutes"
	textbookRoutes "tcb/routers/textbookRoutes"
	"tcb/utils"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
	})

	// Permissive CORS: the frontend is served from a separate host and this
	// deployment is a demo/dev posture.
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "*",
		AllowHeaders: "*",
	}))

	// Log all requests, success and failure alike
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	textbookRoutes.SetupTextbookRoutes(app)
	promptRoutes.SetupPromptRoutes(app)
	practiceRoutes.SetupPracticeRoutes(app)
	chatRoutes.SetupChatRoutes(app)
	jobRoutes.SetupJobRoutes(app)
	templateRoutes.SetupTemplateRoutes(app)
	adminRoutes.SetupAdminRoutes(app)

	// Unmatched routes are a client error, not a server failure
	app.Use(middleware.NotFoundHandler)

	sweeper := utils.StartJobSweeper()
	defer sweeper.Stop()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
