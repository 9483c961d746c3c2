package main

import (
	"log"

	"janseva/config"
	applicationController "janseva/controllers/application"
	beneficiaryController "janseva/controllers/beneficiary"
	"janseva/database"
	applicationRoutes "janseva/routers/applicationRoutes"
	authRoutes "janseva/routers/authRoutes"
	beneficiaryRoutes "janseva/routers/beneficiaryRoutes"
	fpsRoutes "janseva/routers/fpsRoutes"
	geoRoutes "janseva/routers/geoRoutes"
	grievanceRoutes "janseva/routers/grievanceRoutes"
	statsRoutes "janseva/routers/statsRoutes"
	"janseva/services/ration"
	"janseva/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	workflow := ration.NewService(
		database.NewRationStore(database.Database.Db),
		utils.NewOpenCageClient(),
		utils.MailNotifier{},
	)
	applicationController.Workflow = workflow
	beneficiaryController.Workflow = workflow

	utils.InitializeMaintenanceScheduler()

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

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("JanSEVA Ration System Backend Running...")
	})

	authRoutes.SetupAuthRoutes(app)
	applicationRoutes.SetupApplicationRoutes(app)
	beneficiaryRoutes.SetupBeneficiaryRoutes(app)
	grievanceRoutes.SetupGrievanceRoutes(app)
	fpsRoutes.SetupFPSRoutes(app)
	geoRoutes.SetupGeoRoutes(app)
	statsRoutes.SetupStatsRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
