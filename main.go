package main

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"rf-wms/config"
	"rf-wms/controllers"
	"rf-wms/controllers/idgen"
	"rf-wms/database"
	"rf-wms/routes"
)

func main() {

	config.LoadConfig()

	app := fiber.New()

	// Pastikan database ada
	database.EnsureDatabaseExists(config.DBName)

	db, err := database.Open()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}

	idgen.Init()
	database.RunSeeders(db)

	deps := controllers.NewDeps(db)

	// Setup CORS middleware
	config.SetupCORS(app)

	routes.SetupAuthRoutes(app, deps)
	routes.SetupLookupRoutes(app, deps)
	routes.SetupBinRoutes(app, deps)
	routes.SetupInventoryRoutes(app, deps)
	routes.SetupReceivingRoutes(app, deps)
	routes.SetupPickingRoutes(app, deps)
	routes.SetupCountingRoutes(app, deps)
	routes.SetupSessionRoutes(app, deps)
	routes.SetupTransactionRoutes(app, deps)
	routes.SetupDataRoutes(app, deps)

	port := config.APP_PORT
	fmt.Println("🚀 Server berjalan di port " + port)

	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}
