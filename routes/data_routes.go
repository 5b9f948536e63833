package routes

import (
	"rf-wms/config"
	"rf-wms/controllers"
	"rf-wms/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupDataRoutes(app *fiber.App, deps *controllers.Deps) {
	controller := controllers.NewDataController(deps)
	seedController := controllers.NewSeedController(deps)

	api := app.Group(config.MAIN_ROUTES+"/data", middleware.AuthMiddleware)
	api.Get("/", controller.GetKeys)
	api.Get("/:key", controller.GetByKey)
	api.Post("/:key", middleware.RequireRole("admin"), controller.SetByKey)

	seed := app.Group(config.MAIN_ROUTES+"/seed", middleware.AuthMiddleware, middleware.RequireRole("admin"))
	seed.Post("/bins", seedController.GenerateDummyBins)
}
