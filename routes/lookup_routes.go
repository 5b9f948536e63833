package routes

import (
	"rf-wms/config"
	"rf-wms/controllers"
	"rf-wms/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupLookupRoutes(app *fiber.App, deps *controllers.Deps) {
	controller := controllers.NewLookupController(deps)

	api := app.Group(config.MAIN_ROUTES+"/lookup", middleware.AuthMiddleware)
	api.Post("/resolve", controller.Resolve)
	api.Get("/search", controller.Search)
}
