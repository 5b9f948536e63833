package routes

import (
	"rf-wms/config"
	"rf-wms/controllers"
	"rf-wms/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupBinRoutes(app *fiber.App, deps *controllers.Deps) {
	controller := controllers.NewBinController(deps)

	api := app.Group(config.MAIN_ROUTES+"/bins", middleware.AuthMiddleware)
	api.Get("/", controller.GetAllBins)
	api.Post("/", controller.CreateBin)
	api.Post("/adjust", controller.AdjustQuantity)
	api.Post("/set", controller.SetQuantity)
	api.Get("/:code", controller.GetBinByCode)
}
