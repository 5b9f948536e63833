package routes

import (
	"rf-wms/config"
	"rf-wms/controllers"
	"rf-wms/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupInventoryRoutes(app *fiber.App, deps *controllers.Deps) {
	controller := controllers.NewInventoryController(deps)

	api := app.Group(config.MAIN_ROUTES+"/inventory", middleware.AuthMiddleware)
	api.Get("/items", controller.GetActiveItems)
	api.Get("/items/master", controller.GetMasterItems)
	api.Post("/upload", controller.UploadInventory)
	api.Get("/export/excel", controller.ExportExcel)
	api.Get("/export/csv", controller.ExportCSV)
}
