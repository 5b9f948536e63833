package routes

import (
	"rf-wms/config"
	"rf-wms/controllers"
	"rf-wms/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupPickingRoutes(app *fiber.App, deps *controllers.Deps) {
	controller := controllers.NewPickingController(deps)

	api := app.Group(config.MAIN_ROUTES+"/picking", middleware.AuthMiddleware)
	api.Get("/orders", controller.GetAllOrders)
	api.Get("/waves", controller.GetAllWaves)
	api.Post("/waves/:id/activate", controller.ActivateWave)
	api.Post("/pick", controller.PickWaveItem)

	so := app.Group(config.MAIN_ROUTES+"/sales-orders", middleware.AuthMiddleware)
	so.Get("/", controller.GetAllSalesOrders)
	so.Post("/pick", controller.PickSalesOrderItem)
	so.Post("/:id/ship", controller.ShipSalesOrder)
}
