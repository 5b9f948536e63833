package routes

import (
	"rf-wms/config"
	"rf-wms/controllers"
	"rf-wms/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupReceivingRoutes(app *fiber.App, deps *controllers.Deps) {
	controller := controllers.NewReceivingController(deps)

	api := app.Group(config.MAIN_ROUTES+"/receiving", middleware.AuthMiddleware)
	api.Get("/purchase-orders", controller.GetAllPurchaseOrders)
	api.Get("/purchase-orders/:id", controller.GetPurchaseOrderByID)
	api.Post("/receive", controller.Receive)
	api.Post("/upload", controller.UploadPurchaseOrders)
	api.Get("/transactions", controller.GetReceivingTransactions)
}
