package routes

import (
	"rf-wms/config"
	"rf-wms/controllers"
	"rf-wms/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupTransactionRoutes(app *fiber.App, deps *controllers.Deps) {
	controller := controllers.NewTransactionController(deps)

	api := app.Group(config.MAIN_ROUTES+"/transactions", middleware.AuthMiddleware)
	api.Get("/receiving", controller.GetReceivingTransactions)
	api.Get("/cycle-counts", controller.GetCycleCountTransactions)
	api.Get("/transfers", controller.GetTransferTransactions)
	api.Get("/activity", controller.GetActivityLogs)
}
