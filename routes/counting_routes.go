package routes

import (
	"rf-wms/config"
	"rf-wms/controllers"
	"rf-wms/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupCountingRoutes(app *fiber.App, deps *controllers.Deps) {
	controller := controllers.NewCountingController(deps)

	api := app.Group(config.MAIN_ROUTES+"/cycle-counts", middleware.AuthMiddleware)
	api.Get("/", controller.GetAllCycleCounts)
	api.Post("/", controller.CreateCycleCount)
	api.Post("/submit", controller.SubmitCount)
	api.Post("/sequential/start", controller.StartSequentialCount)
	api.Post("/sequential/:sessionId/skip", controller.SkipCurrent)
	api.Post("/sequential/:sessionId/back", controller.StepBack)
	api.Post("/full-count", controller.ReconcileFullCount)
	api.Get("/transactions", controller.GetCycleCountTransactions)
}
