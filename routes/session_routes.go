package routes

import (
	"rf-wms/config"
	"rf-wms/controllers"
	"rf-wms/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupSessionRoutes(app *fiber.App, deps *controllers.Deps) {
	controller := controllers.NewSessionController(deps)

	api := app.Group(config.MAIN_ROUTES+"/sessions", middleware.AuthMiddleware)
	api.Get("/", controller.GetAllSessions)
	api.Get("/current", controller.GetCurrentSession)
	api.Post("/", controller.CreateSession)
	api.Post("/:id/pause", controller.PauseSession)
	api.Post("/:id/resume", controller.ResumeSession)
	api.Post("/:id/complete", controller.CompleteSession)

	temp := app.Group(config.MAIN_ROUTES+"/temp-locations", middleware.AuthMiddleware)
	temp.Get("/", controller.GetTemporaryLocations)
	temp.Post("/", controller.CreateTemporaryLocation)
	temp.Post("/move", controller.MoveToTemp)
	temp.Post("/putaway", controller.PutAway)
}
