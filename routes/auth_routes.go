package routes

import (
	"rf-wms/config"
	"rf-wms/controllers"
	"rf-wms/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App, deps *controllers.Deps) {
	authController := controllers.NewAuthController(deps.DB)

	api := app.Group(config.MAIN_ROUTES + "/auth")
	api.Post("/login", middleware.LoginMiddleware, authController.Login)

	protected := app.Group(config.MAIN_ROUTES+"/auth", middleware.AuthMiddleware)
	protected.Get("/logout", authController.Logout)
	protected.Get("/isLoggedIn", authController.IsLoggedIn)
}
