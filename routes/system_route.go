package routes

import (
	"github.com/gofiber/fiber/v2"

	systemController "github.com/Afterlife24/repairshop-server/controllers/system"
)

func SystemRoute(app *fiber.App) {
	app.Get("/api/health", systemController.Health)
	app.Get("/api/images/:filename", systemController.GetImage)
	app.Get("/api/service-templates", systemController.ServiceTemplates)
}
