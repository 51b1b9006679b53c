package routes

import (
	"github.com/gofiber/fiber/v2"

	repairController "github.com/Afterlife24/repairshop-server/controllers/repairs"
)

func RepairsRoute(app *fiber.App) {
	app.Post("/api/repairs", repairController.CreateRepair)
	app.Get("/api/repairs/:category", repairController.GetRepairs)
	app.Get("/api/repairs/:category/:id", repairController.GetRepairByID)
	app.Put("/api/repairs/:category/:id", repairController.UpdateRepair)
	app.Delete("/api/repairs/:category/:id", repairController.DeleteRepair)

	app.Post("/api/repairs/:category/:repairId/options", repairController.AddOption)
	app.Put("/api/repairs/:category/:repairId/options/:optionId", repairController.UpdateOption)
	app.Delete("/api/repairs/:category/:repairId/options/:optionId", repairController.DeleteOption)
}
