package routes

import (
	"github.com/gofiber/fiber/v2"

	brandController "github.com/Afterlife24/repairshop-server/controllers/brands"
)

func BrandsRoute(app *fiber.App) {
	app.Get("/api/brands/:category", brandController.GetBrands)
}
