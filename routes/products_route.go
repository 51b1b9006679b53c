package routes

import (
	"github.com/gofiber/fiber/v2"

	productController "github.com/Afterlife24/repairshop-server/controllers/products"
)

func ProductsRoute(app *fiber.App) {
	app.Post("/api/products/add-mobile", productController.AddMobile)
	app.Post("/api/products/add-laptop", productController.AddLaptop)

	app.Delete("/api/products/delete-mobile/:id", productController.DeleteMobile)
	app.Delete("/api/products/delete-laptop/:id", productController.DeleteLaptop)

	app.Get("/api/products/:type", productController.GetProductsByType)
	app.Get("/api/products/:type/:id", productController.GetProductByID)
}
