package routes

import (
	"github.com/gofiber/fiber/v2"

	appointmentController "github.com/Afterlife24/repairshop-server/controllers/appointments"
)

func AppointmentsRoute(app *fiber.App) {
	app.Post("/api/appointments", appointmentController.CreateAppointment)
	app.Get("/api/appointments", appointmentController.ListAppointments)
	app.Put("/api/appointments/:id/status", appointmentController.UpdateStatus)
}
