package systemController

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Afterlife24/repairshop-server/responses"
	"github.com/Afterlife24/repairshop-server/storage"
)

var (
	client *mongo.Client
	blobs  storage.Store
)

// Init wires the mongo client (for health) and the blob store (for image
// serving). Until it runs, image requests get a 503.
func Init(mongoClient *mongo.Client, store storage.Store) {
	client = mongoClient
	blobs = store
}

// Health reports process and database status.
func Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	database := "Connected"
	if client == nil || client.Ping(ctx, nil) != nil {
		database = "Disconnected"
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":    "OK",
		"database":  database,
		"timestamp": time.Now().UTC(),
	})
}

// GetImage streams a stored image back by its key.
func GetImage(c *fiber.Ctx) error {
	if blobs == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "Storage system not initialized",
		})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	reader, contentType, err := blobs.Get(ctx, c.Params("filename"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return responses.NotFound(c, "Image not found")
		}
		return responses.Storage(c, "Failed to fetch image", err)
	}

	c.Set(fiber.HeaderContentType, contentType)
	return c.SendStream(reader)
}

// ServiceTemplate is one entry of the static service-template list offered to
// the booking frontend.
type ServiceTemplate struct {
	Name        string  `json:"name"`
	Cost        float64 `json:"cost"`
	Description string  `json:"description"`
}

var serviceTemplates = []ServiceTemplate{
	{Name: "Remplacement d'écran", Cost: 89, Description: "Écran cassé ou tactile défectueux"},
	{Name: "Remplacement de batterie", Cost: 49, Description: "Batterie qui ne tient plus la charge"},
	{Name: "Réparation connecteur de charge", Cost: 39, Description: "Port de charge endommagé ou oxydé"},
	{Name: "Remplacement caméra", Cost: 59, Description: "Caméra avant ou arrière défaillante"},
	{Name: "Désoxydation", Cost: 69, Description: "Nettoyage après contact avec un liquide"},
	{Name: "Diagnostic complet", Cost: 19, Description: "Inspection complète de l'appareil"},
}

// ServiceTemplates serves the static template list.
func ServiceTemplates(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(serviceTemplates)
}
