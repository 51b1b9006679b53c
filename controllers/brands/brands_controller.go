package brandController

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Afterlife24/repairshop-server/configs"
	"github.com/Afterlife24/repairshop-server/models"
	"github.com/Afterlife24/repairshop-server/responses"
)

type brandCollection interface {
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error)
}

var collections = map[models.Category]brandCollection{}

// Init wires the four brand-index collections.
func Init(client *mongo.Client, cfg configs.Config) {
	for _, cat := range []models.Category{
		models.CategoryMobile, models.CategoryLaptop, models.CategoryTablet, models.CategoryConsole,
	} {
		collections[cat] = configs.GetCollection(client, cfg, cat.BrandCollection())
	}
}

// GetBrands lists a category's brand index, sorted by brand name.
func GetBrands(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	category, err := models.ParseCategory(c.Params("category"))
	if err != nil {
		return responses.BadRequest(c, "Invalid category")
	}

	cursor, err := collections[category].Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return responses.Internal(c, "Failed to fetch brands", err)
	}
	brands := []models.Brand{}
	if err := cursor.All(ctx, &brands); err != nil {
		return responses.Internal(c, "Failed to fetch brands", err)
	}

	return c.Status(fiber.StatusOK).JSON(brands)
}
