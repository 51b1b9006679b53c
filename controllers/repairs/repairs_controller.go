package repairController

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Afterlife24/repairshop-server/brandindex"
	"github.com/Afterlife24/repairshop-server/configs"
	"github.com/Afterlife24/repairshop-server/models"
	"github.com/Afterlife24/repairshop-server/responses"
)

type repairCollection interface {
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error)
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult
	UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error)
	DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (*mongo.DeleteResult, error)
}

var (
	collections = map[models.Category]repairCollection{}
	index       *brandindex.Maintainer
)

// Init wires the four repair-catalog collections and the brand-index
// maintainer. Called once from main before serving.
func Init(client *mongo.Client, cfg configs.Config, maintainer *brandindex.Maintainer) {
	for _, cat := range []models.Category{
		models.CategoryMobile, models.CategoryLaptop, models.CategoryTablet, models.CategoryConsole,
	} {
		collections[cat] = configs.GetCollection(client, cfg, cat.RepairCollection())
	}
	index = maintainer
}

func categoryParam(c *fiber.Ctx) (models.Category, bool) {
	category, err := models.ParseCategory(c.Params("category"))
	if err != nil {
		return "", false
	}
	return category, true
}

type createRepairRequest struct {
	Category      string                `json:"category"`
	Brand         string                `json:"brand"`
	Model         string                `json:"model"`
	RepairOptions []models.RepairOption `json:"repairOptions"`
}

// CreateRepair inserts a repair-catalog entry, then records the creation on
// the brand index. The index update runs after the entry is durable; if it
// fails the entry is NOT rolled back — the index is stale until the request
// is repeated, and the caller sees a 500.
func CreateRepair(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var req createRepairRequest
	if err := c.BodyParser(&req); err != nil {
		return responses.BadRequest(c, "Invalid request body")
	}

	category, err := models.ParseCategory(req.Category)
	if err != nil {
		return responses.BadRequest(c, "Invalid category")
	}

	now := time.Now().UTC()
	repair := models.Repair{
		ID:            primitive.NewObjectID(),
		Brand:         req.Brand,
		Model:         req.Model,
		RepairOptions: req.RepairOptions,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	for i := range repair.RepairOptions {
		repair.RepairOptions[i].ApplyDefaults(category)
	}
	if fields := models.Validate(repair); fields != nil {
		return responses.ValidationFailed(c, "Invalid repair data", fields)
	}

	col := collections[category]
	if _, err := col.InsertOne(ctx, &repair); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return responses.Conflict(c, "Repair entry already exists for this brand and model")
		}
		return responses.Internal(c, "Failed to create repair", err)
	}

	if err := index.Ensure(ctx, category, repair.Brand, repair.Model); err != nil {
		return responses.Internal(c, "Repair created but brand index update failed", err)
	}

	return c.Status(fiber.StatusCreated).JSON(repair)
}

// GetRepairs lists a category's repair entries, optionally filtered by brand.
// The brand filter is case-insensitive; the brand index key is not.
func GetRepairs(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	category, ok := categoryParam(c)
	if !ok {
		return responses.BadRequest(c, "Invalid category")
	}

	filter := bson.M{}
	if brand := c.Query("brand"); brand != "" {
		filter["brand"] = primitive.Regex{Pattern: "^" + regexp.QuoteMeta(brand) + "$", Options: "i"}
	}

	cursor, err := collections[category].Find(ctx, filter)
	if err != nil {
		return responses.Internal(c, "Failed to fetch repairs", err)
	}
	repairs := []models.Repair{}
	if err := cursor.All(ctx, &repairs); err != nil {
		return responses.Internal(c, "Failed to fetch repairs", err)
	}

	return c.Status(fiber.StatusOK).JSON(repairs)
}

// GetRepairByID fetches one repair-catalog entry.
func GetRepairByID(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	category, ok := categoryParam(c)
	if !ok {
		return responses.BadRequest(c, "Invalid category")
	}
	objectID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.BadRequest(c, "Invalid repair ID format")
	}

	var repair models.Repair
	if err := collections[category].FindOne(ctx, bson.M{"_id": objectID}).Decode(&repair); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return responses.NotFound(c, "Repair not found")
		}
		return responses.Internal(c, "Failed to fetch repair", err)
	}
	return c.Status(fiber.StatusOK).JSON(repair)
}

type updateRepairRequest struct {
	Brand         *string                `json:"brand,omitempty"`
	Model         *string                `json:"model,omitempty"`
	RepairOptions *[]models.RepairOption `json:"repairOptions,omitempty"`
}

// UpdateRepair applies an allow-listed partial update to one entry. Unknown
// client fields are dropped rather than persisted.
func UpdateRepair(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	category, ok := categoryParam(c)
	if !ok {
		return responses.BadRequest(c, "Invalid category")
	}
	objectID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.BadRequest(c, "Invalid repair ID format")
	}

	var req updateRepairRequest
	if err := c.BodyParser(&req); err != nil {
		return responses.BadRequest(c, "Invalid request body")
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	var fields []string
	if req.Brand != nil {
		if *req.Brand == "" {
			fields = append(fields, "brand is required")
		}
		set["brand"] = *req.Brand
	}
	if req.Model != nil {
		if *req.Model == "" {
			fields = append(fields, "model is required")
		}
		set["model"] = *req.Model
	}
	if req.RepairOptions != nil {
		opts := *req.RepairOptions
		for i := range opts {
			opts[i].ApplyDefaults(category)
			fields = append(fields, models.Validate(opts[i])...)
		}
		set["repairOptions"] = opts
	}
	if fields != nil {
		return responses.ValidationFailed(c, "Invalid repair data", fields)
	}

	col := collections[category]
	res, err := col.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": set})
	if err != nil {
		return responses.Internal(c, "Failed to update repair", err)
	}
	if res.MatchedCount == 0 {
		return responses.NotFound(c, "Repair not found")
	}

	var repair models.Repair
	if err := col.FindOne(ctx, bson.M{"_id": objectID}).Decode(&repair); err != nil {
		return responses.Internal(c, "Failed to fetch updated repair", err)
	}
	return c.Status(fiber.StatusOK).JSON(repair)
}

// DeleteRepair removes a whole repair-catalog entry. The brand index is left
// untouched: brands are never deleted by this system.
func DeleteRepair(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	category, ok := categoryParam(c)
	if !ok {
		return responses.BadRequest(c, "Invalid category")
	}
	objectID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.BadRequest(c, "Invalid repair ID format")
	}

	res, err := collections[category].DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return responses.Internal(c, "Failed to delete repair", err)
	}
	if res.DeletedCount == 0 {
		return responses.NotFound(c, "Repair not found")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Repair deleted successfully"})
}
