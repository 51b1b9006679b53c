package productController

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/Afterlife24/repairshop-server/configs"
	"github.com/Afterlife24/repairshop-server/models"
	"github.com/Afterlife24/repairshop-server/responses"
	"github.com/Afterlife24/repairshop-server/storage"
)

type productCollection interface {
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error)
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult
	FindOneAndDelete(ctx context.Context, filter interface{}, opts ...*options.FindOneAndDeleteOptions) *mongo.SingleResult
}

var (
	collections = map[models.Category]productCollection{}
	blobs       storage.Store
)

// Init wires the product collections and the blob store. Called once from main
// before the server starts accepting requests.
func Init(client *mongo.Client, cfg configs.Config, store storage.Store) {
	collections[models.CategoryMobile] = configs.GetCollection(client, cfg, "mobiles")
	collections[models.CategoryLaptop] = configs.GetCollection(client, cfg, "laptops")
	blobs = store
}

func productCollectionFor(typ string) (productCollection, models.Category, bool) {
	category, err := models.ParseCategory(typ)
	if err != nil {
		return nil, "", false
	}
	col, ok := collections[category]
	return col, category, ok
}

// GetProductsByType lists every product of one type ("mobile"/"mobiles",
// "laptop"/"laptops").
func GetProductsByType(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	col, _, ok := productCollectionFor(c.Params("type"))
	if !ok {
		return responses.BadRequest(c, "Invalid product type")
	}

	cursor, err := col.Find(ctx, bson.M{})
	if err != nil {
		return responses.Internal(c, "Failed to fetch products", err)
	}
	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return responses.Internal(c, "Failed to fetch products", err)
	}

	return c.Status(fiber.StatusOK).JSON(products)
}

// GetProductByID fetches a single product of one type.
func GetProductByID(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	col, _, ok := productCollectionFor(c.Params("type"))
	if !ok {
		return responses.BadRequest(c, "Invalid product type")
	}
	objectID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.BadRequest(c, "Invalid product ID format")
	}

	var product models.Product
	if err := col.FindOne(ctx, bson.M{"_id": objectID}).Decode(&product); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return responses.NotFound(c, "Product not found")
		}
		return responses.Internal(c, "Failed to fetch product", err)
	}
	return c.Status(fiber.StatusOK).JSON(product)
}

// AddMobile handles the multipart add-mobile upload.
func AddMobile(c *fiber.Ctx) error {
	return addProduct(c, models.CategoryMobile)
}

// AddLaptop handles the multipart add-laptop upload.
func AddLaptop(c *fiber.Ctx) error {
	return addProduct(c, models.CategoryLaptop)
}

func addProduct(c *fiber.Ctx, category models.Category) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	col := collections[category]

	file, err := c.FormFile("image")
	if err != nil {
		return responses.BadRequest(c, "Image is required")
	}
	if file.Size > storage.MaxImageSize {
		return responses.BadRequest(c, "Image exceeds the 5MB size limit")
	}
	contentType := file.Header.Get("Content-Type")
	if !storage.AllowedImageType(contentType) {
		return responses.BadRequest(c, "Only .jpeg, .jpg, and .png formats are allowed")
	}

	product := productFromForm(c, category)

	// Field validation happens before the blob write so a bad request leaves
	// nothing behind in either store.
	if fields := models.Validate(product); fields != nil {
		return responses.ValidationFailed(c, "Invalid product data", fields)
	}

	src, err := file.Open()
	if err != nil {
		return responses.BadRequest(c, "Could not read uploaded image")
	}
	defer src.Close()

	key := storage.NewKey(string(category), file.Filename)
	locator, err := blobs.Put(ctx, src, key, contentType)
	if err != nil {
		return responses.Storage(c, "Failed to store image", err)
	}
	product.Image = locator

	if _, err := col.InsertOne(ctx, &product); err != nil {
		return responses.Internal(c, "Failed to add product", err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": title(string(category)) + " added successfully",
		"product": product,
	})
}

// title capitalizes the category for user-facing messages.
func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// productFromForm maps the multipart form fields onto a Product the same way
// the add endpoints have always read them (features comma-separated, numbers
// tolerating garbage by falling back to zero).
func productFromForm(c *fiber.Ctx, category models.Category) models.Product {
	rating, _ := strconv.ParseFloat(c.FormValue("rating"), 64)
	reviews, _ := strconv.Atoi(c.FormValue("reviews"))

	var features []string
	if raw := c.FormValue("features"); raw != "" {
		for _, f := range strings.Split(raw, ",") {
			features = append(features, strings.TrimSpace(f))
		}
	}

	now := time.Now().UTC()
	return models.Product{
		ID:            primitive.NewObjectID(),
		Name:          c.FormValue("name"),
		Brand:         c.FormValue("brand"),
		Price:         c.FormValue("price"),
		OriginalPrice: c.FormValue("originalPrice"),
		Discount:      c.FormValue("discount"),
		Rating:        rating,
		Reviews:       reviews,
		Features:      features,
		Description:   c.FormValue("description"),
		Category:      c.FormValue("category"),
		InStock:       c.FormValue("inStock") != "false",
		Type:          string(category),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// DeleteMobile removes a mobile and asks the blob store to drop its image.
func DeleteMobile(c *fiber.Ctx) error {
	return deleteProduct(c, models.CategoryMobile)
}

// DeleteLaptop is the laptop twin of DeleteMobile.
func DeleteLaptop(c *fiber.Ctx) error {
	return deleteProduct(c, models.CategoryLaptop)
}

func deleteProduct(c *fiber.Ctx, category models.Category) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	col := collections[category]

	objectID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.BadRequest(c, "Invalid product ID format")
	}

	var product models.Product
	if err := col.FindOneAndDelete(ctx, bson.M{"_id": objectID}).Decode(&product); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return responses.NotFound(c, "Product not found")
		}
		return responses.Internal(c, "Failed to delete product", err)
	}

	// Blob removal is best-effort: a failure orphans the image but never
	// blocks the record deletion.
	if product.Image != "" {
		if err := blobs.Delete(ctx, product.Image); err != nil {
			zap.L().Warn("orphaned image blob after product delete",
				zap.String("locator", product.Image), zap.Error(err))
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": title(string(category)) + " deleted successfully",
	})
}
