package main

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/Afterlife24/repairshop-server/brandindex"
	"github.com/Afterlife24/repairshop-server/configs"
	appointmentController "github.com/Afterlife24/repairshop-server/controllers/appointments"
	brandController "github.com/Afterlife24/repairshop-server/controllers/brands"
	productController "github.com/Afterlife24/repairshop-server/controllers/products"
	repairController "github.com/Afterlife24/repairshop-server/controllers/repairs"
	systemController "github.com/Afterlife24/repairshop-server/controllers/system"
	"github.com/Afterlife24/repairshop-server/logger"
	"github.com/Afterlife24/repairshop-server/models"
	"github.com/Afterlife24/repairshop-server/responses"
	"github.com/Afterlife24/repairshop-server/routes"
	"github.com/Afterlife24/repairshop-server/storage"
)

func main() {
	cfg := configs.Load()

	log, err := logger.Init(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	responses.Init(cfg.IsProduction())

	client, err := configs.ConnectDB(cfg)
	if err != nil {
		log.Fatal("mongodb connection failed", zap.Error(err))
	}
	log.Info("connected to MongoDB", zap.String("db", cfg.DBName))

	store, err := newBlobStore(cfg, client)
	if err != nil {
		log.Fatal("blob store init failed", zap.String("backend", cfg.StorageBackend), zap.Error(err))
	}

	maintainer := brandindex.New()
	for _, cat := range []models.Category{
		models.CategoryMobile, models.CategoryLaptop, models.CategoryTablet, models.CategoryConsole,
	} {
		maintainer.Register(cat, configs.GetCollection(client, cfg, cat.BrandCollection()))
	}

	// Init order matters: collections and stores are wired before any route
	// is registered, so a handler never sees a nil dependency.
	productController.Init(client, cfg, store)
	repairController.Init(client, cfg, maintainer)
	brandController.Init(client, cfg)
	appointmentController.Init(client, cfg)
	systemController.Init(client, store)

	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Content-Type, Authorization, X-Requested-With, Accept",
	}))

	routes.ProductsRoute(app)
	routes.RepairsRoute(app)
	routes.BrandsRoute(app)
	routes.AppointmentsRoute(app)
	routes.SystemRoute(app)

	log.Info("server listening", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

// newBlobStore builds the configured image backend: S3 (external bucket) or
// GridFS (blobs inside MongoDB). Both honor the same contract.
func newBlobStore(cfg configs.Config, client *mongo.Client) (storage.Store, error) {
	switch cfg.StorageBackend {
	case "s3":
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return storage.NewS3Store(ctx, cfg.S3Bucket, cfg.AWSRegion)
	default:
		return storage.NewGridFSStore(client.Database(cfg.DBName))
	}
}
