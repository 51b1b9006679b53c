package appointmentController

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Afterlife24/repairshop-server/configs"
	"github.com/Afterlife24/repairshop-server/models"
	"github.com/Afterlife24/repairshop-server/responses"
)

type appointmentCollection interface {
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error)
	FindOneAndUpdate(ctx context.Context, filter interface{}, update interface{}, opts ...*options.FindOneAndUpdateOptions) *mongo.SingleResult
	CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error)
}

var collection appointmentCollection

// Init wires the appointments collection.
func Init(client *mongo.Client, cfg configs.Config) {
	collection = configs.GetCollection(client, cfg, "appointments")
}

// Messages is the customer-facing message set. The shop serves a French
// clientele; swap the set out here if that ever changes.
var Messages = MessageSet{
	MissingField:  "Le champ %s est obligatoire",
	NoServices:    "Au moins un service doit être sélectionné",
	InvalidEmail:  "L'adresse e-mail est invalide",
	InvalidStatus: "Statut invalide",
	Created:       "Rendez-vous enregistré avec succès",
}

type MessageSet struct {
	MissingField  string
	NoServices    string
	InvalidEmail  string
	InvalidStatus string
	Created       string
}

// CreateAppointment validates and persists a booking. Status always starts at
// pending and createdAt is set server-side; neither is client-writable.
func CreateAppointment(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var appt models.Appointment
	if err := c.BodyParser(&appt); err != nil {
		return responses.BadRequest(c, "Invalid request body")
	}

	if fields := validateBooking(appt); fields != nil {
		return responses.ValidationFailed(c, fields[0], fields)
	}

	appt.ID = primitive.NewObjectID()
	appt.Status = models.StatusPending
	appt.CreatedAt = time.Now().UTC()

	if _, err := collection.InsertOne(ctx, &appt); err != nil {
		return responses.Internal(c, "Failed to create appointment", err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":     true,
		"message":     Messages.Created,
		"appointment": appt,
	})
}

// ListAppointments returns a filtered, sorted page of appointments.
func ListAppointments(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	params := listParamsFromQuery(c)
	filter := buildListFilter(params)

	total, err := collection.CountDocuments(ctx, filter)
	if err != nil {
		return responses.Internal(c, "Failed to count appointments", err)
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: params.SortField, Value: params.sortValue()}}).
		SetSkip((params.Page - 1) * params.Limit).
		SetLimit(params.Limit)

	cursor, err := collection.Find(ctx, filter, findOpts)
	if err != nil {
		return responses.Internal(c, "Failed to fetch appointments", err)
	}
	appointments := []models.Appointment{}
	if err := cursor.All(ctx, &appointments); err != nil {
		return responses.Internal(c, "Failed to fetch appointments", err)
	}

	totalPages := (total + params.Limit - 1) / params.Limit

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    appointments,
		"pagination": fiber.Map{
			"total":      total,
			"page":       params.Page,
			"limit":      params.Limit,
			"totalPages": totalPages,
		},
	})
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus is the only mutation a stored appointment supports.
func UpdateStatus(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var req updateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return responses.BadRequest(c, "Invalid request body")
	}
	// Reject before touching the store so an invalid status never mutates
	// the record.
	if !models.ValidStatus(req.Status) {
		return responses.BadRequest(c, Messages.InvalidStatus)
	}

	objectID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.BadRequest(c, "Invalid appointment ID format")
	}

	var appt models.Appointment
	err = collection.FindOneAndUpdate(ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": bson.M{"status": req.Status}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&appt)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return responses.NotFound(c, "Appointment not found")
		}
		return responses.Internal(c, "Failed to update appointment status", err)
	}

	return c.Status(fiber.StatusOK).JSON(appt)
}
