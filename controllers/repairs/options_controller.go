package repairController

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Afterlife24/repairshop-server/models"
	"github.com/Afterlife24/repairshop-server/responses"
)

// AddOption appends one repair option to an existing catalog entry.
func AddOption(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	category, ok := categoryParam(c)
	if !ok {
		return responses.BadRequest(c, "Invalid category")
	}
	repairID, err := primitive.ObjectIDFromHex(c.Params("repairId"))
	if err != nil {
		return responses.BadRequest(c, "Invalid repair ID format")
	}

	var option models.RepairOption
	if err := c.BodyParser(&option); err != nil {
		return responses.BadRequest(c, "Invalid request body")
	}
	option.ID = primitive.NilObjectID
	option.ApplyDefaults(category)
	if fields := models.Validate(option); fields != nil {
		return responses.ValidationFailed(c, "Invalid repair option", fields)
	}

	res, err := collections[category].UpdateOne(ctx,
		bson.M{"_id": repairID},
		bson.M{
			"$push": bson.M{"repairOptions": option},
			"$set":  bson.M{"updatedAt": time.Now().UTC()},
		},
	)
	if err != nil {
		return responses.Internal(c, "Failed to add repair option", err)
	}
	if res.MatchedCount == 0 {
		return responses.NotFound(c, "Repair not found")
	}

	return c.Status(fiber.StatusCreated).JSON(option)
}

// UpdateOption merges the provided fields into one option, addressed by its
// identity inside the entry's repairOptions array. Fields left out of the
// body keep their stored values.
func UpdateOption(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	category, ok := categoryParam(c)
	if !ok {
		return responses.BadRequest(c, "Invalid category")
	}
	repairID, err := primitive.ObjectIDFromHex(c.Params("repairId"))
	if err != nil {
		return responses.BadRequest(c, "Invalid repair ID format")
	}
	optionID, err := primitive.ObjectIDFromHex(c.Params("optionId"))
	if err != nil {
		return responses.BadRequest(c, "Invalid option ID format")
	}

	var patch models.RepairOptionPatch
	if err := c.BodyParser(&patch); err != nil {
		return responses.BadRequest(c, "Invalid request body")
	}

	set, fields := optionPatchSet(patch)
	if fields != nil {
		return responses.ValidationFailed(c, "Invalid repair option", fields)
	}
	if len(set) == 0 {
		return responses.BadRequest(c, "No updatable fields provided")
	}
	set["updatedAt"] = time.Now().UTC()

	col := collections[category]
	res, err := col.UpdateOne(ctx,
		bson.M{"_id": repairID, "repairOptions._id": optionID},
		bson.M{"$set": set},
	)
	if err != nil {
		return responses.Internal(c, "Failed to update repair option", err)
	}
	if res.MatchedCount == 0 {
		return responses.NotFound(c, "Repair or option not found")
	}

	var repair models.Repair
	if err := col.FindOne(ctx, bson.M{"_id": repairID}).Decode(&repair); err != nil {
		return responses.Internal(c, "Failed to fetch updated repair", err)
	}
	return c.Status(fiber.StatusOK).JSON(repair)
}

// optionPatchSet turns a patch into positional $set entries, validating the
// fields that are present.
func optionPatchSet(patch models.RepairOptionPatch) (bson.M, []string) {
	set := bson.M{}
	var fields []string

	if patch.Name != nil {
		if *patch.Name == "" {
			fields = append(fields, "name is required")
		}
		set["repairOptions.$.name"] = *patch.Name
	}
	if patch.EstimatedCost != nil {
		if *patch.EstimatedCost < 0 {
			fields = append(fields, "estimatedCost must be at least 0")
		}
		set["repairOptions.$.estimatedCost"] = *patch.EstimatedCost
	}
	if patch.Description != nil {
		if *patch.Description == "" {
			fields = append(fields, "description is required")
		}
		set["repairOptions.$.description"] = *patch.Description
	}
	if patch.ScreenType != nil {
		switch *patch.ScreenType {
		case models.ScreenOLED, models.ScreenAMOLED, models.ScreenLCD:
		default:
			fields = append(fields, "screenType must be one of [OLED AMOLED LCD]")
		}
		set["repairOptions.$.screenType"] = *patch.ScreenType
	}
	if patch.IncludesKeyboard != nil {
		set["repairOptions.$.includesKeyboard"] = *patch.IncludesKeyboard
	}
	if patch.IncludesStylus != nil {
		set["repairOptions.$.includesStylus"] = *patch.IncludesStylus
	}
	if patch.IncludesControllers != nil {
		set["repairOptions.$.includesControllers"] = *patch.IncludesControllers
	}
	return set, fields
}

// DeleteOption removes one option from an entry by identity.
func DeleteOption(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	category, ok := categoryParam(c)
	if !ok {
		return responses.BadRequest(c, "Invalid category")
	}
	repairID, err := primitive.ObjectIDFromHex(c.Params("repairId"))
	if err != nil {
		return responses.BadRequest(c, "Invalid repair ID format")
	}
	optionID, err := primitive.ObjectIDFromHex(c.Params("optionId"))
	if err != nil {
		return responses.BadRequest(c, "Invalid option ID format")
	}

	// The option has to be part of the match: the updatedAt $set counts as a
	// modification on its own, so ModifiedCount cannot tell a pulled option
	// from a no-op pull.
	col := collections[category]
	res, err := col.UpdateOne(ctx,
		bson.M{"_id": repairID, "repairOptions._id": optionID},
		bson.M{
			"$pull": bson.M{"repairOptions": bson.M{"_id": optionID}},
			"$set":  bson.M{"updatedAt": time.Now().UTC()},
		},
	)
	if err != nil {
		return responses.Internal(c, "Failed to delete repair option", err)
	}
	if res.MatchedCount == 0 {
		var repair models.Repair
		switch err := col.FindOne(ctx, bson.M{"_id": repairID}).Decode(&repair); {
		case errors.Is(err, mongo.ErrNoDocuments):
			return responses.NotFound(c, "Repair not found")
		case err != nil:
			return responses.Internal(c, "Failed to delete repair option", err)
		}
		return responses.NotFound(c, "Option not found")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Repair option deleted successfully"})
}
