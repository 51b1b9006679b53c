// Package brandindex maintains the denormalized per-category brand index:
// which brands exist, which models are known under each, and how many
// repair-catalog entries have been created for the brand.
package brandindex

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Afterlife24/repairshop-server/models"
)

// brandCollection is the slice of *mongo.Collection the maintainer needs.
type brandCollection interface {
	FindOneAndUpdate(ctx context.Context, filter interface{}, update interface{},
		opts ...*options.FindOneAndUpdateOptions) *mongo.SingleResult
}

// Maintainer applies the brand-index rules for one category's brand collection.
type Maintainer struct {
	collections map[models.Category]brandCollection
}

func New() *Maintainer {
	return &Maintainer{collections: make(map[models.Category]brandCollection)}
}

// Register wires the brand collection for a category. Must be called for all
// four categories before serving.
func (m *Maintainer) Register(category models.Category, col brandCollection) {
	m.collections[category] = col
}

// Ensure records one repair-catalog creation event for (category, brand, model):
// the brand document is created if absent, the model is added to its set of
// known models, and repairCount is incremented. All three mutations ride on a
// single upsert so the document update is atomic; the $inc always fires, even
// when the model is already known — the counter measures creation events, the
// models array measures distinct models. Brand matching is exact here (no
// case folding), unlike the case-insensitive repair read filters.
func (m *Maintainer) Ensure(ctx context.Context, category models.Category, brand, model string) error {
	col, ok := m.collections[category]
	if !ok {
		return fmt.Errorf("brandindex: no collection registered for category %q", category)
	}

	res := col.FindOneAndUpdate(ctx,
		bson.M{"name": brand},
		EnsureUpdate(model),
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	)
	if err := res.Err(); err != nil {
		return fmt.Errorf("brandindex: ensure %s/%s/%s: %w", category, brand, model, err)
	}
	return nil
}

// EnsureUpdate is the update document Ensure sends. The counter must stay a
// $inc field operator; a read-modify-write in application code would lose
// concurrent increments.
func EnsureUpdate(model string) bson.M {
	return bson.M{
		"$addToSet": bson.M{"models": model},
		"$inc":      bson.M{"repairCount": 1},
	}
}
