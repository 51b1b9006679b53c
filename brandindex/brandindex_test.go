package brandindex

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Afterlife24/repairshop-server/models"
)

// fakeBrandCollection records calls and applies the update documents to an
// in-memory brand record with MongoDB's $addToSet / $inc semantics, so the
// tests exercise the same document the server would end up with.
type fakeBrandCollection struct {
	calls []ensureCall
	doc   map[string]interface{}
}

type ensureCall struct {
	filter bson.M
	update bson.M
	upsert bool
}

func (f *fakeBrandCollection) FindOneAndUpdate(ctx context.Context, filter interface{}, update interface{},
	opts ...*options.FindOneAndUpdateOptions) *mongo.SingleResult {
	upd := update.(bson.M)

	upsert := false
	for _, o := range opts {
		if o.Upsert != nil && *o.Upsert {
			upsert = true
		}
	}
	f.calls = append(f.calls, ensureCall{filter: filter.(bson.M), update: upd, upsert: upsert})

	if f.doc == nil {
		if !upsert {
			return mongo.NewSingleResultFromDocument(bson.D{}, mongo.ErrNoDocuments, nil)
		}
		f.doc = map[string]interface{}{
			"name":        f.calls[0].filter["name"],
			"models":      []string{},
			"repairCount": 0,
		}
	}

	if add, ok := upd["$addToSet"].(bson.M); ok {
		model := add["models"].(string)
		seen := false
		for _, m := range f.doc["models"].([]string) {
			if m == model {
				seen = true
			}
		}
		if !seen {
			f.doc["models"] = append(f.doc["models"].([]string), model)
		}
	}
	if inc, ok := upd["$inc"].(bson.M); ok {
		f.doc["repairCount"] = f.doc["repairCount"].(int) + inc["repairCount"].(int)
	}

	return mongo.NewSingleResultFromDocument(bson.M{
		"name":        f.doc["name"],
		"models":      f.doc["models"],
		"repairCount": f.doc["repairCount"],
	}, nil, nil)
}

func newTestMaintainer(f *fakeBrandCollection) *Maintainer {
	m := New()
	m.Register(models.CategoryMobile, f)
	return m
}

func TestEnsureUpsertsWithAtomicOperators(t *testing.T) {
	fake := &fakeBrandCollection{}
	m := newTestMaintainer(fake)

	require.NoError(t, m.Ensure(context.Background(), models.CategoryMobile, "Apple", "iPhone 12"))

	require.Len(t, fake.calls, 1)
	call := fake.calls[0]
	assert.True(t, call.upsert, "ensure must upsert, not insert")
	assert.Equal(t, bson.M{"name": "Apple"}, call.filter, "brand key is exact, no normalization")
	assert.Equal(t, bson.M{"models": "iPhone 12"}, call.update["$addToSet"])
	assert.Equal(t, bson.M{"repairCount": 1}, call.update["$inc"])

	assert.Equal(t, []string{"iPhone 12"}, fake.doc["models"])
	assert.Equal(t, 1, fake.doc["repairCount"])
}

func TestEnsureSameModelTwiceCountsEventsNotModels(t *testing.T) {
	fake := &fakeBrandCollection{}
	m := newTestMaintainer(fake)
	ctx := context.Background()

	require.NoError(t, m.Ensure(ctx, models.CategoryMobile, "Apple", "iPhone 12"))
	require.NoError(t, m.Ensure(ctx, models.CategoryMobile, "Apple", "iPhone 12"))

	assert.Equal(t, []string{"iPhone 12"}, fake.doc["models"], "models is a set")
	assert.Equal(t, 2, fake.doc["repairCount"], "repairCount counts creation events")
}

func TestEnsureDistinctModelsAccumulate(t *testing.T) {
	fake := &fakeBrandCollection{}
	m := newTestMaintainer(fake)
	ctx := context.Background()

	require.NoError(t, m.Ensure(ctx, models.CategoryMobile, "Apple", "iPhone 12"))
	require.NoError(t, m.Ensure(ctx, models.CategoryMobile, "Apple", "iPhone 13"))

	assert.ElementsMatch(t, []string{"iPhone 12", "iPhone 13"}, fake.doc["models"])
	assert.Equal(t, 2, fake.doc["repairCount"])
}

func TestEnsureUnregisteredCategoryFails(t *testing.T) {
	m := New()
	err := m.Ensure(context.Background(), models.CategoryConsole, "Sony", "PS5")
	require.Error(t, err)
}
