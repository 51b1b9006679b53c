package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GridFSStore keeps images inside MongoDB itself; locators are paths served
// back through the /api/images endpoint.
type GridFSStore struct {
	bucket *gridfs.Bucket
}

func NewGridFSStore(db *mongo.Database) (*GridFSStore, error) {
	bucket, err := gridfs.NewBucket(db, options.GridFSBucket().SetName("images"))
	if err != nil {
		return nil, fmt.Errorf("open gridfs bucket: %w", err)
	}
	return &GridFSStore{bucket: bucket}, nil
}

func (g *GridFSStore) Put(ctx context.Context, r io.Reader, key, contentType string) (string, error) {
	if deadline, ok := ctx.Deadline(); ok {
		_ = g.bucket.SetWriteDeadline(deadline)
	}
	opts := options.GridFSUpload().SetMetadata(bson.M{"contentType": contentType})
	if _, err := g.bucket.UploadFromStream(key, r, opts); err != nil {
		return "", fmt.Errorf("gridfs upload %s: %w", key, err)
	}
	return "/api/images/" + key, nil
}

func (g *GridFSStore) Get(ctx context.Context, key string) (io.ReadCloser, string, error) {
	if deadline, ok := ctx.Deadline(); ok {
		_ = g.bucket.SetReadDeadline(deadline)
	}
	stream, err := g.bucket.OpenDownloadStreamByName(key)
	if err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return nil, "", ErrNotFound
		}
		return nil, "", fmt.Errorf("gridfs open %s: %w", key, err)
	}

	contentType := "application/octet-stream"
	if meta := stream.GetFile().Metadata; meta != nil {
		if v, err := bson.Raw(meta).LookupErr("contentType"); err == nil {
			if s, ok := v.StringValueOK(); ok {
				contentType = s
			}
		}
	}
	return stream, contentType, nil
}

func (g *GridFSStore) Delete(ctx context.Context, locator string) error {
	if deadline, ok := ctx.Deadline(); ok {
		_ = g.bucket.SetReadDeadline(deadline)
		_ = g.bucket.SetWriteDeadline(deadline)
	}
	key := KeyFromLocator(locator)

	cursor, err := g.bucket.Find(bson.M{"filename": key})
	if err != nil {
		return fmt.Errorf("gridfs find %s: %w", key, err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var file struct {
			ID primitive.ObjectID `bson:"_id"`
		}
		if err := cursor.Decode(&file); err != nil {
			return fmt.Errorf("gridfs decode %s: %w", key, err)
		}
		if err := g.bucket.Delete(file.ID); err != nil && !errors.Is(err, gridfs.ErrFileNotFound) {
			return fmt.Errorf("gridfs delete %s: %w", key, err)
		}
	}
	return cursor.Err()
}
