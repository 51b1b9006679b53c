package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name           string             `bson:"name" json:"name" validate:"required,max=100"`
	Brand          string             `bson:"brand" json:"brand" validate:"required"`
	Image          string             `bson:"image" json:"image"`
	Price          string             `bson:"price" json:"price" validate:"required"`
	OriginalPrice  string             `bson:"originalPrice,omitempty" json:"originalPrice,omitempty"`
	Discount       string             `bson:"discount,omitempty" json:"discount,omitempty"`
	Rating         float64            `bson:"rating" json:"rating" validate:"min=0,max=5"`
	Reviews        int                `bson:"reviews" json:"reviews" validate:"min=0"`
	Features       []string           `bson:"features" json:"features"`
	Specifications map[string]string  `bson:"specifications,omitempty" json:"specifications,omitempty"`
	Description    string             `bson:"description,omitempty" json:"description,omitempty"`
	InStock        bool               `bson:"inStock" json:"inStock"`
	Category       string             `bson:"category,omitempty" json:"category,omitempty"`
	Type           string             `bson:"type" json:"type" validate:"required,oneof=mobile laptop"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}
