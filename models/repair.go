package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Screen types accepted for mobile repair options.
const (
	ScreenOLED   = "OLED"
	ScreenAMOLED = "AMOLED"
	ScreenLCD    = "LCD"
)

// RepairOption is one offered repair within a catalog entry. Each option gets
// its own ObjectID on insertion so it can be updated or removed individually.
// Only the flag matching the entry's category is ever set.
type RepairOption struct {
	ID                  primitive.ObjectID `bson:"_id" json:"id"`
	Name                string             `bson:"name" json:"name" validate:"required"`
	EstimatedCost       float64            `bson:"estimatedCost" json:"estimatedCost" validate:"min=0"`
	Description         string             `bson:"description" json:"description" validate:"required"`
	ScreenType          string             `bson:"screenType,omitempty" json:"screenType,omitempty" validate:"omitempty,oneof=OLED AMOLED LCD"`
	IncludesKeyboard    *bool              `bson:"includesKeyboard,omitempty" json:"includesKeyboard,omitempty"`
	IncludesStylus      *bool              `bson:"includesStylus,omitempty" json:"includesStylus,omitempty"`
	IncludesControllers *bool              `bson:"includesControllers,omitempty" json:"includesControllers,omitempty"`
}

// ApplyDefaults assigns the option identity and the category-specific flag
// default (AMOLED screens for mobiles, false for the boolean flags).
func (o *RepairOption) ApplyDefaults(category Category) {
	if o.ID.IsZero() {
		o.ID = primitive.NewObjectID()
	}
	f := false
	switch category {
	case CategoryMobile:
		if o.ScreenType == "" {
			o.ScreenType = ScreenAMOLED
		}
	case CategoryLaptop:
		if o.IncludesKeyboard == nil {
			o.IncludesKeyboard = &f
		}
	case CategoryTablet:
		if o.IncludesStylus == nil {
			o.IncludesStylus = &f
		}
	case CategoryConsole:
		if o.IncludesControllers == nil {
			o.IncludesControllers = &f
		}
	}
}

// Repair is one repair-catalog entry: the options offered for one
// (category, brand, model).
type Repair struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Brand         string             `bson:"brand" json:"brand" validate:"required"`
	Model         string             `bson:"model" json:"model" validate:"required"`
	RepairOptions []RepairOption     `bson:"repairOptions" json:"repairOptions" validate:"dive"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// RepairOptionPatch carries the fields of an option update; nil means "leave
// as is", so updates merge into the stored option instead of replacing it.
type RepairOptionPatch struct {
	Name                *string  `json:"name,omitempty"`
	EstimatedCost       *float64 `json:"estimatedCost,omitempty"`
	Description         *string  `json:"description,omitempty"`
	ScreenType          *string  `json:"screenType,omitempty"`
	IncludesKeyboard    *bool    `json:"includesKeyboard,omitempty"`
	IncludesStylus      *bool    `json:"includesStylus,omitempty"`
	IncludesControllers *bool    `json:"includesControllers,omitempty"`
}
