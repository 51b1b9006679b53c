package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Brand is one brand-index entry: the models known for a brand within a
// category, plus a counter of repair-catalog creation events. Models is a set
// (membership matters, order does not); RepairCount counts every creation
// event, so it can exceed len(Models) when the same model is re-created.
type Brand struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Models      []string           `bson:"models" json:"models"`
	RepairCount int                `bson:"repairCount" json:"repairCount"`
}
