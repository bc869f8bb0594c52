package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category represents a product category shown on the storefront
type Category struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name" json:"name"`
	Image string             `bson:"image,omitempty" json:"image,omitempty"`
}
