package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Subscriber is a newsletter signup, unique per email
type Subscriber struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Subscriber string             `bson:"subscriber" json:"subscriber"`
}
