package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product represents a product listed in the storefront catalog
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Category    string             `bson:"category" json:"category"`
	Email       string             `bson:"email" json:"email"` // owner/creator email
	Price       float64            `bson:"price" json:"price"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	Stock       int                `bson:"stock" json:"stock"`
	MinQuantity int                `bson:"minQuantity" json:"minQuantity"`
}
