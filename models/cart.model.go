package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem represents a single line item in a user's cart. ProductID holds
// the hex id of the product document the line refers to.
type CartItem struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	User        string             `bson:"user" json:"user"` // owner email
	ProductID   string             `bson:"productId" json:"productId"`
	ProductName string             `bson:"productName,omitempty" json:"productName,omitempty"`
	Price       float64            `bson:"price,omitempty" json:"price,omitempty"`
	Quantity    int                `bson:"quantity" json:"quantity"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
}
