package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PurchaseDetails holds the metadata recorded when a checkout is confirmed.
// Products carries the ordered items as sent by the client.
type PurchaseDetails struct {
	UserEmail     string    `bson:"userEmail" json:"userEmail"`
	TransactionID string    `bson:"transactionId" json:"transactionId"`
	OrderedDate   time.Time `bson:"orderedDate" json:"orderedDate"`
	TotalAmount   float64   `bson:"totalAmount,omitempty" json:"totalAmount,omitempty"`
	Products      []bson.M  `bson:"products,omitempty" json:"products,omitempty"`
}

// ConfirmedOrder is a finalized purchase record, queried by userEmail and
// by transactionId.
type ConfirmedOrder struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	PurchaseDetails PurchaseDetails    `bson:"purchaseDetails" json:"purchaseDetails"`
}
