package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"galaxi-backend/models"
	"galaxi-backend/utils"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// OrderController handles pending and confirmed order requests
type OrderController struct {
	Orders          Collection
	ConfirmedOrders Collection
	EmailService    *utils.EmailService
}

// NewOrderController creates a new OrderController
func NewOrderController(client *mongo.Client, emailService *utils.EmailService) *OrderController {
	db := client.Database("galaxiDb")
	return &OrderController{
		Orders:          db.Collection("orderCollections"),
		ConfirmedOrders: db.Collection("confirmedOrderCollection"),
		EmailService:    emailService,
	}
}

// CreatePendingOrder stores a cart submission that has not been confirmed
// yet. The wrapped product list is inserted verbatim.
func (oc *OrderController) CreatePendingOrder(w http.ResponseWriter, r *http.Request) {
	var body struct {
		OrderedProducts bson.M `json:"orderedProducts"`
	}
	err := json.NewDecoder(r.Body).Decode(&body)
	if err != nil || len(body.OrderedProducts) == 0 {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := oc.Orders.InsertOne(ctx, body.OrderedProducts)
	if err != nil {
		http.Error(w, "Error creating order", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(result)
}

// GetOrders retrieves the confirmed orders of one user, most recent first
func (oc *OrderController) GetOrders(w http.ResponseWriter, r *http.Request) {
	oc.listConfirmedOrders(w, r)
}

// GetMyOrderedItems retrieves the order history of one user, most recent
// first. Kept as a separate route for the storefront's order page.
func (oc *OrderController) GetMyOrderedItems(w http.ResponseWriter, r *http.Request) {
	oc.listConfirmedOrders(w, r)
}

func (oc *OrderController) listConfirmedOrders(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		http.Error(w, "Email is required", http.StatusBadRequest)
		return
	}
	if !requireOwner(w, r, email) {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	findOpts := options.Find().SetSort(bson.D{{Key: "purchaseDetails.orderedDate", Value: -1}})
	cursor, err := oc.ConfirmedOrders.Find(ctx, bson.M{"purchaseDetails.userEmail": email}, findOpts)
	if err != nil {
		http.Error(w, "Error fetching orders", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var orders []models.ConfirmedOrder
	for cursor.Next(ctx) {
		var order models.ConfirmedOrder
		if err := cursor.Decode(&order); err != nil {
			http.Error(w, "Error decoding order", http.StatusInternalServerError)
			return
		}
		orders = append(orders, order)
	}

	if err := cursor.Err(); err != nil {
		http.Error(w, "Error reading orders", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(orders)
}

// ConfirmOrder stores a finalized purchase record and sends the
// confirmation email
func (oc *OrderController) ConfirmOrder(w http.ResponseWriter, r *http.Request) {
	var order models.ConfirmedOrder
	err := json.NewDecoder(r.Body).Decode(&order)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := oc.ConfirmedOrders.InsertOne(ctx, order)
	if err != nil {
		http.Error(w, "Error confirming order", http.StatusInternalServerError)
		return
	}

	if result.InsertedID == nil {
		http.Error(w, "Order was not confirmed", http.StatusBadRequest)
		return
	}

	go oc.EmailService.SendOrderConfirmationEmail(order.PurchaseDetails.UserEmail, order)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(result)
}

// TrackOrder retrieves a confirmed order by transaction id. Both
// transactionId and email are required; the lookup itself filters only by
// transactionId.
func (oc *OrderController) TrackOrder(w http.ResponseWriter, r *http.Request) {
	transactionID := r.URL.Query().Get("transactionId")
	email := r.URL.Query().Get("email")
	if transactionID == "" || email == "" {
		http.Error(w, "transactionId and email are required", http.StatusBadRequest)
		return
	}
	if !requireOwner(w, r, email) {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var order models.ConfirmedOrder
	err := oc.ConfirmedOrders.FindOne(ctx, bson.M{"purchaseDetails.transactionId": transactionID}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Error fetching order", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(order)
}

// DeletePendingOrder removes a pending order by id. Deleting nothing is an
// error.
func (oc *OrderController) DeletePendingOrder(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id, err := primitive.ObjectIDFromHex(params["id"])
	if err != nil {
		http.Error(w, "Invalid order ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := oc.Orders.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		http.Error(w, "Error deleting order", http.StatusInternalServerError)
		return
	}

	if result.DeletedCount == 0 {
		http.Error(w, "Nothing was deleted", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// DeleteConfirmedOrder removes a confirmed order by the id query
// parameter. Deleting nothing is an error.
func (oc *OrderController) DeleteConfirmedOrder(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get("id")
	if idStr == "" {
		http.Error(w, "Order ID is required", http.StatusBadRequest)
		return
	}

	id, err := primitive.ObjectIDFromHex(idStr)
	if err != nil {
		http.Error(w, "Invalid order ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := oc.ConfirmedOrders.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		http.Error(w, "Error deleting order", http.StatusInternalServerError)
		return
	}

	if result.DeletedCount == 0 {
		http.Error(w, "Nothing was deleted", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
