package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"galaxi-backend/models"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CartController handles cart-related requests
type CartController struct {
	CartItems Collection
	Products  Collection
}

// NewCartController creates a new CartController
func NewCartController(client *mongo.Client) *CartController {
	db := client.Database("galaxiDb")
	return &CartController{
		CartItems: db.Collection("cartCollection"),
		Products:  db.Collection("productsCollection"),
	}
}

// AddToCart inserts a cart line item
func (cc *CartController) AddToCart(w http.ResponseWriter, r *http.Request) {
	var item models.CartItem
	err := json.NewDecoder(r.Body).Decode(&item)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := cc.CartItems.InsertOne(ctx, item)
	if err != nil {
		http.Error(w, "Error adding to cart", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(result)
}

// GetCartItems retrieves the cart line items of one user
func (cc *CartController) GetCartItems(w http.ResponseWriter, r *http.Request) {
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

	cursor, err := cc.CartItems.Find(ctx, bson.M{"user": email})
	if err != nil {
		http.Error(w, "Error fetching cart items", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var items []models.CartItem
	for cursor.Next(ctx) {
		var item models.CartItem
		cursor.Decode(&item)
		items = append(items, item)
	}

	if err := cursor.Err(); err != nil {
		http.Error(w, "Error reading cart items", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(items)
}

// GetCartItemDetails retrieves the product documents for a set of product
// ids held in the cart. The result order is not guaranteed to match the
// input order.
func (cc *CartController) GetCartItemDetails(w http.ResponseWriter, r *http.Request) {
	var body struct {
		IDs []string `json:"ids"`
	}
	err := json.NewDecoder(r.Body).Decode(&body)
	if err != nil || len(body.IDs) == 0 {
		http.Error(w, "A non-empty list of ids is required", http.StatusBadRequest)
		return
	}

	ids := make([]primitive.ObjectID, 0, len(body.IDs))
	for _, idStr := range body.IDs {
		id, err := primitive.ObjectIDFromHex(idStr)
		if err != nil {
			http.Error(w, "Invalid product ID", http.StatusBadRequest)
			return
		}
		ids = append(ids, id)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cursor, err := cc.Products.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		http.Error(w, "Error fetching products", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	for cursor.Next(ctx) {
		var product models.Product
		cursor.Decode(&product)
		products = append(products, product)
	}

	if err := cursor.Err(); err != nil {
		http.Error(w, "Error reading products", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(products)
}

// UpdateCartItemQuantity replaces the quantity of one cart line item
func (cc *CartController) UpdateCartItemQuantity(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id, err := primitive.ObjectIDFromHex(params["id"])
	if err != nil {
		http.Error(w, "Invalid cart item ID", http.StatusBadRequest)
		return
	}

	var body struct {
		Quantity int `json:"quantity"`
	}
	err = json.NewDecoder(r.Body).Decode(&body)
	if err != nil || body.Quantity <= 0 {
		http.Error(w, "Invalid quantity", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"quantity": body.Quantity}}
	result, err := cc.CartItems.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		http.Error(w, "Error updating cart item", http.StatusInternalServerError)
		return
	}

	if result.MatchedCount == 0 {
		http.Error(w, "Cart item not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// DeleteCartItem removes one cart line item. Deleting nothing is an error.
func (cc *CartController) DeleteCartItem(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id, err := primitive.ObjectIDFromHex(params["id"])
	if err != nil {
		http.Error(w, "Invalid cart item ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := cc.CartItems.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		http.Error(w, "Error deleting cart item", http.StatusInternalServerError)
		return
	}

	if result.DeletedCount == 0 {
		http.Error(w, "Nothing was deleted", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// DeleteAllCartItems removes every cart line item of one user. An empty
// cart is treated as an error, matching the storefront's expectations.
func (cc *CartController) DeleteAllCartItems(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		http.Error(w, "Email is required", http.StatusBadRequest)
		return
	}
	if !requireOwner(w, r, email) {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := cc.CartItems.DeleteMany(ctx, bson.M{"user": email})
	if err != nil {
		http.Error(w, "Error deleting cart items", http.StatusInternalServerError)
		return
	}

	if result.DeletedCount == 0 {
		http.Error(w, "Nothing was deleted", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
