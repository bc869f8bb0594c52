package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"galaxi-backend/models"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ProductController handles product-related requests
type ProductController struct {
	Products Collection
}

// NewProductController creates a new ProductController
func NewProductController(client *mongo.Client) *ProductController {
	return &ProductController{
		Products: client.Database("galaxiDb").Collection("productsCollection"),
	}
}

// CreateProduct handles adding a new product
func (pc *ProductController) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var product models.Product
	err := json.NewDecoder(r.Body).Decode(&product)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	result, err := pc.Products.InsertOne(ctx, product)
	if err != nil {
		http.Error(w, "Error creating product", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(result)
}

// GetMyProducts retrieves products, optionally filtered by owner email.
// A requested email must match the verified caller identity.
func (pc *ProductController) GetMyProducts(w http.ResponseWriter, r *http.Request) {
	filter := bson.M{}
	if email := r.URL.Query().Get("email"); email != "" {
		if !requireOwner(w, r, email) {
			return
		}
		filter = bson.M{"email": email}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cursor, err := pc.Products.Find(ctx, filter)
	if err != nil {
		http.Error(w, "Error fetching products", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var products []models.Product
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

// GetAllProducts retrieves the paginated catalog. sortParam is restricted
// to the bulk tiers 50 and 100, each filtering on minQuantity and sorting
// it ascending.
func (pc *ProductController) GetAllProducts(w http.ResponseWriter, r *http.Request) {
	page, limit, ok := parsePageLimit(r)
	if !ok {
		http.Error(w, "Invalid page or limit", http.StatusBadRequest)
		return
	}

	filter := bson.M{}
	findOpts := options.Find().
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	if sortParam := r.URL.Query().Get("sortParam"); sortParam != "" {
		if sortParam != "50" && sortParam != "100" {
			http.Error(w, "Invalid sortParam", http.StatusBadRequest)
			return
		}
		min := 50
		if sortParam == "100" {
			min = 100
		}
		filter = bson.M{"minQuantity": bson.M{"$gte": min}}
		findOpts.SetSort(bson.D{{Key: "minQuantity", Value: 1}})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	total, err := pc.Products.CountDocuments(ctx, filter)
	if err != nil {
		http.Error(w, "Error counting products", http.StatusInternalServerError)
		return
	}

	cursor, err := pc.Products.Find(ctx, filter, findOpts)
	if err != nil {
		http.Error(w, "Error fetching products", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var products []models.Product
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
	json.NewEncoder(w).Encode(models.ProductPage{
		Products:   products,
		Pagination: models.NewPagination(total, page, limit),
	})
}

// GetProductByID retrieves a single product by ID
func (pc *ProductController) GetProductByID(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id, err := primitive.ObjectIDFromHex(params["id"])
	if err != nil {
		http.Error(w, "Invalid product ID", http.StatusBadRequest)
		return
	}

	var product models.Product
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = pc.Products.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Error fetching product", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(product)
}

// GetProductsByCategory retrieves the paginated listing of one category
func (pc *ProductController) GetProductsByCategory(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	category := params["id"]

	page, limit, ok := parsePageLimit(r)
	if !ok {
		http.Error(w, "Invalid page or limit", http.StatusBadRequest)
		return
	}

	filter := bson.M{"category": category}
	findOpts := options.Find().
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	total, err := pc.Products.CountDocuments(ctx, filter)
	if err != nil {
		http.Error(w, "Error counting products", http.StatusInternalServerError)
		return
	}

	cursor, err := pc.Products.Find(ctx, filter, findOpts)
	if err != nil {
		http.Error(w, "Error fetching products", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var products []models.Product
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
	json.NewEncoder(w).Encode(models.ProductPage{
		Products:   products,
		Pagination: models.NewPagination(total, page, limit),
	})
}

// PurchaseProduct decrements the stock of a product by the purchased
// quantity. The quantity must be a positive number.
func (pc *ProductController) PurchaseProduct(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id, err := primitive.ObjectIDFromHex(params["id"])
	if err != nil {
		http.Error(w, "Invalid product ID", http.StatusBadRequest)
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

	update := bson.M{"$inc": bson.M{"stock": -body.Quantity}}
	result, err := pc.Products.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		http.Error(w, "Error updating stock", http.StatusInternalServerError)
		return
	}

	if result.MatchedCount == 0 {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Stock updated successfully",
		"result":  result,
	})
}

// RestockProduct increments the stock of a product by the restocked
// quantity, keyed by product id.
func (pc *ProductController) RestockProduct(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id, err := primitive.ObjectIDFromHex(params["id"])
	if err != nil {
		http.Error(w, "Invalid product ID", http.StatusBadRequest)
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

	update := bson.M{"$inc": bson.M{"stock": body.Quantity}}
	result, err := pc.Products.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		http.Error(w, "Error updating stock", http.StatusInternalServerError)
		return
	}

	if result.MatchedCount == 0 || result.ModifiedCount == 0 {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Stock updated successfully",
		"result":  result,
	})
}

// UpdateProduct replaces the fields present in the provided partial
// document. There is no field allow-list.
func (pc *ProductController) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id, err := primitive.ObjectIDFromHex(params["id"])
	if err != nil {
		http.Error(w, "Invalid product ID", http.StatusBadRequest)
		return
	}

	var body struct {
		UpdatedProduct bson.M `json:"updatedProduct"`
	}
	err = json.NewDecoder(r.Body).Decode(&body)
	if err != nil || len(body.UpdatedProduct) == 0 {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := bson.M{"$set": body.UpdatedProduct}
	result, err := pc.Products.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		http.Error(w, "Error updating product", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// DeleteProduct handles deleting a product
func (pc *ProductController) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id, err := primitive.ObjectIDFromHex(params["id"])
	if err != nil {
		http.Error(w, "Invalid product ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := pc.Products.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		http.Error(w, "Error deleting product", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
