package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"galaxi-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CategoryController serves the read-only category listing
type CategoryController struct {
	Categories Collection
}

// NewCategoryController creates a new CategoryController
func NewCategoryController(client *mongo.Client) *CategoryController {
	return &CategoryController{
		Categories: client.Database("galaxiDb").Collection("categoryCollection"),
	}
}

// GetCategories retrieves all categories
func (cc *CategoryController) GetCategories(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cursor, err := cc.Categories.Find(ctx, bson.M{})
	if err != nil {
		http.Error(w, "Error fetching categories", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var categories []models.Category
	for cursor.Next(ctx) {
		var category models.Category
		cursor.Decode(&category)
		categories = append(categories, category)
	}

	if err := cursor.Err(); err != nil {
		http.Error(w, "Error reading categories", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(categories)
}
