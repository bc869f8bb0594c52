package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"galaxi-backend/models"
	"galaxi-backend/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// SubscriberController registers newsletter subscribers
type SubscriberController struct {
	Subscribers  Collection
	EmailService *utils.EmailService
}

// NewSubscriberController creates a new SubscriberController
func NewSubscriberController(client *mongo.Client, emailService *utils.EmailService) *SubscriberController {
	return &SubscriberController{
		Subscribers:  client.Database("galaxiDb").Collection("subscriberCollection"),
		EmailService: emailService,
	}
}

// Subscribe registers a newsletter subscriber, rejecting duplicates. The
// uniqueness is a pre-insert existence check, not a storage constraint.
func (sc *SubscriberController) Subscribe(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email string `json:"email"`
	}
	err := json.NewDecoder(r.Body).Decode(&body)
	if err != nil || body.Email == "" {
		http.Error(w, "Email is required", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var existing models.Subscriber
	err = sc.Subscribers.FindOne(ctx, bson.M{"subscriber": body.Email}).Decode(&existing)
	if err == nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"alreadySubscribed": true,
			"message":           "This email is already subscribed",
		})
		return
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		http.Error(w, "Error checking subscriber", http.StatusInternalServerError)
		return
	}

	result, err := sc.Subscribers.InsertOne(ctx, models.Subscriber{Subscriber: body.Email})
	if err != nil {
		http.Error(w, "Error subscribing", http.StatusInternalServerError)
		return
	}

	go sc.EmailService.SendWelcomeEmail(body.Email)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(result)
}
