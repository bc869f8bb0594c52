package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"galaxi-backend/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MessageController accepts contact-form submissions
type MessageController struct {
	Messages     Collection
	EmailService *utils.EmailService
}

// NewMessageController creates a new MessageController
func NewMessageController(client *mongo.Client, emailService *utils.EmailService) *MessageController {
	return &MessageController{
		Messages:     client.Database("galaxiDb").Collection("messageCollection"),
		EmailService: emailService,
	}
}

// SendMessage stores a contact message and relays it to the shop inbox
func (mc *MessageController) SendMessage(w http.ResponseWriter, r *http.Request) {
	var message bson.M
	err := json.NewDecoder(r.Body).Decode(&message)
	if err != nil || len(message) == 0 {
		http.Error(w, "Message body is required", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := mc.Messages.InsertOne(ctx, message)
	if err != nil {
		http.Error(w, "Error saving message", http.StatusInternalServerError)
		return
	}

	if result.InsertedID == nil {
		http.Error(w, "Message was not saved", http.StatusNotFound)
		return
	}

	go mc.EmailService.SendContactEmail(message)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(result)
}
