// main.go
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"galaxi-backend/auth"
	"galaxi-backend/controllers"
	"galaxi-backend/routes"
	"galaxi-backend/utils"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Proceeding with environment variables.")
	}

	// Connect to MongoDB
	client := utils.ConnectDB()
	defer func() {
		if err = client.Disconnect(context.TODO()); err != nil {
			log.Fatal(err)
		}
	}()

	// Initialize the identity provider client
	verifier, err := auth.NewFirebaseVerifier(context.Background())
	if err != nil {
		log.Fatalf("Failed to initialize Firebase verifier: %v", err)
	}

	// Initialize EmailService
	emailService := utils.NewEmailService()

	// Initialize controllers
	productController := controllers.NewProductController(client)
	categoryController := controllers.NewCategoryController(client)
	cartController := controllers.NewCartController(client)
	orderController := controllers.NewOrderController(client, emailService)
	messageController := controllers.NewMessageController(client, emailService)
	subscriberController := controllers.NewSubscriberController(client, emailService)

	// Set up the router
	router := mux.NewRouter()
	routes.RegisterRoutes(router, verifier, productController, categoryController, cartController, orderController, messageController, subscriberController)

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	fmt.Printf("Server is running on port %s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, handlers.CombinedLoggingHandler(os.Stdout, cors(router))))
}
