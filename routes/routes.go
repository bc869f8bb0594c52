package routes

import (
	"net/http"

	"galaxi-backend/auth"
	"galaxi-backend/controllers"
	"galaxi-backend/middleware"

	"github.com/gorilla/mux"
)

// route is one entry of the per-route policy table. gated routes require a
// verified bearer token before executing.
type route struct {
	method  string
	path    string
	handler http.HandlerFunc
	gated   bool
}

// RegisterRoutes sets up all the routes for the application through a
// single policy table, applying the auth gate per entry
func RegisterRoutes(
	router *mux.Router,
	verifier auth.Verifier,
	productController *controllers.ProductController,
	categoryController *controllers.CategoryController,
	cartController *controllers.CartController,
	orderController *controllers.OrderController,
	messageController *controllers.MessageController,
	subscriberController *controllers.SubscriberController,
) {
	gate := middleware.AuthGate(verifier)

	table := []route{
		// Product routes
		{"POST", "/products", productController.CreateProduct, true},
		{"GET", "/products", productController.GetMyProducts, true},
		{"GET", "/allProducts", productController.GetAllProducts, true},
		{"GET", "/product/{id}", productController.GetProductByID, false},
		{"GET", "/products/category/{id}", productController.GetProductsByCategory, false},
		{"PATCH", "/purchase/product/{id}", productController.PurchaseProduct, true},
		{"PATCH", "/update/product/{id}", productController.UpdateProduct, true},
		{"DELETE", "/products/delete/{id}", productController.DeleteProduct, true},

		// Category routes
		{"GET", "/categories", categoryController.GetCategories, false},

		// Cart routes
		{"POST", "/add-to-cart", cartController.AddToCart, true},
		{"GET", "/cart-items", cartController.GetCartItems, true},
		{"POST", "/cart-item-details-by-id", cartController.GetCartItemDetails, true},
		{"PATCH", "/cart-items/{id}", cartController.UpdateCartItemQuantity, true},
		{"DELETE", "/cart-items/{id}", cartController.DeleteCartItem, true},
		{"DELETE", "/delete-all-cart-items", cartController.DeleteAllCartItems, true},

		// Order routes
		{"POST", "/ordered/products", orderController.CreatePendingOrder, true},
		{"GET", "/ordered/products", orderController.GetOrders, true},
		{"PATCH", "/ordered/products/{id}", productController.RestockProduct, true},
		{"DELETE", "/ordered/product/{id}", orderController.DeletePendingOrder, true},
		{"POST", "/create-confirm-order", orderController.ConfirmOrder, true},
		{"GET", "/my-ordered-items", orderController.GetMyOrderedItems, true},
		{"DELETE", "/delete-my-orders", orderController.DeleteConfirmedOrder, true},
		{"GET", "/track-order", orderController.TrackOrder, true},

		// Message and subscriber routes
		{"POST", "/send-message", messageController.SendMessage, false},
		{"POST", "/subscribe", subscriberController.Subscribe, false},

		// Liveness
		{"GET", "/", liveness, false},
	}

	for _, rt := range table {
		var handler http.Handler = rt.handler
		if rt.gated {
			handler = gate(handler)
		}
		router.Handle(rt.path, handler).Methods(rt.method)
	}
}

func liveness(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("Galaxi server is running"))
}
