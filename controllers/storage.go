package controllers

import (
	"context"
	"net/http"
	"strconv"

	"galaxi-backend/middleware"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection is the subset of *mongo.Collection the controllers use.
// Each controller receives its collections at construction; tests
// substitute an in-memory implementation.
type Collection interface {
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error)
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult
	UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error)
	DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (*mongo.DeleteResult, error)
	DeleteMany(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (*mongo.DeleteResult, error)
	CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error)
}

// requireOwner enforces the ownership check: the verified caller identity
// must match the requested email exactly. Writes the error response and
// returns false when the request must not proceed.
func requireOwner(w http.ResponseWriter, r *http.Request, email string) bool {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return false
	}
	if identity.Email != email {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return false
	}
	return true
}

// parsePageLimit reads the page/limit query parameters, defaulting to 1/10.
// Present but non-numeric or non-positive values are an error.
func parsePageLimit(r *http.Request) (int, int, bool) {
	page, limit := 1, 10
	if v := r.URL.Query().Get("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return 0, 0, false
		}
		page = n
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return 0, 0, false
		}
		limit = n
	}
	return page, limit, true
}
