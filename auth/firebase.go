package auth

import (
	"context"
	"errors"
	"os"

	firebase "firebase.google.com/go"
	fbauth "firebase.google.com/go/auth"
	"google.golang.org/api/option"
)

// Identity is the verified caller identity attached to gated requests.
type Identity struct {
	UID   string
	Email string
}

// Verifier checks a bearer token against the identity provider.
type Verifier interface {
	Verify(ctx context.Context, idToken string) (*Identity, error)
}

// FirebaseVerifier verifies Firebase ID tokens through the Admin SDK.
type FirebaseVerifier struct {
	client    *fbauth.Client
	projectID string
}

// NewFirebaseVerifier initializes the Firebase app from the credentials
// JSON and project id in the environment.
func NewFirebaseVerifier(ctx context.Context) (*FirebaseVerifier, error) {
	credsJSON := os.Getenv("FIREBASE_CREDENTIALS_JSON")
	if credsJSON == "" {
		return nil, errors.New("FIREBASE_CREDENTIALS_JSON is not set")
	}

	projectID := os.Getenv("FIREBASE_PROJECT_ID")
	if projectID == "" {
		return nil, errors.New("FIREBASE_PROJECT_ID is not set")
	}

	opt := option.WithCredentialsJSON([]byte(credsJSON))
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opt)
	if err != nil {
		return nil, err
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, err
	}

	return &FirebaseVerifier{client: client, projectID: projectID}, nil
}

// Verify submits the token to Firebase and extracts the caller identity.
func (v *FirebaseVerifier) Verify(ctx context.Context, idToken string) (*Identity, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, err
	}

	if token.Audience != v.projectID {
		return nil, errors.New("token audience mismatch")
	}

	email, ok := token.Claims["email"].(string)
	if !ok || email == "" {
		return nil, errors.New("email claim missing from token")
	}

	return &Identity{UID: token.UID, Email: email}, nil
}
