package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"galaxi-backend/auth"
	"galaxi-backend/middleware"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

func jsonRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// asUser attaches a verified identity to the request, as the auth gate
// would after token verification.
func asUser(r *http.Request, email string) *http.Request {
	identity := &auth.Identity{UID: "test-uid", Email: email}
	ctx := context.WithValue(r.Context(), middleware.IdentityContextKey, identity)
	return r.WithContext(ctx)
}

func withVars(r *http.Request, vars map[string]string) *http.Request {
	return mux.SetURLVars(r, vars)
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}
