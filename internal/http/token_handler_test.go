package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/joykbiswas/cupcake-backend/internal/auth"
)

func TestIssueToken(t *testing.T) {
	m := auth.NewManager("test-secret")
	handler := NewTokenHandler(m)

	recorder := httptest.NewRecorder()
	handler.Issue(recorder, httptest.NewRequest("POST", "/jwt", strings.NewReader(`{"email":"a@x.com"}`)))

	if recorder.Code != http.StatusOK {
		t.Errorf("Expected status code %d, got %d", http.StatusOK, recorder.Code)
	}

	var response map[string]string
	if err := json.NewDecoder(recorder.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	// The issued token must verify back to the claimed email
	claims, err := m.Verify(response["token"])
	if err != nil {
		t.Fatalf("Failed to verify issued token: %v", err)
	}
	if claims.Email != "a@x.com" {
		t.Errorf("Expected claim email 'a@x.com', got '%s'", claims.Email)
	}
}

func TestIssueToken_InvalidBody(t *testing.T) {
	handler := NewTokenHandler(auth.NewManager("test-secret"))

	recorder := httptest.NewRecorder()
	handler.Issue(recorder, httptest.NewRequest("POST", "/jwt", strings.NewReader("{bad")))

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("Expected status code %d, got %d", http.StatusBadRequest, recorder.Code)
	}
}
