package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/joykbiswas/cupcake-backend/internal/domain"
)

type userServiceMock struct {
	users  []bson.M
	result *domain.UserCreateResult
	err    error
}

func (m *userServiceMock) List(context.Context) ([]bson.M, error) {
	return m.users, m.err
}

func (m *userServiceMock) Create(context.Context, bson.M) (*domain.UserCreateResult, error) {
	return m.result, m.err
}

func TestListUsers(t *testing.T) {
	handler := NewUserHandler(&userServiceMock{users: []bson.M{
		{"email": "a@x.com", "name": "Ada"},
		{"email": "b@x.com", "name": "Grace"},
	}}, 5*time.Second)

	recorder := httptest.NewRecorder()
	handler.List(recorder, httptest.NewRequest("GET", "/users", nil))

	if recorder.Code != http.StatusOK {
		t.Errorf("Expected status code %d, got %d", http.StatusOK, recorder.Code)
	}

	var users []map[string]any
	if err := json.NewDecoder(recorder.Body).Decode(&users); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(users) != 2 {
		t.Errorf("Expected 2 users, got %d", len(users))
	}
}

func TestCreateUser_New(t *testing.T) {
	handler := NewUserHandler(&userServiceMock{
		result: &domain.UserCreateResult{Acknowledged: true, InsertedID: "u1"},
	}, 5*time.Second)

	body := `{"email":"a@x.com","name":"Ada"}`
	recorder := httptest.NewRecorder()
	handler.Create(recorder, httptest.NewRequest("POST", "/users", strings.NewReader(body)))

	if recorder.Code != http.StatusOK {
		t.Errorf("Expected status code %d, got %d", http.StatusOK, recorder.Code)
	}

	var result domain.UserCreateResult
	if err := json.NewDecoder(recorder.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if result.InsertedID != "u1" {
		t.Errorf("Expected insertedId 'u1', got '%v'", result.InsertedID)
	}
}

func TestCreateUser_AlreadyExists(t *testing.T) {
	handler := NewUserHandler(&userServiceMock{
		result: &domain.UserCreateResult{Message: "user already exists", InsertedID: nil},
	}, 5*time.Second)

	body := `{"email":"a@x.com"}`
	recorder := httptest.NewRecorder()
	handler.Create(recorder, httptest.NewRequest("POST", "/users", strings.NewReader(body)))

	if recorder.Code != http.StatusOK {
		t.Errorf("Expected status code %d, got %d", http.StatusOK, recorder.Code)
	}

	var result map[string]any
	if err := json.NewDecoder(recorder.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if result["message"] != "user already exists" {
		t.Errorf("Expected message 'user already exists', got '%v'", result["message"])
	}
	if result["insertedId"] != nil {
		t.Errorf("Expected null insertedId, got '%v'", result["insertedId"])
	}
}

func TestCreateUser_InvalidBody(t *testing.T) {
	handler := NewUserHandler(&userServiceMock{}, 5*time.Second)

	recorder := httptest.NewRecorder()
	handler.Create(recorder, httptest.NewRequest("POST", "/users", strings.NewReader("{bad")))

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("Expected status code %d, got %d", http.StatusBadRequest, recorder.Code)
	}
}
