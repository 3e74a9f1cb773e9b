package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/joykbiswas/cupcake-backend/internal/domain"
	"github.com/joykbiswas/cupcake-backend/internal/repository"
)

type catalogServiceMock struct {
	cakes []domain.Cake
	cake  *domain.Cake
	err   error
}

func (m *catalogServiceMock) List(context.Context) ([]domain.Cake, error) {
	return m.cakes, m.err
}

func (m *catalogServiceMock) Get(context.Context, string) (*domain.Cake, error) {
	return m.cake, m.err
}

func (m *catalogServiceMock) Insert(context.Context, *domain.Cake) (*domain.InsertAck, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.InsertAck{Acknowledged: true, InsertedID: "65a1b2c3d4e5f6a7b8c9d0e1"}, nil
}

func (m *catalogServiceMock) Update(context.Context, string, *domain.Cake) (*domain.UpdateAck, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.UpdateAck{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func (m *catalogServiceMock) Delete(context.Context, string) (*domain.DeleteAck, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.DeleteAck{Acknowledged: true, DeletedCount: 1}, nil
}

func cakeTestRouter(mock *catalogServiceMock) http.Handler {
	handler := NewCakeHandler(mock, 5*time.Second)
	r := chi.NewRouter()
	r.Get("/cake", handler.List)
	r.Post("/cake", handler.Create)
	r.Get("/cake/{id}", handler.Get)
	r.Patch("/cake/{id}", handler.Update)
	r.Delete("/cake/{id}", handler.Delete)
	return r
}

func TestListCakes(t *testing.T) {
	router := cakeTestRouter(&catalogServiceMock{cakes: []domain.Cake{
		{Name: "Chocolate Fudge", Price: 24.99},
		{Name: "Red Velvet", Price: 29.99},
	}})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("GET", "/cake", nil))

	if recorder.Code != http.StatusOK {
		t.Errorf("Expected status code %d, got %d", http.StatusOK, recorder.Code)
	}

	var cakes []domain.Cake
	if err := json.NewDecoder(recorder.Body).Decode(&cakes); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(cakes) != 2 {
		t.Errorf("Expected 2 cakes, got %d", len(cakes))
	}
	if cakes[0].Name != "Chocolate Fudge" {
		t.Errorf("Expected cake name 'Chocolate Fudge', got '%s'", cakes[0].Name)
	}
}

func TestGetCake_Found(t *testing.T) {
	router := cakeTestRouter(&catalogServiceMock{cake: &domain.Cake{Name: "Lemon Drizzle", Price: 18.50}})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("GET", "/cake/65a1b2c3d4e5f6a7b8c9d0e1", nil))

	if recorder.Code != http.StatusOK {
		t.Errorf("Expected status code %d, got %d", http.StatusOK, recorder.Code)
	}

	var cake domain.Cake
	if err := json.NewDecoder(recorder.Body).Decode(&cake); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if cake.Name != "Lemon Drizzle" {
		t.Errorf("Expected cake name 'Lemon Drizzle', got '%s'", cake.Name)
	}
}

func TestGetCake_Miss_ReturnsNullBody(t *testing.T) {
	router := cakeTestRouter(&catalogServiceMock{cake: nil})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("GET", "/cake/65a1b2c3d4e5f6a7b8c9d0e1", nil))

	// A miss is a 200 with a null body, not a 404
	if recorder.Code != http.StatusOK {
		t.Errorf("Expected status code %d, got %d", http.StatusOK, recorder.Code)
	}
	if body := strings.TrimSpace(recorder.Body.String()); body != "null" {
		t.Errorf("Expected body 'null', got '%s'", body)
	}
}

func TestGetCake_InvalidID(t *testing.T) {
	router := cakeTestRouter(&catalogServiceMock{
		err: fmt.Errorf("%w: %q", repository.ErrInvalidID, "nope"),
	})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("GET", "/cake/nope", nil))

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("Expected status code %d, got %d", http.StatusBadRequest, recorder.Code)
	}

	var response ErrorResponse
	json.NewDecoder(recorder.Body).Decode(&response)
	if response.Code != "invalid_id" {
		t.Errorf("Expected error code 'invalid_id', got '%s'", response.Code)
	}
}

func TestCreateCake(t *testing.T) {
	router := cakeTestRouter(&catalogServiceMock{})

	body := `{"name":"Banoffee","description":"banana and toffee","sizes":["6 inch"],"price":21.00,"category":"classic","tags":["banana"],"inStock":true}`
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("POST", "/cake", strings.NewReader(body)))

	if recorder.Code != http.StatusOK {
		t.Errorf("Expected status code %d, got %d", http.StatusOK, recorder.Code)
	}

	var ack domain.InsertAck
	if err := json.NewDecoder(recorder.Body).Decode(&ack); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !ack.Acknowledged {
		t.Error("Expected acknowledged insert")
	}
	if ack.InsertedID != "65a1b2c3d4e5f6a7b8c9d0e1" {
		t.Errorf("Expected insertedId '65a1b2c3d4e5f6a7b8c9d0e1', got '%v'", ack.InsertedID)
	}
}

func TestCreateCake_InvalidBody(t *testing.T) {
	router := cakeTestRouter(&catalogServiceMock{})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("POST", "/cake", strings.NewReader("{not json")))

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("Expected status code %d, got %d", http.StatusBadRequest, recorder.Code)
	}
}

func TestUpdateCake(t *testing.T) {
	router := cakeTestRouter(&catalogServiceMock{})

	body := `{"name":"Banoffee","price":22.00}`
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("PATCH", "/cake/65a1b2c3d4e5f6a7b8c9d0e1", strings.NewReader(body)))

	if recorder.Code != http.StatusOK {
		t.Errorf("Expected status code %d, got %d", http.StatusOK, recorder.Code)
	}

	var ack domain.UpdateAck
	if err := json.NewDecoder(recorder.Body).Decode(&ack); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if ack.ModifiedCount != 1 {
		t.Errorf("Expected modifiedCount 1, got %d", ack.ModifiedCount)
	}
}

func TestDeleteCake(t *testing.T) {
	router := cakeTestRouter(&catalogServiceMock{})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("DELETE", "/cake/65a1b2c3d4e5f6a7b8c9d0e1", nil))

	if recorder.Code != http.StatusOK {
		t.Errorf("Expected status code %d, got %d", http.StatusOK, recorder.Code)
	}

	var ack domain.DeleteAck
	if err := json.NewDecoder(recorder.Body).Decode(&ack); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if ack.DeletedCount != 1 {
		t.Errorf("Expected deletedCount 1, got %d", ack.DeletedCount)
	}
}
