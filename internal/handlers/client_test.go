package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/tallermanager/workshop-backend/internal/db"
	"github.com/tallermanager/workshop-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newClientTestRouter(mockClients *MockClientCollection) http.Handler {
	handler := NewClientHandler(db.ClientCollection(mockClients))
	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func TestClientHandler_Create(t *testing.T) {
	t.Run("successful creation", func(t *testing.T) {
		mockClients := new(MockClientCollection)
		router := newClientTestRouter(mockClients)

		created := &models.Client{
			ID:    primitive.NewObjectID(),
			Name:  "Juan Pérez",
			Email: "juan@example.com",
			Phone: "555-6789",
		}
		mockClients.On("InsertClient", mock.Anything, mock.AnythingOfType("models.Client")).Return(created, nil)

		body := bytes.NewBufferString(`{"name":"Juan Pérez","email":"juan@example.com","phone":"555-6789"}`)
		req := httptest.NewRequest("POST", "/clients", body)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var response models.Client
		err := json.Unmarshal(w.Body.Bytes(), &response)
		if err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}
		assert.Equal(t, created.ID, response.ID)
		mockClients.AssertExpectations(t)
	})

	t.Run("invalid email rejected", func(t *testing.T) {
		mockClients := new(MockClientCollection)
		router := newClientTestRouter(mockClients)

		body := bytes.NewBufferString(`{"name":"Juan","email":"not-an-email","phone":"555-6789"}`)
		req := httptest.NewRequest("POST", "/clients", body)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockClients.AssertNotCalled(t, "InsertClient", mock.Anything, mock.Anything)
	})
}

func TestClientHandler_List(t *testing.T) {
	mockClients := new(MockClientCollection)
	router := newClientTestRouter(mockClients)

	clients := []models.Client{
		{ID: primitive.NewObjectID(), Name: "Juan Pérez", Email: "juan@example.com", Phone: "555-6789"},
	}
	mockClients.On("FindClients", mock.Anything, bson.M(nil)).Return(clients, nil)

	req := httptest.NewRequest("GET", "/clients", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []models.Client
	err := json.Unmarshal(w.Body.Bytes(), &response)
	if err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	assert.Len(t, response, 1)
	mockClients.AssertExpectations(t)
}

func TestClientHandler_Update(t *testing.T) {
	mockClients := new(MockClientCollection)
	router := newClientTestRouter(mockClients)

	id := primitive.NewObjectID()
	updated := &models.Client{ID: id, Name: "Renamed", Email: "juan@example.com", Phone: "555-6789"}

	mockClients.On("UpdateClient", mock.Anything, id.Hex(), mock.MatchedBy(func(upd models.ClientUpdate) bool {
		return upd.Name != nil && *upd.Name == "Renamed" && upd.Email == nil && upd.Phone == nil
	})).Return(updated, nil)

	body := bytes.NewBufferString(`{"name":"Renamed"}`)
	req := httptest.NewRequest("PATCH", "/clients/"+id.Hex(), body)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockClients.AssertExpectations(t)
}

func TestClientHandler_Delete(t *testing.T) {
	mockClients := new(MockClientCollection)
	router := newClientTestRouter(mockClients)

	id := primitive.NewObjectID().Hex()
	mockClients.On("DeleteClient", mock.Anything, id).Return(nil)

	req := httptest.NewRequest("DELETE", "/clients/"+id, nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Client deleted successfully")
	mockClients.AssertExpectations(t)
}
