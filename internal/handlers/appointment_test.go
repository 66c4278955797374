package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/tallermanager/workshop-backend/internal/db"
	"github.com/tallermanager/workshop-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockAppointmentCollection is a mock implementation of AppointmentCollection
type MockAppointmentCollection struct {
	mock.Mock
}

func (m *MockAppointmentCollection) InsertAppointment(ctx context.Context, appointment models.Appointment) (*models.Appointment, error) {
	args := m.Called(ctx, appointment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *MockAppointmentCollection) FindAppointments(ctx context.Context, filter bson.M) ([]models.Appointment, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentCollection) FindAppointmentsDetailed(ctx context.Context) ([]models.AppointmentDetail, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AppointmentDetail), args.Error(1)
}

func (m *MockAppointmentCollection) FindAppointmentByID(ctx context.Context, id string) (*models.Appointment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *MockAppointmentCollection) FindAppointmentDetailByID(ctx context.Context, id string) (*models.AppointmentDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AppointmentDetail), args.Error(1)
}

func (m *MockAppointmentCollection) UpdateAppointment(ctx context.Context, id string, upd models.AppointmentUpdate) (*models.Appointment, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *MockAppointmentCollection) DeleteAppointment(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAppointmentCollection) FindDueReminders(ctx context.Context, from, to time.Time) ([]models.Appointment, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentCollection) MarkReminderSent(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockClientCollection is a mock implementation of ClientCollection
type MockClientCollection struct {
	mock.Mock
}

func (m *MockClientCollection) InsertClient(ctx context.Context, client models.Client) (*models.Client, error) {
	args := m.Called(ctx, client)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Client), args.Error(1)
}

func (m *MockClientCollection) FindClients(ctx context.Context, filter bson.M) ([]models.Client, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Client), args.Error(1)
}

func (m *MockClientCollection) FindClientByID(ctx context.Context, id string) (*models.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Client), args.Error(1)
}

func (m *MockClientCollection) UpdateClient(ctx context.Context, id string, upd models.ClientUpdate) (*models.Client, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Client), args.Error(1)
}

func (m *MockClientCollection) DeleteClient(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockClientCollection) AppendServiceHistory(ctx context.Context, id primitive.ObjectID, appointmentID primitive.ObjectID) error {
	args := m.Called(ctx, id, appointmentID)
	return args.Error(0)
}

func newAppointmentTestRouter(appointments *MockAppointmentCollection, clients *MockClientCollection) http.Handler {
	handler := NewAppointmentHandler(db.AppointmentCollection(appointments), db.ClientCollection(clients))
	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func validAppointment() models.Appointment {
	return models.Appointment{
		Client:   primitive.NewObjectID(),
		Workshop: primitive.NewObjectID(),
		Service:  primitive.NewObjectID(),
		Mechanic: primitive.NewObjectID(),
		Date:     time.Now().Add(48 * time.Hour).UTC().Truncate(time.Millisecond),
		Status:   models.AppointmentPending,
	}
}

func TestAppointmentHandler_Create(t *testing.T) {
	t.Run("successful creation appends to service history", func(t *testing.T) {
		mockAppointments := new(MockAppointmentCollection)
		mockClients := new(MockClientCollection)
		router := newAppointmentTestRouter(mockAppointments, mockClients)

		appointment := validAppointment()
		created := appointment
		created.ID = primitive.NewObjectID()

		mockAppointments.On("InsertAppointment", mock.Anything, mock.AnythingOfType("models.Appointment")).Return(&created, nil)
		mockClients.On("AppendServiceHistory", mock.Anything, appointment.Client, created.ID).Return(nil)

		body, err := json.Marshal(appointment)
		if err != nil {
			t.Fatalf("Failed to marshal appointment: %v", err)
		}
		req := httptest.NewRequest("POST", "/appointments", bytes.NewBuffer(body))
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var response models.Appointment
		err = json.Unmarshal(w.Body.Bytes(), &response)
		if err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}
		assert.Equal(t, created.ID, response.ID)
		assert.Equal(t, models.AppointmentPending, response.Status)

		mockAppointments.AssertExpectations(t)
		mockClients.AssertExpectations(t)
	})

	t.Run("history append failure does not fail the request", func(t *testing.T) {
		mockAppointments := new(MockAppointmentCollection)
		mockClients := new(MockClientCollection)
		router := newAppointmentTestRouter(mockAppointments, mockClients)

		appointment := validAppointment()
		created := appointment
		created.ID = primitive.NewObjectID()

		mockAppointments.On("InsertAppointment", mock.Anything, mock.AnythingOfType("models.Appointment")).Return(&created, nil)
		mockClients.On("AppendServiceHistory", mock.Anything, appointment.Client, created.ID).Return(db.ErrNotFound)

		body, err := json.Marshal(appointment)
		if err != nil {
			t.Fatalf("Failed to marshal appointment: %v", err)
		}
		req := httptest.NewRequest("POST", "/appointments", bytes.NewBuffer(body))
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		mockAppointments.AssertExpectations(t)
		mockClients.AssertExpectations(t)
	})

	t.Run("missing required fields", func(t *testing.T) {
		mockAppointments := new(MockAppointmentCollection)
		mockClients := new(MockClientCollection)
		router := newAppointmentTestRouter(mockAppointments, mockClients)

		req := httptest.NewRequest("POST", "/appointments", bytes.NewBufferString(`{"notes":"no references"}`))
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockAppointments.AssertNotCalled(t, "InsertAppointment", mock.Anything, mock.Anything)
	})

	t.Run("malformed body", func(t *testing.T) {
		mockAppointments := new(MockAppointmentCollection)
		mockClients := new(MockClientCollection)
		router := newAppointmentTestRouter(mockAppointments, mockClients)

		req := httptest.NewRequest("POST", "/appointments", bytes.NewBufferString(`{not json`))
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid JSON")
	})
}

func TestAppointmentHandler_List(t *testing.T) {
	mockAppointments := new(MockAppointmentCollection)
	mockClients := new(MockClientCollection)
	router := newAppointmentTestRouter(mockAppointments, mockClients)

	details := []models.AppointmentDetail{
		{
			ID:       primitive.NewObjectID(),
			Client:   models.Client{ID: primitive.NewObjectID(), Name: "Juan Pérez"},
			Workshop: models.Workshop{ID: primitive.NewObjectID(), Name: "Taller Central"},
			Service:  models.Service{ID: primitive.NewObjectID(), Name: "Cambio de aceite"},
			Mechanic: models.User{ID: primitive.NewObjectID(), Name: "Pedro Gómez", Role: models.RoleMechanic},
			Status:   models.AppointmentConfirmed,
		},
	}
	mockAppointments.On("FindAppointmentsDetailed", mock.Anything).Return(details, nil)

	req := httptest.NewRequest("GET", "/appointments", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []map[string]any
	err := json.Unmarshal(w.Body.Bytes(), &response)
	if err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	assert.Len(t, response, 1)

	// References come back as embedded records, not bare ids
	client, ok := response[0]["client"].(map[string]any)
	assert.True(t, ok)
	assert.Equal(t, "Juan Pérez", client["name"])

	mockAppointments.AssertExpectations(t)
}

func TestAppointmentHandler_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		mockAppointments := new(MockAppointmentCollection)
		mockClients := new(MockClientCollection)
		router := newAppointmentTestRouter(mockAppointments, mockClients)

		detail := &models.AppointmentDetail{
			ID:     primitive.NewObjectID(),
			Client: models.Client{ID: primitive.NewObjectID(), Name: "Juan Pérez"},
			Status: models.AppointmentPending,
		}
		mockAppointments.On("FindAppointmentDetailByID", mock.Anything, detail.ID.Hex()).Return(detail, nil)

		req := httptest.NewRequest("GET", "/appointments/"+detail.ID.Hex(), nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockAppointments.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mockAppointments := new(MockAppointmentCollection)
		mockClients := new(MockClientCollection)
		router := newAppointmentTestRouter(mockAppointments, mockClients)

		id := primitive.NewObjectID().Hex()
		mockAppointments.On("FindAppointmentDetailByID", mock.Anything, id).Return(nil, db.ErrNotFound)

		req := httptest.NewRequest("GET", "/appointments/"+id, nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Appointment not found")
		mockAppointments.AssertExpectations(t)
	})
}

func TestAppointmentHandler_Update(t *testing.T) {
	t.Run("partial update", func(t *testing.T) {
		mockAppointments := new(MockAppointmentCollection)
		mockClients := new(MockClientCollection)
		router := newAppointmentTestRouter(mockAppointments, mockClients)

		id := primitive.NewObjectID()
		updated := validAppointment()
		updated.ID = id
		updated.Status = models.AppointmentConfirmed

		mockAppointments.On("UpdateAppointment", mock.Anything, id.Hex(), mock.MatchedBy(func(upd models.AppointmentUpdate) bool {
			return upd.Status != nil && *upd.Status == models.AppointmentConfirmed && upd.Date == nil
		})).Return(&updated, nil)

		body := bytes.NewBufferString(`{"status":"confirmed"}`)
		req := httptest.NewRequest("PATCH", "/appointments/"+id.Hex(), body)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockAppointments.AssertExpectations(t)
	})

	t.Run("invalid status rejected", func(t *testing.T) {
		mockAppointments := new(MockAppointmentCollection)
		mockClients := new(MockClientCollection)
		router := newAppointmentTestRouter(mockAppointments, mockClients)

		id := primitive.NewObjectID().Hex()
		body := bytes.NewBufferString(`{"status":"postponed"}`)
		req := httptest.NewRequest("PUT", "/appointments/"+id, body)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid status")
		mockAppointments.AssertNotCalled(t, "UpdateAppointment", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("empty partial update returns record unchanged", func(t *testing.T) {
		mockAppointments := new(MockAppointmentCollection)
		mockClients := new(MockClientCollection)
		router := newAppointmentTestRouter(mockAppointments, mockClients)

		id := primitive.NewObjectID()
		existing := validAppointment()
		existing.ID = id

		mockAppointments.On("UpdateAppointment", mock.Anything, id.Hex(), models.AppointmentUpdate{}).Return(&existing, nil)

		body := bytes.NewBufferString(`{}`)
		req := httptest.NewRequest("PUT", "/appointments/"+id.Hex(), body)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response models.Appointment
		err := json.Unmarshal(w.Body.Bytes(), &response)
		if err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}
		assert.Equal(t, existing.ID, response.ID)
		assert.Equal(t, existing.Status, response.Status)
		mockAppointments.AssertExpectations(t)
	})
}

func TestAppointmentHandler_Delete(t *testing.T) {
	t.Run("successful delete", func(t *testing.T) {
		mockAppointments := new(MockAppointmentCollection)
		mockClients := new(MockClientCollection)
		router := newAppointmentTestRouter(mockAppointments, mockClients)

		id := primitive.NewObjectID().Hex()
		mockAppointments.On("DeleteAppointment", mock.Anything, id).Return(nil)

		req := httptest.NewRequest("DELETE", "/appointments/"+id, nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Appointment deleted successfully")
		mockAppointments.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mockAppointments := new(MockAppointmentCollection)
		mockClients := new(MockClientCollection)
		router := newAppointmentTestRouter(mockAppointments, mockClients)

		id := primitive.NewObjectID().Hex()
		mockAppointments.On("DeleteAppointment", mock.Anything, id).Return(db.ErrNotFound)

		req := httptest.NewRequest("DELETE", "/appointments/"+id, nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		mockAppointments.AssertExpectations(t)
	})
}
