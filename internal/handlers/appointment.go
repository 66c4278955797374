package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"
	"github.com/tallermanager/workshop-backend/internal/db"
	"github.com/tallermanager/workshop-backend/internal/models"
)

// AppointmentHandler handles appointment requests. List and single reads
// return the populated form with full referenced records embedded.
type AppointmentHandler struct {
	appointments db.AppointmentCollection
	clients      db.ClientCollection
}

// NewAppointmentHandler creates a new appointment handler
func NewAppointmentHandler(appointments db.AppointmentCollection, clients db.ClientCollection) *AppointmentHandler {
	return &AppointmentHandler{
		appointments: appointments,
		clients:      clients,
	}
}

// RegisterRoutes mounts the appointment endpoints.
func (h *AppointmentHandler) RegisterRoutes(r chi.Router) {
	r.Post("/appointments", h.Create)
	r.Get("/appointments", h.List)
	r.Get("/appointments/{id}", h.Get)
	r.Put("/appointments/{id}", h.Update)
	r.Patch("/appointments/{id}", h.Update)
	r.Delete("/appointments/{id}", h.Delete)
}

// Create inserts a new appointment and appends it to the client's service
// history. The two writes are independent; a failed history append is
// logged but does not roll back the appointment.
func (h *AppointmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var appointment models.Appointment
	if !decodeBody(w, r, &appointment) {
		return
	}
	if !validateStruct(w, &appointment) {
		return
	}

	created, err := h.appointments.InsertAppointment(r.Context(), appointment)
	if err != nil {
		log.WithError(err).Error("failed to create appointment")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if err := h.clients.AppendServiceHistory(r.Context(), created.Client, created.ID); err != nil {
		log.WithError(err).WithField("client", created.Client.Hex()).
			Warn("failed to append appointment to client service history")
	}

	writeJSON(w, http.StatusCreated, created)
}

// List returns all appointments with their client/workshop/service/
// mechanic references resolved.
func (h *AppointmentHandler) List(w http.ResponseWriter, r *http.Request) {
	details, err := h.appointments.FindAppointmentsDetailed(r.Context())
	if err != nil {
		log.WithError(err).Error("failed to list appointments")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, details)
}

// Get returns a single appointment by id, populated.
func (h *AppointmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	detail, err := h.appointments.FindAppointmentDetailByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		translateError(w, err, "Appointment not found")
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

// Update merges the supplied fields into an appointment. Status
// transitions are not constrained.
func (h *AppointmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	var upd models.AppointmentUpdate
	if !decodeBody(w, r, &upd) {
		return
	}
	if upd.Status != nil && !models.IsValidAppointmentStatus(*upd.Status) {
		writeError(w, http.StatusBadRequest, "Invalid status")
		return
	}

	appointment, err := h.appointments.UpdateAppointment(r.Context(), chi.URLParam(r, "id"), upd)
	if err != nil {
		translateError(w, err, "Appointment not found")
		return
	}
	writeJSON(w, http.StatusOK, appointment)
}

// Delete removes an appointment by id. Client service history is not
// cascaded; the dangling reference is an accepted gap.
func (h *AppointmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.appointments.DeleteAppointment(r.Context(), chi.URLParam(r, "id")); err != nil {
		translateError(w, err, "Appointment not found")
		return
	}
	writeMessage(w, http.StatusOK, "Appointment deleted successfully")
}
