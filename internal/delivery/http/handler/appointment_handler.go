package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"medrep-visits/internal/delivery/dto"
	"medrep-visits/internal/repository"
	"medrep-visits/internal/usecase"
	"medrep-visits/pkg/response"
	"medrep-visits/pkg/validator"

	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.BookAppointment(r.Context(), &req)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateAppointment) {
			response.Error(w, http.StatusConflict, "Appointment already exists", nil)
			return
		}
		writeStoreError(w, err, "Failed to book appointment")
		return
	}

	response.Success(w, http.StatusCreated, "Appointment booked successfully", appointment)
}

func (h *AppointmentHandler) GetAllAppointments(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentUsecase.ListAppointments(r.Context())
	if err != nil {
		writeStoreError(w, err, "Failed to get appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

func (h *AppointmentHandler) GetUpcomingAppointments(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentUsecase.UpcomingAppointments(r.Context())
	if err != nil {
		writeStoreError(w, err, "Failed to get upcoming appointments")
		return
	}

	response.Success(w, http.StatusOK, "Upcoming appointments retrieved successfully", appointments)
}

func (h *AppointmentHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	history, err := h.appointmentUsecase.HistoryAppointments(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		if err == usecase.ErrInvalidStatusFilter {
			response.ValidationError(w, map[string]string{
				"status": "status must be one of: all, scheduled, completed, cancelled",
			})
			return
		}
		writeStoreError(w, err, "Failed to get appointment history")
		return
	}

	response.Success(w, http.StatusOK, "Appointment history retrieved successfully", history)
}

func (h *AppointmentHandler) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req dto.UpdateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.UpdateAppointment(r.Context(), vars["id"], &req)
	if err != nil {
		h.writeUpdateError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Appointment updated successfully", appointment)
}

func (h *AppointmentHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req dto.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.UpdateStatus(r.Context(), vars["id"], &req)
	if err != nil {
		h.writeUpdateError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Appointment status updated successfully", appointment)
}

// DeleteAppointment succeeds whether or not the appointment existed.
func (h *AppointmentHandler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	result, err := h.appointmentUsecase.DeleteAppointment(r.Context(), vars["id"])
	if err != nil {
		writeStoreError(w, err, "Failed to delete appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment deleted successfully", result)
}

func (h *AppointmentHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.appointmentUsecase.Dashboard(r.Context())
	if err != nil {
		writeStoreError(w, err, "Failed to get dashboard")
		return
	}

	response.Success(w, http.StatusOK, "Dashboard retrieved successfully", dashboard)
}

func (h *AppointmentHandler) writeUpdateError(w http.ResponseWriter, err error) {
	switch {
	case err == usecase.ErrAppointmentNotFound:
		response.NotFound(w, "Appointment not found")
	case err == usecase.ErrEmptyUpdate:
		response.BadRequest(w, "No fields to update")
	case errors.Is(err, repository.ErrInvalidStatus):
		response.ValidationError(w, map[string]string{"status": "status is invalid"})
	default:
		writeStoreError(w, err, "Failed to update appointment")
	}
}
