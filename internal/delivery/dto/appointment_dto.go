package dto

import (
	"time"

	"medrep-visits/internal/domain/entity"
)

// Request DTOs

type CreateAppointmentRequest struct {
	RepName    string `json:"repName" validate:"required"`
	RepCompany string `json:"repCompany" validate:"required"`
	RepPhone   string `json:"repPhone" validate:"required"`
	RepEmail   string `json:"repEmail" validate:"required"`
	DoctorID   string `json:"doctorId" validate:"required"`
	Date       string `json:"date" validate:"required"`
	Time       string `json:"time" validate:"required"`
	Purpose    string `json:"purpose" validate:"required"`
	Notes      string `json:"notes" validate:"omitempty"`
}

// UpdateAppointmentRequest is a partial update; absent fields are left
// untouched. Fields that are required at booking cannot be blanked.
type UpdateAppointmentRequest struct {
	RepName    *string `json:"repName" validate:"omitempty,min=1"`
	RepCompany *string `json:"repCompany" validate:"omitempty,min=1"`
	RepPhone   *string `json:"repPhone" validate:"omitempty,min=1"`
	RepEmail   *string `json:"repEmail" validate:"omitempty,min=1"`
	DoctorID   *string `json:"doctorId" validate:"omitempty,min=1"`
	Date       *string `json:"date" validate:"omitempty,min=1"`
	Time       *string `json:"time" validate:"omitempty,min=1"`
	Purpose    *string `json:"purpose" validate:"omitempty,min=1"`
	Notes      *string `json:"notes" validate:"omitempty"`
	Status     *string `json:"status" validate:"omitempty,oneof=scheduled completed cancelled"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=scheduled completed cancelled"`
}

// Response DTOs

type AppointmentDoctor struct {
	Known     bool   `json:"known"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	Hospital  string `json:"hospital"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

type AppointmentResponse struct {
	ID          string            `json:"id"`
	RepName     string            `json:"repName"`
	RepCompany  string            `json:"repCompany"`
	RepPhone    string            `json:"repPhone"`
	RepEmail    string            `json:"repEmail"`
	DoctorID    string            `json:"doctorId"`
	DoctorName  string            `json:"doctorName"`
	Date        string            `json:"date"`
	Time        string            `json:"time"`
	DisplayDate string            `json:"displayDate"`
	DisplayTime string            `json:"displayTime"`
	Purpose     string            `json:"purpose"`
	Notes       string            `json:"notes"`
	Status      string            `json:"status"`
	CreatedAt   time.Time         `json:"createdAt"`
	Doctor      AppointmentDoctor `json:"doctor"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

type HistoryResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
	Filter       string                `json:"filter"`
	Counts       entity.StatusCounts   `json:"counts"`
}

type DashboardResponse struct {
	entity.DashboardStats
	Next *AppointmentResponse `json:"next,omitempty"`
}

type DeleteAppointmentResponse struct {
	Removed int `json:"removed"`
}
