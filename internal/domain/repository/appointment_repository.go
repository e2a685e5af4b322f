package repository

import (
	"context"

	"medrep-visits/internal/domain/entity"
)

// AppointmentRepository is the appointment ledger. Every mutation rewrites
// the whole collection.
type AppointmentRepository interface {
	FindAll(ctx context.Context) ([]entity.Appointment, error)
	Create(ctx context.Context, appointment *entity.Appointment) error
	Update(ctx context.Context, id string, patch entity.AppointmentPatch) (bool, error)
	Delete(ctx context.Context, id string) (int, error)
}
