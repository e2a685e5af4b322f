package repository

import (
	"context"

	"medrep-visits/internal/domain/entity"
)

// DoctorRepository is the doctor catalog. It seeds itself on first access.
type DoctorRepository interface {
	FindAll(ctx context.Context) ([]entity.Doctor, error)
	FindByID(ctx context.Context, id string) (*entity.Doctor, error)
}
