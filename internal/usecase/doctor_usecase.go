package usecase

import (
	"context"
	"errors"

	"medrep-visits/internal/converter"
	"medrep-visits/internal/delivery/dto"
	"medrep-visits/internal/domain/entity"
	"medrep-visits/internal/domain/repository"
	"medrep-visits/internal/query"

	"github.com/sirupsen/logrus"
)

var (
	ErrDoctorNotFound = errors.New("doctor not found")
)

type DoctorUsecase interface {
	ListDoctors(ctx context.Context) (*dto.DoctorListResponse, error)
	GetDoctor(ctx context.Context, id string) (*dto.DoctorResponse, error)
	SearchDoctors(ctx context.Context, filter entity.DoctorFilter) (*dto.DoctorListResponse, error)
	ListSpecialties(ctx context.Context) (*dto.SpecialtyListResponse, error)
}

type doctorUsecase struct {
	log        *logrus.Logger
	doctorRepo repository.DoctorRepository
}

func NewDoctorUsecase(log *logrus.Logger, doctorRepo repository.DoctorRepository) DoctorUsecase {
	return &doctorUsecase{
		log:        log,
		doctorRepo: doctorRepo,
	}
}

func (u *doctorUsecase) ListDoctors(ctx context.Context) (*dto.DoctorListResponse, error) {
	return u.SearchDoctors(ctx, entity.DoctorFilter{})
}

func (u *doctorUsecase) GetDoctor(ctx context.Context, id string) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", id, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) SearchDoctors(ctx context.Context, filter entity.DoctorFilter) (*dto.DoctorListResponse, error) {
	doctors, err := u.doctorRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to load doctors: %+v", err)
		return nil, err
	}

	matched := query.SearchDoctors(doctors, filter)
	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(matched),
		Total:   len(matched),
		Catalog: len(doctors),
	}, nil
}

func (u *doctorUsecase) ListSpecialties(ctx context.Context) (*dto.SpecialtyListResponse, error) {
	doctors, err := u.doctorRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to load doctors: %+v", err)
		return nil, err
	}

	return &dto.SpecialtyListResponse{Specialties: query.Specialties(doctors)}, nil
}
