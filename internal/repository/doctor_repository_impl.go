package repository

import (
	"context"
	"errors"

	"medrep-visits/internal/domain/entity"
	domainRepo "medrep-visits/internal/domain/repository"
	"medrep-visits/internal/infrastructure/storage"

	"github.com/sirupsen/logrus"
)

type doctorRepository struct {
	store storage.RecordStore
	log   *logrus.Logger
}

func NewDoctorRepository(store storage.RecordStore, log *logrus.Logger) domainRepo.DoctorRepository {
	return &doctorRepository{
		store: store,
		log:   log,
	}
}

// FindAll returns the stored catalog, seeding it with the sample doctors on
// first use. Without a reachable store the sample doctors are returned and
// nothing is written.
func (r *doctorRepository) FindAll(ctx context.Context) ([]entity.Doctor, error) {
	doctors, found, err := readCollection[entity.Doctor](ctx, r.store, storage.DoctorsKey)
	if err != nil {
		if errors.Is(err, storage.ErrUnavailable) {
			r.log.Debug("Record store unavailable, serving sample doctors")
			return entity.SampleDoctors(), nil
		}
		r.log.Warnf("Failed to read doctors: %+v", err)
		return nil, err
	}
	if found {
		return doctors, nil
	}

	doctors = entity.SampleDoctors()
	if err := writeCollection(ctx, r.store, storage.DoctorsKey, doctors); err != nil {
		r.log.Warnf("Failed to seed doctors: %+v", err)
		return nil, err
	}

	r.log.Infof("Doctor catalog seeded with %d doctors", len(doctors))
	return doctors, nil
}

func (r *doctorRepository) FindByID(ctx context.Context, id string) (*entity.Doctor, error) {
	doctors, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range doctors {
		if doctors[i].ID == id {
			return &doctors[i], nil
		}
	}
	return nil, nil
}
