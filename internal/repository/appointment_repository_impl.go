package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"medrep-visits/internal/domain/entity"
	domainRepo "medrep-visits/internal/domain/repository"
	"medrep-visits/internal/infrastructure/storage"

	"github.com/sirupsen/logrus"
)

// appointmentRepository performs a full read-modify-write of the appointment
// collection on every mutation. mu serializes mutations issued through this
// instance only; two instances sharing a store can still lose an update
// (last write wins).
type appointmentRepository struct {
	mu    sync.Mutex
	store storage.RecordStore
	log   *logrus.Logger
}

func NewAppointmentRepository(store storage.RecordStore, log *logrus.Logger) domainRepo.AppointmentRepository {
	return &appointmentRepository{
		store: store,
		log:   log,
	}
}

// FindAll returns the appointments in insertion order. A missing collection
// or an unavailable store yields an empty slice.
func (r *appointmentRepository) FindAll(ctx context.Context) ([]entity.Appointment, error) {
	appointments, err := r.load(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrUnavailable) {
			return []entity.Appointment{}, nil
		}
		return nil, err
	}
	return appointments, nil
}

// Create appends appointment to the collection. The caller assigns the ID
// and the initial status.
func (r *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	if !appointment.Status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, appointment.Status)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	appointments, err := r.load(ctx)
	if err != nil {
		return r.ignoreUnavailable(err)
	}

	for i := range appointments {
		if appointments[i].ID == appointment.ID {
			return fmt.Errorf("%w: %s", ErrDuplicateAppointment, appointment.ID)
		}
	}

	appointments = append(appointments, *appointment)
	if err := r.save(ctx, appointments); err != nil {
		return err
	}

	r.log.Debugf("Appointment %s stored, collection size %d", appointment.ID, len(appointments))
	return nil
}

// Update merges patch over the first appointment with the given id.
// An unknown id is a no-op reported as found=false.
func (r *appointmentRepository) Update(ctx context.Context, id string, patch entity.AppointmentPatch) (bool, error) {
	if patch.Status != nil && !patch.Status.IsValid() {
		return false, fmt.Errorf("%w: %q", ErrInvalidStatus, *patch.Status)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	appointments, err := r.load(ctx)
	if err != nil {
		return false, r.ignoreUnavailable(err)
	}

	index := -1
	for i := range appointments {
		if appointments[i].ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return false, nil
	}

	patch.ApplyTo(&appointments[index])
	if err := r.save(ctx, appointments); err != nil {
		return false, err
	}
	return true, nil
}

// Delete removes every appointment with the given id and returns how many
// were removed.
func (r *appointmentRepository) Delete(ctx context.Context, id string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	appointments, err := r.load(ctx)
	if err != nil {
		return 0, r.ignoreUnavailable(err)
	}

	kept := make([]entity.Appointment, 0, len(appointments))
	for _, appointment := range appointments {
		if appointment.ID != id {
			kept = append(kept, appointment)
		}
	}

	if err := r.save(ctx, kept); err != nil {
		return 0, err
	}
	return len(appointments) - len(kept), nil
}

func (r *appointmentRepository) load(ctx context.Context) ([]entity.Appointment, error) {
	appointments, _, err := readCollection[entity.Appointment](ctx, r.store, storage.AppointmentsKey)
	if err != nil {
		if !errors.Is(err, storage.ErrUnavailable) {
			r.log.Warnf("Failed to read appointments: %+v", err)
		}
		return nil, err
	}

	for i := range appointments {
		if !appointments[i].Status.IsValid() {
			err := fmt.Errorf("appointment %s has status %q: %w", appointments[i].ID, appointments[i].Status, ErrMalformedData)
			r.log.Warnf("Failed to read appointments: %+v", err)
			return nil, err
		}
	}
	return appointments, nil
}

func (r *appointmentRepository) save(ctx context.Context, appointments []entity.Appointment) error {
	if err := writeCollection(ctx, r.store, storage.AppointmentsKey, appointments); err != nil {
		if errors.Is(err, storage.ErrUnavailable) {
			return nil
		}
		r.log.Warnf("Failed to write appointments: %+v", err)
		return err
	}
	return nil
}

// ignoreUnavailable turns a missing store into a silent no-op for writes.
func (r *appointmentRepository) ignoreUnavailable(err error) error {
	if errors.Is(err, storage.ErrUnavailable) {
		r.log.Debug("Record store unavailable, appointment write skipped")
		return nil
	}
	return err
}
