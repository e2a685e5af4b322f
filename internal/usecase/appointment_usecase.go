package usecase

import (
	"context"
	"errors"
	"time"

	"medrep-visits/internal/converter"
	"medrep-visits/internal/delivery/dto"
	"medrep-visits/internal/domain/entity"
	"medrep-visits/internal/domain/repository"
	"medrep-visits/internal/query"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrInvalidStatusFilter = errors.New("invalid status filter")
	ErrEmptyUpdate         = errors.New("no fields to update")
)

type AppointmentUsecase interface {
	BookAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	ListAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
	UpcomingAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
	HistoryAppointments(ctx context.Context, status string) (*dto.HistoryResponse, error)
	UpdateAppointment(ctx context.Context, id string, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	UpdateStatus(ctx context.Context, id string, req *dto.UpdateStatusRequest) (*dto.AppointmentResponse, error)
	DeleteAppointment(ctx context.Context, id string) (*dto.DeleteAppointmentResponse, error)
	Dashboard(ctx context.Context) (*dto.DashboardResponse, error)
}

type appointmentUsecase struct {
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	doctorRepo      repository.DoctorRepository
	now             func() time.Time
}

// NewAppointmentUsecase wires the appointment flows. A nil clock defaults to
// time.Now; "today" is the clock's calendar day in the clock's location.
func NewAppointmentUsecase(
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	doctorRepo repository.DoctorRepository,
	clock func() time.Time,
) AppointmentUsecase {
	if clock == nil {
		clock = time.Now
	}
	return &appointmentUsecase{
		log:             log,
		appointmentRepo: appointmentRepo,
		doctorRepo:      doctorRepo,
		now:             clock,
	}
}

func (u *appointmentUsecase) BookAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	doctors, err := u.doctorRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to load doctors: %+v", err)
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		u.log.Warnf("Failed to generate appointment id: %+v", err)
		return nil, err
	}

	appointment := converter.CreateRequestToAppointment(req)
	appointment.ID = id.String()
	appointment.Status = entity.AppointmentStatusScheduled
	appointment.CreatedAt = u.now().UTC()
	appointment.DoctorName = query.ResolveDoctor(doctors, req.DoctorID).Name

	if err := u.appointmentRepo.Create(ctx, appointment); err != nil {
		u.log.Warnf("Failed to book appointment: %+v", err)
		return nil, err
	}

	u.log.WithFields(logrus.Fields{
		"appointment_id": appointment.ID,
		"doctor_id":      appointment.DoctorID,
		"date":           appointment.Date,
	}).Info("Appointment booked")

	return converter.AppointmentToResponse(appointment, doctors), nil
}

func (u *appointmentUsecase) ListAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	appointments, doctors, err := u.load(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments, doctors),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) UpcomingAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	appointments, doctors, err := u.load(ctx)
	if err != nil {
		return nil, err
	}

	upcoming := query.Upcoming(appointments, u.now())
	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(upcoming, doctors),
		Total:        len(upcoming),
	}, nil
}

func (u *appointmentUsecase) HistoryAppointments(ctx context.Context, status string) (*dto.HistoryResponse, error) {
	filter, err := entity.ParseStatusFilter(status)
	if err != nil {
		return nil, ErrInvalidStatusFilter
	}

	appointments, doctors, err := u.load(ctx)
	if err != nil {
		return nil, err
	}

	history := query.History(appointments, filter)
	return &dto.HistoryResponse{
		Appointments: converter.AppointmentsToResponses(history, doctors),
		Total:        len(history),
		Filter:       filter.String(),
		Counts:       query.CountByStatus(appointments),
	}, nil
}

func (u *appointmentUsecase) UpdateAppointment(ctx context.Context, id string, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	patch := converter.UpdateRequestToPatch(req)
	if patch.IsEmpty() {
		return nil, ErrEmptyUpdate
	}

	// A new doctor gets a fresh name snapshot.
	if patch.DoctorID != nil {
		doctors, err := u.doctorRepo.FindAll(ctx)
		if err != nil {
			u.log.Warnf("Failed to load doctors: %+v", err)
			return nil, err
		}
		name := query.ResolveDoctor(doctors, *patch.DoctorID).Name
		patch.DoctorName = &name
	}

	return u.applyPatch(ctx, id, patch)
}

func (u *appointmentUsecase) UpdateStatus(ctx context.Context, id string, req *dto.UpdateStatusRequest) (*dto.AppointmentResponse, error) {
	return u.applyPatch(ctx, id, entity.StatusPatch(entity.AppointmentStatus(req.Status)))
}

func (u *appointmentUsecase) DeleteAppointment(ctx context.Context, id string) (*dto.DeleteAppointmentResponse, error) {
	removed, err := u.appointmentRepo.Delete(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to delete appointment %s: %+v", id, err)
		return nil, err
	}
	if removed == 0 {
		u.log.Debugf("Appointment %s already absent", id)
	}

	return &dto.DeleteAppointmentResponse{Removed: removed}, nil
}

func (u *appointmentUsecase) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	appointments, doctors, err := u.load(ctx)
	if err != nil {
		return nil, err
	}

	now := u.now()
	resp := &dto.DashboardResponse{DashboardStats: query.Dashboard(appointments, now)}
	if upcoming := query.Upcoming(appointments, now); len(upcoming) > 0 {
		resp.Next = converter.AppointmentToResponse(&upcoming[0], doctors)
	}
	return resp, nil
}

func (u *appointmentUsecase) applyPatch(ctx context.Context, id string, patch entity.AppointmentPatch) (*dto.AppointmentResponse, error) {
	found, err := u.appointmentRepo.Update(ctx, id, patch)
	if err != nil {
		u.log.Warnf("Failed to update appointment %s: %+v", id, err)
		return nil, err
	}
	if !found {
		return nil, ErrAppointmentNotFound
	}

	appointments, doctors, err := u.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range appointments {
		if appointments[i].ID == id {
			return converter.AppointmentToResponse(&appointments[i], doctors), nil
		}
	}

	// Removed by another writer between the update and the read back.
	return nil, ErrAppointmentNotFound
}

func (u *appointmentUsecase) load(ctx context.Context) ([]entity.Appointment, []entity.Doctor, error) {
	appointments, err := u.appointmentRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to load appointments: %+v", err)
		return nil, nil, err
	}

	doctors, err := u.doctorRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to load doctors: %+v", err)
		return nil, nil, err
	}
	return appointments, doctors, nil
}
