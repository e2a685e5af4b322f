package usecase

import (
	"context"
	"testing"

	"medrep-visits/internal/delivery/dto"
	"medrep-visits/internal/domain/entity"
	"medrep-visits/internal/infrastructure/storage"
	"medrep-visits/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppointmentUsecase_BookAppointment(t *testing.T) {
	_, appointments := newUsecases(storage.NewMemoryStore(0))

	resp, err := appointments.BookAppointment(context.Background(), bookingRequest("1", "2026-10-20"))
	require.NoError(t, err)

	parsed, err := uuid.Parse(resp.ID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
	assert.Equal(t, "scheduled", resp.Status)
	assert.Equal(t, "Dr. Sarah Johnson", resp.DoctorName)
	assert.Equal(t, fixedNow, resp.CreatedAt)
	assert.Equal(t, "Tue, Oct 20, 2026", resp.DisplayDate)
	assert.Equal(t, "2:30 PM", resp.DisplayTime)
	assert.True(t, resp.Doctor.Known)
	assert.Equal(t, "City General Hospital", resp.Doctor.Hospital)
}

func TestAppointmentUsecase_BookUnknownDoctor(t *testing.T) {
	_, appointments := newUsecases(storage.NewMemoryStore(0))

	resp, err := appointments.BookAppointment(context.Background(), bookingRequest("99", "2026-10-20"))
	require.NoError(t, err)
	assert.Equal(t, "", resp.DoctorName)
	assert.False(t, resp.Doctor.Known)
	assert.Equal(t, "", resp.Doctor.Name)
}

func TestAppointmentUsecase_IDsAreUnique(t *testing.T) {
	_, appointments := newUsecases(storage.NewMemoryStore(0))
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		resp, err := appointments.BookAppointment(ctx, bookingRequest("2", "2026-10-20"))
		require.NoError(t, err)
		assert.False(t, seen[resp.ID], "duplicate id %s", resp.ID)
		seen[resp.ID] = true
	}

	list, err := appointments.ListAppointments(ctx)
	require.NoError(t, err)
	assert.Equal(t, 20, list.Total)
}

func TestAppointmentUsecase_BookThenCompleteFlow(t *testing.T) {
	_, appointments := newUsecases(storage.NewMemoryStore(0))
	ctx := context.Background()

	booked, err := appointments.BookAppointment(ctx, bookingRequest("1", "2026-11-02"))
	require.NoError(t, err)

	upcoming, err := appointments.UpcomingAppointments(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, upcoming.Total)
	assert.Equal(t, booked.ID, upcoming.Appointments[0].ID)

	completed, err := appointments.UpdateStatus(ctx, booked.ID, &dto.UpdateStatusRequest{Status: "completed"})
	require.NoError(t, err)
	assert.Equal(t, "completed", completed.Status)
	assert.Equal(t, booked.RepName, completed.RepName)
	assert.Equal(t, booked.CreatedAt, completed.CreatedAt)

	upcoming, err = appointments.UpcomingAppointments(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, upcoming.Total)

	history, err := appointments.HistoryAppointments(ctx, "completed")
	require.NoError(t, err)
	require.Equal(t, 1, history.Total)
	assert.Equal(t, booked.ID, history.Appointments[0].ID)
	assert.Equal(t, "completed", history.Filter)
	assert.Equal(t, entity.StatusCounts{Total: 1, Completed: 1}, history.Counts)
}

func TestAppointmentUsecase_HistoryRejectsUnknownFilter(t *testing.T) {
	_, appointments := newUsecases(storage.NewMemoryStore(0))

	_, err := appointments.HistoryAppointments(context.Background(), "pending")
	assert.ErrorIs(t, err, ErrInvalidStatusFilter)

	resp, err := appointments.HistoryAppointments(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "all", resp.Filter)
}

func TestAppointmentUsecase_UpdateAppointment(t *testing.T) {
	_, appointments := newUsecases(storage.NewMemoryStore(0))
	ctx := context.Background()

	booked, err := appointments.BookAppointment(ctx, bookingRequest("1", "2026-10-20"))
	require.NoError(t, err)

	doctorID := "5"
	notes := "Bring samples"
	resp, err := appointments.UpdateAppointment(ctx, booked.ID, &dto.UpdateAppointmentRequest{
		DoctorID: &doctorID,
		Notes:    &notes,
	})
	require.NoError(t, err)
	assert.Equal(t, "5", resp.DoctorID)
	assert.Equal(t, "Dr. Lisa Anderson", resp.DoctorName)
	assert.Equal(t, "Bring samples", resp.Notes)
	assert.Equal(t, "2026-10-20", resp.Date)
	assert.Equal(t, "scheduled", resp.Status)
}

func TestAppointmentUsecase_UpdateErrors(t *testing.T) {
	_, appointments := newUsecases(storage.NewMemoryStore(0))
	ctx := context.Background()

	_, err := appointments.UpdateAppointment(ctx, "missing", &dto.UpdateAppointmentRequest{})
	assert.ErrorIs(t, err, ErrEmptyUpdate)

	purpose := "Follow-up"
	_, err = appointments.UpdateAppointment(ctx, "missing", &dto.UpdateAppointmentRequest{Purpose: &purpose})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)

	_, err = appointments.UpdateStatus(ctx, "missing", &dto.UpdateStatusRequest{Status: "cancelled"})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)

	list, err := appointments.ListAppointments(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, list.Total)
}

func TestAppointmentUsecase_UpdateStatusRejectsInvalidStatus(t *testing.T) {
	_, appointments := newUsecases(storage.NewMemoryStore(0))
	ctx := context.Background()

	booked, err := appointments.BookAppointment(ctx, bookingRequest("1", "2026-10-20"))
	require.NoError(t, err)

	_, err = appointments.UpdateStatus(ctx, booked.ID, &dto.UpdateStatusRequest{Status: "archived"})
	assert.ErrorIs(t, err, repository.ErrInvalidStatus)
}

func TestAppointmentUsecase_DeleteIsIdempotent(t *testing.T) {
	_, appointments := newUsecases(storage.NewMemoryStore(0))
	ctx := context.Background()

	booked, err := appointments.BookAppointment(ctx, bookingRequest("1", "2026-10-20"))
	require.NoError(t, err)

	resp, err := appointments.DeleteAppointment(ctx, booked.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Removed)

	resp, err = appointments.DeleteAppointment(ctx, booked.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Removed)
}

func TestAppointmentUsecase_Dashboard(t *testing.T) {
	_, appointments := newUsecases(storage.NewMemoryStore(0))
	ctx := context.Background()

	first, err := appointments.BookAppointment(ctx, bookingRequest("1", "2026-10-17"))
	require.NoError(t, err)
	_, err = appointments.BookAppointment(ctx, bookingRequest("2", "2026-10-30"))
	require.NoError(t, err)
	visited, err := appointments.BookAppointment(ctx, bookingRequest("3", "2026-10-01"))
	require.NoError(t, err)
	_, err = appointments.UpdateStatus(ctx, visited.ID, &dto.UpdateStatusRequest{Status: "completed"})
	require.NoError(t, err)

	resp, err := appointments.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, resp.AppointmentsThisMonth)
	assert.Equal(t, 1, resp.DoctorsVisited)
	assert.Equal(t, 1, resp.UpcomingThisWeek)
	require.NotNil(t, resp.Next)
	assert.Equal(t, first.ID, resp.Next.ID)
}

func TestAppointmentUsecase_UnavailableStore(t *testing.T) {
	_, appointments := newUsecases(storage.NewUnavailableStore())
	ctx := context.Background()

	resp, err := appointments.BookAppointment(ctx, bookingRequest("1", "2026-10-20"))
	require.NoError(t, err)
	assert.Equal(t, "Dr. Sarah Johnson", resp.DoctorName)

	list, err := appointments.ListAppointments(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, list.Total)
}

func TestAppointmentUsecase_QuotaExceeded(t *testing.T) {
	store := storage.NewMemoryStore(4096)
	_, appointments := newUsecases(store)
	ctx := context.Background()

	var err error
	for i := 0; i < 50 && err == nil; i++ {
		_, err = appointments.BookAppointment(ctx, bookingRequest("1", "2026-10-20"))
	}
	assert.ErrorIs(t, err, storage.ErrQuotaExceeded)
}
