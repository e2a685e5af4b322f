package usecase

import (
	"time"

	"medrep-visits/internal/delivery/dto"
	"medrep-visits/internal/infrastructure/storage"
	"medrep-visits/internal/repository"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

var fixedNow = time.Date(2026, time.October, 15, 9, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func newTestLogger() *logrus.Logger {
	log, _ := test.NewNullLogger()
	return log
}

func newUsecases(store storage.RecordStore) (DoctorUsecase, AppointmentUsecase) {
	log := newTestLogger()
	doctorRepo := repository.NewDoctorRepository(store, log)
	appointmentRepo := repository.NewAppointmentRepository(store, log)
	return NewDoctorUsecase(log, doctorRepo), NewAppointmentUsecase(log, appointmentRepo, doctorRepo, fixedClock)
}

func bookingRequest(doctorID, date string) *dto.CreateAppointmentRequest {
	return &dto.CreateAppointmentRequest{
		RepName:    "Alex Morgan",
		RepCompany: "Acme Pharma",
		RepPhone:   "+1 555 0100",
		RepEmail:   "alex@acme.example",
		DoctorID:   doctorID,
		Date:       date,
		Time:       "14:30",
		Purpose:    "Product introduction",
	}
}
