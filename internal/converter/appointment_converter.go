package converter

import (
	"medrep-visits/internal/delivery/dto"
	"medrep-visits/internal/domain/entity"
	"medrep-visits/internal/query"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse
// DTO, resolving its doctor against doctors and adding display strings.
func AppointmentToResponse(appointment *entity.Appointment, doctors []entity.Doctor) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	doctor := query.ResolveDoctor(doctors, appointment.DoctorID)

	return &dto.AppointmentResponse{
		ID:          appointment.ID,
		RepName:     appointment.RepName,
		RepCompany:  appointment.RepCompany,
		RepPhone:    appointment.RepPhone,
		RepEmail:    appointment.RepEmail,
		DoctorID:    appointment.DoctorID,
		DoctorName:  appointment.DoctorName,
		Date:        appointment.Date,
		Time:        appointment.Time,
		DisplayDate: query.FormatDisplayDate(appointment.Date),
		DisplayTime: query.FormatDisplayTime(appointment.Time),
		Purpose:     appointment.Purpose,
		Notes:       appointment.Notes,
		Status:      string(appointment.Status),
		CreatedAt:   appointment.CreatedAt,
		Doctor: dto.AppointmentDoctor{
			Known:     doctor.Known,
			Name:      doctor.Name,
			Specialty: doctor.Specialty,
			Hospital:  doctor.Hospital,
			Phone:     doctor.Phone,
			Address:   doctor.Address,
		},
	}
}

// AppointmentsToResponses converts a slice of Appointment entities to slice of AppointmentResponse DTOs
func AppointmentsToResponses(appointments []entity.Appointment, doctors []entity.Doctor) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i], doctors)
	}
	return responses
}

// CreateRequestToAppointment copies the booking form into a new Appointment.
// ID, status, doctor name and creation time are assigned by the caller.
func CreateRequestToAppointment(req *dto.CreateAppointmentRequest) *entity.Appointment {
	return &entity.Appointment{
		RepName:    req.RepName,
		RepCompany: req.RepCompany,
		RepPhone:   req.RepPhone,
		RepEmail:   req.RepEmail,
		DoctorID:   req.DoctorID,
		Date:       req.Date,
		Time:       req.Time,
		Purpose:    req.Purpose,
		Notes:      req.Notes,
	}
}

// UpdateRequestToPatch maps a partial update request onto an AppointmentPatch
func UpdateRequestToPatch(req *dto.UpdateAppointmentRequest) entity.AppointmentPatch {
	patch := entity.AppointmentPatch{
		RepName:    req.RepName,
		RepCompany: req.RepCompany,
		RepPhone:   req.RepPhone,
		RepEmail:   req.RepEmail,
		DoctorID:   req.DoctorID,
		Date:       req.Date,
		Time:       req.Time,
		Purpose:    req.Purpose,
		Notes:      req.Notes,
	}
	if req.Status != nil {
		status := entity.AppointmentStatus(*req.Status)
		patch.Status = &status
	}
	return patch
}
