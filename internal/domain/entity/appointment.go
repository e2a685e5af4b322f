package entity

import "time"

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// Date and time layouts used by the stored Date and Time fields
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// IsValid reports whether s is one of the enumerated statuses.
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case AppointmentStatusScheduled, AppointmentStatusCompleted, AppointmentStatusCancelled:
		return true
	}
	return false
}

// Appointment represents a scheduled, completed or cancelled visit.
// DoctorID is a weak reference and DoctorName a snapshot taken at booking time.
type Appointment struct {
	ID         string            `json:"id"`
	RepName    string            `json:"repName"`
	RepCompany string            `json:"repCompany"`
	RepPhone   string            `json:"repPhone"`
	RepEmail   string            `json:"repEmail"`
	DoctorID   string            `json:"doctorId"`
	DoctorName string            `json:"doctorName"`
	Date       string            `json:"date"`
	Time       string            `json:"time"`
	Purpose    string            `json:"purpose"`
	Notes      string            `json:"notes"`
	Status     AppointmentStatus `json:"status"`
	CreatedAt  time.Time         `json:"createdAt"`
}

// IsScheduled checks if appointment is still scheduled
func (a *Appointment) IsScheduled() bool {
	return a.Status == AppointmentStatusScheduled
}

// IsCompleted checks if appointment is completed
func (a *Appointment) IsCompleted() bool {
	return a.Status == AppointmentStatusCompleted
}

// IsCancelled checks if appointment is cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// Complete changes appointment status to completed
func (a *Appointment) Complete() {
	a.Status = AppointmentStatusCompleted
}

// Cancel changes appointment status to cancelled
func (a *Appointment) Cancel() {
	a.Status = AppointmentStatusCancelled
}

// Day parses Date as a calendar day in loc.
func (a *Appointment) Day(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout, a.Date, loc)
}

// AppointmentPatch holds a partial update. Nil fields are left untouched.
// ID and CreatedAt are immutable and therefore absent.
type AppointmentPatch struct {
	RepName    *string
	RepCompany *string
	RepPhone   *string
	RepEmail   *string
	DoctorID   *string
	DoctorName *string
	Date       *string
	Time       *string
	Purpose    *string
	Notes      *string
	Status     *AppointmentStatus
}

// StatusPatch builds a patch that only changes the status.
func StatusPatch(status AppointmentStatus) AppointmentPatch {
	return AppointmentPatch{Status: &status}
}

// IsEmpty reports whether the patch changes nothing.
func (p AppointmentPatch) IsEmpty() bool {
	return p.RepName == nil && p.RepCompany == nil && p.RepPhone == nil && p.RepEmail == nil &&
		p.DoctorID == nil && p.DoctorName == nil && p.Date == nil && p.Time == nil &&
		p.Purpose == nil && p.Notes == nil && p.Status == nil
}

// ApplyTo overwrites the fields of a that are set in the patch.
func (p AppointmentPatch) ApplyTo(a *Appointment) {
	if p.RepName != nil {
		a.RepName = *p.RepName
	}
	if p.RepCompany != nil {
		a.RepCompany = *p.RepCompany
	}
	if p.RepPhone != nil {
		a.RepPhone = *p.RepPhone
	}
	if p.RepEmail != nil {
		a.RepEmail = *p.RepEmail
	}
	if p.DoctorID != nil {
		a.DoctorID = *p.DoctorID
	}
	if p.DoctorName != nil {
		a.DoctorName = *p.DoctorName
	}
	if p.Date != nil {
		a.Date = *p.Date
	}
	if p.Time != nil {
		a.Time = *p.Time
	}
	if p.Purpose != nil {
		a.Purpose = *p.Purpose
	}
	if p.Notes != nil {
		a.Notes = *p.Notes
	}
	if p.Status != nil {
		a.Status = *p.Status
	}
}
