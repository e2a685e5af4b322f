package entity

import "fmt"

// StatusFilterAll matches every status in the history view and every
// specialty in the doctor search.
const StatusFilterAll = "all"

// StatusFilter selects appointments for the history view.
// The zero value matches all statuses.
type StatusFilter struct {
	status AppointmentStatus
}

// ParseStatusFilter accepts "all", the empty string or an exact status.
func ParseStatusFilter(raw string) (StatusFilter, error) {
	if raw == "" || raw == StatusFilterAll {
		return StatusFilter{}, nil
	}
	status := AppointmentStatus(raw)
	if !status.IsValid() {
		return StatusFilter{}, fmt.Errorf("invalid status filter %q", raw)
	}
	return StatusFilter{status: status}, nil
}

// FilterByStatus returns a filter matching exactly one status.
func FilterByStatus(status AppointmentStatus) StatusFilter {
	return StatusFilter{status: status}
}

// Matches reports whether a passes the filter.
func (f StatusFilter) Matches(a *Appointment) bool {
	return f.status == "" || a.Status == f.status
}

func (f StatusFilter) String() string {
	if f.status == "" {
		return StatusFilterAll
	}
	return string(f.status)
}

// DoctorFilter is a domain-level filter for the doctor directory.
type DoctorFilter struct {
	Search    string // case-insensitive substring over name, hospital and specialty
	Specialty string // exact match; empty or "all" matches every specialty
}
