package query

import (
	"slices"
	"strings"

	"medrep-visits/internal/domain/entity"
)

// SearchDoctors keeps doctors whose name, hospital or specialty contains
// filter.Search (case-insensitive) and whose specialty equals
// filter.Specialty. An empty search or an empty/"all" specialty matches every
// doctor.
func SearchDoctors(doctors []entity.Doctor, filter entity.DoctorFilter) []entity.Doctor {
	needle := strings.ToLower(strings.TrimSpace(filter.Search))
	specialty := filter.Specialty
	if specialty == entity.StatusFilterAll {
		specialty = ""
	}

	out := make([]entity.Doctor, 0, len(doctors))
	for _, doctor := range doctors {
		if specialty != "" && doctor.Specialty != specialty {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(doctor.Name), needle) &&
			!strings.Contains(strings.ToLower(doctor.Hospital), needle) &&
			!strings.Contains(strings.ToLower(doctor.Specialty), needle) {
			continue
		}
		out = append(out, doctor)
	}
	return out
}

// Specialties returns the distinct specialties in lexicographic order.
func Specialties(doctors []entity.Doctor) []string {
	seen := make(map[string]struct{}, len(doctors))
	out := make([]string, 0, len(doctors))
	for _, doctor := range doctors {
		if _, ok := seen[doctor.Specialty]; ok {
			continue
		}
		seen[doctor.Specialty] = struct{}{}
		out = append(out, doctor.Specialty)
	}
	slices.Sort(out)
	return out
}

// DoctorView carries the doctor fields shown next to an appointment.
// Known is false and every field empty when the doctor could not be found.
type DoctorView struct {
	Known     bool
	Name      string
	Specialty string
	Hospital  string
	Phone     string
	Email     string
	Address   string
}

// ResolveDoctor looks id up in doctors. A dangling reference resolves to the
// zero DoctorView rather than an error.
func ResolveDoctor(doctors []entity.Doctor, id string) DoctorView {
	for _, doctor := range doctors {
		if doctor.ID == id {
			return DoctorView{
				Known:     true,
				Name:      doctor.Name,
				Specialty: doctor.Specialty,
				Hospital:  doctor.Hospital,
				Phone:     doctor.Phone,
				Email:     doctor.Email,
				Address:   doctor.Address,
			}
		}
	}
	return DoctorView{}
}
