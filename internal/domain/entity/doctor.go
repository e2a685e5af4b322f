package entity

// Doctor represents a physician a representative may visit.
// Doctors are read-only once stored; ID is unique within the collection.
type Doctor struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	Hospital  string `json:"hospital"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Address   string `json:"address"`
}

// SampleDoctors returns the built-in catalog written on first use.
// A new slice is returned on every call.
func SampleDoctors() []Doctor {
	return []Doctor{
		{
			ID:        "1",
			Name:      "Dr. Sarah Johnson",
			Specialty: "Cardiology",
			Hospital:  "City General Hospital",
			Phone:     "(555) 123-4567",
			Email:     "sarah.johnson@hospital.com",
			Address:   "123 Medical Center Dr, Suite 200",
		},
		{
			ID:        "2",
			Name:      "Dr. Michael Chen",
			Specialty: "Orthopedics",
			Hospital:  "Regional Medical Center",
			Phone:     "(555) 234-5678",
			Email:     "michael.chen@rmc.com",
			Address:   "456 Healthcare Blvd, Floor 3",
		},
		{
			ID:        "3",
			Name:      "Dr. Emily Rodriguez",
			Specialty: "Pediatrics",
			Hospital:  "Children's Hospital",
			Phone:     "(555) 345-6789",
			Email:     "emily.rodriguez@childrens.com",
			Address:   "789 Kids Care Ave, Building A",
		},
		{
			ID:        "4",
			Name:      "Dr. James Wilson",
			Specialty: "Neurology",
			Hospital:  "University Medical Center",
			Phone:     "(555) 456-7890",
			Email:     "james.wilson@umc.edu",
			Address:   "321 University Way, Tower B",
		},
		{
			ID:        "5",
			Name:      "Dr. Lisa Anderson",
			Specialty: "Dermatology",
			Hospital:  "Skin Care Clinic",
			Phone:     "(555) 567-8901",
			Email:     "lisa.anderson@skincare.com",
			Address:   "654 Wellness St, Suite 100",
		},
	}
}
