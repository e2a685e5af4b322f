package dto

// Response DTOs

type DoctorResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	Hospital  string `json:"hospital"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Address   string `json:"address"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
	// Catalog is the size of the unfiltered catalog
	Catalog int `json:"catalog"`
}

type SpecialtyListResponse struct {
	Specialties []string `json:"specialties"`
}
