package handler

import (
	"net/http"

	"medrep-visits/internal/domain/entity"
	"medrep-visits/internal/usecase"
	"medrep-visits/pkg/response"

	"github.com/gorilla/mux"
)

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
	}
}

// GetAllDoctors lists the catalog, narrowed by the optional search and
// specialty query parameters.
func (h *DoctorHandler) GetAllDoctors(w http.ResponseWriter, r *http.Request) {
	filter := entity.DoctorFilter{
		Search:    r.URL.Query().Get("search"),
		Specialty: r.URL.Query().Get("specialty"),
	}

	doctors, err := h.doctorUsecase.SearchDoctors(r.Context(), filter)
	if err != nil {
		writeStoreError(w, err, "Failed to get doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}

func (h *DoctorHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	doctor, err := h.doctorUsecase.GetDoctor(r.Context(), vars["id"])
	if err != nil {
		if err == usecase.ErrDoctorNotFound {
			response.NotFound(w, "Doctor not found")
			return
		}
		writeStoreError(w, err, "Failed to get doctor")
		return
	}

	response.Success(w, http.StatusOK, "Doctor retrieved successfully", doctor)
}

func (h *DoctorHandler) GetSpecialties(w http.ResponseWriter, r *http.Request) {
	specialties, err := h.doctorUsecase.ListSpecialties(r.Context())
	if err != nil {
		writeStoreError(w, err, "Failed to get specialties")
		return
	}

	response.Success(w, http.StatusOK, "Specialties retrieved successfully", specialties)
}
