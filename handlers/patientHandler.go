package handlers

import (
	"ClinicDesk/models"
	"ClinicDesk/queries"
	"ClinicDesk/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type PatientHandler struct {
	store *services.ClinicStore
}

func NewPatientHandler(store *services.ClinicStore) *PatientHandler {
	return &PatientHandler{store: store}
}

func (h *PatientHandler) CreatePatient(c *gin.Context) {
	var input models.PatientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}
	patient, err := h.store.AddPatient(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, patient)
}

func (h *PatientHandler) GetPatientByID(c *gin.Context) {
	patient, err := h.store.Patient(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, patient)
}

// GetAllPatients lists patients matching the q query parameter.
func (h *PatientHandler) GetAllPatients(c *gin.Context) {
	c.JSON(http.StatusOK, queries.FilterPatients(h.store.Snapshot().Patients, c.Query("q")))
}
