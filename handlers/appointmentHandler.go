package handlers

import (
	"ClinicDesk/models"
	"ClinicDesk/queries"
	"ClinicDesk/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	store *services.ClinicStore
}

func NewAppointmentHandler(store *services.ClinicStore) *AppointmentHandler {
	return &AppointmentHandler{store: store}
}

// CreateAppointment registers a session with its invoice, patient link and
// tooth mark.
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var input models.AppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}
	apt, err := h.store.AddAppointment(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, apt)
}

// GetAllAppointments lists appointments filtered by the q and status query
// parameters.
func (h *AppointmentHandler) GetAllAppointments(c *gin.Context) {
	apts, err := queries.FilterAppointments(h.store.Snapshot().Appointments, c.Query("q"), c.Query("status"))
	if err != nil {
		badRequest(c, err.Error(), err)
		return
	}
	c.JSON(http.StatusOK, apts)
}

func (h *AppointmentHandler) GetAppointmentByID(c *gin.Context) {
	apt, err := h.store.Appointment(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, apt)
}

func (h *AppointmentHandler) UpdateAppointmentStatus(c *gin.Context) {
	var body struct {
		Status models.AppointmentStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}
	id := c.Param("id")
	if err := h.store.UpdateAppointmentStatus(c.Request.Context(), id, body.Status); err != nil {
		writeError(c, err)
		return
	}
	h.GetAppointmentByID(c)
}

func (h *AppointmentHandler) UpdatePaymentStatus(c *gin.Context) {
	var body struct {
		PaymentStatus models.PaymentStatus `json:"paymentStatus"`
		PaidAmount    float64              `json:"paidAmount"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}
	id := c.Param("id")
	if err := h.store.UpdatePaymentStatus(c.Request.Context(), id, body.PaymentStatus, body.PaidAmount); err != nil {
		writeError(c, err)
		return
	}
	h.GetAppointmentByID(c)
}

// DeleteAppointment cascades to the invoice and the patient totals. Requires
// confirm=true.
func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	if !confirmed(c) {
		return
	}
	if err := h.store.DeleteAppointment(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
