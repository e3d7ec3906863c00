package handlers

import (
	"ClinicDesk/models"
	"ClinicDesk/services"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ToothHandler edits the chart selected by the patient_id query parameter,
// the general chart when it is absent.
type ToothHandler struct {
	store *services.ClinicStore
}

func NewToothHandler(store *services.ClinicStore) *ToothHandler {
	return &ToothHandler{store: store}
}

func (h *ToothHandler) GetChart(c *gin.Context) {
	chart, err := h.store.Chart(chartScope(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, chart)
}

func (h *ToothHandler) SaveTooth(c *gin.Context) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		badRequest(c, "Invalid tooth number", err)
		return
	}
	var update models.ToothUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}
	tooth, err := h.store.SaveToothData(c.Request.Context(), chartScope(c), number, update)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, tooth)
}

// DeleteTooth restores the tooth to healthy. Requires confirm=true.
func (h *ToothHandler) DeleteTooth(c *gin.Context) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		badRequest(c, "Invalid tooth number", err)
		return
	}
	if !confirmed(c) {
		return
	}
	if err := h.store.DeleteToothData(c.Request.Context(), chartScope(c), number); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ResetTeeth restores the general chart. Requires confirm=true.
func (h *ToothHandler) ResetTeeth(c *gin.Context) {
	if !confirmed(c) {
		return
	}
	if err := h.store.ResetAllTeeth(c.Request.Context()); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
