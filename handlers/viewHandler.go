package handlers

import (
	"ClinicDesk/services"
	"ClinicDesk/views"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ViewHandler struct {
	store *services.ClinicStore
}

func NewViewHandler(store *services.ClinicStore) *ViewHandler {
	return &ViewHandler{store: store}
}

// GetView resolves the typed context of a screen from its name and the
// patient_id, invoice_id and nematode_id query parameters. A selected patient
// or invoice must exist.
func (h *ViewHandler) GetView(c *gin.Context) {
	id, err := views.ParseID(c.Param("view"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	vc, err := views.NewContext(id, c.Query("patient_id"), c.Query("invoice_id"), c.Query("nematode_id"), requestLanguage(c, h.store))
	if err != nil {
		badRequest(c, err.Error(), err)
		return
	}
	if vc.PatientID != "" {
		if _, err := h.store.Patient(vc.PatientID); err != nil {
			writeError(c, err)
			return
		}
	}
	if vc.InvoiceID != "" {
		if _, err := h.store.Invoice(vc.InvoiceID); err != nil {
			writeError(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"context":    vc,
		"chartScope": vc.ChartScope(),
		"public":     id.Public(),
	})
}
