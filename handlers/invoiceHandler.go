package handlers

import (
	"ClinicDesk/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type InvoiceHandler struct {
	store *services.ClinicStore
}

func NewInvoiceHandler(store *services.ClinicStore) *InvoiceHandler {
	return &InvoiceHandler{store: store}
}

func (h *InvoiceHandler) GetAllInvoices(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Snapshot().Invoices)
}

func (h *InvoiceHandler) GetInvoiceByID(c *gin.Context) {
	inv, err := h.store.Invoice(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, inv)
}
