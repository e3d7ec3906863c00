package handlers

import (
	"ClinicDesk/exports"
	"ClinicDesk/queries"
	"ClinicDesk/services"
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

const csvContentType = "text/csv; charset=utf-8"

type ExportHandler struct {
	store *services.ClinicStore
}

func NewExportHandler(store *services.ClinicStore) *ExportHandler {
	return &ExportHandler{store: store}
}

// AppointmentsCSV exports the appointment list filtered like GetAllAppointments.
func (h *ExportHandler) AppointmentsCSV(c *gin.Context) {
	apts, err := queries.FilterAppointments(h.store.Snapshot().Appointments, c.Query("q"), c.Query("status"))
	if err != nil {
		badRequest(c, err.Error(), err)
		return
	}
	var buf bytes.Buffer
	if err := exports.WriteAppointmentsCSV(&buf, apts, requestLanguage(c, h.store)); err != nil {
		writeError(c, err)
		return
	}
	attachment(c, exports.AppointmentsFilename, csvContentType, buf.Bytes())
}

// TeethCSV exports the teeth with issues of the chart in scope.
func (h *ExportHandler) TeethCSV(c *gin.Context) {
	scope := chartScope(c)
	chart, err := h.store.Chart(scope)
	if err != nil {
		writeError(c, err)
		return
	}
	name := ""
	if scope.IsPatient() {
		patient, err := h.store.Patient(scope.PatientID)
		if err != nil {
			writeError(c, err)
			return
		}
		name = patient.Name
	}
	var buf bytes.Buffer
	if err := exports.WriteTeethCSV(&buf, chart, requestLanguage(c, h.store)); err != nil {
		writeError(c, err)
		return
	}
	attachment(c, exports.TeethFilename(name), csvContentType, buf.Bytes())
}

// GetBackup downloads the JSON backup bundle.
func (h *ExportHandler) GetBackup(c *gin.Context) {
	data, err := json.MarshalIndent(h.store.Backup(), "", "  ")
	if err != nil {
		writeError(c, err)
		return
	}
	attachment(c, exports.BackupFilename, "application/json", data)
}

// RestoreBackup replaces the collections with an uploaded bundle. Requires
// confirm=true.
func (h *ExportHandler) RestoreBackup(c *gin.Context) {
	if !confirmed(c) {
		return
	}
	var backup services.Backup
	if err := c.ShouldBindJSON(&backup); err != nil {
		badRequest(c, "Invalid backup file", err)
		return
	}
	if err := h.store.Restore(c.Request.Context(), backup); err != nil {
		writeError(c, err)
		return
	}
	snap := h.store.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"appointments": len(snap.Appointments),
		"patients":     len(snap.Patients),
		"invoices":     len(snap.Invoices),
	})
}
