package handlers

import (
	"ClinicDesk/exports"
	"ClinicDesk/queries"
	"ClinicDesk/services"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	store *services.ClinicStore
	now   func() time.Time
}

func NewDashboardHandler(store *services.ClinicStore) *DashboardHandler {
	return &DashboardHandler{store: store, now: time.Now}
}

// GetDashboard returns the aggregates; tooth counts use the chart in scope.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	scope := chartScope(c)
	if _, err := h.store.Chart(scope); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, queries.Dashboard(h.store.Snapshot(), scope))
}

func (h *DashboardHandler) GetReminders(c *gin.Context) {
	c.JSON(http.StatusOK, queries.UpcomingReminders(h.store.Snapshot().Appointments, h.now()))
}

// GetReport downloads the text report in the request language.
func (h *DashboardHandler) GetReport(c *gin.Context) {
	report := queries.Report(h.store.Snapshot(), requestLanguage(c, h.store), h.now())
	attachment(c, exports.ReportFilename, "text/plain; charset=utf-8", []byte(report))
}
