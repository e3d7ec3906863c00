package controllers

import (
	"ClinicDesk/handlers"

	"github.com/gin-gonic/gin"
)

// SetupClinicRoutes registers the record store API on group.
func SetupClinicRoutes(
	group *gin.RouterGroup,
	appointmentHandler *handlers.AppointmentHandler,
	patientHandler *handlers.PatientHandler,
	invoiceHandler *handlers.InvoiceHandler,
	toothHandler *handlers.ToothHandler,
	dashboardHandler *handlers.DashboardHandler,
	exportHandler *handlers.ExportHandler,
	preferencesHandler *handlers.PreferencesHandler,
	viewHandler *handlers.ViewHandler,
	nematodeHandler *handlers.NematodeHandler,
) {
	group.GET("/preferences", preferencesHandler.GetPreferences)
	group.PUT("/preferences", preferencesHandler.UpdatePreferences)

	group.POST("/appointments", appointmentHandler.CreateAppointment)
	group.GET("/appointments", appointmentHandler.GetAllAppointments)
	group.GET("/appointments/:id", appointmentHandler.GetAppointmentByID)
	group.PUT("/appointments/:id/status", appointmentHandler.UpdateAppointmentStatus)
	group.PUT("/appointments/:id/payment", appointmentHandler.UpdatePaymentStatus)
	group.DELETE("/appointments/:id", appointmentHandler.DeleteAppointment)

	group.POST("/patients", patientHandler.CreatePatient)
	group.GET("/patients", patientHandler.GetAllPatients)
	group.GET("/patients/:id", patientHandler.GetPatientByID)

	group.GET("/invoices", invoiceHandler.GetAllInvoices)
	group.GET("/invoices/:id", invoiceHandler.GetInvoiceByID)

	group.GET("/teeth", toothHandler.GetChart)
	group.POST("/teeth/reset", toothHandler.ResetTeeth)
	group.PUT("/teeth/:number", toothHandler.SaveTooth)
	group.DELETE("/teeth/:number", toothHandler.DeleteTooth)

	group.GET("/dashboard", dashboardHandler.GetDashboard)
	group.GET("/reminders", dashboardHandler.GetReminders)
	group.GET("/report", dashboardHandler.GetReport)

	group.GET("/exports/appointments.csv", exportHandler.AppointmentsCSV)
	group.GET("/exports/teeth.csv", exportHandler.TeethCSV)
	group.GET("/backup", exportHandler.GetBackup)
	group.POST("/backup", exportHandler.RestoreBackup)

	group.GET("/views/:view", viewHandler.GetView)

	group.GET("/nematodes", nematodeHandler.GetAllNematodes)
	group.GET("/nematodes/:id", nematodeHandler.GetNematodeByID)
}
