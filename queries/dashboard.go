package queries

import (
	"ClinicDesk/models"
	"ClinicDesk/services"
	"ClinicDesk/utils"
	"time"
)

// DashboardStats are the aggregates shown on the dashboard.
type DashboardStats struct {
	TotalAppointments int     `json:"totalAppointments"`
	TotalPatients     int     `json:"totalPatients"`
	HealthyTeeth      int     `json:"healthyTeeth"`
	TreatedTeeth      int     `json:"treatedTeeth"`
	ProblemTeeth      int     `json:"problemTeeth"`
	MissingTeeth      int     `json:"missingTeeth"`
	TotalRevenue      float64 `json:"totalRevenue"`
	PendingRevenue    float64 `json:"pendingRevenue"`
}

// Dashboard counts appointments and revenue over every appointment and teeth
// over the chart in scope. Problem teeth are cavities and teeth under
// treatment.
func Dashboard(snap services.Snapshot, scope services.ChartScope) DashboardStats {
	stats := DashboardStats{
		TotalAppointments: len(snap.Appointments),
		TotalPatients:     len(snap.Patients),
	}
	for _, tooth := range snap.Chart(scope) {
		switch tooth.Status {
		case models.ToothHealthy:
			stats.HealthyTeeth++
		case models.ToothTreated:
			stats.TreatedTeeth++
		case models.ToothCavity, models.ToothUnderTreatment:
			stats.ProblemTeeth++
		case models.ToothMissing:
			stats.MissingTeeth++
		}
	}
	for _, apt := range snap.Appointments {
		stats.TotalRevenue += apt.PaidAmount
		stats.PendingRevenue += apt.Outstanding()
	}
	return stats
}

// Reminders lists confirmed appointments due today and tomorrow.
type Reminders struct {
	Today    []models.Appointment `json:"today"`
	Tomorrow []models.Appointment `json:"tomorrow"`
}

// UpcomingReminders picks confirmed appointments dated on now's calendar day
// or the next one, in now's location.
func UpcomingReminders(appointments []models.Appointment, now time.Time) Reminders {
	today := now.Format(utils.DateLayout)
	tomorrow := now.AddDate(0, 0, 1).Format(utils.DateLayout)

	r := Reminders{Today: []models.Appointment{}, Tomorrow: []models.Appointment{}}
	for _, apt := range appointments {
		if apt.Status != models.StatusConfirmed {
			continue
		}
		switch apt.Date {
		case today:
			r.Today = append(r.Today, apt)
		case tomorrow:
			r.Tomorrow = append(r.Tomorrow, apt)
		}
	}
	return r
}
