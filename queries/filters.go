package queries

import (
	"ClinicDesk/models"
	"strings"
)

// FilterAppointments keeps the appointments whose patient name contains search,
// ignoring case, and whose status matches statusLabel. statusLabel may be
// either language's label; empty or the "all" label disables the status
// filter. An unknown label is an error.
func FilterAppointments(appointments []models.Appointment, search, statusLabel string) ([]models.Appointment, error) {
	var status models.AppointmentStatus
	if !models.IsAllStatus(statusLabel) {
		parsed, err := models.ParseAppointmentStatus(statusLabel)
		if err != nil {
			return nil, err
		}
		status = parsed
	}

	needle := strings.ToLower(search)
	out := make([]models.Appointment, 0, len(appointments))
	for _, apt := range appointments {
		if needle != "" && !strings.Contains(strings.ToLower(apt.Name), needle) {
			continue
		}
		if status != "" && apt.Status != status {
			continue
		}
		out = append(out, apt)
	}
	return out, nil
}

// FilterPatients keeps patients whose name or email contains search ignoring
// case, or whose phone contains it verbatim.
func FilterPatients(patients []models.Patient, search string) []models.Patient {
	if search == "" {
		return append([]models.Patient{}, patients...)
	}
	needle := strings.ToLower(search)
	out := make([]models.Patient, 0, len(patients))
	for _, p := range patients {
		if strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(p.Phone, search) ||
			(p.Email != "" && strings.Contains(strings.ToLower(p.Email), needle)) {
			out = append(out, p)
		}
	}
	return out
}

// SearchNematodes matches name, scientific name or habitat, ignoring case.
func SearchNematodes(species []models.NematodeSpecies, search string) []models.NematodeSpecies {
	needle := strings.ToLower(search)
	out := make([]models.NematodeSpecies, 0, len(species))
	for _, n := range species {
		if strings.Contains(strings.ToLower(n.Name), needle) ||
			strings.Contains(strings.ToLower(n.ScientificName), needle) ||
			strings.Contains(strings.ToLower(n.Habitat), needle) {
			out = append(out, n)
		}
	}
	return out
}

// NematodeByID looks up one reference entry.
func NematodeByID(species []models.NematodeSpecies, id string) (models.NematodeSpecies, bool) {
	for _, n := range species {
		if n.ID == id {
			return n, true
		}
	}
	return models.NematodeSpecies{}, false
}
