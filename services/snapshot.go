package services

import (
	"ClinicDesk/models"
	"context"
	"time"
)

// Snapshot is a deep copy of the store at one instant. The query layer reads
// it without holding the store lock.
type Snapshot struct {
	Appointments []models.Appointment
	Patients     []models.Patient
	Invoices     []models.Invoice
	TeethData    []models.ToothData
	Preferences  models.Preferences
}

// Chart returns the chart for scope, or the general chart when the scoped
// patient is not in the snapshot.
func (snap Snapshot) Chart(scope ChartScope) []models.ToothData {
	if scope.IsPatient() {
		for _, p := range snap.Patients {
			if p.ID == scope.PatientID {
				return p.TeethData
			}
		}
	}
	return snap.TeethData
}

// Snapshot copies the current collections.
func (s *ClinicStore) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Appointments: append([]models.Appointment{}, s.appointments...),
		Patients:     copyPatients(s.patients),
		Invoices:     copyInvoices(s.invoices),
		TeethData:    models.CopyChart(s.teeth),
		Preferences:  s.prefs,
	}
}

func copyPatient(p models.Patient) models.Patient {
	p.TeethData = models.CopyChart(p.TeethData)
	p.Appointments = append([]string{}, p.Appointments...)
	return p
}

func copyPatients(patients []models.Patient) []models.Patient {
	out := make([]models.Patient, len(patients))
	for i, p := range patients {
		out[i] = copyPatient(p)
	}
	return out
}

func copyInvoice(inv models.Invoice) models.Invoice {
	inv.Items = append([]models.InvoiceItem{}, inv.Items...)
	return inv
}

func copyInvoices(invoices []models.Invoice) []models.Invoice {
	out := make([]models.Invoice, len(invoices))
	for i, inv := range invoices {
		out[i] = copyInvoice(inv)
	}
	return out
}

// Backup is the JSON backup bundle of the four collections.
type Backup struct {
	Appointments []models.Appointment `json:"appointments"`
	TeethData    []models.ToothData   `json:"teethData"`
	Patients     []models.Patient     `json:"patients"`
	Invoices     []models.Invoice     `json:"invoices"`
	BackupDate   time.Time            `json:"backupDate"`
}

// Backup returns the collections stamped with the current time.
func (s *ClinicStore) Backup() Backup {
	snap := s.Snapshot()
	return Backup{
		Appointments: snap.Appointments,
		TeethData:    snap.TeethData,
		Patients:     snap.Patients,
		Invoices:     snap.Invoices,
		BackupDate:   s.timestamp(),
	}
}

// Restore replaces every collection with the backup's content and persists
// them. Preferences are kept. The backup gets the same normalization as a
// load, and a chart that is neither empty nor 32 teeth long rejects it whole.
func (s *ClinicStore) Restore(ctx context.Context, backup Backup) (err error) {
	defer func() { s.observe("restore", err) }()

	teeth, err := models.NormalizeChart(models.CopyChart(backup.TeethData))
	if err != nil {
		return invalid(err)
	}
	appointments := append([]models.Appointment{}, backup.Appointments...)
	for i := range appointments {
		appointments[i].Normalize()
	}
	patients := copyPatients(backup.Patients)
	for i := range patients {
		if err := patients[i].Normalize(); err != nil {
			return invalid(err)
		}
	}
	invoices := copyInvoices(backup.Invoices)
	for i := range invoices {
		invoices[i].Normalize()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.appointments = appointments
	s.patients = patients
	s.invoices = invoices
	s.teeth = teeth
	s.rebuildNameIndex()

	s.persist(ctx, dirtyAppointments|dirtyPatients|dirtyInvoices|dirtyTeeth)
	s.logger.Info("clinic store restored from backup",
		"appointments", len(s.appointments),
		"patients", len(s.patients),
		"backup_date", backup.BackupDate,
	)
	return nil
}
