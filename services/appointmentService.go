package services

import (
	"ClinicDesk/models"
	"ClinicDesk/utils"
	"context"
	"errors"
	"fmt"
)

func isValidation(err error) bool { return errors.Is(err, ErrValidation) }
func isNotFound(err error) bool   { return errors.Is(err, ErrNotFound) }

// AddAppointment registers a session. In the same critical section it creates
// the invoice, links or creates the patient named on the session and marks
// the tooth on the general chart as a cavity.
func (s *ClinicStore) AddAppointment(ctx context.Context, input models.AppointmentInput) (_ *models.Appointment, err error) {
	defer func() { s.observe("add_appointment", err) }()

	if err := utils.ValidateAppointmentInput(input); err != nil {
		return nil, invalid(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	created := s.timestamp()
	apt := models.Appointment{
		ID:            s.nextID(),
		Name:          input.Name,
		Date:          input.Date,
		Tooth:         input.Tooth,
		Issue:         input.Issue,
		SessionType:   input.SessionType,
		Price:         input.Price,
		Currency:      input.Currency,
		Duration:      input.Duration,
		Notes:         input.Notes,
		Status:        models.StatusConfirmed,
		CreatedAt:     created,
		InvoiceNumber: s.invoiceNumber(),
		PaymentStatus: models.PaymentUnpaid,
		PaidAmount:    0,
	}

	apt.PatientID = s.resolvePatient(apt)
	s.appointments = append(s.appointments, apt)
	s.invoices = append(s.invoices, s.newInvoice(apt))
	s.markToothFromSession(apt)

	s.persist(ctx, dirtyAppointments|dirtyInvoices|dirtyPatients|dirtyTeeth)
	s.logger.Debug("appointment added",
		"appointment_id", apt.ID,
		"patient_id", apt.PatientID,
		"invoice_number", apt.InvoiceNumber,
	)
	return &apt, nil
}

func (s *ClinicStore) newInvoice(apt models.Appointment) models.Invoice {
	toothLabel := s.prefs.Language.Pick("السن رقم", "Tooth")
	return models.Invoice{
		ID:            s.nextID(),
		AppointmentID: apt.ID,
		PatientName:   apt.Name,
		InvoiceNumber: apt.InvoiceNumber,
		Date:          apt.Date,
		Amount:        apt.Price,
		Currency:      apt.Currency,
		Status:        models.PaymentUnpaid,
		PaidAmount:    0,
		DueAmount:     apt.Price,
		Items: []models.InvoiceItem{{
			Description: fmt.Sprintf("%s - %s %d", apt.SessionType, toothLabel, apt.Tooth),
			Quantity:    1,
			UnitPrice:   apt.Price,
			Total:       apt.Price,
		}},
		Notes:     apt.Notes,
		CreatedAt: apt.CreatedAt,
	}
}

// resolvePatient links the appointment to the patient with the same name,
// compared case-insensitively, creating the patient when none exists. It
// returns the patient id.
func (s *ClinicStore) resolvePatient(apt models.Appointment) string {
	if id, ok := s.patientByName[nameKey(apt.Name)]; ok {
		if i := s.patientIndex(id); i >= 0 {
			p := &s.patients[i]
			p.Appointments = append(p.Appointments, apt.ID)
			p.TotalDue += apt.Price
			return p.ID
		}
	}

	p := models.Patient{
		ID:           s.nextID() + "_patient",
		Name:         apt.Name,
		TeethData:    models.NewChart(),
		Appointments: []string{apt.ID},
		TotalPaid:    0,
		TotalDue:     apt.Price,
		CreatedAt:    apt.CreatedAt,
	}
	s.patients = append(s.patients, p)
	s.patientByName[nameKey(p.Name)] = p.ID
	s.logger.Debug("patient created from session", "patient_id", p.ID, "appointment_id", apt.ID)
	return p.ID
}

// markToothFromSession flags the session's tooth on the general chart. The
// patient's own chart is left alone.
func (s *ClinicStore) markToothFromSession(apt models.Appointment) {
	i := toothIndex(s.teeth, apt.Tooth)
	if i < 0 {
		return
	}
	stamp := apt.CreatedAt
	tooth := s.teeth[i]
	tooth.Status = models.ToothCavity
	tooth.Issue = apt.Issue
	tooth.HasIssue = true
	tooth.LastUpdated = &stamp
	s.teeth[i] = tooth
}

// UpdateAppointmentStatus sets the lifecycle status. Any status may follow any
// other. An unknown id changes nothing and returns ErrNotFound.
func (s *ClinicStore) UpdateAppointmentStatus(ctx context.Context, id string, status models.AppointmentStatus) (err error) {
	defer func() { s.observe("update_appointment_status", err) }()

	if !status.Valid() {
		return invalid(fmt.Errorf("status: unknown appointment status %q", status))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.appointmentIndex(id)
	if i < 0 {
		return notFound("appointment", id)
	}
	s.appointments[i].Status = status
	s.persist(ctx, dirtyAppointments)
	s.logger.Debug("appointment status updated", "appointment_id", id, "status", string(status))
	return nil
}

// UpdatePaymentStatus records a payment on the appointment, mirrors it on the
// invoice and moves the difference between the owning patient's totals. The
// paid amount is not capped at the price.
func (s *ClinicStore) UpdatePaymentStatus(ctx context.Context, id string, status models.PaymentStatus, paidAmount float64) (err error) {
	defer func() { s.observe("update_payment_status", err) }()

	if err := utils.ValidatePayment(status, paidAmount); err != nil {
		return invalid(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.appointmentIndex(id)
	if i < 0 {
		return notFound("appointment", id)
	}

	apt := &s.appointments[i]
	delta := paidAmount - apt.PaidAmount
	apt.PaymentStatus = status
	apt.PaidAmount = paidAmount

	for j := range s.invoices {
		inv := &s.invoices[j]
		if inv.AppointmentID != id {
			continue
		}
		inv.Status = status
		inv.PaidAmount = paidAmount
		inv.DueAmount = inv.Amount - paidAmount
	}

	if p := s.owner(id); p != nil {
		p.TotalPaid += delta
		p.TotalDue -= delta
	}

	s.persist(ctx, dirtyAppointments|dirtyInvoices|dirtyPatients)
	s.logger.Debug("payment updated",
		"appointment_id", id,
		"payment_status", string(status),
		"paid_amount", paidAmount,
		"delta", delta,
	)
	return nil
}

// DeleteAppointment removes the appointment and its invoice and takes its
// amounts back out of the owning patient's totals. The tooth chart is not
// reverted. Deleting an unknown id is a no-op.
func (s *ClinicStore) DeleteAppointment(ctx context.Context, id string) (err error) {
	defer func() { s.observe("delete_appointment", err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.appointmentIndex(id)
	if i < 0 {
		return nil
	}
	apt := s.appointments[i]
	s.appointments = append(s.appointments[:i], s.appointments[i+1:]...)

	kept := s.invoices[:0]
	for _, inv := range s.invoices {
		if inv.AppointmentID != id {
			kept = append(kept, inv)
		}
	}
	s.invoices = kept

	for j := range s.patients {
		p := &s.patients[j]
		if !p.HasAppointment(id) {
			continue
		}
		p.Appointments = removeID(p.Appointments, id)
		p.TotalDue -= apt.Outstanding()
		p.TotalPaid -= apt.PaidAmount
	}

	s.persist(ctx, dirtyAppointments|dirtyInvoices|dirtyPatients)
	s.logger.Debug("appointment deleted", "appointment_id", id)
	return nil
}

// Appointment returns a copy of one appointment.
func (s *ClinicStore) Appointment(id string) (*models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.appointmentIndex(id)
	if i < 0 {
		return nil, notFound("appointment", id)
	}
	apt := s.appointments[i]
	return &apt, nil
}

// Invoice returns a copy of one invoice.
func (s *ClinicStore) Invoice(id string) (*models.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, inv := range s.invoices {
		if inv.ID == id {
			out := copyInvoice(inv)
			return &out, nil
		}
	}
	return nil, notFound("invoice", id)
}

func (s *ClinicStore) appointmentIndex(id string) int {
	for i := range s.appointments {
		if s.appointments[i].ID == id {
			return i
		}
	}
	return -1
}

// owner returns the first patient whose appointment list holds id.
func (s *ClinicStore) owner(appointmentID string) *models.Patient {
	for i := range s.patients {
		if s.patients[i].HasAppointment(appointmentID) {
			return &s.patients[i]
		}
	}
	return nil
}

func removeID(ids []string, id string) []string {
	out := make([]string, 0, len(ids))
	for _, existing := range ids {
		if existing != id {
			out = append(out, existing)
		}
	}
	return out
}
