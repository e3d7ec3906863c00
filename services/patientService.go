package services

import (
	"ClinicDesk/models"
	"ClinicDesk/utils"
	"context"
)

// AddPatient creates a patient with a fresh healthy chart and zero totals.
func (s *ClinicStore) AddPatient(ctx context.Context, input models.PatientInput) (_ *models.Patient, err error) {
	defer func() { s.observe("add_patient", err) }()

	if err := utils.ValidatePatientInput(input); err != nil {
		return nil, invalid(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := models.Patient{
		ID:               s.nextID(),
		Name:             input.Name,
		Phone:            input.Phone,
		Email:            input.Email,
		DateOfBirth:      input.DateOfBirth,
		Address:          input.Address,
		MedicalHistory:   input.MedicalHistory,
		Allergies:        input.Allergies,
		EmergencyContact: input.EmergencyContact,
		TeethData:        models.NewChart(),
		Appointments:     []string{},
		CreatedAt:        s.timestamp(),
	}
	s.patients = append(s.patients, p)
	if _, exists := s.patientByName[nameKey(p.Name)]; !exists {
		s.patientByName[nameKey(p.Name)] = p.ID
	}

	s.persist(ctx, dirtyPatients)
	s.logger.Debug("patient added", "patient_id", p.ID)

	out := copyPatient(p)
	return &out, nil
}

// Patient returns a copy of one patient.
func (s *ClinicStore) Patient(id string) (*models.Patient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.patientIndex(id)
	if i < 0 {
		return nil, notFound("patient", id)
	}
	out := copyPatient(s.patients[i])
	return &out, nil
}

// PatientByName resolves a name the way session registration does.
func (s *ClinicStore) PatientByName(name string) (*models.Patient, error) {
	s.mu.RLock()
	id, ok := s.patientByName[nameKey(name)]
	s.mu.RUnlock()
	if !ok {
		return nil, notFound("patient", name)
	}
	return s.Patient(id)
}

func (s *ClinicStore) patientIndex(id string) int {
	for i := range s.patients {
		if s.patients[i].ID == id {
			return i
		}
	}
	return -1
}
