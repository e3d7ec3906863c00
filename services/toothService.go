package services

import (
	"ClinicDesk/models"
	"ClinicDesk/utils"
	"context"
	"strconv"
)

// ChartScope names the chart an edit targets: the general chart when
// PatientID is empty, otherwise that patient's embedded chart.
type ChartScope struct {
	PatientID string `json:"patientId,omitempty"`
}

// GeneralChart is the scope of the chart not tied to any patient.
func GeneralChart() ChartScope {
	return ChartScope{}
}

// PatientChart is the scope of one patient's chart.
func PatientChart(patientID string) ChartScope {
	return ChartScope{PatientID: patientID}
}

func (c ChartScope) IsPatient() bool {
	return c.PatientID != ""
}

// Chart returns a copy of the chart in scope.
func (s *ClinicStore) Chart(scope ChartScope) ([]models.ToothData, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !scope.IsPatient() {
		return models.CopyChart(s.teeth), nil
	}
	i := s.patientIndex(scope.PatientID)
	if i < 0 {
		return nil, notFound("patient", scope.PatientID)
	}
	return models.CopyChart(s.patients[i].TeethData), nil
}

// SaveToothData merges update into the tooth, recomputes HasIssue and stamps
// LastUpdated. A general-scope edit writes the general chart. A patient-scope
// edit writes the patient chart, and the general chart too under SyncMirror.
// It returns the tooth as stored in the scoped chart.
func (s *ClinicStore) SaveToothData(ctx context.Context, scope ChartScope, number int, update models.ToothUpdate) (_ *models.ToothData, err error) {
	defer func() { s.observe("save_tooth", err) }()

	if err := utils.ValidateToothUpdate(number, update); err != nil {
		return nil, invalid(err)
	}

	stamp := s.timestamp()
	edit := func(tooth models.ToothData) models.ToothData {
		tooth = update.Apply(tooth)
		tooth.Number = number
		tooth.HasIssue = tooth.ComputeHasIssue()
		ts := stamp
		tooth.LastUpdated = &ts
		return tooth
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	saved, err := s.editTooth(ctx, scope, number, edit)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("tooth saved", "tooth", number, "patient_id", scope.PatientID)
	return &saved, nil
}

// DeleteToothData restores the tooth to healthy with no issue, on the same
// charts SaveToothData would write.
func (s *ClinicStore) DeleteToothData(ctx context.Context, scope ChartScope, number int) (err error) {
	defer func() { s.observe("delete_tooth", err) }()

	if err := utils.ValidateToothNumber(number); err != nil {
		return invalid(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err = s.editTooth(ctx, scope, number, func(models.ToothData) models.ToothData {
		return models.DefaultTooth(number)
	})
	if err != nil {
		return err
	}
	s.logger.Debug("tooth cleared", "tooth", number, "patient_id", scope.PatientID)
	return nil
}

// ResetAllTeeth restores the general chart to 32 healthy teeth. Patient charts
// are untouched.
func (s *ClinicStore) ResetAllTeeth(ctx context.Context) (err error) {
	defer func() { s.observe("reset_teeth", err) }()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.teeth = models.NewChart()
	s.persist(ctx, dirtyTeeth)
	s.logger.Debug("general chart reset")
	return nil
}

// editTooth applies edit to the charts selected by scope and the sync policy.
// Called with s.mu held.
func (s *ClinicStore) editTooth(ctx context.Context, scope ChartScope, number int, edit func(models.ToothData) models.ToothData) (models.ToothData, error) {
	writeGeneral := !scope.IsPatient() || s.policy == SyncMirror

	patient := -1
	if scope.IsPatient() {
		patient = s.patientIndex(scope.PatientID)
		if patient < 0 {
			return models.ToothData{}, notFound("patient", scope.PatientID)
		}
	}

	general := -1
	if writeGeneral {
		if general = toothIndex(s.teeth, number); general < 0 {
			return models.ToothData{}, notFound("tooth", strconv.Itoa(number))
		}
	}
	own := -1
	if patient >= 0 {
		if own = toothIndex(s.patients[patient].TeethData, number); own < 0 {
			return models.ToothData{}, notFound("tooth", strconv.Itoa(number))
		}
	}

	var saved models.ToothData
	var d dirty
	if general >= 0 {
		s.teeth[general] = edit(s.teeth[general])
		saved = s.teeth[general]
		d |= dirtyTeeth
	}
	if own >= 0 {
		chart := s.patients[patient].TeethData
		chart[own] = edit(chart[own])
		saved = chart[own]
		d |= dirtyPatients
	}

	s.persist(ctx, d)
	return saved, nil
}

func toothIndex(chart []models.ToothData, number int) int {
	for i := range chart {
		if chart[i].Number == number {
			return i
		}
	}
	return -1
}
