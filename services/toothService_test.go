package services

import (
	"ClinicDesk/models"
	"ClinicDesk/repositories"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statusPtr(s models.ToothStatus) *models.ToothStatus { return &s }
func strPtr(s string) *string                            { return &s }

func TestSaveToothDataGeneralScope(t *testing.T) {
	store := newTestStore(t, repositories.NewMemoryRepository(), SyncMirror)
	ctx := context.Background()

	saved, err := store.SaveToothData(ctx, GeneralChart(), 8, models.ToothUpdate{
		Status:    statusPtr(models.ToothUnderTreatment),
		Treatment: strPtr("root canal"),
	})
	require.NoError(t, err)
	assert.Equal(t, 8, saved.Number)
	assert.True(t, saved.HasIssue)
	require.NotNil(t, saved.LastUpdated)

	saved, err = store.SaveToothData(ctx, GeneralChart(), 8, models.ToothUpdate{Notes: strPtr("follow up")})
	require.NoError(t, err)
	assert.Equal(t, models.ToothUnderTreatment, saved.Status, "unset fields are kept")
	assert.Equal(t, "root canal", saved.Treatment)
	assert.Equal(t, "follow up", saved.Notes)

	saved, err = store.SaveToothData(ctx, GeneralChart(), 8, models.ToothUpdate{Status: statusPtr(models.ToothTreated)})
	require.NoError(t, err)
	assert.False(t, saved.HasIssue)

	chart, err := store.Chart(GeneralChart())
	require.NoError(t, err)
	assert.Equal(t, *saved, chart[7])
}

func TestSaveToothDataRejectsBadInput(t *testing.T) {
	store := newTestStore(t, repositories.NewMemoryRepository(), SyncMirror)
	ctx := context.Background()
	before := store.Snapshot()

	_, err := store.SaveToothData(ctx, GeneralChart(), 33, models.ToothUpdate{})
	assert.ErrorIs(t, err, ErrValidation)
	_, err = store.SaveToothData(ctx, GeneralChart(), 0, models.ToothUpdate{})
	assert.ErrorIs(t, err, ErrValidation)
	_, err = store.SaveToothData(ctx, GeneralChart(), 4, models.ToothUpdate{Status: statusPtr("broken")})
	assert.ErrorIs(t, err, ErrValidation)
	_, err = store.SaveToothData(ctx, GeneralChart(), 4, models.ToothUpdate{Color: strPtr("red")})
	assert.ErrorIs(t, err, ErrValidation)
	_, err = store.SaveToothData(ctx, PatientChart("nobody"), 4, models.ToothUpdate{Status: statusPtr(models.ToothMissing)})
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Equal(t, before, store.Snapshot())
}

func TestPatientScopedEditUnderMirrorPolicy(t *testing.T) {
	store := newTestStore(t, repositories.NewMemoryRepository(), SyncMirror)
	ctx := context.Background()
	p, err := store.AddPatient(ctx, models.PatientInput{Name: "Farah", Phone: "22"})
	require.NoError(t, err)

	_, err = store.SaveToothData(ctx, PatientChart(p.ID), 5, models.ToothUpdate{
		Status: statusPtr(models.ToothCavity),
		Issue:  strPtr("sensitivity"),
	})
	require.NoError(t, err)

	own, err := store.Chart(PatientChart(p.ID))
	require.NoError(t, err)
	general, err := store.Chart(GeneralChart())
	require.NoError(t, err)
	assert.Equal(t, models.ToothCavity, own[4].Status)
	assert.Equal(t, models.ToothCavity, general[4].Status)
	assert.Equal(t, "sensitivity", general[4].Issue)

	require.NoError(t, store.DeleteToothData(ctx, PatientChart(p.ID), 5))
	own, _ = store.Chart(PatientChart(p.ID))
	general, _ = store.Chart(GeneralChart())
	assert.Equal(t, models.DefaultTooth(5), own[4])
	assert.Equal(t, models.DefaultTooth(5), general[4])
}

func TestPatientScopedEditUnderIsolatedPolicy(t *testing.T) {
	store := newTestStore(t, repositories.NewMemoryRepository(), SyncIsolated)
	ctx := context.Background()
	p, err := store.AddPatient(ctx, models.PatientInput{Name: "Farah", Phone: "22"})
	require.NoError(t, err)

	_, err = store.SaveToothData(ctx, PatientChart(p.ID), 5, models.ToothUpdate{Status: statusPtr(models.ToothMissing)})
	require.NoError(t, err)

	own, err := store.Chart(PatientChart(p.ID))
	require.NoError(t, err)
	general, err := store.Chart(GeneralChart())
	require.NoError(t, err)
	assert.Equal(t, models.ToothMissing, own[4].Status)
	assert.Equal(t, models.DefaultTooth(5), general[4])
}

func TestGeneralEditLeavesPatientChartsAlone(t *testing.T) {
	store := newTestStore(t, repositories.NewMemoryRepository(), SyncMirror)
	ctx := context.Background()
	p, err := store.AddPatient(ctx, models.PatientInput{Name: "Gil", Phone: "9"})
	require.NoError(t, err)

	_, err = store.SaveToothData(ctx, GeneralChart(), 1, models.ToothUpdate{Status: statusPtr(models.ToothMissing)})
	require.NoError(t, err)

	own, err := store.Chart(PatientChart(p.ID))
	require.NoError(t, err)
	assert.Equal(t, models.ToothHealthy, own[0].Status)
}

func TestResetAllTeeth(t *testing.T) {
	store := newTestStore(t, repositories.NewMemoryRepository(), SyncMirror)
	ctx := context.Background()
	p, err := store.AddPatient(ctx, models.PatientInput{Name: "Hana", Phone: "3"})
	require.NoError(t, err)
	_, err = store.SaveToothData(ctx, PatientChart(p.ID), 10, models.ToothUpdate{Status: statusPtr(models.ToothCavity)})
	require.NoError(t, err)

	require.NoError(t, store.ResetAllTeeth(ctx))

	general, err := store.Chart(GeneralChart())
	require.NoError(t, err)
	assert.Equal(t, models.NewChart(), general)
	own, err := store.Chart(PatientChart(p.ID))
	require.NoError(t, err)
	assert.Equal(t, models.ToothCavity, own[9].Status)
}

func TestSnapshotChartFallsBackToGeneral(t *testing.T) {
	store := newTestStore(t, repositories.NewMemoryRepository(), SyncMirror)
	snap := store.Snapshot()
	assert.Equal(t, snap.TeethData, snap.Chart(PatientChart("missing")))
}
