package services

import (
	"ClinicDesk/logging"
	"ClinicDesk/models"
	"ClinicDesk/repositories"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)

// fakeClock advances one millisecond per reading.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time {
	c.t = c.t.Add(time.Millisecond)
	return c.t
}

func newTestStore(t *testing.T, repo repositories.DocumentRepository, policy SyncPolicy) *ClinicStore {
	t.Helper()
	clock := &fakeClock{t: fixedNow}
	next := 0
	store, err := NewClinicStore(context.Background(), repositories.NewClinicDocuments(repo), Options{
		SyncPolicy: policy,
		Logger:     logging.Discard(),
		Now:        clock.Now,
		Intn: func(n int) int {
			next++
			return next % n
		},
	})
	require.NoError(t, err)
	return store
}

func aliceInput() models.AppointmentInput {
	return models.AppointmentInput{
		Name:        "Alice",
		Date:        "2024-05-01",
		Tooth:       14,
		Issue:       "cavity",
		SessionType: "filling",
		Price:       120.00,
		Currency:    "USD",
		Duration:    30,
	}
}

func invoiceFor(snap Snapshot, appointmentID string) []models.Invoice {
	var out []models.Invoice
	for _, inv := range snap.Invoices {
		if inv.AppointmentID == appointmentID {
			out = append(out, inv)
		}
	}
	return out
}

func patientsOwning(snap Snapshot, appointmentID string) []models.Patient {
	var out []models.Patient
	for _, p := range snap.Patients {
		if p.HasAppointment(appointmentID) {
			out = append(out, p)
		}
	}
	return out
}

func assertTotalsConsistent(t *testing.T, snap Snapshot) {
	t.Helper()
	byID := make(map[string]models.Appointment, len(snap.Appointments))
	for _, apt := range snap.Appointments {
		byID[apt.ID] = apt
	}
	for _, p := range snap.Patients {
		var paid, due float64
		for _, id := range p.Appointments {
			apt, ok := byID[id]
			require.True(t, ok, "patient %s references missing appointment %s", p.Name, id)
			paid += apt.PaidAmount
			due += apt.Outstanding()
		}
		assert.InDelta(t, paid, p.TotalPaid, 1e-9, "totalPaid of %s", p.Name)
		assert.InDelta(t, due, p.TotalDue, 1e-9, "totalDue of %s", p.Name)
	}
}

func TestAddAppointmentCreatesSessionFanOut(t *testing.T) {
	store := newTestStore(t, repositories.NewMemoryRepository(), SyncMirror)

	apt, err := store.AddAppointment(context.Background(), aliceInput())
	require.NoError(t, err)

	assert.Equal(t, models.StatusConfirmed, apt.Status)
	assert.Equal(t, models.PaymentUnpaid, apt.PaymentStatus)
	assert.Equal(t, 0.0, apt.PaidAmount)
	assert.Regexp(t, `^INV-20240501-\d{3}$`, apt.InvoiceNumber)

	snap := store.Snapshot()
	invoices := invoiceFor(snap, apt.ID)
	require.Len(t, invoices, 1)
	inv := invoices[0]
	assert.Equal(t, 120.00, inv.Amount)
	assert.Equal(t, 120.00, inv.DueAmount)
	assert.Equal(t, 0.0, inv.PaidAmount)
	assert.Equal(t, models.PaymentUnpaid, inv.Status)
	assert.Equal(t, apt.InvoiceNumber, inv.InvoiceNumber)
	require.Len(t, inv.Items, 1)
	assert.Equal(t, "filling - السن رقم 14", inv.Items[0].Description)
	assert.Equal(t, 1, inv.Items[0].Quantity)

	owners := patientsOwning(snap, apt.ID)
	require.Len(t, owners, 1)
	alice := owners[0]
	assert.Equal(t, "Alice", alice.Name)
	assert.Equal(t, apt.PatientID, alice.ID)
	assert.Equal(t, 120.00, alice.TotalDue)
	assert.Equal(t, 0.0, alice.TotalPaid)
	assert.Len(t, alice.TeethData, models.TeethCount)

	tooth := snap.TeethData[13]
	assert.Equal(t, 14, tooth.Number)
	assert.Equal(t, models.ToothCavity, tooth.Status)
	assert.True(t, tooth.HasIssue)
	assert.Equal(t, "cavity", tooth.Issue)
	require.NotNil(t, tooth.LastUpdated)

	assert.Equal(t, models.ToothHealthy, alice.TeethData[13].Status, "patient chart is not touched at creation")
}

func TestAddAppointmentLinksExistingPatientCaseInsensitively(t *testing.T) {
	store := newTestStore(t, repositories.NewMemoryRepository(), SyncMirror)
	ctx := context.Background()

	patient, err := store.AddPatient(ctx, models.PatientInput{Name: "Alice", Phone: "0100"})
	require.NoError(t, err)

	input := aliceInput()
	input.Name = "ALICE"
	first, err := store.AddAppointment(ctx, input)
	require.NoError(t, err)
	input.Price = 80
	second, err := store.AddAppointment(ctx, input)
	require.NoError(t, err)

	snap := store.Snapshot()
	require.Len(t, snap.Patients, 1)
	got := snap.Patients[0]
	assert.Equal(t, patient.ID, got.ID)
	assert.Equal(t, []string{first.ID, second.ID}, got.Appointments)
	assert.Equal(t, 200.0, got.TotalDue)
	assert.Equal(t, patient.ID, first.PatientID)
}

func TestAddAppointmentRejectsInvalidInputWithoutWriting(t *testing.T) {
	store := newTestStore(t, repositories.NewMemoryRepository(), SyncMirror)

	tests := []struct {
		name   string
		mutate func(*models.AppointmentInput)
	}{
		{"missing name", func(in *models.AppointmentInput) { in.Name = "" }},
		{"tooth out of range", func(in *models.AppointmentInput) { in.Tooth = 40 }},
		{"negative price", func(in *models.AppointmentInput) { in.Price = -5 }},
		{"zero duration", func(in *models.AppointmentInput) { in.Duration = 0 }},
		{"missing session type", func(in *models.AppointmentInput) { in.SessionType = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := aliceInput()
			tt.mutate(&input)
			_, err := store.AddAppointment(context.Background(), input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)

			var verr *ValidationError
			assert.True(t, errors.As(err, &verr))
		})
	}

	snap := store.Snapshot()
	assert.Empty(t, snap.Appointments)
	assert.Empty(t, snap.Invoices)
	assert.Empty(t, snap.Patients)
	for _, tooth := range snap.TeethData {
		assert.False(t, tooth.HasIssue)
	}
}

func TestPartialPaymentUpdatesInvoiceAndPatient(t *testing.T) {
	store := newTestStore(t, repositories.NewMemoryRepository(), SyncMirror)
	ctx := context.Background()

	apt, err := store.AddAppointment(ctx, aliceInput())
	require.NoError(t, err)

	require.NoError(t, store.UpdatePaymentStatus(ctx, apt.ID, models.PaymentPartiallyPaid, 50.00))

	snap := store.Snapshot()
	inv := invoiceFor(snap, apt.ID)[0]
	assert.Equal(t, models.PaymentPartiallyPaid, inv.Status)
	assert.Equal(t, 50.00, inv.PaidAmount)
	assert.Equal(t, 70.00, inv.DueAmount)

	alice := patientsOwning(snap, apt.ID)[0]
	assert.Equal(t, 50.00, alice.TotalPaid)
	assert.Equal(t, 70.00, alice.TotalDue)

	got, err := store.Appointment(apt.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentPartiallyPaid, got.PaymentStatus)
	assert.Equal(t, 50.00, got.PaidAmount)

	require.NoError(t, store.UpdatePaymentStatus(ctx, apt.ID, models.PaymentPaid, 120.00))
	alice = patientsOwning(store.Snapshot(), apt.ID)[0]
	assert.Equal(t, 120.00, alice.TotalPaid)
	assert.Equal(t, 0.0, alice.TotalDue)
}

func TestPaymentValidationAndUnknownID(t *testing.T) {
	store := newTestStore(t, repositories.NewMemoryRepository(), SyncMirror)
	ctx := context.Background()
	apt, err := store.AddAppointment(ctx, aliceInput())
	require.NoError(t, err)
	before := store.Snapshot()

	err = store.UpdatePaymentStatus(ctx, apt.ID, models.PaymentPaid, -1)
	assert.ErrorIs(t, err, ErrValidation)

	err = store.UpdatePaymentStatus(ctx, "missing", models.PaymentPaid, 10)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Equal(t, before, store.Snapshot())
}

func TestOverpaymentIsAccepted(t *testing.T) {
	store := newTestStore(t, repositories.NewMemoryRepository(), SyncMirror)
	ctx := context.Background()
	apt, err := store.AddAppointment(ctx, aliceInput())
	require.NoError(t, err)

	require.NoError(t, store.UpdatePaymentStatus(ctx, apt.ID, models.PaymentPaid, 150))

	snap := store.Snapshot()
	assert.Equal(t, -30.0, invoiceFor(snap, apt.ID)[0].DueAmount)
	assertTotalsConsistent(t, snap)
}

func TestDeleteAppointmentCascades(t *testing.T) {
	store := newTestStore(t, repositories.NewMemoryRepository(), SyncMirror)
	ctx := context.Background()

	apt, err := store.AddAppointment(ctx, aliceInput())
	require.NoError(t, err)
	require.NoError(t, store.UpdatePaymentStatus(ctx, apt.ID, models.PaymentPartiallyPaid, 50))

	require.NoError(t, store.DeleteAppointment(ctx, apt.ID))

	snap := store.Snapshot()
	assert.Empty(t, snap.Appointments)
	assert.Empty(t, invoiceFor(snap, apt.ID))
	require.Len(t, snap.Patients, 1)
	alice := snap.Patients[0]
	assert.Empty(t, alice.Appointments)
	assert.InDelta(t, 0.0, alice.TotalDue, 1e-9)
	assert.InDelta(t, 0.0, alice.TotalPaid, 1e-9)

	assert.Equal(t, models.ToothCavity, snap.TeethData[13].Status, "tooth is not reverted")
	assert.True(t, snap.TeethData[13].HasIssue)

	_, err = store.Appointment(apt.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteAppointmentIsIdempotent(t *testing.T) {
	store := newTestStore(t, repositories.NewMemoryRepository(), SyncMirror)
	ctx := context.Background()

	first, err := store.AddAppointment(ctx, aliceInput())
	require.NoError(t, err)
	_, err = store.AddAppointment(ctx, aliceInput())
	require.NoError(t, err)

	require.NoError(t, store.DeleteAppointment(ctx, first.ID))
	once := store.Snapshot()
	require.NoError(t, store.DeleteAppointment(ctx, first.ID))
	assert.Equal(t, once, store.Snapshot())

	require.NoError(t, store.DeleteAppointment(ctx, "never-existed"))
	assert.Equal(t, once, store.Snapshot())
}

func TestUpdateAppointmentStatusIsFreeForm(t *testing.T) {
	store := newTestStore(t, repositories.NewMemoryRepository(), SyncMirror)
	ctx := context.Background()
	apt, err := store.AddAppointment(ctx, aliceInput())
	require.NoError(t, err)

	for _, status := range []models.AppointmentStatus{
		models.StatusCancelled, models.StatusConfirmed, models.StatusCompleted, models.StatusCancelled,
	} {
		require.NoError(t, store.UpdateAppointmentStatus(ctx, apt.ID, status))
		got, err := store.Appointment(apt.ID)
		require.NoError(t, err)
		assert.Equal(t, status, got.Status)
	}

	assert.ErrorIs(t, store.UpdateAppointmentStatus(ctx, "missing", models.StatusCompleted), ErrNotFound)
	assert.ErrorIs(t, store.UpdateAppointmentStatus(ctx, apt.ID, "Pending"), ErrValidation)
}

func TestTotalsStayConsistentAcrossMixedOperations(t *testing.T) {
	store := newTestStore(t, repositories.NewMemoryRepository(), SyncMirror)
	ctx := context.Background()

	names := []string{"Alice", "bob", "ALICE", "Carol", "Bob"}
	var ids []string
	for i, name := range names {
		input := aliceInput()
		input.Name = name
		input.Price = float64(50 + 25*i)
		input.Tooth = i + 1
		apt, err := store.AddAppointment(ctx, input)
		require.NoError(t, err)
		ids = append(ids, apt.ID)
		assertTotalsConsistent(t, store.Snapshot())
	}

	steps := []func() error{
		func() error { return store.UpdatePaymentStatus(ctx, ids[0], models.PaymentPartiallyPaid, 20) },
		func() error { return store.UpdatePaymentStatus(ctx, ids[1], models.PaymentPaid, 75) },
		func() error { return store.UpdatePaymentStatus(ctx, ids[0], models.PaymentPaid, 50) },
		func() error { return store.DeleteAppointment(ctx, ids[2]) },
		func() error { return store.UpdatePaymentStatus(ctx, ids[4], models.PaymentPartiallyPaid, 10) },
		func() error { return store.DeleteAppointment(ctx, ids[1]) },
		func() error { return store.DeleteAppointment(ctx, ids[1]) },
		func() error { return store.UpdatePaymentStatus(ctx, ids[3], models.PaymentUnpaid, 0) },
	}
	for i, step := range steps {
		require.NoError(t, step(), "step %d", i)
		assertTotalsConsistent(t, store.Snapshot())
	}

	snap := store.Snapshot()
	assert.Len(t, snap.Patients, 3)
	for _, apt := range snap.Appointments {
		assert.Len(t, invoiceFor(snap, apt.ID), 1)
		assert.Len(t, patientsOwning(snap, apt.ID), 1)
	}
}

func TestIDsAreUniqueWithinAMillisecond(t *testing.T) {
	store := newTestStore(t, repositories.NewMemoryRepository(), SyncMirror)
	store.now = func() time.Time { return fixedNow }

	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		apt, err := store.AddAppointment(context.Background(), aliceInput())
		require.NoError(t, err)
		assert.False(t, seen[apt.ID])
		seen[apt.ID] = true
	}
}

func TestInvoiceNumbersAvoidCollisions(t *testing.T) {
	store := newTestStore(t, repositories.NewMemoryRepository(), SyncMirror)
	store.intn = func(int) int { return 7 }

	numbers := map[string]bool{}
	for i := 0; i < 3; i++ {
		apt, err := store.AddAppointment(context.Background(), aliceInput())
		require.NoError(t, err)
		assert.False(t, numbers[apt.InvoiceNumber], "duplicate %s", apt.InvoiceNumber)
		numbers[apt.InvoiceNumber] = true
	}
	assert.True(t, numbers["INV-20240501-007"])
	assert.True(t, numbers["INV-20240501-000"])
	assert.True(t, numbers["INV-20240501-001"])
}

func TestAddPatient(t *testing.T) {
	store := newTestStore(t, repositories.NewMemoryRepository(), SyncMirror)
	ctx := context.Background()

	p, err := store.AddPatient(ctx, models.PatientInput{Name: "Dana", Phone: "0555", Email: "dana@example.com"})
	require.NoError(t, err)
	assert.Len(t, p.TeethData, models.TeethCount)
	assert.Empty(t, p.Appointments)
	assert.Zero(t, p.TotalDue)
	assert.Zero(t, p.TotalPaid)

	byName, err := store.PatientByName("dana")
	require.NoError(t, err)
	assert.Equal(t, p.ID, byName.ID)

	_, err = store.AddPatient(ctx, models.PatientInput{Name: "NoPhone"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = store.Patient("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReturnedValuesAreCopies(t *testing.T) {
	store := newTestStore(t, repositories.NewMemoryRepository(), SyncMirror)
	ctx := context.Background()
	p, err := store.AddPatient(ctx, models.PatientInput{Name: "Eve", Phone: "1"})
	require.NoError(t, err)

	p.TeethData[0].Status = models.ToothMissing
	snap := store.Snapshot()
	snap.TeethData[0].Status = models.ToothMissing

	fresh, err := store.Patient(p.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ToothHealthy, fresh.TeethData[0].Status)
	chart, err := store.Chart(GeneralChart())
	require.NoError(t, err)
	assert.Equal(t, models.ToothHealthy, chart[0].Status)
}

func TestStatePersistsAcrossReload(t *testing.T) {
	repo := repositories.NewMemoryRepository()
	ctx := context.Background()

	store := newTestStore(t, repo, SyncMirror)
	apt, err := store.AddAppointment(ctx, aliceInput())
	require.NoError(t, err)
	require.NoError(t, store.UpdatePaymentStatus(ctx, apt.ID, models.PaymentPartiallyPaid, 50))
	require.NoError(t, store.SetPreferences(ctx, models.Preferences{DarkMode: true, Language: models.English}))

	reloaded := newTestStore(t, repo, SyncMirror)
	assert.Equal(t, store.Snapshot(), reloaded.Snapshot())

	again, err := reloaded.AddAppointment(ctx, aliceInput())
	require.NoError(t, err)
	assert.Equal(t, apt.PatientID, again.PatientID, "name index is rebuilt on load")
}

func TestSetPreferencesValidatesLanguage(t *testing.T) {
	store := newTestStore(t, repositories.NewMemoryRepository(), SyncMirror)
	err := store.SetPreferences(context.Background(), models.Preferences{Language: "fr"})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, models.Arabic, store.Preferences().Language)
}

// failingRepository accepts reads and rejects every write.
type failingRepository struct {
	*repositories.MemoryRepository
	writes int
}

func (r *failingRepository) Set(context.Context, string, string) error {
	r.writes++
	return fmt.Errorf("disk full")
}

func TestPersistenceFailureKeepsInMemoryState(t *testing.T) {
	repo := &failingRepository{MemoryRepository: repositories.NewMemoryRepository()}
	store := newTestStore(t, repo, SyncMirror)

	apt, err := store.AddAppointment(context.Background(), aliceInput())
	require.NoError(t, err)
	assert.Equal(t, 4, repo.writes)

	got, err := store.Appointment(apt.ID)
	require.NoError(t, err)
	assert.Equal(t, apt.ID, got.ID)
}

func TestBackupRoundTrip(t *testing.T) {
	store := newTestStore(t, repositories.NewMemoryRepository(), SyncMirror)
	ctx := context.Background()

	apt, err := store.AddAppointment(ctx, aliceInput())
	require.NoError(t, err)
	require.NoError(t, store.UpdatePaymentStatus(ctx, apt.ID, models.PaymentPartiallyPaid, 50))
	_, err = store.AddPatient(ctx, models.PatientInput{Name: "Bob", Phone: "0101", Allergies: "penicillin"})
	require.NoError(t, err)
	status := models.ToothTreated
	_, err = store.SaveToothData(ctx, GeneralChart(), 3, models.ToothUpdate{Status: &status})
	require.NoError(t, err)

	backup := store.Backup()
	assert.Equal(t, fixedNow.Year(), backup.BackupDate.Year())
	data, err := json.Marshal(backup)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"backupDate"`)

	var decoded Backup
	require.NoError(t, json.Unmarshal(data, &decoded))

	target := newTestStore(t, repositories.NewMemoryRepository(), SyncMirror)
	require.NoError(t, target.Restore(ctx, decoded))

	want := store.Snapshot()
	got := target.Snapshot()
	assert.Equal(t, want.Appointments, got.Appointments)
	assert.Equal(t, want.Patients, got.Patients)
	assert.Equal(t, want.Invoices, got.Invoices)
	assert.Equal(t, want.TeethData, got.TeethData)
}

func TestRestoreRejectsPartialChart(t *testing.T) {
	store := newTestStore(t, repositories.NewMemoryRepository(), SyncMirror)
	err := store.Restore(context.Background(), Backup{TeethData: models.NewChart()[:5]})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestParseSyncPolicy(t *testing.T) {
	p, err := ParseSyncPolicy("")
	require.NoError(t, err)
	assert.Equal(t, SyncMirror, p)
	p, err = ParseSyncPolicy("Isolated")
	require.NoError(t, err)
	assert.Equal(t, SyncIsolated, p)
	_, err = ParseSyncPolicy("merge")
	assert.Error(t, err)
}

// cancelAwareRepository fails writes whose context is already done.
type cancelAwareRepository struct {
	*repositories.MemoryRepository
}

func (r cancelAwareRepository) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.MemoryRepository.Set(ctx, key, value)
}

func TestWritesSurviveCanceledRequest(t *testing.T) {
	repo := cancelAwareRepository{MemoryRepository: repositories.NewMemoryRepository()}
	store := newTestStore(t, repo, SyncMirror)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p, err := store.AddPatient(ctx, models.PatientInput{Name: "Dana", Phone: "0102"})
	require.NoError(t, err)

	reloaded := newTestStore(t, repo, SyncMirror)
	got, err := reloaded.Patient(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dana", got.Name)
}

const legacyBackup = `{
	"appointments": [{"id":"a1","name":"Alice","date":"2024-05-01","tooth":"5","issue":"decay",
		"sessionType":"filling","price":100,"currency":"USD","duration":30,"status":"مؤكد"}],
	"patients": [{"id":"p1","name":"Alice","phone":"0100","appointments":["a1"],"totalDue":100}],
	"invoices": [{"id":"i1","appointmentId":"a1","patientName":"Alice","invoiceNumber":"INV-20240501-001",
		"amount":100,"currency":"USD","dueAmount":100}],
	"teethData": []
}`

func TestRestoreNormalizesLikeLoad(t *testing.T) {
	var backup Backup
	require.NoError(t, json.Unmarshal([]byte(legacyBackup), &backup))

	store := newTestStore(t, repositories.NewMemoryRepository(), SyncMirror)
	require.NoError(t, store.Restore(context.Background(), backup))

	restored, err := store.Appointment("a1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, restored.Status)
	assert.Equal(t, models.PaymentUnpaid, restored.PaymentStatus)
	assert.Equal(t, 5, restored.Tooth)

	inv, err := store.Invoice("i1")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentUnpaid, inv.Status)

	patient, err := store.Patient("p1")
	require.NoError(t, err)
	assert.Equal(t, models.NewChart(), patient.TeethData)

	repo := repositories.NewMemoryRepository()
	var raw struct {
		Appointments json.RawMessage `json:"appointments"`
	}
	require.NoError(t, json.Unmarshal([]byte(legacyBackup), &raw))
	require.NoError(t, repo.Set(context.Background(), repositories.AppointmentsKey, string(raw.Appointments)))
	loaded, err := newTestStore(t, repo, SyncMirror).Appointment("a1")
	require.NoError(t, err)
	assert.Equal(t, loaded.PaymentStatus, restored.PaymentStatus)
	assert.Equal(t, loaded.Status, restored.Status)
}

func TestRestoreRejectsPartialPatientChart(t *testing.T) {
	store := newTestStore(t, repositories.NewMemoryRepository(), SyncMirror)
	ctx := context.Background()
	_, err := store.AddPatient(ctx, models.PatientInput{Name: "Eve", Phone: "1"})
	require.NoError(t, err)
	before := store.Snapshot()

	err = store.Restore(ctx, Backup{Patients: []models.Patient{{ID: "p1", Name: "Alice", TeethData: models.NewChart()[:3]}}})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, before, store.Snapshot())
}

func TestLoadReplacesUnknownLabels(t *testing.T) {
	repo := repositories.NewMemoryRepository()
	ctx := context.Background()
	require.NoError(t, repo.Set(ctx, repositories.AppointmentsKey,
		`[{"id":"a1","name":"Alice","date":"2024-05-01","tooth":3,"price":80,"status":"Rescheduled","paymentStatus":"Pending"},
		  {"id":"a2","name":"Bob","date":"2024-05-02","tooth":4,"price":60,"status":"مكتمل","paymentStatus":"Paid","paidAmount":60}]`))
	require.NoError(t, repo.Set(ctx, repositories.InvoicesKey, `[{"id":"i1","appointmentId":"a1","amount":80,"status":"Pending"}]`))

	store := newTestStore(t, repo, SyncMirror)

	first, err := store.Appointment("a1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, first.Status)
	assert.Equal(t, models.PaymentUnpaid, first.PaymentStatus)

	second, err := store.Appointment("a2")
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, second.Status)
	assert.Equal(t, models.PaymentPaid, second.PaymentStatus)

	inv, err := store.Invoice("i1")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentUnpaid, inv.Status)
}
