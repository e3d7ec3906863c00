package services

import (
	"ClinicDesk/logging"
	"ClinicDesk/metrics"
	"ClinicDesk/models"
	"ClinicDesk/repositories"
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"
)

// SyncPolicy decides which charts a patient-scoped tooth edit writes.
type SyncPolicy string

const (
	// SyncMirror writes the patient chart and the general chart.
	SyncMirror SyncPolicy = "mirror"
	// SyncIsolated writes only the patient chart.
	SyncIsolated SyncPolicy = "isolated"
)

// ParseSyncPolicy accepts "mirror" or "isolated".
func ParseSyncPolicy(s string) (SyncPolicy, error) {
	switch SyncPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case SyncMirror, "":
		return SyncMirror, nil
	case SyncIsolated:
		return SyncIsolated, nil
	}
	return "", fmt.Errorf("unknown tooth chart sync policy %q", s)
}

// Options configures a ClinicStore.
type Options struct {
	SyncPolicy SyncPolicy
	Logger     *logging.Logger
	Metrics    *metrics.StoreMetrics
	// Now and Intn default to time.Now and a seeded math/rand source.
	Now  func() time.Time
	Intn func(n int) int
}

// ClinicStore owns the appointments, patients, invoices and the general tooth
// chart. Every operation runs under one mutex covering all four collections,
// so callers never observe a half-applied fan-out. The in-memory state is the
// source of truth; document writes that fail are logged and the operation
// still succeeds.
type ClinicStore struct {
	mu sync.RWMutex

	docs   *repositories.ClinicDocuments
	policy SyncPolicy
	logger *logging.Logger
	stats  *metrics.StoreMetrics
	now    func() time.Time
	intn   func(n int) int

	appointments []models.Appointment
	patients     []models.Patient
	invoices     []models.Invoice
	teeth        []models.ToothData
	prefs        models.Preferences

	// patientByName maps a lower-cased name to the first patient with it.
	patientByName map[string]string
	lastID        int64
}

// NewClinicStore loads the persisted state and returns a ready store.
func NewClinicStore(ctx context.Context, docs *repositories.ClinicDocuments, opts Options) (*ClinicStore, error) {
	state, err := docs.Load(ctx)
	if err != nil {
		return nil, err
	}

	s := &ClinicStore{
		docs:   docs,
		policy: opts.SyncPolicy,
		logger: opts.Logger,
		stats:  opts.Metrics,
		now:    opts.Now,
		intn:   opts.Intn,
	}
	if s.policy == "" {
		s.policy = SyncMirror
	}
	if s.logger == nil {
		s.logger = logging.Default()
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.intn == nil {
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		var rngMu sync.Mutex
		s.intn = func(n int) int {
			rngMu.Lock()
			defer rngMu.Unlock()
			return rng.Intn(n)
		}
	}

	s.replaceState(state)
	if len(state.Relabeled) > 0 {
		s.logger.Warn("unknown status labels replaced with defaults",
			"records", state.Relabeled)
	}
	s.logger.Info("clinic store loaded",
		"appointments", len(s.appointments),
		"patients", len(s.patients),
		"invoices", len(s.invoices),
		"sync_policy", string(s.policy),
	)
	return s, nil
}

func (s *ClinicStore) replaceState(state repositories.ClinicState) {
	s.appointments = state.Appointments
	s.patients = state.Patients
	s.invoices = state.Invoices
	s.teeth = state.TeethData
	s.prefs = state.Preferences
	s.rebuildNameIndex()
}

func (s *ClinicStore) rebuildNameIndex() {
	s.patientByName = make(map[string]string, len(s.patients))
	for _, p := range s.patients {
		key := nameKey(p.Name)
		if _, exists := s.patientByName[key]; !exists {
			s.patientByName[key] = p.ID
		}
	}
}

func nameKey(name string) string {
	return strings.ToLower(name)
}

// SyncPolicy reports the active chart sync policy.
func (s *ClinicStore) SyncPolicy() SyncPolicy {
	return s.policy
}

// nextID returns a millisecond timestamp id, bumped past the previous one so
// ids stay unique within the process.
func (s *ClinicStore) nextID() string {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return strconv.FormatInt(id, 10)
}

func (s *ClinicStore) timestamp() time.Time {
	return s.now().UTC()
}

const invoiceNumberAttempts = 10

// invoiceNumber builds INV-YYYYMMDD-NNN, redrawing the suffix when it collides
// with an existing invoice. With every suffix of the day taken it returns the
// last draw.
func (s *ClinicStore) invoiceNumber() string {
	prefix := "INV-" + s.now().Format("20060102") + "-"
	taken := make(map[string]struct{}, len(s.invoices))
	for _, inv := range s.invoices {
		taken[inv.InvoiceNumber] = struct{}{}
	}

	var candidate string
	for i := 0; i < invoiceNumberAttempts; i++ {
		candidate = fmt.Sprintf("%s%03d", prefix, s.intn(1000))
		if _, exists := taken[candidate]; !exists {
			return candidate
		}
	}
	for n := 0; n < 1000; n++ {
		next := fmt.Sprintf("%s%03d", prefix, n)
		if _, exists := taken[next]; !exists {
			return next
		}
	}
	return candidate
}

type dirty uint8

const (
	dirtyAppointments dirty = 1 << iota
	dirtyPatients
	dirtyInvoices
	dirtyTeeth
	dirtyPreferences
)

// persist writes the changed collections. Called with s.mu held so writes
// land in mutation order.
func (s *ClinicStore) persist(ctx context.Context, d dirty) {
	// Writes outlive the request that triggered them.
	ctx = context.WithoutCancel(ctx)
	if d&dirtyAppointments != 0 {
		s.recordWrite(repositories.AppointmentsKey, s.docs.SaveAppointments(ctx, s.appointments))
	}
	if d&dirtyPatients != 0 {
		s.recordWrite(repositories.PatientsKey, s.docs.SavePatients(ctx, s.patients))
	}
	if d&dirtyInvoices != 0 {
		s.recordWrite(repositories.InvoicesKey, s.docs.SaveInvoices(ctx, s.invoices))
	}
	if d&dirtyTeeth != 0 {
		s.recordWrite(repositories.TeethDataKey, s.docs.SaveTeethData(ctx, s.teeth))
	}
	if d&dirtyPreferences != 0 {
		s.recordWrite("preferences", s.docs.SavePreferences(ctx, s.prefs))
	}
}

func (s *ClinicStore) recordWrite(document string, err error) {
	s.stats.ObserveWrite(document, err)
	if err != nil {
		s.logger.Error("failed to persist document, continuing with in-memory state",
			"document", document, "error", err)
	}
}

func (s *ClinicStore) observe(operation string, err error) {
	result := "ok"
	switch {
	case err == nil:
	case isValidation(err):
		result = "validation_error"
	case isNotFound(err):
		result = "not_found"
	default:
		result = "error"
	}
	s.stats.ObserveOperation(operation, result)
}

// Preferences returns the display flags.
func (s *ClinicStore) Preferences() models.Preferences {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prefs
}

// SetPreferences replaces the display flags.
func (s *ClinicStore) SetPreferences(ctx context.Context, prefs models.Preferences) (err error) {
	defer func() { s.observe("set_preferences", err) }()

	lang, err := models.ParseLanguage(string(prefs.Language))
	if err != nil {
		return invalid(err)
	}
	prefs.Language = lang

	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs = prefs
	s.persist(ctx, dirtyPreferences)
	return nil
}
