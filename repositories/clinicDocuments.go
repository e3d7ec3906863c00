package repositories

import (
	"ClinicDesk/models"
	"context"
	"encoding/json"
	"strconv"

	"github.com/pkg/errors"
)

// Document keys, one per collection or flag.
const (
	AppointmentsKey = "appointments"
	PatientsKey     = "patients"
	InvoicesKey     = "invoices"
	TeethDataKey    = "teethData"
	DarkModeKey     = "darkMode"
	LanguageKey     = "language"
)

// ClinicState is everything the record store persists.
type ClinicState struct {
	Appointments []models.Appointment
	Patients     []models.Patient
	Invoices     []models.Invoice
	TeethData    []models.ToothData
	Preferences  models.Preferences
	// Relabeled lists "collection/id" for records whose unknown status
	// labels were replaced by the defaults while loading.
	Relabeled []string
}

// ClinicDocuments encodes the clinic state as named JSON documents.
type ClinicDocuments struct {
	repo DocumentRepository
}

func NewClinicDocuments(repo DocumentRepository) *ClinicDocuments {
	return &ClinicDocuments{repo: repo}
}

// Load reads every document. Missing documents yield empty collections, a
// healthy general chart and Arabic display language.
func (d *ClinicDocuments) Load(ctx context.Context) (ClinicState, error) {
	state := ClinicState{
		Appointments: []models.Appointment{},
		Patients:     []models.Patient{},
		Invoices:     []models.Invoice{},
		Preferences:  models.Preferences{Language: models.Arabic},
	}

	relabeled, err := loadRecords(ctx, d, AppointmentsKey, appointmentLabels, &state.Appointments)
	if err != nil {
		return ClinicState{}, err
	}
	state.Relabeled = append(state.Relabeled, relabeled...)
	for i := range state.Appointments {
		state.Appointments[i].Normalize()
	}

	if _, err := d.loadJSON(ctx, PatientsKey, &state.Patients); err != nil {
		return ClinicState{}, err
	}
	for i := range state.Patients {
		if err := state.Patients[i].Normalize(); err != nil {
			return ClinicState{}, errors.Wrapf(err, "failed to load %s", PatientsKey)
		}
	}

	relabeled, err = loadRecords(ctx, d, InvoicesKey, invoiceLabels, &state.Invoices)
	if err != nil {
		return ClinicState{}, err
	}
	state.Relabeled = append(state.Relabeled, relabeled...)
	for i := range state.Invoices {
		state.Invoices[i].Normalize()
	}

	if _, err := d.loadJSON(ctx, TeethDataKey, &state.TeethData); err != nil {
		return ClinicState{}, err
	}
	if state.TeethData, err = models.NormalizeChart(state.TeethData); err != nil {
		return ClinicState{}, errors.Wrapf(err, "failed to load %s", TeethDataKey)
	}

	if raw, found, err := d.repo.Get(ctx, DarkModeKey); err != nil {
		return ClinicState{}, errors.Wrap(err, "failed to load dark mode flag")
	} else if found {
		state.Preferences.DarkMode, _ = strconv.ParseBool(raw)
	}

	if raw, found, err := d.repo.Get(ctx, LanguageKey); err != nil {
		return ClinicState{}, errors.Wrap(err, "failed to load language flag")
	} else if found {
		if lang, err := models.ParseLanguage(raw); err == nil {
			state.Preferences.Language = lang
		}
	}

	return state, nil
}

func (d *ClinicDocuments) SaveAppointments(ctx context.Context, appointments []models.Appointment) error {
	return d.saveJSON(ctx, AppointmentsKey, appointments)
}

func (d *ClinicDocuments) SavePatients(ctx context.Context, patients []models.Patient) error {
	return d.saveJSON(ctx, PatientsKey, patients)
}

func (d *ClinicDocuments) SaveInvoices(ctx context.Context, invoices []models.Invoice) error {
	return d.saveJSON(ctx, InvoicesKey, invoices)
}

func (d *ClinicDocuments) SaveTeethData(ctx context.Context, teeth []models.ToothData) error {
	return d.saveJSON(ctx, TeethDataKey, teeth)
}

// SavePreferences writes the two flag documents.
func (d *ClinicDocuments) SavePreferences(ctx context.Context, prefs models.Preferences) error {
	if err := d.repo.Set(ctx, DarkModeKey, strconv.FormatBool(prefs.DarkMode)); err != nil {
		return errors.Wrap(err, "failed to save dark mode flag")
	}
	if err := d.repo.Set(ctx, LanguageKey, string(prefs.Language)); err != nil {
		return errors.Wrap(err, "failed to save language flag")
	}
	return nil
}

func (d *ClinicDocuments) loadJSON(ctx context.Context, key string, dst interface{}) (bool, error) {
	raw, found, err := d.repo.Get(ctx, key)
	if err != nil {
		return false, errors.Wrapf(err, "failed to load %s", key)
	}
	if !found || raw == "" {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return false, errors.Wrapf(err, "failed to decode %s", key)
	}
	return true, nil
}

func (d *ClinicDocuments) saveJSON(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "failed to encode %s", key)
	}
	return d.repo.Set(ctx, key, string(data))
}

type labelParser func(string) error

var appointmentLabels = map[string]labelParser{
	"status": func(s string) error {
		_, err := models.ParseAppointmentStatus(s)
		return err
	},
	"paymentStatus": parsePaymentLabel,
}

var invoiceLabels = map[string]labelParser{
	"status": parsePaymentLabel,
}

func parsePaymentLabel(s string) error {
	_, err := models.ParsePaymentStatus(s)
	return err
}

// loadRecords decodes a JSON array document record by record. A record
// holding a status label no language knows is decoded again without that
// label, so normalization gives it the default; its "key/id" is returned.
func loadRecords[T any](ctx context.Context, d *ClinicDocuments, key string, labels map[string]labelParser, dst *[]T) ([]string, error) {
	var items []json.RawMessage
	found, err := d.loadJSON(ctx, key, &items)
	if err != nil || !found {
		return nil, err
	}

	records := make([]T, 0, len(items))
	var relabeled []string
	for i, item := range items {
		var rec T
		decodeErr := json.Unmarshal(item, &rec)
		if decodeErr == nil {
			records = append(records, rec)
			continue
		}

		var fields map[string]json.RawMessage
		if err := json.Unmarshal(item, &fields); err != nil {
			return nil, errors.Wrapf(decodeErr, "failed to decode %s record %d", key, i)
		}
		dropped := false
		for name, parse := range labels {
			var label string
			if json.Unmarshal(fields[name], &label) == nil && label != "" && parse(label) != nil {
				delete(fields, name)
				dropped = true
			}
		}
		if !dropped {
			return nil, errors.Wrapf(decodeErr, "failed to decode %s record %d", key, i)
		}
		stripped, err := json.Marshal(fields)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to encode %s record %d", key, i)
		}
		var zero T
		rec = zero
		if err := json.Unmarshal(stripped, &rec); err != nil {
			return nil, errors.Wrapf(err, "failed to decode %s record %d", key, i)
		}

		var id string
		_ = json.Unmarshal(fields["id"], &id)
		relabeled = append(relabeled, key+"/"+id)
		records = append(records, rec)
	}
	*dst = records
	return relabeled, nil
}
