package exports

import (
	"ClinicDesk/models"
	"encoding/csv"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

var appointmentHeaders = map[models.Language][]string{
	models.Arabic:  {"اسم المريض", "التاريخ", "رقم السن", "نوع الإصابة", "نوع الجلسة", "السعر", "العملة", "المدة", "الحالة", "حالة الدفع", "المبلغ المدفوع"},
	models.English: {"Patient Name", "Date", "Tooth Number", "Issue Type", "Session Type", "Price", "Currency", "Duration", "Status", "Payment Status", "Paid Amount"},
}

var teethHeaders = map[models.Language][]string{
	models.Arabic:  {"رقم السن", "الحالة", "الإصابة", "العلاج", "الأولوية", "الملاحظات"},
	models.English: {"Tooth Number", "Status", "Issue", "Treatment", "Priority", "Notes"},
}

const (
	AppointmentsFilename = "appointments.csv"
	ReportFilename       = "clinic-report.txt"
	BackupFilename       = "clinic-backup.json"
)

// TeethFilename names the teeth export after the patient, or "general".
func TeethFilename(patientName string) string {
	if patientName == "" {
		patientName = "general"
	}
	return "teeth-data-" + patientName + ".csv"
}

// WriteAppointmentsCSV writes one row per appointment with statuses in lang.
func WriteAppointmentsCSV(w io.Writer, appointments []models.Appointment, lang models.Language) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(headers(appointmentHeaders, lang)); err != nil {
		return errors.Wrap(err, "failed to write appointments header")
	}
	for _, apt := range appointments {
		row := []string{
			apt.Name,
			apt.Date,
			strconv.Itoa(apt.Tooth),
			apt.Issue,
			apt.SessionType,
			formatAmount(apt.Price),
			apt.Currency,
			strconv.Itoa(apt.Duration),
			apt.Status.Label(lang),
			apt.PaymentStatus.Label(lang),
			formatAmount(apt.PaidAmount),
		}
		if err := cw.Write(row); err != nil {
			return errors.Wrapf(err, "failed to write appointment %s", apt.ID)
		}
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "failed to flush appointments csv")
}

// WriteTeethCSV writes the teeth of chart that have an issue. A missing
// priority is written as low.
func WriteTeethCSV(w io.Writer, chart []models.ToothData, lang models.Language) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(headers(teethHeaders, lang)); err != nil {
		return errors.Wrap(err, "failed to write teeth header")
	}
	for _, tooth := range chart {
		if !tooth.HasIssue {
			continue
		}
		status := tooth.Status
		if status == "" {
			status = models.ToothHealthy
		}
		priority := tooth.Priority
		if priority == "" {
			priority = models.PriorityLow
		}
		row := []string{
			strconv.Itoa(tooth.Number),
			string(status),
			tooth.Issue,
			tooth.Treatment,
			string(priority),
			tooth.Notes,
		}
		if err := cw.Write(row); err != nil {
			return errors.Wrapf(err, "failed to write tooth %d", tooth.Number)
		}
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "failed to flush teeth csv")
}

func headers(set map[models.Language][]string, lang models.Language) []string {
	if h, ok := set[lang]; ok {
		return h
	}
	return set[models.Arabic]
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
