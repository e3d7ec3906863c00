package views

import (
	"ClinicDesk/models"
	"ClinicDesk/services"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ID names one screen of the application.
type ID string

const (
	Login             ID = "login"
	Register          ID = "register"
	Dashboard         ID = "dashboard"
	Appointments      ID = "appointments"
	AddAppointment    ID = "add-appointment"
	Patients          ID = "patients"
	AddPatient        ID = "add-patient"
	PatientDetails    ID = "patient-details"
	PatientTeethChart ID = "patient-teeth-chart"
	TeethChart        ID = "teeth-chart"
	Invoices          ID = "invoices"
	InvoiceDetails    ID = "invoice-details"
	Nematodes         ID = "nematodes"
	NematodeDetails   ID = "nematode-details"
)

type viewInfo struct {
	arabic, english string
	public          bool
}

var known = map[ID]viewInfo{
	Login:             {"تسجيل الدخول", "Login", true},
	Register:          {"إنشاء حساب", "Register", true},
	Dashboard:         {"لوحة التحكم", "Dashboard", false},
	Appointments:      {"الجلسات", "Sessions", false},
	AddAppointment:    {"إضافة جلسة", "Add Session", false},
	Patients:          {"المرضى", "Patients", false},
	AddPatient:        {"إضافة مريض", "Add Patient", false},
	PatientDetails:    {"تفاصيل المريض", "Patient Details", false},
	PatientTeethChart: {"مخطط أسنان المريض", "Patient Teeth Chart", false},
	TeethChart:        {"مخطط الأسنان", "Teeth Chart", false},
	Invoices:          {"الفواتير", "Invoices", false},
	InvoiceDetails:    {"تفاصيل الفاتورة", "Invoice Details", false},
	Nematodes:         {"الديدان الخيطية", "Nematodes", false},
	NematodeDetails:   {"تفاصيل النوع", "Species Details", false},
}

// ParseID accepts one of the known view names.
func ParseID(s string) (ID, error) {
	id := ID(s)
	if _, ok := known[id]; !ok {
		return "", fmt.Errorf("unknown view %q", s)
	}
	return id, nil
}

// Title is the screen heading in lang.
func (id ID) Title(lang models.Language) string {
	info, ok := known[id]
	if !ok {
		return string(id)
	}
	return lang.Pick(info.arabic, info.english)
}

// Public views are reachable without a session.
func (id ID) Public() bool {
	return known[id].public
}

// Context is what a screen needs besides the store: the selection it was
// opened with and the display language.
type Context struct {
	View       ID              `json:"view"`
	Title      string          `json:"title"`
	PatientID  string          `json:"patientId,omitempty"`
	InvoiceID  string          `json:"invoiceId,omitempty"`
	NematodeID string          `json:"nematodeId,omitempty"`
	Language   models.Language `json:"language"`
}

// NewContext builds and validates the context of a view. Selections that the
// view does not use are dropped.
func NewContext(view ID, patientID, invoiceID, nematodeID string, lang models.Language) (Context, error) {
	c := Context{View: view, Language: lang}
	switch view {
	case PatientDetails, PatientTeethChart:
		c.PatientID = patientID
	case InvoiceDetails:
		c.InvoiceID = invoiceID
	case NematodeDetails:
		c.NematodeID = nematodeID
	}
	if err := c.Validate(); err != nil {
		return Context{}, err
	}
	c.Title = view.Title(lang)
	return c, nil
}

// Validate checks that detail views carry their selection.
func (c Context) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.View, validation.Required, validation.By(func(value interface{}) error {
			_, err := ParseID(string(value.(ID)))
			return err
		})),
		validation.Field(&c.Language, validation.In(models.Arabic, models.English)),
		validation.Field(&c.PatientID, validation.When(c.View == PatientDetails || c.View == PatientTeethChart, validation.Required)),
		validation.Field(&c.InvoiceID, validation.When(c.View == InvoiceDetails, validation.Required)),
		validation.Field(&c.NematodeID, validation.When(c.View == NematodeDetails, validation.Required)),
	)
}

// ChartScope is the tooth chart the view reads and edits.
func (c Context) ChartScope() services.ChartScope {
	if c.PatientID != "" {
		return services.PatientChart(c.PatientID)
	}
	return services.GeneralChart()
}
