package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Appointment is one scheduled or performed treatment session.
type Appointment struct {
	ID            string            `json:"id"`
	PatientID     string            `json:"patientId,omitempty"`
	Name          string            `json:"name"`
	Date          string            `json:"date"`
	Tooth         int               `json:"tooth"`
	Issue         string            `json:"issue"`
	SessionType   string            `json:"sessionType"`
	Price         float64           `json:"price"`
	Currency      string            `json:"currency"`
	Duration      int               `json:"duration"`
	Notes         string            `json:"notes"`
	Status        AppointmentStatus `json:"status"`
	CreatedAt     time.Time         `json:"createdAt"`
	InvoiceNumber string            `json:"invoiceNumber,omitempty"`
	PaymentStatus PaymentStatus     `json:"paymentStatus"`
	PaidAmount    float64           `json:"paidAmount"`
}

// Outstanding is the part of the price not yet paid.
func (a Appointment) Outstanding() float64 {
	return a.Price - a.PaidAmount
}

// Patient holds contact details, an embedded tooth chart and running totals.
// Appointments lists appointment ids; TotalPaid and TotalDue are patched
// incrementally by the store.
type Patient struct {
	ID               string      `json:"id"`
	Name             string      `json:"name"`
	Phone            string      `json:"phone"`
	Email            string      `json:"email,omitempty"`
	DateOfBirth      string      `json:"dateOfBirth,omitempty"`
	Address          string      `json:"address,omitempty"`
	MedicalHistory   string      `json:"medicalHistory,omitempty"`
	Allergies        string      `json:"allergies,omitempty"`
	EmergencyContact string      `json:"emergencyContact,omitempty"`
	TeethData        []ToothData `json:"teethData"`
	Appointments     []string    `json:"appointments"`
	TotalPaid        float64     `json:"totalPaid"`
	TotalDue         float64     `json:"totalDue"`
	CreatedAt        time.Time   `json:"createdAt"`
}

// HasAppointment reports whether id is in the patient's appointment list.
func (p Patient) HasAppointment(id string) bool {
	for _, aptID := range p.Appointments {
		if aptID == id {
			return true
		}
	}
	return false
}

// InvoiceItem is a single invoice line.
type InvoiceItem struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Total       float64 `json:"total"`
}

// Invoice is created together with its appointment and mirrors its payment state.
type Invoice struct {
	ID            string        `json:"id"`
	AppointmentID string        `json:"appointmentId"`
	PatientName   string        `json:"patientName"`
	InvoiceNumber string        `json:"invoiceNumber"`
	Date          string        `json:"date"`
	Amount        float64       `json:"amount"`
	Currency      string        `json:"currency"`
	Status        PaymentStatus `json:"status"`
	PaidAmount    float64       `json:"paidAmount"`
	DueAmount     float64       `json:"dueAmount"`
	Items         []InvoiceItem `json:"items"`
	Notes         string        `json:"notes,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
}

// Preferences are the persisted display flags.
type Preferences struct {
	DarkMode bool     `json:"darkMode"`
	Language Language `json:"language"`
}

type appointmentAlias Appointment

// UnmarshalJSON accepts the tooth number either as a number or as the quoted
// string older documents stored.
func (a *Appointment) UnmarshalJSON(data []byte) error {
	aux := struct {
		*appointmentAlias
		Tooth json.RawMessage `json:"tooth"`
	}{appointmentAlias: (*appointmentAlias)(a)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if len(aux.Tooth) == 0 || string(aux.Tooth) == "null" {
		a.Tooth = 0
		return nil
	}
	if err := json.Unmarshal(aux.Tooth, &a.Tooth); err == nil {
		return nil
	}
	var s string
	if err := json.Unmarshal(aux.Tooth, &s); err != nil {
		return fmt.Errorf("tooth: %w", err)
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("tooth %q: %w", s, err)
	}
	a.Tooth = n
	return nil
}
