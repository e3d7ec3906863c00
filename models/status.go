package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Language selects which label of a bilingual pair is shown.
type Language string

const (
	Arabic  Language = "ar"
	English Language = "en"
)

// ParseLanguage accepts "ar" or "en"; anything else is an error.
func ParseLanguage(s string) (Language, error) {
	switch Language(strings.ToLower(strings.TrimSpace(s))) {
	case Arabic:
		return Arabic, nil
	case English:
		return English, nil
	}
	return "", fmt.Errorf("unknown language %q", s)
}

// Pick returns the Arabic or English text for the language.
func (l Language) Pick(arabic, english string) string {
	if l == Arabic {
		return arabic
	}
	return english
}

// AppointmentStatus is the lifecycle state of an appointment. Any status may
// follow any other.
type AppointmentStatus string

const (
	StatusConfirmed AppointmentStatus = "Confirmed"
	StatusCompleted AppointmentStatus = "Completed"
	StatusCancelled AppointmentStatus = "Cancelled"
)

// PaymentStatus is the payment state shared by an appointment and its invoice.
type PaymentStatus string

const (
	PaymentPaid          PaymentStatus = "Paid"
	PaymentUnpaid        PaymentStatus = "Unpaid"
	PaymentPartiallyPaid PaymentStatus = "Partially Paid"
)

type labelPair struct {
	arabic  string
	english string
}

var appointmentStatusLabels = map[AppointmentStatus]labelPair{
	StatusConfirmed: {"مؤكد", "Confirmed"},
	StatusCompleted: {"مكتمل", "Completed"},
	StatusCancelled: {"ملغي", "Cancelled"},
}

var paymentStatusLabels = map[PaymentStatus]labelPair{
	PaymentPaid:          {"مدفوع", "Paid"},
	PaymentUnpaid:        {"غير مدفوع", "Unpaid"},
	PaymentPartiallyPaid: {"مدفوع جزئياً", "Partially Paid"},
}

// AppointmentStatuses lists the statuses in display order.
var AppointmentStatuses = []AppointmentStatus{StatusConfirmed, StatusCompleted, StatusCancelled}

// PaymentStatuses lists the payment statuses in display order.
var PaymentStatuses = []PaymentStatus{PaymentPaid, PaymentUnpaid, PaymentPartiallyPaid}

// ParseAppointmentStatus accepts either label of a status.
func ParseAppointmentStatus(label string) (AppointmentStatus, error) {
	label = strings.TrimSpace(label)
	for status, pair := range appointmentStatusLabels {
		if label == pair.arabic || strings.EqualFold(label, pair.english) {
			return status, nil
		}
	}
	return "", fmt.Errorf("unknown appointment status %q", label)
}

// ParsePaymentStatus accepts either label of a payment status.
func ParsePaymentStatus(label string) (PaymentStatus, error) {
	label = strings.TrimSpace(label)
	for status, pair := range paymentStatusLabels {
		if label == pair.arabic || strings.EqualFold(label, pair.english) {
			return status, nil
		}
	}
	return "", fmt.Errorf("unknown payment status %q", label)
}

// Label returns the display text in the given language.
func (s AppointmentStatus) Label(lang Language) string {
	pair, ok := appointmentStatusLabels[s]
	if !ok {
		return string(s)
	}
	return lang.Pick(pair.arabic, pair.english)
}

// Valid reports whether s is one of the known statuses.
func (s AppointmentStatus) Valid() bool {
	_, ok := appointmentStatusLabels[s]
	return ok
}

// UnmarshalJSON decodes either label so documents saved in Arabic still load.
func (s *AppointmentStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == "" {
		*s = ""
		return nil
	}
	parsed, err := ParseAppointmentStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Label returns the display text in the given language.
func (s PaymentStatus) Label(lang Language) string {
	pair, ok := paymentStatusLabels[s]
	if !ok {
		return string(s)
	}
	return lang.Pick(pair.arabic, pair.english)
}

// Valid reports whether s is one of the known payment statuses.
func (s PaymentStatus) Valid() bool {
	_, ok := paymentStatusLabels[s]
	return ok
}

// UnmarshalJSON decodes either label so documents saved in Arabic still load.
func (s *PaymentStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == "" {
		*s = ""
		return nil
	}
	parsed, err := ParsePaymentStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// AllStatusLabel is the filter sentinel that disables status filtering.
func AllStatusLabel(lang Language) string {
	return lang.Pick("الكل", "All")
}

// IsAllStatus reports whether label is the "all" sentinel in either language
// or empty.
func IsAllStatus(label string) bool {
	label = strings.TrimSpace(label)
	return label == "" || label == "الكل" || strings.EqualFold(label, "all")
}
