package utils

import (
	"ClinicDesk/models"
	"errors"
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// DateLayout is the calendar date format used by appointments.
const DateLayout = "2006-01-02"

var (
	ErrInvalidDate      = errors.New("must be a date in YYYY-MM-DD format")
	ErrInvalidColor     = errors.New("must be a hex color such as #ff0000")
	errUnknownStatus    = errors.New("must be a known tooth status")
	errUnknownPriority  = errors.New("must be one of low, medium, high, urgent")
	errNegativeAmount   = errors.New("must not be negative")
	errUnknownPayStatus = errors.New("must be a known payment status")

	colorRegex    = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
	currencyRegex = regexp.MustCompile(`^[A-Za-z]{3}$`)
)

// ValidateAppointmentInput checks the session registration form.
func ValidateAppointmentInput(input models.AppointmentInput) error {
	return validation.ValidateStruct(&input,
		validation.Field(&input.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&input.Date, validation.Required, validation.By(validateDate)),
		validation.Field(&input.Tooth, validation.Required, validation.Min(1), validation.Max(models.TeethCount)),
		validation.Field(&input.Issue, validation.Required),
		validation.Field(&input.SessionType, validation.Required),
		validation.Field(&input.Price, validation.Min(0.0)),
		validation.Field(&input.Currency, validation.When(input.Currency != "", validation.Match(currencyRegex))),
		validation.Field(&input.Duration, validation.Required, validation.Min(1)),
	)
}

// ValidatePatientInput checks the add-patient form.
func ValidatePatientInput(input models.PatientInput) error {
	return validation.ValidateStruct(&input,
		validation.Field(&input.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&input.Phone, validation.Required),
		validation.Field(&input.Email, is.EmailFormat),
		validation.Field(&input.DateOfBirth, validation.When(input.DateOfBirth != "", validation.By(validateDate))),
	)
}

// ValidateToothUpdate checks a tooth number and the fields set on a partial edit.
func ValidateToothUpdate(number int, update models.ToothUpdate) error {
	errs := validation.Errors{
		"number": validation.Validate(number, validation.Required, validation.Min(1), validation.Max(models.TeethCount)),
	}
	if update.Status != nil {
		errs["status"] = validation.Validate(*update.Status, validation.By(func(value interface{}) error {
			if !value.(models.ToothStatus).Valid() {
				return errUnknownStatus
			}
			return nil
		}))
	}
	if update.Priority != nil && *update.Priority != "" {
		errs["priority"] = validation.Validate(string(*update.Priority), validation.In(
			string(models.PriorityLow), string(models.PriorityMedium), string(models.PriorityHigh), string(models.PriorityUrgent),
		).Error(errUnknownPriority.Error()))
	}
	if update.Color != nil && *update.Color != "" {
		errs["color"] = validation.Validate(*update.Color, validation.Match(colorRegex).Error(ErrInvalidColor.Error()))
	}
	return errs.Filter()
}

// ValidateToothNumber checks that number is on the chart.
func ValidateToothNumber(number int) error {
	return validation.Errors{
		"number": validation.Validate(number, validation.Required, validation.Min(1), validation.Max(models.TeethCount)),
	}.Filter()
}

// ValidatePayment checks a payment update.
func ValidatePayment(status models.PaymentStatus, paidAmount float64) error {
	return validation.Errors{
		"paymentStatus": validation.Validate(status, validation.Required, validation.By(func(value interface{}) error {
			if !value.(models.PaymentStatus).Valid() {
				return errUnknownPayStatus
			}
			return nil
		})),
		"paidAmount": validation.Validate(paidAmount, validation.By(func(value interface{}) error {
			if value.(float64) < 0 {
				return errNegativeAmount
			}
			return nil
		})),
	}.Filter()
}

func validateDate(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if _, err := time.Parse(DateLayout, s); err != nil {
		return ErrInvalidDate
	}
	return nil
}
