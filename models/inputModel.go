package models

// AppointmentInput is the session registration form.
type AppointmentInput struct {
	Name        string  `json:"name"`
	Date        string  `json:"date"`
	Tooth       int     `json:"tooth"`
	Issue       string  `json:"issue"`
	SessionType string  `json:"sessionType"`
	Price       float64 `json:"price"`
	Currency    string  `json:"currency"`
	Duration    int     `json:"duration"`
	Notes       string  `json:"notes"`
}

// PatientInput is the add-patient form.
type PatientInput struct {
	Name             string `json:"name"`
	Phone            string `json:"phone"`
	Email            string `json:"email"`
	DateOfBirth      string `json:"dateOfBirth"`
	Address          string `json:"address"`
	MedicalHistory   string `json:"medicalHistory"`
	Allergies        string `json:"allergies"`
	EmergencyContact string `json:"emergencyContact"`
}

// ToothUpdate is a partial tooth edit; nil fields are left unchanged.
type ToothUpdate struct {
	Status    *ToothStatus `json:"status,omitempty"`
	Color     *string      `json:"color,omitempty"`
	Issue     *string      `json:"issue,omitempty"`
	Treatment *string      `json:"treatment,omitempty"`
	Notes     *string      `json:"notes,omitempty"`
	Priority  *Priority    `json:"priority,omitempty"`
}

// Apply merges the set fields of u into tooth.
func (u ToothUpdate) Apply(tooth ToothData) ToothData {
	if u.Status != nil {
		tooth.Status = *u.Status
	}
	if u.Color != nil {
		tooth.Color = *u.Color
	}
	if u.Issue != nil {
		tooth.Issue = *u.Issue
	}
	if u.Treatment != nil {
		tooth.Treatment = *u.Treatment
	}
	if u.Notes != nil {
		tooth.Notes = *u.Notes
	}
	if u.Priority != nil {
		tooth.Priority = *u.Priority
	}
	return tooth
}
