package models

import "fmt"

// Normalize fills what older documents left out. A missing or unknown status
// becomes Confirmed and a missing or unknown payment status becomes Unpaid.
func (a *Appointment) Normalize() {
	if !a.Status.Valid() {
		a.Status = StatusConfirmed
	}
	if !a.PaymentStatus.Valid() {
		a.PaymentStatus = PaymentUnpaid
	}
}

// Normalize sets a missing or unknown invoice status to Unpaid.
func (inv *Invoice) Normalize() {
	if !inv.Status.Valid() {
		inv.Status = PaymentUnpaid
	}
}

// Normalize gives a patient without a chart a healthy one and rejects a chart
// that is not 32 teeth long.
func (p *Patient) Normalize() error {
	chart, err := NormalizeChart(p.TeethData)
	if err != nil {
		return fmt.Errorf("patient %s: %w", p.ID, err)
	}
	p.TeethData = chart
	if p.Appointments == nil {
		p.Appointments = []string{}
	}
	return nil
}

// NormalizeChart returns a healthy chart for an empty one and chart itself
// when it holds exactly 32 teeth.
func NormalizeChart(chart []ToothData) ([]ToothData, error) {
	switch len(chart) {
	case 0:
		return NewChart(), nil
	case TeethCount:
		return chart, nil
	}
	return nil, fmt.Errorf("teethData must hold %d teeth, got %d", TeethCount, len(chart))
}
