package models

import "time"

// TeethCount is the number of teeth on a chart.
const TeethCount = 32

// ToothStatus is the condition of a single tooth.
type ToothStatus string

const (
	ToothHealthy        ToothStatus = "healthy"
	ToothCavity         ToothStatus = "cavity"
	ToothTreated        ToothStatus = "treated"
	ToothMissing        ToothStatus = "missing"
	ToothUnderTreatment ToothStatus = "under-treatment"
)

// ToothStatuses lists every tooth status.
var ToothStatuses = []ToothStatus{ToothHealthy, ToothCavity, ToothTreated, ToothMissing, ToothUnderTreatment}

// Valid reports whether s is a known tooth status.
func (s ToothStatus) Valid() bool {
	for _, known := range ToothStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Priority ranks how urgently a tooth needs attention.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Priorities lists every priority.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}

// ToothData is one entry of a 32-tooth chart.
type ToothData struct {
	Number      int         `json:"number"`
	Status      ToothStatus `json:"status"`
	Color       string      `json:"color,omitempty"`
	Issue       string      `json:"issue,omitempty"`
	Treatment   string      `json:"treatment,omitempty"`
	Notes       string      `json:"notes,omitempty"`
	Priority    Priority    `json:"priority,omitempty"`
	HasIssue    bool        `json:"hasIssue"`
	LastUpdated *time.Time  `json:"lastUpdated,omitempty"`
}

// DefaultTooth returns a healthy tooth with no issue.
func DefaultTooth(number int) ToothData {
	return ToothData{Number: number, Status: ToothHealthy}
}

// NewChart returns a fresh all-healthy chart.
func NewChart() []ToothData {
	chart := make([]ToothData, 0, TeethCount)
	for i := 1; i <= TeethCount; i++ {
		chart = append(chart, DefaultTooth(i))
	}
	return chart
}

// CopyChart returns a deep copy of chart.
func CopyChart(chart []ToothData) []ToothData {
	out := make([]ToothData, len(chart))
	for i, tooth := range chart {
		out[i] = tooth
		if tooth.LastUpdated != nil {
			ts := *tooth.LastUpdated
			out[i].LastUpdated = &ts
		}
	}
	return out
}

// ComputeHasIssue is true when an issue is recorded or the tooth is not healthy.
func (t ToothData) ComputeHasIssue() bool {
	return t.Issue != "" || t.Status != ToothHealthy
}
