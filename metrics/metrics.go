package metrics

import "github.com/prometheus/client_golang/prometheus"

// StoreMetrics counts record store operations and document writes.
type StoreMetrics struct {
	operations *prometheus.CounterVec
	writes     *prometheus.CounterVec
}

func NewStoreMetrics(reg prometheus.Registerer) *StoreMetrics {
	m := &StoreMetrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clinicdesk",
			Subsystem: "store",
			Name:      "operations_total",
			Help:      "Record store operations by result",
		}, []string{"operation", "result"}),
		writes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clinicdesk",
			Subsystem: "persistence",
			Name:      "writes_total",
			Help:      "Document writes by result",
		}, []string{"document", "result"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.operations, m.writes)
	return m
}

func (m *StoreMetrics) ObserveOperation(operation, result string) {
	if m == nil {
		return
	}
	m.operations.WithLabelValues(operation, result).Inc()
}

func (m *StoreMetrics) ObserveWrite(document string, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.writes.WithLabelValues(document, result).Inc()
}
