// Package metrics holds the prometheus collectors of the service.
//
// Every method is safe to call on a nil *Metrics so that components can be
// built without instrumentation in tests.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "dexkeeper"

type Metrics struct {
	ImportedRecords prometheus.Counter
	ImportBatches   prometheus.Counter
	ImportRuns      *prometheus.CounterVec
	RemoteRequests  *prometheus.CounterVec
	MigrationUnits  *prometheus.CounterVec
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ImportedRecords: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "import",
			Name:      "records_total",
			Help:      "Number of catalog records normalized and persisted.",
		}),
		ImportBatches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "import",
			Name:      "batches_total",
			Help:      "Number of import batches handed to the persistence callback.",
		}),
		ImportRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "import",
			Name:      "runs_total",
			Help:      "Number of import runs by outcome.",
		}, []string{"outcome"}),
		RemoteRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "catalog",
			Name:      "requests_total",
			Help:      "Requests sent to the remote catalog by endpoint and status code.",
		}, []string{"endpoint", "code"}),
		MigrationUnits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "migrations",
			Name:      "units_total",
			Help:      "Migration units run by direction and outcome.",
		}, []string{"direction", "outcome"}),
	}

	reg.MustRegister(
		m.ImportedRecords,
		m.ImportBatches,
		m.ImportRuns,
		m.RemoteRequests,
		m.MigrationUnits,
	)
	return m
}

func (m *Metrics) ObserveBatch(records int) {
	if m == nil {
		return
	}
	m.ImportBatches.Inc()
	m.ImportedRecords.Add(float64(records))
}

func (m *Metrics) ObserveImport(success bool) {
	if m == nil {
		return
	}
	m.ImportRuns.WithLabelValues(outcome(success)).Inc()
}

// ObserveRemote records a catalog request. A zero code means the request never got a response.
func (m *Metrics) ObserveRemote(endpoint string, code int) {
	if m == nil {
		return
	}
	label := "error"
	if code > 0 {
		label = strconv.Itoa(code)
	}
	m.RemoteRequests.WithLabelValues(endpoint, label).Inc()
}

func (m *Metrics) ObserveMigration(direction string, success bool) {
	if m == nil {
		return
	}
	m.MigrationUnits.WithLabelValues(direction, outcome(success)).Inc()
}

func outcome(success bool) string {
	if success {
		return "success"
	}
	return "failure"
}
