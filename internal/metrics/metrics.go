// Package metrics exposes Prometheus collectors for the household backend.
//
// All methods are safe to call on a nil *Metrics, which records nothing.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "roommates"

// Metrics holds the collectors registered on its own registry.
type Metrics struct {
	registry *prometheus.Registry

	rotations        prometheus.Counter
	departures       *prometheus.CounterVec
	cascadedChores   *prometheus.CounterVec
	expensesRecorded prometheus.Counter
	periodsClosed    prometheus.Counter
	rpcDuration      *prometheus.HistogramVec
}

// New creates collectors on a fresh registry, including the Go runtime and
// process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		rotations: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chore_rotations_total",
			Help:      "Chore cycles advanced while listing chores.",
		}),
		departures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "member_departures_total",
			Help:      "Members who left a room, by outcome.",
		}, []string{"outcome"}),
		cascadedChores: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cascaded_chores_total",
			Help:      "Chores changed by a membership cascade, by action.",
		}, []string{"action"}),
		expensesRecorded: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "expenses_recorded_total",
			Help:      "Expenses added to a room ledger.",
		}),
		periodsClosed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "expense_periods_closed_total",
			Help:      "Expense periods closed.",
		}),
		rpcDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rpc_duration_seconds",
			Help:      "RPC handling latency, by procedure and code.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"procedure", "code"}),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RotationsApplied counts chore cycles advanced on read.
func (m *Metrics) RotationsApplied(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.rotations.Add(float64(n))
}

// MemberLeft records one departure and the chores it touched.
func (m *Metrics) MemberLeft(dissolved bool, deleted, reassigned, trimmed int) {
	if m == nil {
		return
	}
	outcome := "left"
	if dissolved {
		outcome = "dissolved"
	}
	m.departures.WithLabelValues(outcome).Inc()
	m.cascadedChores.WithLabelValues("deleted").Add(float64(deleted))
	m.cascadedChores.WithLabelValues("reassigned").Add(float64(reassigned))
	m.cascadedChores.WithLabelValues("trimmed").Add(float64(trimmed))
}

// ExpenseRecorded counts one new expense.
func (m *Metrics) ExpenseRecorded() {
	if m == nil {
		return
	}
	m.expensesRecorded.Inc()
}

// PeriodClosed counts one closed period.
func (m *Metrics) PeriodClosed() {
	if m == nil {
		return
	}
	m.periodsClosed.Inc()
}

// ObserveRPC records how long a procedure took and the code it returned.
// code is the Connect code name, or "ok".
func (m *Metrics) ObserveRPC(procedure, code string, d time.Duration) {
	if m == nil {
		return
	}
	m.rpcDuration.WithLabelValues(procedure, code).Observe(d.Seconds())
}
