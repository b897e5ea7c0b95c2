// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "eventreg"

// Registry is the Prometheus registry exposed on /metrics.
var Registry = prometheus.NewRegistry()

// RegistrationsTotal counts Register calls by outcome: created, already_registered, rejected, error.
var RegistrationsTotal = promauto.With(Registry).NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts by outcome",
	},
	[]string{"outcome"},
)

// UnregistrationsTotal counts Unregister calls by outcome: removed, not_found, error.
var UnregistrationsTotal = promauto.With(Registry).NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "unregistrations_total",
		Help:      "Total number of unregistration attempts by outcome",
	},
	[]string{"outcome"},
)

// NotificationsTotal counts emails handed to the transport by kind and status (sent|failed).
var NotificationsTotal = promauto.With(Registry).NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_total",
		Help:      "Total number of notification emails by kind and status",
	},
	[]string{"kind", "status"},
)

// Init registers the Go runtime and process collectors.
func Init() {
	Registry.MustRegister(collectors.NewGoCollector())
	Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
}
