// Package promhooks counts Store events with Prometheus.
package promhooks

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/unkn0wn-root/dhwire"
)

type Hooks struct {
	rejected    *prometheus.CounterVec
	setRejected prometheus.Counter
	errors      *prometheus.CounterVec
}

var _ dhwire.Hooks = (*Hooks)(nil)

// New registers the counters on reg under namespace (e.g. "dhwire").
// Keys are never used as labels.
func New(reg prometheus.Registerer, namespace string) (*Hooks, error) {
	h := &Hooks{
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entries_rejected_total",
			Help:      "Entries deleted on read because they could not be decoded.",
		}, []string{"reason"}),
		setRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "provider_set_rejected_total",
			Help:      "Writes the provider refused under pressure.",
		}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "provider_errors_total",
			Help:      "Provider errors by operation.",
		}, []string{"op"}),
	}
	for _, c := range []prometheus.Collector{h.rejected, h.setRejected, h.errors} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return h, nil
}

func (h *Hooks) EntryRejected(_, reason string) { h.rejected.WithLabelValues(reason).Inc() }
func (h *Hooks) ProviderSetRejected(string)     { h.setRejected.Inc() }
func (h *Hooks) ProviderError(op, _ string, _ error) {
	h.errors.WithLabelValues(op).Inc()
}
