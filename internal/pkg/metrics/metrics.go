// Package metrics exposes the Prometheus collectors of the order lifecycle.
// A nil *Recorder is valid and records nothing.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "fooddelivery"

// Outcome labels.
const (
	OutcomeSuccess        = "success"
	OutcomeAlreadyClaimed = "already_claimed"
	OutcomeNotClaimable   = "not_claimable"
	OutcomeUnauthorized   = "unauthorized"
	OutcomeInvalidCode    = "invalid_code"
	OutcomeInvalidState   = "invalid_state"
	OutcomeError          = "error"
)

type Recorder struct {
	claims        *prometheus.CounterVec
	handoffs      *prometheus.CounterVec
	sagas         *prometheus.CounterVec
	unprovisioned prometheus.Gauge
}

// NewRecorder creates the collectors and registers them with reg.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		claims: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_claims_total",
			Help:      "Claim attempts by outcome.",
		}, []string{"outcome"}),
		handoffs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "handoffs_total",
			Help:      "Hand-off steps by step and outcome.",
		}, []string{"step", "outcome"}),
		sagas: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "restaurant_provisioning_total",
			Help:      "Restaurant creations by resulting provisioning state.",
		}, []string{"state"}),
		unprovisioned: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "restaurants_unprovisioned",
			Help:      "Restaurants that have a relational row but no location document.",
		}),
	}

	for _, c := range []prometheus.Collector{r.claims, r.handoffs, r.sagas, r.unprovisioned} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Recorder) Claim(outcome string) {
	if r == nil {
		return
	}
	r.claims.WithLabelValues(outcome).Inc()
}

func (r *Recorder) Handoff(step, outcome string) {
	if r == nil {
		return
	}
	r.handoffs.WithLabelValues(step, outcome).Inc()
}

func (r *Recorder) Provisioning(state string) {
	if r == nil {
		return
	}
	r.sagas.WithLabelValues(state).Inc()
}

func (r *Recorder) SetUnprovisioned(n int) {
	if r == nil {
		return
	}
	r.unprovisioned.Set(float64(n))
}
