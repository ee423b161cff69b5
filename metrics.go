package sigcard

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records extraction and card generation outcomes. A nil *Metrics
// is valid and records nothing.
type Metrics struct {
	extractions        *prometheus.CounterVec
	extractionDuration prometheus.Histogram
	cards              *prometheus.CounterVec
}

// registerCollector registers c, or returns the collector already
// registered under the same descriptor.
func registerCollector[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, fmt.Errorf("register collector: %w", err)
	}
	return c, nil
}

// NewMetrics creates the collectors and registers them with reg.
//
// Metrics registered:
//   - {namespace}_extractions_total{result} - extraction calls by result (ok/invalid/error)
//   - {namespace}_extraction_duration_seconds - latency of calls that reached the service
//   - {namespace}_cards_total{result} - card generations by result (ok/invalid/error)
func NewMetrics(reg prometheus.Registerer, namespace string) (*Metrics, error) {
	if reg == nil {
		return nil, errors.New("prometheus registerer is nil")
	}
	extractions, err := registerCollector(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "extractions_total", Help: "Signature extractions by result",
	}, []string{"result"}))
	if err != nil {
		return nil, err
	}
	duration, err := registerCollector(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "extraction_duration_seconds",
		Help:      "Duration of calls to the extraction service",
		Buckets:   []float64{0.25, 0.5, 1, 2, 5, 10, 20, 30},
	}))
	if err != nil {
		return nil, err
	}
	cards, err := registerCollector(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cards_total", Help: "vCard generations by result",
	}, []string{"result"}))
	if err != nil {
		return nil, err
	}
	m := &Metrics{extractions: extractions, extractionDuration: duration, cards: cards}
	return m, nil
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrValidation):
		return "invalid"
	default:
		return "error"
	}
}

func (m *Metrics) observeExtraction(err error, elapsed time.Duration, called bool) {
	if m == nil {
		return
	}
	m.extractions.WithLabelValues(resultLabel(err)).Inc()
	if called {
		m.extractionDuration.Observe(elapsed.Seconds())
	}
}

func (m *Metrics) observeCard(err error) {
	if m == nil {
		return
	}
	m.cards.WithLabelValues(resultLabel(err)).Inc()
}
