package resolver

import (
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

const (
	tierMemory = "memory"
	tierShared = "shared"
	tierScan   = "scan"

	outcomeHit  = "hit"
	outcomeMiss = "miss"
)

// metrics counts lookups by the tier that answered them.
// Each engine owns a private registry so that engines never share counters.
type metrics struct {
	registry *prometheus.Registry
	lookups  *prometheus.CounterVec

	memoryHit  prometheus.Counter
	memoryMiss prometheus.Counter
	sharedHit  prometheus.Counter
	sharedMiss prometheus.Counter
	scanHit    prometheus.Counter
	scanMiss   prometheus.Counter
}

func newMetrics() *metrics {
	lookups := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "autoload_lookups_total",
			Help: "Total number of lookups by cache tier and outcome",
		},
		[]string{"tier", "outcome"}, // memory, shared, scan / hit, miss
	)

	reg := prometheus.NewRegistry()
	reg.MustRegister(lookups)

	return &metrics{
		registry:   reg,
		lookups:    lookups,
		memoryHit:  lookups.WithLabelValues(tierMemory, outcomeHit),
		memoryMiss: lookups.WithLabelValues(tierMemory, outcomeMiss),
		sharedHit:  lookups.WithLabelValues(tierShared, outcomeHit),
		sharedMiss: lookups.WithLabelValues(tierShared, outcomeMiss),
		scanHit:    lookups.WithLabelValues(tierScan, outcomeHit),
		scanMiss:   lookups.WithLabelValues(tierScan, outcomeMiss),
	}
}

// snapshot returns the counters keyed by "tier/outcome".
func (m *metrics) snapshot() map[string]float64 {
	stats := make(map[string]float64)

	families, err := m.registry.Gather()
	if err != nil {
		return stats
	}

	for _, family := range families {
		for _, metric := range family.GetMetric() {
			stats[labelKey(metric)] = metric.GetCounter().GetValue()
		}
	}
	return stats
}

func labelKey(metric *dto.Metric) string {
	var tier, outcome string
	for _, label := range metric.GetLabel() {
		switch label.GetName() {
		case "tier":
			tier = label.GetValue()
		case "outcome":
			outcome = label.GetValue()
		}
	}
	return tier + "/" + outcome
}
