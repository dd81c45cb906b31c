// Package metrics counts auth operations in a process-local Prometheus
// registry. Nothing is exported over the network; the CLI prints a snapshot.
package metrics

import (
	"fmt"
	"sort"

	"github.com/prometheus/client_golang/prometheus"
)

// ResultOK labels a successful operation.
const ResultOK = "ok"

type Recorder struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
}

func NewRecorder() *Recorder {
	registry := prometheus.NewRegistry()
	operations := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_operations_total",
			Help: "Total number of auth operations by operation and result",
		},
		[]string{"operation", "result"},
	)
	registry.MustRegister(operations)

	return &Recorder{registry: registry, operations: operations}
}

// ObserveOperation counts one run of operation ending with result
// (ResultOK or an error code).
func (r *Recorder) ObserveOperation(operation, result string) {
	r.operations.WithLabelValues(operation, result).Inc()
}

// Sample is one counter value.
type Sample struct {
	Operation string
	Result    string
	Count     float64
}

func (s Sample) String() string {
	return fmt.Sprintf("%s/%s %.0f", s.Operation, s.Result, s.Count)
}

// Snapshot returns every counter, sorted by operation then result.
func (r *Recorder) Snapshot() ([]Sample, error) {
	families, err := r.registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("gather metrics: %w", err)
	}

	var out []Sample
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			s := Sample{Count: m.GetCounter().GetValue()}
			for _, lp := range m.GetLabel() {
				switch lp.GetName() {
				case "operation":
					s.Operation = lp.GetValue()
				case "result":
					s.Result = lp.GetValue()
				}
			}
			out = append(out, s)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Operation != out[j].Operation {
			return out[i].Operation < out[j].Operation
		}
		return out[i].Result < out[j].Result
	})
	return out, nil
}
