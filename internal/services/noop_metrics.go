package services

import "time"

type noopMetrics struct{}

// NewNoopMetrics returns a recorder that discards everything. Used in tests
// and wherever metrics are not wired; the prometheus recorder registers on
// the default registry and can only be constructed once per process.
func NewNoopMetrics() MetricsRecorderInterface {
	return noopMetrics{}
}

func (noopMetrics) IncrementCounter(string, map[string]string)     {}
func (noopMetrics) RecordProcessingTime(string, time.Duration)     {}
func (noopMetrics) RecordGauge(string, float64, map[string]string) {}
