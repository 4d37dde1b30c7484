package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	analysesTotal          *prometheus.CounterVec
	classificationsTotal   prometheus.Counter
	insightsTotal          *prometheus.CounterVec
	chatTotal              *prometheus.CounterVec
	llmDuration            prometheus.Histogram
	knowledgeSearchesTotal *prometheus.CounterVec
	knowledgeDocuments     prometheus.Gauge
	healthScoresTotal      prometheus.Counter
	goalPlansTotal         prometheus.Counter
	csvRowsIngested        prometheus.Counter
}

// NewPrometheusMetrics registers the collectors on the default registry.
// Call once per process.
func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		analysesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "spending_analyses_total",
				Help: "Total number of spending analyses performed",
			},
			[]string{"period"},
		),
		classificationsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "transactions_classified_total",
				Help: "Total number of transactions classified",
			},
		),
		insightsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "insights_generated_total",
				Help: "Total number of insight generations by operation and source",
			},
			[]string{"operation", "source"},
		),
		chatTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chat_responses_total",
				Help: "Total number of chat responses by source",
			},
			[]string{"source"},
		),
		llmDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "llm_generation_duration_milliseconds",
				Help:    "Language model generation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(10, 2, 12),
			},
		),
		knowledgeSearchesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "knowledge_searches_total",
				Help: "Total number of knowledge base searches by collection",
			},
			[]string{"collection"},
		),
		knowledgeDocuments: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "knowledge_documents",
				Help: "Current number of documents in the knowledge base",
			},
		),
		healthScoresTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "health_scores_total",
				Help: "Total number of health score calculations",
			},
		),
		goalPlansTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "goal_plans_total",
				Help: "Total number of savings plans calculated",
			},
		),
		csvRowsIngested: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "csv_rows_ingested_total",
				Help: "Total number of transaction rows ingested from CSV uploads",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "analysis.completed":
		period := tags["period"]
		if period == "" {
			period = "month"
		}
		m.analysesTotal.WithLabelValues(period).Inc()
	case "classification.completed":
		m.classificationsTotal.Inc()
	case "insight.generated":
		m.insightsTotal.WithLabelValues(tags["operation"], tags["source"]).Inc()
	case "chat.completed":
		m.chatTotal.WithLabelValues(tags["source"]).Inc()
	case "knowledge.search":
		m.knowledgeSearchesTotal.WithLabelValues(tags["collection"]).Inc()
	case "health_score.calculated":
		m.healthScoresTotal.Inc()
	case "goal_plan.calculated":
		m.goalPlansTotal.Inc()
	case "csv.row_ingested":
		m.csvRowsIngested.Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "llm.generation":
		m.llmDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "knowledge.documents":
		m.knowledgeDocuments.Set(value)
	}
}
