package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Candidate outcomes recorded by the discovery unit.
const (
	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

var (
	AnalysesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "domino_analyses_total",
		Help: "Total number of analysis runs, labelled by status.",
	}, []string{"status"})

	AnalysisDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "domino_analysis_duration_seconds",
		Help:    "End-to-end analysis latency in seconds.",
		Buckets: []float64{1, 5, 10, 20, 30, 60, 90, 120, 180, 300},
	})

	GraphNodes = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "domino_graph_nodes",
		Help:    "Number of nodes in the produced causal graphs.",
		Buckets: []float64{1, 2, 4, 6, 8, 10},
	})

	ProposerCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "domino_proposer_calls_total",
		Help: "Total number of proposer calls, labelled by status.",
	}, []string{"status"})

	CandidatesEvaluated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "domino_candidates_evaluated_total",
		Help: "Total number of impact candidates sent to the reviewer, labelled by outcome.",
	}, []string{"outcome"})

	NarrativeFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "domino_narrative_fallbacks_total",
		Help: "Total number of narratives replaced by the fallback text.",
	})

	LLMRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "domino_llm_requests_total",
		Help: "Total number of generative backend requests, labelled by adapter and status.",
	}, []string{"adapter", "status"})

	LLMRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "domino_llm_request_duration_seconds",
		Help:    "Generative backend request latency in seconds.",
		Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 20, 40, 60},
	}, []string{"adapter"})
)

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// ObserveLLMRequest records one generative backend round trip.
func ObserveLLMRequest(adapter string, err error, elapsed time.Duration) {
	LLMRequests.WithLabelValues(adapter, status(err)).Inc()
	if elapsed > 0 {
		LLMRequestDuration.WithLabelValues(adapter).Observe(elapsed.Seconds())
	}
}

// ObserveProposer records one proposer call.
func ObserveProposer(err error) {
	ProposerCalls.WithLabelValues(status(err)).Inc()
}

// ObserveAnalysis records a finished analysis run.
func ObserveAnalysis(err error, elapsed time.Duration, nodes int) {
	AnalysesTotal.WithLabelValues(status(err)).Inc()
	AnalysisDuration.Observe(elapsed.Seconds())
	if err == nil {
		GraphNodes.Observe(float64(nodes))
	}
}
