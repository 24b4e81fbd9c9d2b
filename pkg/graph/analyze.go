package graph

import (
	"context"
	"time"

	"github.com/Puss-M/Domino-Agent/pkg/ai"
	"github.com/Puss-M/Domino-Agent/pkg/common"
	"github.com/Puss-M/Domino-Agent/pkg/logger"
	"github.com/Puss-M/Domino-Agent/pkg/metrics"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Analyze builds the causal graph for the event, narrates it and returns
// the transport payload. Only a failed graph build is returned as an error;
// discovery and narrative failures degrade to a smaller graph or the
// fallback narrative.
func (g *GraphClient) Analyze(
	ctx context.Context,
	event string,
	client ai.GraphAIClient,
) (*common.AnalysisResult, error) {
	id, err := gonanoid.New()
	if err != nil {
		id = "unknown"
	}
	start := time.Now()
	before := client.GetMetrics()

	logger.Info("[Graph] Analysis started", "analysis_id", id, "event", event)

	graph, err := g.Build(ctx, event, client)
	if err != nil {
		metrics.ObserveAnalysis(err, time.Since(start), 0)
		logger.Error("[Graph] Analysis failed", "analysis_id", id, "err", err)
		return nil, err
	}

	narrative := g.Narrate(ctx, event, graph, client)
	result := &common.AnalysisResult{
		GraphData: common.ToTransportForm(graph),
		Narrative: narrative,
	}

	elapsed := time.Since(start)
	metrics.ObserveAnalysis(nil, elapsed, len(result.Nodes))

	after := client.GetMetrics()
	logger.Info(
		"[Graph] Analysis completed",
		"analysis_id", id,
		"nodes", len(result.Nodes),
		"edges", len(result.Edges),
		"requests", after.Requests-before.Requests,
		"total_tokens", after.TotalTokens-before.TotalTokens,
		"duration", elapsed,
	)

	return result, nil
}
