package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Puss-M/Domino-Agent/pkg/ai"
	"github.com/Puss-M/Domino-Agent/pkg/common"
	"github.com/Puss-M/Domino-Agent/pkg/logger"
	"github.com/Puss-M/Domino-Agent/pkg/metrics"
)

// Narrate summarizes the graph in a single paragraph. It never fails: any
// error is logged and replaced by ai.NarrativeFallback.
func (g *GraphClient) Narrate(
	ctx context.Context,
	event string,
	graph *common.Graph,
	client ai.GraphAIClient,
) string {
	narrative, err := g.generateNarrative(ctx, event, graph, client)
	if err != nil {
		metrics.NarrativeFallbacks.Inc()
		logger.Error("[Narrative] Failed to generate narrative", "err", err)
		return ai.NarrativeFallback
	}
	return narrative
}

func (g *GraphClient) generateNarrative(
	ctx context.Context,
	event string,
	graph *common.Graph,
	client ai.GraphAIClient,
) (string, error) {
	data, err := json.Marshal(common.ToTransportForm(graph))
	if err != nil {
		return "", fmt.Errorf("failed to encode graph: %w", err)
	}

	prompt := fmt.Sprintf(ai.NarrativePrompt, event, string(data))
	res, err := client.GenerateCompletion(ctx, prompt, g.options(g.detective)...)
	if err != nil {
		return "", err
	}

	res = strings.Join(strings.Fields(res), " ")
	if res == "" {
		return "", fmt.Errorf("empty narrative")
	}
	return res, nil
}
