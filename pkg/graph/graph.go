package graph

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Puss-M/Domino-Agent/pkg/ai"
	"github.com/Puss-M/Domino-Agent/pkg/common"
	"github.com/Puss-M/Domino-Agent/pkg/logger"
)

// ErrEmptyEvent is returned when the event text is blank.
var ErrEmptyEvent = errors.New("event text is empty")

// DownstreamEvent describes the change of a directly impacted entity as an
// event of its own, so that it can be fed back into discovery.
func DownstreamEvent(target string, event string) string {
	return fmt.Sprintf("Change in %s due to %s", target, event)
}

// Build expands the event into a two-layer causal graph.
//
// The event becomes the root node at layer 0. Each accepted direct impact is
// added at layer 1 and immediately expanded: the impacts discovered for it
// become layer 2 nodes before the next direct impact is handled. A recurring
// entity reuses its node and keeps the layer it was first seen at, so when a
// downstream impact names a later direct impact, the root edge to it skips
// to layer 2. Edges back to their own source or to the root event are dropped.
//
// Discovery runs strictly sequentially.
func (g *GraphClient) Build(
	ctx context.Context,
	event string,
	client ai.GraphAIClient,
) (*common.Graph, error) {
	if strings.TrimSpace(event) == "" {
		return nil, ErrEmptyEvent
	}

	graph := common.NewGraph(event)
	root := graph.Root().ID

	direct := g.Discover(ctx, event, g.directImpacts, client)
	logger.Info("[Graph] Direct impacts discovered", "count", len(direct))

	for _, impact := range direct {
		if err := addImpact(graph, root, impact, common.LayerDirect); err != nil {
			return nil, err
		}

		source := impact.TargetEntity
		if source == root {
			continue
		}
		downstream := g.Discover(ctx, DownstreamEvent(source, event), g.downstreamImpacts, client)
		logger.Info("[Graph] Downstream impacts discovered", "source", source, "count", len(downstream))

		for _, sub := range downstream {
			if err := addImpact(graph, source, sub, common.LayerDownstream); err != nil {
				return nil, err
			}
		}
	}

	logger.Info("[Graph] Graph build completed", "nodes", len(graph.Nodes()), "edges", len(graph.Edges()))
	return graph, nil
}

func addImpact(graph *common.Graph, source string, impact common.Impact, layer int) error {
	target := impact.TargetEntity
	if target == source || target == graph.Root().ID {
		logger.Warn("[Graph] Dropping impact pointing back into the chain", "source", source, "target", target)
		return nil
	}

	graph.AddEntity(target, layer)
	if err := graph.AddEdge(source, target, impact); err != nil {
		return fmt.Errorf("failed to add edge %s -> %s: %w", source, target, err)
	}
	return nil
}
