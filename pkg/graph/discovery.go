package graph

import (
	"context"
	"fmt"

	"github.com/Puss-M/Domino-Agent/pkg/ai"
	"github.com/Puss-M/Domino-Agent/pkg/common"
	"github.com/Puss-M/Domino-Agent/pkg/logger"
	"github.com/Puss-M/Domino-Agent/pkg/metrics"
)

// Propose asks the detective persona for n candidate impacts of the event.
// Call and parse failures are logged and yield an empty slice.
func (g *GraphClient) Propose(
	ctx context.Context,
	event string,
	n int,
	client ai.GraphAIClient,
) []common.Impact {
	if n <= 0 {
		return []common.Impact{}
	}

	var res ai.ImpactListResponse
	prompt := fmt.Sprintf(ai.ProposePrompt, event, n, ai.FormatInstructions(&res))
	err := client.GenerateCompletionWithFormat(
		ctx,
		"impact_list",
		"Causal impacts of an economic or financial event on financial entities.",
		prompt,
		&res,
		g.options(g.detective)...,
	)
	if err != nil {
		metrics.ObserveProposer(err)
		logger.Error("[Discovery] Failed to propose impacts", "event", event, "err", err)
		return []common.Impact{}
	}

	impacts, err := ai.ParseImpactList(&res)
	metrics.ObserveProposer(err)
	if err != nil {
		logger.Error("[Discovery] Failed to parse proposed impacts", "event", event, "err", err)
		return []common.Impact{}
	}

	logger.Debug("[Discovery] Proposed impacts", "event", event, "count", len(impacts))
	return impacts
}

// Validate asks the reviewer persona whether a single impact of the event
// is logically sound.
func (g *GraphClient) Validate(
	ctx context.Context,
	event string,
	impact common.Impact,
	client ai.GraphAIClient,
) (common.Verdict, error) {
	var res ai.ValidationResponse
	prompt := fmt.Sprintf(
		ai.ValidatePrompt,
		event,
		impact.TargetEntity,
		impact.Sentiment,
		impact.Explanation,
		ai.FormatInstructions(&res),
	)
	err := client.GenerateCompletionWithFormat(
		ctx,
		"impact_validation",
		"Validity judgment for a proposed causal impact.",
		prompt,
		&res,
		g.options(g.reviewer)...,
	)
	if err != nil {
		return common.Verdict{}, fmt.Errorf("failed to validate impact %q: %w", impact.TargetEntity, err)
	}

	verdict, err := ai.ParseValidation(&res)
	if err != nil {
		return common.Verdict{}, fmt.Errorf("failed to parse verdict for %q: %w", impact.TargetEntity, err)
	}
	return verdict, nil
}

// Discover returns up to target impacts of the event that survived review.
//
// A fixed pool of candidates is proposed and reviewed one by one in proposal
// order. Review stops as soon as target impacts are accepted or the pool is
// exhausted. Rejected candidates and failed reviews are skipped; there is no
// regeneration, so the result may be shorter than target.
func (g *GraphClient) Discover(
	ctx context.Context,
	event string,
	target int,
	client ai.GraphAIClient,
) []common.Impact {
	accepted := make([]common.Impact, 0, max(target, 0))
	if target <= 0 {
		return accepted
	}

	candidates := g.Propose(ctx, event, g.candidatePool, client)
	if len(candidates) == 0 {
		logger.Warn("[Discovery] No candidates proposed", "event", event)
		return accepted
	}

	for _, candidate := range candidates {
		if len(accepted) >= target {
			break
		}
		if ctx.Err() != nil {
			logger.Warn("[Discovery] Stopping review", "event", event, "err", ctx.Err())
			break
		}

		verdict, err := g.Validate(ctx, event, candidate, client)
		if err != nil {
			metrics.CandidatesEvaluated.WithLabelValues(metrics.OutcomeFailed).Inc()
			logger.Error("[Discovery] Skipping candidate", "target", candidate.TargetEntity, "err", err)
			continue
		}
		if !verdict.Valid {
			metrics.CandidatesEvaluated.WithLabelValues(metrics.OutcomeRejected).Inc()
			logger.Debug("[Discovery] Rejected", "target", candidate.TargetEntity, "reasoning", verdict.Reasoning)
			continue
		}

		metrics.CandidatesEvaluated.WithLabelValues(metrics.OutcomeAccepted).Inc()
		logger.Debug("[Discovery] Accepted", "target", candidate.TargetEntity, "reasoning", verdict.Reasoning)
		accepted = append(accepted, candidate)
	}

	if len(accepted) > target {
		accepted = accepted[:target]
	}

	logger.Info("[Discovery] Completed", "event", event, "candidates", len(candidates), "accepted", len(accepted), "target", target)
	return accepted
}
