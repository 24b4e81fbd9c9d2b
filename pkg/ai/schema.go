package ai

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Puss-M/Domino-Agent/pkg/common"
)

// ImpactResponse is a single impact as returned by the model.
type ImpactResponse struct {
	TargetEntity string `json:"target_entity" jsonschema_description:"The entity affected (e.g., 'Oil Prices', 'Airline Stocks')"`
	Sentiment    string `json:"sentiment" jsonschema:"enum=positive,enum=negative" jsonschema_description:"The sentiment of the impact"`
	Explanation  string `json:"explanation" jsonschema_description:"Brief explanation of the causal link"`
}

// ImpactListResponse is the structured output of the proposer.
type ImpactListResponse struct {
	Impacts []ImpactResponse `json:"impacts" jsonschema_description:"List of causal impacts of the event"`
}

// ValidationResponse is the structured output of the reviewer.
type ValidationResponse struct {
	Valid     *bool  `json:"valid" jsonschema_description:"True if the causal link is logically sound"`
	Reasoning string `json:"reasoning" jsonschema_description:"Short justification of the decision"`
}

var (
	ErrNoImpacts      = errors.New("response contains no usable impacts")
	ErrMissingVerdict = errors.New("response is missing the valid field")
)

// ParseImpactList validates a decoded proposer response. Entries with an
// empty target, an empty explanation or an unknown sentiment are dropped.
// A response without any usable entry is an error.
func ParseImpactList(res *ImpactListResponse) ([]common.Impact, error) {
	if res == nil {
		return nil, ErrNoImpacts
	}

	impacts := make([]common.Impact, 0, len(res.Impacts))
	for _, item := range res.Impacts {
		target := strings.TrimSpace(item.TargetEntity)
		explanation := strings.TrimSpace(item.Explanation)
		if target == "" || explanation == "" {
			continue
		}
		sentiment, err := common.ParseSentiment(item.Sentiment)
		if err != nil {
			continue
		}
		impacts = append(impacts, common.Impact{
			TargetEntity: target,
			Sentiment:    sentiment,
			Explanation:  explanation,
		})
	}

	if len(impacts) == 0 {
		return nil, fmt.Errorf("%w (received %d)", ErrNoImpacts, len(res.Impacts))
	}
	return impacts, nil
}

// ParseValidation validates a decoded reviewer response.
func ParseValidation(res *ValidationResponse) (common.Verdict, error) {
	if res == nil || res.Valid == nil {
		return common.Verdict{}, ErrMissingVerdict
	}
	return common.Verdict{
		Valid:     *res.Valid,
		Reasoning: strings.TrimSpace(res.Reasoning),
	}, nil
}
