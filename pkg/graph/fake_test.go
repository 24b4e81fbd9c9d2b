package graph

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/Puss-M/Domino-Agent/pkg/ai"
)

// fakeAIClient answers proposer, reviewer and narrative calls from scripted
// functions and records how often each one was used.
type fakeAIClient struct {
	propose  func(event string) (string, error)
	validate func(event, target string) (string, error)
	narrate  func(prompt string) (string, error)

	proposeCalls      int
	validateCalls     int
	narrateCalls      int
	temperatures      map[string]float64
	lastProposePrompt string
	narrateOptions    ai.GenerateOptions
}

func (f *fakeAIClient) GenerateCompletion(
	ctx context.Context,
	prompt string,
	opts ...ai.GenerateOption,
) (string, error) {
	f.narrateCalls++
	var options ai.GenerateOptions
	for _, o := range opts {
		o(&options)
	}
	f.narrateOptions = options
	if f.narrate == nil {
		return "", errors.New("narrate not scripted")
	}
	return f.narrate(prompt)
}

func (f *fakeAIClient) GenerateCompletionWithFormat(
	ctx context.Context,
	name string,
	description string,
	prompt string,
	out any,
	opts ...ai.GenerateOption,
) error {
	var options ai.GenerateOptions
	for _, o := range opts {
		o(&options)
	}
	if f.temperatures == nil {
		f.temperatures = map[string]float64{}
	}
	f.temperatures[name] = options.Temperature

	var (
		raw string
		err error
	)
	switch name {
	case "impact_list":
		f.proposeCalls++
		f.lastProposePrompt = prompt
		if f.propose == nil {
			return errors.New("propose not scripted")
		}
		raw, err = f.propose(quoted(prompt, "Event: "))
	case "impact_validation":
		f.validateCalls++
		if f.validate == nil {
			return errors.New("validate not scripted")
		}
		raw, err = f.validate(quoted(prompt, "Event: "), quoted(prompt, "Proposed target entity: "))
	default:
		return errors.New("unexpected schema " + name)
	}
	if err != nil {
		return err
	}
	return ai.UnmarshalFlexible(raw, out)
}

func (f *fakeAIClient) GetMetrics() ai.ModelMetrics {
	return ai.ModelMetrics{Requests: f.proposeCalls + f.validateCalls + f.narrateCalls}
}

// quoted returns the double-quoted value following label on its own line.
func quoted(prompt string, label string) string {
	for _, line := range strings.Split(prompt, "\n") {
		if strings.HasPrefix(line, label) {
			v := strings.TrimPrefix(line, label)
			return strings.TrimSuffix(strings.TrimPrefix(v, `"`), `"`)
		}
	}
	return ""
}

type impactJSON struct {
	TargetEntity string `json:"target_entity"`
	Sentiment    string `json:"sentiment"`
	Explanation  string `json:"explanation"`
}

func impactList(targets ...string) string {
	items := make([]impactJSON, 0, len(targets))
	for i, t := range targets {
		sentiment := "positive"
		if i%2 == 1 {
			sentiment = "negative"
		}
		items = append(items, impactJSON{TargetEntity: t, Sentiment: sentiment, Explanation: "Because of " + t + "."})
	}
	b, _ := json.Marshal(map[string]any{"impacts": items})
	return string(b)
}

func verdict(valid bool) string {
	b, _ := json.Marshal(map[string]any{"valid": valid, "reasoning": "checked"})
	return string(b)
}

func alwaysValid(event, target string) (string, error) {
	return verdict(true), nil
}
