package ai

import (
	"errors"
	"testing"

	"github.com/Puss-M/Domino-Agent/pkg/common"
)

func TestParseImpactList(t *testing.T) {
	res := &ImpactListResponse{
		Impacts: []ImpactResponse{
			{TargetEntity: " Bond Yields ", Sentiment: "Positive", Explanation: "Rates up."},
			{TargetEntity: "Gold", Sentiment: "neutral", Explanation: "Unclear."},
			{TargetEntity: "", Sentiment: "negative", Explanation: "No target."},
			{TargetEntity: "Housing Market", Sentiment: "negative", Explanation: "  "},
			{TargetEntity: "USD Index", Sentiment: "positive", Explanation: "Carry trade."},
		},
	}

	got, err := ParseImpactList(res)
	if err != nil {
		t.Fatalf("ParseImpactList() error = %v", err)
	}
	want := []common.Impact{
		{TargetEntity: "Bond Yields", Sentiment: common.SentimentPositive, Explanation: "Rates up."},
		{TargetEntity: "USD Index", Sentiment: common.SentimentPositive, Explanation: "Carry trade."},
	}
	if len(got) != len(want) {
		t.Fatalf("ParseImpactList() len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ParseImpactList()[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestParseImpactList_NoUsableEntries(t *testing.T) {
	tests := []struct {
		name string
		res  *ImpactListResponse
	}{
		{name: "nil response", res: nil},
		{name: "empty list", res: &ImpactListResponse{}},
		{name: "only invalid entries", res: &ImpactListResponse{Impacts: []ImpactResponse{{TargetEntity: "Gold", Sentiment: "mixed", Explanation: "x"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseImpactList(tt.res)
			if !errors.Is(err, ErrNoImpacts) {
				t.Fatalf("ParseImpactList() error = %v, want ErrNoImpacts", err)
			}
		})
	}
}

func TestParseValidation(t *testing.T) {
	yes := true
	got, err := ParseValidation(&ValidationResponse{Valid: &yes, Reasoning: " Sound. "})
	if err != nil {
		t.Fatalf("ParseValidation() error = %v", err)
	}
	if !got.Valid || got.Reasoning != "Sound." {
		t.Fatalf("ParseValidation() = %+v", got)
	}

	if _, err := ParseValidation(&ValidationResponse{Reasoning: "no verdict"}); !errors.Is(err, ErrMissingVerdict) {
		t.Fatalf("ParseValidation() error = %v, want ErrMissingVerdict", err)
	}
	if _, err := ParseValidation(nil); !errors.Is(err, ErrMissingVerdict) {
		t.Fatalf("ParseValidation(nil) error = %v, want ErrMissingVerdict", err)
	}
}

func TestPersonaOptions(t *testing.T) {
	var opts GenerateOptions
	for _, o := range ReviewerPersona.Options(WithModel("deepseek-chat")) {
		o(&opts)
	}
	if opts.Temperature != ReviewerPersona.Temperature {
		t.Fatalf("Temperature = %v, want %v", opts.Temperature, ReviewerPersona.Temperature)
	}
	if len(opts.SystemPrompts) != 1 || opts.SystemPrompts[0] != ReviewerSystemPrompt {
		t.Fatalf("SystemPrompts = %v", opts.SystemPrompts)
	}
	if opts.Model != "deepseek-chat" {
		t.Fatalf("Model = %q, want deepseek-chat", opts.Model)
	}
	if DetectivePersona.Temperature <= ReviewerPersona.Temperature {
		t.Fatal("detective should sample at a higher temperature than the reviewer")
	}
}
