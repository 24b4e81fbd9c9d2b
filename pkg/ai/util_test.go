package ai

import (
	"strings"
	"testing"
)

func TestUnmarshalFlexible_ValidationVariants(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantValid bool
		wantText  string
	}{
		{
			name:      "valid json object",
			input:     `{"valid":true,"reasoning":"Sound."}`,
			wantValid: true,
			wantText:  "Sound.",
		},
		{
			name:      "unquoted key and single quotes",
			input:     `{valid: false, reasoning: 'Too speculative.'}`,
			wantValid: false,
			wantText:  "Too speculative.",
		},
		{
			name:      "trailing comma",
			input:     `{"valid":true,"reasoning":"Sound.",}`,
			wantValid: true,
			wantText:  "Sound.",
		},
		{
			name:      "missing endbracket",
			input:     `{"valid":true,"reasoning":"Sound."`,
			wantValid: true,
			wantText:  "Sound.",
		},
		{
			name:      "stringified json object",
			input:     `"{\"valid\": false, \"reasoning\": \"Weak link.\"}"`,
			wantValid: false,
			wantText:  "Weak link.",
		},
		{
			name:      "markdown fenced",
			input:     "```json\n{\"valid\": true, \"reasoning\": \"Sound.\"}\n```",
			wantValid: true,
			wantText:  "Sound.",
		},
		{
			name:      "duplicate leading brace",
			input:     "{\n{\n  \"valid\": true, \"reasoning\": \"Sound.\"\n}\n",
			wantValid: true,
			wantText:  "Sound.",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got ValidationResponse
			if err := UnmarshalFlexible(tc.input, &got); err != nil {
				t.Fatalf("UnmarshalFlexible() error = %v", err)
			}
			if got.Valid == nil || *got.Valid != tc.wantValid || got.Reasoning != tc.wantText {
				t.Fatalf("UnmarshalFlexible() got = %+v, want valid=%v reasoning=%q", got, tc.wantValid, tc.wantText)
			}
		})
	}
}

func TestUnmarshalFlexible_ImpactList(t *testing.T) {
	input := `{impacts: [{target_entity: 'Bond Yields', sentiment: 'positive', explanation: 'Rates up.'},{target_entity:'Housing Market',sentiment:'negative',explanation:'Mortgages cost more.',},]}`

	var got ImpactListResponse
	if err := UnmarshalFlexible(input, &got); err != nil {
		t.Fatalf("UnmarshalFlexible() error = %v", err)
	}
	if len(got.Impacts) != 2 || got.Impacts[0].TargetEntity != "Bond Yields" || got.Impacts[1].Sentiment != "negative" {
		t.Fatalf("UnmarshalFlexible() got = %+v", got)
	}
}

func TestUnmarshalFlexible_Unrecoverable(t *testing.T) {
	var got ValidationResponse
	if err := UnmarshalFlexible("hello", &got); err == nil {
		t.Fatalf("UnmarshalFlexible() expected error for unrecoverable input")
	}
	if err := UnmarshalFlexible("   ", &got); err == nil {
		t.Fatalf("UnmarshalFlexible() expected error for empty input")
	}
}

func TestFormatInstructions_DescribesImpactSchema(t *testing.T) {
	out := FormatInstructions(&ImpactListResponse{})

	for _, want := range []string{`"impacts"`, `"target_entity"`, `"sentiment"`, `"explanation"`, `"positive"`, `"negative"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("FormatInstructions() missing %s in %s", want, out)
		}
	}
	if !strings.Contains(out, `"additionalProperties": false`) {
		t.Fatalf("FormatInstructions() should forbid additional properties, got %s", out)
	}
}

func TestFormatInstructions_DescribesValidationSchema(t *testing.T) {
	out := FormatInstructions(&ValidationResponse{})

	for _, want := range []string{`"valid"`, `"reasoning"`, `"boolean"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("FormatInstructions() missing %s in %s", want, out)
		}
	}
}
