package common

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestParseSentiment(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Sentiment
		wantErr bool
	}{
		{name: "positive", input: "positive", want: SentimentPositive},
		{name: "negative", input: "negative", want: SentimentNegative},
		{name: "mixed case with spaces", input: "  Negative ", want: SentimentNegative},
		{name: "neutral rejected", input: "neutral", wantErr: true},
		{name: "empty rejected", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSentiment(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSentiment(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Fatalf("ParseSentiment(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewGraph_RootNode(t *testing.T) {
	event := "Central bank raises interest rates by 50 basis points."
	g := NewGraph(event)

	root := g.Root()
	if root == nil {
		t.Fatal("Root() returned nil")
	}
	want := Node{ID: event, Label: event, Type: NodeTypeEvent, Layer: LayerEvent}
	if *root != want {
		t.Fatalf("Root() = %+v, want %+v", *root, want)
	}
	if len(g.Nodes()) != 1 || len(g.Edges()) != 0 {
		t.Fatalf("new graph should have 1 node and 0 edges, got %d and %d", len(g.Nodes()), len(g.Edges()))
	}
}

func TestGraph_AddEntityKeepsFirstLayer(t *testing.T) {
	g := NewGraph("event")

	first := g.AddEntity("Oil Prices", LayerDirect)
	second := g.AddEntity("Oil Prices", LayerDownstream)

	if first != second {
		t.Fatal("AddEntity() should reuse the existing node")
	}
	if second.Layer != LayerDirect {
		t.Fatalf("layer = %d, want %d", second.Layer, LayerDirect)
	}
	if len(g.Nodes()) != 2 {
		t.Fatalf("expected 2 nodes, got %d", len(g.Nodes()))
	}
}

func TestGraph_AddEdge(t *testing.T) {
	g := NewGraph("event")
	g.AddEntity("Bond Yields", LayerDirect)
	impact := Impact{TargetEntity: "Bond Yields", Sentiment: SentimentPositive, Explanation: "Rates up."}

	if err := g.AddEdge("event", "Bond Yields", impact); err != nil {
		t.Fatalf("AddEdge() error = %v", err)
	}
	if err := g.AddEdge("event", "Bond Yields", impact); err != nil {
		t.Fatalf("AddEdge() second error = %v", err)
	}
	if got := len(g.OutEdges("event")); got != 2 {
		t.Fatalf("parallel edges should be kept, got %d", got)
	}

	if err := g.AddEdge("event", "Missing", impact); err == nil {
		t.Fatal("AddEdge() to missing target should fail")
	}
	if err := g.AddEdge("Missing", "Bond Yields", impact); err == nil {
		t.Fatal("AddEdge() from missing source should fail")
	}
	if got := len(g.Edges()); got != 2 {
		t.Fatalf("failed AddEdge() must not add edges, got %d", got)
	}
}

func TestToTransportForm(t *testing.T) {
	g := NewGraph("event")
	g.AddEntity("USD Index", LayerDirect)
	g.AddEntity("Gold", LayerDownstream)
	_ = g.AddEdge("event", "USD Index", Impact{Sentiment: SentimentPositive, Explanation: "a"})
	_ = g.AddEdge("USD Index", "Gold", Impact{Sentiment: SentimentNegative, Explanation: "b"})

	got := ToTransportForm(g)
	want := GraphData{
		Nodes: []NodeRecord{
			{ID: "event", Label: "event", Type: NodeTypeEvent, Layer: 0},
			{ID: "USD Index", Label: "USD Index", Type: NodeTypeEntity, Layer: 1},
			{ID: "Gold", Label: "Gold", Type: NodeTypeEntity, Layer: 2},
		},
		Edges: []EdgeRecord{
			{Source: "event", Target: "USD Index", Sentiment: SentimentPositive, Explanation: "a"},
			{Source: "USD Index", Target: "Gold", Sentiment: SentimentNegative, Explanation: "b"},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ToTransportForm() = %+v, want %+v", got, want)
	}

	again := ToTransportForm(g)
	if !reflect.DeepEqual(got, again) {
		t.Fatal("ToTransportForm() should be deterministic")
	}
}

func TestToTransportForm_EmptyEdgesEncodeAsArray(t *testing.T) {
	res := AnalysisResult{GraphData: ToTransportForm(NewGraph("event")), Narrative: "n"}

	b, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	want := `{"nodes":[{"id":"event","label":"event","type":"Event","layer":0}],"edges":[],"narrative":"n"}`
	if string(b) != want {
		t.Fatalf("json = %s, want %s", b, want)
	}
}
