package common

import (
	"fmt"
	"strings"
)

// Sentiment describes the direction of a causal impact on its target.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
)

// ParseSentiment normalizes a model-provided sentiment label.
// Only "positive" and "negative" are accepted, case-insensitively.
func ParseSentiment(value string) (Sentiment, error) {
	switch Sentiment(strings.ToLower(strings.TrimSpace(value))) {
	case SentimentPositive:
		return SentimentPositive, nil
	case SentimentNegative:
		return SentimentNegative, nil
	}
	return "", fmt.Errorf("invalid sentiment %q", value)
}

// Node types used in the causal graph.
const (
	NodeTypeEvent  = "Event"
	NodeTypeEntity = "Entity"
)

// Layers of the two-level expansion.
const (
	LayerEvent      = 0
	LayerDirect     = 1
	LayerDownstream = 2
)

// Impact is a directed, sentiment-tagged causal link from an event to a
// target entity. It is produced by the proposer, checked by the validator
// and copied onto a graph edge once accepted.
type Impact struct {
	TargetEntity string    `json:"target_entity"`
	Sentiment    Sentiment `json:"sentiment"`
	Explanation  string    `json:"explanation"`
}

// Verdict is the reviewer's judgment on a single impact.
type Verdict struct {
	Valid     bool   `json:"valid"`
	Reasoning string `json:"reasoning"`
}

// Node is a vertex in the causal graph. The root node carries the event
// text as its ID; all other nodes are keyed by entity name.
type Node struct {
	ID    string
	Label string
	Type  string
	Layer int
}

// Edge is a causal link between two nodes. Edges between the same pair are
// kept separately when they come from separate discoveries.
type Edge struct {
	Source      string
	Target      string
	Sentiment   Sentiment
	Explanation string
}

// Graph holds the nodes and edges of one analysis run.
//
// Nodes are stored in a map keyed by ID for deduplication, with a separate
// slice preserving insertion order. Edges are kept in the order they were added.
// A Graph is not safe for concurrent use.
type Graph struct {
	root  string
	nodes map[string]*Node
	order []string
	edges []Edge
}

// NewGraph creates a graph containing only the root event node.
func NewGraph(eventText string) *Graph {
	g := &Graph{
		root:  eventText,
		nodes: make(map[string]*Node),
		order: make([]string, 0, 1),
		edges: make([]Edge, 0),
	}
	g.insert(&Node{
		ID:    eventText,
		Label: eventText,
		Type:  NodeTypeEvent,
		Layer: LayerEvent,
	})
	return g
}

func (g *Graph) insert(n *Node) {
	g.nodes[n.ID] = n
	g.order = append(g.order, n.ID)
}

// Root returns the event node.
func (g *Graph) Root() *Node {
	return g.nodes[g.root]
}

// Node returns the node with the given ID, or nil if it does not exist.
func (g *Graph) Node(id string) *Node {
	return g.nodes[id]
}

// AddEntity returns the entity node for name, creating it at layer if it
// does not exist yet. An existing node keeps the layer it was first created at.
func (g *Graph) AddEntity(name string, layer int) *Node {
	if n, ok := g.nodes[name]; ok {
		return n
	}
	n := &Node{
		ID:    name,
		Label: name,
		Type:  NodeTypeEntity,
		Layer: layer,
	}
	g.insert(n)
	return n
}

// AddEdge appends an edge carrying the impact's sentiment and explanation.
// Both endpoints must already exist.
func (g *Graph) AddEdge(source, target string, impact Impact) error {
	if _, ok := g.nodes[source]; !ok {
		return fmt.Errorf("source node %q does not exist", source)
	}
	if _, ok := g.nodes[target]; !ok {
		return fmt.Errorf("target node %q does not exist", target)
	}
	g.edges = append(g.edges, Edge{
		Source:      source,
		Target:      target,
		Sentiment:   impact.Sentiment,
		Explanation: impact.Explanation,
	})
	return nil
}

// Nodes returns the nodes in insertion order.
func (g *Graph) Nodes() []Node {
	out := make([]Node, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, *g.nodes[id])
	}
	return out
}

// Edges returns a copy of the edges in insertion order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// OutEdges returns the edges leaving the node with the given ID.
func (g *Graph) OutEdges(id string) []Edge {
	var out []Edge
	for _, e := range g.edges {
		if e.Source == id {
			out = append(out, e)
		}
	}
	return out
}
