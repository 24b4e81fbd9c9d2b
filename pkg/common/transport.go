package common

// NodeRecord is the transport form of a Node.
type NodeRecord struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Type  string `json:"type"`
	Layer int    `json:"layer"`
}

// EdgeRecord is the transport form of an Edge.
type EdgeRecord struct {
	Source      string    `json:"source"`
	Target      string    `json:"target"`
	Sentiment   Sentiment `json:"sentiment"`
	Explanation string    `json:"explanation"`
}

// GraphData is the plain node/edge payload sent to clients and embedded
// into the narrative prompt.
type GraphData struct {
	Nodes []NodeRecord `json:"nodes"`
	Edges []EdgeRecord `json:"edges"`
}

// AnalysisResult is the response of a full analysis run.
type AnalysisResult struct {
	GraphData
	Narrative string `json:"narrative"`
}

// ToTransportForm converts a graph into its transport representation.
// Nodes and edges keep their insertion order, so converting the same graph
// twice yields identical output.
func ToTransportForm(g *Graph) GraphData {
	nodes := g.Nodes()
	edges := g.Edges()

	data := GraphData{
		Nodes: make([]NodeRecord, 0, len(nodes)),
		Edges: make([]EdgeRecord, 0, len(edges)),
	}
	for _, n := range nodes {
		data.Nodes = append(data.Nodes, NodeRecord{
			ID:    n.ID,
			Label: n.Label,
			Type:  n.Type,
			Layer: n.Layer,
		})
	}
	for _, e := range edges {
		data.Edges = append(data.Edges, EdgeRecord{
			Source:      e.Source,
			Target:      e.Target,
			Sentiment:   e.Sentiment,
			Explanation: e.Explanation,
		})
	}
	return data
}
