package graph

import (
	"github.com/Puss-M/Domino-Agent/pkg/ai"
)

const (
	defaultDirectImpacts     = 3
	defaultDownstreamImpacts = 2
	defaultCandidatePool     = 5
)

// GraphClient builds causal impact graphs. It holds only configuration and
// can be shared by concurrent requests; every analysis owns its own graph.
//
// A GraphClient should be created using NewGraphClient.
type GraphClient struct {
	directImpacts     int
	downstreamImpacts int
	candidatePool     int

	detective ai.Persona
	reviewer  ai.Persona
	model     string
}

// NewGraphClientParams defines the configuration parameters for creating
// a new GraphClient.
//
// DirectImpacts is the number of accepted impacts requested for the event.
// DownstreamImpacts is the number requested for every direct impact.
// CandidatePool is the number of candidates proposed per discovery,
// independent of the requested count.
// Detective and Reviewer override the default personas.
// Model overrides the adapter's default model.
type NewGraphClientParams struct {
	DirectImpacts     int
	DownstreamImpacts int
	CandidatePool     int

	Detective *ai.Persona
	Reviewer  *ai.Persona
	Model     string
}

// NewGraphClient creates and returns a new GraphClient configured with
// the provided parameters. Zero values fall back to 3 direct impacts,
// 2 downstream impacts and a pool of 5 candidates.
//
// Example:
//
//	client := graph.NewGraphClient(graph.NewGraphClientParams{})
//	res, err := client.Analyze(ctx, "Central bank raises rates", aiClient)
func NewGraphClient(params NewGraphClientParams) *GraphClient {
	g := &GraphClient{
		directImpacts:     params.DirectImpacts,
		downstreamImpacts: params.DownstreamImpacts,
		candidatePool:     params.CandidatePool,
		detective:         ai.DetectivePersona,
		reviewer:          ai.ReviewerPersona,
		model:             params.Model,
	}
	if g.directImpacts <= 0 {
		g.directImpacts = defaultDirectImpacts
	}
	if g.downstreamImpacts <= 0 {
		g.downstreamImpacts = defaultDownstreamImpacts
	}
	if g.candidatePool <= 0 {
		g.candidatePool = defaultCandidatePool
	}
	if params.Detective != nil {
		g.detective = *params.Detective
	}
	if params.Reviewer != nil {
		g.reviewer = *params.Reviewer
	}

	return g
}

func (g *GraphClient) options(p ai.Persona) []ai.GenerateOption {
	if g.model == "" {
		return p.Options()
	}
	return p.Options(ai.WithModel(g.model))
}
