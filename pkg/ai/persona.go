package ai

// Persona is a named agent configuration: a system prompt plus sampling
// parameters. Agents differ only by persona and share the same client call path.
type Persona struct {
	Name         string
	SystemPrompt string
	Temperature  float64
}

// Options converts the persona into generate options. Extra options are
// applied after the persona and can override it.
func (p Persona) Options(extra ...GenerateOption) []GenerateOption {
	opts := []GenerateOption{
		WithSystemPrompts(p.SystemPrompt),
		WithTemperature(p.Temperature),
	}
	return append(opts, extra...)
}

// DetectivePersona proposes impacts. A high temperature pushes the model
// towards non-obvious second-order effects.
var DetectivePersona = Persona{
	Name:         "detective",
	SystemPrompt: DetectiveSystemPrompt,
	Temperature:  0.9,
}

// ReviewerPersona validates proposed impacts and should judge consistently.
var ReviewerPersona = Persona{
	Name:         "reviewer",
	SystemPrompt: ReviewerSystemPrompt,
	Temperature:  0.1,
}
