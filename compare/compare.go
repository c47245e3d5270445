package compare

import (
	"golang.org/x/sync/errgroup"

	"github.com/promptgen-dev/promptgen/config"
	"github.com/promptgen-dev/promptgen/llm"
	"github.com/promptgen-dev/promptgen/prompt"
)

// Candidate pairs a provider with its constructed client. Err records a
// construction failure, such as a missing credential, so one bad provider
// setup never blocks the others.
type Candidate struct {
	Provider llm.Provider
	Client   llm.LLM
	Err      error
}

// Result is one provider's slot in a comparison run.
type Result struct {
	Provider llm.Provider
	Content  string
	Err      error
}

// Candidates builds a client for every supported provider, in presentation
// order. Construction failures land on the candidate instead of failing the
// whole set.
func Candidates(cfg *config.Config) []Candidate {
	all := llm.All()
	candidates := make([]Candidate, 0, len(all))
	for _, provider := range all {
		client, err := llm.NewLLM(provider, cfg)
		candidates = append(candidates, Candidate{
			Provider: provider,
			Client:   client,
			Err:      err,
		})
	}
	return candidates
}

// Run renders the request once and sends the identical prompt to every
// candidate concurrently. It returns one result per candidate, in the
// candidates' order; a failed slot carries its error without cancelling the
// sibling calls.
func Run(req prompt.Request, candidates []Candidate) []Result {
	rendered := req.Render()
	results := make([]Result, len(candidates))

	var g errgroup.Group
	for i, candidate := range candidates {
		i, candidate := i, candidate
		g.Go(func() error {
			results[i] = generate(candidate, rendered)
			return nil
		})
	}
	// Workers never return an error; failures are recorded per slot.
	_ = g.Wait()

	return results
}

func generate(candidate Candidate, rendered string) Result {
	result := Result{Provider: candidate.Provider}

	if candidate.Err != nil {
		result.Err = candidate.Err
		return result
	}

	resp := candidate.Client.Generate(llm.Request{Prompt: rendered})
	result.Content = resp.Content
	result.Err = resp.Error
	return result
}
