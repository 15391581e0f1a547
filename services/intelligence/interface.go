package ai

import "context"

// Generator is the single-shot text completion contract the planner depends
// on. The returned text may be non-JSON or JSON of the wrong shape; callers
// validate it themselves.
type Generator interface {
	GenerateContent(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
