package resources

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/pathwise/internal/llm"
	"github.com/abhisek/pathwise/internal/skillgraph"
)

const curatorSystemPrompt = `You recommend free or widely available learning resources.
Only suggest resources you are confident exist, with their canonical URLs.
Prefer official documentation, university courses and well-known tutorials.`

var curatorSchema = &llm.Schema{
	Name:        "learning-resources",
	Description: "A list of recommended learning resources for one topic",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"resources": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title":       map[string]any{"type": "string", "minLength": 1},
						"url":         map[string]any{"type": "string"},
						"description": map[string]any{"type": "string"},
						"type": map[string]any{
							"type": "string",
							"enum": []any{"video", "course", "article", "interactive", "book", "podcast"},
						},
						"difficulty": map[string]any{
							"type": "string",
							"enum": []any{"beginner", "intermediate", "advanced"},
						},
					},
					"required":             []any{"title", "url", "description", "type", "difficulty"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"resources"},
		"additionalProperties": false,
	},
}

// CuratorProvider asks an LLM to suggest resources for a term.
type CuratorProvider struct {
	llm llm.Provider
}

// NewCuratorProvider returns a provider backed by p.
func NewCuratorProvider(p llm.Provider) *CuratorProvider {
	return &CuratorProvider{llm: p}
}

func (c *CuratorProvider) Name() string { return PlatformAICurator }

type curatorOutput struct {
	Resources []struct {
		Title       string `json:"title"`
		URL         string `json:"url"`
		Description string `json:"description"`
		Type        string `json:"type"`
		Difficulty  string `json:"difficulty"`
	} `json:"resources"`
}

func (c *CuratorProvider) Search(ctx context.Context, req SearchRequest) ([]Resource, error) {
	n := max(1, req.MaxResults)
	difficulty := difficultyOr(req.Difficulty)

	types := req.ContentTypes
	if len(types) == 0 {
		types = DefaultContentTypes()
	}
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}

	prompt := fmt.Sprintf("Suggest up to %d %s-level learning resources about %q.\nAllowed types: %s.",
		n, difficulty, req.Term, strings.Join(names, ", "))

	resp, err := c.llm.Complete(ctx, llm.Prompt{
		Purpose:      "resource-curation",
		Instructions: curatorSystemPrompt,
		Input:        prompt,
		Schema:       curatorSchema,
		MaxTokens:    1024,
	})
	if err != nil {
		return nil, &ProviderError{Provider: PlatformAICurator, Term: req.Term, Err: err}
	}

	var parsed curatorOutput
	if err := json.Unmarshal(resp.JSON, &parsed); err != nil {
		return nil, &ProviderError{Provider: PlatformAICurator, Term: req.Term, Err: err}
	}

	out := make([]Resource, 0, len(parsed.Resources))
	for i, r := range parsed.Resources {
		if len(out) == n {
			break
		}
		t := Type(r.Type)
		if !req.wants(t) {
			continue
		}
		d := skillgraph.Difficulty(r.Difficulty)
		out = append(out, Resource{
			ID:          NewID(PlatformAICurator, req.Term, i),
			Title:       r.Title,
			Description: r.Description,
			URL:         r.URL,
			Platform:    PlatformAICurator,
			Type:        t,
			Difficulty:  difficultyOr(d),
			Tags:        []string{req.Term, "ai-curated"},
		}.normalize())
	}
	return out, nil
}
