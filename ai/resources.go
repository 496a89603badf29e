package ai

import (
	"context"
	"fmt"
)

// Resource is one recommended learning resource.
type Resource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Kind  string `json:"kind"` // article | video | course | docs
	Why   string `json:"why"`
}

// FindResources asks the model for curated learning material on a topic.
func (c *Client) FindResources(ctx context.Context, topic string) ([]Resource, error) {
	prompt := fmt.Sprintf(`Recommend up to five high-quality free learning resources for: %q

Respond with JSON only, no prose, as an array in this exact shape:
[
  {
    "title": "resource name",
    "url": "https://...",
    "kind": "article | video | course | docs",
    "why": "one sentence on why this resource"
  }
]`, topic)

	var out []Resource
	if err := c.generateJSON(ctx, prompt, &out); err != nil {
		return nil, err
	}
	return out, nil
}
