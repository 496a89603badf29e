package ai

import (
	"context"
	"fmt"
)

// GoalAnalysis is the model's assessment of a free-text learning goal.
type GoalAnalysis struct {
	Feasible    bool     `json:"feasible"`
	Category    string   `json:"category"`
	Summary     string   `json:"summary"`
	Suggestions []string `json:"suggestions"`
}

// AnalyzeGoal asks the model whether a learning goal is achievable in a
// year and which curriculum category fits it best.
func (c *Client) AnalyzeGoal(ctx context.Context, goal string) (*GoalAnalysis, error) {
	prompt := fmt.Sprintf(`You are a learning coach. Analyze this learning goal: %q

Respond with JSON only, no prose, in this exact shape:
{
  "feasible": true,
  "category": "one of: backend, frontend, data-science, mobile, devops, general",
  "summary": "two-sentence assessment of the goal",
  "suggestions": ["up to three concrete suggestions to sharpen the goal"]
}`, goal)

	var out GoalAnalysis
	if err := c.generateJSON(ctx, prompt, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
