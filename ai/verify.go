package ai

import (
	"context"
	"fmt"
)

// Verdict is the model's judgement of a submitted coding solution.
type Verdict struct {
	Correct    bool   `json:"correct"`
	Feedback   string `json:"feedback"`
	Complexity string `json:"complexity"`
}

// VerifySolution checks a LeetCode-style solution against its problem
// statement. This is a judgement call by the model, not an execution.
func (c *Client) VerifySolution(ctx context.Context, problem, language, code string) (*Verdict, error) {
	prompt := fmt.Sprintf(`You are reviewing a coding-problem solution.

Problem: %s
Language: %s
Solution:
%s

Respond with JSON only, no prose, in this exact shape:
{
  "correct": true,
  "feedback": "what is right or wrong with the solution",
  "complexity": "time and space complexity, e.g. O(n) time / O(1) space"
}`, problem, language, code)

	var out Verdict
	if err := c.generateJSON(ctx, prompt, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
