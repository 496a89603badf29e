package ai

import (
	"context"
	"fmt"
)

// QuizQuestion is one multiple-choice question.
type QuizQuestion struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	AnswerIndex int      `json:"answer_index"`
	Explanation string   `json:"explanation"`
}

// Quiz is a generated knowledge check for one task.
type Quiz struct {
	Topic     string         `json:"topic"`
	Questions []QuizQuestion `json:"questions"`
}

// GenerateQuiz produces n multiple-choice questions about a task topic.
func (c *Client) GenerateQuiz(ctx context.Context, topic string, n int) (*Quiz, error) {
	if n <= 0 || n > 10 {
		n = 5
	}
	prompt := fmt.Sprintf(`Create a quiz of %d multiple-choice questions testing understanding of: %q

Respond with JSON only, no prose, in this exact shape:
{
  "topic": %q,
  "questions": [
    {
      "question": "the question text",
      "options": ["A", "B", "C", "D"],
      "answer_index": 0,
      "explanation": "why the answer is correct"
    }
  ]
}`, n, topic, topic)

	var out Quiz
	if err := c.generateJSON(ctx, prompt, &out); err != nil {
		return nil, err
	}
	if len(out.Questions) == 0 {
		return nil, fmt.Errorf("ai: quiz came back with no questions")
	}
	return &out, nil
}
