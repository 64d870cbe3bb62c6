package sentiment

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const scoringPrompt = `Score the sentiment of the following text. Respond with only a JSON object of the form {"compound": <float in [-1,1]>, "pos": <float>, "neg": <float>, "neu": <float>} where pos, neg and neu sum to 1.

Text: %s`

// OpenAIScorer implements Scorer against a chat-completion model. It can be
// swapped in for the lexicon scorer when an API key is configured.
type OpenAIScorer struct {
	client *openai.Client
	model  string
}

// NewOpenAIScorer creates a scorer backed by the given API key and model.
func NewOpenAIScorer(apiKey, model string) *OpenAIScorer {
	return &OpenAIScorer{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// Score asks the model for a polarity JSON object and derives the label from
// the returned compound score. Empty input is neutral without a round trip.
func (s *OpenAIScorer) Score(text string) (Result, error) {
	if strings.TrimSpace(text) == "" {
		return Neutral(), nil
	}

	resp, err := s.client.CreateChatCompletion(context.Background(), openai.ChatCompletionRequest{
		Model:       s.model,
		Temperature: 0,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf(scoringPrompt, text),
			},
		},
	})
	if err != nil {
		return Result{}, fmt.Errorf("sentiment completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return Result{}, fmt.Errorf("sentiment completion returned no choices")
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.Trim(content, "`\n ")

	var r Result
	if err := json.Unmarshal([]byte(content), &r); err != nil {
		return Result{}, fmt.Errorf("failed parsing sentiment response: %w", err)
	}
	if r.Compound > 1 {
		r.Compound = 1
	} else if r.Compound < -1 {
		r.Compound = -1
	}
	r.Label = LabelFor(r.Compound)
	return r, nil
}
