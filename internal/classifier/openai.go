package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

const systemPrompt = `You classify news claims and headlines as fabricated or genuine.
Respond with JSON only, no prose, in this exact format:
{"label": "fake" or "genuine", "confidence": number between 0.0 and 1.0}`

// OpenAIClassifier classifies claims with a chat completion model.
type OpenAIClassifier struct {
	client *openai.Client
	model  string
}

// NewOpenAIClassifier creates a classifier backed by the given model.
// model may be empty to use gpt-4o-mini.
func NewOpenAIClassifier(apiKey, model string) *OpenAIClassifier {
	if model == "" {
		model = openai.GPT4oMini
	}
	config := openai.DefaultConfig(apiKey)
	return &OpenAIClassifier{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}
}

// Classify sends the claim to the model and parses its JSON reply.
func (c *OpenAIClassifier) Classify(ctx context.Context, text string) (Prediction, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.0,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
	})
	if err != nil {
		return Prediction{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if len(resp.Choices) == 0 {
		return Prediction{}, fmt.Errorf("%w: empty completion", ErrUnavailable)
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)

	// Models sometimes wrap JSON in code fences
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	var out struct {
		Label      string  `json:"label"`
		Confidence float64 `json:"confidence"`
	}
	if err := json.Unmarshal([]byte(content), &out); err != nil {
		return Prediction{}, fmt.Errorf("%w: unparseable model reply: %v", ErrUnavailable, err)
	}

	switch strings.ToLower(out.Label) {
	case "fake":
		return Prediction{Label: LabelFake, Confidence: out.Confidence}, nil
	case "genuine":
		return Prediction{Label: LabelGenuine, Confidence: out.Confidence}, nil
	default:
		return Prediction{}, fmt.Errorf("%w: unexpected label %q", ErrUnavailable, out.Label)
	}
}
