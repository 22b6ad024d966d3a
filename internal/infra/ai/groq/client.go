package groq

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/avarialab/avaria/internal/domain/ai"
	domain "github.com/avarialab/avaria/internal/domain/analysis"
	"github.com/avarialab/avaria/internal/infra/ai/prompt"
)

const (
	defaultBaseURL        = "https://api.groq.com/openai/v1"
	defaultVisionModel    = "meta-llama/llama-4-scout-17b-16e-instruct"
	defaultReasoningModel = "llama-3.3-70b-versatile"

	// sampling: vision favors determinism/precision, reasoning gets broader
	// synthesis latitude and a large output budget
	visionTemperature    = 0.3
	visionMaxTokens      = 2048
	reasoningTemperature = 0.6
	reasoningMaxTokens   = 8192

	// base64 inflates ~33%; past this the upstream rejects the request
	maxEncodedImageBytes = 4_000_000
)

// Client talks to Groq's OpenAI-compatible chat API and implements both the
// vision and the reasoning ports.
type Client struct {
	api            *openai.Client
	apiKey         string
	visionModel    string
	reasoningModel string
}

func NewClient(apiKey, baseURL, visionModel, reasoningModel string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if visionModel == "" {
		visionModel = defaultVisionModel
	}
	if reasoningModel == "" {
		reasoningModel = defaultReasoningModel
	}
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL
	return &Client{
		api:            openai.NewClientWithConfig(cfg),
		apiKey:         apiKey,
		visionModel:    visionModel,
		reasoningModel: reasoningModel,
	}
}

// Describe sends one multimodal request: the instruction block followed by
// one inline data-URI attachment per image. No retry: a transient failure
// propagates immediately rather than masking a cost-incurring mis-call.
func (c *Client) Describe(ctx context.Context, images []domain.UploadedImage, description string) (string, error) {
	if c.apiKey == "" {
		return "", domain.ErrMissingCredential
	}

	parts := []openai.ChatMessagePart{
		{Type: openai.ChatMessagePartTypeText, Text: prompt.Vision(description)},
	}
	for _, img := range images {
		mime := img.MimeType
		if mime == "" {
			mime = "image/jpeg"
		}
		dataURL := "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(img.Data)
		if len(dataURL) > maxEncodedImageBytes {
			return "", fmt.Errorf("%w: %s is %d bytes encoded", domain.ErrPayloadTooLarge, img.Filename, len(dataURL))
		}
		parts = append(parts, openai.ChatMessagePart{
			Type:     openai.ChatMessagePartTypeImageURL,
			ImageURL: &openai.ChatMessageImageURL{URL: dataURL},
		})
	}

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.visionModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, MultiContent: parts},
		},
		Temperature: visionTemperature,
		MaxTokens:   visionMaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("vision completion: %w", err)
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", domain.ErrEmptyVisionResponse
	}
	return resp.Choices[0].Message.Content, nil
}

// Synthesize sends the text-only synthesis prompt constrained to a JSON
// object and validates the result against the output contract.
func (c *Client) Synthesize(ctx context.Context, visionText, description string, asset domain.AssetInfo) (ai.Report, error) {
	if c.apiKey == "" {
		return ai.Report{}, domain.ErrMissingCredential
	}

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.reasoningModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt.Reasoning(visionText, description, asset)},
		},
		Temperature: reasoningTemperature,
		MaxTokens:   reasoningMaxTokens,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return ai.Report{}, fmt.Errorf("reasoning completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return ai.Report{}, fmt.Errorf("%w: no choices returned", domain.ErrInvalidModelOutput)
	}

	return ai.ParseReport([]byte(resp.Choices[0].Message.Content))
}
