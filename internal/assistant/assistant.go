package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// ErrEmptyResponse is returned when the model answers with no content.
var ErrEmptyResponse = errors.New("assistant: empty model response")

// maxDocumentChars caps the text sent for document analysis.
const maxDocumentChars = 24000

type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Assistant wraps prompt/response calls to an OpenAI-compatible API.
type Assistant struct {
	client chatCompleter
	model  string
	logger *slog.Logger
}

// New creates an Assistant. baseURL may be empty for the public API.
func New(apiKey, model, baseURL string, logger *slog.Logger) *Assistant {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if model == "" {
		model = openai.GPT4oMini
	}
	return &Assistant{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
		logger: logger.With("component", "assistant"),
	}
}

// Diagnosis is the model's assessment of a maintenance request.
type Diagnosis struct {
	Summary         string `json:"summary"`
	LikelyCause     string `json:"likely_cause"`
	SuggestedAction string `json:"suggested_action"`
	Priority        string `json:"priority"`
	Urgent          bool   `json:"urgent"`
}

const diagnosePrompt = `You triage maintenance requests for a residential property manager.
Reply with a JSON object with keys summary, likely_cause, suggested_action,
priority (one of low, normal, high, urgent) and urgent (boolean).
Mark urgent only for safety hazards, active water leaks, no heat in winter,
gas smells, electrical hazards or anything that locks a tenant out.`

// DiagnoseMaintenance asks the model to triage a maintenance request.
func (a *Assistant) DiagnoseMaintenance(ctx context.Context, title, description string) (*Diagnosis, error) {
	var d Diagnosis
	user := fmt.Sprintf("Title: %s\nDescription: %s", title, description)
	if err := a.completeJSON(ctx, diagnosePrompt, user, &d); err != nil {
		return nil, err
	}

	switch d.Priority {
	case "low", "normal", "high", "urgent":
	default:
		d.Priority = "normal"
	}
	if d.Priority == "urgent" {
		d.Urgent = true
	}
	return &d, nil
}

// DocumentAnalysis summarizes an uploaded lease or property document.
type DocumentAnalysis struct {
	DocumentType string   `json:"document_type"`
	Summary      string   `json:"summary"`
	Parties      []string `json:"parties"`
	KeyDates     []string `json:"key_dates"`
	Amounts      []string `json:"amounts"`
}

const documentPrompt = `You review documents for a residential property manager.
Reply with a JSON object with keys document_type (lease, invoice, notice, inspection or other),
summary (three sentences at most), parties, key_dates and amounts (arrays of strings).`

// AnalyzeDocument summarizes the extracted text of a document.
func (a *Assistant) AnalyzeDocument(ctx context.Context, filename, text string) (*DocumentAnalysis, error) {
	if len(text) > maxDocumentChars {
		text = text[:maxDocumentChars]
	}

	var out DocumentAnalysis
	user := fmt.Sprintf("File: %s\n\n%s", filename, text)
	if err := a.completeJSON(ctx, documentPrompt, user, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *Assistant) completeJSON(ctx context.Context, system, user string, dst any) error {
	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Temperature: 0.2,
	})
	if err != nil {
		a.logger.Error("chat completion failed", "model", a.model, "error", err)
		return fmt.Errorf("assistant: chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return ErrEmptyResponse
	}
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return ErrEmptyResponse
	}

	if err := json.Unmarshal([]byte(content), dst); err != nil {
		a.logger.Warn("model returned invalid json", "error", err)
		return fmt.Errorf("assistant: decode response: %w", err)
	}
	return nil
}
