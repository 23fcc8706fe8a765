package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChat struct {
	content string
	err     error
	req     openai.ChatCompletionRequest
}

func (f *fakeChat) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.req = req
	if f.err != nil {
		return openai.ChatCompletionResponse{}, f.err
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: f.content}},
		},
	}, nil
}

func newTestAssistant(chat chatCompleter) *Assistant {
	return &Assistant{
		client: chat,
		model:  "gpt-test",
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestDiagnoseMaintenance(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		wantUrgent bool
		wantPrio   string
	}{
		{
			name:       "urgent leak",
			content:    `{"summary":"Active leak","priority":"urgent","urgent":false}`,
			wantUrgent: true,
			wantPrio:   "urgent",
		},
		{
			name:     "routine",
			content:  `{"summary":"Dripping faucet","priority":"low","urgent":false}`,
			wantPrio: "low",
		},
		{
			name:     "unknown priority normalized",
			content:  `{"summary":"Squeaky door","priority":"meh"}`,
			wantPrio: "normal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chat := &fakeChat{content: tt.content}
			a := newTestAssistant(chat)

			d, err := a.DiagnoseMaintenance(context.Background(), "Leak", "Water under the sink")
			require.NoError(t, err)
			assert.Equal(t, tt.wantUrgent, d.Urgent)
			assert.Equal(t, tt.wantPrio, d.Priority)
			assert.Equal(t, "gpt-test", chat.req.Model)
			assert.Contains(t, chat.req.Messages[1].Content, "Water under the sink")
		})
	}
}

func TestDiagnoseMaintenance_Errors(t *testing.T) {
	_, err := newTestAssistant(&fakeChat{err: errors.New("429")}).DiagnoseMaintenance(context.Background(), "t", "d")
	assert.ErrorContains(t, err, "429")

	_, err = newTestAssistant(&fakeChat{content: "   "}).DiagnoseMaintenance(context.Background(), "t", "d")
	assert.ErrorIs(t, err, ErrEmptyResponse)

	_, err = newTestAssistant(&fakeChat{content: "not json"}).DiagnoseMaintenance(context.Background(), "t", "d")
	assert.ErrorContains(t, err, "decode response")
}

func TestAnalyzeDocument_TruncatesText(t *testing.T) {
	chat := &fakeChat{content: `{"document_type":"lease","summary":"12 month lease","amounts":["$1,500.00"]}`}
	a := newTestAssistant(chat)

	out, err := a.AnalyzeDocument(context.Background(), "lease.txt", strings.Repeat("x", maxDocumentChars+500))
	require.NoError(t, err)
	assert.Equal(t, "lease", out.DocumentType)
	assert.Equal(t, []string{"$1,500.00"}, out.Amounts)
	assert.Less(t, len(chat.req.Messages[1].Content), maxDocumentChars+100)
}

func TestAssistant_AgainstHTTPServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		var req openai.ChatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, openai.GPT4oMini, req.Model)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{{
				Message: openai.ChatCompletionMessage{
					Role:    openai.ChatMessageRoleAssistant,
					Content: `{"summary":"Furnace out","priority":"high"}`,
				},
			}},
		})
	}))
	defer srv.Close()

	a := New("sk-test", "", srv.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))
	d, err := a.DiagnoseMaintenance(context.Background(), "No heat", "Furnace is not starting")
	require.NoError(t, err)
	assert.Equal(t, "high", d.Priority)
	assert.False(t, d.Urgent)
}
