package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cleitonmarx/symbiont-ai-careadvisor/internal/common"
	"github.com/cleitonmarx/symbiont-ai-careadvisor/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *genai.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:      "test-key",
		Backend:     genai.BackendGeminiAPI,
		HTTPClient:  server.Client(),
		HTTPOptions: genai.HTTPOptions{BaseURL: server.URL},
	})
	require.NoError(t, err)
	return client
}

func TestLLMClient_Chat(t *testing.T) {
	tests := map[string]struct {
		response      string
		statusCode    int
		req           domain.LLMChatRequest
		expectErr     bool
		expectedResp  string
		expectedUsage domain.LLMUsage
		validateBody  func(*testing.T, map[string]any)
	}{
		"success-with-schema": {
			response:   `{"candidates":[{"content":{"role":"model","parts":[{"text":"{\"a\":"},{"text":"1}"}]},"finishReason":"STOP"}],"usageMetadata":{"promptTokenCount":12,"candidatesTokenCount":8,"totalTokenCount":20}}`,
			statusCode: http.StatusOK,
			req: domain.LLMChatRequest{
				Model:          "gemini-2.5-flash",
				Temperature:    common.Ptr(0.4),
				ResponseSchema: domain.MustAdviceSchema(),
				Messages: []domain.LLMChatMessage{
					{Role: domain.ChatRole_System, Content: "be careful"},
					{Role: domain.ChatRole_User, Content: "I have a cough"},
				},
			},
			expectedResp:  `{"a":1}`,
			expectedUsage: domain.LLMUsage{PromptTokens: 12, CompletionTokens: 8, TotalTokens: 20},
			validateBody: func(t *testing.T, body map[string]any) {
				sys, ok := body["systemInstruction"].(map[string]any)
				require.True(t, ok)
				assert.Contains(t, sys["parts"].([]any)[0].(map[string]any)["text"], "be careful")

				contents := body["contents"].([]any)
				require.Len(t, contents, 1)
				assert.Equal(t, "user", contents[0].(map[string]any)["role"])

				gen := body["generationConfig"].(map[string]any)
				assert.Equal(t, "application/json", gen["responseMimeType"])
				assert.NotNil(t, gen["responseSchema"])
			},
		},
		"no-candidates": {
			response:   `{"candidates":[]}`,
			statusCode: http.StatusOK,
			req: domain.LLMChatRequest{
				Model:    "gemini-2.5-flash",
				Messages: []domain.LLMChatMessage{{Role: domain.ChatRole_User, Content: "hi"}},
			},
			expectErr: true,
		},
		"server-error": {
			response:   `{"error":{"code":500,"message":"boom","status":"INTERNAL"}}`,
			statusCode: http.StatusInternalServerError,
			req: domain.LLMChatRequest{
				Model:    "gemini-2.5-flash",
				Messages: []domain.LLMChatMessage{{Role: domain.ChatRole_User, Content: "hi"}},
			},
			expectErr: true,
		},
		"only-system-messages": {
			response:   `{}`,
			statusCode: http.StatusOK,
			req: domain.LLMChatRequest{
				Model:    "gemini-2.5-flash",
				Messages: []domain.LLMChatMessage{{Role: domain.ChatRole_System, Content: "sys"}},
			},
			expectErr: true,
		},
		"no-model": {
			response:   `{}`,
			statusCode: http.StatusOK,
			req: domain.LLMChatRequest{
				Messages: []domain.LLMChatMessage{{Role: domain.ChatRole_User, Content: "hi"}},
			},
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var body map[string]any
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.True(t, strings.HasSuffix(r.URL.Path, ":generateContent"), r.URL.Path)
				json.NewDecoder(r.Body).Decode(&body) //nolint:errcheck
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.response)) //nolint:errcheck
			})

			resp, err := NewLLMClient(client).Chat(context.Background(), tt.req)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedResp, resp.Content)
			assert.Equal(t, tt.expectedUsage, resp.Usage)
			if tt.validateBody != nil {
				tt.validateBody(t, body)
			}
		})
	}
}

func TestSemanticEncoder(t *testing.T) {
	tests := map[string]struct {
		response    string
		statusCode  int
		vectorize   func(SemanticEncoder) (domain.EmbeddingVector, error)
		expectErr   bool
		expectedVec []float64
	}{
		"fact": {
			response:   `{"embeddings":[{"values":[0.5,0.25]}]}`,
			statusCode: http.StatusOK,
			vectorize: func(e SemanticEncoder) (domain.EmbeddingVector, error) {
				return e.VectorizeFact(context.Background(), "text-embedding-004", "fever", "Rest and drink fluids.")
			},
			expectedVec: []float64{0.5, 0.25},
		},
		"query": {
			response:   `{"embeddings":[{"values":[1,0]}]}`,
			statusCode: http.StatusOK,
			vectorize: func(e SemanticEncoder) (domain.EmbeddingVector, error) {
				return e.VectorizeQuery(context.Background(), "text-embedding-004", "cough")
			},
			expectedVec: []float64{1, 0},
		},
		"empty-embeddings": {
			response:   `{"embeddings":[]}`,
			statusCode: http.StatusOK,
			vectorize: func(e SemanticEncoder) (domain.EmbeddingVector, error) {
				return e.VectorizeQuery(context.Background(), "text-embedding-004", "cough")
			},
			expectErr: true,
		},
		"server-error": {
			response:   `{"error":{"code":503,"message":"unavailable","status":"UNAVAILABLE"}}`,
			statusCode: http.StatusServiceUnavailable,
			vectorize: func(e SemanticEncoder) (domain.EmbeddingVector, error) {
				return e.VectorizeFact(context.Background(), "text-embedding-004", "fever", "Rest.")
			},
			expectErr: true,
		},
		"no-model": {
			response:   `{}`,
			statusCode: http.StatusOK,
			vectorize: func(e SemanticEncoder) (domain.EmbeddingVector, error) {
				return e.VectorizeQuery(context.Background(), "", "cough")
			},
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.response)) //nolint:errcheck
			})

			vec, err := tt.vectorize(NewSemanticEncoder(client))
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDeltaSlice(t, tt.expectedVec, vec.Vector, 1e-6)
		})
	}
}

func TestConvSchema(t *testing.T) {
	gs := convSchema(domain.MustAdviceSchema())
	require.NotNil(t, gs)

	assert.Equal(t, genai.TypeObject, gs.Type)
	assert.Equal(t, []string{"possible_conditions", "first_aid_medications", "nutritional_recommendations", "ai_clinical_insights", "additional_clinical_insights", "disclaimer"}, gs.PropertyOrdering)

	conditions := gs.Properties["possible_conditions"]
	require.NotNil(t, conditions)
	assert.Equal(t, genai.TypeArray, conditions.Type)
	require.NotNil(t, conditions.MinItems)
	assert.Equal(t, int64(2), *conditions.MinItems)
	require.NotNil(t, conditions.MaxItems)
	assert.Equal(t, int64(2), *conditions.MaxItems)

	confidence := conditions.Items.Properties["confidence"]
	assert.Equal(t, genai.TypeNumber, confidence.Type)
	require.NotNil(t, confidence.Maximum)
	assert.InDelta(t, 1.0, *confidence.Maximum, 1e-9)

	assert.Equal(t, []string{domain.CanonicalDisclaimer}, gs.Properties["disclaimer"].Enum)
	assert.Nil(t, convSchema(nil))
}
