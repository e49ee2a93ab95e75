package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-ai-careadvisor/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/symbiont-ai-careadvisor/internal/common"
	"github.com/cleitonmarx/symbiont-ai-careadvisor/internal/domain"
	domain_mocks "github.com/cleitonmarx/symbiont-ai-careadvisor/internal/domain/mocks"
	"github.com/cleitonmarx/symbiont-ai-careadvisor/internal/usecases/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	coughAdvice = &domain.StructuredAdvice{
		PossibleConditions: []domain.PossibleCondition{
			{Condition: "Common cold", Confidence: 0.6, Explanation: "Cough with fatigue."},
			{Condition: "Acute bronchitis", Confidence: 0.3, Explanation: "Persistent cough."},
		},
		FirstAidMedications: []domain.FirstAidMedication{
			{Medication: "Honey in warm water", Rationale: "Soothes the throat."},
			{Medication: "Paracetamol", Rationale: "Eases aches."},
		},
		NutritionalRecommendations: []domain.NutritionalRecommendation{
			{Recommendation: "Warm fluids", Rationale: "Keeps you hydrated."},
			{Recommendation: "Citrus fruit", Rationale: "Vitamin C."},
		},
		AIClinicalInsights: []domain.AIClinicalInsight{},
		Disclaimer:         domain.CanonicalDisclaimer,
	}
	coughSentiment = domain.SentimentResult{Label: domain.SentimentLabel_Negative, Score: 0.65}

	restCoughAdvice = &gen.StructuredAdvice{
		PossibleConditions: []gen.PossibleCondition{
			{Condition: "Common cold", Confidence: 0.6, Explanation: "Cough with fatigue."},
			{Condition: "Acute bronchitis", Confidence: 0.3, Explanation: "Persistent cough."},
		},
		FirstAidMedications: []gen.FirstAidMedication{
			{Medication: "Honey in warm water", Rationale: "Soothes the throat."},
			{Medication: "Paracetamol", Rationale: "Eases aches."},
		},
		NutritionalRecommendations: []gen.NutritionalRecommendation{
			{Recommendation: "Warm fluids", Rationale: "Keeps you hydrated."},
			{Recommendation: "Citrus fruit", Rationale: "Vitamin C."},
		},
		AiClinicalInsights: []gen.ClinicalInsight{},
		Disclaimer:         domain.CanonicalDisclaimer,
	}
)

func TestCareAdvisorServer_GenerateAdvice(t *testing.T) {
	tests := map[string]struct {
		requestBody    []byte
		setupMocks     func(*mocks.MockGenerateAdvice)
		expectedStatus int
		expectedBody   *gen.AdviceResp
		expectedError  *gen.ErrorResp
	}{
		"success": {
			requestBody: serializeJSON(t, gen.GenerateAdviceJSONRequestBody{Symptoms: "I have a cough", Emotion: "worried"}),
			setupMocks: func(m *mocks.MockGenerateAdvice) {
				m.EXPECT().
					Execute(mock.Anything, "I have a cough", "worried").
					Return(domain.AdviceResult{
						RequestID: "req-1",
						Topic:     "respiratory_infection",
						Sentiment: coughSentiment,
						Advice:    coughAdvice,
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: &gen.AdviceResp{
				RequestId: "req-1",
				Topic:     "respiratory_infection",
				Sentiment: gen.Sentiment{Label: gen.NEGATIVE, Score: 0.65},
				Outcome:   "VALID",
				Advice:    restCoughAdvice,
			},
		},
		"pipeline-error-payload-is-ok": {
			requestBody: serializeJSON(t, gen.GenerateAdviceJSONRequestBody{Symptoms: "headache", Emotion: "tired"}),
			setupMocks: func(m *mocks.MockGenerateAdvice) {
				m.EXPECT().
					Execute(mock.Anything, "headache", "tired").
					Return(domain.AdviceResult{
						RequestID: "req-2",
						Topic:     "headache",
						Sentiment: domain.NeutralSentiment(),
						Error:     domain.NewErrorPayload(domain.ErrorKind_ParseError, "model output is not valid JSON", "not json"),
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: &gen.AdviceResp{
				RequestId: "req-2",
				Topic:     "headache",
				Sentiment: gen.Sentiment{Label: gen.NEUTRAL, Score: 0},
				Outcome:   "ParseError",
				Error: &gen.ErrorPayload{
					Kind:    gen.ParseError,
					Message: "model output is not valid JSON",
					Raw:     common.Ptr("not json"),
				},
			},
		},
		"validation-error": {
			requestBody: serializeJSON(t, gen.GenerateAdviceJSONRequestBody{Symptoms: " ", Emotion: ""}),
			setupMocks: func(m *mocks.MockGenerateAdvice) {
				m.EXPECT().
					Execute(mock.Anything, " ", "").
					Return(domain.AdviceResult{}, domain.NewValidationErr("please enter both your symptoms and your emotional state"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  newErrorResp(gen.BADREQUEST, "please enter both your symptoms and your emotional state"),
		},
		"invalid-json-body": {
			requestBody:    []byte(`{"symptoms": "cough"`),
			setupMocks:     func(m *mocks.MockGenerateAdvice) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  newErrorResp(gen.BADREQUEST, "invalid request body: unexpected EOF"),
		},
		"internal-server-error": {
			requestBody: serializeJSON(t, gen.GenerateAdviceJSONRequestBody{Symptoms: "cough", Emotion: "fine"}),
			setupMocks: func(m *mocks.MockGenerateAdvice) {
				m.EXPECT().
					Execute(mock.Anything, "cough", "fine").
					Return(domain.AdviceResult{}, errors.New("unexpected"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  newErrorResp(gen.INTERNALERROR, "internal server error"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			mockGenerateAdvice := mocks.NewMockGenerateAdvice(t)
			tt.setupMocks(mockGenerateAdvice)

			server := CareAdvisorServer{
				GenerateAdviceUseCase: mockGenerateAdvice,
				KnowledgeRetriever:    domain_mocks.NewMockKnowledgeRetriever(t),
				Logger:                log.New(io.Discard, "", 0),
			}

			req := httptest.NewRequest(http.MethodPost, "/api/v1/advice", bytes.NewReader(tt.requestBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			server.Handler().ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

			if tt.expectedBody != nil {
				var response gen.AdviceResp
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
				assert.Equal(t, *tt.expectedBody, response)
			}
			if tt.expectedError != nil {
				var response gen.ErrorResp
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
				assert.Equal(t, *tt.expectedError, response)
			}
		})
	}
}

func TestCareAdvisorServer_ListTopics(t *testing.T) {
	retriever := domain_mocks.NewMockKnowledgeRetriever(t)
	retriever.EXPECT().Topics().Return([]domain.TopicSummary{
		{Topic: "respiratory_infection", FactCount: 5},
		{Topic: "fever", FactCount: 4},
	})

	server := CareAdvisorServer{
		GenerateAdviceUseCase: mocks.NewMockGenerateAdvice(t),
		KnowledgeRetriever:    retriever,
		Logger:                log.New(io.Discard, "", 0),
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/knowledge/topics", nil)
	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response gen.TopicsResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, gen.TopicsResp{Topics: []gen.Topic{
		{Topic: "respiratory_infection", FactCount: 5},
		{Topic: "fever", FactCount: 4},
	}}, response)
}

func TestCareAdvisorServer_GetTopic(t *testing.T) {
	tests := map[string]struct {
		topic          string
		setupMocks     func(*domain_mocks.MockKnowledgeRetriever)
		expectedStatus int
		expectedBody   *gen.TopicDetail
		expectedError  *gen.ErrorResp
	}{
		"found": {
			topic: "fever",
			setupMocks: func(m *domain_mocks.MockKnowledgeRetriever) {
				m.EXPECT().Topic("fever").Return(domain.KnowledgeEntry{
					Topic: "fever",
					Facts: []string{"Rest and fluids help.", "Seek care above 39.5C."},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: &gen.TopicDetail{
				Topic: "fever",
				Facts: []string{"Rest and fluids help.", "Seek care above 39.5C."},
			},
		},
		"not-found": {
			topic: "migraine",
			setupMocks: func(m *domain_mocks.MockKnowledgeRetriever) {
				m.EXPECT().Topic("migraine").Return(domain.KnowledgeEntry{}, domain.NewNotFoundErr(`knowledge topic "migraine" not found`))
			},
			expectedStatus: http.StatusNotFound,
			expectedError:  newErrorResp(gen.NOTFOUND, `knowledge topic "migraine" not found`),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			retriever := domain_mocks.NewMockKnowledgeRetriever(t)
			tt.setupMocks(retriever)

			server := CareAdvisorServer{
				GenerateAdviceUseCase: mocks.NewMockGenerateAdvice(t),
				KnowledgeRetriever:    retriever,
				Logger:                log.New(io.Discard, "", 0),
			}

			req := httptest.NewRequest(http.MethodGet, "/api/v1/knowledge/topics/"+tt.topic, nil)
			w := httptest.NewRecorder()
			server.Handler().ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != nil {
				var response gen.TopicDetail
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
				assert.Equal(t, *tt.expectedBody, response)
			}
			if tt.expectedError != nil {
				var response gen.ErrorResp
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
				assert.Equal(t, *tt.expectedError, response)
			}
		})
	}
}

func TestCareAdvisorServer_GeneratedClient(t *testing.T) {
	uc := mocks.NewMockGenerateAdvice(t)
	uc.EXPECT().
		Execute(mock.Anything, "I have a cough", "worried").
		Return(domain.AdviceResult{
			RequestID: "req-1",
			Topic:     "respiratory_infection",
			Sentiment: coughSentiment,
			Advice:    coughAdvice,
		}, nil)
	uc.EXPECT().
		Execute(mock.Anything, "", "").
		Return(domain.AdviceResult{}, domain.NewValidationErr("please enter both your symptoms and your emotional state"))

	retriever := domain_mocks.NewMockKnowledgeRetriever(t)
	retriever.EXPECT().Topics().Return([]domain.TopicSummary{{Topic: "fever", FactCount: 4}})

	server := httptest.NewServer(CareAdvisorServer{
		GenerateAdviceUseCase: uc,
		KnowledgeRetriever:    retriever,
		Logger:                log.New(io.Discard, "", 0),
	}.Handler())
	defer server.Close()

	cli, err := gen.NewClientWithResponses(server.URL)
	require.NoError(t, err)

	adviceResp, err := cli.GenerateAdviceWithResponse(t.Context(), gen.GenerateAdviceJSONRequestBody{
		Symptoms: "I have a cough",
		Emotion:  "worried",
	})
	require.NoError(t, err)
	require.NotNil(t, adviceResp.JSON200)
	assert.Equal(t, restCoughAdvice, adviceResp.JSON200.Advice)

	invalidResp, err := cli.GenerateAdviceWithResponse(t.Context(), gen.GenerateAdviceJSONRequestBody{})
	require.NoError(t, err)
	require.NotNil(t, invalidResp.JSON400)
	assert.Equal(t, gen.BADREQUEST, invalidResp.JSON400.Error.Code)

	topicsResp, err := cli.ListTopicsWithResponse(t.Context())
	require.NoError(t, err)
	require.NotNil(t, topicsResp.JSON200)
	assert.Equal(t, []gen.Topic{{Topic: "fever", FactCount: 4}}, topicsResp.JSON200.Topics)

	healthResp, err := cli.HealthzWithResponse(t.Context())
	require.NoError(t, err)
	require.NotNil(t, healthResp.JSON200)
	assert.Equal(t, "ok", healthResp.JSON200.Status)
}

func TestCareAdvisorServer_Routes(t *testing.T) {
	server := CareAdvisorServer{
		GenerateAdviceUseCase: mocks.NewMockGenerateAdvice(t),
		KnowledgeRetriever:    domain_mocks.NewMockKnowledgeRetriever(t),
		Logger:                log.New(io.Discard, "", 0),
	}

	tests := map[string]struct {
		method         string
		path           string
		expectedStatus int
	}{
		"healthz":             {method: http.MethodGet, path: "/healthz", expectedStatus: http.StatusOK},
		"advice-wrong-method": {method: http.MethodGet, path: "/api/v1/advice", expectedStatus: http.StatusMethodNotAllowed},
		"unknown-route":       {method: http.MethodGet, path: "/api/v1/unknown", expectedStatus: http.StatusNotFound},
		"topics-wrong-method": {method: http.MethodDelete, path: "/api/v1/knowledge/topics", expectedStatus: http.StatusMethodNotAllowed},
		"topic-wrong-method":  {method: http.MethodPost, path: "/api/v1/knowledge/topics/fever", expectedStatus: http.StatusMethodNotAllowed},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()
			server.Handler().ServeHTTP(w, req)
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestCareAdvisorServer_RunAndIsReady(t *testing.T) {
	server := CareAdvisorServer{
		Port:                  18089,
		GenerateAdviceUseCase: mocks.NewMockGenerateAdvice(t),
		KnowledgeRetriever:    domain_mocks.NewMockKnowledgeRetriever(t),
		Logger:                log.New(io.Discard, "", 0),
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- server.Run(ctx) }()

	assert.Eventually(t, func() bool {
		return server.IsReady(context.Background()) == nil
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	assert.NoError(t, <-done)
}

func newErrorResp(code gen.ErrorCode, message string) *gen.ErrorResp {
	resp := &gen.ErrorResp{}
	resp.Error.Code = code
	resp.Error.Message = message
	return resp
}

func serializeJSON(t *testing.T, v any) []byte {
	t.Helper()

	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("failed to marshal JSON: %v", err)
	}
	return data
}
