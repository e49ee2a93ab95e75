package usecases

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont-ai-careadvisor/internal/common"
	"github.com/cleitonmarx/symbiont-ai-careadvisor/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-careadvisor/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

// GenerateAdvice is the use case for producing care advice from symptoms and an emotional state.
type GenerateAdvice interface {
	// Execute runs the whole pipeline. The returned error is only set for invalid input;
	// every pipeline failure is reported in AdviceResult.Error.
	Execute(ctx context.Context, symptoms, emotion string) (domain.AdviceResult, error)
}

// GenerateAdviceImpl is the implementation of the GenerateAdvice use case.
type GenerateAdviceImpl struct {
	sentimentScorer domain.SentimentScorer
	retriever       domain.KnowledgeRetriever
	llmClient       domain.LLMClient
	model           string
	temperature     float64
	timeout         time.Duration
}

// NewGenerateAdviceImpl creates a new instance of GenerateAdviceImpl.
func NewGenerateAdviceImpl(
	ss domain.SentimentScorer,
	kr domain.KnowledgeRetriever,
	c domain.LLMClient,
	model string,
	temperature float64,
	timeout time.Duration,
) GenerateAdviceImpl {
	return GenerateAdviceImpl{
		sentimentScorer: ss,
		retriever:       kr,
		llmClient:       c,
		model:           model,
		temperature:     temperature,
		timeout:         timeout,
	}
}

// Execute runs the use case.
func (ga GenerateAdviceImpl) Execute(ctx context.Context, symptoms, emotion string) (domain.AdviceResult, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if strings.TrimSpace(symptoms) == "" || strings.TrimSpace(emotion) == "" {
		err := domain.NewValidationErr("please enter both your symptoms and your emotional state")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.AdviceResult{}, err
	}

	result := ga.generate(spanCtx, symptoms, emotion)

	span.SetAttributes(
		attribute.String("advice.request_id", result.RequestID),
		attribute.String("advice.topic", result.Topic),
		attribute.String("advice.outcome", result.Outcome()),
	)
	RecordAdviceOutcome(spanCtx, result.Outcome())
	telemetry.RecordErrorAndStatus(span, nil)

	return result, nil
}

func (ga GenerateAdviceImpl) generate(ctx context.Context, symptoms, emotion string) domain.AdviceResult {
	result := domain.AdviceResult{RequestID: uuid.NewString()}

	var (
		sentiment domain.SentimentResult
		retrieval domain.RetrievalResult
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		sentiment = ga.sentimentScorer.Score(gCtx, emotion)
		return nil
	})
	g.Go(func() error {
		var err error
		retrieval, err = ga.retriever.Retrieve(gCtx, symptoms+"\n"+emotion)
		return err
	})
	if err := g.Wait(); err != nil {
		result.Sentiment = sentiment
		result.Error = domain.NewErrorPayload(domain.ErrorKind_TransportError, err.Error(), "")
		return result
	}
	result.Sentiment = sentiment
	result.Topic = retrieval.Topic

	prompt, err := AssemblePrompt(symptoms, emotion, sentiment, retrieval)
	if err != nil {
		// the prompt template and schema are embedded, so this is a build defect
		result.Error = domain.NewErrorPayload(domain.ErrorKind_TransportError, fmt.Sprintf("failed to assemble prompt: %v", err), "")
		return result
	}

	raw, err := ga.callModel(ctx, prompt)
	if err != nil {
		result.Error = domain.NewErrorPayload(domain.ErrorKind_TransportError, err.Error(), "")
		return result
	}

	result.Advice, result.Error = ValidateResponse(raw)
	return result
}

// callModel sends the prompt to the model, bounded by the configured timeout.
func (ga GenerateAdviceImpl) callModel(ctx context.Context, prompt domain.PromptRequest) (string, error) {
	schema, err := domain.AdviceSchema()
	if err != nil {
		return "", err
	}

	callCtx, cancel := context.WithTimeout(ctx, ga.timeout)
	defer cancel()

	start := time.Now()
	resp, err := ga.llmClient.Chat(callCtx, domain.LLMChatRequest{
		Model:              ga.model,
		Messages:           prompt.Messages,
		Temperature:        common.Ptr(ga.temperature),
		ResponseSchema:     schema,
		ResponseSchemaName: domain.AdviceSchemaName,
	})
	RecordGenerationDuration(ctx, ga.model, time.Since(start), err)
	if err != nil {
		if callCtx.Err() == context.DeadlineExceeded {
			return "", domain.NewTransportErr(fmt.Sprintf("generation timed out after %s", ga.timeout), err)
		}
		return "", domain.NewTransportErr("generation call failed", err)
	}

	RecordLLMTokensUsed(ctx, resp.Usage.PromptTokens, resp.Usage.CompletionTokens)
	return resp.Content, nil
}

// InitGenerateAdvice initializes the GenerateAdvice use case.
type InitGenerateAdvice struct {
	SentimentScorer domain.SentimentScorer    `resolve:""`
	Retriever       domain.KnowledgeRetriever `resolve:""`
	LLMClient       domain.LLMClient          `resolve:""`
	Model           string                    `config:"LLM_MODEL"`
	Temperature     string                    `config:"LLM_TEMPERATURE" default:"0.4"`
	Timeout         time.Duration             `config:"LLM_TIMEOUT" default:"60s"`
}

// Initialize registers the GenerateAdvice use case implementation.
func (iga InitGenerateAdvice) Initialize(ctx context.Context) (context.Context, error) {
	temperature, err := strconv.ParseFloat(iga.Temperature, 64)
	if err != nil {
		return ctx, domain.NewConfigurationErr(fmt.Sprintf("invalid LLM_TEMPERATURE %q: %v", iga.Temperature, err))
	}
	if iga.Timeout <= 0 {
		return ctx, domain.NewConfigurationErr(fmt.Sprintf("LLM_TIMEOUT must be positive, got %s", iga.Timeout))
	}
	if _, err := domain.AdviceSchema(); err != nil {
		return ctx, err
	}

	depend.Register[GenerateAdvice](NewGenerateAdviceImpl(
		iga.SentimentScorer, iga.Retriever, iga.LLMClient, iga.Model, temperature, iga.Timeout,
	))
	return ctx, nil
}
