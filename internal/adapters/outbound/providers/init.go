// Package providers selects the generation and embedding backends at startup.
package providers

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/cleitonmarx/symbiont-ai-careadvisor/internal/adapters/outbound/gemini"
	"github.com/cleitonmarx/symbiont-ai-careadvisor/internal/adapters/outbound/modelrunner"
	"github.com/cleitonmarx/symbiont-ai-careadvisor/internal/adapters/outbound/openaicompat"
	"github.com/cleitonmarx/symbiont-ai-careadvisor/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"google.golang.org/genai"
)

const (
	ProviderModelRunner = "modelrunner"
	ProviderGemini      = "gemini"
	ProviderOpenAI      = "openai"
)

// InitModelProviders registers domain.LLMClient and domain.SemanticEncoder
// for the providers named by LLM_PROVIDER and EMBEDDING_PROVIDER.
type InitModelProviders struct {
	Logger            *log.Logger  `resolve:""`
	HttpClient        *http.Client `resolve:""`
	LLMProvider       string       `config:"LLM_PROVIDER" default:"modelrunner"`
	EmbeddingProvider string       `config:"EMBEDDING_PROVIDER" default:"modelrunner"`
	ModelHost         string       `config:"LLM_MODEL_HOST" default:"-"`
	ModelAPIKey       string       `config:"LLM_API_KEY" default:"-"`
	GeminiAPIKey      string       `config:"GEMINI_API_KEY" default:"-"`
	OpenAIAPIKey      string       `config:"OPENAI_API_KEY" default:"-"`
	OpenAIBaseURL     string       `config:"OPENAI_BASE_URL" default:"-"`
}

// Initialize builds the selected clients and registers them.
func (i InitModelProviders) Initialize(ctx context.Context) (context.Context, error) {
	llm, err := i.llmClient(ctx)
	if err != nil {
		return ctx, err
	}
	encoder, err := i.semanticEncoder(ctx)
	if err != nil {
		return ctx, err
	}

	depend.Register[domain.LLMClient](llm)
	depend.Register[domain.SemanticEncoder](encoder)

	i.Logger.Printf("ModelProviders: generation=%s embeddings=%s", i.LLMProvider, i.EmbeddingProvider)
	return ctx, nil
}

func (i InitModelProviders) llmClient(ctx context.Context) (domain.LLMClient, error) {
	switch i.LLMProvider {
	case ProviderModelRunner:
		client, err := i.modelRunnerClient()
		if err != nil {
			return nil, err
		}
		return modelrunner.NewLLMClientAdapter(client), nil
	case ProviderGemini:
		client, err := i.geminiClient(ctx)
		if err != nil {
			return nil, err
		}
		return gemini.NewLLMClient(client), nil
	case ProviderOpenAI:
		if !isSet(i.OpenAIAPIKey) {
			return nil, domain.NewConfigurationErr("OPENAI_API_KEY is required by the openai provider")
		}
		return openaicompat.NewLLMClient(i.openAIClient()), nil
	default:
		return nil, domain.NewConfigurationErr(fmt.Sprintf("unknown LLM provider %q", i.LLMProvider))
	}
}

func (i InitModelProviders) semanticEncoder(ctx context.Context) (domain.SemanticEncoder, error) {
	switch i.EmbeddingProvider {
	case ProviderModelRunner:
		client, err := i.modelRunnerClient()
		if err != nil {
			return nil, err
		}
		return modelrunner.NewSemanticEncoderAdapter(client), nil
	case ProviderGemini:
		client, err := i.geminiClient(ctx)
		if err != nil {
			return nil, err
		}
		return gemini.NewSemanticEncoder(client), nil
	case ProviderOpenAI:
		if !isSet(i.OpenAIAPIKey) {
			return nil, domain.NewConfigurationErr("OPENAI_API_KEY is required by the openai provider")
		}
		return openaicompat.NewSemanticEncoder(i.openAIClient()), nil
	default:
		return nil, domain.NewConfigurationErr(fmt.Sprintf("unknown embedding provider %q", i.EmbeddingProvider))
	}
}

func (i InitModelProviders) modelRunnerClient() (modelrunner.DRMAPIClient, error) {
	if !isSet(i.ModelHost) {
		return modelrunner.DRMAPIClient{}, domain.NewConfigurationErr("LLM_MODEL_HOST is required by the modelrunner provider")
	}
	apiKey := ""
	if isSet(i.ModelAPIKey) {
		apiKey = i.ModelAPIKey
	}
	return modelrunner.NewDRMAPIClient(i.ModelHost, apiKey, i.HttpClient), nil
}

func (i InitModelProviders) geminiClient(ctx context.Context) (*genai.Client, error) {
	if !isSet(i.GeminiAPIKey) {
		return nil, domain.NewConfigurationErr("GEMINI_API_KEY is required by the gemini provider")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     i.GeminiAPIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: i.HttpClient,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return client, nil
}

func (i InitModelProviders) openAIClient() openai.Client {
	opts := []option.RequestOption{option.WithHTTPClient(i.HttpClient)}
	if isSet(i.OpenAIBaseURL) {
		opts = append(opts, option.WithBaseURL(i.OpenAIBaseURL))
	}
	return openaicompat.NewClient(i.OpenAIAPIKey, opts...)
}

// isSet reports whether an optional config value was provided; "-" means unset.
func isSet(v string) bool {
	return v != "" && v != "-"
}
