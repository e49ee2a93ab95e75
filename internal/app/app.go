package app

import (
	"io"

	"github.com/cleitonmarx/symbiont"
	"github.com/cleitonmarx/symbiont-ai-careadvisor/internal/adapters/inbound/http"
	"github.com/cleitonmarx/symbiont-ai-careadvisor/internal/adapters/outbound/config"
	"github.com/cleitonmarx/symbiont-ai-careadvisor/internal/adapters/outbound/log"
	"github.com/cleitonmarx/symbiont-ai-careadvisor/internal/adapters/outbound/providers"
	"github.com/cleitonmarx/symbiont-ai-careadvisor/internal/knowledge"
	"github.com/cleitonmarx/symbiont-ai-careadvisor/internal/sentiment"
	"github.com/cleitonmarx/symbiont-ai-careadvisor/internal/telemetry"
	"github.com/cleitonmarx/symbiont-ai-careadvisor/internal/usecases"
)

// NewCareAdvisorApp creates and returns a new instance of the care advisor application.
// logOutput receives the application log; nil means stdout.
func NewCareAdvisorApp(logOutput io.Writer, initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(
			&config.InitDotEnv{},
			&log.InitLogger{Output: logOutput},
			&config.InitVaultProvider{},
			&telemetry.InitOpenTelemetry{},
			&telemetry.InitHttpClient{},

			&sentiment.InitSentimentScorer{},
			&providers.InitModelProviders{},
			&knowledge.InitKnowledgeRetriever{},

			&usecases.InitGenerateAdvice{},
		).
		Host(
			&http.CareAdvisorServer{},
		).
		Introspect(&MermaidGraphIntrospector{})
}
