package http

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/cleitonmarx/symbiont-ai-careadvisor/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/symbiont-ai-careadvisor/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-careadvisor/internal/telemetry"
	"github.com/cleitonmarx/symbiont-ai-careadvisor/internal/usecases"
	"github.com/rs/cors"
)

//go:generate go tool oapi-codegen -config gen/config.yaml openapi/openapi.yaml

var _ gen.ServerInterface = (*CareAdvisorServer)(nil)

// CareAdvisorServer is the REST API and MCP HTTP server for the care advisor.
type CareAdvisorServer struct {
	Port                  int                       `config:"HTTP_PORT" default:"8080"`
	Logger                *log.Logger               `resolve:""`
	GenerateAdviceUseCase usecases.GenerateAdvice   `resolve:""`
	KnowledgeRetriever    domain.KnowledgeRetriever `resolve:""`
}

// Handler builds the routed, instrumented handler.
func (api CareAdvisorServer) Handler() http.Handler {
	mux := http.NewServeMux()

	// Register introspection endpoint for debugging and testing purposes
	mux.HandleFunc("GET /introspect", IntrospectHandler)
	mux.Handle("/mcp", telemetry.HttpHandler(newMCPHandler(api.GenerateAdviceUseCase), "careadvisor-mcp"))

	// Create the OpenAPI handler with telemetry middleware
	h := gen.HandlerWithOptions(api, gen.StdHTTPServerOptions{
		BaseRouter: mux,
		Middlewares: []gen.MiddlewareFunc{
			telemetry.Middleware("careadvisor-api"),
		},
	})

	// Apply CORS at the top-level so preflight requests hit it, too.
	return cors.AllowAll().Handler(h)
}

// Run starts the HTTP server for the CareAdvisorServer.
func (api CareAdvisorServer) Run(ctx context.Context) error {
	s := &http.Server{
		Handler:           api.Handler(),
		Addr:              fmt.Sprintf(":%d", api.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		api.Logger.Printf("CareAdvisorServer: Listening on port %d", api.Port)
		errCh <- s.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.Shutdown(shutdownCtx)
		if err != nil {
			api.Logger.Printf("CareAdvisorServer: error during shutdown: %v", err)
		} else {
			api.Logger.Println("CareAdvisorServer: stopped")
		}
		return err
	case err := <-errCh:
		return err
	}
}

// IsReady checks if the CareAdvisorServer is ready by performing a health check.
func (api CareAdvisorServer) IsReady(ctx context.Context) error {
	cli, err := gen.NewClientWithResponses(fmt.Sprintf("http://localhost:%d", api.Port))
	if err != nil {
		return err
	}
	resp, err := cli.HealthzWithResponse(ctx)
	if err != nil {
		return err
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode())
	}
	return nil
}
