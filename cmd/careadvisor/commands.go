package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont-ai-careadvisor/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/symbiont-ai-careadvisor/internal/app"
	"github.com/spf13/cobra"
)

// errAdviceUnavailable signals that a failure was already rendered to the user.
var errAdviceUnavailable = errors.New("advice unavailable")

func defaultServerURL() string {
	if v := os.Getenv("CAREADVISOR_SERVER"); v != "" {
		return v
	}
	return "http://localhost:8080"
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "careadvisor",
		Short:         "Retrieval-augmented, non-diagnostic care advice",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCmd(), newAskCmd(), newTopicsCmd())
	return root
}

func newServeCmd() *cobra.Command {
	var logReport bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP and MCP service",
		Long: `Run the HTTP and MCP service.

Configuration is read from the environment (and an optional .env file):
  LLM_PROVIDER, EMBEDDING_PROVIDER   modelrunner | gemini | openai
  LLM_MODEL, LLM_EMBEDDING_MODEL     model identifiers
  LLM_MODEL_HOST                     model runner base URL
  SENTIMENT_STRATEGY                 lexicon | classifier
  HTTP_PORT                          listen port (default 8080)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app.NewCareAdvisorApp(cmd.ErrOrStderr())
			if logReport {
				a = a.Introspect(&app.ReportLoggerIntrospector{Output: cmd.ErrOrStderr()})
			}
			return a.Run()
		},
	}
	cmd.Flags().BoolVar(&logReport, "log-report", false, "log the resolved configuration keys at startup")
	return cmd
}

type askOptions struct {
	symptoms string
	emotion  string
	server   string
	timeout  time.Duration
	jsonOut  bool
	verbose  bool
}

func newAskCmd() *cobra.Command {
	opts := askOptions{}
	cmd := &cobra.Command{
		Use:   "ask",
		Short: "Ask a running service for care advice",
		Long: `Ask a running service for care advice.

Examples:
  careadvisor ask --symptoms "dry cough and fatigue" --emotion "a bit worried"
  careadvisor ask -s "headache" -e "stressed" --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAsk(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}
	cmd.Flags().StringVarP(&opts.symptoms, "symptoms", "s", "", "physical symptoms in your own words")
	cmd.Flags().StringVarP(&opts.emotion, "emotion", "e", "", "how you feel about them")
	cmd.Flags().StringVar(&opts.server, "server", defaultServerURL(), "care advisor base URL")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 90*time.Second, "request timeout")
	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "print the raw JSON response")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "include the raw model output on failures")
	return cmd
}

func newAPIClient(server string, timeout time.Duration) (*gen.ClientWithResponses, error) {
	cli, err := gen.NewClientWithResponses(server, gen.WithHTTPClient(&http.Client{Timeout: timeout}))
	if err != nil {
		return nil, fmt.Errorf("invalid server URL: %w", err)
	}
	return cli, nil
}

func runAsk(ctx context.Context, out io.Writer, opts askOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, opts.timeout)
	defer cancel()

	cli, err := newAPIClient(opts.server, opts.timeout)
	if err != nil {
		return err
	}

	resp, err := cli.GenerateAdviceWithResponse(ctx, gen.GenerateAdviceJSONRequestBody{
		Symptoms: opts.symptoms,
		Emotion:  opts.emotion,
	})
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	switch {
	case resp.JSON200 != nil:
	case resp.JSON400 != nil:
		fmt.Fprintln(out, renderRequestError(*resp.JSON400)) //nolint:errcheck
		return errAdviceUnavailable
	case resp.JSON500 != nil:
		fmt.Fprintln(out, renderRequestError(*resp.JSON500)) //nolint:errcheck
		return errAdviceUnavailable
	default:
		return fmt.Errorf("unexpected response %s: %s", resp.Status(), strings.TrimSpace(string(resp.Body)))
	}

	result := *resp.JSON200
	if opts.jsonOut {
		fmt.Fprintln(out, strings.TrimSpace(string(resp.Body))) //nolint:errcheck
	} else {
		fmt.Fprintln(out, renderAdvice(result, opts.verbose)) //nolint:errcheck
	}
	if result.Error != nil {
		return errAdviceUnavailable
	}
	return nil
}

func newTopicsCmd() *cobra.Command {
	var (
		server  string
		timeout time.Duration
	)
	cmd := &cobra.Command{
		Use:   "topics [topic]",
		Short: "List the knowledge base topics of a running service, or the facts of one topic",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cli, err := newAPIClient(server, timeout)
			if err != nil {
				return err
			}

			if len(args) == 1 {
				return runTopic(ctx, cmd.OutOrStdout(), cli, args[0])
			}

			resp, err := cli.ListTopicsWithResponse(ctx)
			if err != nil {
				return fmt.Errorf("request failed: %w", err)
			}
			if resp.JSON200 == nil {
				return fmt.Errorf("unexpected response %s: %s", resp.Status(), strings.TrimSpace(string(resp.Body)))
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTopics(*resp.JSON200)) //nolint:errcheck
			return nil
		},
	}
	cmd.Flags().StringVar(&server, "server", defaultServerURL(), "care advisor base URL")
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "request timeout")
	return cmd
}

func runTopic(ctx context.Context, out io.Writer, cli *gen.ClientWithResponses, topic string) error {
	resp, err := cli.GetTopicWithResponse(ctx, topic)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	switch {
	case resp.JSON200 != nil:
		fmt.Fprintln(out, renderTopicDetail(*resp.JSON200)) //nolint:errcheck
		return nil
	case resp.JSON404 != nil:
		fmt.Fprintln(out, renderRequestError(*resp.JSON404)) //nolint:errcheck
		return errAdviceUnavailable
	default:
		return fmt.Errorf("unexpected response %s: %s", resp.Status(), strings.TrimSpace(string(resp.Body)))
	}
}
