package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cleitonmarx/symbiont-ai-careadvisor/internal/usecases"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const adviceToolName = "get_care_advice"

// AdviceToolInput is the argument of the get_care_advice MCP tool.
type AdviceToolInput struct {
	Symptoms string `json:"symptoms" jsonschema:"the physical symptoms in the user's own words"`
	Emotion  string `json:"emotion" jsonschema:"how the user feels about the symptoms"`
}

// newMCPServer exposes the advice pipeline as an MCP tool.
func newMCPServer(uc usecases.GenerateAdvice) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: "careadvisor", Version: "v1.0.0"}, nil)
	mcp.AddTool(server, &mcp.Tool{
		Name:        adviceToolName,
		Description: "Returns structured, non-diagnostic care advice for the given symptoms and emotional state.",
	}, adviceToolHandler(uc))
	return server
}

func adviceToolHandler(uc usecases.GenerateAdvice) mcp.ToolHandlerFor[AdviceToolInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in AdviceToolInput) (*mcp.CallToolResult, any, error) {
		result, err := uc.Execute(ctx, in.Symptoms, in.Emotion)
		if err != nil {
			return &mcp.CallToolResult{
				IsError: true,
				Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
			}, nil, nil
		}

		body, err := json.Marshal(toAdviceResp(result))
		if err != nil {
			return nil, nil, fmt.Errorf("failed to encode advice result: %w", err)
		}
		return &mcp.CallToolResult{
			IsError: result.Error != nil,
			Content: []mcp.Content{&mcp.TextContent{Text: string(body)}},
		}, nil, nil
	}
}

// newMCPHandler serves the MCP server over streamable HTTP.
func newMCPHandler(uc usecases.GenerateAdvice) http.Handler {
	server := newMCPServer(uc)
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, nil)
}
