// Package huggingface provides a client for Hugging Face style text classification
// inference endpoints, such as a hosted distilbert SST-2 sentiment model.
package huggingface

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// LabelScore is one class predicted by a text classification model.
type LabelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

type classifyRequest struct {
	Inputs string `json:"inputs"`
}

// InferenceClient is a thin client for a text classification inference endpoint.
type InferenceClient struct {
	endpoint string
	token    string
	http     *http.Client
}

// NewInferenceClient creates a new client. The token is optional.
func NewInferenceClient(endpoint, token string, httpClient *http.Client) InferenceClient {
	return InferenceClient{
		endpoint: endpoint,
		token:    token,
		http:     httpClient,
	}
}

// Classify posts the text to the endpoint and returns the predicted classes.
func (c InferenceClient) Classify(ctx context.Context, text string) ([]LabelScore, error) {
	body, err := json.Marshal(classifyRequest{Inputs: text})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http do: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("non-2xx response: %s: %s", resp.Status, string(respBody))
	}

	return decodeLabelScores(respBody)
}

// decodeLabelScores accepts both the nested ([[...]]) and the flat ([...]) response shapes.
func decodeLabelScores(body []byte) ([]LabelScore, error) {
	var nested [][]LabelScore
	if err := json.Unmarshal(body, &nested); err == nil {
		if len(nested) == 0 || len(nested[0]) == 0 {
			return nil, errors.New("empty classification response")
		}
		return nested[0], nil
	}

	var flat []LabelScore
	if err := json.Unmarshal(body, &flat); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	if len(flat) == 0 {
		return nil, errors.New("empty classification response")
	}
	return flat, nil
}
