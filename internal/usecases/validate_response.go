package usecases

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-careadvisor/internal/domain"
)

// ValidateResponse turns raw model output into StructuredAdvice or an ErrorPayload.
// It never panics and never retries. ParseError and SchemaMismatch keep the original text.
func ValidateResponse(raw string) (*domain.StructuredAdvice, *domain.ErrorPayload) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return nil, domain.NewErrorPayload(domain.ErrorKind_EmptyResponse, "the model returned an empty response", "")
	}

	text = extractJSONObject(stripCodeFence(text))

	var instance any
	if err := json.Unmarshal([]byte(text), &instance); err != nil {
		return nil, domain.NewErrorPayload(domain.ErrorKind_ParseError, fmt.Sprintf("the model response is not valid JSON: %v", err), raw)
	}
	if _, ok := instance.(map[string]any); !ok {
		return nil, domain.NewErrorPayload(domain.ErrorKind_ParseError, "the model response is not a JSON object", raw)
	}

	resolved, err := domain.ResolvedAdviceSchema()
	if err != nil {
		return nil, domain.NewErrorPayload(domain.ErrorKind_SchemaMismatch, err.Error(), raw)
	}
	if err := resolved.Validate(instance); err != nil {
		return nil, domain.NewErrorPayload(domain.ErrorKind_SchemaMismatch, fmt.Sprintf("the model response does not match the advice schema: %v", err), raw)
	}

	var advice domain.StructuredAdvice
	if err := json.Unmarshal([]byte(text), &advice); err != nil {
		return nil, domain.NewErrorPayload(domain.ErrorKind_SchemaMismatch, fmt.Sprintf("failed to decode advice: %v", err), raw)
	}
	if advice.AIClinicalInsights == nil {
		advice.AIClinicalInsights = []domain.AIClinicalInsight{}
	}

	return &advice, nil
}

// stripCodeFence removes a surrounding markdown code fence, with or without a language tag.
func stripCodeFence(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}

	body := strings.TrimPrefix(text, "```")
	if nl := strings.IndexByte(body, '\n'); nl >= 0 {
		// drop the info string, e.g. "json"
		body = body[nl+1:]
	} else {
		body = strings.TrimPrefix(body, "json")
	}
	body = strings.TrimSpace(body)
	body = strings.TrimSuffix(body, "```")
	return strings.TrimSpace(body)
}

// extractJSONObject returns the first complete JSON object in text when the object is
// wrapped in prose. Braces in the surrounding prose are skipped. Text that starts with
// an object is cut after it. When nothing decodes, the outermost {...} span is returned
// so the parse error describes the broken object.
func extractJSONObject(text string) string {
	if strings.HasPrefix(text, "{") {
		if end, err := decodeObjectAt(text); err == nil {
			return text[:end]
		}
		return text
	}

	for i := 0; i < len(text); i++ {
		if text[i] != '{' {
			continue
		}
		end, err := decodeObjectAt(text[i:])
		if err == nil {
			return text[i : i+end]
		}
		// an unterminated object swallows every later brace
		if errors.Is(err, io.ErrUnexpectedEOF) {
			break
		}
	}

	start := strings.IndexByte(text, '{')
	end := strings.LastIndexByte(text, '}')
	if start < 0 || end <= start {
		return text
	}
	return text[start : end+1]
}

// decodeObjectAt decodes one JSON object at the start of text and returns where it ends.
func decodeObjectAt(text string) (int, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	var obj map[string]json.RawMessage
	if err := dec.Decode(&obj); err != nil {
		return 0, err
	}
	return int(dec.InputOffset()), nil
}
