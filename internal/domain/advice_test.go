package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAdviceDocument() map[string]any {
	return map[string]any{
		"possible_conditions": []any{
			map[string]any{"condition": "Common cold", "confidence": 0.6, "explanation": "Cough and fatigue."},
			map[string]any{"condition": "Bronchitis", "confidence": 0.3, "explanation": "Persistent cough."},
		},
		"first_aid_medications": []any{
			map[string]any{"medication": "Honey", "rationale": "Soothes the throat."},
			map[string]any{"medication": "Paracetamol", "rationale": "Reduces aches."},
		},
		"nutritional_recommendations": []any{
			map[string]any{"recommendation": "Warm fluids", "rationale": "Hydration."},
			map[string]any{"recommendation": "Citrus fruit", "rationale": "Vitamin C."},
		},
		"ai_clinical_insights":         []any{},
		"additional_clinical_insights": "Rest well.",
		"disclaimer":                   CanonicalDisclaimer,
	}
}

func TestAdviceSchema(t *testing.T) {
	s, err := AdviceSchema()
	require.NoError(t, err)

	again, err := AdviceSchema()
	require.NoError(t, err)
	assert.Same(t, s, again)

	assert.Equal(t, []string{
		"possible_conditions",
		"first_aid_medications",
		"nutritional_recommendations",
		"ai_clinical_insights",
		"additional_clinical_insights",
		"disclaimer",
	}, s.Required)

	conditions := s.Properties["possible_conditions"]
	assert.Equal(t, "array", conditions.Type)
	require.NotNil(t, conditions.MinItems)
	require.NotNil(t, conditions.MaxItems)
	assert.Equal(t, 2, *conditions.MinItems)
	assert.Equal(t, 2, *conditions.MaxItems)
	assert.Nil(t, s.Properties["ai_clinical_insights"].MaxItems)
	assert.Equal(t, []any{CanonicalDisclaimer}, s.Properties["disclaimer"].Enum)
}

func TestResolvedAdviceSchema_Validate(t *testing.T) {
	resolved, err := ResolvedAdviceSchema()
	require.NoError(t, err)

	tests := map[string]struct {
		mutate  func(doc map[string]any)
		wantErr bool
	}{
		"valid": {
			mutate: func(map[string]any) {},
		},
		"one-condition": {
			mutate: func(doc map[string]any) {
				doc["possible_conditions"] = doc["possible_conditions"].([]any)[:1]
			},
			wantErr: true,
		},
		"confidence-out-of-range": {
			mutate: func(doc map[string]any) {
				doc["possible_conditions"].([]any)[0].(map[string]any)["confidence"] = 1.5
			},
			wantErr: true,
		},
		"missing-disclaimer": {
			mutate: func(doc map[string]any) {
				delete(doc, "disclaimer")
			},
			wantErr: true,
		},
		"altered-disclaimer": {
			mutate: func(doc map[string]any) {
				doc["disclaimer"] = "Not medical advice."
			},
			wantErr: true,
		},
		"unknown-field": {
			mutate: func(doc map[string]any) {
				doc["urgency"] = "high"
			},
			wantErr: true,
		},
		"many-insights": {
			mutate: func(doc map[string]any) {
				insight := map[string]any{"technology": "Pulse oximeter", "application": "Oxygen", "evidence": "Widely used"}
				doc["ai_clinical_insights"] = []any{insight, insight, insight}
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			doc := validAdviceDocument()
			tt.mutate(doc)

			// round trip so numbers have the same types as a decoded model answer
			b, err := json.Marshal(doc)
			require.NoError(t, err)
			var instance any
			require.NoError(t, json.Unmarshal(b, &instance))

			err = resolved.Validate(instance)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDescribeAdviceSchema(t *testing.T) {
	desc, err := DescribeAdviceSchema()
	require.NoError(t, err)

	assert.Contains(t, desc, "- possible_conditions: array of exactly 2 objects with fields condition (string), confidence (number 0.0-1.0), explanation (string)")
	assert.Contains(t, desc, "- first_aid_medications: array of exactly 2 objects with fields medication (string), rationale (string)")
	assert.Contains(t, desc, "- ai_clinical_insights: array of 0 or more objects with fields technology (string), application (string), evidence (string)")
	assert.Contains(t, desc, "- disclaimer: string, must equal the disclaimer text exactly")
}

func TestAdviceSchemaJSON(t *testing.T) {
	out, err := AdviceSchemaJSON()
	require.NoError(t, err)
	assert.Contains(t, out, `"possible_conditions"`)
	assert.Contains(t, out, `"maxItems": 2`)
}

func TestPromptRequest_Render(t *testing.T) {
	p := PromptRequest{Messages: []LLMChatMessage{
		{Role: ChatRole_System, Content: "be kind"},
		{Role: ChatRole_User, Content: "I cough"},
	}}
	assert.Equal(t, "[system]\nbe kind\n\n[user]\nI cough", p.Render())
}

func TestAdviceResult_Outcome(t *testing.T) {
	ok := AdviceResult{Advice: &StructuredAdvice{}}
	assert.True(t, ok.Succeeded())
	assert.Equal(t, "VALID", ok.Outcome())

	failed := AdviceResult{Error: NewErrorPayload(ErrorKind_ParseError, "bad", "raw")}
	assert.False(t, failed.Succeeded())
	assert.Equal(t, "ParseError", failed.Outcome())
}

func TestTransportErr(t *testing.T) {
	cause := assert.AnError
	err := NewTransportErr("generation call failed", cause)
	assert.EqualError(t, err, "generation call failed: "+cause.Error())
	assert.ErrorIs(t, err, cause)
}
