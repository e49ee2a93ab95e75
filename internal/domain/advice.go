package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/google/jsonschema-go/jsonschema"
)

// CanonicalDisclaimer is the fixed disclaimer the model must copy verbatim into its answer.
const CanonicalDisclaimer = "This information is for general educational purposes only and is not a medical diagnosis. " +
	"Always consult a qualified healthcare professional about your symptoms, and seek emergency care if they are severe or worsening."

// AdviceSchemaName names the advice schema for backends that label structured outputs.
const AdviceSchemaName = "structured_advice"

// PossibleCondition is a condition that could explain the reported symptoms.
type PossibleCondition struct {
	Condition   string  `json:"condition" jsonschema:"name of the possible condition"`
	Confidence  float64 `json:"confidence" jsonschema:"likelihood between 0.0 and 1.0"`
	Explanation string  `json:"explanation" jsonschema:"why the symptoms point to this condition"`
}

// FirstAidMedication is an over-the-counter option or first aid step.
type FirstAidMedication struct {
	Medication string `json:"medication" jsonschema:"over-the-counter medication or first aid measure"`
	Rationale  string `json:"rationale" jsonschema:"why it may help"`
}

// NutritionalRecommendation is a dietary suggestion.
type NutritionalRecommendation struct {
	Recommendation string `json:"recommendation" jsonschema:"food, drink or dietary habit"`
	Rationale      string `json:"rationale" jsonschema:"why it may help"`
}

// AIClinicalInsight describes how a technology could support care for the condition.
type AIClinicalInsight struct {
	Technology  string `json:"technology" jsonschema:"technology or tool"`
	Application string `json:"application" jsonschema:"how it applies to the symptoms"`
	Evidence    string `json:"evidence" jsonschema:"supporting evidence"`
}

// StructuredAdvice is the validated answer produced by the generation step.
type StructuredAdvice struct {
	PossibleConditions         []PossibleCondition         `json:"possible_conditions" jsonschema:"conditions that could explain the symptoms"`
	FirstAidMedications        []FirstAidMedication        `json:"first_aid_medications" jsonschema:"first aid and over-the-counter options"`
	NutritionalRecommendations []NutritionalRecommendation `json:"nutritional_recommendations" jsonschema:"dietary suggestions"`
	AIClinicalInsights         []AIClinicalInsight         `json:"ai_clinical_insights" jsonschema:"relevant clinical technology insights"`
	AdditionalClinicalInsights string                      `json:"additional_clinical_insights" jsonschema:"free-text supportive guidance"`
	Disclaimer                 string                      `json:"disclaimer" jsonschema:"the canonical disclaimer, copied verbatim"`
}

// arrayBounds holds the cardinality of each array field of StructuredAdvice.
// A negative max means unbounded.
var arrayBounds = []struct {
	field    string
	min, max int
}{
	{"possible_conditions", 2, 2},
	{"first_aid_medications", 2, 2},
	{"nutritional_recommendations", 2, 2},
	{"ai_clinical_insights", 0, -1},
}

var (
	adviceSchemaOnce sync.Once
	adviceSchema     *jsonschema.Schema
	adviceResolved   *jsonschema.Resolved
	adviceSchemaErr  error
)

// AdviceSchema returns the JSON schema of StructuredAdvice, including cardinalities,
// the confidence range and the fixed disclaimer. The same value drives the prompt,
// the structured output hint and the response validation.
func AdviceSchema() (*jsonschema.Schema, error) {
	adviceSchemaOnce.Do(buildAdviceSchema)
	return adviceSchema, adviceSchemaErr
}

// ResolvedAdviceSchema returns the advice schema resolved for validation.
func ResolvedAdviceSchema() (*jsonschema.Resolved, error) {
	adviceSchemaOnce.Do(buildAdviceSchema)
	return adviceResolved, adviceSchemaErr
}

// MustAdviceSchema is like AdviceSchema but panics if the schema cannot be built.
func MustAdviceSchema() *jsonschema.Schema {
	s, err := AdviceSchema()
	if err != nil {
		panic(err)
	}
	return s
}

func buildAdviceSchema() {
	s, err := jsonschema.For[StructuredAdvice](&jsonschema.ForOptions{})
	if err != nil {
		adviceSchemaErr = fmt.Errorf("failed to infer advice schema: %w", err)
		return
	}

	closeObject(s)
	for _, b := range arrayBounds {
		prop, ok := s.Properties[b.field]
		if !ok {
			adviceSchemaErr = fmt.Errorf("advice schema has no %q property", b.field)
			return
		}
		prop.Type = "array"
		prop.Types = nil
		prop.MinItems = ptr(b.min)
		if b.max >= 0 {
			prop.MaxItems = ptr(b.max)
		}
		if prop.Items != nil {
			closeObject(prop.Items)
		}
	}

	conf := s.Properties["possible_conditions"].Items.Properties["confidence"]
	conf.Minimum = ptr(0.0)
	conf.Maximum = ptr(1.0)

	s.Properties["disclaimer"].Enum = []any{CanonicalDisclaimer}

	resolved, err := s.Resolve(nil)
	if err != nil {
		adviceSchemaErr = fmt.Errorf("failed to resolve advice schema: %w", err)
		return
	}
	adviceSchema = s
	adviceResolved = resolved
}

// closeObject forbids properties that are not declared.
func closeObject(s *jsonschema.Schema) {
	s.AdditionalProperties = &jsonschema.Schema{Not: &jsonschema.Schema{}}
}

func ptr[T any](v T) *T {
	return &v
}

// AdviceSchemaJSON renders the advice schema as indented JSON.
func AdviceSchemaJSON() (string, error) {
	s, err := AdviceSchema()
	if err != nil {
		return "", err
	}
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal advice schema: %w", err)
	}
	return string(b), nil
}

// DescribeAdviceSchema renders the advice schema as a plain field list, one line per
// top-level field in declaration order, e.g.
//
//   - possible_conditions: array of exactly 2 objects with fields condition (string), ...
func DescribeAdviceSchema() (string, error) {
	s, err := AdviceSchema()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for i, name := range s.Required {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "- %s: %s", name, describeProperty(s.Properties[name]))
	}
	return sb.String(), nil
}

func describeProperty(p *jsonschema.Schema) string {
	switch p.Type {
	case "array":
		desc := "array of " + describeCardinality(p) + " objects"
		if p.Items == nil {
			return desc
		}
		fields := make([]string, 0, len(p.Items.Required))
		for _, name := range p.Items.Required {
			fields = append(fields, name+" ("+describeScalar(p.Items.Properties[name])+")")
		}
		return desc + " with fields " + strings.Join(fields, ", ")
	default:
		return describeScalar(p)
	}
}

func describeCardinality(p *jsonschema.Schema) string {
	min := 0
	if p.MinItems != nil {
		min = *p.MinItems
	}
	switch {
	case p.MaxItems == nil:
		return fmt.Sprintf("%d or more", min)
	case *p.MaxItems == min:
		return fmt.Sprintf("exactly %d", min)
	default:
		return fmt.Sprintf("%d to %d", min, *p.MaxItems)
	}
}

func describeScalar(p *jsonschema.Schema) string {
	desc := p.Type
	if p.Minimum != nil && p.Maximum != nil {
		desc += fmt.Sprintf(" %.1f-%.1f", *p.Minimum, *p.Maximum)
	}
	if len(p.Enum) == 1 {
		desc += ", must equal the disclaimer text exactly"
	}
	return desc
}
