package usecases

import "github.com/cleitonmarx/symbiont-ai-careadvisor/internal/domain"

const validAdviceJSON = `{
  "possible_conditions": [
    {"condition": "Viral upper respiratory infection", "confidence": 0.7, "explanation": "Dry cough with fatigue is typical of a cold."},
    {"condition": "Post-viral cough", "confidence": 0.2, "explanation": "Coughs can linger after an infection."}
  ],
  "first_aid_medications": [
    {"medication": "Honey in warm water", "rationale": "Soothes the throat and eases coughing."},
    {"medication": "Paracetamol", "rationale": "Relieves aches and fatigue."}
  ],
  "nutritional_recommendations": [
    {"recommendation": "Warm fluids", "rationale": "Keeps you hydrated and thins mucus."},
    {"recommendation": "Citrus fruit", "rationale": "Provides vitamin C."}
  ],
  "ai_clinical_insights": [
    {"technology": "Cough sound analysis", "application": "Distinguishes dry and productive coughs", "evidence": "Early studies"}
  ],
  "additional_clinical_insights": "Feeling scared is understandable. See a doctor if the cough lasts more than three weeks.",
  "disclaimer": "` + domain.CanonicalDisclaimer + `"
}`

func validAdvice() *domain.StructuredAdvice {
	return &domain.StructuredAdvice{
		PossibleConditions: []domain.PossibleCondition{
			{Condition: "Viral upper respiratory infection", Confidence: 0.7, Explanation: "Dry cough with fatigue is typical of a cold."},
			{Condition: "Post-viral cough", Confidence: 0.2, Explanation: "Coughs can linger after an infection."},
		},
		FirstAidMedications: []domain.FirstAidMedication{
			{Medication: "Honey in warm water", Rationale: "Soothes the throat and eases coughing."},
			{Medication: "Paracetamol", Rationale: "Relieves aches and fatigue."},
		},
		NutritionalRecommendations: []domain.NutritionalRecommendation{
			{Recommendation: "Warm fluids", Rationale: "Keeps you hydrated and thins mucus."},
			{Recommendation: "Citrus fruit", Rationale: "Provides vitamin C."},
		},
		AIClinicalInsights: []domain.AIClinicalInsight{
			{Technology: "Cough sound analysis", Application: "Distinguishes dry and productive coughs", Evidence: "Early studies"},
		},
		AdditionalClinicalInsights: "Feeling scared is understandable. See a doctor if the cough lasts more than three weeks.",
		Disclaimer:                 domain.CanonicalDisclaimer,
	}
}
