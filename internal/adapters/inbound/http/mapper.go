package http

import (
	"errors"

	"github.com/cleitonmarx/symbiont-ai-careadvisor/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/symbiont-ai-careadvisor/internal/domain"
)

func toError(err error) gen.ErrorResp {
	errResp := gen.ErrorResp{}

	var (
		validationErr *domain.ValidationErr
		notFoundErr   *domain.NotFoundErr
	)
	switch {
	case errors.As(err, &validationErr):
		errResp.Error.Code = gen.BADREQUEST
		errResp.Error.Message = validationErr.Error()
	case errors.As(err, &notFoundErr):
		errResp.Error.Code = gen.NOTFOUND
		errResp.Error.Message = notFoundErr.Error()
	default:
		errResp.Error.Code = gen.INTERNALERROR
		errResp.Error.Message = "internal server error"
	}
	return errResp
}

func toAdviceResp(r domain.AdviceResult) gen.AdviceResp {
	resp := gen.AdviceResp{
		RequestId: r.RequestID,
		Topic:     r.Topic,
		Sentiment: gen.Sentiment{
			Label: gen.SentimentLabel(r.Sentiment.Label),
			Score: r.Sentiment.Score,
		},
		Outcome: r.Outcome(),
		Advice:  toStructuredAdvice(r.Advice),
	}
	if r.Error != nil {
		resp.Error = &gen.ErrorPayload{
			Kind:    gen.ErrorPayloadKind(r.Error.Kind),
			Message: r.Error.Message,
		}
		if r.Error.Raw != "" {
			raw := r.Error.Raw
			resp.Error.Raw = &raw
		}
	}
	return resp
}

func toStructuredAdvice(a *domain.StructuredAdvice) *gen.StructuredAdvice {
	if a == nil {
		return nil
	}
	out := &gen.StructuredAdvice{
		PossibleConditions:         make([]gen.PossibleCondition, 0, len(a.PossibleConditions)),
		FirstAidMedications:        make([]gen.FirstAidMedication, 0, len(a.FirstAidMedications)),
		NutritionalRecommendations: make([]gen.NutritionalRecommendation, 0, len(a.NutritionalRecommendations)),
		AiClinicalInsights:         make([]gen.ClinicalInsight, 0, len(a.AIClinicalInsights)),
		AdditionalClinicalInsights: a.AdditionalClinicalInsights,
		Disclaimer:                 a.Disclaimer,
	}
	for _, c := range a.PossibleConditions {
		out.PossibleConditions = append(out.PossibleConditions, gen.PossibleCondition{
			Condition:   c.Condition,
			Confidence:  c.Confidence,
			Explanation: c.Explanation,
		})
	}
	for _, m := range a.FirstAidMedications {
		out.FirstAidMedications = append(out.FirstAidMedications, gen.FirstAidMedication{
			Medication: m.Medication,
			Rationale:  m.Rationale,
		})
	}
	for _, n := range a.NutritionalRecommendations {
		out.NutritionalRecommendations = append(out.NutritionalRecommendations, gen.NutritionalRecommendation{
			Recommendation: n.Recommendation,
			Rationale:      n.Rationale,
		})
	}
	for _, i := range a.AIClinicalInsights {
		out.AiClinicalInsights = append(out.AiClinicalInsights, gen.ClinicalInsight{
			Technology:  i.Technology,
			Application: i.Application,
			Evidence:    i.Evidence,
		})
	}
	return out
}

func toTopicsResp(topics []domain.TopicSummary) gen.TopicsResp {
	resp := gen.TopicsResp{Topics: make([]gen.Topic, 0, len(topics))}
	for _, t := range topics {
		resp.Topics = append(resp.Topics, gen.Topic{Topic: t.Topic, FactCount: t.FactCount})
	}
	return resp
}

func toTopicDetail(e domain.KnowledgeEntry) gen.TopicDetail {
	facts := e.Facts
	if facts == nil {
		facts = []string{}
	}
	return gen.TopicDetail{Topic: e.Topic, Facts: facts}
}
