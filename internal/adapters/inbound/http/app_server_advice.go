package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cleitonmarx/symbiont-ai-careadvisor/internal/adapters/inbound/http/gen"
)

// GenerateAdvice handles POST /api/v1/advice.
// Pipeline failures are part of a 200 response; only caller errors change the status.
func (api CareAdvisorServer) GenerateAdvice(w http.ResponseWriter, r *http.Request) {
	var req gen.GenerateAdviceJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errResp := gen.ErrorResp{}
		errResp.Error.Code = gen.BADREQUEST
		errResp.Error.Message = fmt.Sprintf("invalid request body: %v", err)

		respondError(w, errResp)
		return
	}

	result, err := api.GenerateAdviceUseCase.Execute(r.Context(), req.Symptoms, req.Emotion)
	if err != nil {
		respondError(w, toError(err))
		return
	}

	if result.Error != nil {
		api.Logger.Printf("CareAdvisorServer: request %s ended with %s: %s", result.RequestID, result.Error.Kind, result.Error.Message)
	}
	respondJSON(w, http.StatusOK, toAdviceResp(result))
}

// ListTopics handles GET /api/v1/knowledge/topics.
func (api CareAdvisorServer) ListTopics(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, toTopicsResp(api.KnowledgeRetriever.Topics()))
}

// GetTopic handles GET /api/v1/knowledge/topics/{topic}.
func (api CareAdvisorServer) GetTopic(w http.ResponseWriter, r *http.Request, topic string) {
	entry, err := api.KnowledgeRetriever.Topic(topic)
	if err != nil {
		respondError(w, toError(err))
		return
	}
	respondJSON(w, http.StatusOK, toTopicDetail(entry))
}

// Healthz handles GET /healthz.
func (api CareAdvisorServer) Healthz(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, gen.HealthResp{Status: "ok"})
}
