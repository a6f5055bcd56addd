package api

import (
	"net/http"
	"strings"
)

// variantsResponse represents the response for GET /v1/variants
type variantsResponse struct {
	FlagKey     string             `json:"flagKey"`
	ModelMarker string             `json:"modelMarker"`
	Fallback    string             `json:"fallback"`
	Variants    []variantRouteView `json:"variants"`
}

type variantRouteView struct {
	Variant string `json:"variant"`
	Model   string `json:"model,omitempty"`
	Route   string `json:"route"`
}

// handleQA handles GET /qa?userId=...&question=...
func (s *Server) handleQA(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	userID := strings.TrimSpace(query.Get("userId"))
	question := query.Get("question")

	fields := make(map[string]string)
	if userID == "" {
		fields["userId"] = "userId query parameter is required"
	}
	if strings.TrimSpace(question) == "" {
		fields["question"] = "question query parameter is required"
	}
	if len(fields) > 0 {
		BadRequestErrorWithFields(w, r, ErrCodeMissingField, "Missing required query parameters", fields)
		return
	}

	answer, err := s.svc.Ask(r.Context(), userID, question)
	if err != nil {
		s.log.Error().Err(err).Str("user_id", userID).Msg("ask failed")
		UpstreamError(w, r, "completion API request failed")
		return
	}

	writeJSON(w, http.StatusOK, answer)
}

// handleVariants handles GET /v1/variants
func (s *Server) handleVariants(w http.ResponseWriter, _ *http.Request) {
	routes := s.svc.Routes()
	views := make([]variantRouteView, 0, len(routes))
	for _, route := range routes {
		views = append(views, variantRouteView{
			Variant: route.Variant,
			Model:   route.Model,
			Route:   route.Route,
		})
	}

	writeJSON(w, http.StatusOK, variantsResponse{
		FlagKey:     s.opts.FlagKey,
		ModelMarker: s.opts.ModelMarker,
		Fallback:    s.svc.Fallback(),
		Variants:    views,
	})
}
