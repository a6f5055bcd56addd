// Package qa implements the question-answering operation: given a user and a
// question, pick a model variant for the user and produce an answer.
//
// The two collaborators are injected as interfaces:
//   - Assigner maps a user id to a variant label (external assignment service)
//   - Completer generates an answer for a model and question (completion API)
//
// The service itself only makes the routing decision: a variant whose label
// contains the model marker is treated as a model identifier and sent to the
// completion API; anything else (including no assignment at all) resolves to
// the configured fallback answer.
package qa

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Eppo-exp/Eppo-AI-SDK-demo/internal/telemetry"
)

// Assigner returns the variant assigned to a user, or "" when no assignment applies.
type Assigner interface {
	Assign(ctx context.Context, userID string) (string, error)
}

// Completer generates an answer for a question using the given model.
type Completer interface {
	Complete(ctx context.Context, model, question string) (string, error)
}

// Answer is the result of a single ask operation.
type Answer struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Variant  string `json:"variant"`
}

// VariantRoute describes how a variant label is resolved.
type VariantRoute struct {
	Variant string `json:"variant"`
	Model   string `json:"model,omitempty"`
	Route   string `json:"route"` // "model" or "fallback"
}

// Fallback reasons recorded in metrics.
const (
	fallbackNoAssignment    = "no_assignment"
	fallbackNonModelVariant = "non_model_variant"
	fallbackAssignmentError = "assignment_error"
)

// Service wires the assignment and completion collaborators behind Ask.
type Service struct {
	assigner  Assigner
	completer Completer
	marker    string
	fallback  string
	variants  []string
	log       zerolog.Logger
}

// NewService creates a Service. marker is matched case-insensitively against
// variant labels; fallback is the fixed answer for non-model variants.
// knownVariants is advisory and only used for the routing view.
func NewService(assigner Assigner, completer Completer, marker, fallback string, knownVariants []string, log zerolog.Logger) *Service {
	return &Service{
		assigner:  assigner,
		completer: completer,
		marker:    strings.ToLower(marker),
		fallback:  fallback,
		variants:  knownVariants,
		log:       log,
	}
}

// Ask answers the question for the given user.
//
// The question is carried through to the response unmodified. The variant
// field echoes whatever the assignment service returned, which may be empty.
// An assignment failure degrades to the fallback answer; a completion failure
// is returned as an error since there is no answer to serve.
func (s *Service) Ask(ctx context.Context, userID, question string) (Answer, error) {
	variant, err := s.assigner.Assign(ctx, userID)
	if err != nil {
		// The service can still answer without an assignment.
		s.log.Warn().Err(err).Str("user_id", userID).Msg("assignment failed, using fallback")
		telemetry.Fallbacks.WithLabelValues(fallbackAssignmentError).Inc()
		return Answer{Question: question, Answer: s.fallback}, nil
	}
	telemetry.Assignments.WithLabelValues(variantLabel(variant)).Inc()

	model, ok := s.resolveModel(variant)
	if !ok {
		reason := fallbackNonModelVariant
		if variant == "" {
			reason = fallbackNoAssignment
		}
		telemetry.Fallbacks.WithLabelValues(reason).Inc()
		return Answer{Question: question, Answer: s.fallback, Variant: variant}, nil
	}

	answer, err := s.completer.Complete(ctx, model, question)
	if err != nil {
		telemetry.Completions.WithLabelValues(model, "error").Inc()
		return Answer{}, fmt.Errorf("completion for model %s: %w", model, err)
	}
	telemetry.Completions.WithLabelValues(model, "ok").Inc()

	return Answer{Question: question, Answer: answer, Variant: variant}, nil
}

// Routes returns the resolution of every known variant label plus the
// fallback route taken when no assignment applies.
func (s *Service) Routes() []VariantRoute {
	routes := make([]VariantRoute, 0, len(s.variants))
	for _, v := range s.variants {
		if model, ok := s.resolveModel(v); ok {
			routes = append(routes, VariantRoute{Variant: v, Model: model, Route: "model"})
		} else {
			routes = append(routes, VariantRoute{Variant: v, Route: "fallback"})
		}
	}
	return routes
}

// Fallback returns the configured fallback answer.
func (s *Service) Fallback() string { return s.fallback }

// resolveModel reports whether the variant label names a model. The label
// itself doubles as the model identifier when it contains the marker.
func (s *Service) resolveModel(variant string) (string, bool) {
	if variant == "" {
		return "", false
	}
	if !strings.Contains(strings.ToLower(variant), s.marker) {
		return "", false
	}
	return variant, true
}

func variantLabel(variant string) string {
	if variant == "" {
		return "none"
	}
	return variant
}
