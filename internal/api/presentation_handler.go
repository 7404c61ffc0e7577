package api

import (
	"net/http"

	"github.com/educoreai-lotus/ContentStudio-sub002/internal/api/shared"
	"github.com/educoreai-lotus/ContentStudio-sub002/internal/generation"
)

// GeneratePresentationRequest represents the request body for generating a
// presentation deck.
type GeneratePresentationRequest struct {
	Prompt    string `json:"prompt"               validate:"required,min=1"`
	TopicName string `json:"topic_name,omitempty"`
	Language  string `json:"language,omitempty"`
	MaxSlides *int   `json:"max_slides,omitempty" validate:"omitempty,min=1"`
}

// PresentationResponse represents the normalized generation result returned
// to the client. At least one of the two locations is always set.
type PresentationResponse struct {
	PresentationURL *string `json:"presentation_url"`
	StoragePath     *string `json:"storage_path"`
}

// PresentationHandler handles presentation-generation HTTP requests
type PresentationHandler struct {
	generator generation.Generator
}

// NewPresentationHandler creates a new PresentationHandler
func NewPresentationHandler(generator generation.Generator) *PresentationHandler {
	return &PresentationHandler{
		generator: generator,
	}
}

// GeneratePresentation handles POST /api/presentations requests
func (h *PresentationHandler) GeneratePresentation(w http.ResponseWriter, r *http.Request) {
	// Parse request body
	var req GeneratePresentationRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	// Validate request
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	opts := generation.Options{
		TopicName: req.TopicName,
		Language:  req.Language,
	}
	if req.MaxSlides != nil {
		opts.MaxSlides = *req.MaxSlides
	}

	result, err := h.generator.GeneratePresentation(r.Context(), req.Prompt, opts)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, PresentationResponse{
		PresentationURL: result.PresentationURL,
		StoragePath:     result.StoragePath,
	})
}
