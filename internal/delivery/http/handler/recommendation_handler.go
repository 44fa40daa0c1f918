package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"diet-recommender/internal/converter"
	"diet-recommender/internal/delivery/dto"
	"diet-recommender/internal/domain/entity"
	"diet-recommender/internal/usecase"
	"diet-recommender/pkg/response"
	"diet-recommender/pkg/validator"
)

type RecommendationHandler struct {
	recommendationUsecase usecase.RecommendationUsecase
	validator             *validator.CustomValidator
}

func NewRecommendationHandler(recommendationUsecase usecase.RecommendationUsecase, validator *validator.CustomValidator) *RecommendationHandler {
	return &RecommendationHandler{
		recommendationUsecase: recommendationUsecase,
		validator:             validator,
	}
}

// decodePatient reads and validates the body, writing the error response
// itself when it returns false.
func (h *RecommendationHandler) decodePatient(w http.ResponseWriter, r *http.Request) (*dto.PatientRequest, bool) {
	var req dto.PatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return nil, false
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return nil, false
	}

	return &req, true
}

func (h *RecommendationHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodePatient(w, r)
	if !ok {
		return
	}

	result, err := h.recommendationUsecase.Recommend(r.Context(), req)
	if err != nil {
		writePipelineError(w, err, "Failed to recommend a diet plan")
		return
	}

	response.Success(w, http.StatusOK, "Diet plan recommended successfully", result)
}

func (h *RecommendationHandler) DeriveMetrics(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodePatient(w, r)
	if !ok {
		return
	}

	metrics, err := h.recommendationUsecase.DeriveMetrics(r.Context(), req)
	if err != nil {
		writePipelineError(w, err, "Failed to derive metrics")
		return
	}

	response.Success(w, http.StatusOK, "Metrics derived successfully", metrics)
}

func (h *RecommendationHandler) EncodeFeatures(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodePatient(w, r)
	if !ok {
		return
	}

	features, err := h.recommendationUsecase.EncodeFeatures(r.Context(), req)
	if err != nil {
		writePipelineError(w, err, "Failed to encode features")
		return
	}

	response.Success(w, http.StatusOK, "Features encoded successfully", features)
}

func (h *RecommendationHandler) GetModelInfo(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "Model info retrieved successfully", h.recommendationUsecase.ModelInfo(r.Context()))
}

func (h *RecommendationHandler) GetForm(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "Form retrieved successfully", converter.PatientForm())
}

func writePipelineError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, entity.ErrValidation):
		response.Error(w, http.StatusBadRequest, "Invalid patient input", err.Error())
	case errors.Is(err, entity.ErrConfiguration), errors.Is(err, entity.ErrSchemaMismatch):
		response.UnprocessableEntity(w, "Input cannot be processed by the loaded model", err.Error())
	case errors.Is(err, entity.ErrClassifierUnavailable):
		response.BadGateway(w, "Classifier is unavailable")
	case errors.Is(err, entity.ErrUnknownClass):
		response.InternalServerError(w, "Classifier returned an unknown diet plan")
	default:
		response.InternalServerError(w, fallback)
	}
}
