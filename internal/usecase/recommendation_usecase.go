package usecase

import (
	"context"

	"diet-recommender/internal/converter"
	"diet-recommender/internal/delivery/dto"
	"diet-recommender/internal/delivery/http/middleware"
	"diet-recommender/internal/domain/entity"
	"diet-recommender/internal/service"

	"github.com/sirupsen/logrus"
)

type RecommendationUsecase interface {
	Recommend(ctx context.Context, req *dto.PatientRequest) (*dto.RecommendationResponse, error)
	DeriveMetrics(ctx context.Context, req *dto.PatientRequest) (*dto.DerivedMetricsResponse, error)
	EncodeFeatures(ctx context.Context, req *dto.PatientRequest) (*dto.FeatureVectorResponse, error)
	ModelInfo(ctx context.Context) *dto.ModelInfoResponse
}

type recommendationUsecase struct {
	log   *logrus.Logger
	model *service.ModelContext
}

func NewRecommendationUsecase(log *logrus.Logger, model *service.ModelContext) RecommendationUsecase {
	return &recommendationUsecase{
		log:   log,
		model: model,
	}
}

// prepare validates the input and runs the metric and encoding steps shared
// by every endpoint.
func (u *recommendationUsecase) prepare(ctx context.Context, req *dto.PatientRequest) (*entity.DerivedMetrics, *entity.FeatureVector, error) {
	input := converter.PatientRequestToInput(req)
	if err := input.Validate(); err != nil {
		u.log.Warnf("Rejected patient input: %+v", err)
		return nil, nil, err
	}

	metrics, err := service.DeriveMetrics(input)
	if err != nil {
		u.log.Warnf("Failed to derive metrics: %+v", err)
		return nil, nil, err
	}

	vector, err := u.model.Encoder().Encode(input, metrics)
	if err != nil {
		u.log.Warnf("Failed to encode features: %+v", err)
		return nil, nil, err
	}

	return metrics, vector, nil
}

func (u *recommendationUsecase) Recommend(ctx context.Context, req *dto.PatientRequest) (*dto.RecommendationResponse, error) {
	metrics, vector, err := u.prepare(ctx, req)
	if err != nil {
		return nil, err
	}

	requestID, _ := middleware.GetRequestIDFromContext(ctx)

	label, classIndex, err := u.model.Classify(ctx, vector)
	if err != nil {
		u.log.WithField("request_id", requestID).Errorf("Failed to classify: %+v", err)
		return nil, err
	}

	u.log.WithFields(logrus.Fields{
		"request_id":  requestID,
		"class_index": classIndex,
		"diet_plan":   label,
	}).Info("Diet plan recommended")

	return &dto.RecommendationResponse{
		RequestID:  requestID,
		DietPlan:   label,
		ClassIndex: classIndex,
		Metrics:    converter.MetricsToResponse(metrics),
	}, nil
}

func (u *recommendationUsecase) DeriveMetrics(ctx context.Context, req *dto.PatientRequest) (*dto.DerivedMetricsResponse, error) {
	input := converter.PatientRequestToInput(req)
	if err := input.Validate(); err != nil {
		u.log.Warnf("Rejected patient input: %+v", err)
		return nil, err
	}

	metrics, err := service.DeriveMetrics(input)
	if err != nil {
		u.log.Warnf("Failed to derive metrics: %+v", err)
		return nil, err
	}

	resp := converter.MetricsToResponse(metrics)
	return &resp, nil
}

func (u *recommendationUsecase) EncodeFeatures(ctx context.Context, req *dto.PatientRequest) (*dto.FeatureVectorResponse, error) {
	metrics, vector, err := u.prepare(ctx, req)
	if err != nil {
		return nil, err
	}

	requestID, _ := middleware.GetRequestIDFromContext(ctx)

	return &dto.FeatureVectorResponse{
		RequestID: requestID,
		Metrics:   converter.MetricsToResponse(metrics),
		Features:  vector,
	}, nil
}

func (u *recommendationUsecase) ModelInfo(ctx context.Context) *dto.ModelInfoResponse {
	encoder := u.model.Encoder()
	return converter.ModelInfoToResponse(encoder.Columns(), u.model.Labels(), encoder.Report())
}
