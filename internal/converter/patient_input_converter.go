package converter

import (
	"diet-recommender/internal/delivery/dto"
	"diet-recommender/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// PatientRequestToInput converts a PatientRequest DTO to a PatientInput entity
func PatientRequestToInput(req *dto.PatientRequest) *entity.PatientInput {
	if req == nil {
		return nil
	}

	return &entity.PatientInput{
		Age:                 req.Age,
		Gender:              req.Gender,
		HeightCM:            req.HeightCM,
		WeightKG:            req.WeightKG,
		DailyCalories:       req.DailyCalories,
		WeeklyExerciseHours: intOrMissing(req.WeeklyExerciseHours),
		PhysicalActivity:    req.PhysicalActivity,
		DiseaseType:         req.DiseaseType,
		Severity:            req.Severity,
		Cholesterol:         req.Cholesterol,
		BloodPressure:       req.BloodPressure,
		Glucose:             req.Glucose,
		DietaryRestriction:  req.DietaryRestriction,
		Allergy:             req.Allergy,
		PreferredCuisine:    req.PreferredCuisine,
		Adherence:           req.Adherence,
	}
}

// intOrMissing maps an absent value to -1, which every range check rejects.
func intOrMissing(v *int) int {
	if v == nil {
		return -1
	}
	return *v
}

// MetricsToResponse converts DerivedMetrics to their display form
func MetricsToResponse(m *entity.DerivedMetrics) dto.DerivedMetricsResponse {
	return dto.DerivedMetricsResponse{
		BMI:            decimal2(m.BMI),
		BMR:            decimal2(m.BMR),
		TDEE:           decimal2(m.TDEE),
		CalorieBalance: decimal2(m.CalorieBalance),
	}
}

// decimal2 keeps an already rounded metric at two places for display.
func decimal2(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).RoundBank(2)
}
