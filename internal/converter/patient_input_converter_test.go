package converter

import (
	"testing"

	"diet-recommender/internal/delivery/dto"
	"diet-recommender/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestPatientRequestToInput_ExerciseHours(t *testing.T) {
	zero := 0
	req := &dto.PatientRequest{WeeklyExerciseHours: &zero}

	assert.Equal(t, 0, PatientRequestToInput(req).WeeklyExerciseHours)
	assert.Nil(t, PatientRequestToInput(nil))
}

func TestPatientRequestToInput_MissingExerciseHoursFailsValidation(t *testing.T) {
	req := &dto.PatientRequest{
		Age: 30, Gender: "Male", HeightCM: 170, WeightKG: 70, DailyCalories: 2200,
		PhysicalActivity: "Sedentary", DiseaseType: "None", Severity: "Mild",
		Cholesterol: 190, BloodPressure: 120, Glucose: 100,
		DietaryRestriction: "None", Allergy: "None", PreferredCuisine: "Indian", Adherence: "Low",
	}

	err := PatientRequestToInput(req).Validate()

	assert.ErrorIs(t, err, entity.ErrValidation)
	assert.ErrorContains(t, err, "weekly_exercise_hours")
}
