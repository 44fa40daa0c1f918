package entity

import (
	"fmt"
	"slices"
)

// PatientInput holds one form submission. It is built per request and never
// mutated after it has been read.
type PatientInput struct {
	Age                 int
	Gender              string
	HeightCM            int
	WeightKG            int
	DailyCalories       int
	WeeklyExerciseHours int
	PhysicalActivity    string
	DiseaseType         string
	Severity            string
	Cholesterol         int
	BloodPressure       int
	Glucose             int
	DietaryRestriction  string
	Allergy             string
	PreferredCuisine    string
	Adherence           string
}

// Gender values
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
)

// Physical activity levels
const (
	ActivitySedentary        = "Sedentary"
	ActivityLightlyActive    = "Lightly Active"
	ActivityModeratelyActive = "Moderately Active"
	ActivityVeryActive       = "Very Active"
)

var (
	Genders             = []string{GenderMale, GenderFemale}
	ActivityLevels      = []string{ActivitySedentary, ActivityLightlyActive, ActivityModeratelyActive, ActivityVeryActive}
	DiseaseTypes        = []string{"None", "Diabetes", "Hypertension", "Cardiac", "Obesity"}
	Severities          = []string{"Mild", "Moderate", "Severe"}
	DietaryRestrictions = []string{"None", "Vegetarian", "Vegan", "Gluten-Free", "Lactose-Free"}
	Allergies           = []string{"None", "Nuts", "Dairy", "Seafood", "Gluten"}
	Cuisines            = []string{"Indian", "Mediterranean", "Continental", "Asian"}
	AdherenceLevels     = []string{"Low", "Medium", "High"}
)

// IntRange is an inclusive bound on an integer field.
type IntRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

func (r IntRange) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

var (
	AgeRange           = IntRange{Min: 18, Max: 80}
	HeightRange        = IntRange{Min: 120, Max: 220}
	WeightRange        = IntRange{Min: 30, Max: 200}
	DailyCaloriesRange = IntRange{Min: 1200, Max: 4500}
	ExerciseHoursRange = IntRange{Min: 0, Max: 20}
	CholesterolRange   = IntRange{Min: 100, Max: 350}
	BloodPressureRange = IntRange{Min: 80, Max: 200}
	GlucoseRange       = IntRange{Min: 70, Max: 300}
)

// Validate re-checks the domain of every field. Requests are validated at the
// HTTP boundary already; this guards callers that build inputs directly.
func (p *PatientInput) Validate() error {
	ranges := []struct {
		name  string
		value int
		r     IntRange
	}{
		{"age", p.Age, AgeRange},
		{"height_cm", p.HeightCM, HeightRange},
		{"weight_kg", p.WeightKG, WeightRange},
		{"daily_calories", p.DailyCalories, DailyCaloriesRange},
		{"weekly_exercise_hours", p.WeeklyExerciseHours, ExerciseHoursRange},
		{"cholesterol", p.Cholesterol, CholesterolRange},
		{"blood_pressure", p.BloodPressure, BloodPressureRange},
		{"glucose", p.Glucose, GlucoseRange},
	}
	for _, f := range ranges {
		if !f.r.Contains(f.value) {
			return fmt.Errorf("%w: %s=%d outside [%d, %d]", ErrValidation, f.name, f.value, f.r.Min, f.r.Max)
		}
	}

	for _, field := range CategoricalFields {
		value := field.Value(p)
		if !slices.Contains(field.Values, value) {
			return fmt.Errorf("%w: %s=%q is not one of %v", ErrValidation, field.Name, value, field.Values)
		}
	}

	return nil
}
