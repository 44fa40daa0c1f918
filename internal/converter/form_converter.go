package converter

import (
	"diet-recommender/internal/delivery/dto"
	"diet-recommender/internal/domain/entity"
)

const (
	sectionBody      = "Personal & Body Metrics"
	sectionHealth    = "Health & Lifestyle"
	sectionDietary   = "Dietary Preferences"
	fieldTypeInteger = "integer"
	fieldTypeChoice  = "choice"
)

func intField(name, label, section string, r entity.IntRange, def int) dto.FormField {
	lo, hi := r.Min, r.Max
	return dto.FormField{
		Name:    name,
		Label:   label,
		Section: section,
		Type:    fieldTypeInteger,
		Min:     &lo,
		Max:     &hi,
		Default: def,
	}
}

func choiceField(name, label, section string, options []string) dto.FormField {
	return dto.FormField{
		Name:    name,
		Label:   label,
		Section: section,
		Type:    fieldTypeChoice,
		Options: append([]string(nil), options...),
		Default: options[0],
	}
}

// PatientForm describes the input form with its bounds and default values
func PatientForm() *dto.FormResponse {
	return &dto.FormResponse{
		Title:    "Personalized Diet Recommendation System",
		Subtitle: "Enter patient details to receive a personalized diet plan",
		Fields: []dto.FormField{
			intField("age", "Age (years)", sectionBody, entity.AgeRange, 30),
			choiceField("gender", "Gender", sectionBody, entity.Genders),
			intField("height_cm", "Height (cm)", sectionBody, entity.HeightRange, 170),
			intField("weight_kg", "Weight (kg)", sectionBody, entity.WeightRange, 70),
			intField("daily_calories", "Daily Caloric Intake (kcal)", sectionBody, entity.DailyCaloriesRange, 2200),
			intField("weekly_exercise_hours", "Weekly Exercise Hours", sectionBody, entity.ExerciseHoursRange, 4),
			choiceField("physical_activity", "Physical Activity Level", sectionHealth, entity.ActivityLevels),
			choiceField("disease_type", "Primary Disease", sectionHealth, entity.DiseaseTypes),
			choiceField("severity", "Disease Severity", sectionHealth, entity.Severities),
			intField("cholesterol", "Cholesterol (mg/dL)", sectionHealth, entity.CholesterolRange, 190),
			intField("blood_pressure", "Blood Pressure (mmHg)", sectionHealth, entity.BloodPressureRange, 120),
			intField("glucose", "Glucose (mg/dL)", sectionHealth, entity.GlucoseRange, 100),
			choiceField("dietary_restriction", "Dietary Restriction", sectionDietary, entity.DietaryRestrictions),
			choiceField("allergy", "Allergy", sectionDietary, entity.Allergies),
			choiceField("preferred_cuisine", "Preferred Cuisine", sectionDietary, entity.Cuisines),
			choiceField("adherence", "Adherence to Diet Plan", sectionDietary, entity.AdherenceLevels),
		},
	}
}
