package dto

import (
	"diet-recommender/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// Request DTOs

// PatientRequest is the form submission. Every field is bounded to the range
// or the choices the form offers.
type PatientRequest struct {
	Age                 int    `json:"age" validate:"gte=18,lte=80"`
	Gender              string `json:"gender" validate:"required,oneof=Male Female"`
	HeightCM            int    `json:"height_cm" validate:"gte=120,lte=220"`
	WeightKG            int    `json:"weight_kg" validate:"gte=30,lte=200"`
	DailyCalories       int    `json:"daily_calories" validate:"gte=1200,lte=4500"`
	WeeklyExerciseHours *int   `json:"weekly_exercise_hours" validate:"required,gte=0,lte=20"`
	PhysicalActivity    string `json:"physical_activity" validate:"required,oneof=Sedentary 'Lightly Active' 'Moderately Active' 'Very Active'"`
	DiseaseType         string `json:"disease_type" validate:"required,oneof=None Diabetes Hypertension Cardiac Obesity"`
	Severity            string `json:"severity" validate:"required,oneof=Mild Moderate Severe"`
	Cholesterol         int    `json:"cholesterol" validate:"gte=100,lte=350"`
	BloodPressure       int    `json:"blood_pressure" validate:"gte=80,lte=200"`
	Glucose             int    `json:"glucose" validate:"gte=70,lte=300"`
	DietaryRestriction  string `json:"dietary_restriction" validate:"required,oneof=None Vegetarian Vegan Gluten-Free Lactose-Free"`
	Allergy             string `json:"allergy" validate:"required,oneof=None Nuts Dairy Seafood Gluten"`
	PreferredCuisine    string `json:"preferred_cuisine" validate:"required,oneof=Indian Mediterranean Continental Asian"`
	Adherence           string `json:"adherence" validate:"required,oneof=Low Medium High"`
}

// Response DTOs

type DerivedMetricsResponse struct {
	BMI            decimal.Decimal `json:"bmi"`
	BMR            decimal.Decimal `json:"bmr"`
	TDEE           decimal.Decimal `json:"tdee"`
	CalorieBalance decimal.Decimal `json:"calorie_balance"`
}

type RecommendationResponse struct {
	RequestID  string                 `json:"request_id,omitempty"`
	DietPlan   string                 `json:"diet_plan"`
	ClassIndex int                    `json:"class_index"`
	Metrics    DerivedMetricsResponse `json:"metrics"`
}

type FeatureVectorResponse struct {
	RequestID string                 `json:"request_id,omitempty"`
	Metrics   DerivedMetricsResponse `json:"metrics"`
	Features  *entity.FeatureVector  `json:"features"`
}

type UnmappedIndicatorResponse struct {
	Field  string `json:"field"`
	Value  string `json:"value"`
	Column string `json:"column"`
}

type ModelInfoResponse struct {
	ColumnCount        int                         `json:"column_count"`
	Columns            []string                    `json:"columns"`
	Labels             []string                    `json:"labels"`
	MissingNumeric     []string                    `json:"missing_numeric"`
	UnmappedIndicators []UnmappedIndicatorResponse `json:"unmapped_indicators"`
}
