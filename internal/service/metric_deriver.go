package service

import (
	"fmt"
	"strconv"

	"diet-recommender/internal/domain/entity"
)

// activityFactors maps each physical activity level to its TDEE multiplier.
// It is also the list of levels the deriver accepts.
var activityFactors = map[string]float64{
	entity.ActivitySedentary:        1.2,
	entity.ActivityLightlyActive:    1.375,
	entity.ActivityModeratelyActive: 1.55,
	entity.ActivityVeryActive:       1.725,
}

// Mifflin-St Jeor sex offsets
const (
	bmrOffsetMale   = 5.0
	bmrOffsetFemale = -161.0
)

// ActivityFactor returns the TDEE multiplier for level.
func ActivityFactor(level string) (float64, error) {
	factor, ok := activityFactors[level]
	if !ok {
		return 0, fmt.Errorf("%w: unknown physical activity level %q", entity.ErrConfiguration, level)
	}
	return factor, nil
}

// DeriveMetrics computes BMI, BMR (Mifflin-St Jeor), TDEE and calorie balance.
// Each step rounds to two decimals before the next one uses it.
func DeriveMetrics(in *entity.PatientInput) (*entity.DerivedMetrics, error) {
	if in.HeightCM <= 0 || in.WeightKG <= 0 {
		return nil, fmt.Errorf("%w: height and weight must be positive", entity.ErrValidation)
	}

	factor, err := ActivityFactor(in.PhysicalActivity)
	if err != nil {
		return nil, err
	}

	heightM := float64(in.HeightCM) / 100
	bmi := Round2(float64(in.WeightKG) / (heightM * heightM))

	offset := bmrOffsetFemale
	if in.Gender == entity.GenderMale {
		offset = bmrOffsetMale
	}
	bmr := Round2(10*float64(in.WeightKG) + 6.25*float64(in.HeightCM) - 5*float64(in.Age) + offset)

	tdee := Round2(bmr * factor)

	return &entity.DerivedMetrics{
		BMI:            bmi,
		BMR:            bmr,
		TDEE:           tdee,
		CalorieBalance: Round2(float64(in.DailyCalories) - tdee),
	}, nil
}

// Round2 rounds v to two decimals, half to even on the exact binary value.
// 2555.5625 becomes 2555.56 and 2.675 (stored as 2.67499...) becomes 2.67.
func Round2(v float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	if err != nil {
		return v
	}
	return r
}
