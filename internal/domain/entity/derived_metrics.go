package entity

// DerivedMetrics are computed from a PatientInput. Every value is rounded to
// two decimals.
type DerivedMetrics struct {
	BMI            float64
	BMR            float64
	TDEE           float64
	CalorieBalance float64
}
