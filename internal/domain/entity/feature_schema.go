package entity

// Numeric feature columns as named in the training data.
const (
	ColumnAge                 = "Age"
	ColumnHeight              = "Height_cm"
	ColumnWeight              = "Weight_kg"
	ColumnBMI                 = "BMI"
	ColumnBMR                 = "BMR"
	ColumnTDEE                = "TDEE"
	ColumnCalorieBalance      = "Calorie_Balance"
	ColumnDailyCaloricIntake  = "Daily_Caloric_Intake"
	ColumnCholesterol         = "Cholesterol_mg/dL"
	ColumnBloodPressure       = "Blood_Pressure_mmHg"
	ColumnGlucose             = "Glucose_mg/dL"
	ColumnWeeklyExerciseHours = "Weekly_Exercise_Hours"
)

// NumericColumn binds a schema column to the raw or derived value it carries.
type NumericColumn struct {
	Name  string
	Value func(p *PatientInput, m *DerivedMetrics) float64
}

var NumericColumns = []NumericColumn{
	{ColumnAge, func(p *PatientInput, _ *DerivedMetrics) float64 { return float64(p.Age) }},
	{ColumnHeight, func(p *PatientInput, _ *DerivedMetrics) float64 { return float64(p.HeightCM) }},
	{ColumnWeight, func(p *PatientInput, _ *DerivedMetrics) float64 { return float64(p.WeightKG) }},
	{ColumnBMI, func(_ *PatientInput, m *DerivedMetrics) float64 { return m.BMI }},
	{ColumnBMR, func(_ *PatientInput, m *DerivedMetrics) float64 { return m.BMR }},
	{ColumnTDEE, func(_ *PatientInput, m *DerivedMetrics) float64 { return m.TDEE }},
	{ColumnCalorieBalance, func(_ *PatientInput, m *DerivedMetrics) float64 { return m.CalorieBalance }},
	{ColumnDailyCaloricIntake, func(p *PatientInput, _ *DerivedMetrics) float64 { return float64(p.DailyCalories) }},
	{ColumnCholesterol, func(p *PatientInput, _ *DerivedMetrics) float64 { return float64(p.Cholesterol) }},
	{ColumnBloodPressure, func(p *PatientInput, _ *DerivedMetrics) float64 { return float64(p.BloodPressure) }},
	{ColumnGlucose, func(p *PatientInput, _ *DerivedMetrics) float64 { return float64(p.Glucose) }},
	{ColumnWeeklyExerciseHours, func(p *PatientInput, _ *DerivedMetrics) float64 { return float64(p.WeeklyExerciseHours) }},
}

// CategoricalField describes one one-hot encoded input. Indicator columns are
// named Prefix + value.
type CategoricalField struct {
	Name   string
	Prefix string
	Values []string
	Value  func(p *PatientInput) string
}

// IndicatorColumn returns the schema column for value.
func (f CategoricalField) IndicatorColumn(value string) string {
	return f.Prefix + value
}

var CategoricalFields = []CategoricalField{
	{"gender", "Gender_", Genders, func(p *PatientInput) string { return p.Gender }},
	{"physical_activity", "Physical_Activity_Level_", ActivityLevels, func(p *PatientInput) string { return p.PhysicalActivity }},
	{"disease_type", "Disease_Type_", DiseaseTypes, func(p *PatientInput) string { return p.DiseaseType }},
	{"severity", "Severity_", Severities, func(p *PatientInput) string { return p.Severity }},
	{"dietary_restriction", "Dietary_Restrictions_", DietaryRestrictions, func(p *PatientInput) string { return p.DietaryRestriction }},
	{"preferred_cuisine", "Preferred_Cuisine_", Cuisines, func(p *PatientInput) string { return p.PreferredCuisine }},
	{"allergy", "Allergies_", Allergies, func(p *PatientInput) string { return p.Allergy }},
	{"adherence", "Adherence_to_Diet_Plan_", AdherenceLevels, func(p *PatientInput) string { return p.Adherence }},
}
