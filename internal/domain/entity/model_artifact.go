package entity

// FeatureColumn is one entry of the classifier's input schema.
type FeatureColumn struct {
	Position int    `gorm:"primaryKey;autoIncrement:false" json:"position"`
	Name     string `gorm:"type:varchar(128);uniqueIndex;not null" json:"name"`
}

func (FeatureColumn) TableName() string {
	return "feature_columns"
}

// DietLabel maps a class index produced by the classifier to its diet plan.
type DietLabel struct {
	ClassIndex int    `gorm:"primaryKey;autoIncrement:false" json:"class_index"`
	Label      string `gorm:"type:varchar(128);not null" json:"label"`
}

func (DietLabel) TableName() string {
	return "diet_labels"
}
