package repository

import (
	"diet-recommender/internal/domain/entity"

	"gorm.io/gorm"
)

type ArtifactRepository interface {
	FindColumns(db *gorm.DB) ([]entity.FeatureColumn, error)
	FindLabels(db *gorm.DB) ([]entity.DietLabel, error)
	ReplaceColumns(db *gorm.DB, columns []entity.FeatureColumn) error
	ReplaceLabels(db *gorm.DB, labels []entity.DietLabel) error
}
