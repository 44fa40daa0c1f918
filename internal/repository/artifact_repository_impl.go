package repository

import (
	"diet-recommender/internal/domain/entity"
	domainRepo "diet-recommender/internal/domain/repository"

	"gorm.io/gorm"
)

type artifactRepository struct{}

func NewArtifactRepository() domainRepo.ArtifactRepository {
	return &artifactRepository{}
}

func (r *artifactRepository) FindColumns(db *gorm.DB) ([]entity.FeatureColumn, error) {
	var columns []entity.FeatureColumn
	err := db.Order("position").Find(&columns).Error
	if err != nil {
		return nil, err
	}
	return columns, nil
}

func (r *artifactRepository) FindLabels(db *gorm.DB) ([]entity.DietLabel, error) {
	var labels []entity.DietLabel
	err := db.Order("class_index").Find(&labels).Error
	if err != nil {
		return nil, err
	}
	return labels, nil
}

// ReplaceColumns deletes every stored column and inserts columns. Callers
// should pass a transaction.
func (r *artifactRepository) ReplaceColumns(db *gorm.DB, columns []entity.FeatureColumn) error {
	if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&entity.FeatureColumn{}).Error; err != nil {
		return err
	}
	if len(columns) == 0 {
		return nil
	}
	return db.Create(&columns).Error
}

func (r *artifactRepository) ReplaceLabels(db *gorm.DB, labels []entity.DietLabel) error {
	if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&entity.DietLabel{}).Error; err != nil {
		return err
	}
	if len(labels) == 0 {
		return nil
	}
	return db.Create(&labels).Error
}
