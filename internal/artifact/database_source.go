package artifact

import (
	"context"
	"fmt"

	"diet-recommender/internal/domain/entity"
	"diet-recommender/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// DatabaseSource reads artifacts stored by Import.
type DatabaseSource struct {
	db           *gorm.DB
	log          *logrus.Logger
	artifactRepo repository.ArtifactRepository
}

func NewDatabaseSource(db *gorm.DB, log *logrus.Logger, artifactRepo repository.ArtifactRepository) *DatabaseSource {
	return &DatabaseSource{
		db:           db,
		log:          log,
		artifactRepo: artifactRepo,
	}
}

func (s *DatabaseSource) Load(ctx context.Context) (*Artifacts, error) {
	db := s.db.WithContext(ctx)

	columns, err := s.artifactRepo.FindColumns(db)
	if err != nil {
		s.log.Warnf("Failed to find feature columns: %+v", err)
		return nil, err
	}
	labels, err := s.artifactRepo.FindLabels(db)
	if err != nil {
		s.log.Warnf("Failed to find diet labels: %+v", err)
		return nil, err
	}

	a := &Artifacts{
		Columns: make([]string, len(columns)),
		Labels:  make([]string, len(labels)),
	}
	// Positions and class indices must be dense from zero; a gap would shift
	// every later column or label.
	for i, col := range columns {
		if col.Position != i {
			return nil, fmt.Errorf("%w: feature column positions are not contiguous at %d", entity.ErrConfiguration, i)
		}
		a.Columns[i] = col.Name
	}
	for i, label := range labels {
		if label.ClassIndex != i {
			return nil, fmt.Errorf("%w: diet label indices are not contiguous at %d", entity.ErrConfiguration, i)
		}
		a.Labels[i] = label.Label
	}

	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

// Import replaces the stored artifacts with a in one transaction, creating the
// tables when needed.
func Import(ctx context.Context, db *gorm.DB, log *logrus.Logger, artifactRepo repository.ArtifactRepository, a *Artifacts) error {
	if err := a.Validate(); err != nil {
		return err
	}

	if err := db.WithContext(ctx).AutoMigrate(&entity.FeatureColumn{}, &entity.DietLabel{}); err != nil {
		return fmt.Errorf("migrate artifact tables: %w", err)
	}

	tx := db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := artifactRepo.ReplaceColumns(tx, a.FeatureColumns()); err != nil {
		log.Warnf("Failed to store feature columns: %+v", err)
		return err
	}
	if err := artifactRepo.ReplaceLabels(tx, a.DietLabels()); err != nil {
		log.Warnf("Failed to store diet labels: %+v", err)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		log.Warnf("Failed to commit artifact import: %+v", err)
		return err
	}

	log.Infof("Imported %d feature columns and %d diet labels", len(a.Columns), len(a.Labels))
	return nil
}
