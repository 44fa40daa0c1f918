package artifact

import (
	"context"
	"path/filepath"
	"testing"

	"diet-recommender/internal/domain/entity"
	"diet-recommender/internal/infrastructure/database"
	"diet-recommender/internal/repository"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.NewSQLiteConnection(filepath.Join(t.TempDir(), "artifacts.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func TestImport_ThenLoad(t *testing.T) {
	db := newTestDB(t)
	log, _ := test.NewNullLogger()
	repo := repository.NewArtifactRepository()
	want := &Artifacts{
		Columns: []string{"Age", "BMI", "Gender_Female", "Gender_Male"},
		Labels:  []string{"Balanced", "Low_Carb", "Low_Sodium"},
	}

	require.NoError(t, Import(context.Background(), db, log, repo, want))
	got, err := NewDatabaseSource(db, log, repo).Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestImport_ReplacesPreviousArtifacts(t *testing.T) {
	db := newTestDB(t)
	log, _ := test.NewNullLogger()
	repo := repository.NewArtifactRepository()

	first := &Artifacts{Columns: []string{"Age", "BMI", "TDEE"}, Labels: []string{"A", "B"}}
	second := &Artifacts{Columns: []string{"BMI", "Age"}, Labels: []string{"Balanced"}}
	require.NoError(t, Import(context.Background(), db, log, repo, first))
	require.NoError(t, Import(context.Background(), db, log, repo, second))

	got, err := NewDatabaseSource(db, log, repo).Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, second, got)
}

func TestImport_RejectsInvalidArtifacts(t *testing.T) {
	db := newTestDB(t)
	log, _ := test.NewNullLogger()

	err := Import(context.Background(), db, log, repository.NewArtifactRepository(),
		&Artifacts{Columns: []string{"Age", " "}, Labels: []string{"Balanced"}})

	assert.ErrorIs(t, err, entity.ErrConfiguration)
}

func TestDatabaseSource_Load_Empty(t *testing.T) {
	db := newTestDB(t)
	log, _ := test.NewNullLogger()
	require.NoError(t, db.AutoMigrate(&entity.FeatureColumn{}, &entity.DietLabel{}))

	_, err := NewDatabaseSource(db, log, repository.NewArtifactRepository()).Load(context.Background())

	assert.ErrorIs(t, err, entity.ErrConfiguration)
}

func TestDatabaseSource_Load_PositionGap(t *testing.T) {
	db := newTestDB(t)
	log, _ := test.NewNullLogger()
	require.NoError(t, db.AutoMigrate(&entity.FeatureColumn{}, &entity.DietLabel{}))
	require.NoError(t, db.Create(&[]entity.FeatureColumn{{Position: 0, Name: "Age"}, {Position: 2, Name: "BMI"}}).Error)
	require.NoError(t, db.Create(&[]entity.DietLabel{{ClassIndex: 0, Label: "Balanced"}}).Error)

	_, err := NewDatabaseSource(db, log, repository.NewArtifactRepository()).Load(context.Background())

	assert.ErrorIs(t, err, entity.ErrConfiguration)
	assert.Contains(t, err.Error(), "positions")
}

func TestDatabaseSource_Load_NoTables(t *testing.T) {
	db := newTestDB(t)
	log, hook := test.NewNullLogger()

	_, err := NewDatabaseSource(db, log, repository.NewArtifactRepository()).Load(context.Background())

	assert.Error(t, err)
	assert.NotEmpty(t, hook.AllEntries())
}
