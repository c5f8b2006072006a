package services

import (
	"testing"

	"sgac_app_go/db"
	"sgac_app_go/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB opens an isolated in-memory database with foreign keys enforced.
// The cache is shared so background audit writes see the same schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := db.SQLiteDSN("file:svc_" + uuid.New().String() + "?mode=memory&cache=shared&_busy_timeout=5000")
	testDB, err := gorm.Open(sqlite.Open(dsn), db.GormConfig("test"))
	require.NoError(t, err)
	require.NoError(t, testDB.AutoMigrate(models.All()...))

	t.Cleanup(func() {
		if sqlDB, err := testDB.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return testDB
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func uintPtr(u uint) *uint    { return &u }

func mustCareer(t *testing.T, gdb *gorm.DB, name string) *models.Career {
	t.Helper()
	career := &models.Career{
		Name:                     name,
		Modality:                 models.CareerModalityDaytime,
		Site:                     "Sede Central",
		ExternalEvaluationYear:   "2022",
		EvaluatedCourse:          "2021-2022",
		ExternalEvaluationNumber: 1,
	}
	require.NoError(t, gdb.Create(career).Error)
	return career
}

func mustProfessor(t *testing.T, gdb *gorm.DB, name string) *models.Professor {
	t.Helper()
	professor := &models.Professor{
		Name:             name,
		FirstSurname:     "Pérez",
		SecondSurname:    "García",
		TeachingCategory: models.TeachingCategoryAssistant,
		ScientificDegree: models.ScientificDegreeMaster,
		Emails:           []models.EmailContact{{Label: "work", Email: "x@uni.edu"}},
		Phones:           []models.PhoneContact{},
	}
	require.NoError(t, gdb.Create(professor).Error)
	return professor
}
