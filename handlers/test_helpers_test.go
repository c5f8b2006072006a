package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"sgac_app_go/config"
	"sgac_app_go/db"
	"sgac_app_go/models"
	"sgac_app_go/services"
	"sgac_app_go/validation"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func testConfig() *config.Config {
	return &config.Config{
		Environment: "test",
		PageSize:    10,
		MaxPageSize: 100,
		MaxUploadMB: 1,
	}
}

func setupTestDB(t *testing.T) *gorm.DB {
	// Use unique shared memory name to isolate tests while allowing shared cache for async audit writes
	dbName := "mem_" + uuid.New().String()
	dsn := db.SQLiteDSN("file:" + dbName + "?mode=memory&cache=shared&_busy_timeout=5000")
	testDB, err := gorm.Open(sqlite.Open(dsn), db.GormConfig("test"))
	require.NoError(t, err)

	services.Storage = services.NewLocalStore(t.TempDir())

	err = testDB.AutoMigrate(models.All()...)
	require.NoError(t, err)

	// Set global DB
	db.DB = testDB

	services.InitAuth(
		services.NewTokenIssuer("handlers-test-secret-0123456789abcdef", time.Minute, time.Hour),
		services.NewDBRevocationStore(testDB),
	)
	services.Changes = nil

	return testDB
}

// setupServer builds an echo instance with the full route table
func setupServer(t *testing.T, cfg *config.Config) *echo.Echo {
	t.Helper()
	e := echo.New()
	e.HTTPErrorHandler = HTTPErrorHandler
	e.Validator = validation.NewValidator()
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("config", cfg)
			return next(c)
		}
	})
	RegisterRoutes(e, cfg)
	return e
}

func setupEcho(method, path string, body io.Reader) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validation.NewValidator()
	req := httptest.NewRequest(method, path, body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Add config to context
	c.Set("config", testConfig())

	return e, c, rec
}

// doJSON sends body as JSON through the router
func doJSON(e *echo.Echo, method, path, body string, headers ...string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func decodeList(t *testing.T, rec *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func assertNotFound(t *testing.T, rec *httptest.ResponseRecorder) {
	t.Helper()
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"detail":"Not found."}`, rec.Body.String())
}

// Fixtures

func createCareer(t *testing.T, gdb *gorm.DB, name string) *models.Career {
	career := &models.Career{
		Name:                     name,
		Modality:                 models.CareerModalityDaytime,
		Site:                     "Sede Central",
		ExternalEvaluationYear:   "2022",
		EvaluatedCourse:          "2021-2022",
		ExternalEvaluationNumber: 2,
	}
	require.NoError(t, gdb.Create(career).Error)
	return career
}

func createDiscipline(t *testing.T, gdb *gorm.DB, career *models.Career, code string) *models.Discipline {
	discipline := &models.Discipline{CareerID: career.ID, Code: code, Name: "Discipline " + code}
	require.NoError(t, gdb.Omit("Career").Create(discipline).Error)
	return discipline
}

func createSubject(t *testing.T, gdb *gorm.DB, discipline *models.Discipline, code string) *models.Subject {
	subject := &models.Subject{
		DisciplineID: discipline.ID,
		Name:         "Subject " + code,
		Code:         code,
		Year:         1,
		Term:         1,
		Modality:     models.SubjectModalityDaytime,
		Curriculum:   models.CurriculumBase,
	}
	require.NoError(t, gdb.Omit("Discipline").Create(subject).Error)
	return subject
}

func createProfessor(t *testing.T, gdb *gorm.DB, name string) *models.Professor {
	professor := &models.Professor{
		Name:                  name,
		FirstSurname:          "Pérez",
		SecondSurname:         "García",
		CareerYearsExperience: 10,
		MonthsExperience:      3,
		TeachingCategory:      models.TeachingCategories[0],
		ScientificDegree:      models.ScientificDegrees[0],
		Emails:                []models.EmailContact{{Label: "work", Email: strings.ToLower(name) + "@uni.edu"}},
		Phones:                []models.PhoneContact{{Label: "office", Number: "555-0101"}},
	}
	require.NoError(t, gdb.Create(professor).Error)
	return professor
}

func createPublication(t *testing.T, gdb *gorm.DB, title string) *models.Publication {
	publication := &models.Publication{
		Title:                 title,
		Publisher:             "Editorial Universitaria",
		Type:                  models.PublicationTypeArticle,
		IsbnIssn:              "1234-5678",
		BookVerification:      "ok",
		JournalDatabase:       "Scopus",
		ReferenceVerification: "ok",
	}
	require.NoError(t, gdb.Create(publication).Error)
	return publication
}

func createIndicator(t *testing.T, gdb *gorm.DB, name string) *models.EvaluationIndicator {
	indicator := &models.EvaluationIndicator{Name: name}
	require.NoError(t, gdb.Create(indicator).Error)
	return indicator
}

func count(t *testing.T, gdb *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, gdb.Model(model).Count(&n).Error)
	return n
}

func trimBody(s string) string {
	return strings.TrimSpace(s)
}
