package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"sgac_app_go/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/clause"
)

const professorPayload = `{
	"name": "Ana",
	"firstSurname": "Pérez",
	"secondSurname": "García",
	"careerYearsExperience": 12,
	"monthsExperience": 4,
	"teachingCategory": "TITULAR",
	"scientificDegree": "DOCTOR",
	"relatedSpecialtyDoctor": true,
	"emails": [{"label": "trabajo", "email": "ana@uni.edu"}, {"label": "personal", "email": "ana@mail.com"}],
	"phones": [{"label": "oficina", "number": "+53 7 555 0101"}]
}`

func TestProfessorCRUD(t *testing.T) {
	setupTestDB(t)
	e := setupServer(t, testConfig())

	rec := doJSON(e, http.MethodPost, "/professors", professorPayload)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode(t, rec)
	path := fmt.Sprintf("/professors/%v", created["id"])

	t.Run("ContactsRoundTrip", func(t *testing.T) {
		body := decode(t, doJSON(e, http.MethodGet, path, ""))
		emails := body["emails"].([]interface{})
		require.Len(t, emails, 2)
		assert.Equal(t, map[string]interface{}{"label": "personal", "email": "ana@mail.com"}, emails[1])
		phones := body["phones"].([]interface{})
		require.Len(t, phones, 1)
		assert.Equal(t, "+53 7 555 0101", phones[0].(map[string]interface{})["number"])
		assert.Equal(t, true, body["relatedSpecialtyDoctor"])
	})

	t.Run("InvalidEmailPath", func(t *testing.T) {
		rec := doJSON(e, http.MethodPatch, path,
			`{"emails": [{"label": "trabajo", "email": "ana@uni.edu"}, {"label": "otro", "email": "not-an-email"}]}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, []interface{}{"Enter a valid email address."}, decode(t, rec)["emails[1].email"])
	})

	t.Run("ContactShape", func(t *testing.T) {
		rec := doJSON(e, http.MethodPatch, path, `{"emails": "ana@uni.edu", "phones": [{"label": "casa"}]}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, []interface{}{"Expected a list of items."}, body["emails"])
		assert.Equal(t, []interface{}{"This field is required."}, body["phones[0].number"])
	})

	t.Run("PatchKeepsContacts", func(t *testing.T) {
		rec := doJSON(e, http.MethodPatch, path, `{"monthsExperience": 6}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		body := decode(t, rec)
		assert.Equal(t, float64(6), body["monthsExperience"])
		assert.Len(t, body["emails"], 2)
	})

	t.Run("NegativeExperience", func(t *testing.T) {
		rec := doJSON(e, http.MethodPatch, path, `{"careerYearsExperience": -1}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decode(t, rec), "careerYearsExperience")
	})

	t.Run("MissingFields", func(t *testing.T) {
		rec := doJSON(e, http.MethodPost, "/professors", `{"name": "Luis"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decode(t, rec)
		for _, field := range []string{"firstSurname", "secondSurname", "teachingCategory", "scientificDegree", "emails", "phones"} {
			assert.Contains(t, body, field)
		}
	})
}

func TestProfessorDeleteCascades(t *testing.T) {
	testDB := setupTestDB(t)
	e := setupServer(t, testConfig())

	professor := createProfessor(t, testDB, "Ana")
	keeper := createProfessor(t, testDB, "Luis")
	career := createCareer(t, testDB, "Medicina")
	subject := createSubject(t, testDB, createDiscipline(t, testDB, career, "MED-1"), "AN1")
	publication := createPublication(t, testDB, "Ecografía")
	indicator := createIndicator(t, testDB, models.IndicatorGeneral)
	event := &models.Event{Year: 2023, Title: "Congreso", ShortTitle: "CONG", Classification: models.EventClassificationNational}
	require.NoError(t, testDB.Create(event).Error)

	rows := []interface{}{
		&models.ProfessorSubject{SubjectID: subject.ID, ProfessorID: professor.ID},
		&models.ProfessorSubject{SubjectID: subject.ID, ProfessorID: keeper.ID},
		&models.ProfessorPublication{PublicationID: publication.ID, ProfessorID: professor.ID, Role: models.AuthorRolePrincipal},
		&models.ProfessorEvent{EventID: event.ID, ProfessorID: professor.ID},
		&models.Award{ProfessorID: professor.ID, Year: 2022, Description: "Premio", Classification: models.AwardRector},
		&models.Evaluation{ProfessorID: professor.ID, IndicatorID: indicator.ID, Date: "2024-01-15", Grade: models.GradeGood},
	}
	for _, row := range rows {
		require.NoError(t, testDB.Omit(clause.Associations).Create(row).Error)
	}

	rec := doJSON(e, http.MethodDelete, fmt.Sprintf("/professors/%d", professor.ID), "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	assert.Equal(t, int64(1), count(t, testDB, &models.ProfessorSubject{}))
	assert.Equal(t, int64(0), count(t, testDB, &models.ProfessorPublication{}))
	assert.Equal(t, int64(0), count(t, testDB, &models.ProfessorEvent{}))
	assert.Equal(t, int64(0), count(t, testDB, &models.Award{}))
	assert.Equal(t, int64(0), count(t, testDB, &models.Evaluation{}))

	// The linked rows on the other side survive
	assert.Equal(t, int64(1), count(t, testDB, &models.Subject{}))
	assert.Equal(t, int64(1), count(t, testDB, &models.Publication{}))
	assert.Equal(t, int64(1), count(t, testDB, &models.Event{}))
	assert.Equal(t, int64(1), count(t, testDB, &models.EvaluationIndicator{}))
}
