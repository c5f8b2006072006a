package dto

import (
	"encoding/json"
	"strings"
	"testing"

	"sgac_app_go/models"
	"sgac_app_go/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, body string, v interface{}) {
	t.Helper()
	require.NoError(t, Decode([]byte(body), v))
}

func TestProfessorRequestContacts(t *testing.T) {
	var req ProfessorRequest
	decode(t, `{
		"name": "Ana", "firstSurname": "Pérez", "secondSurname": "Gómez",
		"teachingCategory": "TITULAR", "scientificDegree": "DOCTOR",
		"emails": [{"label": "work", "email": "a@b.com"}, {"label": "home", "email": "bad"}],
		"phones": [{"label": "office"}]
	}`, &req)

	errs := req.Validate(false)
	assert.Equal(t, []string{validation.MsgInvalidEmail}, errs["emails[1].email"])
	assert.Equal(t, []string{validation.MsgRequired}, errs["phones[0].number"])
	assert.NotContains(t, errs, "emails[0].email")
	assert.NotContains(t, errs, "name")
}

func TestProfessorRequestContactShape(t *testing.T) {
	var req ProfessorRequest
	decode(t, `{"emails": "a@b.com", "phones": [{"label": "casa"}]}`, &req)

	errs := req.Validate(true)
	assert.Equal(t, []string{validation.MsgExpectedList}, errs["emails"])
	assert.Equal(t, []string{validation.MsgRequired}, errs["phones[0].number"])
	assert.Len(t, errs, 2)

	var items ProfessorRequest
	decode(t, `{"phones": [1]}`, &items)
	assert.Equal(t, []string{validation.MsgExpectedObject}, items.Validate(true)["phones"])
}

func TestRequestNullFields(t *testing.T) {
	var career CareerRequest
	decode(t, `{"name": null, "site": "Sede central"}`, &career)
	errs := career.Validate(true)
	assert.Equal(t, validation.Errors{"name": {validation.MsgNull}}, errs)

	decode(t, `{"name": null}`, &career)
	assert.Equal(t, []string{validation.MsgNull}, career.Validate(false)["name"])

	var subject SubjectRequest
	decode(t, `{"year": null, "professorIds": null}`, &subject)
	errs = subject.Validate(true)
	assert.Equal(t, []string{validation.MsgNull}, errs["year"])
	assert.Equal(t, []string{validation.MsgNull}, errs["professorIds"])

	var professor ProfessorRequest
	decode(t, `{"relatedSpecialtyDoctor": null, "emails": null}`, &professor)
	errs = professor.Validate(true)
	assert.NotContains(t, errs, "relatedSpecialtyDoctor")
	assert.Equal(t, []string{validation.MsgNull}, errs["emails"])
}

func TestProfessorRequestClearsSpecialtyDoctor(t *testing.T) {
	yes := true
	p := models.Professor{RelatedSpecialtyDoctor: &yes}

	var keep ProfessorRequest
	decode(t, `{"name": "Ana"}`, &keep)
	keep.Apply(&p)
	require.NotNil(t, p.RelatedSpecialtyDoctor)

	var clear ProfessorRequest
	decode(t, `{"relatedSpecialtyDoctor": null}`, &clear)
	require.False(t, clear.Validate(true).HasErrors())
	clear.Apply(&p)
	assert.Nil(t, p.RelatedSpecialtyDoctor)
}

func TestDecodeRejectsNonObject(t *testing.T) {
	var req CareerRequest
	err := Decode([]byte(`[1, 2]`), &req)

	var typeErr *json.UnmarshalTypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "array", typeErr.Value)
	assert.Empty(t, typeErr.Field)
}

func TestProfessorRequestApply(t *testing.T) {
	var req ProfessorRequest
	decode(t, `{"emails": [{"label": "work", "email": "a@b.com"}]}`, &req)
	require.False(t, req.Validate(true).HasErrors())

	p := models.Professor{Name: "Ana", Phones: []models.PhoneContact{{Label: "office", Number: "555"}}}
	req.Apply(&p)
	assert.Equal(t, "Ana", p.Name)
	assert.Equal(t, []models.EmailContact{{Label: "work", Email: "a@b.com"}}, p.Emails)
	assert.Len(t, p.Phones, 1)
}

func TestPublicationRequestLevel(t *testing.T) {
	base := `"title": "T", "publisher": "P", "type": "articulo", "isbnIssn": "1234",
		"bookVerification": "v", "journalDatabase": "Scopus", "referenceVerification": "r"`

	var ok PublicationRequest
	decode(t, `{`+base+`, "level": 3}`, &ok)
	assert.False(t, ok.Validate(false).HasErrors())

	var bad PublicationRequest
	decode(t, `{`+base+`, "level": 5}`, &bad)
	assert.Equal(t, []string{"Ensure this value is between 1 and 4."}, bad.Validate(false)["level"])

	var zero PublicationRequest
	decode(t, `{"level": 0}`, &zero)
	assert.Equal(t, []string{validation.RangeMessage(models.MinPublicationLevel, models.MaxPublicationLevel)}, zero.Validate(true)["level"])
}

func TestSubjectRequestBounds(t *testing.T) {
	var req SubjectRequest
	decode(t, `{"year": 7, "term": 0, "code": "`+strings.Repeat("x", 101)+`"}`, &req)

	errs := req.Validate(true)
	assert.Equal(t, []string{validation.RangeMessage(models.MinAcademicYear, models.MaxAcademicYear)}, errs["year"])
	assert.Equal(t, []string{validation.RangeMessage(models.MinTerm, models.MaxTerm)}, errs["term"])
	assert.Equal(t, []string{validation.MaxLengthMessage(100)}, errs["code"])
	assert.NotContains(t, errs, "name")
}

func TestPublicationRequestNullableFields(t *testing.T) {
	level := 2
	pub := models.Publication{Level: &level}

	var absent PublicationRequest
	decode(t, `{"title": "New"}`, &absent)
	absent.Apply(&pub)
	assert.Equal(t, 2, *pub.Level)
	assert.Equal(t, "New", pub.Title)

	var null PublicationRequest
	decode(t, `{"level": null}`, &null)
	assert.True(t, null.Level.Set)
	null.Apply(&pub)
	assert.Nil(t, pub.Level)
}

func TestCareerRequestRequiredAndChoices(t *testing.T) {
	var req CareerRequest
	decode(t, `{"name": "<b></b>", "modality": "NOCTURNO"}`, &req)

	errs := req.Validate(false)
	assert.Equal(t, []string{validation.MsgBlank}, errs["name"])
	assert.Equal(t, []string{validation.InvalidChoiceMessage("NOCTURNO", models.CareerModalities)}, errs["modality"])
	assert.Equal(t, []string{validation.MsgRequired}, errs["externalEvaluationNumber"])

	var patch CareerRequest
	decode(t, `{"site": "Sede central"}`, &patch)
	assert.False(t, patch.Validate(true).HasErrors())
}

func TestEvaluationRequestDate(t *testing.T) {
	var req EvaluationRequest
	decode(t, `{"indicatorId": 1, "date": "2024-13-01", "grade": "BIEN"}`, &req)
	assert.Equal(t, []string{validation.MsgInvalidDate}, req.Validate(false)["date"])
}

func TestSubjectResponseNesting(t *testing.T) {
	subject := models.Subject{
		ID:   7,
		Name: "Algebra",
		Discipline: models.Discipline{
			ID:     3,
			Career: models.Career{ID: 1, Name: "Informática"},
		},
	}

	resp := NewSubjectResponse(&subject, nil)
	assert.Equal(t, uint(3), resp.Discipline.ID)
	assert.Equal(t, "Informática", resp.Discipline.Career.Name)
	assert.NotNil(t, resp.Professors)
}
