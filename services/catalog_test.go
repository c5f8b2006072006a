package services

import (
	"fmt"
	"testing"

	"sgac_app_go/dto"
	"sgac_app_go/models"
	"sgac_app_go/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func countRows(t *testing.T, gdb *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, gdb.Model(model).Count(&n).Error)
	return n
}

func subjectRequest(professorIDs ...uint) *dto.SubjectRequest {
	req := &dto.SubjectRequest{
		Name:       strPtr("Anatomía"),
		Code:       strPtr("AN1"),
		Year:       intPtr(1),
		Term:       intPtr(1),
		Modality:   strPtr(models.SubjectModalityDaytime),
		Curriculum: strPtr(models.CurriculumBase),
	}
	if professorIDs != nil {
		req.ProfessorIDs = &professorIDs
	}
	return req
}

func TestCareerCascade(t *testing.T) {
	gdb := setupTestDB(t)
	career := mustCareer(t, gdb, "Medicina")
	kept := mustCareer(t, gdb, "Derecho")
	professor := mustProfessor(t, gdb, "Ana")

	discipline, err := CreateDiscipline(gdb, career, &dto.DisciplineRequest{Code: strPtr("MED-1"), Name: strPtr("Morfología")})
	require.NoError(t, err)
	_, err = CreateDiscipline(gdb, kept, &dto.DisciplineRequest{Code: strPtr("DER-1"), Name: strPtr("Civil")})
	require.NoError(t, err)

	_, err = CreateSubject(gdb, discipline, subjectRequest(professor.ID))
	require.NoError(t, err)

	require.NoError(t, DeleteCareer(gdb, career))

	assert.Equal(t, int64(1), countRows(t, gdb, &models.Discipline{}))
	assert.Equal(t, int64(0), countRows(t, gdb, &models.Subject{}))
	assert.Equal(t, int64(0), countRows(t, gdb, &models.ProfessorSubject{}))
	assert.Equal(t, int64(1), countRows(t, gdb, &models.Professor{}))
}

func TestForeignKeyViolationIsConflict(t *testing.T) {
	gdb := setupTestDB(t)

	_, err := CreateDiscipline(gdb, &models.Career{ID: 999}, &dto.DisciplineRequest{Code: strPtr("X"), Name: strPtr("Y")})
	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, int64(0), countRows(t, gdb, &models.Discipline{}))
}

func TestSubjectProfessors(t *testing.T) {
	gdb := setupTestDB(t)
	career := mustCareer(t, gdb, "Medicina")
	discipline, err := CreateDiscipline(gdb, career, &dto.DisciplineRequest{Code: strPtr("MED-1"), Name: strPtr("Morfología")})
	require.NoError(t, err)
	ana := mustProfessor(t, gdb, "Ana")
	luis := mustProfessor(t, gdb, "Luis")

	t.Run("Unknown professor writes nothing", func(t *testing.T) {
		_, err := CreateSubject(gdb, discipline, subjectRequest(ana.ID, 999))
		var errs validation.Errors
		require.ErrorAs(t, err, &errs)
		assert.Equal(t, []string{validation.InvalidPKMessage(999)}, errs["professorIds"])
		assert.Equal(t, int64(0), countRows(t, gdb, &models.Subject{}))
	})

	subject, err := CreateSubject(gdb, discipline, subjectRequest(luis.ID, ana.ID, luis.ID))
	require.NoError(t, err)
	assert.Equal(t, discipline.ID, subject.DisciplineID)

	linked, err := SubjectProfessors(gdb, []uint{subject.ID})
	require.NoError(t, err)
	require.Len(t, linked[subject.ID], 2)
	assert.Equal(t, "Luis", linked[subject.ID][0].Name)

	t.Run("Update without professorIds keeps links", func(t *testing.T) {
		require.NoError(t, UpdateSubject(gdb, subject, &dto.SubjectRequest{Term: intPtr(2)}, true))
		assert.Equal(t, int64(2), countRows(t, gdb, &models.ProfessorSubject{}))
	})

	t.Run("Empty list clears links", func(t *testing.T) {
		require.NoError(t, UpdateSubject(gdb, subject, &dto.SubjectRequest{ProfessorIDs: &[]uint{}}, true))
		assert.Equal(t, int64(0), countRows(t, gdb, &models.ProfessorSubject{}))
	})

	t.Run("Other discipline does not see the subject", func(t *testing.T) {
		param := func(string) string { return fmt.Sprint(subject.ID) }
		_, err := LookupOne[models.Subject](SubjectsQuery(gdb, discipline.ID+1), SubjectLookup, param, SubjectPreloads...)
		assert.ErrorIs(t, err, ErrNotFound)
		got, err := LookupOne[models.Subject](SubjectsQuery(gdb, discipline.ID), SubjectLookup, param, SubjectPreloads...)
		require.NoError(t, err)
		assert.Equal(t, "Medicina", got.Discipline.Career.Name)
	})
}

func TestEventKeepsOneProfessor(t *testing.T) {
	gdb := setupTestDB(t)
	ana := mustProfessor(t, gdb, "Ana")
	luis := mustProfessor(t, gdb, "Luis")

	event, err := CreateEvent(gdb, &dto.EventRequest{
		Year:           intPtr(2024),
		Title:          strPtr("Jornada científica"),
		ShortTitle:     strPtr("JC"),
		Classification: strPtr(models.EventClassificationBase),
		ProfessorID:    uintPtr(ana.ID),
	})
	require.NoError(t, err)

	require.NoError(t, UpdateEvent(gdb, event, &dto.EventRequest{ProfessorID: uintPtr(luis.ID)}, true))
	professors, err := EventProfessors(gdb, []uint{event.ID})
	require.NoError(t, err)
	assert.Equal(t, luis.ID, professors[event.ID].ID)
	assert.Equal(t, int64(1), countRows(t, gdb, &models.ProfessorEvent{}))

	require.NoError(t, DeleteEvent(gdb, event))
	assert.Equal(t, int64(0), countRows(t, gdb, &models.ProfessorEvent{}))
	assert.Equal(t, int64(2), countRows(t, gdb, &models.Professor{}))
}

func TestAuthorUniqueness(t *testing.T) {
	gdb := setupTestDB(t)
	ana := mustProfessor(t, gdb, "Ana")
	luis := mustProfessor(t, gdb, "Luis")
	publication, err := CreatePublication(gdb, &dto.PublicationRequest{
		Title:                 strPtr("Ecografía"),
		Publisher:             strPtr("ECIMED"),
		Type:                  strPtr(models.PublicationTypeBook),
		IsbnIssn:              strPtr("978-959"),
		BookVerification:      strPtr("ok"),
		JournalDatabase:       strPtr("-"),
		ReferenceVerification: strPtr("ok"),
	})
	require.NoError(t, err)
	assert.Nil(t, publication.Year)

	first, err := CreateAuthor(gdb, publication, &dto.AuthorRequest{ProfessorID: uintPtr(ana.ID), Role: strPtr(models.AuthorRolePrincipal)})
	require.NoError(t, err)
	assert.Equal(t, "Ana", first.Professor.Name)

	_, err = CreateAuthor(gdb, publication, &dto.AuthorRequest{ProfessorID: uintPtr(ana.ID), Role: strPtr(models.AuthorRoleCoauthor)})
	var errs validation.Errors
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, []string{MsgDuplicateAuthor}, errs[validation.GeneralKey])

	second, err := CreateAuthor(gdb, publication, &dto.AuthorRequest{ProfessorID: uintPtr(luis.ID), Role: strPtr(models.AuthorRoleCoauthor)})
	require.NoError(t, err)

	t.Run("Moving onto an existing author is rejected", func(t *testing.T) {
		err := UpdateAuthor(gdb, second, &dto.AuthorRequest{ProfessorID: uintPtr(ana.ID)}, true)
		require.ErrorAs(t, err, &errs)
	})

	t.Run("Keeping the same professor is fine", func(t *testing.T) {
		require.NoError(t, UpdateAuthor(gdb, second, &dto.AuthorRequest{ProfessorID: uintPtr(luis.ID), Role: strPtr(models.AuthorRolePrincipal)}, false))
		assert.Equal(t, models.AuthorRolePrincipal, second.Role)
	})
}

func TestEvaluationIndicatorSwap(t *testing.T) {
	gdb := setupTestDB(t)
	professor := mustProfessor(t, gdb, "Ana")
	_, err := SeedIndicators(gdb)
	require.NoError(t, err)

	var research, general models.EvaluationIndicator
	require.NoError(t, gdb.Where("name = ?", models.IndicatorResearch).First(&research).Error)
	require.NoError(t, gdb.Where("name = ?", models.IndicatorGeneral).First(&general).Error)

	evaluation, err := CreateEvaluation(gdb, professor, &dto.EvaluationRequest{
		IndicatorID: uintPtr(research.ID), Date: strPtr("2024-06-30"), Grade: strPtr(models.GradeExcellent),
	})
	require.NoError(t, err)
	assert.Equal(t, models.IndicatorResearch, evaluation.Indicator.Name)

	require.NoError(t, UpdateEvaluation(gdb, evaluation, &dto.EvaluationRequest{IndicatorID: uintPtr(general.ID)}, true))
	assert.Equal(t, models.IndicatorGeneral, evaluation.Indicator.Name)

	_, err = CreateEvaluation(gdb, professor, &dto.EvaluationRequest{
		IndicatorID: uintPtr(999), Date: strPtr("2024-13-40"), Grade: strPtr("REGULAR"),
	})
	var errs validation.Errors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs, "indicatorId")
	assert.Contains(t, errs, "date")
}

func TestReports(t *testing.T) {
	gdb := setupTestDB(t)
	career := mustCareer(t, gdb, "Medicina")
	discipline, err := CreateDiscipline(gdb, career, &dto.DisciplineRequest{Code: strPtr("MED-1"), Name: strPtr("Morfología")})
	require.NoError(t, err)
	professor := mustProfessor(t, gdb, "Ana")
	_, err = CreateSubject(gdb, discipline, subjectRequest(professor.ID))
	require.NoError(t, err)

	buf, err := CareerReport(gdb, career)
	require.NoError(t, err)
	assert.NotZero(t, buf.Len())

	buf, err = ProfessorsReport(gdb)
	require.NoError(t, err)
	assert.NotZero(t, buf.Len())
}
