package dto

import (
	"time"

	"sgac_app_go/models"
	"sgac_app_go/validation"
)

// SubjectRequest is the write representation of a subject.
// The discipline comes from the URL; professors are given by id.
type SubjectRequest struct {
	requestKeys `validate:"-"`

	Name         *string `json:"name" validate:"required,notblank,max=255"`
	Code         *string `json:"code" validate:"required,notblank,max=100"`
	Year         *int    `json:"year" validate:"required,between=academicYear"`
	Term         *int    `json:"term" validate:"required,between=term"`
	Modality     *string `json:"modality" validate:"required,choice=subjectModality"`
	Curriculum   *string `json:"curriculum" validate:"required,choice=curriculum"`
	ProfessorIDs *[]uint `json:"professorIds"`
}

func (r *SubjectRequest) Validate(partial bool) validation.Errors {
	return check(r, &r.requestKeys, partial)
}

func (r *SubjectRequest) Apply(m *models.Subject) {
	setString(&m.Name, r.Name)
	setString(&m.Code, r.Code)
	setInt(&m.Year, r.Year)
	setInt(&m.Term, r.Term)
	setString(&m.Modality, r.Modality)
	setString(&m.Curriculum, r.Curriculum)
}

// SubjectResponse embeds the discipline (which embeds its career) and the teaching professors
type SubjectResponse struct {
	ID         uint                `json:"id"`
	Name       string              `json:"name"`
	Code       string              `json:"code"`
	Year       int                 `json:"year"`
	Term       int                 `json:"term"`
	Modality   string              `json:"modality"`
	Curriculum string              `json:"curriculum"`
	Discipline DisciplineResponse  `json:"discipline"`
	Professors []ProfessorResponse `json:"professors"`
	CreatedAt  time.Time           `json:"createdAt"`
	UpdatedAt  time.Time           `json:"updatedAt"`
}

// NewSubjectResponse expects m.Discipline.Career to be loaded
func NewSubjectResponse(m *models.Subject, professors []models.Professor) SubjectResponse {
	resp := SubjectResponse{
		ID:         m.ID,
		Name:       m.Name,
		Code:       m.Code,
		Year:       m.Year,
		Term:       m.Term,
		Modality:   m.Modality,
		Curriculum: m.Curriculum,
		Discipline: NewDisciplineResponse(&m.Discipline),
		Professors: make([]ProfessorResponse, 0, len(professors)),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
	for i := range professors {
		resp.Professors = append(resp.Professors, NewProfessorResponse(&professors[i]))
	}
	return resp
}
