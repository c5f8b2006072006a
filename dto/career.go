package dto

import (
	"time"

	"sgac_app_go/models"
	"sgac_app_go/validation"
)

// CareerRequest is the write representation of a career
type CareerRequest struct {
	requestKeys `validate:"-"`

	Name                     *string `json:"name" validate:"required,notblank,max=255"`
	Modality                 *string `json:"modality" validate:"required,choice=careerModality"`
	Site                     *string `json:"site" validate:"required,notblank,max=255"`
	ExternalEvaluationYear   *string `json:"externalEvaluationYear" validate:"required,notblank,max=255"`
	EvaluatedCourse          *string `json:"evaluatedCourse" validate:"required,notblank,max=255"`
	ExternalEvaluationNumber *int    `json:"externalEvaluationNumber" validate:"required"`
}

func (r *CareerRequest) Validate(partial bool) validation.Errors {
	return check(r, &r.requestKeys, partial)
}

func (r *CareerRequest) Apply(m *models.Career) {
	setString(&m.Name, r.Name)
	setString(&m.Modality, r.Modality)
	setString(&m.Site, r.Site)
	setString(&m.ExternalEvaluationYear, r.ExternalEvaluationYear)
	setString(&m.EvaluatedCourse, r.EvaluatedCourse)
	setInt(&m.ExternalEvaluationNumber, r.ExternalEvaluationNumber)
}

// CareerResponse is the read representation of a career
type CareerResponse struct {
	ID                       uint      `json:"id"`
	Name                     string    `json:"name"`
	Modality                 string    `json:"modality"`
	Site                     string    `json:"site"`
	ExternalEvaluationYear   string    `json:"externalEvaluationYear"`
	EvaluatedCourse          string    `json:"evaluatedCourse"`
	ExternalEvaluationNumber int       `json:"externalEvaluationNumber"`
	CreatedAt                time.Time `json:"createdAt"`
	UpdatedAt                time.Time `json:"updatedAt"`
}

func NewCareerResponse(m *models.Career) CareerResponse {
	return CareerResponse{
		ID:                       m.ID,
		Name:                     m.Name,
		Modality:                 m.Modality,
		Site:                     m.Site,
		ExternalEvaluationYear:   m.ExternalEvaluationYear,
		EvaluatedCourse:          m.EvaluatedCourse,
		ExternalEvaluationNumber: m.ExternalEvaluationNumber,
		CreatedAt:                m.CreatedAt,
		UpdatedAt:                m.UpdatedAt,
	}
}
