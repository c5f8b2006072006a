package dto

import (
	"time"

	"sgac_app_go/models"
	"sgac_app_go/validation"
)

// IndicatorRequest is the write representation of an evaluation indicator
type IndicatorRequest struct {
	requestKeys `validate:"-"`

	Name *string `json:"name" validate:"required,choice=indicator"`
}

func (r *IndicatorRequest) Validate(partial bool) validation.Errors {
	return check(r, &r.requestKeys, partial)
}

func (r *IndicatorRequest) Apply(m *models.EvaluationIndicator) {
	setString(&m.Name, r.Name)
}

type IndicatorResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func NewIndicatorResponse(m *models.EvaluationIndicator) IndicatorResponse {
	return IndicatorResponse{ID: m.ID, Name: m.Name}
}

// EvaluationRequest is the write representation of an evaluation.
// The professor comes from the URL.
type EvaluationRequest struct {
	requestKeys `validate:"-"`

	IndicatorID *uint   `json:"indicatorId" validate:"required"`
	Date        *string `json:"date" validate:"required,datetime=2006-01-02"`
	Grade       *string `json:"grade" validate:"required,choice=grade"`
}

func (r *EvaluationRequest) Validate(partial bool) validation.Errors {
	return check(r, &r.requestKeys, partial)
}

func (r *EvaluationRequest) Apply(m *models.Evaluation) {
	if r.IndicatorID != nil {
		m.IndicatorID = *r.IndicatorID
	}
	setString(&m.Date, r.Date)
	setString(&m.Grade, r.Grade)
}

// EvaluationResponse embeds the professor and the indicator
type EvaluationResponse struct {
	ID        uint              `json:"id"`
	Professor ProfessorResponse `json:"professor"`
	Indicator IndicatorResponse `json:"indicator"`
	Date      string            `json:"date"`
	Grade     string            `json:"grade"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

// NewEvaluationResponse expects m.Professor and m.Indicator to be loaded
func NewEvaluationResponse(m *models.Evaluation) EvaluationResponse {
	return EvaluationResponse{
		ID:        m.ID,
		Professor: NewProfessorResponse(&m.Professor),
		Indicator: NewIndicatorResponse(&m.Indicator),
		Date:      m.Date,
		Grade:     m.Grade,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
