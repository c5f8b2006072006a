package dto

import (
	"time"

	"sgac_app_go/models"
	"sgac_app_go/validation"
)

// AwardRequest is the write representation of an award
type AwardRequest struct {
	requestKeys `validate:"-"`

	ProfessorID    *uint   `json:"professorId" validate:"required"`
	Year           *int    `json:"year" validate:"required"`
	Description    *string `json:"description" validate:"required,notblank"`
	Classification *string `json:"classification" validate:"required,choice=awardClassification"`
}

func (r *AwardRequest) Validate(partial bool) validation.Errors {
	return check(r, &r.requestKeys, partial)
}

func (r *AwardRequest) Apply(m *models.Award) {
	if r.ProfessorID != nil {
		m.ProfessorID = *r.ProfessorID
	}
	setInt(&m.Year, r.Year)
	setString(&m.Description, r.Description)
	setString(&m.Classification, r.Classification)
}

// AwardResponse embeds the awarded professor
type AwardResponse struct {
	ID             uint              `json:"id"`
	Professor      ProfessorResponse `json:"professor"`
	Year           int               `json:"year"`
	Description    string            `json:"description"`
	Classification string            `json:"classification"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

// NewAwardResponse expects m.Professor to be loaded
func NewAwardResponse(m *models.Award) AwardResponse {
	return AwardResponse{
		ID:             m.ID,
		Professor:      NewProfessorResponse(&m.Professor),
		Year:           m.Year,
		Description:    m.Description,
		Classification: m.Classification,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
