package dto

import (
	"time"

	"sgac_app_go/models"
	"sgac_app_go/validation"
)

// DisciplineRequest is the write representation of a discipline.
// The career comes from the URL.
type DisciplineRequest struct {
	requestKeys `validate:"-"`

	Code *string `json:"code" validate:"required,notblank,max=255"`
	Name *string `json:"name" validate:"required,notblank,max=255"`
}

func (r *DisciplineRequest) Validate(partial bool) validation.Errors {
	return check(r, &r.requestKeys, partial)
}

func (r *DisciplineRequest) Apply(m *models.Discipline) {
	setString(&m.Code, r.Code)
	setString(&m.Name, r.Name)
}

// DisciplineResponse embeds the owning career
type DisciplineResponse struct {
	ID        uint           `json:"id"`
	Code      string         `json:"code"`
	Name      string         `json:"name"`
	Career    CareerResponse `json:"career"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// NewDisciplineResponse expects m.Career to be loaded
func NewDisciplineResponse(m *models.Discipline) DisciplineResponse {
	return DisciplineResponse{
		ID:        m.ID,
		Code:      m.Code,
		Name:      m.Name,
		Career:    NewCareerResponse(&m.Career),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
