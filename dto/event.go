package dto

import (
	"time"

	"sgac_app_go/models"
	"sgac_app_go/validation"
)

// EventRequest is the write representation of an event
type EventRequest struct {
	requestKeys `validate:"-"`

	Year           *int    `json:"year" validate:"required"`
	Title          *string `json:"title" validate:"required,notblank,max=500"`
	ShortTitle     *string `json:"shortTitle" validate:"required,notblank,max=255"`
	Classification *string `json:"classification" validate:"required,choice=eventClassification"`
	ProfessorID    *uint   `json:"professorId" validate:"required"`
}

func (r *EventRequest) Validate(partial bool) validation.Errors {
	return check(r, &r.requestKeys, partial)
}

func (r *EventRequest) Apply(m *models.Event) {
	setInt(&m.Year, r.Year)
	setString(&m.Title, r.Title)
	setString(&m.ShortTitle, r.ShortTitle)
	setString(&m.Classification, r.Classification)
}

// EventResponse embeds the participating professor
type EventResponse struct {
	ID             uint               `json:"id"`
	Year           int                `json:"year"`
	Title          string             `json:"title"`
	ShortTitle     string             `json:"shortTitle"`
	Classification string             `json:"classification"`
	Professor      *ProfessorResponse `json:"professor"`
	CreatedAt      time.Time          `json:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt"`
}

func NewEventResponse(m *models.Event, professor *models.Professor) EventResponse {
	resp := EventResponse{
		ID:             m.ID,
		Year:           m.Year,
		Title:          m.Title,
		ShortTitle:     m.ShortTitle,
		Classification: m.Classification,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
	if professor != nil {
		p := NewProfessorResponse(professor)
		resp.Professor = &p
	}
	return resp
}
