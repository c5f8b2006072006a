package dto

import (
	"time"

	"sgac_app_go/models"
	"sgac_app_go/validation"
)

// ProfessorRequest is the write representation of a professor
type ProfessorRequest struct {
	requestKeys `validate:"-"`

	Name                   *string                `json:"name" validate:"required,notblank,max=255"`
	FirstSurname           *string                `json:"firstSurname" validate:"required,notblank,max=255"`
	SecondSurname          *string                `json:"secondSurname" validate:"required,notblank,max=255"`
	CareerYearsExperience  *int                   `json:"careerYearsExperience" validate:"omitempty,min=0"`
	MonthsExperience       *int                   `json:"monthsExperience" validate:"omitempty,min=0"`
	TeachingCategory       *string                `json:"teachingCategory" validate:"required,choice=teachingCategory"`
	ScientificDegree       *string                `json:"scientificDegree" validate:"required,choice=scientificDegree"`
	RelatedSpecialtyDoctor *bool                  `json:"relatedSpecialtyDoctor" validate:"omitnil"`
	Emails                 *[]EmailContactRequest `json:"emails" validate:"required,dive"`
	Phones                 *[]PhoneContactRequest `json:"phones" validate:"required,dive"`
}

type EmailContactRequest struct {
	Label *string `json:"label" validate:"required,notblank"`
	Email *string `json:"email" validate:"required,notblank,email"`
}

type PhoneContactRequest struct {
	Label  *string `json:"label" validate:"required,notblank"`
	Number *string `json:"number" validate:"required,notblank"`
}

func (r *ProfessorRequest) Validate(partial bool) validation.Errors {
	return check(r, &r.requestKeys, partial)
}

// Apply must run after a successful Validate
func (r *ProfessorRequest) Apply(m *models.Professor) {
	setString(&m.Name, r.Name)
	setString(&m.FirstSurname, r.FirstSurname)
	setString(&m.SecondSurname, r.SecondSurname)
	setInt(&m.CareerYearsExperience, r.CareerYearsExperience)
	setInt(&m.MonthsExperience, r.MonthsExperience)
	setString(&m.TeachingCategory, r.TeachingCategory)
	setString(&m.ScientificDegree, r.ScientificDegree)
	if r.RelatedSpecialtyDoctor != nil || r.sentNull("relatedSpecialtyDoctor") {
		m.RelatedSpecialtyDoctor = r.RelatedSpecialtyDoctor
	}
	if r.Emails != nil {
		m.Emails = make([]models.EmailContact, 0, len(*r.Emails))
		for _, e := range *r.Emails {
			m.Emails = append(m.Emails, models.EmailContact{Label: *e.Label, Email: *e.Email})
		}
	}
	if r.Phones != nil {
		m.Phones = make([]models.PhoneContact, 0, len(*r.Phones))
		for _, p := range *r.Phones {
			m.Phones = append(m.Phones, models.PhoneContact{Label: *p.Label, Number: *p.Number})
		}
	}
}

// ProfessorResponse is the read representation of a professor
type ProfessorResponse struct {
	ID                     uint                  `json:"id"`
	Name                   string                `json:"name"`
	FirstSurname           string                `json:"firstSurname"`
	SecondSurname          string                `json:"secondSurname"`
	CareerYearsExperience  int                   `json:"careerYearsExperience"`
	MonthsExperience       int                   `json:"monthsExperience"`
	TeachingCategory       string                `json:"teachingCategory"`
	ScientificDegree       string                `json:"scientificDegree"`
	RelatedSpecialtyDoctor *bool                 `json:"relatedSpecialtyDoctor"`
	Emails                 []models.EmailContact `json:"emails"`
	Phones                 []models.PhoneContact `json:"phones"`
	CreatedAt              time.Time             `json:"createdAt"`
	UpdatedAt              time.Time             `json:"updatedAt"`
}

func NewProfessorResponse(m *models.Professor) ProfessorResponse {
	resp := ProfessorResponse{
		ID:                     m.ID,
		Name:                   m.Name,
		FirstSurname:           m.FirstSurname,
		SecondSurname:          m.SecondSurname,
		CareerYearsExperience:  m.CareerYearsExperience,
		MonthsExperience:       m.MonthsExperience,
		TeachingCategory:       m.TeachingCategory,
		ScientificDegree:       m.ScientificDegree,
		RelatedSpecialtyDoctor: m.RelatedSpecialtyDoctor,
		Emails:                 m.Emails,
		Phones:                 m.Phones,
		CreatedAt:              m.CreatedAt,
		UpdatedAt:              m.UpdatedAt,
	}
	if resp.Emails == nil {
		resp.Emails = []models.EmailContact{}
	}
	if resp.Phones == nil {
		resp.Phones = []models.PhoneContact{}
	}
	return resp
}
