package dto

import (
	"fmt"
	"time"

	"sgac_app_go/models"
	"sgac_app_go/validation"
)

// PublicationRequest is the write representation of a publication.
// Year and level may be null.
type PublicationRequest struct {
	requestKeys `validate:"-"`

	Year                  NullableInt `json:"year"`
	Title                 *string     `json:"title" validate:"required,notblank,max=500"`
	Publisher             *string     `json:"publisher" validate:"required,notblank,max=500"`
	Type                  *string     `json:"type" validate:"required,choice=publicationType"`
	IsbnIssn              *string     `json:"isbnIssn" validate:"required,notblank,max=500"`
	BookVerification      *string     `json:"bookVerification" validate:"required,notblank"`
	JournalDatabase       *string     `json:"journalDatabase" validate:"required,notblank,max=500"`
	ReferenceVerification *string     `json:"referenceVerification" validate:"required,notblank"`
	Level                 NullableInt `json:"level" validate:"omitempty,between=publicationLevel"`
}

func (r *PublicationRequest) Validate(partial bool) validation.Errors {
	return check(r, &r.requestKeys, partial)
}

func (r *PublicationRequest) Apply(m *models.Publication) {
	if r.Year.Set {
		m.Year = r.Year.Value
	}
	setString(&m.Title, r.Title)
	setString(&m.Publisher, r.Publisher)
	setString(&m.Type, r.Type)
	setString(&m.IsbnIssn, r.IsbnIssn)
	setString(&m.BookVerification, r.BookVerification)
	setString(&m.JournalDatabase, r.JournalDatabase)
	setString(&m.ReferenceVerification, r.ReferenceVerification)
	if r.Level.Set {
		m.Level = r.Level.Value
	}
}

// EvidenceResponse describes the uploaded evidence document
type EvidenceResponse struct {
	Name       string     `json:"name"`
	Size       int64      `json:"size"`
	MimeType   string     `json:"mimeType"`
	UploadedAt *time.Time `json:"uploadedAt"`
	URL        string     `json:"url"`
}

// PublicationResponse is the read representation of a publication
type PublicationResponse struct {
	ID                    uint              `json:"id"`
	Year                  *int              `json:"year"`
	Title                 string            `json:"title"`
	Publisher             string            `json:"publisher"`
	Type                  string            `json:"type"`
	IsbnIssn              string            `json:"isbnIssn"`
	BookVerification      string            `json:"bookVerification"`
	JournalDatabase       string            `json:"journalDatabase"`
	ReferenceVerification string            `json:"referenceVerification"`
	Level                 *int              `json:"level"`
	Evidence              *EvidenceResponse `json:"evidence"`
	CreatedAt             time.Time         `json:"createdAt"`
	UpdatedAt             time.Time         `json:"updatedAt"`
}

func NewPublicationResponse(m *models.Publication) PublicationResponse {
	resp := PublicationResponse{
		ID:                    m.ID,
		Year:                  m.Year,
		Title:                 m.Title,
		Publisher:             m.Publisher,
		Type:                  m.Type,
		IsbnIssn:              m.IsbnIssn,
		BookVerification:      m.BookVerification,
		JournalDatabase:       m.JournalDatabase,
		ReferenceVerification: m.ReferenceVerification,
		Level:                 m.Level,
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
	}
	if m.HasEvidence() {
		resp.Evidence = &EvidenceResponse{
			Name:       m.EvidenceName,
			Size:       m.EvidenceSize,
			MimeType:   m.EvidenceMimeType,
			UploadedAt: m.EvidenceUploadedAt,
			URL:        fmt.Sprintf("/publications/%d/evidence", m.ID),
		}
	}
	return resp
}

// AuthorRequest is the write representation of an authorship.
// The publication comes from the URL.
type AuthorRequest struct {
	requestKeys `validate:"-"`

	ProfessorID *uint   `json:"professorId" validate:"required"`
	Role        *string `json:"role" validate:"required,choice=authorRole"`
}

func (r *AuthorRequest) Validate(partial bool) validation.Errors {
	return check(r, &r.requestKeys, partial)
}

func (r *AuthorRequest) Apply(m *models.ProfessorPublication) {
	if r.ProfessorID != nil {
		m.ProfessorID = *r.ProfessorID
	}
	setString(&m.Role, r.Role)
}

// AuthorResponse embeds the authoring professor
type AuthorResponse struct {
	ID            uint              `json:"id"`
	PublicationID uint              `json:"publicationId"`
	Professor     ProfessorResponse `json:"professor"`
	Role          string            `json:"role"`
}

// NewAuthorResponse expects m.Professor to be loaded
func NewAuthorResponse(m *models.ProfessorPublication) AuthorResponse {
	return AuthorResponse{
		ID:            m.ID,
		PublicationID: m.PublicationID,
		Professor:     NewProfessorResponse(&m.Professor),
		Role:          m.Role,
	}
}
