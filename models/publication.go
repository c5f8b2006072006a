package models

import "time"

// Publication types
const (
	PublicationTypeArticle          = "articulo"
	PublicationTypeBook             = "libro"
	PublicationTypeDigitalBook      = "libro_digital"
	PublicationTypeBookChapter      = "capitulo_libro"
	PublicationTypeCareerText       = "texto_carrera"
	PublicationTypeTeachingMaterial = "material_docente"
	PublicationTypePatent           = "patente"
)

var PublicationTypes = []string{
	PublicationTypeArticle,
	PublicationTypeBook,
	PublicationTypeDigitalBook,
	PublicationTypeBookChapter,
	PublicationTypeCareerText,
	PublicationTypeTeachingMaterial,
	PublicationTypePatent,
}

// Publication level bounds (inclusive)
const (
	MinPublicationLevel = 1
	MaxPublicationLevel = 4
)

// Publication is a scientific or teaching publication authored by professors
type Publication struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Year                  *int
	Title                 string `gorm:"size:500;not null"`
	Publisher             string `gorm:"size:255;not null"`
	Type                  string `gorm:"size:255;not null"`
	IsbnIssn              string `gorm:"size:255;not null"`
	BookVerification      string `gorm:"size:255;not null"`
	JournalDatabase       string `gorm:"size:255;not null"`
	ReferenceVerification string `gorm:"size:255;not null"`
	Level                 *int

	// Evidence document, empty when none was uploaded
	EvidenceKey        string `gorm:"size:500"`
	EvidenceName       string `gorm:"size:255"`
	EvidenceSize       int64
	EvidenceMimeType   string `gorm:"size:100"`
	EvidenceUploadedAt *time.Time
}

// TableName specifies the table name for Publication model
func (Publication) TableName() string {
	return "publications"
}

// HasEvidence reports whether an evidence document is attached
func (p *Publication) HasEvidence() bool {
	return p.EvidenceKey != ""
}
