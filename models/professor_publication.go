package models

// Authorship roles
const (
	AuthorRolePrincipal = "AUTOR_PRINCIPAL"
	AuthorRoleCoauthor  = "COAUTOR"
)

var AuthorRoles = []string{AuthorRolePrincipal, AuthorRoleCoauthor}

// ProfessorPublication is the authorship of a professor on a publication
type ProfessorPublication struct {
	ID uint `gorm:"primarykey"`

	PublicationID uint        `gorm:"not null;uniqueIndex:idx_publication_author"`
	Publication   Publication `gorm:"foreignKey:PublicationID;constraint:OnDelete:CASCADE"`
	ProfessorID   uint        `gorm:"not null;uniqueIndex:idx_publication_author;index"`
	Professor     Professor   `gorm:"foreignKey:ProfessorID;constraint:OnDelete:CASCADE"`

	Role string `gorm:"size:255;not null"`
}

// TableName specifies the table name for ProfessorPublication model
func (ProfessorPublication) TableName() string {
	return "professor_publications"
}
