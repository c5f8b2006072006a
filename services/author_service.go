package services

import (
	"sgac_app_go/dto"
	"sgac_app_go/models"
	"sgac_app_go/validation"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MsgDuplicateAuthor is returned when a professor already authors the publication
const MsgDuplicateAuthor = "The fields publicationId, professorId must make a unique set."

// AuthorsQuery scopes authorships to one publication
func AuthorsQuery(db *gorm.DB, publicationID uint) *gorm.DB {
	return db.Model(&models.ProfessorPublication{}).Where("publication_id = ?", publicationID)
}

// ListAuthors returns the authorships of a publication with their professor
func ListAuthors(db *gorm.DB, publicationID uint, p Pagination) ([]models.ProfessorPublication, *PageInfo, error) {
	return FindPage[models.ProfessorPublication](AuthorsQuery(db, publicationID), p, "Professor")
}

// validateAuthor checks fields, the professor reference, and that the pair stays unique
func validateAuthor(db *gorm.DB, author *models.ProfessorPublication, req *dto.AuthorRequest, partial bool) error {
	errs := req.Validate(partial)
	if err := checkReference(db, errs, "professorId", &models.Professor{}, req.ProfessorID); err != nil {
		return err
	}
	if errs.HasErrors() || req.ProfessorID == nil {
		return errs.Err()
	}

	var count int64
	query := AuthorsQuery(db, author.PublicationID).Where("professor_id = ?", *req.ProfessorID)
	if author.ID != 0 {
		query = query.Where("id <> ?", author.ID)
	}
	if err := query.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		errs.Add(validation.GeneralKey, MsgDuplicateAuthor)
	}
	return errs.Err()
}

// CreateAuthor adds a professor as author of publication
func CreateAuthor(db *gorm.DB, publication *models.Publication, req *dto.AuthorRequest) (*models.ProfessorPublication, error) {
	author := models.ProfessorPublication{PublicationID: publication.ID}
	if err := validateAuthor(db, &author, req, false); err != nil {
		return nil, err
	}

	req.Apply(&author)
	if err := db.Omit(clause.Associations).Create(&author).Error; err != nil {
		return nil, translate(err)
	}
	if err := reloadProfessor(db, author.ProfessorID, &author.Professor); err != nil {
		return nil, err
	}
	return &author, nil
}

// UpdateAuthor applies req to an authorship
func UpdateAuthor(db *gorm.DB, author *models.ProfessorPublication, req *dto.AuthorRequest, partial bool) error {
	if err := validateAuthor(db, author, req, partial); err != nil {
		return err
	}
	req.Apply(author)
	if err := db.Omit(clause.Associations).Save(author).Error; err != nil {
		return translate(err)
	}
	return reloadProfessor(db, author.ProfessorID, &author.Professor)
}

// DeleteAuthor removes an authorship
func DeleteAuthor(db *gorm.DB, author *models.ProfessorPublication) error {
	return translate(db.Delete(&models.ProfessorPublication{}, author.ID).Error)
}
