package services

import (
	"sgac_app_go/dto"
	"sgac_app_go/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProfessorsQuery is the base query of the professor collection
func ProfessorsQuery(db *gorm.DB) *gorm.DB {
	return db.Model(&models.Professor{})
}

// ListProfessors returns professors in insertion order
func ListProfessors(db *gorm.DB, p Pagination) ([]models.Professor, *PageInfo, error) {
	return FindPage[models.Professor](ProfessorsQuery(db), p)
}

// CreateProfessor validates req and inserts a new professor
func CreateProfessor(db *gorm.DB, req *dto.ProfessorRequest) (*models.Professor, error) {
	if err := req.Validate(false).Err(); err != nil {
		return nil, err
	}

	var professor models.Professor
	req.Apply(&professor)
	if err := db.Create(&professor).Error; err != nil {
		return nil, translate(err)
	}
	return &professor, nil
}

// UpdateProfessor applies req to professor
func UpdateProfessor(db *gorm.DB, professor *models.Professor, req *dto.ProfessorRequest, partial bool) error {
	if err := req.Validate(partial).Err(); err != nil {
		return err
	}
	req.Apply(professor)
	return translate(db.Omit(clause.Associations).Save(professor).Error)
}

// DeleteProfessor removes a professor. The store cascades to its links, awards and evaluations.
func DeleteProfessor(db *gorm.DB, professor *models.Professor) error {
	return translate(db.Delete(&models.Professor{}, professor.ID).Error)
}
