package services

import (
	"sgac_app_go/dto"
	"sgac_app_go/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DisciplinesQuery scopes the discipline collection to one career
func DisciplinesQuery(db *gorm.DB, careerID uint) *gorm.DB {
	return db.Model(&models.Discipline{}).Where("career_id = ?", careerID)
}

// ListDisciplines returns the disciplines of a career with the career preloaded
func ListDisciplines(db *gorm.DB, careerID uint, p Pagination) ([]models.Discipline, *PageInfo, error) {
	return FindPage[models.Discipline](DisciplinesQuery(db, careerID), p, "Career")
}

// CreateDiscipline inserts a discipline under career. Any career in the payload is ignored.
func CreateDiscipline(db *gorm.DB, career *models.Career, req *dto.DisciplineRequest) (*models.Discipline, error) {
	if err := req.Validate(false).Err(); err != nil {
		return nil, err
	}

	discipline := models.Discipline{CareerID: career.ID}
	req.Apply(&discipline)
	if err := db.Omit(clause.Associations).Create(&discipline).Error; err != nil {
		return nil, translate(err)
	}
	discipline.Career = *career
	return &discipline, nil
}

// UpdateDiscipline applies req to discipline
func UpdateDiscipline(db *gorm.DB, discipline *models.Discipline, req *dto.DisciplineRequest, partial bool) error {
	if err := req.Validate(partial).Err(); err != nil {
		return err
	}
	req.Apply(discipline)
	return translate(db.Omit(clause.Associations).Save(discipline).Error)
}

// DeleteDiscipline removes a discipline and, through the store, its subjects
func DeleteDiscipline(db *gorm.DB, discipline *models.Discipline) error {
	return translate(db.Delete(&models.Discipline{}, discipline.ID).Error)
}
