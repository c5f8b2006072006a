package services

import (
	"sgac_app_go/dto"
	"sgac_app_go/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AwardsQuery is the base query of the award collection
func AwardsQuery(db *gorm.DB) *gorm.DB {
	return db.Model(&models.Award{})
}

// ListAwards returns awards with their professor preloaded
func ListAwards(db *gorm.DB, p Pagination) ([]models.Award, *PageInfo, error) {
	return FindPage[models.Award](AwardsQuery(db), p, "Professor")
}

func validateAward(db *gorm.DB, req *dto.AwardRequest, partial bool) error {
	errs := req.Validate(partial)
	if err := checkReference(db, errs, "professorId", &models.Professor{}, req.ProfessorID); err != nil {
		return err
	}
	return errs.Err()
}

// reloadProfessor refreshes the preloaded professor after its id changed
func reloadProfessor(db *gorm.DB, id uint, dst *models.Professor) error {
	if dst.ID == id {
		return nil
	}
	*dst = models.Professor{}
	return translate(db.First(dst, id).Error)
}

// CreateAward validates req and inserts a new award
func CreateAward(db *gorm.DB, req *dto.AwardRequest) (*models.Award, error) {
	if err := validateAward(db, req, false); err != nil {
		return nil, err
	}

	var award models.Award
	req.Apply(&award)
	if err := db.Omit(clause.Associations).Create(&award).Error; err != nil {
		return nil, translate(err)
	}
	if err := reloadProfessor(db, award.ProfessorID, &award.Professor); err != nil {
		return nil, err
	}
	return &award, nil
}

// UpdateAward applies req to award
func UpdateAward(db *gorm.DB, award *models.Award, req *dto.AwardRequest, partial bool) error {
	if err := validateAward(db, req, partial); err != nil {
		return err
	}
	req.Apply(award)
	if err := db.Omit(clause.Associations).Save(award).Error; err != nil {
		return translate(err)
	}
	return reloadProfessor(db, award.ProfessorID, &award.Professor)
}

// DeleteAward removes an award
func DeleteAward(db *gorm.DB, award *models.Award) error {
	return translate(db.Delete(&models.Award{}, award.ID).Error)
}
