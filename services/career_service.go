package services

import (
	"sgac_app_go/dto"
	"sgac_app_go/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CareersQuery is the base query of the career collection
func CareersQuery(db *gorm.DB) *gorm.DB {
	return db.Model(&models.Career{})
}

// ListCareers returns careers in insertion order
func ListCareers(db *gorm.DB, p Pagination) ([]models.Career, *PageInfo, error) {
	return FindPage[models.Career](CareersQuery(db), p)
}

// GetCareer retrieves a career by ID
func GetCareer(db *gorm.DB, id uint) (*models.Career, error) {
	var career models.Career
	if err := db.First(&career, id).Error; err != nil {
		return nil, translate(err)
	}
	return &career, nil
}

// CreateCareer validates req and inserts a new career
func CreateCareer(db *gorm.DB, req *dto.CareerRequest) (*models.Career, error) {
	if err := req.Validate(false).Err(); err != nil {
		return nil, err
	}

	var career models.Career
	req.Apply(&career)
	if err := db.Create(&career).Error; err != nil {
		return nil, translate(err)
	}
	return &career, nil
}

// UpdateCareer applies req to career. Partial updates only touch supplied fields.
func UpdateCareer(db *gorm.DB, career *models.Career, req *dto.CareerRequest, partial bool) error {
	if err := req.Validate(partial).Err(); err != nil {
		return err
	}
	req.Apply(career)
	return translate(db.Omit(clause.Associations).Save(career).Error)
}

// DeleteCareer removes a career; its disciplines and subjects go with it
func DeleteCareer(db *gorm.DB, career *models.Career) error {
	return translate(db.Delete(career).Error)
}
