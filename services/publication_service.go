package services

import (
	"sgac_app_go/dto"
	"sgac_app_go/models"

	"gorm.io/gorm"
)

// PublicationsQuery is the base query of the publication collection
func PublicationsQuery(db *gorm.DB) *gorm.DB {
	return db.Model(&models.Publication{})
}

// ListPublications returns publications in insertion order
func ListPublications(db *gorm.DB, p Pagination) ([]models.Publication, *PageInfo, error) {
	return FindPage[models.Publication](PublicationsQuery(db), p)
}

// CreatePublication validates req and inserts a new publication.
// Nothing is written when validation fails.
func CreatePublication(db *gorm.DB, req *dto.PublicationRequest) (*models.Publication, error) {
	if err := req.Validate(false).Err(); err != nil {
		return nil, err
	}

	var publication models.Publication
	req.Apply(&publication)
	if err := db.Create(&publication).Error; err != nil {
		return nil, translate(err)
	}
	return &publication, nil
}

// UpdatePublication applies req to publication
func UpdatePublication(db *gorm.DB, publication *models.Publication, req *dto.PublicationRequest, partial bool) error {
	if err := req.Validate(partial).Err(); err != nil {
		return err
	}
	req.Apply(publication)
	return translate(db.Save(publication).Error)
}

// DeletePublication removes a publication and its authorships.
// The evidence file is left to the caller.
func DeletePublication(db *gorm.DB, publication *models.Publication) error {
	return translate(db.Delete(&models.Publication{}, publication.ID).Error)
}
