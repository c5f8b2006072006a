package services

import (
	"sgac_app_go/dto"
	"sgac_app_go/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EventsQuery is the base query of the event collection
func EventsQuery(db *gorm.DB) *gorm.DB {
	return db.Model(&models.Event{})
}

// ListEvents returns events in insertion order
func ListEvents(db *gorm.DB, p Pagination) ([]models.Event, *PageInfo, error) {
	return FindPage[models.Event](EventsQuery(db), p)
}

// EventProfessors returns the professor of each event
func EventProfessors(db *gorm.DB, eventIDs []uint) (map[uint]*models.Professor, error) {
	result := make(map[uint]*models.Professor, len(eventIDs))
	if len(eventIDs) == 0 {
		return result, nil
	}

	var links []models.ProfessorEvent
	if err := db.Preload("Professor").Where("event_id IN ?", eventIDs).Find(&links).Error; err != nil {
		return nil, translate(err)
	}
	for i := range links {
		result[links[i].EventID] = &links[i].Professor
	}
	return result, nil
}

func validateEvent(db *gorm.DB, req *dto.EventRequest, partial bool) error {
	errs := req.Validate(partial)
	if err := checkReference(db, errs, "professorId", &models.Professor{}, req.ProfessorID); err != nil {
		return err
	}
	return errs.Err()
}

// setEventProfessor replaces the single professor link of an event
func setEventProfessor(tx *gorm.DB, eventID, professorID uint) error {
	if err := tx.Where("event_id = ?", eventID).Delete(&models.ProfessorEvent{}).Error; err != nil {
		return err
	}
	link := models.ProfessorEvent{EventID: eventID, ProfessorID: professorID}
	return tx.Omit(clause.Associations).Create(&link).Error
}

// CreateEvent inserts an event and links its professor in one transaction
func CreateEvent(db *gorm.DB, req *dto.EventRequest) (*models.Event, error) {
	if err := validateEvent(db, req, false); err != nil {
		return nil, err
	}

	var event models.Event
	req.Apply(&event)
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&event).Error; err != nil {
			return err
		}
		return setEventProfessor(tx, event.ID, *req.ProfessorID)
	})
	if err != nil {
		return nil, translate(err)
	}
	return &event, nil
}

// UpdateEvent applies req to event, moving the event to another professor when professorId is supplied
func UpdateEvent(db *gorm.DB, event *models.Event, req *dto.EventRequest, partial bool) error {
	if err := validateEvent(db, req, partial); err != nil {
		return err
	}
	req.Apply(event)

	return translate(db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(event).Error; err != nil {
			return err
		}
		if req.ProfessorID != nil {
			return setEventProfessor(tx, event.ID, *req.ProfessorID)
		}
		return nil
	}))
}

// DeleteEvent removes an event and its professor link
func DeleteEvent(db *gorm.DB, event *models.Event) error {
	return translate(db.Delete(&models.Event{}, event.ID).Error)
}
