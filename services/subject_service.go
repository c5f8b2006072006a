package services

import (
	"sgac_app_go/dto"
	"sgac_app_go/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SubjectsQuery scopes the subject collection to one discipline
func SubjectsQuery(db *gorm.DB, disciplineID uint) *gorm.DB {
	return db.Model(&models.Subject{}).Where("discipline_id = ?", disciplineID)
}

// SubjectPreloads load the two nesting levels of the read representation
var SubjectPreloads = []string{"Discipline", "Discipline.Career"}

// ListSubjects returns the subjects of a discipline
func ListSubjects(db *gorm.DB, disciplineID uint, p Pagination) ([]models.Subject, *PageInfo, error) {
	return FindPage[models.Subject](SubjectsQuery(db, disciplineID), p, SubjectPreloads...)
}

// SubjectProfessors returns the teaching professors of each subject, in link order
func SubjectProfessors(db *gorm.DB, subjectIDs []uint) (map[uint][]models.Professor, error) {
	result := make(map[uint][]models.Professor, len(subjectIDs))
	if len(subjectIDs) == 0 {
		return result, nil
	}

	var links []models.ProfessorSubject
	err := db.Preload("Professor").
		Where("subject_id IN ?", subjectIDs).
		Order("id ASC").
		Find(&links).Error
	if err != nil {
		return nil, translate(err)
	}

	for _, link := range links {
		result[link.SubjectID] = append(result[link.SubjectID], link.Professor)
	}
	return result, nil
}

// validateSubject runs field validation plus the professor reference checks
func validateSubject(db *gorm.DB, req *dto.SubjectRequest, partial bool) error {
	errs := req.Validate(partial)
	if req.ProfessorIDs != nil {
		for _, id := range uniqueIDs(*req.ProfessorIDs) {
			if err := checkReference(db, errs, "professorIds", &models.Professor{}, &id); err != nil {
				return err
			}
		}
	}
	return errs.Err()
}

// replaceSubjectProfessors rewrites the professor links of a subject
func replaceSubjectProfessors(tx *gorm.DB, subjectID uint, professorIDs []uint) error {
	if err := tx.Where("subject_id = ?", subjectID).Delete(&models.ProfessorSubject{}).Error; err != nil {
		return err
	}
	for _, id := range uniqueIDs(professorIDs) {
		link := models.ProfessorSubject{SubjectID: subjectID, ProfessorID: id}
		if err := tx.Omit(clause.Associations).Create(&link).Error; err != nil {
			return err
		}
	}
	return nil
}

// CreateSubject inserts a subject under discipline together with its professor links.
// The discipline always comes from the caller, never from the payload.
func CreateSubject(db *gorm.DB, discipline *models.Discipline, req *dto.SubjectRequest) (*models.Subject, error) {
	if err := validateSubject(db, req, false); err != nil {
		return nil, err
	}

	subject := models.Subject{DisciplineID: discipline.ID}
	req.Apply(&subject)

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&subject).Error; err != nil {
			return err
		}
		if req.ProfessorIDs != nil {
			return replaceSubjectProfessors(tx, subject.ID, *req.ProfessorIDs)
		}
		return nil
	})
	if err != nil {
		return nil, translate(err)
	}

	subject.Discipline = *discipline
	return &subject, nil
}

// UpdateSubject applies req to subject. Professor links are replaced only when professorIds is supplied.
func UpdateSubject(db *gorm.DB, subject *models.Subject, req *dto.SubjectRequest, partial bool) error {
	if err := validateSubject(db, req, partial); err != nil {
		return err
	}
	req.Apply(subject)

	return translate(db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(subject).Error; err != nil {
			return err
		}
		if req.ProfessorIDs != nil {
			return replaceSubjectProfessors(tx, subject.ID, *req.ProfessorIDs)
		}
		return nil
	}))
}

// DeleteSubject removes a subject and its professor links
func DeleteSubject(db *gorm.DB, subject *models.Subject) error {
	return translate(db.Delete(&models.Subject{}, subject.ID).Error)
}
