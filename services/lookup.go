package services

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LookupField maps a path parameter onto the column it must equal
type LookupField struct {
	Param  string
	Column string
}

// Lookup tables of the addressable resources.
// EvaluationLookup matches the evaluation row id inside the professor scope, not the indicator id.
var (
	CareerLookup      = []LookupField{{Param: "careerId", Column: "id"}}
	DisciplineLookup  = []LookupField{{Param: "disciplineId", Column: "id"}}
	SubjectLookup     = []LookupField{{Param: "subjectId", Column: "id"}}
	ProfessorLookup   = []LookupField{{Param: "professorId", Column: "id"}}
	EvaluationLookup  = []LookupField{{Param: "evaluationId", Column: "id"}}
	PublicationLookup = []LookupField{{Param: "publicationId", Column: "id"}}
	EventLookup       = []LookupField{{Param: "eventId", Column: "id"}}
	AwardLookup       = []LookupField{{Param: "awardId", Column: "id"}}
	IndicatorLookup   = []LookupField{{Param: "indicatorId", Column: "id"}}

	// An authorship is addressed by both of its foreign keys
	AuthorLookup = []LookupField{
		{Param: "publicationId", Column: "publication_id"},
		{Param: "professorId", Column: "professor_id"},
	}
)

// LookupOne fetches the single row of the scoped query matching every field.
// param resolves a path parameter name to its raw value.
func LookupOne[T any](query *gorm.DB, fields []LookupField, param func(string) string, preloads ...string) (*T, error) {
	tx := query.Session(&gorm.Session{})
	for _, f := range fields {
		id, err := ParseID(param(f.Param))
		if err != nil {
			return nil, err
		}
		tx = tx.Where(clause.Eq{Column: clause.Column{Table: clause.CurrentTable, Name: f.Column}, Value: id})
	}
	for _, preload := range preloads {
		tx = tx.Preload(preload)
	}

	var rows []T
	if err := tx.Order(idOrder).Limit(2).Find(&rows).Error; err != nil {
		return nil, translate(err)
	}
	switch len(rows) {
	case 0:
		return nil, ErrNotFound
	case 1:
		return &rows[0], nil
	default:
		return nil, fmt.Errorf("lookup matched more than one row")
	}
}
