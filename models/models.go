package models

// All returns every model in dependency order, for migrations
func All() []interface{} {
	return []interface{}{
		&Career{},
		&Discipline{},
		&Professor{},
		&Subject{},
		&ProfessorSubject{},
		&Event{},
		&ProfessorEvent{},
		&Award{},
		&Publication{},
		&ProfessorPublication{},
		&EvaluationIndicator{},
		&Evaluation{},
		&User{},
		&RevokedToken{},
		&AuditLog{},
	}
}
