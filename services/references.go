package services

import (
	"sgac_app_go/validation"

	"gorm.io/gorm"
)

// checkReference records an invalid-pk error when id does not name a row of model
func checkReference(db *gorm.DB, errs validation.Errors, field string, model interface{}, id *uint) error {
	if id == nil {
		return nil
	}
	var count int64
	if err := db.Model(model).Where("id = ?", *id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		errs.Add(field, validation.InvalidPKMessage(*id))
	}
	return nil
}

// uniqueIDs drops repeated ids, keeping first occurrences in order
func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
