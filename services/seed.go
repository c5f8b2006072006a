package services

import (
	"os"

	"sgac_app_go/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedIndicators creates the evaluation indicators that do not exist yet.
// Running it again is a no-op.
func SeedIndicators(db *gorm.DB) (int, error) {
	created := 0
	for _, name := range models.IndicatorNames {
		var count int64
		if err := db.Model(&models.EvaluationIndicator{}).Where("name = ?", name).Count(&count).Error; err != nil {
			return created, err
		}
		if count > 0 {
			continue
		}
		if err := db.Create(&models.EvaluationIndicator{Name: name}).Error; err != nil {
			return created, err
		}
		created++
	}

	if created > 0 {
		zap.L().Info("[SEED] Created evaluation indicators", zap.Int("count", created))
	}
	return created, nil
}

// SeedAdminFromEnv creates a staff account from ADMIN_USERNAME and ADMIN_PASSWORD.
// Only runs if both are set and no user with that username exists yet.
func SeedAdminFromEnv(db *gorm.DB) error {
	username := os.Getenv("ADMIN_USERNAME")
	password := os.Getenv("ADMIN_PASSWORD")

	if username == "" || password == "" {
		return nil
	}

	var count int64
	if err := db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		zap.L().Info("[SEED] Admin user already exists, skipping seed", zap.String("username", username))
		return nil
	}

	if _, err := CreateUser(db, username, os.Getenv("ADMIN_EMAIL"), password, true); err != nil {
		return err
	}

	zap.L().Info("[SEED] Created admin user", zap.String("username", username))
	return nil
}
