package services

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"time"

	"sgac_app_go/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AttachEvidence stores fileHeader as the evidence of publication, replacing any previous one
func AttachEvidence(ctx context.Context, db *gorm.DB, publication *models.Publication, fileHeader *multipart.FileHeader, maxBytes int64) error {
	mimeType, err := ValidateEvidenceUpload(fileHeader, maxBytes)
	if err != nil {
		return err
	}

	src, err := fileHeader.Open()
	if err != nil {
		return fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	key := EvidenceKey(publication.ID, fileHeader.Filename)
	if err := Storage.Put(ctx, key, src, fileHeader.Size, mimeType); err != nil {
		return err
	}

	previousKey := publication.EvidenceKey
	now := time.Now()
	publication.EvidenceKey = key
	publication.EvidenceName = fileHeader.Filename
	publication.EvidenceSize = fileHeader.Size
	publication.EvidenceMimeType = mimeType
	publication.EvidenceUploadedAt = &now

	if err := db.Save(publication).Error; err != nil {
		deleteEvidenceFile(ctx, key)
		return translate(err)
	}

	if previousKey != "" {
		deleteEvidenceFile(ctx, previousKey)
	}
	return nil
}

// OpenEvidence streams the evidence of publication
func OpenEvidence(ctx context.Context, publication *models.Publication) (io.ReadCloser, string, error) {
	if !publication.HasEvidence() {
		return nil, "", ErrNotFound
	}
	reader, err := Storage.Open(ctx, publication.EvidenceKey)
	if err != nil {
		return nil, "", err
	}
	return reader, publication.EvidenceMimeType, nil
}

// RemoveEvidence clears the evidence of publication and deletes the stored file
func RemoveEvidence(ctx context.Context, db *gorm.DB, publication *models.Publication) error {
	if !publication.HasEvidence() {
		return ErrNotFound
	}

	key := publication.EvidenceKey
	publication.EvidenceKey = ""
	publication.EvidenceName = ""
	publication.EvidenceSize = 0
	publication.EvidenceMimeType = ""
	publication.EvidenceUploadedAt = nil
	if err := db.Save(publication).Error; err != nil {
		return translate(err)
	}

	deleteEvidenceFile(ctx, key)
	return nil
}

// deleteEvidenceFile removes a stored file; failures only leave an orphan behind
func deleteEvidenceFile(ctx context.Context, key string) {
	if Storage == nil || key == "" {
		return
	}
	if err := Storage.Remove(ctx, key); err != nil {
		zap.L().Warn("failed to delete evidence file", zap.String("key", key), zap.Error(err))
	}
}

// DeletePublicationWithEvidence deletes publication and then its stored evidence
func DeletePublicationWithEvidence(ctx context.Context, db *gorm.DB, publication *models.Publication) error {
	key := publication.EvidenceKey
	if err := DeletePublication(db, publication); err != nil {
		return err
	}
	deleteEvidenceFile(ctx, key)
	return nil
}
