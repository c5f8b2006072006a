package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"

	"sgac_app_go/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AuditContext contains contextual information for audit logging
type AuditContext struct {
	UserID    *uint
	Username  string
	IPAddress string
	UserAgent string
}

// inFlight counts audit writes and change publishes that have not finished
var inFlight sync.WaitGroup

// WaitForAuditWrites blocks until every pending audit write and change event is done, or ctx ends.
// Call it on shutdown before closing the database and the publisher.
func WaitForAuditWrites(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		inFlight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// LogAuditEvent creates a new audit log entry asynchronously
func LogAuditEvent(
	db *gorm.DB,
	ctx AuditContext,
	action models.AuditAction,
	resourceType string,
	resourceID string,
	description string,
	oldValues interface{},
	newValues interface{},
) {
	// Encode before leaving the request goroutine; the values may be reused by the caller
	oldJSON := encodeAuditValues(oldValues)
	newJSON := encodeAuditValues(newValues)

	inFlight.Add(1)
	go func() {
		defer inFlight.Done()
		auditLog := models.AuditLog{
			UserID:       ctx.UserID,
			Username:     ctx.Username,
			ResourceType: resourceType,
			ResourceID:   resourceID,
			Action:       action,
			Description:  description,
			OldValues:    oldJSON,
			NewValues:    newJSON,
			IPAddress:    ctx.IPAddress,
			UserAgent:    ctx.UserAgent,
		}

		if err := db.Create(&auditLog).Error; err != nil {
			zap.L().Error("failed to create audit log",
				zap.String("resource_type", resourceType),
				zap.String("resource_id", resourceID),
				zap.Error(err))
		}
	}()
}

func encodeAuditValues(v interface{}) string {
	if v == nil {
		return ""
	}
	bytes, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(bytes)
}

// RecordChange audits a write and announces it on the change publisher
func RecordChange(
	db *gorm.DB,
	ctx AuditContext,
	action models.AuditAction,
	resourceType string,
	resourceID uint,
	oldValues interface{},
	newValues interface{},
) {
	id := strconv.FormatUint(uint64(resourceID), 10)
	description := fmt.Sprintf("%s %s %s", action, resourceType, id)
	LogAuditEvent(db, ctx, action, resourceType, id, description, oldValues, newValues)

	if Changes == nil {
		return
	}
	event := ChangeEvent{
		Resource:   resourceType,
		Action:     action,
		ResourceID: resourceID,
		UserID:     ctx.UserID,
		Data:       newValues,
		OccurredAt: time.Now().UTC(),
	}
	inFlight.Add(1)
	go func() {
		defer inFlight.Done()
		pubCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := Changes.Publish(pubCtx, event); err != nil {
			zap.L().Warn("failed to publish change event",
				zap.String("routing_key", event.RoutingKey()),
				zap.Error(err))
		}
	}()
}

// AuditLogFilters contains filter options for audit log queries
type AuditLogFilters struct {
	ResourceType string
	ResourceID   string
	Action       string
}

// AuditLogsQuery applies filters to the audit log table
func AuditLogsQuery(db *gorm.DB, filters AuditLogFilters) *gorm.DB {
	query := db.Model(&models.AuditLog{})
	if filters.ResourceType != "" {
		query = query.Where("resource_type = ?", filters.ResourceType)
	}
	if filters.ResourceID != "" {
		query = query.Where("resource_id = ?", filters.ResourceID)
	}
	if filters.Action != "" {
		query = query.Where("action = ?", filters.Action)
	}
	return query
}

// ListAuditLogs returns audit entries, newest first
func ListAuditLogs(db *gorm.DB, filters AuditLogFilters, p Pagination) ([]models.AuditLog, *PageInfo, error) {
	query := AuditLogsQuery(db, filters).Order("created_at DESC")
	return FindPage[models.AuditLog](query, p)
}
