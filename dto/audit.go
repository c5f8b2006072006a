package dto

import (
	"encoding/json"
	"time"

	"sgac_app_go/models"
)

// AuditLogResponse is the read representation of an audit entry
type AuditLogResponse struct {
	ID           string          `json:"id"`
	CreatedAt    time.Time       `json:"createdAt"`
	UserID       *uint           `json:"userId"`
	Username     string          `json:"username"`
	ResourceType string          `json:"resourceType"`
	ResourceID   string          `json:"resourceId"`
	Action       string          `json:"action"`
	Description  string          `json:"description"`
	OldValues    json.RawMessage `json:"oldValues"`
	NewValues    json.RawMessage `json:"newValues"`
	// Fields whose value differs between oldValues and newValues
	ChangedFields []string `json:"changedFields"`
	IPAddress     string   `json:"ipAddress"`
}

func NewAuditLogResponse(m *models.AuditLog) AuditLogResponse {
	return AuditLogResponse{
		ID:            m.ID,
		CreatedAt:     m.CreatedAt,
		UserID:        m.UserID,
		Username:      m.Username,
		ResourceType:  m.ResourceType,
		ResourceID:    m.ResourceID,
		Action:        string(m.Action),
		Description:   m.Description,
		OldValues:     rawOrNull(m.OldValues),
		NewValues:     rawOrNull(m.NewValues),
		ChangedFields: changedFields(m),
		IPAddress:     m.IPAddress,
	}
}

func changedFields(m *models.AuditLog) []string {
	fields := []string{}
	for _, change := range m.Changes() {
		fields = append(fields, change.Field)
	}
	return fields
}

func rawOrNull(s string) json.RawMessage {
	if s == "" {
		return json.RawMessage("null")
	}
	return json.RawMessage(s)
}
