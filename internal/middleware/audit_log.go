// Package middleware provides audit logging utilities.
package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/dispatch-service/internal/domain/model"
)

// Audit field names promoted from the fields map onto the entry itself.
const (
	AuditFieldSession = "session_id"
	AuditFieldOrder   = "order_id"
	AuditFieldVehicle = "vehicle_id"
)

// Auditor accepts audit entries for asynchronous storage. Record must not block.
type Auditor interface {
	Record(entry *model.AuditEntry) bool
}

// AuditLog records an operator action for audit purposes.
// This should be used for state-changing actions: confirming, adjusting or
// cancelling orders and discarding compositions.
func AuditLog(auditor Auditor, c *gin.Context, actionType string, message string, fields map[string]interface{}) {
	if auditor == nil {
		return
	}
	auditor.Record(newAuditEntry(c, "info", actionType, message, fields))
}

// AuditLogError records a failed operator action for audit purposes.
func AuditLogError(auditor Auditor, c *gin.Context, actionType string, message string, err error, fields map[string]interface{}) {
	if auditor == nil {
		return
	}
	entry := newAuditEntry(c, "error", actionType, message, fields)
	if err != nil {
		entry.Error = err.Error()
	}
	auditor.Record(entry)
}

func newAuditEntry(c *gin.Context, level, actionType, message string, fields map[string]interface{}) *model.AuditEntry {
	entry := &model.AuditEntry{
		Timestamp:  time.Now(),
		Level:      level,
		Message:    message,
		RequestID:  GetRequestID(c),
		ActionType: actionType,
		Fields: map[string]interface{}{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"ip":     c.ClientIP(),
		},
	}

	for k, v := range fields {
		s, _ := v.(string)
		switch k {
		case AuditFieldSession:
			entry.SessionID = s
		case AuditFieldOrder:
			entry.OrderID = s
		case AuditFieldVehicle:
			entry.VehicleID = s
		default:
			entry.Fields[k] = v
		}
	}
	return entry
}
