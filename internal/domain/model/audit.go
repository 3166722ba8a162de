package model

import "time"

// AuditEntry records an operator action on orders or compositions.
type AuditEntry struct {
	ID         string                 `json:"id"`
	Timestamp  time.Time              `json:"timestamp"`
	Level      string                 `json:"level"`
	Message    string                 `json:"message"`
	RequestID  string                 `json:"request_id,omitempty"`
	SessionID  string                 `json:"session_id,omitempty"`
	OrderID    string                 `json:"order_id,omitempty"`
	VehicleID  string                 `json:"vehicle_id,omitempty"`
	ActionType string                 `json:"action_type"` // confirm, adjust_quantity, cancel, discard
	Error      string                 `json:"error,omitempty"`
	Fields     map[string]interface{} `json:"fields,omitempty"`
}

// WithField adds a field to the entry, initialising Fields if needed.
func (e *AuditEntry) WithField(key string, value interface{}) *AuditEntry {
	if e.Fields == nil {
		e.Fields = make(map[string]interface{})
	}
	e.Fields[key] = value
	return e
}

// AuditQuery filters audit entries.
type AuditQuery struct {
	OrderID    string
	SessionID  string
	ActionType string
	StartTime  *time.Time
	EndTime    *time.Time
	Limit      int
}
