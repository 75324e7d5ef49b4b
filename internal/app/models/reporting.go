package models

// Notification is a message addressed to a user
type Notification struct {
	NotificationID int64     `json:"NotificationID"`
	UserID         int64     `json:"UserID"`
	Type           string    `json:"Type"`
	Title          string    `json:"Title"`
	Message        string    `json:"Message"`
	IsRead         Flag      `json:"IsRead"`
	CreatedAt      Timestamp `json:"CreatedAt"`
}

// AuditLogEntry is a change recorded by the database
type AuditLogEntry struct {
	AuditID         *int64    `json:"AuditID,omitempty"`
	TableName       string    `json:"TableName"`
	ActionType      string    `json:"ActionType"`
	RecordID        *int64    `json:"RecordID"`
	ChangeTimestamp Timestamp `json:"ChangeTimestamp"`
	ChangeDetails   *string   `json:"ChangeDetails"`
	ChangedBy       *int64    `json:"ChangedBy,omitempty"`
}

// DashboardStat is one row of dashboard statistics. Its columns depend on
// the role of the requesting user.
type DashboardStat map[string]any
