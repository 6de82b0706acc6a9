package model

import "time"

type AuditLogListRequest struct {
	Limit   int     `json:"limit" validate:"gte=0,lte=1000"`
	Offset  int     `json:"offset" validate:"gte=0"`
	Pattern *string `json:"pattern,omitempty"`
}

type AuditLogEntry struct {
	ID         string    `json:"id"`
	Pattern    string    `json:"pattern"`
	Username   string    `json:"username,omitempty"`
	Status     string    `json:"status"`
	Message    string    `json:"message,omitempty"`
	DurationMs int64     `json:"durationMs"`
	CreatedAt  time.Time `json:"createdAt"`
}

type AuditLogPage struct {
	Data       []AuditLogEntry `json:"data"`
	TotalCount int             `json:"totalCount"`
}
