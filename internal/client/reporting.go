package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/akademik/akademik/internal/app/models"
)

// AuditFilter narrows an audit log search. Empty fields are not sent.
type AuditFilter struct {
	DateFrom   string
	DateTo     string
	ActionType string
	TableName  string
}

func (f AuditFilter) values() url.Values {
	query := url.Values{}
	set := func(key, value string) {
		if value != "" {
			query.Set(key, value)
		}
	}
	set("dateFrom", f.DateFrom)
	set("dateTo", f.DateTo)
	set("actionType", f.ActionType)
	set("tableName", f.TableName)
	return query
}

// DashboardStats returns the role dependent dashboard rows of a user
func (c *Client) DashboardStats(ctx context.Context, userID int64) ([]models.DashboardStat, error) {
	stats := []models.DashboardStat{}
	err := c.fetch(ctx, http.MethodGet, "/reporting/dashboard/"+id(userID), nil, nil, "stats", &stats)
	return stats, err
}

// Notifications lists a user's notifications
func (c *Client) Notifications(ctx context.Context, userID int64) ([]models.Notification, error) {
	notifications := []models.Notification{}
	err := c.fetch(ctx, http.MethodGet, "/reporting/notifications/"+id(userID), nil, nil, "notifications", &notifications)
	return notifications, err
}

// MarkNotificationRead marks a notification as read
func (c *Client) MarkNotificationRead(ctx context.Context, notificationID int64) error {
	path := fmt.Sprintf("/reporting/notifications/%d/read", notificationID)
	return c.fetch(ctx, http.MethodPut, path, nil, nil, "", nil)
}

// SearchAuditLog searches the audit log
func (c *Client) SearchAuditLog(ctx context.Context, filter AuditFilter) ([]models.AuditLogEntry, error) {
	logs := []models.AuditLogEntry{}
	err := c.fetch(ctx, http.MethodGet, "/reporting/audit", filter.values(), nil, "logs", &logs)
	return logs, err
}
