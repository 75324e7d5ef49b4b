package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/akademik/akademik/internal/app/models"
	"github.com/akademik/akademik/internal/app/models/dto"
)

// DefinePolicy sets the absence thresholds of an offering. Nil thresholds are
// sent as null.
func (c *Client) DefinePolicy(ctx context.Context, offeringID int64, maxAbsence float64, warning, autoFail *float64) error {
	req := dto.AttendancePolicyRequest{
		OfferingID:        dto.NewParam(offeringID),
		MaxAbsencePercent: dto.NewParam(maxAbsence),
	}
	if warning != nil {
		req.WarningThresholdPercent = dto.NewParam(*warning)
	}
	if autoFail != nil {
		req.AutoFailPercent = dto.NewParam(*autoFail)
	}
	return c.fetch(ctx, http.MethodPost, "/attendance/policy", nil, req, "", nil)
}

// RecordAttendance stores one student's status in a session
func (c *Client) RecordAttendance(ctx context.Context, sessionID, studentID int64, status models.AttendanceStatus, recordedBy int64) error {
	return c.fetch(ctx, http.MethodPost, "/attendance/record", nil, dto.RecordAttendanceRequest{
		SessionID:  dto.NewParam(sessionID),
		StudentID:  dto.NewParam(studentID),
		Status:     dto.NewParam(string(status)),
		RecordedBy: dto.NewParam(recordedBy),
	}, "", nil)
}

// AttendanceSummary lists per-student attendance totals of an offering
func (c *Client) AttendanceSummary(ctx context.Context, offeringID int64) ([]models.AttendanceSummary, error) {
	summary := []models.AttendanceSummary{}
	err := c.fetch(ctx, http.MethodGet, "/attendance/summary/"+id(offeringID), nil, nil, "summary", &summary)
	return summary, err
}

// AttendanceDetail lists a student's status in every session of an offering
func (c *Client) AttendanceDetail(ctx context.Context, studentID, offeringID int64) ([]models.AttendanceDetail, error) {
	detail := []models.AttendanceDetail{}
	path := fmt.Sprintf("/attendance/detail/%d/%d", studentID, offeringID)
	err := c.fetch(ctx, http.MethodGet, path, nil, nil, "detail", &detail)
	return detail, err
}

// Sessions lists the class sessions of an offering
func (c *Client) Sessions(ctx context.Context, offeringID int64) ([]models.ClassSession, error) {
	sessions := []models.ClassSession{}
	err := c.fetch(ctx, http.MethodGet, "/attendance/sessions/"+id(offeringID), nil, nil, "sessions", &sessions)
	return sessions, err
}

// SessionAttendance returns the roster of a session
func (c *Client) SessionAttendance(ctx context.Context, sessionID int64) ([]models.SessionAttendance, error) {
	students := []models.SessionAttendance{}
	err := c.fetch(ctx, http.MethodGet, "/attendance/session/"+id(sessionID), nil, nil, "students", &students)
	return students, err
}

type bulkAttendance struct {
	SessionID      int64                   `json:"sessionId"`
	AttendanceData []models.AttendanceMark `json:"attendanceData"`
	RecordedBy     int64                   `json:"recordedBy"`
}

// BulkRecord stores the statuses of a whole session and returns how many were
// recorded
func (c *Client) BulkRecord(ctx context.Context, sessionID int64, marks []models.AttendanceMark, recordedBy int64) (int64, error) {
	if marks == nil {
		marks = []models.AttendanceMark{}
	}
	var recorded json.Number
	err := c.fetch(ctx, http.MethodPost, "/attendance/bulk-record", nil, bulkAttendance{
		SessionID:      sessionID,
		AttendanceData: marks,
		RecordedBy:     recordedBy,
	}, "recordedCount", &recorded)
	if err != nil || recorded == "" {
		return 0, err
	}
	return recorded.Int64()
}
