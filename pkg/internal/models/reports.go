package models

import (
	"fmt"
	"time"
)

const (
	ReportStatusPending  = "pending"
	ReportStatusReviewed = "reviewed"
	ReportStatusResolved = "resolved"
)

// Report reason categories offered by the report dialog. The stored reason
// is free text; these only feed FormatReportReason.
var ReportReasons = []string{
	"Spam or misleading content",
	"Harassment or bullying",
	"Hate speech or discrimination",
	"Violence or dangerous content",
	"Impersonation",
	"Other",
}

type Report struct {
	ID             string `json:"id" gorm:"primaryKey"`
	ReporterID     string `json:"reporter_id" gorm:"index"`
	ReportedUserID string `json:"reported_user_id" gorm:"index"`
	Reason         string `json:"reason"`

	// Only pending is ever written here; the other states belong to an
	// external moderation process.
	Status string `json:"status"`

	CreatedAt time.Time `json:"created_at"`
}

// FormatReportReason composes the canonical reason string the report
// dialog submits.
func FormatReportReason(category, detail string) string {
	return fmt.Sprintf("%s: %s", category, detail)
}
