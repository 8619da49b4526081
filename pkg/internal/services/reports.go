package services

import (
	"fmt"
	"time"

	"github.com/plumeworks/plume/pkg/internal/database"
	"github.com/plumeworks/plume/pkg/internal/models"
	"github.com/rs/zerolog/log"
)

// ListReports returns every report ever filed. Reports are append-only:
// nothing in this system mutates or deletes them.
func ListReports() ([]models.Report, error) {
	var reports []models.Report
	if err := database.C.Order("created_at ASC, id ASC").Find(&reports).Error; err != nil {
		return reports, fmt.Errorf("unable to list reports: %v", err)
	}
	return reports, nil
}

// CreateReport records a report against a user. Every report starts out
// pending; the later states belong to an external moderation process.
// Filing the same pair twice is permitted, deduplication is the concern of
// the reporting surface via HasReported.
func CreateReport(reporterID, reportedUserID, reason string) (models.Report, error) {
	report := models.Report{
		ID:             NewRecordID("report"),
		ReporterID:     reporterID,
		ReportedUserID: reportedUserID,
		Reason:         reason,
		Status:         models.ReportStatusPending,
		CreatedAt:      time.Now(),
	}
	if err := database.C.Create(&report).Error; err != nil {
		return report, fmt.Errorf("unable to create report: %v", err)
	}

	log.Debug().Str("reporter", reporterID).Str("target", reportedUserID).Msg("Recorded a user report.")
	return report, nil
}

// GetUserReports returns the reports filed against the given user.
func GetUserReports(userID string) ([]models.Report, error) {
	var reports []models.Report
	if err := database.C.
		Where("reported_user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&reports).Error; err != nil {
		return reports, fmt.Errorf("unable to list user reports: %v", err)
	}
	return reports, nil
}

// HasReported reports whether the reporter already filed against the
// target, which the surface uses to disable the terminal "Reported" state.
func HasReported(reporterID, reportedUserID string) (bool, error) {
	var count int64
	if err := database.C.Model(&models.Report{}).
		Where("reporter_id = ? AND reported_user_id = ?", reporterID, reportedUserID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("unable to check report: %v", err)
	}
	return count > 0, nil
}
