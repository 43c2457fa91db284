package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/Ligawa2547/CARRIBBEAN-CRUISES--sub001/internal/mailer"
	"github.com/Ligawa2547/CARRIBBEAN-CRUISES--sub001/internal/models"
	"gorm.io/gorm"
)

var ErrApplicationNotFound = errors.New("application not found")

// StatusResult reports what a status update actually did. The status write
// is authoritative: when a requested email fails, Changed/EmailSent tell the
// caller the new status is persisted even though Update returned an error.
type StatusResult struct {
	Application *models.Application `json:"application"`
	Changed     bool                `json:"changed"`
	EmailSent   bool                `json:"email_sent"`
	Message     string              `json:"message"`
}

type StatusService struct {
	DB     *gorm.DB
	Mailer mailer.Sender
}

func NewStatusService(db *gorm.DB, m mailer.Sender) *StatusService {
	return &StatusService{
		DB:     db,
		Mailer: m,
	}
}

// Update moves an application to newStatus and, when requested, notifies the
// applicant. Applying the current status again is a no-op.
func (s *StatusService) Update(ctx context.Context, applicationID uint, newStatus string, sendEmail bool) (*StatusResult, error) {
	if !models.ValidStatus(newStatus) {
		return nil, &ValidationError{Fields: []FieldError{
			{Field: "status", Message: fmt.Sprintf("unknown status %q", newStatus)},
		}}
	}

	var app models.Application
	if err := s.DB.First(&app, applicationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, wrapDBError(err)
	}

	result := &StatusResult{Application: &app}

	if app.Status == newStatus && !sendEmail {
		result.Message = fmt.Sprintf("status already set to %q", newStatus)
		return result, nil
	}

	// The write happens regardless of whether an email was requested, and
	// is never rolled back if the email later fails.
	if app.Status != newStatus {
		if err := s.DB.Model(&app).Update("status", newStatus).Error; err != nil {
			return nil, wrapDBError(err)
		}
		app.Status = newStatus
		result.Changed = true
		result.Message = fmt.Sprintf("status updated to %q", newStatus)
		log.Printf("⚡ Application %d status -> %s", app.ID, newStatus)
	} else {
		result.Message = fmt.Sprintf("status already set to %q", newStatus)
	}

	if sendEmail {
		title := s.jobTitle(app.JobID)
		if err := s.Mailer.SendStatusUpdate(ctx, app.Email, app.FullName, title, newStatus); err != nil {
			// The caller asked for this email, so the failure is theirs
			// to see. The status change above still stands.
			return result, &NotificationError{Err: err}
		}
		result.EmailSent = true
	}

	return result, nil
}

func (s *StatusService) jobTitle(jobID uint) string {
	var job models.Job
	if err := s.DB.Select("id, title").First(&job, jobID).Error; err != nil {
		return PlaceholderTitle
	}
	return job.Title
}
