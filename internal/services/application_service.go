package services

import (
	"context"
	"errors"
	"log"

	"github.com/Ligawa2547/CARRIBBEAN-CRUISES--sub001/internal/dtos"
	"github.com/Ligawa2547/CARRIBBEAN-CRUISES--sub001/internal/mailer"
	"github.com/Ligawa2547/CARRIBBEAN-CRUISES--sub001/internal/models"
	"gorm.io/gorm"
)

type ApplicationService struct {
	DB     *gorm.DB
	Mailer mailer.Sender
}

func NewApplicationService(db *gorm.DB, m mailer.Sender) *ApplicationService {
	return &ApplicationService{
		DB:     db,
		Mailer: m,
	}
}

// Submit records a job application and sends a best-effort confirmation
// email. The row is the source of truth: once the insert succeeds the
// submission has succeeded, whatever happens to the email afterwards.
func (s *ApplicationService) Submit(ctx context.Context, req *dtos.ApplicationRequest) (*models.Application, error) {
	app := &models.Application{
		JobID:    req.JobID,
		UserID:   req.UserID,
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Status:   models.StatusPending,
	}
	if req.CoverLetter != nil {
		app.CoverLetter = *req.CoverLetter
	}
	if req.ResumeURL != nil {
		app.ResumeURL = *req.ResumeURL
	}

	if err := s.DB.Create(app).Error; err != nil {
		return nil, wrapDBError(err)
	}

	// From here on the application is submitted. The title lookup and the
	// confirmation email are both best-effort.
	title := s.jobTitle(app.JobID)
	if err := s.Mailer.SendConfirmation(ctx, app.Email, app.FullName, title); err != nil {
		log.Printf("⚠️ Confirmation email to %s failed (application %d saved): %v", app.Email, app.ID, err)
	}

	return app, nil
}

// ListAll returns every application for the admin dashboard, newest first.
func (s *ApplicationService) ListAll() ([]models.Application, error) {
	var apps []models.Application
	if err := s.DB.Preload("Job").Order("created_at DESC").Find(&apps).Error; err != nil {
		return nil, wrapDBError(err)
	}
	return apps, nil
}

// jobTitle resolves the posting title for email copy. Lookup failures are
// swallowed; the applicant just gets the placeholder wording.
func (s *ApplicationService) jobTitle(jobID uint) string {
	var job models.Job
	err := s.DB.Select("id, title").First(&job, jobID).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("⚠️ Job title lookup for job %d failed: %v", jobID, err)
		}
		return PlaceholderTitle
	}
	return job.Title
}
