package services

import (
	"context"
	"log"

	"github.com/Ligawa2547/CARRIBBEAN-CRUISES--sub001/internal/mailer"
	"github.com/Ligawa2547/CARRIBBEAN-CRUISES--sub001/internal/models"
	"gorm.io/gorm"
)

// BulkPlaceholderTitle is used in the resend-all flow when an application
// references a job that no longer exists.
const BulkPlaceholderTitle = "a position"

// BulkSummary aggregates a resend-all run. Partial failure is expected:
// failed recipients are listed, successful ones are not rolled back.
type BulkSummary struct {
	Total   int                 `json:"total"`
	Sent    int                 `json:"sent"`
	Failed  int                 `json:"failed"`
	Results []mailer.SendResult `json:"results"`
}

type NotifyService struct {
	DB     *gorm.DB
	Mailer mailer.Sender
}

func NewNotifyService(db *gorm.DB, m mailer.Sender) *NotifyService {
	return &NotifyService{
		DB:     db,
		Mailer: m,
	}
}

// ResendAll sends one confirmation email per unique applicant address.
// Applications are scanned newest first and the first occurrence of each
// email wins, so the most recent application decides the name and job title.
func (s *NotifyService) ResendAll(ctx context.Context) (*BulkSummary, error) {
	var apps []models.Application
	err := s.DB.Model(&models.Application{}).
		Select("email, full_name, job_id").
		Order("created_at DESC").
		Find(&apps).Error
	if err != nil {
		return nil, wrapDBError(err)
	}

	// One batch lookup for every referenced job title
	seenJob := make(map[uint]bool)
	var jobIDs []uint
	for _, a := range apps {
		if !seenJob[a.JobID] {
			seenJob[a.JobID] = true
			jobIDs = append(jobIDs, a.JobID)
		}
	}
	titles, err := titlesFor(s.DB, jobIDs)
	if err != nil {
		return nil, err
	}

	// Deduplicate by email, first occurrence wins
	seen := make(map[string]bool)
	var recipients []mailer.Recipient
	for _, a := range apps {
		if seen[a.Email] {
			continue
		}
		seen[a.Email] = true

		title, ok := titles[a.JobID]
		if !ok {
			title = BulkPlaceholderTitle
		}
		recipients = append(recipients, mailer.Recipient{
			Email:    a.Email,
			FullName: a.FullName,
			JobTitle: title,
		})
	}

	log.Printf("📨 Bulk resend: %d applications, %d unique recipients", len(apps), len(recipients))

	summary := &BulkSummary{
		Total:   len(recipients),
		Results: mailer.SendBulkConfirmations(ctx, s.Mailer, recipients),
	}
	for _, r := range summary.Results {
		if r.Success {
			summary.Sent++
		} else {
			summary.Failed++
		}
	}

	log.Printf("📨 Bulk resend done: %d sent, %d failed", summary.Sent, summary.Failed)
	return summary, nil
}
