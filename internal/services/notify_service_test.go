package services

import (
	"context"
	"testing"
	"time"

	"github.com/Ligawa2547/CARRIBBEAN-CRUISES--sub001/internal/models"
	"gorm.io/gorm"
)

func seedApplicationAt(t *testing.T, db *gorm.DB, jobID uint, email string, at time.Time) {
	t.Helper()
	app := &models.Application{
		JobID:     jobID,
		FullName:  "Applicant " + email,
		Email:     email,
		Phone:     "+254700000020",
		Status:    models.StatusPending,
		CreatedAt: at,
	}
	if err := db.Create(app).Error; err != nil {
		t.Fatalf("seed application: %v", err)
	}
}

func TestResendAllDedupesByEmailMostRecentWins(t *testing.T) {
	db := newTestDB(t)
	job1 := seedJob(t, db, "Boatswain")
	job2 := seedJob(t, db, "Radio Officer")

	now := time.Now()
	// a@x.com applied twice; the job1 application is the most recent one
	seedApplicationAt(t, db, job1.ID, "a@x.com", now)
	seedApplicationAt(t, db, job2.ID, "a@x.com", now.Add(-time.Hour))
	seedApplicationAt(t, db, job1.ID, "b@x.com", now.Add(-2*time.Hour))

	sender := &fakeSender{}
	svc := NewNotifyService(db, sender)

	summary, err := svc.ResendAll(context.Background())
	if err != nil {
		t.Fatalf("ResendAll: %v", err)
	}
	if summary.Total != 2 || summary.Sent != 2 || summary.Failed != 0 {
		t.Fatalf("summary = %+v, want total=2 sent=2 failed=0", summary)
	}

	byAddress := make(map[string]sentMail)
	for _, m := range sender.confirmations {
		byAddress[m.to] = m
	}
	if len(byAddress) != 2 {
		t.Fatalf("emailed %d unique recipients, want 2", len(byAddress))
	}
	if got := byAddress["a@x.com"].title; got != "Boatswain" {
		t.Errorf("a@x.com got title %q, want the most recent application's %q", got, "Boatswain")
	}
}

func TestResendAllPartialFailureContinues(t *testing.T) {
	db := newTestDB(t)
	job := seedJob(t, db, "Steward")

	now := time.Now()
	seedApplicationAt(t, db, job.ID, "ok@x.com", now)
	seedApplicationAt(t, db, job.ID, "broken@x.com", now.Add(-time.Minute))
	seedApplicationAt(t, db, job.ID, "also-ok@x.com", now.Add(-2*time.Minute))

	sender := &fakeSender{failFor: map[string]bool{"broken@x.com": true}}
	svc := NewNotifyService(db, sender)

	summary, err := svc.ResendAll(context.Background())
	if err != nil {
		t.Fatalf("ResendAll: %v", err)
	}
	if summary.Total != 3 || summary.Sent != 2 || summary.Failed != 1 {
		t.Fatalf("summary = %+v, want total=3 sent=2 failed=1", summary)
	}

	var failed *sentMail
	for _, r := range summary.Results {
		if !r.Success {
			if r.Email != "broken@x.com" || r.Error == "" {
				t.Errorf("failed result = %+v, want broken@x.com with error detail", r)
			}
			failed = &sentMail{to: r.Email}
		}
	}
	if failed == nil {
		t.Fatal("no failed result recorded")
	}
}

func TestResendAllFallsBackToGenericTitle(t *testing.T) {
	db := newTestDB(t)
	seedApplicationAt(t, db, 777, "orphan@x.com", time.Now())

	sender := &fakeSender{}
	svc := NewNotifyService(db, sender)

	if _, err := svc.ResendAll(context.Background()); err != nil {
		t.Fatalf("ResendAll: %v", err)
	}
	if len(sender.confirmations) != 1 {
		t.Fatalf("got %d emails, want 1", len(sender.confirmations))
	}
	if got := sender.confirmations[0].title; got != BulkPlaceholderTitle {
		t.Errorf("title = %q, want %q", got, BulkPlaceholderTitle)
	}
}

func TestResendAllEmptyCollection(t *testing.T) {
	db := newTestDB(t)
	svc := NewNotifyService(db, &fakeSender{})

	summary, err := svc.ResendAll(context.Background())
	if err != nil {
		t.Fatalf("ResendAll: %v", err)
	}
	if summary.Total != 0 || len(summary.Results) != 0 {
		t.Errorf("summary = %+v, want empty", summary)
	}
}
