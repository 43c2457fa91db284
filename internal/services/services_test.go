package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/Ligawa2547/CARRIBBEAN-CRUISES--sub001/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// One shared in-memory database per test, so every pooled connection
	// sees the same tables.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.Job{}, &models.Application{}, &models.ContactMessage{}, &models.AdminUser{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

type sentMail struct {
	to, name, title, status string
}

// fakeSender records sends and can be told to fail.
type fakeSender struct {
	failConfirm bool
	failStatus  bool
	failFor     map[string]bool // per-address confirmation failures

	confirmations []sentMail
	statusUpdates []sentMail
}

func (f *fakeSender) SendConfirmation(_ context.Context, to, fullName, jobTitle string) error {
	if f.failConfirm || f.failFor[to] {
		return fmt.Errorf("smtp unreachable for %s", to)
	}
	f.confirmations = append(f.confirmations, sentMail{to: to, name: fullName, title: jobTitle})
	return nil
}

func (f *fakeSender) SendStatusUpdate(_ context.Context, to, fullName, jobTitle, status string) error {
	if f.failStatus {
		return fmt.Errorf("smtp unreachable for %s", to)
	}
	f.statusUpdates = append(f.statusUpdates, sentMail{to: to, name: fullName, title: jobTitle, status: status})
	return nil
}

func seedJob(t *testing.T, db *gorm.DB, title string) *models.Job {
	t.Helper()
	job := &models.Job{
		Title:       title,
		Department:  "Deck",
		Description: "Keep the ship running",
		Location:    "At sea",
	}
	if err := db.Create(job).Error; err != nil {
		t.Fatalf("seed job: %v", err)
	}
	return job
}
