package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Ligawa2547/CARRIBBEAN-CRUISES--sub001/internal/models"
	"github.com/Ligawa2547/CARRIBBEAN-CRUISES--sub001/internal/services"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type stubSender struct {
	fail bool
}

func (s *stubSender) SendConfirmation(context.Context, string, string, string) error {
	if s.fail {
		return fmt.Errorf("provider down")
	}
	return nil
}

func (s *stubSender) SendStatusUpdate(context.Context, string, string, string, string) error {
	if s.fail {
		return fmt.Errorf("provider down")
	}
	return nil
}

func newTestRouter(t *testing.T, sender *stubSender) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.Job{}, &models.Application{}, &models.ContactMessage{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	appHandler := NewApplicationHandler(
		services.NewApplicationService(db, sender),
		services.NewStatusService(db, sender),
		services.NewNotifyService(db, sender),
	)
	contactHandler := NewContactHandler(services.NewContactService(db))

	r := gin.New()
	r.POST("/applications", appHandler.Submit)
	r.PATCH("/admin/applications/:id/status", appHandler.UpdateStatus)
	r.POST("/contact", contactHandler.Submit)
	return r, db
}

func postJSON(t *testing.T, r *gin.Engine, method, path string, payload any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	buf, _ := json.Marshal(payload)
	req := httptest.NewRequest(method, path, bytes.NewReader(buf))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v (%s)", err, w.Body.String())
	}
	return w, body
}

func TestSubmitApplicationReturns201WhenEmailProviderIsDown(t *testing.T) {
	r, db := newTestRouter(t, &stubSender{fail: true})

	w, body := postJSON(t, r, http.MethodPost, "/applications", map[string]any{
		"job_id":    1,
		"full_name": "Riley Anchor",
		"email":     "riley@example.com",
		"phone":     "+254700000030",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (%s)", w.Code, w.Body.String())
	}
	if body["success"] != true {
		t.Errorf("success = %v, want true", body["success"])
	}

	var count int64
	db.Model(&models.Application{}).Count(&count)
	if count != 1 {
		t.Errorf("stored %d applications, want 1", count)
	}
}

func TestContactValidationEnvelope(t *testing.T) {
	r, _ := newTestRouter(t, &stubSender{})

	w, body := postJSON(t, r, http.MethodPost, "/contact", map[string]any{
		"name":    "A",
		"email":   "valid@example.com",
		"subject": "Hi",
		"message": "short",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	fields, ok := body["fields"].([]any)
	if !ok || len(fields) != 3 {
		t.Errorf("fields = %v, want 3 entries", body["fields"])
	}
}

func TestStatusUpdateSurfacesEmailFailureButPersists(t *testing.T) {
	sender := &stubSender{}
	r, db := newTestRouter(t, sender)

	app := models.Application{JobID: 1, FullName: "Riley", Email: "riley@example.com", Status: models.StatusPending}
	if err := db.Create(&app).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	sender.fail = true
	w, body := postJSON(t, r, http.MethodPatch,
		fmt.Sprintf("/admin/applications/%d/status", app.ID),
		map[string]any{"status": models.StatusApproved, "send_email": true})

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500 (%s)", w.Code, w.Body.String())
	}
	if body["success"] != false {
		t.Errorf("success = %v, want false", body["success"])
	}

	var stored models.Application
	db.First(&stored, app.ID)
	if stored.Status != models.StatusApproved {
		t.Errorf("stored status = %q, want %q despite email failure", stored.Status, models.StatusApproved)
	}
}
