package services

import (
	"errors"
	"net/mail"
	"strings"

	"github.com/Ligawa2547/CARRIBBEAN-CRUISES--sub001/internal/dtos"
	"github.com/Ligawa2547/CARRIBBEAN-CRUISES--sub001/internal/models"
	"gorm.io/gorm"
)

var ErrContactNotFound = errors.New("contact message not found")

type ContactService struct {
	DB *gorm.DB
}

func NewContactService(db *gorm.DB) *ContactService {
	return &ContactService{DB: db}
}

// Submit validates the contact form and stores the message with status "new".
// No email goes out on this path.
func (s *ContactService) Submit(req *dtos.ContactRequest) (*models.ContactMessage, error) {
	if verr := validateContact(req); verr != nil {
		return nil, verr
	}

	msg := &models.ContactMessage{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Subject: strings.TrimSpace(req.Subject),
		Message: strings.TrimSpace(req.Message),
		Status:  models.ContactStatusNew,
	}
	if err := s.DB.Create(msg).Error; err != nil {
		return nil, wrapDBError(err)
	}
	return msg, nil
}

func (s *ContactService) List() ([]models.ContactMessage, error) {
	var msgs []models.ContactMessage
	if err := s.DB.Order("created_at DESC").Find(&msgs).Error; err != nil {
		return nil, wrapDBError(err)
	}
	return msgs, nil
}

// MarkRead flips a message from "new" to "read".
func (s *ContactService) MarkRead(id uint) (*models.ContactMessage, error) {
	var msg models.ContactMessage
	if err := s.DB.First(&msg, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContactNotFound
		}
		return nil, wrapDBError(err)
	}

	if msg.Status != models.ContactStatusRead {
		if err := s.DB.Model(&msg).Update("status", models.ContactStatusRead).Error; err != nil {
			return nil, wrapDBError(err)
		}
		msg.Status = models.ContactStatusRead
	}
	return &msg, nil
}

// validateContact collects every failing field so the form can show them all
// at once. Lengths are checked on the trimmed values.
func validateContact(req *dtos.ContactRequest) *ValidationError {
	var fields []FieldError

	if len(strings.TrimSpace(req.Name)) < 2 {
		fields = append(fields, FieldError{Field: "name", Message: "name must be at least 2 characters"})
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(req.Email)); err != nil {
		fields = append(fields, FieldError{Field: "email", Message: "a valid email address is required"})
	}
	if len(strings.TrimSpace(req.Subject)) < 3 {
		fields = append(fields, FieldError{Field: "subject", Message: "subject must be at least 3 characters"})
	}
	if len(strings.TrimSpace(req.Message)) < 10 {
		fields = append(fields, FieldError{Field: "message", Message: "message must be at least 10 characters"})
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
