package models

import (
	"time"
)

// Application statuses, in the order an application normally moves through them.
const (
	StatusPending     = "pending"
	StatusReviewing   = "reviewing"
	StatusShortlisted = "shortlisted"
	StatusInterview   = "interview"
	StatusApproved    = "approved"
	StatusRejected    = "rejected"
)

// ValidStatus reports whether s is one of the known application statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusReviewing, StatusShortlisted, StatusInterview, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Contact message statuses. "new" until an admin marks it read.
const (
	ContactStatusNew  = "new"
	ContactStatusRead = "read"
)

type Job struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Title        string `gorm:"not null" json:"title"`
	Department   string `json:"department"`
	Description  string `gorm:"type:text" json:"description"`
	Requirements string `gorm:"type:text" json:"requirements"`
	SalaryRange  string `json:"salary_range"`
	Location     string `json:"location"`
}

type Application struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	// Foreign Key. The job row may have been removed since; lookups fall
	// back to a placeholder title instead of rejecting the application.
	JobID uint `gorm:"index" json:"job_id"`
	Job   Job  `json:"job,omitempty"`

	// Set when the applicant was signed in, empty for anonymous submissions
	UserID string `json:"user_id,omitempty"`

	FullName    string `gorm:"not null" json:"full_name"`
	Email       string `gorm:"not null;index" json:"email"`
	Phone       string `json:"phone"`
	CoverLetter string `gorm:"type:text" json:"cover_letter,omitempty"`
	ResumeURL   string `json:"resume_url,omitempty"`
	Status      string `gorm:"default:'pending'" json:"status"`
}

type ContactMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Name    string `gorm:"not null" json:"name"`
	Email   string `gorm:"not null" json:"email"`
	Subject string `gorm:"not null" json:"subject"`
	Message string `gorm:"type:text;not null" json:"message"`
	Status  string `gorm:"default:'new'" json:"status"`
}

type AdminUser struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
}
