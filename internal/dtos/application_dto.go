package dtos

type ApplicationRequest struct {
	JobID    uint   `json:"job_id" binding:"required"`
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required"`

	// Optional Fields
	UserID      string  `json:"user_id"`
	CoverLetter *string `json:"cover_letter"`
	ResumeURL   *string `json:"resume_url"`
}

type StatusUpdateRequest struct {
	Status    string `json:"status" binding:"required"`
	SendEmail bool   `json:"send_email"`
}
