package dtos

// ContactRequest carries the public contact form. Field-level length rules
// live in the contact service so it can report every failing field at once.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}
