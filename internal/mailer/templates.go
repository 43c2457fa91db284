package mailer

import (
	"fmt"

	"github.com/Ligawa2547/CARRIBBEAN-CRUISES--sub001/internal/models"
)

func confirmationBody(fullName, jobTitle string) string {
	return fmt.Sprintf(`<p>Dear %s,</p>
<p>Thank you for applying for <strong>%s</strong> with Caribbean Cruises.</p>
<p>Our recruitment team reviews every application and will reach out with the
next steps. You do not need to do anything further at this stage.</p>
<p>Fair winds,<br>The Caribbean Cruises Careers Team</p>`, fullName, jobTitle)
}

func statusBody(fullName, jobTitle, status string) string {
	return fmt.Sprintf(`<p>Dear %s,</p>
<p>There is an update on your application for <strong>%s</strong>:</p>
<p>%s</p>
<p>Fair winds,<br>The Caribbean Cruises Careers Team</p>`,
		fullName, jobTitle, statusMessage(status, jobTitle))
}

// statusMessage picks the candidate-facing wording for each pipeline stage.
func statusMessage(status, jobTitle string) string {
	switch status {
	case models.StatusReviewing:
		return "Your application is now being reviewed by our recruitment team."
	case models.StatusShortlisted:
		return fmt.Sprintf("Congratulations! You have been shortlisted for %s.", jobTitle)
	case models.StatusInterview:
		return "You have been selected for an interview. Our team will contact you shortly to schedule it."
	case models.StatusApproved:
		return fmt.Sprintf("Congratulations! Your application for %s has been approved. Welcome aboard!", jobTitle)
	case models.StatusRejected:
		return "After careful consideration, we will not be moving forward with your application at this time. We encourage you to apply for future openings."
	default:
		return fmt.Sprintf("Your application status is now: %s.", status)
	}
}
