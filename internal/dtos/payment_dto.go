package dtos

type PaymentInitiateRequest struct {
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Currency    string  `json:"currency" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Email       string  `json:"email" binding:"required,email"`

	// Optional Fields
	Phone     string `json:"phone"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type PaymentVerifyRequest struct {
	OrderTrackingID string `json:"order_tracking_id" binding:"required"`
}
