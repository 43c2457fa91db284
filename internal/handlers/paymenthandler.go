package handlers

import (
	"net/http"

	"github.com/Ligawa2547/CARRIBBEAN-CRUISES--sub001/internal/dtos"
	"github.com/Ligawa2547/CARRIBBEAN-CRUISES--sub001/internal/payments"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PaymentHandler struct {
	Pesapal     *payments.Client
	CallbackURL string
}

func NewPaymentHandler(p *payments.Client, callbackURL string) *PaymentHandler {
	return &PaymentHandler{
		Pesapal:     p,
		CallbackURL: callbackURL,
	}
}

// Initiate is the POST /payments/initiate endpoint. It submits an order to
// PesaPal and hands back the hosted-page redirect URL.
func (h *PaymentHandler) Initiate(c *gin.Context) {
	var req dtos.PaymentInitiateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid JSON format: " + err.Error()})
		return
	}

	order := &payments.OrderRequest{
		ID:          uuid.NewString(),
		Currency:    req.Currency,
		Amount:      req.Amount,
		Description: req.Description,
		CallbackURL: h.CallbackURL,
		BillingAddress: payments.PayerDetails{
			EmailAddress: req.Email,
			PhoneNumber:  req.Phone,
			FirstName:    req.FirstName,
			LastName:     req.LastName,
		},
	}

	resp, err := h.Pesapal.SubmitOrder(c.Request.Context(), order)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"merchant_reference": order.ID,
			"order_tracking_id":  resp.OrderTrackingID,
			"redirect_url":       resp.RedirectURL,
		},
	})
}

// Verify is the POST /verify-payment endpoint, polled after the callback.
func (h *PaymentHandler) Verify(c *gin.Context) {
	var req dtos.PaymentVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid JSON format: " + err.Error()})
		return
	}

	status, err := h.Pesapal.GetTransactionStatus(c.Request.Context(), req.OrderTrackingID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"status":             status.Outcome(),
			"payment_method":     status.PaymentMethod,
			"amount":             status.Amount,
			"confirmation_code":  status.ConfirmationCode,
			"merchant_reference": status.MerchantReference,
		},
	})
}
