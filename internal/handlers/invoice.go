package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/emrerecber/exportiq360/internal/logger"
	"github.com/emrerecber/exportiq360/internal/models"
	"github.com/emrerecber/exportiq360/internal/parasut"
	"github.com/emrerecber/exportiq360/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type InvoiceHandler struct {
	db          *gorm.DB
	parasut     *parasut.Client
	authService *services.AuthService
	log         *logger.Logger
}

func NewInvoiceHandler(db *gorm.DB, client *parasut.Client, authService *services.AuthService, log *logger.Logger) *InvoiceHandler {
	return &InvoiceHandler{db: db, parasut: client, authService: authService, log: log}
}

// Create godoc
// @Summary      Create an e-invoice via Paraşüt
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body parasut.InvoiceInput true "Invoice details"
// @Success      200 {object} parasut.InvoiceResult
// @Failure      503 {object} ErrorResponse
// @Router       /api/v1/invoices [post]
func (h *InvoiceHandler) Create(c *gin.Context) {
	if !h.parasut.IsConfigured() {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "invoicing is not configured"})
		return
	}

	var input parasut.InvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result := h.parasut.CreateInvoice(c.Request.Context(), input)
	c.JSON(http.StatusOK, result)
}

// PaymentWebhookRequest is posted by the payment provider once a payment
// settles. The customer block mirrors what the provider collected at checkout.
type PaymentWebhookRequest struct {
	UserID       string               `json:"user_id" binding:"required"`
	PlanType     string               `json:"plan_type" binding:"required"`
	Amount       float64              `json:"amount" binding:"required"`
	Currency     string               `json:"currency"`
	Provider     string               `json:"provider"`
	PaymentID    string               `json:"payment_id" binding:"required"`
	Customer     parasut.CustomerInfo `json:"customer" binding:"required"`
	SendEmail    bool                 `json:"send_email"`
	DurationDays int                  `json:"duration_days"`
}

type PaymentWebhookResponse struct {
	Status       string                 `json:"status"`
	Subscription *models.Subscription   `json:"subscription"`
	Invoice      *parasut.InvoiceResult `json:"invoice,omitempty"`
}

// PaymentWebhook godoc
// @Summary      Payment confirmation webhook
// @Description  Activates the purchased plan and issues the e-invoice. Invoicing failures are reported in the body, the subscription itself is never rolled back.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        X-Webhook-Secret header string true "Shared webhook secret"
// @Param        request body PaymentWebhookRequest true "Payment notification"
// @Success      200 {object} PaymentWebhookResponse
// @Router       /webhook/payment [post]
func (h *InvoiceHandler) PaymentWebhook(c *gin.Context) {
	var req PaymentWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	duration := req.DurationDays
	if duration <= 0 {
		duration = 365
	}
	currency := req.Currency
	if currency == "" {
		currency = "TRY"
	}

	now := time.Now()
	sub := models.Subscription{
		UserID:          req.UserID,
		PlanType:        req.PlanType,
		Status:          models.SubscriptionStatusActive,
		Amount:          req.Amount,
		Currency:        currency,
		PaymentProvider: req.Provider,
		PaymentID:       req.PaymentID,
		StartDate:       now,
		EndDate:         now.AddDate(0, 0, duration),
	}
	if err := h.db.Create(&sub).Error; err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to record subscription"})
		return
	}

	if _, err := h.authService.UpdatePlan(req.UserID, req.PlanType, sub.StartDate, sub.EndDate); err != nil {
		h.log.Error("failed to update user plan", "user_id", req.UserID, "error", err)
	}

	resp := PaymentWebhookResponse{Status: "success", Subscription: &sub}

	if h.parasut.IsConfigured() {
		invoice := h.parasut.CreateInvoice(c.Request.Context(), parasut.InvoiceInput{
			Customer: req.Customer,
			Items: []parasut.InvoiceItem{{
				Description: fmt.Sprintf("ExportIQ360 %s plan subscription", req.PlanType),
				Quantity:    1,
				UnitPrice:   req.Amount,
				VATRate:     20,
			}},
			Currency: currency,
			Notes:    fmt.Sprintf("Payment reference: %s", req.PaymentID),
		})
		resp.Invoice = invoice

		if invoice.Success {
			updates := map[string]interface{}{
				"invoice_generated": true,
				"invoice_id":        invoice.InvoiceID,
				"invoice_url":       invoice.InvoiceURL,
			}
			if err := h.db.Model(&sub).Updates(updates).Error; err != nil {
				h.log.Error("failed to store invoice reference", "subscription_id", sub.ID, "error", err)
			}
			if req.SendEmail {
				if err := h.parasut.SendInvoiceEmail(c.Request.Context(), invoice.InvoiceID, req.Customer.Email); err != nil {
					h.log.Warn("invoice e-mail failed", "invoice_id", invoice.InvoiceID, "error", err)
				}
			}
		} else {
			h.log.Error("invoice creation failed", "user_id", req.UserID, "error", invoice.Error)
		}
	}

	c.JSON(http.StatusOK, resp)
}
