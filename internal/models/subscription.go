package models

import "time"

// Subscription tracks a purchased plan and the invoice issued for it.
type Subscription struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	UserID           string    `gorm:"size:36;not null;index" json:"user_id"`
	PlanType         string    `gorm:"size:20;not null" json:"plan_type"`
	Status           string    `gorm:"size:20;default:'active'" json:"status"`
	Amount           float64   `gorm:"not null" json:"amount"`
	Currency         string    `gorm:"size:3;default:'TRY'" json:"currency"`
	PaymentProvider  string    `gorm:"size:50" json:"payment_provider,omitempty"`
	PaymentID        string    `gorm:"size:255" json:"payment_id,omitempty"`
	StartDate        time.Time `json:"start_date"`
	EndDate          time.Time `json:"end_date"`
	AutoRenew        bool      `gorm:"default:false" json:"auto_renew"`
	InvoiceGenerated bool      `gorm:"default:false" json:"invoice_generated"`
	InvoiceID        string    `gorm:"size:255" json:"invoice_id,omitempty"`
	InvoiceURL       string    `gorm:"size:500" json:"invoice_url,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
