package models

import "time"

type User struct {
	ID                 string     `gorm:"size:36;primaryKey" json:"id"`
	Email              string     `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash       string     `gorm:"size:255;not null" json:"-"`
	Name               string     `gorm:"size:255;not null" json:"name"`
	CompanyName        string     `gorm:"size:255" json:"company_name,omitempty"`
	Phone              string     `gorm:"size:50" json:"phone,omitempty"`
	Role               string     `gorm:"size:20;not null;default:'free_trial'" json:"role"`
	Plan               string     `gorm:"size:20;not null;default:'free_trial'" json:"plan"`
	SubscriptionStatus string     `gorm:"size:20;default:'trial'" json:"subscription_status"`
	SubscriptionStart  *time.Time `json:"subscription_start,omitempty"`
	SubscriptionEnd    *time.Time `json:"subscription_end,omitempty"`
	TrialCompleted     bool       `gorm:"default:false" json:"trial_completed"`
	Language           string     `gorm:"size:5;default:'tr'" json:"language"`
	IsActive           bool       `gorm:"default:true" json:"is_active"`
	LastLogin          *time.Time `json:"last_login,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

const (
	RoleFreeTrial = "free_trial"
	RoleUser      = "user"
	RoleAdmin     = "admin"

	PlanFreeTrial = "free_trial"
	PlanEcommerce = "ecommerce"
	PlanEExport   = "eexport"
	PlanCombined  = "combined"

	SubscriptionStatusActive    = "active"
	SubscriptionStatusExpired   = "expired"
	SubscriptionStatusCancelled = "cancelled"
	SubscriptionStatusTrial     = "trial"
)
