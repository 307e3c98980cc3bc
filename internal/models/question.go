package models

import (
	"time"

	"gorm.io/datatypes"
)

// Question is the read-only reference data each assessment is built from.
// Text is stored per language; Channels lists the market segments the
// question counts toward.
type Question struct {
	ID          string                      `gorm:"size:36;primaryKey" json:"id"`
	TextTR      string                      `gorm:"type:text;not null" json:"text_tr"`
	TextEN      string                      `gorm:"type:text;not null" json:"text_en"`
	Category    string                      `gorm:"size:50;not null;index" json:"category"`
	Channels    datatypes.JSONSlice[string] `json:"channels"`
	IsFreeTrial bool                        `gorm:"default:false;index" json:"is_free_trial"`
	OrderNum    int                         `gorm:"not null" json:"order_num"`
	// no gorm default: with one, a false value is omitted from the
	// insert and silently stored as true
	IsActive    bool                        `gorm:"not null" json:"is_active"`
	CreatedAt   time.Time                   `json:"created_at"`
	UpdatedAt   time.Time                   `json:"updated_at"`
}

const (
	CategoryStrategy  = "strategy"
	CategoryTech      = "tech"
	CategoryMarketing = "marketing"
	CategoryLogistics = "logistics"
	CategoryAnalytics = "analytics"

	ChannelEcommerce = "ecommerce"
	ChannelEExport   = "eexport"
	ChannelCombined  = "combined"
)

// Text returns the question text for the given language code, falling
// back to Turkish when the translation is missing.
func (q Question) Text(language string) string {
	if language == "en" && q.TextEN != "" {
		return q.TextEN
	}
	return q.TextTR
}

// InChannel reports whether the question belongs to the given channel tag.
func (q Question) InChannel(channel string) bool {
	for _, c := range q.Channels {
		if c == channel {
			return true
		}
	}
	return false
}
