package handlers

import (
	"net/http"

	"github.com/emrerecber/exportiq360/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type StatsHandler struct {
	db *gorm.DB
}

func NewStatsHandler(db *gorm.DB) *StatsHandler {
	return &StatsHandler{db: db}
}

type StatsResponse struct {
	TotalUsers           int64            `json:"total_users"`
	TotalAssessments     int64            `json:"total_assessments"`
	CompletedAssessments int64            `json:"completed_assessments"`
	ReportsGenerated     int64            `json:"reports_generated"`
	TotalResponses       int64            `json:"total_responses"`
	ActiveSubscriptions  int64            `json:"active_subscriptions"`
	UsersByPlan          map[string]int64 `json:"users_by_plan"`
}

// Get godoc
// @Summary      Platform usage statistics
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} StatsResponse
// @Failure      403 {object} ErrorResponse
// @Router       /api/v1/admin/stats [get]
func (h *StatsHandler) Get(c *gin.Context) {
	var stats StatsResponse

	h.db.Model(&models.User{}).Count(&stats.TotalUsers)
	h.db.Model(&models.Assessment{}).Count(&stats.TotalAssessments)
	h.db.Model(&models.Assessment{}).Where("is_completed = ?", true).Count(&stats.CompletedAssessments)
	h.db.Model(&models.Assessment{}).Where("report_generated = ?", true).Count(&stats.ReportsGenerated)
	h.db.Model(&models.Response{}).Count(&stats.TotalResponses)
	h.db.Model(&models.Subscription{}).Where("status = ?", models.SubscriptionStatusActive).Count(&stats.ActiveSubscriptions)

	stats.UsersByPlan = make(map[string]int64)
	rows, err := h.db.Model(&models.User{}).
		Select("plan, count(*) as total").
		Group("plan").
		Rows()
	if err == nil {
		defer rows.Close()
		for rows.Next() {
			var plan string
			var total int64
			if err := rows.Scan(&plan, &total); err == nil {
				stats.UsersByPlan[plan] = total
			}
		}
	}

	c.JSON(http.StatusOK, stats)
}
