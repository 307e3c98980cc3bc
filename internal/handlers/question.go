package handlers

import (
	"net/http"

	"github.com/emrerecber/exportiq360/internal/models"
	"github.com/emrerecber/exportiq360/internal/services"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	questionService *services.QuestionService
	authService     *services.AuthService
}

func NewQuestionHandler(questionService *services.QuestionService, authService *services.AuthService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService, authService: authService}
}

// List godoc
// @Summary      List assessment questions
// @Description  Questions for the caller's package tier, in display order
// @Tags         questions
// @Produce      json
// @Security     BearerAuth
// @Param        package query string false "Override package type (admin only)"
// @Success      200 {array} Question
// @Failure      401 {object} ErrorResponse
// @Router       /api/v1/questions [get]
func (h *QuestionHandler) List(c *gin.Context) {
	user, err := h.authService.GetUser(c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
		return
	}

	packageType := user.Plan
	if override := c.Query("package"); override != "" && user.Role == models.RoleAdmin {
		packageType = override
	}

	questions, err := h.questionService.ListForPackage(packageType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"package_type": packageType,
		"questions":    questions,
		"count":        len(questions),
	})
}
