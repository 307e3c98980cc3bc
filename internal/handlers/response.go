package handlers

import (
	"net/http"

	"github.com/emrerecber/exportiq360/internal/services"

	"github.com/gin-gonic/gin"
)

type ResponseHandler struct {
	responseService *services.ResponseService
}

func NewResponseHandler(responseService *services.ResponseService) *ResponseHandler {
	return &ResponseHandler{responseService: responseService}
}

type SaveResponsesRequest struct {
	AssessmentID string                   `json:"assessment_id" binding:"required"`
	PackageType  string                   `json:"package_type" binding:"required"`
	Responses    []services.ResponseInput `json:"responses" binding:"required,min=1,dive"`
}

type SaveResponsesResponse struct {
	Status     string `json:"status" example:"success"`
	SavedCount int    `json:"saved_count" example:"20"`
	TotalCount int    `json:"total_count" example:"20"`
}

// Save godoc
// @Summary      Save assessment answers
// @Description  Upserts a batch of answers; re-answering a question overwrites the previous answer
// @Tags         responses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body SaveResponsesRequest true "Answer batch"
// @Success      200 {object} SaveResponsesResponse
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/responses [post]
func (h *ResponseHandler) Save(c *gin.Context) {
	userID := c.GetString("user_id")

	var req SaveResponsesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	saved, err := h.responseService.SaveBatch(userID, req.AssessmentID, req.PackageType, req.Responses)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, SaveResponsesResponse{
		Status:     "success",
		SavedCount: saved,
		TotalCount: len(req.Responses),
	})
}

// Get godoc
// @Summary      Get saved answers for one assessment
// @Tags         responses
// @Produce      json
// @Security     BearerAuth
// @Param        assessment_id path string true "Assessment ID"
// @Success      200 {object} map[string]interface{}
// @Failure      401 {object} ErrorResponse
// @Router       /api/v1/responses/{assessment_id} [get]
func (h *ResponseHandler) Get(c *gin.Context) {
	userID := c.GetString("user_id")
	assessmentID := c.Param("assessment_id")

	responses, err := h.responseService.GetResponses(userID, assessmentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":        "success",
		"assessment_id": assessmentID,
		"responses":     responses,
		"count":         len(responses),
	})
}

// ListAssessments godoc
// @Summary      List the caller's assessments
// @Tags         responses
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} Assessment
// @Failure      401 {object} ErrorResponse
// @Router       /api/v1/assessments [get]
func (h *ResponseHandler) ListAssessments(c *gin.Context) {
	userID := c.GetString("user_id")

	assessments, err := h.responseService.ListAssessments(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, assessments)
}
