package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/emrerecber/exportiq360/internal/logger"
	"github.com/emrerecber/exportiq360/internal/models"
	"github.com/emrerecber/exportiq360/internal/services"
	"github.com/emrerecber/exportiq360/internal/ws"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportService   *services.ReportService
	responseService *services.ResponseService
	questionService *services.QuestionService
	hub             *ws.Hub
	log             *logger.Logger
}

func NewReportHandler(
	reportService *services.ReportService,
	responseService *services.ResponseService,
	questionService *services.QuestionService,
	hub *ws.Hub,
	log *logger.Logger,
) *ReportHandler {
	return &ReportHandler{
		reportService:   reportService,
		responseService: responseService,
		questionService: questionService,
		hub:             hub,
		log:             log,
	}
}

type GenerateReportRequest struct {
	AssessmentID string            `json:"assessment_id" binding:"required"`
	Language     string            `json:"language" example:"tr"`
	Questions    []models.Question `json:"questions,omitempty"`
}

type ReportResponse struct {
	Status string               `json:"status" example:"success"`
	Report *ComprehensiveReport `json:"report"`
}

// Generate godoc
// @Summary      Generate the AI-powered comprehensive report
// @Description  Scores the stored answers, generates narrative analysis and persists the report. Progress is streamed on /ws/reports/{assessment_id}.
// @Tags         reports
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body GenerateReportRequest true "Report request"
// @Success      200 {object} ReportResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/reports/generate [post]
func (h *ReportHandler) Generate(c *gin.Context) {
	userID := c.GetString("user_id")

	var req GenerateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	assessment, err := h.responseService.GetAssessment(userID, req.AssessmentID)
	if err != nil {
		if errors.Is(err, services.ErrAssessmentNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	responses, err := h.responseService.GetResponses(userID, req.AssessmentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	language := req.Language
	if language == "" {
		language = assessment.Language
	}

	questions := req.Questions
	if len(questions) == 0 {
		questions, err = h.questionService.ListAll()
		if err != nil {
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
			return
		}
	}

	h.log.Info("generating report",
		"user_id", userID,
		"assessment_id", req.AssessmentID,
		"responses", len(responses),
		"language", language)

	report, err := h.reportService.Generate(c.Request.Context(), services.ReportInput{
		UserID:       userID,
		AssessmentID: req.AssessmentID,
		Responses:    responses,
		Questions:    questions,
		PackageType:  assessment.PackageType,
		Language:     language,
		OnProgress: func(stage string, done, total int) {
			h.hub.Broadcast(req.AssessmentID, ws.Message{
				Type: "report_progress",
				Data: gin.H{"stage": stage, "done": done, "total": total},
			})
		},
	})
	if err != nil {
		if errors.Is(err, services.ErrNoResponses) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "no responses found for this assessment, complete the assessment first"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.responseService.SaveReport(req.AssessmentID, report); err != nil {
		h.log.Error("failed to persist report", "assessment_id", req.AssessmentID, "error", err)
	}

	h.hub.Broadcast(req.AssessmentID, ws.Message{
		Type: "report_ready",
		Data: gin.H{"assessment_id": req.AssessmentID},
	})

	c.JSON(http.StatusOK, ReportResponse{Status: "success", Report: report})
}

// Get godoc
// @Summary      Get a previously generated report
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        assessment_id path string true "Assessment ID"
// @Success      200 {object} ReportResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/reports/{assessment_id} [get]
func (h *ReportHandler) Get(c *gin.Context) {
	userID := c.GetString("user_id")
	assessmentID := c.Param("assessment_id")

	assessment, err := h.responseService.GetAssessment(userID, assessmentID)
	if err != nil {
		if errors.Is(err, services.ErrAssessmentNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	if !assessment.ReportGenerated || len(assessment.ReportData) == 0 {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "report not generated yet"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"report": json.RawMessage(assessment.ReportData),
	})
}
