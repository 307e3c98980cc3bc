package handlers

import "github.com/emrerecber/exportiq360/internal/models"

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

type MessageResponse struct {
	Message string `json:"message" example:"operation successful"`
}

// Type aliases so swag can resolve models in annotations.
type User = models.User
type Question = models.Question
type Assessment = models.Assessment
type ComprehensiveReport = models.ComprehensiveReport
