package services

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/emrerecber/exportiq360/internal/logger"
	"github.com/emrerecber/exportiq360/internal/models"

	"golang.org/x/sync/errgroup"
)

// ErrNoResponses is returned when a report is requested for an empty
// response set. It is the only error this pipeline surfaces; every other
// failure degrades to fallback content.
var ErrNoResponses = errors.New("no responses to report on")

// ProgressFunc receives pipeline progress events, used to stream status
// to connected clients during generation.
type ProgressFunc func(stage string, done, total int)

// ReportOptions tunes the narrative generation calls.
type ReportOptions struct {
	CommentModel  string
	InsightsModel string
	Concurrency   int
}

// ReportService runs the full pipeline: aggregate scores, generate
// narrative, assemble one immutable report.
type ReportService struct {
	scoring   *ScoringService
	generator TextGenerator
	fallback  *FallbackProvider
	log       *logger.Logger
	opts      ReportOptions
}

func NewReportService(scoring *ScoringService, generator TextGenerator, fallback *FallbackProvider, log *logger.Logger, opts ReportOptions) *ReportService {
	if opts.Concurrency <= 0 {
		opts.Concurrency = 4
	}
	return &ReportService{
		scoring:   scoring,
		generator: generator,
		fallback:  fallback,
		log:       log,
		opts:      opts,
	}
}

// ReportInput is the full context for one generation request. Responses
// keep their caller-supplied order; Questions are reference data only.
type ReportInput struct {
	UserID       string
	AssessmentID string
	Responses    []models.Response
	Questions    []models.Question
	PackageType  string
	Language     string
	OnProgress   ProgressFunc
}

// Generate produces a ComprehensiveReport from the input response set.
// Returns ErrNoResponses for an empty set; never fails on external-call
// errors.
func (s *ReportService) Generate(ctx context.Context, in ReportInput) (*models.ComprehensiveReport, error) {
	if len(in.Responses) == 0 {
		return nil, ErrNoResponses
	}

	questionMap := questionsByID(in.Questions)

	overall := s.scoring.OverallScore(in.Responses)
	channelScores := s.scoring.ChannelScores(in.Responses, in.Questions, in.Language)
	categoryScores := s.scoring.CategoryScores(in.Responses, in.Questions, in.Language)

	analyses := s.questionAnalyses(ctx, in, questionMap)

	s.progress(in, "insights", 0, 1)
	insights := s.strategicInsights(ctx, in, questionMap, channelScores, categoryScores)
	s.progress(in, "insights", 1, 1)

	return &models.ComprehensiveReport{
		UserID:           in.UserID,
		AssessmentID:     in.AssessmentID,
		PackageType:      in.PackageType,
		OverallScore:     overall,
		ChannelScores:    channelScores,
		CategoryScores:   categoryScores,
		QuestionAnalyses: analyses,
		Strengths:        insights.Strengths,
		Weaknesses:       insights.Weaknesses,
		Recommendations:  insights.Recommendations,
		ActionPlan:       insights.ActionPlan,
		GeneratedAt:      time.Now(),
	}, nil
}

// questionAnalyses generates one short comment per response. Calls run
// concurrently up to the configured limit; results land in an indexed
// slice so output order always follows input order, not completion
// order. Responses whose question is missing from the reference set are
// skipped.
func (s *ReportService) questionAnalyses(ctx context.Context, in ReportInput, questionMap map[string]models.Question) []models.QuestionAnalysis {
	type pair struct {
		response models.Response
		question models.Question
	}

	pairs := make([]pair, 0, len(in.Responses))
	for _, resp := range in.Responses {
		question, ok := questionMap[resp.QuestionID]
		if !ok {
			continue
		}
		pairs = append(pairs, pair{response: resp, question: question})
	}

	results := make([]models.QuestionAnalysis, len(pairs))
	var done atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Concurrency)

	for i, p := range pairs {
		g.Go(func() error {
			questionText := p.question.Text(in.Language)
			results[i] = models.QuestionAnalysis{
				QuestionID:   p.response.QuestionID,
				QuestionText: questionText,
				UserAnswer:   p.response.Answer,
				AIComment:    s.commentFor(gctx, questionText, p.response.Answer, p.question.Category, in.Language),
				Category:     CategoryName(p.question.Category, in.Language),
			}
			s.progress(in, "question_analysis", int(done.Add(1)), len(pairs))
			return nil
		})
	}
	// workers never return errors, failures degrade to fallback comments
	_ = g.Wait()

	return results
}

func (s *ReportService) commentFor(ctx context.Context, questionText string, answer int, category, language string) string {
	comment, err := s.generator.Generate(ctx,
		commentSystemPrompt(language),
		commentPrompt(questionText, answer, category, language),
		GenerateOptions{Model: s.opts.CommentModel, Temperature: 0.7, MaxTokens: 200},
	)
	if err != nil {
		s.log.Debug("question comment fell back to static content", "error", err)
		return s.fallback.Comment(answer, language)
	}
	return comment
}

func (s *ReportService) strategicInsights(
	ctx context.Context,
	in ReportInput,
	questionMap map[string]models.Question,
	channelScores []models.ChannelScore,
	categoryScores map[string]float64,
) models.StrategicInsights {
	numericContext := insightsContext(in.Responses, questionMap, channelScores, categoryScores, in.Language)

	text, err := s.generator.Generate(ctx,
		insightsSystemPrompt(in.Language),
		insightsPrompt(numericContext, in.Language),
		GenerateOptions{Model: s.opts.InsightsModel, Temperature: 0.7, MaxTokens: 1500},
	)
	if err != nil {
		s.log.Warn("strategic insights fell back to static content", "error", err)
		return s.fallback.Insights(categoryScores, in.Language)
	}

	insights, complete := ParseInsights(text)
	if !complete {
		s.log.Warn("strategic insights parsed incompletely",
			"assessment_id", in.AssessmentID,
			"strengths", len(insights.Strengths),
			"weaknesses", len(insights.Weaknesses),
			"recommendations", len(insights.Recommendations))
	}
	return insights
}

func (s *ReportService) progress(in ReportInput, stage string, done, total int) {
	if in.OnProgress != nil {
		in.OnProgress(stage, done, total)
	}
}
