package services

import (
	"fmt"
	"testing"

	"github.com/emrerecber/exportiq360/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Question{},
		&models.Assessment{},
		&models.Response{},
		&models.Subscription{},
	))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func TestSaveBatchCreatesAssessment(t *testing.T) {
	svc := NewResponseService(testDB(t))

	saved, err := svc.SaveBatch("user-1", "assessment-1", models.PlanEcommerce, []ResponseInput{
		{QuestionID: "q1", Answer: 4},
		{QuestionID: "q2", Answer: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, saved)

	assessment, err := svc.GetAssessment("user-1", "assessment-1")
	require.NoError(t, err)
	assert.Equal(t, models.PlanEcommerce, assessment.PackageType)
	assert.Equal(t, 2, assessment.AnsweredQuestions)
	assert.True(t, assessment.IsCompleted)
	assert.Equal(t, 100.0, assessment.CompletionPercentage)
}

func TestSaveBatchLastWriteWins(t *testing.T) {
	svc := NewResponseService(testDB(t))

	_, err := svc.SaveBatch("user-1", "assessment-1", models.PlanEcommerce, []ResponseInput{
		{QuestionID: "q1", Answer: 2},
	})
	require.NoError(t, err)

	_, err = svc.SaveBatch("user-1", "assessment-1", models.PlanEcommerce, []ResponseInput{
		{QuestionID: "q1", Answer: 5},
	})
	require.NoError(t, err)

	responses, err := svc.GetResponses("user-1", "assessment-1")
	require.NoError(t, err)
	require.Len(t, responses, 1)
	assert.Equal(t, 5, responses[0].Answer)
}

func TestSaveBatchDuplicateQuestionInOneBatch(t *testing.T) {
	svc := NewResponseService(testDB(t))

	// one statement must never target the same question twice, Postgres
	// rejects that; the later answer wins
	saved, err := svc.SaveBatch("user-1", "assessment-1", models.PlanEcommerce, []ResponseInput{
		{QuestionID: "q1", Answer: 2},
		{QuestionID: "q2", Answer: 3},
		{QuestionID: "q1", Answer: 5},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, saved)

	responses, err := svc.GetResponses("user-1", "assessment-1")
	require.NoError(t, err)
	require.Len(t, responses, 2)
	assert.Equal(t, "q1", responses[0].QuestionID)
	assert.Equal(t, 5, responses[0].Answer)
}

func TestSaveBatchEmptyInput(t *testing.T) {
	svc := NewResponseService(testDB(t))

	_, err := svc.SaveBatch("user-1", "assessment-1", models.PlanEcommerce, nil)
	assert.Error(t, err)
}

func TestSaveBatchRejectsForeignAssessment(t *testing.T) {
	svc := NewResponseService(testDB(t))

	_, err := svc.SaveBatch("owner", "assessment-1", models.PlanEcommerce, []ResponseInput{
		{QuestionID: "q1", Answer: 3},
	})
	require.NoError(t, err)

	_, err = svc.SaveBatch("intruder", "assessment-1", models.PlanEcommerce, []ResponseInput{
		{QuestionID: "q2", Answer: 3},
	})
	assert.Error(t, err)
}

func TestGetResponsesScopedToUser(t *testing.T) {
	svc := NewResponseService(testDB(t))

	_, err := svc.SaveBatch("user-1", "assessment-1", models.PlanEcommerce, []ResponseInput{
		{QuestionID: "q1", Answer: 3},
	})
	require.NoError(t, err)

	responses, err := svc.GetResponses("someone-else", "assessment-1")
	require.NoError(t, err)
	assert.Empty(t, responses)
}

func TestGetAssessmentErrors(t *testing.T) {
	db := testDB(t)
	svc := NewResponseService(db)

	t.Run("missing assessment", func(t *testing.T) {
		_, err := svc.GetAssessment("user-1", "nope")
		assert.ErrorIs(t, err, ErrAssessmentNotFound)
	})

	t.Run("database failure is not reported as not-found", func(t *testing.T) {
		sqlDB, err := db.DB()
		require.NoError(t, err)
		require.NoError(t, sqlDB.Close())

		_, err = svc.GetAssessment("user-1", "assessment-1")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrAssessmentNotFound)
	})
}

func TestListAssessments(t *testing.T) {
	svc := NewResponseService(testDB(t))

	for _, id := range []string{"a1", "a2"} {
		_, err := svc.SaveBatch("user-1", id, models.PlanEExport, []ResponseInput{
			{QuestionID: "q1", Answer: 3},
		})
		require.NoError(t, err)
	}

	assessments, err := svc.ListAssessments("user-1")
	require.NoError(t, err)
	assert.Len(t, assessments, 2)
}

func TestSaveReportPersistsEverything(t *testing.T) {
	svc := NewResponseService(testDB(t))

	_, err := svc.SaveBatch("user-1", "assessment-1", models.PlanEcommerce, []ResponseInput{
		{QuestionID: "q1", Answer: 5},
	})
	require.NoError(t, err)

	report := &models.ComprehensiveReport{
		UserID:       "user-1",
		AssessmentID: "assessment-1",
		OverallScore: 100.0,
		CategoryScores: map[string]float64{
			"Strategy and Planning": 100.0,
		},
		QuestionAnalyses: []models.QuestionAnalysis{
			{QuestionID: "q1", UserAnswer: 5, AIComment: "excellent"},
		},
	}
	require.NoError(t, svc.SaveReport("assessment-1", report))

	assessment, err := svc.GetAssessment("user-1", "assessment-1")
	require.NoError(t, err)
	assert.True(t, assessment.ReportGenerated)
	require.NotNil(t, assessment.OverallScore)
	assert.Equal(t, 100.0, *assessment.OverallScore)
	assert.NotEmpty(t, assessment.ReportData)

	responses, err := svc.GetResponses("user-1", "assessment-1")
	require.NoError(t, err)
	require.Len(t, responses, 1)
	assert.Equal(t, "excellent", responses[0].AIComment)
}

func TestProgressGrowsWithNewQuestions(t *testing.T) {
	svc := NewResponseService(testDB(t))

	_, err := svc.SaveBatch("user-1", "assessment-1", models.PlanEcommerce, []ResponseInput{
		{QuestionID: "q1", Answer: 3},
		{QuestionID: "q2", Answer: 3},
	})
	require.NoError(t, err)

	// a second batch with new questions extends the total
	_, err = svc.SaveBatch("user-1", "assessment-1", models.PlanEcommerce, []ResponseInput{
		{QuestionID: "q3", Answer: 4},
	})
	require.NoError(t, err)

	assessment, err := svc.GetAssessment("user-1", "assessment-1")
	require.NoError(t, err)
	assert.Equal(t, 3, assessment.AnsweredQuestions)
	assert.Equal(t, 3, assessment.TotalQuestions)
}
