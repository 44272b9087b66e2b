package services

import (
	"dbb/internal/models"
	"dbb/internal/structures"
	"dbb/internal/testutil"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quizTestConfig() *structures.Config {
	return &structures.Config{
		Quiz: structures.QuizConfig{
			MaxQuestions: 10,
			HistoryLimit: 100,
			TopN:         10,
		},
	}
}

func newTestQuiz(now time.Time) *QuizService {
	return &QuizService{
		store:  newTestStore(),
		config: quizTestConfig(),
		logger: &testutil.MockLogger{},
		now:    fixedClock(now),
	}
}

func testQuestion(text string) *models.Question {
	return &models.Question{
		Question:   text,
		Options:    []string{"a", "b", "c", "d"},
		Correct:    1,
		Difficulty: "easy",
		Category:   "old_testament",
	}
}

func TestQuizService_SessionLifecycle(t *testing.T) {
	qs := newTestQuiz(time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC))

	require.True(t, qs.StartSession(1, 3, testQuestion("q1"), "easy", "", false))

	session := qs.Session(1)
	require.NotNil(t, session)
	assert.Equal(t, 3, session.QuestionIndex)
	assert.Equal(t, 0, session.Score)
	assert.Equal(t, "easy", session.Difficulty)
	assert.Equal(t, "2025-05-01T10:00:00Z", session.StartedAt)

	require.True(t, qs.UpdateSession(1, 1, 1))
	require.True(t, qs.AdvanceSession(1, 7, testQuestion("q2")))

	session = qs.Session(1)
	assert.Equal(t, 7, session.QuestionIndex)
	assert.Equal(t, "q2", session.QuestionData.Question)
	assert.Equal(t, 1, session.Score)
	assert.Equal(t, 1, session.Total)

	ended := qs.EndSession(1)
	require.NotNil(t, ended)
	assert.Equal(t, 1, ended.Score)
	assert.Nil(t, qs.Session(1))
}

func TestQuizService_StartSession_RefusesSecondWithoutForce(t *testing.T) {
	qs := newTestQuiz(time.Now())

	require.True(t, qs.StartSession(1, 0, testQuestion("first"), "", "", false))
	assert.False(t, qs.StartSession(1, 1, testQuestion("second"), "", "", false))
	assert.Equal(t, "first", qs.Session(1).QuestionData.Question)

	require.True(t, qs.StartSession(1, 1, testQuestion("second"), "", "", true))
	assert.Equal(t, "second", qs.Session(1).QuestionData.Question)
	assert.Equal(t, 0, qs.Session(1).Score, "force resets the score")
}

func TestQuizService_SessionsAreIsolatedPerUser(t *testing.T) {
	qs := newTestQuiz(time.Now())

	require.True(t, qs.StartSession(1, 0, testQuestion("u1"), "", "", false))
	require.True(t, qs.StartSession(2, 0, testQuestion("u2"), "", "", false))

	qs.EndSession(1)
	assert.Nil(t, qs.Session(1))
	assert.NotNil(t, qs.Session(2))
}

func TestQuizService_UpdateWithoutSession(t *testing.T) {
	qs := newTestQuiz(time.Now())
	assert.False(t, qs.UpdateSession(1, 1, 1))
	assert.False(t, qs.AdvanceSession(1, 0, testQuestion("x")))
	assert.Nil(t, qs.EndSession(1))
}

func TestQuizService_RecordHistory_CapsEntries(t *testing.T) {
	base := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	qs := newTestQuiz(base)

	for i := 0; i < 105; i++ {
		qs.now = fixedClock(base.Add(time.Duration(i) * time.Minute))
		session := &models.QuizSession{Score: i, Total: 10}
		require.True(t, qs.RecordHistory(1, session))
	}

	entries := qs.History(1)
	require.Len(t, entries, 100)
	// oldest five evicted from the front
	assert.Equal(t, 5, entries[0].Score)
	assert.Equal(t, 104, entries[99].Score)
}

func TestQuizService_RecordHistory_Accuracy(t *testing.T) {
	now := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	qs := newTestQuiz(now)

	require.True(t, qs.RecordHistory(7, &models.QuizSession{Score: 3, Total: 4, Difficulty: "hard"}))

	entries := qs.History(7)
	require.Len(t, entries, 1)
	assert.Equal(t, fmt.Sprintf("7_%d", now.Unix()), entries[0].ID)
	assert.InDelta(t, 75.0, entries[0].Accuracy, 0.0001)
	assert.Equal(t, "hard", entries[0].Difficulty)
}

func TestQuizService_UpdateScore_Accumulates(t *testing.T) {
	qs := newTestQuiz(time.Now())

	require.True(t, qs.UpdateScore(1, 3, 5, nil))
	require.True(t, qs.UpdateScore(1, 2, 5, nil))

	score := qs.UserScore(1)
	assert.Equal(t, 10, score.TotalAnswered)
	assert.Equal(t, 5, score.TotalCorrect)
	assert.Equal(t, 0, score.QuizzesCompleted, "only completed sessions count")
}

func TestQuizService_UpdateScore_CompletedSession(t *testing.T) {
	qs := newTestQuiz(time.Now())

	require.True(t, qs.UpdateScore(1, 8, 10, &SessionTotals{Score: 8, Total: 10}))

	score := qs.UserScore(1)
	assert.Equal(t, 1, score.QuizzesCompleted)
	assert.Equal(t, 8, score.BestSessionScore)
	assert.Equal(t, 10, score.BestSessionTotal)
	assert.InDelta(t, 80.0, score.BestScore, 0.0001)
}

func TestQuizService_UpdateScore_BestSessionTwoKeyComparison(t *testing.T) {
	qs := newTestQuiz(time.Now())

	require.True(t, qs.UpdateScore(1, 4, 5, &SessionTotals{Score: 4, Total: 5}))
	// same accuracy over a longer quiz takes the slot
	require.True(t, qs.UpdateScore(1, 8, 10, &SessionTotals{Score: 8, Total: 10}))

	score := qs.UserScore(1)
	assert.Equal(t, 8, score.BestSessionScore)
	assert.Equal(t, 10, score.BestSessionTotal)

	// lower accuracy never takes it
	require.True(t, qs.UpdateScore(1, 5, 10, &SessionTotals{Score: 5, Total: 10}))
	score = qs.UserScore(1)
	assert.Equal(t, 8, score.BestSessionScore)
}

func TestQuizService_UpdateScore_BestScoreNeverDrops(t *testing.T) {
	qs := newTestQuiz(time.Now())

	require.True(t, qs.UpdateScore(1, 10, 10, &SessionTotals{Score: 10, Total: 10}))
	require.True(t, qs.UpdateScore(1, 0, 10, &SessionTotals{Score: 0, Total: 10}))

	assert.InDelta(t, 100.0, qs.UserScore(1).BestScore, 0.0001)
}

func TestAccuracyPercent_ZeroTotal(t *testing.T) {
	assert.Equal(t, 0.0, accuracyPercent(5, 0))
	assert.Equal(t, 0.0, accuracyPercent(0, 0))
}

func TestQuizService_TouchUser(t *testing.T) {
	qs := newTestQuiz(time.Now())

	require.True(t, qs.TouchUser(1, "alice", "Alice"))
	score := qs.UserScore(1)
	assert.Equal(t, "alice", score.Username)
	assert.Equal(t, "Alice", score.FirstName)
	assert.Equal(t, 0, score.TotalAnswered)

	// unchanged identity skips the write
	require.True(t, qs.TouchUser(1, "alice", "Alice"))
}

func TestQuizService_UserScore_ReturnsCopy(t *testing.T) {
	qs := newTestQuiz(time.Now())
	require.True(t, qs.UpdateScore(1, 1, 2, nil))

	score := qs.UserScore(1)
	score.TotalCorrect = 999
	assert.Equal(t, 1, qs.UserScore(1).TotalCorrect)
}
