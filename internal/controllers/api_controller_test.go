package controllers

import (
	"dbb/internal/content"
	"dbb/internal/models"
	"dbb/internal/providers"
	"dbb/internal/services"
	"dbb/internal/store"
	"dbb/internal/structures"
	"dbb/internal/testutil"
	"net/http"
	"net/http/httptest"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- local mocks (scoped to controller tests) ---

type mockCache struct {
	data map[string][]byte
	hits int
}

func (m *mockCache) Get(key string) ([]byte, bool) {
	if m.data == nil {
		return nil, false
	}
	data, ok := m.data[key]
	if ok {
		m.hits++
	}
	return data, ok
}

func (m *mockCache) Set(key string, value []byte) {
	if m.data == nil {
		m.data = map[string][]byte{}
	}
	m.data[key] = value
}

type apiFixture struct {
	api       *ApiController
	cache     *mockCache
	progress  services.ProgressServiceInterface
	dailyQuiz services.DailyQuizServiceInterface
}

func newApiFixture(t *testing.T) *apiFixture {
	t.Helper()
	logger := &testutil.MockLogger{}
	metrics := providers.NewMetricsProvider(&structures.Config{})
	flatStore := store.NewFlatStore(store.NewMemoryBacking(), logger, metrics)
	bank := content.NewQuestionBank()

	progress := services.NewProgressService(flatStore, logger)
	quiz := services.NewQuizService(flatStore, &structures.Config{Quiz: structures.QuizConfig{HistoryLimit: 100}}, logger)
	dailyQuiz := services.NewDailyQuizService(flatStore, bank, logger)
	achievements := services.NewAchievementService(flatStore, progress, quiz, dailyQuiz, logger)

	cache := &mockCache{}
	api := NewApiController(logger, progress, dailyQuiz, achievements, cache, 10)
	return &apiFixture{api: api, cache: cache, progress: progress, dailyQuiz: dailyQuiz}
}

func TestApiController_GetProgress(t *testing.T) {
	f := newApiFixture(t)
	require.True(t, f.progress.MarkDayCompleted(42, 3, 0))

	req := httptest.NewRequest(http.MethodGet, "/api/progress?user=42", nil)
	rec := httptest.NewRecorder()
	f.api.GetProgress(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var summary models.ProgressSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, 1, summary.TotalCompleted)
}

func TestApiController_GetProgress_BadUser(t *testing.T) {
	f := newApiFixture(t)

	for _, query := range []string{"", "?user=abc", "?user=0"} {
		req := httptest.NewRequest(http.MethodGet, "/api/progress"+query, nil)
		rec := httptest.NewRecorder()
		f.api.GetProgress(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "query %q", query)
	}
}

func TestApiController_GetLeaderboard(t *testing.T) {
	f := newApiFixture(t)
	require.True(t, f.dailyQuiz.MarkCompleted(7, 1, 1))

	req := httptest.NewRequest(http.MethodGet, "/api/leaderboard", nil)
	rec := httptest.NewRecorder()
	f.api.GetLeaderboard(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var entries []models.LeaderboardEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "7", entries[0].UserID)
}

func TestApiController_CacheServesSecondRequest(t *testing.T) {
	f := newApiFixture(t)

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/leaderboard", nil)
		rec := httptest.NewRecorder()
		f.api.GetLeaderboard(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	}
	assert.Equal(t, 1, f.cache.hits)
}

func TestApiController_GetAchievements(t *testing.T) {
	f := newApiFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/api/achievements?user=5", nil)
	rec := httptest.NewRecorder()
	f.api.GetAchievements(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var ua models.UserAchievements
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ua))
	assert.Empty(t, ua.Unlocked)
}

func TestApiController_GetToday(t *testing.T) {
	f := newApiFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/api/today", nil)
	rec := httptest.NewRecorder()
	f.api.GetToday(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["reading"])
	assert.NotEmpty(t, resp["date"])
}
