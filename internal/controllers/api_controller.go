package controllers

import (
	"dbb/internal/content"
	"dbb/internal/providers"
	"dbb/internal/services"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
	"github.com/spf13/cast"
)

type ApiController struct {
	logger       providers.Logger
	progress     services.ProgressServiceInterface
	dailyQuiz    services.DailyQuizServiceInterface
	achievements services.AchievementServiceInterface
	cache        providers.CacheProviderInterface
	topN         int
}

func NewApiController(
	logger providers.Logger,
	progress services.ProgressServiceInterface,
	dailyQuiz services.DailyQuizServiceInterface,
	achievements services.AchievementServiceInterface,
	cache providers.CacheProviderInterface,
	topN int,
) *ApiController {
	return &ApiController{
		logger:       logger,
		progress:     progress,
		dailyQuiz:    dailyQuiz,
		achievements: achievements,
		cache:        cache,
		topN:         topN,
	}
}

func getUser(r *http.Request) (int64, bool) {
	userID, err := cast.ToInt64E(r.URL.Query().Get("user"))
	if err != nil || userID == 0 {
		return 0, false
	}
	return userID, true
}

func (ac *ApiController) serveFromCacheOrCompute(w http.ResponseWriter, cacheKey string, compute func() (any, error)) {
	if data, ok := ac.cache.Get(cacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	result, err := compute()
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	gson, err := json.Marshal(result)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ac.cache.Set(cacheKey, gson)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

func (ac *ApiController) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	ac.serveFromCacheOrCompute(w, "leaderboard", func() (any, error) {
		return ac.dailyQuiz.Leaderboard(ac.topN), nil
	})
}

func (ac *ApiController) GetProgress(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUser(r)
	if !ok {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	ac.serveFromCacheOrCompute(w, "progress:"+r.URL.Query().Get("user"), func() (any, error) {
		return ac.progress.UserProgress(userID, 0), nil
	})
}

func (ac *ApiController) GetAchievements(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUser(r)
	if !ok {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	ac.serveFromCacheOrCompute(w, "achievements:"+r.URL.Query().Get("user"), func() (any, error) {
		return ac.achievements.UserAchievements(userID), nil
	})
}

type todayResponse struct {
	Day     int    `json:"day"`
	Date    string `json:"date"`
	Reading string `json:"reading"`
	Verse   string `json:"verse"`
}

func (ac *ApiController) GetToday(w http.ResponseWriter, r *http.Request) {
	now := time.Now().UTC()
	day := now.YearDay()
	verse := content.VerseOfTheDay(day)

	ac.serveFromCacheOrCompute(w, "today:"+now.Format("2006-01-02"), func() (any, error) {
		return todayResponse{
			Day:     day,
			Date:    now.Format("2006-01-02"),
			Reading: content.GetReadingForDay(day, now.Year()),
			Verse:   verse.Reference,
		}, nil
	})
}
