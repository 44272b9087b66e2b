package services

import (
	"dbb/internal/content"
	"dbb/internal/models"
	"dbb/internal/providers"
	"dbb/internal/store"
	"sort"
	"strconv"
	"sync"
	"time"
)

const dateLayout = "2006-01-02"

type DailyQuizServiceInterface interface {
	TodayQuestion() *models.Question
	QuestionForDate(date string) *models.Question
	MarkCompleted(userID int64, score, total int) bool
	HasCompletedToday(userID int64) bool
	Stats(userID int64) models.DailyQuizStats
	Leaderboard(limit int) []models.LeaderboardEntry
}

// DailyQuizService manages the one-question-per-date challenge shared by all
// users and the per-user completion records derived from it.
type DailyQuizService struct {
	store  *store.FlatStore
	bank   *content.QuestionBank
	logger providers.Logger
	mu     sync.Mutex
	now    func() time.Time
}

func NewDailyQuizService(flatStore *store.FlatStore, bank *content.QuestionBank, logger providers.Logger) DailyQuizServiceInterface {
	return &DailyQuizService{store: flatStore, bank: bank, logger: logger, now: time.Now}
}

func (ds *DailyQuizService) load() *models.DailyQuizDoc {
	doc := &models.DailyQuizDoc{}
	ds.store.Load(store.DocDailyQuiz, doc)
	if doc.DailyQuizzes == nil {
		doc.DailyQuizzes = make(map[string]*models.Question)
	}
	if doc.Completions == nil {
		doc.Completions = make(map[string]map[string]*models.DailyCompletion)
	}
	return doc
}

func (ds *DailyQuizService) today() string {
	return ds.now().UTC().Format(dateLayout)
}

// TodayQuestion returns the question fixed for today, drawing and caching
// one on first request. Repeat calls on the same date return the identical
// record.
func (ds *DailyQuizService) TodayQuestion() *models.Question {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	today := ds.today()
	doc := ds.load()
	if q, ok := doc.DailyQuizzes[today]; ok {
		return q
	}

	q, _ := ds.bank.Random("", "")
	if q == nil {
		ds.logger.Errorf(providers.TypeApp, "Question bank is empty, no daily quiz for %s", today)
		return nil
	}
	q.Date = today
	doc.DailyQuizzes[today] = q
	ds.store.Save(store.DocDailyQuiz, doc)

	ds.logger.Infof(providers.TypeApp, "Fixed daily quiz question for %s", today)
	return q
}

func (ds *DailyQuizService) QuestionForDate(date string) *models.Question {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	return ds.load().DailyQuizzes[date]
}

// MarkCompleted records today's result for the user. Exactly-once per
// (user, date): a second completion is rejected and the stored result keeps
// its original values.
func (ds *DailyQuizService) MarkCompleted(userID int64, score, total int) bool {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	today := ds.today()
	doc := ds.load()
	userKey := strconv.FormatInt(userID, 10)

	if doc.Completions[userKey] == nil {
		doc.Completions[userKey] = make(map[string]*models.DailyCompletion)
	}
	if _, done := doc.Completions[userKey][today]; done {
		return false
	}

	doc.Completions[userKey][today] = &models.DailyCompletion{
		Score:       score,
		Total:       total,
		Accuracy:    accuracyPercent(score, total),
		CompletedAt: ds.now().UTC().Format(time.RFC3339),
	}
	return ds.store.Save(store.DocDailyQuiz, doc)
}

func (ds *DailyQuizService) HasCompletedToday(userID int64) bool {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	completions := ds.load().Completions[strconv.FormatInt(userID, 10)]
	if completions == nil {
		return false
	}
	_, done := completions[ds.today()]
	return done
}

// Stats aggregates a user's completions. The streak walks completion dates
// most-recent-first: each must match the exact expected slot (today - i
// days); any mismatch, including anomalies like future dates, breaks it.
func (ds *DailyQuizService) Stats(userID int64) models.DailyQuizStats {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	completions := ds.load().Completions[strconv.FormatInt(userID, 10)]
	if len(completions) == 0 {
		return models.DailyQuizStats{}
	}

	stats := models.DailyQuizStats{TotalCompleted: len(completions)}
	dates := make([]string, 0, len(completions))
	for date, c := range completions {
		stats.TotalCorrect += c.Score
		stats.TotalAnswered += c.Total
		if c.Accuracy > stats.BestScore {
			stats.BestScore = c.Accuracy
		}
		dates = append(dates, date)
	}

	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	today := ds.now().UTC()
	for i, date := range dates {
		completionDate, err := time.Parse(dateLayout, date)
		if err != nil {
			break
		}
		expected := today.AddDate(0, 0, -i).Format(dateLayout)
		if completionDate.Format(dateLayout) != expected {
			break
		}
		stats.CurrentStreak++
	}

	return stats
}

// Leaderboard ranks all users by completions, then average accuracy.
func (ds *DailyQuizService) Leaderboard(limit int) []models.LeaderboardEntry {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	doc := ds.load()
	entries := make([]models.LeaderboardEntry, 0, len(doc.Completions))
	for userKey, completions := range doc.Completions {
		entry := models.LeaderboardEntry{
			UserID:         userKey,
			TotalCompleted: len(completions),
		}
		totalAnswered := 0
		for _, c := range completions {
			entry.TotalCorrect += c.Score
			totalAnswered += c.Total
		}
		entry.AvgAccuracy = accuracyPercent(entry.TotalCorrect, totalAnswered)
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].TotalCompleted != entries[j].TotalCompleted {
			return entries[i].TotalCompleted > entries[j].TotalCompleted
		}
		if entries[i].AvgAccuracy != entries[j].AvgAccuracy {
			return entries[i].AvgAccuracy > entries[j].AvgAccuracy
		}
		return entries[i].UserID < entries[j].UserID
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}
