package services

import (
	"dbb/internal/models"
	"dbb/internal/providers"
	"dbb/internal/store"
	"strconv"
	"sync"
	"time"
)

// Achievement is one badge definition with its unlock predicate.
type Achievement struct {
	ID          string
	Name        string
	Description string
	Emoji       string
	Unlocked    func(s models.StatsSnapshot) bool
}

// Catalogue is the fixed badge set, evaluated in order.
var Catalogue = []Achievement{
	{
		ID:          "first_steps",
		Name:        "First Steps",
		Description: "Complete your first Bible reading",
		Emoji:       "👣",
		Unlocked:    func(s models.StatsSnapshot) bool { return s.ReadingCompleted >= 1 },
	},
	{
		ID:          "week_warrior",
		Name:        "Week Warrior",
		Description: "Maintain a 7-day reading streak",
		Emoji:       "🔥",
		Unlocked:    func(s models.StatsSnapshot) bool { return s.CurrentStreak >= 7 },
	},
	{
		ID:          "month_master",
		Name:        "Month Master",
		Description: "Maintain a 30-day reading streak",
		Emoji:       "👑",
		Unlocked:    func(s models.StatsSnapshot) bool { return s.CurrentStreak >= 30 },
	},
	{
		ID:          "quiz_master",
		Name:        "Quiz Master",
		Description: "Answer 100 quiz questions correctly",
		Emoji:       "🎯",
		Unlocked:    func(s models.StatsSnapshot) bool { return s.QuizCorrect >= 100 },
	},
	{
		ID:          "perfect_score",
		Name:        "Perfect Score",
		Description: "Get 100% on a quiz",
		Emoji:       "💯",
		Unlocked:    func(s models.StatsSnapshot) bool { return s.BestQuizScore >= 100 },
	},
	{
		ID:          "bible_scholar",
		Name:        "Bible Scholar",
		Description: "Complete all 365 days of reading",
		Emoji:       "📚",
		Unlocked:    func(s models.StatsSnapshot) bool { return s.ReadingCompleted >= 365 },
	},
	{
		ID:          "daily_champion",
		Name:        "Daily Champion",
		Description: "Complete 10 daily quiz challenges",
		Emoji:       "🏆",
		Unlocked:    func(s models.StatsSnapshot) bool { return s.DailyQuizCompleted >= 10 },
	},
	{
		ID:          "century_club",
		Name:        "Century Club",
		Description: "Complete 100 days of reading",
		Emoji:       "💎",
		Unlocked:    func(s models.StatsSnapshot) bool { return s.ReadingCompleted >= 100 },
	},
}

// AchievementByID looks a definition up in the catalogue.
func AchievementByID(id string) (Achievement, bool) {
	for _, a := range Catalogue {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}

type AchievementServiceInterface interface {
	UserAchievements(userID int64) *models.UserAchievements
	Unlock(userID int64, achievementID string) bool
	CheckAndAward(userID int64) []string
}

// AchievementService evaluates the catalogue against a fan-in of tracker
// aggregates. Unlocks are append-only and keep their first timestamp.
type AchievementService struct {
	store     *store.FlatStore
	progress  ProgressServiceInterface
	quiz      QuizServiceInterface
	dailyQuiz DailyQuizServiceInterface
	logger    providers.Logger
	mu        sync.Mutex
	now       func() time.Time
}

func NewAchievementService(flatStore *store.FlatStore, progress ProgressServiceInterface, quiz QuizServiceInterface, dailyQuiz DailyQuizServiceInterface, logger providers.Logger) AchievementServiceInterface {
	return &AchievementService{
		store:     flatStore,
		progress:  progress,
		quiz:      quiz,
		dailyQuiz: dailyQuiz,
		logger:    logger,
		now:       time.Now,
	}
}

func (as *AchievementService) load() models.AchievementsDoc {
	doc := models.AchievementsDoc{}
	as.store.Load(store.DocAchievements, &doc)
	return doc
}

func (as *AchievementService) UserAchievements(userID int64) *models.UserAchievements {
	as.mu.Lock()
	defer as.mu.Unlock()

	ua := as.load()[strconv.FormatInt(userID, 10)]
	if ua == nil {
		return &models.UserAchievements{Unlocked: []string{}, UnlockedAt: map[string]string{}}
	}
	return ua
}

// Unlock appends an achievement for the user. Idempotent: a second unlock
// returns false and the original timestamp stays.
func (as *AchievementService) Unlock(userID int64, achievementID string) bool {
	as.mu.Lock()
	defer as.mu.Unlock()
	return as.unlockLocked(userID, achievementID)
}

func (as *AchievementService) unlockLocked(userID int64, achievementID string) bool {
	doc := as.load()
	userKey := strconv.FormatInt(userID, 10)

	ua := doc[userKey]
	if ua == nil {
		ua = &models.UserAchievements{Unlocked: []string{}, UnlockedAt: map[string]string{}}
		doc[userKey] = ua
	}
	for _, id := range ua.Unlocked {
		if id == achievementID {
			return false
		}
	}

	ua.Unlocked = append(ua.Unlocked, achievementID)
	if ua.UnlockedAt == nil {
		ua.UnlockedAt = map[string]string{}
	}
	ua.UnlockedAt[achievementID] = as.now().UTC().Format(time.RFC3339)

	if !as.store.Save(store.DocAchievements, doc) {
		return false
	}
	as.logger.Infof(providers.TypeApp, "User %d unlocked achievement %s", userID, achievementID)
	return true
}

// CheckAndAward evaluates every not-yet-unlocked badge against a fresh
// stats snapshot and returns the ids unlocked by this call, in catalogue
// order.
func (as *AchievementService) CheckAndAward(userID int64) []string {
	score := as.quiz.UserScore(userID)
	snapshot := models.StatsSnapshot{
		ReadingCompleted:   as.progress.UserProgress(userID, 0).TotalCompleted,
		CurrentStreak:      as.progress.CurrentStreak(userID, 0),
		QuizCorrect:        score.TotalCorrect,
		BestQuizScore:      score.BestScore,
		DailyQuizCompleted: as.dailyQuiz.Stats(userID).TotalCompleted,
	}

	as.mu.Lock()
	defer as.mu.Unlock()

	unlocked := map[string]struct{}{}
	if ua := as.load()[strconv.FormatInt(userID, 10)]; ua != nil {
		for _, id := range ua.Unlocked {
			unlocked[id] = struct{}{}
		}
	}

	var newlyUnlocked []string
	for _, achievement := range Catalogue {
		if _, has := unlocked[achievement.ID]; has {
			continue
		}
		if !achievement.Unlocked(snapshot) {
			continue
		}
		if as.unlockLocked(userID, achievement.ID) {
			newlyUnlocked = append(newlyUnlocked, achievement.ID)
		}
	}
	return newlyUnlocked
}
