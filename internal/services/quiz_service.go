package services

import (
	"dbb/internal/models"
	"dbb/internal/providers"
	"dbb/internal/store"
	"dbb/internal/structures"
	"fmt"
	"strconv"
	"sync"
	"time"
)

// SessionTotals carries the session-complete signal for UpdateScore.
type SessionTotals struct {
	Score int
	Total int
}

type QuizServiceInterface interface {
	StartSession(userID int64, questionIndex int, q *models.Question, difficulty, category string, force bool) bool
	Session(userID int64) *models.QuizSession
	UpdateSession(userID int64, score, total int) bool
	AdvanceSession(userID int64, questionIndex int, q *models.Question) bool
	EndSession(userID int64) *models.QuizSession
	RecordHistory(userID int64, session *models.QuizSession) bool
	History(userID int64) []*models.HistoryEntry
	UpdateScore(userID int64, correct, total int, completed *SessionTotals) bool
	UserScore(userID int64) *models.QuizScore
	TouchUser(userID int64, username, firstName string) bool
}

// QuizService owns the per-user session state machine, the cumulative score
// record and the capped history log.
type QuizService struct {
	store  *store.FlatStore
	config *structures.Config
	logger providers.Logger
	mu     sync.Mutex
	now    func() time.Time
}

func NewQuizService(flatStore *store.FlatStore, conf *structures.Config, logger providers.Logger) QuizServiceInterface {
	return &QuizService{store: flatStore, config: conf, logger: logger, now: time.Now}
}

func accuracyPercent(correct, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(correct) / float64(total) * 100
}

func (qs *QuizService) loadSessions() models.SessionsDoc {
	doc := models.SessionsDoc{}
	qs.store.Load(store.DocActiveQuizzes, &doc)
	return doc
}

// StartSession creates a session for the user. It refuses when a session
// already exists unless force is set, so an accidental /quiz cannot wipe an
// attempt in progress.
func (qs *QuizService) StartSession(userID int64, questionIndex int, q *models.Question, difficulty, category string, force bool) bool {
	qs.mu.Lock()
	defer qs.mu.Unlock()

	doc := qs.loadSessions()
	userKey := strconv.FormatInt(userID, 10)

	if _, exists := doc[userKey]; exists && !force {
		qs.logger.Warnf(providers.TypeApp, "User %d already has an active quiz session", userID)
		return false
	}

	doc[userKey] = &models.QuizSession{
		QuestionIndex: questionIndex,
		QuestionData:  q,
		Score:         0,
		Total:         0,
		Difficulty:    difficulty,
		Category:      category,
		StartedAt:     qs.now().UTC().Format(time.RFC3339),
	}
	return qs.store.Save(store.DocActiveQuizzes, doc)
}

func (qs *QuizService) Session(userID int64) *models.QuizSession {
	qs.mu.Lock()
	defer qs.mu.Unlock()
	return qs.loadSessions()[strconv.FormatInt(userID, 10)]
}

// UpdateSession overwrites the running score. Returns false when the user
// has no active session.
func (qs *QuizService) UpdateSession(userID int64, score, total int) bool {
	qs.mu.Lock()
	defer qs.mu.Unlock()

	doc := qs.loadSessions()
	userKey := strconv.FormatInt(userID, 10)
	session, exists := doc[userKey]
	if !exists {
		return false
	}
	session.Score = score
	session.Total = total
	return qs.store.Save(store.DocActiveQuizzes, doc)
}

// AdvanceSession swaps in the next question, leaving the running score
// untouched. Returns false when the user has no active session.
func (qs *QuizService) AdvanceSession(userID int64, questionIndex int, q *models.Question) bool {
	qs.mu.Lock()
	defer qs.mu.Unlock()

	doc := qs.loadSessions()
	userKey := strconv.FormatInt(userID, 10)
	session, exists := doc[userKey]
	if !exists {
		return false
	}
	session.QuestionIndex = questionIndex
	session.QuestionData = q
	return qs.store.Save(store.DocActiveQuizzes, doc)
}

// EndSession removes the session and returns its final snapshot, or nil
// when none existed.
func (qs *QuizService) EndSession(userID int64) *models.QuizSession {
	qs.mu.Lock()
	defer qs.mu.Unlock()

	doc := qs.loadSessions()
	userKey := strconv.FormatInt(userID, 10)
	session, exists := doc[userKey]
	if !exists {
		return nil
	}
	delete(doc, userKey)
	qs.store.Save(store.DocActiveQuizzes, doc)
	return session
}

// RecordHistory appends a completed session to the user's log, evicting the
// oldest entries beyond the configured cap.
func (qs *QuizService) RecordHistory(userID int64, session *models.QuizSession) bool {
	qs.mu.Lock()
	defer qs.mu.Unlock()

	doc := models.HistoryDoc{}
	qs.store.Load(store.DocHistory, &doc)

	userKey := strconv.FormatInt(userID, 10)
	now := qs.now().UTC()
	entry := &models.HistoryEntry{
		ID:          fmt.Sprintf("%s_%d", userKey, now.Unix()),
		Score:       session.Score,
		Total:       session.Total,
		Accuracy:    accuracyPercent(session.Score, session.Total),
		Difficulty:  session.Difficulty,
		Category:    session.Category,
		CompletedAt: now.Format(time.RFC3339),
	}

	entries := append(doc[userKey], entry)
	limit := qs.config.Quiz.HistoryLimit
	if limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}
	doc[userKey] = entries

	return qs.store.Save(store.DocHistory, doc)
}

func (qs *QuizService) History(userID int64) []*models.HistoryEntry {
	qs.mu.Lock()
	defer qs.mu.Unlock()

	doc := models.HistoryDoc{}
	qs.store.Load(store.DocHistory, &doc)
	return doc[strconv.FormatInt(userID, 10)]
}

func (qs *QuizService) loadScores() *models.ScoresDoc {
	doc := &models.ScoresDoc{}
	qs.store.Load(store.DocScores, doc)
	if doc.Scores == nil {
		doc.Scores = make(map[string]*models.QuizScore)
	}
	return doc
}

func (qs *QuizService) scoreEntry(doc *models.ScoresDoc, userID int64) *models.QuizScore {
	userKey := strconv.FormatInt(userID, 10)
	entry, ok := doc.Scores[userKey]
	if !ok {
		entry = &models.QuizScore{}
		doc.Scores[userKey] = entry
	}
	return entry
}

// UpdateScore adds a batch of answers to the cumulative record. When the
// batch closes a session, pass its totals in completed: that increments
// quizzes_completed and may take over the best-session slot (higher
// accuracy wins, equal accuracy prefers the longer quiz). BestScore is a
// high-water mark over every accuracy computed here and never goes down.
func (qs *QuizService) UpdateScore(userID int64, correct, total int, completed *SessionTotals) bool {
	qs.mu.Lock()
	defer qs.mu.Unlock()

	doc := qs.loadScores()
	entry := qs.scoreEntry(doc, userID)

	entry.TotalAnswered += total
	entry.TotalCorrect += correct

	best := entry.BestScore
	if acc := accuracyPercent(entry.TotalCorrect, entry.TotalAnswered); acc > best {
		best = acc
	}

	if completed != nil {
		entry.QuizzesCompleted++

		sessionAcc := accuracyPercent(completed.Score, completed.Total)
		if sessionAcc > best {
			best = sessionAcc
		}

		bestAcc := accuracyPercent(entry.BestSessionScore, entry.BestSessionTotal)
		if sessionAcc > bestAcc || (sessionAcc == bestAcc && completed.Total > entry.BestSessionTotal) {
			entry.BestSessionScore = completed.Score
			entry.BestSessionTotal = completed.Total
		}
	}

	entry.BestScore = best
	return qs.store.Save(store.DocScores, doc)
}

func (qs *QuizService) UserScore(userID int64) *models.QuizScore {
	qs.mu.Lock()
	defer qs.mu.Unlock()

	userKey := strconv.FormatInt(userID, 10)
	doc := qs.loadScores()
	if entry, ok := doc.Scores[userKey]; ok {
		cp := *entry
		return &cp
	}
	return &models.QuizScore{}
}

// TouchUser records the display identity used by leaderboards.
func (qs *QuizService) TouchUser(userID int64, username, firstName string) bool {
	qs.mu.Lock()
	defer qs.mu.Unlock()

	doc := qs.loadScores()
	entry := qs.scoreEntry(doc, userID)
	if entry.Username == username && entry.FirstName == firstName {
		return true
	}
	entry.Username = username
	entry.FirstName = firstName
	return qs.store.Save(store.DocScores, doc)
}
