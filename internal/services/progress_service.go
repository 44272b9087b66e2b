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

type ProgressServiceInterface interface {
	MarkDayCompleted(userID int64, day, year int) bool
	UserProgress(userID int64, year int) models.ProgressSummary
	CurrentStreak(userID int64, year int) int
	LongestStreak(userID int64, year int) int
	IsDayCompleted(userID int64, day, year int) bool
}

// ProgressService tracks per-user, per-year completed reading days.
// A year of 0 means the current year.
type ProgressService struct {
	store  *store.FlatStore
	logger providers.Logger
	mu     sync.Mutex
	now    func() time.Time
}

func NewProgressService(flatStore *store.FlatStore, logger providers.Logger) ProgressServiceInterface {
	return &ProgressService{store: flatStore, logger: logger, now: time.Now}
}

func (ps *ProgressService) resolveYear(year int) int {
	if year <= 0 {
		return ps.now().UTC().Year()
	}
	return year
}

func (ps *ProgressService) load() *models.ProgressDoc {
	doc := &models.ProgressDoc{}
	ps.store.Load(store.DocProgress, doc)
	if doc.Progress == nil {
		doc.Progress = make(map[string]map[string]*models.YearProgress)
	}
	return doc
}

func (ps *ProgressService) yearData(doc *models.ProgressDoc, userID int64, year int) *models.YearProgress {
	userKey := strconv.FormatInt(userID, 10)
	yearKey := strconv.Itoa(year)
	if doc.Progress[userKey] == nil {
		return nil
	}
	return doc.Progress[userKey][yearKey]
}

// MarkDayCompleted records a day in the completed set. Re-marking an
// already-completed day is a no-op. Day numbers are stored as given; the
// command layer is responsible for range checks.
func (ps *ProgressService) MarkDayCompleted(userID int64, day, year int) bool {
	year = ps.resolveYear(year)
	ps.mu.Lock()
	defer ps.mu.Unlock()

	doc := ps.load()
	userKey := strconv.FormatInt(userID, 10)
	yearKey := strconv.Itoa(year)

	if doc.Progress[userKey] == nil {
		doc.Progress[userKey] = make(map[string]*models.YearProgress)
	}
	yp := doc.Progress[userKey][yearKey]
	if yp == nil {
		yp = &models.YearProgress{CompletedDays: []int{}}
		doc.Progress[userKey][yearKey] = yp
	}

	pos := sort.SearchInts(yp.CompletedDays, day)
	if pos >= len(yp.CompletedDays) || yp.CompletedDays[pos] != day {
		yp.CompletedDays = append(yp.CompletedDays, 0)
		copy(yp.CompletedDays[pos+1:], yp.CompletedDays[pos:])
		yp.CompletedDays[pos] = day
		d := day
		yp.LastCompleted = &d
		yp.TotalCompleted = len(yp.CompletedDays)
	}

	return ps.store.Save(store.DocProgress, doc)
}

func (ps *ProgressService) UserProgress(userID int64, year int) models.ProgressSummary {
	year = ps.resolveYear(year)
	ps.mu.Lock()
	defer ps.mu.Unlock()

	yp := ps.yearData(ps.load(), userID, year)
	if yp == nil {
		return models.ProgressSummary{CompletedDays: []int{}}
	}

	totalDays := content.DaysInYear(year)
	return models.ProgressSummary{
		CompletedDays:        yp.CompletedDays,
		LastCompleted:        yp.LastCompleted,
		TotalCompleted:       yp.TotalCompleted,
		CompletionPercentage: float64(yp.TotalCompleted) / float64(totalDays) * 100,
	}
}

// CurrentStreak counts consecutive completed days walking backward from
// today (or from yesterday when today is not yet completed).
func (ps *ProgressService) CurrentStreak(userID int64, year int) int {
	year = ps.resolveYear(year)
	ps.mu.Lock()
	defer ps.mu.Unlock()

	yp := ps.yearData(ps.load(), userID, year)
	if yp == nil || len(yp.CompletedDays) == 0 {
		return 0
	}

	completed := make(map[int]struct{}, len(yp.CompletedDays))
	for _, d := range yp.CompletedDays {
		completed[d] = struct{}{}
	}

	currentDay := ps.now().UTC().YearDay()
	checkDay := currentDay
	if _, ok := completed[currentDay]; !ok {
		// today not yet done does not break the streak built before it
		checkDay = currentDay - 1
	}

	streak := 0
	for checkDay > 0 {
		if _, ok := completed[checkDay]; !ok {
			break
		}
		streak++
		checkDay--
	}
	return streak
}

// LongestStreak finds the longest run of consecutive day numbers.
func (ps *ProgressService) LongestStreak(userID int64, year int) int {
	year = ps.resolveYear(year)
	ps.mu.Lock()
	defer ps.mu.Unlock()

	yp := ps.yearData(ps.load(), userID, year)
	if yp == nil || len(yp.CompletedDays) == 0 {
		return 0
	}

	days := yp.CompletedDays
	longest, current := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i] == days[i-1]+1 {
			current++
			if current > longest {
				longest = current
			}
		} else {
			current = 1
		}
	}
	return longest
}

func (ps *ProgressService) IsDayCompleted(userID int64, day, year int) bool {
	year = ps.resolveYear(year)
	ps.mu.Lock()
	defer ps.mu.Unlock()

	yp := ps.yearData(ps.load(), userID, year)
	if yp == nil {
		return false
	}
	pos := sort.SearchInts(yp.CompletedDays, day)
	return pos < len(yp.CompletedDays) && yp.CompletedDays[pos] == day
}
